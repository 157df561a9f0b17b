package todo

import (
	"fmt"
	"strings"

	"github.com/amonks/checklist/internal/ids"
)

// IDIndex indexes todo IDs for prefix matching and display.
//
// Generated IDs are lowercase, but imported ones keep whatever case the
// document used, so the index remembers the original spelling of each ID.
type IDIndex struct {
	ids      []string
	original map[string]string
	exact    map[string]bool
}

// NewIDIndex builds an IDIndex from a slice of todos.
func NewIDIndex(todos []Todo) IDIndex {
	todoIDs := make([]string, 0, len(todos))
	original := make(map[string]string, len(todos))
	exact := make(map[string]bool, len(todos))
	for _, todo := range todos {
		todoIDs = append(todoIDs, todo.ID)
		exact[todo.ID] = true
		lower := strings.ToLower(todo.ID)
		if _, ok := original[lower]; !ok {
			original[lower] = todo.ID
		}
	}
	return IDIndex{ids: ids.NormalizeUniqueIDs(todoIDs), original: original, exact: exact}
}

// Resolve returns the full todo ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if index.exact[prefix] {
		return prefix, nil
	}
	if prefix == "" {
		return "", ErrTodoNotFound
	}

	match, found, ambiguous := ids.MatchPrefixNormalized(index.ids, prefix)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrTodoNotFound, prefix)
	}
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousTodoIDPrefix, prefix)
	}

	return index.original[match], nil
}

// PrefixLengths returns the shortest unique prefix length for each ID,
// keyed by the lowercased ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengthsNormalized(index.ids)
}
