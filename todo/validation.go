package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/checklist/internal/validation"
)

var (
	// ErrEmptyText is returned when a todo's text is empty after trimming.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrTextTooLong is returned when a todo's text exceeds MaxTextLength.
	ErrTextTooLong = errors.New("text exceeds maximum length")

	// ErrInvalidPriority is returned when a priority is not low, medium or high.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidFilter is returned when a filter name is not recognized.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrTodoNotFound is returned when no todo matches an ID.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrAmbiguousTodoIDPrefix is returned when an ID prefix matches multiple todos.
	ErrAmbiguousTodoIDPrefix = errors.New("ambiguous todo ID prefix")

	// ErrDuplicateID is returned when the same todo is listed twice.
	ErrDuplicateID = errors.New("duplicate todo ID")

	// ErrClearRequired is returned when a required field is patched with Clear.
	ErrClearRequired = errors.New("field cannot be cleared")
)

// NormalizeText trims a todo's text and checks it is usable.
func NormalizeText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return "", fmt.Errorf("%w: %d > %d", ErrTextTooLong, len(text), MaxTextLength)
	}
	return text, nil
}

// NormalizeDescription trims a description. An empty result means none.
func NormalizeDescription(description string) string {
	return strings.TrimSpace(description)
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return invalidValueError(ErrInvalidPriority, string(priority), ValidPriorities())
	}
	return nil
}

func invalidValueError[T ~string](base error, value string, valid []T) error {
	return validation.FormatInvalidValueError(base, T(value), valid)
}
