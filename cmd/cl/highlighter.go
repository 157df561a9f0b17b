package main

import "github.com/amonks/checklist/internal/ui"

// idHighlighter returns a function that highlights each ID's unique prefix.
// IDs missing from prefixLengths are returned unhighlighted.
func idHighlighter(prefixLengths map[string]int, highlight func(string, int) string) func(string) string {
	if prefixLengths == nil {
		prefixLengths = map[string]int{}
	}
	return func(id string) string {
		if id == "" {
			return id
		}
		return highlight(id, ui.PrefixLength(prefixLengths, id))
	}
}
