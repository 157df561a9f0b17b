package todo

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	errRecordNotObject = errors.New("record is not an object")
	errRecordID        = errors.New("record id is not a string")
	errRecordText      = errors.New("record text is not a string")
)

// Timestamps must fit the four-digit years encoding/json can write back.
var (
	minTimestampMillis = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	maxTimestampMillis = time.Date(9999, time.December, 31, 23, 59, 59, 999_000_000, time.UTC).UnixMilli()
)

// Layouts accepted for timestamp strings in stored and imported documents.
// Zone-less layouts are read as local time so dates keep their calendar day.
var timestampLayouts = []struct {
	layout string
	local  bool
}{
	{layout: time.RFC3339Nano},
	{layout: "2006-01-02T15:04:05.999999999", local: true},
	{layout: time.DateTime, local: true},
	{layout: time.DateOnly, local: true},
}

// parseTimestamp reads a serialized timestamp: a date or date-time string,
// or a number of milliseconds since the Unix epoch. Times outside years
// 0 through 9999 are rejected.
func parseTimestamp(value any) (time.Time, bool) {
	t, ok := decodeTimestamp(value)
	if !ok || t.Year() < 0 || t.Year() > 9999 {
		return time.Time{}, false
	}
	return t, true
}

func decodeTimestamp(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		v = strings.TrimSpace(v)
		for _, candidate := range timestampLayouts {
			var (
				parsed time.Time
				err    error
			)
			if candidate.local {
				parsed, err = time.ParseInLocation(candidate.layout, v, time.Local)
			} else {
				parsed, err = time.Parse(candidate.layout, v)
			}
			if err == nil {
				return parsed, true
			}
		}
	case float64:
		if math.IsNaN(v) || v < float64(minTimestampMillis) || v > float64(maxTimestampMillis) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(v)), true
	}
	return time.Time{}, false
}

// integerValue reads an integral JSON number that fits in an int.
func integerValue(value any) (int, bool) {
	v, ok := value.(float64)
	if !ok || v != math.Trunc(v) || v < math.MinInt || v >= -math.MinInt {
		return 0, false
	}
	return int(v), true
}

func stringValue(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key].(string)
	return v, ok
}

// decodeFields fills the fields shared by stored and imported records.
// Absent or unusable optional fields are left at their zero value.
func decodeFields(fields map[string]any) (Todo, error) {
	id, ok := stringValue(fields, "id")
	if !ok {
		return Todo{}, errRecordID
	}
	text, ok := stringValue(fields, "text")
	if !ok {
		return Todo{}, errRecordText
	}

	item := Todo{ID: id, Text: text}
	if completed, ok := fields["completed"].(bool); ok {
		item.Completed = completed
	}
	if description, ok := stringValue(fields, "description"); ok {
		item.Description = NormalizeDescription(description)
	}
	if raw, ok := fields["dueDate"]; ok && raw != nil {
		if due, ok := parseTimestamp(raw); ok {
			item.DueDate = &due
		}
	}
	return item, nil
}

// decodeStoredTodo rebuilds a persisted record, backfilling order from its
// position and priority as medium when they are missing.
func decodeStoredTodo(element any, index int) (Todo, error) {
	fields, ok := element.(map[string]any)
	if !ok {
		return Todo{}, errRecordNotObject
	}
	item, err := decodeFields(fields)
	if err != nil {
		return Todo{}, err
	}

	if createdAt, ok := parseTimestamp(fields["createdAt"]); ok {
		item.CreatedAt = createdAt
	}

	item.Order = index
	if order, ok := integerValue(fields["order"]); ok {
		item.Order = order
	}

	item.Priority = PriorityMedium
	if raw, ok := stringValue(fields, "priority"); ok {
		if priority := Priority(raw); priority.IsValid() {
			item.Priority = priority
		}
	}
	return item, nil
}

// importCandidate is a validated imported record awaiting deduplication.
type importCandidate struct {
	todo         Todo
	hasOrder     bool
	hasCreatedAt bool
}

// decodeImportedTodo rebuilds a record that already passed schema validation.
// A createdAt that is present but not a usable timestamp leaves CreatedAt
// zero and hasCreatedAt false.
func decodeImportedTodo(element any) (importCandidate, error) {
	fields, ok := element.(map[string]any)
	if !ok {
		return importCandidate{}, errRecordNotObject
	}
	item, err := decodeFields(fields)
	if err != nil {
		return importCandidate{}, err
	}

	item.Priority = PriorityMedium
	if raw, ok := stringValue(fields, "priority"); ok {
		item.Priority = Priority(raw)
	}

	candidate := importCandidate{todo: item}
	if createdAt, ok := parseTimestamp(fields["createdAt"]); ok {
		candidate.todo.CreatedAt = createdAt
		candidate.hasCreatedAt = true
	}
	if order, ok := integerValue(fields["order"]); ok {
		candidate.todo.Order = order
		candidate.hasOrder = true
	}
	return candidate, nil
}
