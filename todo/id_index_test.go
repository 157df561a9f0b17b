package todo

import (
	"errors"
	"testing"
)

func TestIDIndex_Resolve(t *testing.T) {
	index := NewIDIndex([]Todo{
		{ID: "abc12345"},
		{ID: "abd67890"},
		{ID: "Imported-ID"},
		{ID: "xyz"},
		{ID: "xyz99"},
	})

	tests := []struct {
		prefix string
		want   string
		err    error
	}{
		{prefix: "abc", want: "abc12345"},
		{prefix: "ABD6", want: "abd67890"},
		{prefix: "imp", want: "Imported-ID"},
		{prefix: "Imported-ID", want: "Imported-ID"},
		{prefix: "xyz", want: "xyz"},
		{prefix: "ab", err: ErrAmbiguousTodoIDPrefix},
		{prefix: "nope", err: ErrTodoNotFound},
		{prefix: "", err: ErrTodoNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			got, err := index.Resolve(tt.prefix)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestIDIndex_PrefixLengths(t *testing.T) {
	index := NewIDIndex([]Todo{{ID: "abc12345"}, {ID: "abd67890"}, {ID: "q1"}})
	lengths := index.PrefixLengths()

	want := map[string]int{"abc12345": 3, "abd67890": 3, "q1": 1}
	for id, length := range want {
		if lengths[id] != length {
			t.Errorf("%s: expected %d, got %d", id, length, lengths[id])
		}
	}
}

func TestStoreResolve(t *testing.T) {
	store, _ := newTestStore(t)
	id := mustAdd(t, store, "task", AddOptions{})

	got, err := store.Resolve(id[:4])
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != id {
		t.Errorf("expected %q, got %q", id, got)
	}
}
