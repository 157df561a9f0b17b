package todo

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestLoad_Backfills(t *testing.T) {
	storage := newMapStorage()
	storage.values[StorageKey] = `[
		{"id": "a", "text": "old one", "completed": false, "createdAt": "2023-05-01T10:00:00Z"},
		{"id": "b", "text": "old two", "completed": true, "createdAt": "2023-05-02T10:00:00Z"},
		{"id": "c", "text": "new", "completed": false, "createdAt": "2023-05-03T10:00:00Z", "order": 7, "priority": "high"}
	]`
	store := New(Options{Storage: storage})
	store.Load()

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(all))
	}
	wantOrder := []int{0, 1, 7}
	wantPriority := []Priority{PriorityMedium, PriorityMedium, PriorityHigh}
	for i, item := range all {
		if item.Order != wantOrder[i] {
			t.Errorf("%s: expected order %d, got %d", item.ID, wantOrder[i], item.Order)
		}
		if item.Priority != wantPriority[i] {
			t.Errorf("%s: expected priority %q, got %q", item.ID, wantPriority[i], item.Priority)
		}
	}
	if !all[1].Completed {
		t.Error("expected completed flag to load")
	}
	if !all[0].CreatedAt.Equal(time.Date(2023, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected createdAt %v", all[0].CreatedAt)
	}
	if storage.sets != 0 {
		t.Error("load should not write back")
	}
}

func TestLoad_Lenient(t *testing.T) {
	storage := newMapStorage()
	storage.values[StorageKey] = `[
		"not an object",
		{"text": "no id"},
		{"id": "a", "text": "keep", "priority": "urgent", "dueDate": "2024-03-01"},
		{"id": "a", "text": "duplicate"},
		{"id": "b", "text": "epoch", "createdAt": 1700000000000, "dueDate": "garbage"}
	]`
	store := New(Options{Storage: storage})
	store.Load()

	all := store.All()
	if got := texts(all); !equalStrings(got, []string{"keep", "epoch"}) {
		t.Fatalf("expected [keep epoch], got %v", got)
	}
	if all[0].Priority != PriorityMedium {
		t.Errorf("expected invalid priority to become medium, got %q", all[0].Priority)
	}
	if all[0].DueDate == nil || all[0].DueDate.Day() != 1 {
		t.Errorf("expected date-only due date to load, got %v", all[0].DueDate)
	}
	if all[0].Order != 2 || all[1].Order != 4 {
		t.Errorf("expected orders from original positions, got %d and %d", all[0].Order, all[1].Order)
	}
	if !all[1].CreatedAt.Equal(time.UnixMilli(1700000000000)) {
		t.Errorf("expected epoch createdAt, got %v", all[1].CreatedAt)
	}
	if all[1].DueDate != nil {
		t.Errorf("expected unparseable due date to be dropped, got %v", all[1].DueDate)
	}
}

func TestLoad_NumericLimits(t *testing.T) {
	storage := newMapStorage()
	storage.values[StorageKey] = `[
		{"id": "big", "text": "large order", "createdAt": 1e15, "order": 3000000000},
		{"id": "far", "text": "far due", "createdAt": "2024-01-01", "order": 1e300, "dueDate": 1e300}
	]`
	store := New(Options{Storage: storage})
	store.Load()

	big := mustGet(t, store, "big")
	if big.Order != 3_000_000_000 {
		t.Errorf("expected large order to survive, got %d", big.Order)
	}
	if !big.CreatedAt.IsZero() {
		t.Errorf("expected out-of-range createdAt to be dropped, got %v", big.CreatedAt)
	}
	far := mustGet(t, store, "far")
	if far.Order != 1 || far.DueDate != nil {
		t.Errorf("expected backfilled order and no due date, got order %d due %v", far.Order, far.DueDate)
	}

	mustAdd(t, store, "next", AddOptions{})
	if err := store.SyncErr(); err != nil {
		t.Fatalf("sync after load: %v", err)
	}
}

func TestLoad_MissingKey(t *testing.T) {
	store, _ := newTestStore(t)
	mustAdd(t, store, "in memory", AddOptions{})

	fresh := New(Options{Storage: newMapStorage()})
	fresh.Load()
	if fresh.Len() != 0 {
		t.Errorf("expected empty collection, got %d", fresh.Len())
	}
}

func TestLoad_MalformedLeavesCollection(t *testing.T) {
	store, storage := newTestStore(t)
	mustAdd(t, store, "keep me", AddOptions{})

	storage.values[StorageKey] = `{"not": "an array"`
	store.Load()
	if got := texts(store.All()); !equalStrings(got, []string{"keep me"}) {
		t.Errorf("expected collection unchanged, got %v", got)
	}

	storage.failGet = true
	store.Load()
	if store.Len() != 1 {
		t.Errorf("expected collection unchanged after read error, got %d", store.Len())
	}
}

func TestNilStorage(t *testing.T) {
	store := New(Options{})
	store.Load()

	id, err := store.Add("ephemeral", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	store.Toggle(id)
	store.ClearCompleted()
	store.Purge()
	if store.SyncErr() != nil {
		t.Errorf("expected no sync error, got %v", store.SyncErr())
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d", store.Len())
	}
}

func TestSync_RoundTrip(t *testing.T) {
	store, storage := newTestStore(t)
	due := dueOn(2024, 4, 1)
	id := mustAdd(t, store, "persist me", AddOptions{Description: "details", DueDate: due, Priority: PriorityLow})
	store.Toggle(id)

	var raw []map[string]any
	if err := json.Unmarshal([]byte(storage.values[StorageKey]), &raw); err != nil {
		t.Fatalf("decode stored todos: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 stored todo, got %d", len(raw))
	}
	for _, field := range []string{"id", "text", "description", "completed", "createdAt", "dueDate", "order", "priority"} {
		if _, ok := raw[0][field]; !ok {
			t.Errorf("expected stored field %q", field)
		}
	}

	reloaded := New(Options{Storage: storage})
	reloaded.Load()
	item := mustGet(t, reloaded, id)
	original := mustGet(t, store, id)
	if item.Text != original.Text || item.Description != original.Description ||
		item.Completed != original.Completed || item.Priority != original.Priority ||
		item.Order != original.Order || !item.CreatedAt.Equal(original.CreatedAt) ||
		!item.DueDate.Equal(*original.DueDate) {
		t.Errorf("reloaded todo differs:\n got %+v\nwant %+v", item, original)
	}
}

func TestSync_EmptyCollectionWritesArray(t *testing.T) {
	store, storage := newTestStore(t)
	id := mustAdd(t, store, "only", AddOptions{})
	store.Delete(id)

	if got := storage.values[StorageKey]; got != "[]" {
		t.Errorf("expected empty array, got %q", got)
	}
}

func TestSync_FailureIsReported(t *testing.T) {
	store, storage := newTestStore(t)
	storage.failSet = true

	id, err := store.Add("unsaved", AddOptions{})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !errors.Is(store.SyncErr(), errStorageDown) {
		t.Errorf("expected sync error, got %v", store.SyncErr())
	}
	if _, ok := store.Get(id); !ok {
		t.Error("mutation should still apply in memory")
	}

	storage.failSet = false
	store.Toggle(id)
	if store.SyncErr() != nil {
		t.Errorf("expected sync error cleared, got %v", store.SyncErr())
	}
}

func TestPurge(t *testing.T) {
	store, storage := newTestStore(t)
	mustAdd(t, store, "gone", AddOptions{})

	store.Purge()
	if store.Len() != 0 {
		t.Errorf("expected empty collection, got %d", store.Len())
	}
	if _, ok := storage.values[StorageKey]; ok {
		t.Error("expected stored key to be removed")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	id := mustAdd(t, store, "task", AddOptions{DueDate: dueOn(2024, 1, 1)})

	item := mustGet(t, store, id)
	item.Text = "changed"
	*item.DueDate = time.Time{}

	again := mustGet(t, store, id)
	if again.Text != "task" || again.DueDate.IsZero() {
		t.Error("Get should return a copy")
	}
}
