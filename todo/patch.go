package todo

type patchOp int

const (
	patchKeep patchOp = iota
	patchSet
	patchClear
)

// Patch describes an update to a single field: keep it, set it, or clear it.
// The zero value keeps the field unchanged.
type Patch[T any] struct {
	op    patchOp
	value T
}

// Keep returns a patch that leaves the field unchanged.
func Keep[T any]() Patch[T] {
	return Patch[T]{}
}

// Set returns a patch that replaces the field with value.
func Set[T any](value T) Patch[T] {
	return Patch[T]{op: patchSet, value: value}
}

// Clear returns a patch that removes an optional field.
func Clear[T any]() Patch[T] {
	return Patch[T]{op: patchClear}
}

// IsKeep reports whether the patch leaves the field unchanged.
func (p Patch[T]) IsKeep() bool { return p.op == patchKeep }

// IsSet reports whether the patch replaces the field.
func (p Patch[T]) IsSet() bool { return p.op == patchSet }

// IsClear reports whether the patch removes the field.
func (p Patch[T]) IsClear() bool { return p.op == patchClear }

// Value returns the replacement value and whether the patch sets one.
func (p Patch[T]) Value() (T, bool) {
	return p.value, p.op == patchSet
}
