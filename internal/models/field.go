package models

// Field carries tri-state update semantics for a single scalar field.
// A field in an update request is either not provided at all (the zero
// value), explicitly cleared to null, or set to a concrete value. This
// replaces the empty-string/nil sentinel overloading the API layer would
// otherwise have to guess about.
type Field[T any] struct {
	value T
	state fieldState
}

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldClear
	fieldSet
)

// Set returns a Field holding a concrete value.
func Set[T any](v T) Field[T] {
	return Field[T]{value: v, state: fieldSet}
}

// Clear returns a Field that clears the stored column to null.
func Clear[T any]() Field[T] {
	return Field[T]{state: fieldClear}
}

// IsUnset reports whether the field was omitted from the request.
func (f Field[T]) IsUnset() bool { return f.state == fieldUnset }

// IsClear reports whether the field explicitly clears the column.
func (f Field[T]) IsClear() bool { return f.state == fieldClear }

// Value returns the concrete value and whether one was set.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.state == fieldSet
}
