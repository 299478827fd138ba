package models

// Nullable is an assignment to a nullable column in a partial update.
// Set reports whether the column is assigned; a nil Value assigns NULL.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// Assign returns a Nullable that sets the column to v
func Assign[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: &v}
}

// Clear returns a Nullable that sets the column to NULL
func Clear[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}
