package entities

import "database/sql"

// Nullable патч, записывающий значение.
func Nullable[T any](v T) *sql.Null[T] {
	return &sql.Null[T]{V: v, Valid: true}
}

// Null патч, записывающий NULL.
func Null[T any]() *sql.Null[T] {
	return &sql.Null[T]{}
}

// NullableFromPtr nil превращается в NULL.
func NullableFromPtr[T any](v *T) *sql.Null[T] {
	if v == nil {
		return Null[T]()
	}
	return Nullable(*v)
}
