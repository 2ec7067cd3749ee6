// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Optional fields across the catalog model are expressed as pointers. These helpers
keep constructors free of boilerplate while preserving immutability: values are
copied on the way in, so callers cannot mutate a constructed entity afterwards.

Key Functions:
  - To: Creates a pointer from a value literal.
  - Val: Safely dereferences a pointer, returning the zero value if nil.
  - Clone: Copies the pointed-to value into a fresh pointer.
  - Equal: Compares two optional values.
*/
package pointer

// To returns a pointer to the provided value.
// It is useful for optional struct fields (e.g. pointer.To("Castano")).
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Get dereferences p in the comma-ok form used by optional accessors.
func Get[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Clone returns a new pointer holding a copy of *p, or nil when p is nil.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Equal reports whether both pointers are nil, or both are set to equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
