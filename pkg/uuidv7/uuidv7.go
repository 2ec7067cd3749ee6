// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// # Why UUIDv7?
//
// Rolling stock records carry a surrogate identifier that has no business
// meaning. Version 7 values are random enough to be unique across data sources
// while still sorting by creation time, which keeps listings stable.
package uuidv7

import (
	"fmt"

	"github.com/google/uuid"
)

// New generates a new UUIDv7.
//
// # Safety
//
// It panics only if the OS random source is unavailable (extremely rare).
// This is acceptable as OS entropy failure is an unrecoverable system-level error.
func New() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id
}

// NewString generates a new UUIDv7 in its canonical string form.
func NewString() string {
	return New().String()
}

// Parse decodes s into a UUID. Any UUID version is accepted so that ids
// produced by other systems can be referenced.
func Parse(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("uuidv7: invalid UUID %q: %w", s, err)
	}
	return id, nil
}
