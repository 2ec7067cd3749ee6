// Package metadata tracks the version and timestamps of catalog entities.
package metadata

import "time"

// Metadata is an immutable version stamp. Updates return a new value.
type Metadata struct {
	version      int
	createdAt    time.Time
	lastModified *time.Time
}

// New rebuilds a stamp from stored values.
func New(version int, createdAt time.Time, lastModified *time.Time) Metadata {
	m := Metadata{version: version, createdAt: createdAt}
	if lastModified != nil {
		t := *lastModified
		m.lastModified = &t
	}
	return m
}

// CreatedAt returns the first version of an entity created at t.
func CreatedAt(t time.Time) Metadata {
	return Metadata{version: 1, createdAt: t}
}

// UpdatedAt returns the next version, last modified at t.
func (m Metadata) UpdatedAt(t time.Time) Metadata {
	return Metadata{
		version:      m.version + 1,
		createdAt:    m.createdAt,
		lastModified: &t,
	}
}

// Version starts at 1 and grows by one on every update.
func (m Metadata) Version() int { return m.version }

// CreatedAtTime returns the creation time.
func (m Metadata) CreatedAtTime() time.Time { return m.createdAt }

// LastModified returns the last modification time, if the entity was ever updated.
func (m Metadata) LastModified() (time.Time, bool) {
	if m.lastModified == nil {
		return time.Time{}, false
	}
	return *m.lastModified, true
}
