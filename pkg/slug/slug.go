// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates ASCII slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the canonical form behind every catalog identifier
// (e.g., "ACME" becomes "acme", "Ferrovie dello Stato" becomes "ferrovie-dello-stato").
// This package handles normalization, accent removal, and character sanitization.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Replaces non-alphanumeric characters with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
//
// The output only contains [a-z0-9-], so From(From(s)) == From(s).
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// # Slug Value

// Slug is a normalized identifier string. The zero value is the empty slug.
type Slug struct {
	value string
}

// New normalizes s into a [Slug].
func New(s string) Slug {
	return Slug{value: From(s)}
}

// Of joins the slugs of every part with a single hyphen, skipping parts that
// normalize to nothing.
//
// Example:
//
//	slug.Of("ACME", "60000") // "acme-60000"
func Of(parts ...string) Slug {
	normalized := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := From(p); s != "" {
			normalized = append(normalized, s)
		}
	}
	return Slug{value: strings.Join(normalized, "-")}
}

// String returns the normalized value.
func (s Slug) String() string { return s.value }

// IsZero reports whether the slug is empty.
func (s Slug) IsZero() bool { return s.value == "" }

// Compare orders slugs lexicographically.
func (s Slug) Compare(other Slug) int {
	return strings.Compare(s.value, other.value)
}
