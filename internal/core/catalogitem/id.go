// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalogitem

import (
	"strings"

	"github.com/google/uuid"

	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/slug"
	"github.com/CarloMicieli/roundhouse/pkg/uuidv7"
)

// # Catalog Item ID

// ID identifies a catalog item. It is always the slug of the brand name
// followed by the item number, so two items with the same business key share
// the same ID.
//
// The only way to obtain an ID for an item is [New]; [ParseID] produces
// lookup keys.
type ID struct {
	value slug.Slug
}

func newID(brand Brand, itemNumber ItemNumber) ID {
	return ID{value: slug.Of(brand.Name(), itemNumber.String())}
}

// ParseID normalizes raw into a lookup key, e.g. "ACME 60000" becomes "acme-60000".
func ParseID(raw string) (ID, error) {
	s := slug.New(raw)
	if s.IsZero() {
		return ID{}, validate.RequiredError(FieldID, "This field is required")
	}
	return ID{value: s}, nil
}

func (id ID) String() string { return id.value.String() }
func (id ID) IsZero() bool { return id.value.IsZero() }
func (id ID) Compare(other ID) int { return id.value.Compare(other.value) }

// # Rolling Stock ID

// RollingStockID is a surrogate key for a single rolling stock record. It has
// no business meaning.
type RollingStockID struct {
	value uuid.UUID
}

// NewRollingStockID generates a new time-ordered identifier.
func NewRollingStockID() RollingStockID {
	return RollingStockID{value: uuidv7.New()}
}

// RollingStockIDFrom wraps an existing UUID.
func RollingStockIDFrom(id uuid.UUID) RollingStockID {
	return RollingStockID{value: id}
}

// ParseRollingStockID parses the canonical UUID text form.
func ParseRollingStockID(raw string) (RollingStockID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return RollingStockID{}, apperr.Blank(FieldRollingStockID)
	}
	id, err := uuidv7.Parse(raw)
	if err != nil {
		return RollingStockID{}, &apperr.AppError{
			Code:    apperr.CodeInvalidValue,
			Message: "invalid rolling stock id",
			Cause:   err,
		}
	}
	return RollingStockID{value: id}, nil
}

func (id RollingStockID) UUID() uuid.UUID { return id.value }
func (id RollingStockID) IsZero() bool { return id.value == uuid.Nil }
func (id RollingStockID) String() string { return id.value.String() }
