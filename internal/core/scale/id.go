package scale

import (
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/slug"
)

// ID identifies a modelling scale, e.g. "h0" or "h0m".
type ID struct {
	value slug.Slug
}

func NewID(raw string) (ID, error) {
	s := slug.New(raw)
	if s.IsZero() {
		return ID{}, validate.RequiredError(FieldID, "This field is required")
	}
	return ID{value: s}, nil
}

func (id ID) String() string { return id.value.String() }
func (id ID) IsZero() bool { return id.value.IsZero() }
func (id ID) Compare(other ID) int { return id.value.Compare(other.value) }
