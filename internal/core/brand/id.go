package brand

import (
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/slug"
)

// ID identifies a brand. It is the slug of the brand name.
type ID struct {
	value slug.Slug
}

// NewID normalizes raw into a brand [ID]. Text that normalizes to nothing is rejected.
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
