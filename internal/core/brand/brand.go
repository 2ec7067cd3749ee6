// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package brand defines model railway manufacturers.

A brand is identified by the slug of its name. Contact details, addresses and
social handles are owned by other systems and are not modelled here.
*/
package brand

import (
	"strings"

	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

// # Domain Enums

// Type classifies how a manufacturer produces its models.
type Type string

const (
	// TypeIndustrial manufacturers produce models using the die casting method.
	TypeIndustrial Type = "industrial"

	// TypeBrassModels manufacturers produce hand made models in brass or similar alloys,
	// usually in limited series.
	TypeBrassModels Type = "brass_models"
)

// ParseType parses a brand type. Blank input and unknown values fail differently.
func ParseType(raw string) (Type, error) {
	return validate.Enum(FieldType, raw, TypeIndustrial, TypeBrassModels)
}

// Status tells whether a manufacturer is still in business.
type Status string

const (
	StatusActive        Status = "active"
	StatusOutOfBusiness Status = "out_of_business"
)

// ParseStatus parses a brand status.
func ParseStatus(raw string) (Status, error) {
	return validate.Enum(FieldStatus, raw, StatusActive, StatusOutOfBusiness)
}

// # Field Identifiers

const (
	FieldID                    = "brand_id"
	FieldName                  = "name"
	FieldRegisteredCompanyName = "registered_company_name"
	FieldGroupName             = "group_name"
	FieldType                  = "brand_type"
	FieldStatus                = "status"
)

// # Core Entity

// Brand is a model railways manufacturer.
type Brand struct {
	id                    ID
	name                  string
	registeredCompanyName *string
	groupName             *string
	description           *string
	brandType             Type
	status                Status
	metadata              metadata.Metadata
}

// Options holds the optional brand attributes.
//
// A zero Type or Status falls back to [TypeIndustrial] and [StatusActive].
type Options struct {
	RegisteredCompanyName *string
	GroupName             *string
	Description           *string
	Type                  Type
	Status                Status
}

// New validates and builds a [Brand].
func New(id ID, name string, opts Options, meta metadata.Metadata) (Brand, error) {
	if opts.Type == "" {
		opts.Type = TypeIndustrial
	}
	if opts.Status == "" {
		opts.Status = StatusActive
	}

	v := &validate.Validator{}
	v.Custom(FieldID, id.IsZero(), "This field is required").
		Required(FieldName, name).
		MaxLen(FieldName, name, 100).
		OneOf(FieldType, string(opts.Type), string(TypeIndustrial), string(TypeBrassModels)).
		OneOf(FieldStatus, string(opts.Status), string(StatusActive), string(StatusOutOfBusiness))

	if err := v.Err(); err != nil {
		return Brand{}, err
	}

	return Brand{
		id:                    id,
		name:                  strings.TrimSpace(name),
		registeredCompanyName: pointer.Clone(opts.RegisteredCompanyName),
		groupName:             pointer.Clone(opts.GroupName),
		description:           pointer.Clone(opts.Description),
		brandType:             opts.Type,
		status:                opts.Status,
		metadata:              meta,
	}, nil
}

// ID returns this brand unique identifier.
func (b Brand) ID() ID { return b.id }

// Name returns this brand name.
func (b Brand) Name() string { return b.name }

// RegisteredCompanyName returns the formal company name, if known.
func (b Brand) RegisteredCompanyName() (string, bool) { return pointer.Get(b.registeredCompanyName) }

// GroupName returns the industrial group owning the brand, if any.
func (b Brand) GroupName() (string, bool) { return pointer.Get(b.groupName) }

func (b Brand) Description() (string, bool) { return pointer.Get(b.description) }

func (b Brand) Type() Type { return b.brandType }
func (b Brand) Status() Status { return b.status }
func (b Brand) Metadata() metadata.Metadata { return b.metadata }

// IsActive reports whether the manufacturer is still in business.
func (b Brand) IsActive() bool { return b.status == StatusActive }

// String renders the brand name.
func (b Brand) String() string { return b.name }
