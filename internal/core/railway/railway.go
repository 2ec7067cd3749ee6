// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package railway defines the railway companies that operate the real rolling
stock reproduced by the models.

# Country

Countries are ISO 3166-1 alpha-2 region codes, checked with golang.org/x/text.
*/
package railway

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

// # Field Identifiers

const (
	FieldID                    = "railway_id"
	FieldName                  = "name"
	FieldRegisteredCompanyName = "registered_company_name"
	FieldCountry               = "country"
	FieldOwnership             = "ownership"
)

// # Country

// Country is an ISO 3166-1 region such as "IT" or "DE".
type Country struct {
	region language.Region
}

// ParseCountry accepts an alpha-2 code in any case.
func ParseCountry(code string) (Country, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Country{}, apperr.Blank(FieldCountry)
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() || len(code) != 2 {
		return Country{}, apperr.InvalidValue(FieldCountry, code)
	}
	return Country{region: region}, nil
}

// Code returns the upper case alpha-2 code.
func (c Country) Code() string { return c.region.String() }

func (c Country) String() string { return c.region.String() }

// IsZero reports whether the country was never parsed.
func (c Country) IsZero() bool { return c == Country{} }

// # Core Entity

// Railway is a railway company.
type Railway struct {
	id                    ID
	name                  string
	registeredCompanyName *string
	description           *string
	country               Country
	ownership             *Ownership
	periodOfActivity      *PeriodOfActivity
	trackGauge            *Gauge
	totalLength           *Length
	headquarters          []string
	metadata              metadata.Metadata
}

// Options holds the optional railway attributes.
type Options struct {
	RegisteredCompanyName *string
	Description           *string
	Ownership             *Ownership
	PeriodOfActivity      *PeriodOfActivity
	TrackGauge            *Gauge
	TotalLength           *Length
	Headquarters          []string
}

// New validates and builds a [Railway].
func New(id ID, name string, country Country, opts Options, meta metadata.Metadata) (Railway, error) {
	v := &validate.Validator{}
	v.Custom(FieldID, id.IsZero(), "This field is required").
		Required(FieldName, name).
		MaxLen(FieldName, name, 50).
		Custom(FieldCountry, country.IsZero(), "This field is required")

	if opts.Ownership != nil {
		v.OneOf(FieldOwnership, string(*opts.Ownership), string(OwnershipPrivate), string(OwnershipPublic))
	}
	if opts.RegisteredCompanyName != nil {
		v.MaxLen(FieldRegisteredCompanyName, *opts.RegisteredCompanyName, 250)
	}

	if err := v.Err(); err != nil {
		return Railway{}, err
	}

	var headquarters []string
	for _, city := range opts.Headquarters {
		if city = strings.TrimSpace(city); city != "" {
			headquarters = append(headquarters, city)
		}
	}

	return Railway{
		id:                    id,
		name:                  strings.TrimSpace(name),
		registeredCompanyName: pointer.Clone(opts.RegisteredCompanyName),
		description:           pointer.Clone(opts.Description),
		country:               country,
		ownership:             pointer.Clone(opts.Ownership),
		periodOfActivity:      pointer.Clone(opts.PeriodOfActivity),
		trackGauge:            pointer.Clone(opts.TrackGauge),
		totalLength:           pointer.Clone(opts.TotalLength),
		headquarters:          headquarters,
		metadata:              meta,
	}, nil
}

func (r Railway) ID() ID { return r.id }
func (r Railway) Name() string { return r.name }
func (r Railway) Country() Country { return r.country }
func (r Railway) Metadata() metadata.Metadata { return r.metadata }

func (r Railway) RegisteredCompanyName() (string, bool) { return pointer.Get(r.registeredCompanyName) }
func (r Railway) Description() (string, bool) { return pointer.Get(r.description) }
func (r Railway) Ownership() (Ownership, bool) { return pointer.Get(r.ownership) }
func (r Railway) PeriodOfActivity() (PeriodOfActivity, bool) { return pointer.Get(r.periodOfActivity) }
func (r Railway) TrackGauge() (Gauge, bool) { return pointer.Get(r.trackGauge) }
func (r Railway) TotalLength() (Length, bool) { return pointer.Get(r.totalLength) }

// Headquarters returns a copy of the cities hosting the company offices.
func (r Railway) Headquarters() []string {
	return append([]string(nil), r.headquarters...)
}

// IsActive reports whether the company still operates. A company without a
// known period of activity is assumed to be active.
func (r Railway) IsActive() bool {
	if r.periodOfActivity == nil {
		return true
	}
	return r.periodOfActivity.Status() == StatusActive
}

// String renders "<name> - <registered company name>", or just the name.
func (r Railway) String() string {
	if r.registeredCompanyName == nil {
		return r.name
	}
	return r.name + " - " + *r.registeredCompanyName
}
