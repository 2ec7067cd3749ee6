// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package railway

import (
	"time"

	"github.com/CarloMicieli/roundhouse/internal/platform/validate"
)

// Ownership tells whether a railway company is private or public.
type Ownership string

const (
	OwnershipPrivate Ownership = "PRIVATE"
	OwnershipPublic  Ownership = "PUBLIC"
)

// ParseOwnership parses an ownership value.
func ParseOwnership(raw string) (Ownership, error) {
	return validate.Enum(FieldOwnership, raw, OwnershipPrivate, OwnershipPublic)
}

// Status tells whether a railway company still operates.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Date is either a year or an exact day. Railway histories are often known
// only to the year.
type Date struct {
	year int
	day  *time.Time
}

// Year builds a year-only date.
func Year(year int) Date { return Date{year: year} }

// ExactDay builds a date from a calendar day; the time of day is dropped.
func ExactDay(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{year: day.Year(), day: &day}
}

func (d Date) Year() int { return d.year }

// Day returns the exact day, when known.
func (d Date) Day() (time.Time, bool) {
	if d.day == nil {
		return time.Time{}, false
	}
	return *d.day, true
}

// Before reports whether d is strictly earlier than other. Year-only dates
// only compare by year.
func (d Date) Before(other Date) bool {
	if d.day != nil && other.day != nil {
		return d.day.Before(*other.day)
	}
	return d.year < other.year
}

func (d Date) String() string {
	if d.day != nil {
		return d.day.Format(time.DateOnly)
	}
	return time.Date(d.year, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

// PeriodOfActivity records when a railway company started, and possibly
// ended, its operations.
type PeriodOfActivity struct {
	operatingSince Date
	operatingUntil *Date
	status         Status
}

// ActiveRailway is a company operating since the given date.
func ActiveRailway(since Date) PeriodOfActivity {
	return PeriodOfActivity{operatingSince: since, status: StatusActive}
}

// InactiveRailway is a company that ceased operations. until must not precede since.
func InactiveRailway(since, until Date) (PeriodOfActivity, error) {
	v := &validate.Validator{}
	v.Custom("operating_until", until.Before(since), "Must not precede operating_since")
	if err := v.Err(); err != nil {
		return PeriodOfActivity{}, err
	}
	return PeriodOfActivity{operatingSince: since, operatingUntil: &until, status: StatusInactive}, nil
}

func (p PeriodOfActivity) OperatingSince() Date { return p.operatingSince }
func (p PeriodOfActivity) Status() Status { return p.status }

func (p PeriodOfActivity) OperatingUntil() (Date, bool) {
	if p.operatingUntil == nil {
		return Date{}, false
	}
	return *p.operatingUntil, true
}
