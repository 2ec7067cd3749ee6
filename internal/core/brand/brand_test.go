// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package brand_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarloMicieli/roundhouse/internal/core/brand"
	"github.com/CarloMicieli/roundhouse/internal/core/metadata"
	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
	"github.com/CarloMicieli/roundhouse/pkg/pointer"
)

var createdAt = time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)

/*
TestNewID verifies brand ids are slugs and blank names are rejected.
*/
func TestNewID(t *testing.T) {
	id, err := brand.NewID("brand name")
	require.NoError(t, err)
	assert.Equal(t, "brand-name", id.String())

	other, err := brand.NewID("Brand  Name!")
	require.NoError(t, err)
	assert.Zero(t, id.Compare(other))

	_, err = brand.NewID("  ")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestNew creates a fully populated brand.
*/
func TestNew(t *testing.T) {
	id, err := brand.NewID("ACME")
	require.NoError(t, err)

	b, err := brand.New(id, "ACME", brand.Options{
		RegisteredCompanyName: pointer.To("Associazione Costruzioni Modellistiche Esatte"),
	}, metadata.CreatedAt(createdAt))
	require.NoError(t, err)

	assert.Equal(t, "acme", b.ID().String())
	assert.Equal(t, "ACME", b.Name())
	assert.Equal(t, "ACME", b.String())

	rcn, ok := b.RegisteredCompanyName()
	assert.True(t, ok)
	assert.Equal(t, "Associazione Costruzioni Modellistiche Esatte", rcn)

	_, ok = b.GroupName()
	assert.False(t, ok)
	_, ok = b.Description()
	assert.False(t, ok)

	assert.Equal(t, brand.TypeIndustrial, b.Type())
	assert.Equal(t, brand.StatusActive, b.Status())
	assert.True(t, b.IsActive())
	assert.Equal(t, 1, b.Metadata().Version())
}

/*
TestNew_Invalid collects every failing field.
*/
func TestNew_Invalid(t *testing.T) {
	_, err := brand.New(brand.ID{}, " ", brand.Options{Type: "plastic"}, metadata.CreatedAt(createdAt))
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.True(t, ae.HasField(brand.FieldID))
	assert.True(t, ae.HasField(brand.FieldName))
	assert.True(t, ae.HasField(brand.FieldType))
}

/*
TestParseType_ParseStatus distinguishes blank and unknown values.
*/
func TestParseType_ParseStatus(t *testing.T) {
	bt, err := brand.ParseType("brass_models")
	require.NoError(t, err)
	assert.Equal(t, brand.TypeBrassModels, bt)

	_, err = brand.ParseType("")
	assert.True(t, apperr.HasCode(err, apperr.CodeBlank))
	_, err = brand.ParseType("plastic")
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidValue))

	st, err := brand.ParseStatus("out_of_business")
	require.NoError(t, err)
	assert.Equal(t, brand.StatusOutOfBusiness, st)
}
