// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarloMicieli/roundhouse/internal/platform/apperr"
)

/*
TestAppError_Constructors verifies codes and messages of every constructor.
*/
func TestAppError_Constructors(t *testing.T) {
	tests := []struct {
		name    string
		err     *apperr.AppError
		code    string
		message string
	}{
		{"validation", apperr.ValidationError("Validation failed"), apperr.CodeValidation, "Validation failed"},
		{"blank", apperr.Blank("control"), apperr.CodeBlank, "control value cannot be blank"},
		{
			"invalid",
			apperr.InvalidValue("control", "XYZ", "DCC", "DCC_READY"),
			apperr.CodeInvalidValue,
			`invalid value "XYZ" for control [allowed values are DCC, DCC_READY]`,
		},
		{"not_found", apperr.NotFound("Catalog item"), apperr.CodeNotFound, "Catalog item not found"},
		{"conflict", apperr.Conflict("duplicate"), apperr.CodeConflict, "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

/*
TestAppError_Details checks that field details are rendered and queryable.
*/
func TestAppError_Details(t *testing.T) {
	err := apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "quantity", Message: "Must not be negative"},
	)

	assert.Equal(t, "Validation failed (quantity: Must not be negative)", err.Error())
	assert.True(t, err.HasField("quantity"))
	assert.False(t, err.HasField("unit"))
}

/*
TestAppError_SingleFieldDetails verifies blank and invalid value errors keep
their field detail without repeating it in the message.
*/
func TestAppError_SingleFieldDetails(t *testing.T) {
	tests := []struct {
		name    string
		err     *apperr.AppError
		message string
	}{
		{"blank", apperr.Blank("control"), "control value cannot be blank"},
		{"invalid", apperr.InvalidValue("control", "XYZ"), `invalid value "XYZ" for control`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.err.Error())
			assert.True(t, tt.err.HasField("control"))
			assert.Len(t, tt.err.Details, 1)
		})
	}
}

/*
TestAppError_Chain verifies the helpers look through wrapped errors.
*/
func TestAppError_Chain(t *testing.T) {
	cause := errors.New("boom")
	inner := &apperr.AppError{Code: apperr.CodeConflict, Message: "dup", Cause: cause}
	wrapped := fmt.Errorf("catalog: %w", inner)

	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeConflict))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.ErrorIs(t, wrapped, cause)

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "dup", ae.Message)

	assert.Nil(t, apperr.As(cause))
	assert.False(t, apperr.HasCode(nil, apperr.CodeConflict))
}
