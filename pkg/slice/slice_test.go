// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CarloMicieli/roundhouse/pkg/slice"
)

/*
TestSlice_MapFilterAny covers the generic helpers.
*/
func TestSlice_MapFilterAny(t *testing.T) {
	names := []string{"E.444", "D.445", "ALn 668"}

	upper := slice.Map(names, strings.ToUpper)
	assert.Equal(t, []string{"E.444", "D.445", "ALN 668"}, upper)
	assert.Nil(t, slice.Map[string, string](nil, strings.ToUpper))

	isLoco := func(s string) bool { return strings.Contains(s, ".") }
	assert.Equal(t, []string{"E.444", "D.445"}, slice.Filter(names, isLoco))
	assert.Empty(t, slice.Filter(nil, isLoco))

	assert.True(t, slice.Any(names, isLoco))
	assert.False(t, slice.Any([]string{"ALn 668"}, isLoco))
}
