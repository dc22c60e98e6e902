// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pwe/matrix"
	"github.com/stretchr/testify/assert"
)

// TestOptionConstructorsPanic verifies that nonsensical option values are
// treated as programmer errors.
func TestOptionConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	assert.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	assert.Panics(t, func() { matrix.WithMaxSweeps(0) })
	assert.NotPanics(t, func() { matrix.WithEpsilon(0) })
	assert.NotPanics(t, func() { matrix.WithMaxSweeps(1) })
}
