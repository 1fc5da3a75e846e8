// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI(t *testing.T) {
	tape := autodiff.NewTape()
	a := tape.Leaf(2)
	b := tape.Leaf(-3)
	c := tape.Leaf(10)

	d := autodiff.Add(autodiff.Mul(a, b), c)
	require.Equal(t, 4.0, d.Data())

	d.Backward()
	assert.Equal(t, -3.0, a.Grad())
	assert.Equal(t, 2.0, b.Grad())
	assert.Equal(t, 1.0, c.Grad())

	_, err := autodiff.Pow(a, b)
	assert.ErrorIs(t, err, autodiff.ErrInvalidExponent)

	z := autodiff.Div(autodiff.Scalar(1), tape.Leaf(4))
	assert.Equal(t, 0.25, z.Data())
	assert.Equal(t, 6.0, autodiff.Sub(autodiff.Scalar(10), tape.Leaf(4)).Data())
	assert.Equal(t, 3.0, autodiff.Sum(a, tape.Leaf(1)).Data())
}
