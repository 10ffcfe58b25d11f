// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

// Package matrix provisions the dense operands of a simulated matrix multiply
// and checks the product against a reference.
//
// Matrices are row-major *mat.Dense values. The simulator writes the output
// through RawRowView, so every matrix returned here owns contiguous storage
// with stride equal to its column count.
package matrix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Fill selects how an input operand is populated.
type Fill string

const (
	// FillOnes sets every element to 1.0.
	FillOnes Fill = "ones"
	// FillRandom draws every element uniformly from [-1, 1).
	FillRandom Fill = "random"
)

// ParseFill converts a flag value to a Fill.
func ParseFill(s string) (Fill, error) {
	switch f := Fill(s); f {
	case FillOnes, FillRandom:
		return f, nil
	default:
		return "", fmt.Errorf("unknown fill %q (want %q or %q)", s, FillOnes, FillRandom)
	}
}

// Zeros returns a rows x cols matrix of zeros.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Ones returns a rows x cols matrix with every element 1.0.
func Ones(rows, cols int) *mat.Dense {
	return Constant(rows, cols, 1)
}

// Constant returns a rows x cols matrix with every element set to v.
func Constant(rows, cols int, v float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(rows, cols, data)
}

// Random returns a rows x cols matrix with elements uniform in [-1, 1).
// The same seed always yields the same matrix.
func Random(rows, cols int, seed uint64) *mat.Dense {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	return mat.NewDense(rows, cols, data)
}

// New returns a rows x cols matrix populated according to fill.
func New(rows, cols int, fill Fill, seed uint64) (*mat.Dense, error) {
	switch fill {
	case FillOnes:
		return Ones(rows, cols), nil
	case FillRandom:
		return Random(rows, cols, seed), nil
	default:
		return nil, fmt.Errorf("matrix.New: unknown fill %q", fill)
	}
}

// Verify checks c against the reference product a*b computed by gonum.
// Elements may differ by at most tol relative to max(1, |want|).
func Verify(a, b, c mat.Matrix, tol float64) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	cr, cc := c.Dims()
	if ac != br || cr != ar || cc != bc {
		return fmt.Errorf("matrix.Verify: shape mismatch %dx%d * %dx%d != %dx%d", ar, ac, br, bc, cr, cc)
	}

	var want mat.Dense
	want.Mul(a, b)
	for i := range cr {
		for j := range cc {
			w, g := want.At(i, j), c.At(i, j)
			if math.Abs(w-g) > tol*math.Max(1, math.Abs(w)) {
				return fmt.Errorf("matrix.Verify: c[%d][%d] = %g, want %g", i, j, g, w)
			}
		}
	}
	return nil
}
