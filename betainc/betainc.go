// Copyright 2026 The Betagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package betainc provides the differentiable regularized incomplete beta
// function and the Student's t distribution built on it.
//
// The forward evaluation uses a modified Lentz continued fraction with
// configurable convergence parameters. Run on a plain CPU backend the
// functions just compute values; run on an autodiff backend every result
// is differentiable with respect to its tensor inputs: the derivative in x
// is exact (the Beta density), while the derivatives in a and b use fixed
// central finite differences.
//
// Example:
//
//	backend := cpu.New()
//	a := tensor.Scalar(2.0, backend)
//	b := tensor.Scalar(3.0, backend)
//	x := tensor.Scalar(0.5, backend)
//	y := betainc.Betainc(a, b, x) // 0.6875
package betainc

import (
	"github.com/betagrad/betagrad/internal/distribution"
	"github.com/betagrad/betagrad/internal/special"
	"github.com/betagrad/betagrad/tensor"
)

// Precision controls the continued-fraction evaluation: convergence
// tolerance and iteration bounds. Zero-valued fields fall back to the
// defaults.
type Precision = special.Precision

// DefaultPrecision returns the default convergence parameters:
// epsilon 1e-14, at least 3 and at most 500 iterations.
func DefaultPrecision() Precision {
	return special.DefaultPrecision()
}

// Betainc computes the regularized incomplete beta function I_x(a, b)
// elementwise over the broadcast of its arguments.
func Betainc[T tensor.Float, B tensor.Backend](a, b, x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return distribution.Betainc(a, b, x)
}

// BetaincWithPrecision is Betainc with explicit convergence parameters.
func BetaincWithPrecision[T tensor.Float, B tensor.Backend](a, b, x *tensor.Tensor[T, B], p Precision) *tensor.Tensor[T, B] {
	return distribution.BetaincWithPrecision(a, b, x, p)
}

// CDFT computes the standard Student's t cumulative distribution function
// with df degrees of freedom, elementwise over the broadcast of x and df.
func CDFT[T tensor.Float, B tensor.Backend](x, df *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return distribution.CDFT(x, df)
}

// CDFTWithPrecision computes the Student's t CDF at t = (x - loc) / scale
// with explicit convergence parameters. A nil loc defaults to 0 and a nil
// scale to 1.
func CDFTWithPrecision[T tensor.Float, B tensor.Backend](x, df, loc, scale *tensor.Tensor[T, B], p Precision) *tensor.Tensor[T, B] {
	return distribution.CDFTWithPrecision(x, df, loc, scale, p)
}

// StudentT is a Student's t distribution with optional location and scale.
type StudentT[T tensor.Float, B tensor.Backend] = distribution.StudentT[T, B]

// NewStudentT constructs a Student's t distribution. loc and scale may be
// nil, meaning 0 and 1.
func NewStudentT[T tensor.Float, B tensor.Backend](df, loc, scale *tensor.Tensor[T, B]) *StudentT[T, B] {
	return distribution.NewStudentT(df, loc, scale)
}
