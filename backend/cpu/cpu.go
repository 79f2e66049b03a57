// Copyright 2026 The Betagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU compute backend.
//
// The CPU backend implements every tensor operation in pure Go, including
// the elementwise regularized incomplete beta function.
//
// Example:
//
//	backend := cpu.New()
//	x := tensor.Scalar(0.5, backend)
//	y := x.Exp()
package cpu

import (
	"github.com/betagrad/betagrad/internal/backend/cpu"
)

// Backend is the CPU implementation of tensor.Backend and
// tensor.BetaincBackend.
type Backend = cpu.CPUBackend

// New creates a new CPU backend.
func New() *Backend {
	return cpu.New()
}
