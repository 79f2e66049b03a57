// Copyright 2026 The Betagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/betagrad/betagrad/internal/tensor"
)

// Backend is the interface all compute backends implement: element-wise
// arithmetic, scalar arithmetic, math functions, comparisons and
// conditional selection, all with NumPy-style broadcasting.
type Backend = tensor.Backend

// BetaincBackend is implemented by backends that evaluate the regularized
// incomplete beta function elementwise.
type BetaincBackend = tensor.BetaincBackend
