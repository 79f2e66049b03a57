// Copyright 2026 The Betagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package betainc_test

import (
	"fmt"

	"github.com/betagrad/betagrad/autodiff"
	"github.com/betagrad/betagrad/backend/cpu"
	"github.com/betagrad/betagrad/betainc"
	"github.com/betagrad/betagrad/tensor"
)

func ExampleBetainc() {
	backend := cpu.New()

	a := tensor.Scalar(2.0, backend)
	b := tensor.Scalar(3.0, backend)
	x := tensor.Scalar(0.5, backend)

	y := betainc.Betainc(a, b, x)
	fmt.Printf("%.6f\n", y.Item())
	// Output: 0.687500
}

func ExampleCDFT() {
	backend := cpu.New()

	x := tensor.Scalar(0.0, backend)
	df := tensor.Scalar(5.0, backend)

	fmt.Printf("%.6f\n", betainc.CDFT(x, df).Item())
	// Output: 0.500000
}

func ExampleBetainc_gradient() {
	backend := autodiff.New(cpu.New())
	backend.Tape().StartRecording()

	a := tensor.Scalar(2.0, backend)
	b := tensor.Scalar(3.0, backend)
	x := tensor.Scalar(0.5, backend).RequireGrad()

	y := betainc.Betainc(a, b, x)
	grads := autodiff.Backward(y, backend)

	fmt.Printf("dI/dx = %.6f\n", grads[x.Raw()].AsFloat64()[0])
	// Output: dI/dx = 1.500000
}

func ExampleNewStudentT() {
	backend := cpu.New()

	dist := betainc.NewStudentT(tensor.Scalar(5.0, backend), nil, nil)
	cdf := dist.CDF(tensor.Scalar(2.015048373, backend))

	fmt.Printf("%.4f\n", cdf.Item())
	// Output: 0.9500
}
