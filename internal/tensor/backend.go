package tensor

// Backend defines the elementwise compute interface betagrad needs.
// All binary operations follow NumPy broadcasting rules; comparison
// operations return Bool tensors.
//
// Implementations:
//   - cpu.CPUBackend: pure Go kernels
//   - autodiff.AutodiffBackend: decorator recording operations on a tape
type Backend interface {
	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Scalar operations (element-wise with a scalar; the scalar may be any
	// Go numeric type and is converted to the tensor's dtype)
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor
	Lgamma(x *RawTensor) *RawTensor

	// Clamp limits every element to the interval [lo, hi].
	Clamp(x *RawTensor, lo, hi float64) *RawTensor

	// Comparison operations (element-wise, return Bool tensor)
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	GreaterEqual(a, b *RawTensor) *RawTensor
	LowerEqual(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor

	// Where performs conditional element selection over the broadcast of
	// (condition, x, y).
	Where(condition, x, y *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}

// BetaincBackend is implemented by backends that evaluate the regularized
// incomplete beta function I_x(a, b) elementwise over the broadcast of its
// three arguments. epsilon, minIters and maxIters control the underlying
// continued-fraction evaluation; they are per-call values, never stored
// backend state.
type BetaincBackend interface {
	Betainc(a, b, x *RawTensor, epsilon float64, minIters, maxIters int) *RawTensor
}
