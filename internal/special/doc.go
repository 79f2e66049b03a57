// Package special implements the scalar special functions behind betagrad:
// the regularized incomplete beta function evaluated by a Lentz-style
// continued fraction, its closed-form derivative with respect to x, and the
// log-beta and digamma helpers the gradient rules need.
//
// Every function here is pure: float64 in, float64 out, no state, no
// allocation. Tensor backends map these routines elementwise over broadcast
// batches. Domain violations (a <= 0, b <= 0, x outside [0, 1]) are not
// guarded; they propagate NaN/Inf through the floating-point pipeline, as a
// numeric library should.
package special
