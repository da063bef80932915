// Package testutil provides reusable test helper functions for the
// complex-valued acoustic model tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	// ReferenceTolerance is the relative tolerance for comparing model
	// output against hand-computed reference values.
	ReferenceTolerance = 1e-9

	// LimitTolerance is the looser relative tolerance for asymptotic
	// convergence checks.
	LimitTolerance = 1e-2
)

// AssertComplexClose verifies that got matches want to within a relative
// tolerance, component by component. The tolerance is applied relative to
// the magnitude of want so that small imaginary parts of large complex
// numbers are not held to an absolute standard tighter than the value
// itself carries.
func AssertComplexClose(t *testing.T, want, got complex128, relTol float64, msgAndArgs ...any) bool {
	t.Helper()

	scale := cmplx.Abs(want)
	if scale == 0 {
		scale = 1
	}

	if math.Abs(real(got)-real(want)) > relTol*scale {
		return assert.Fail(t, "complex mismatch",
			"real part: got %v, want %v (rel tol %v)", real(got), real(want), relTol)
	}

	if math.Abs(imag(got)-imag(want)) > relTol*scale {
		return assert.Fail(t, "complex mismatch",
			"imag part: got %v, want %v (rel tol %v)", imag(got), imag(want), relTol)
	}

	return true
}

// AssertComplexSliceClose verifies two complex slices elementwise with
// AssertComplexClose semantics.
func AssertComplexSliceClose(t *testing.T, want, got []complex128, relTol float64) bool {
	t.Helper()

	if !assert.Len(t, got, len(want)) {
		return false
	}

	for i := range want {
		if !AssertComplexClose(t, want[i], got[i], relTol, "element %d", i) {
			return false
		}
	}

	return true
}

// AssertAllFinite verifies that no element of the slice has a NaN or Inf
// component.
func AssertAllFinite(t *testing.T, s []complex128, msgAndArgs ...any) bool {
	t.Helper()

	for i, v := range s {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return assert.Fail(t, "found non-finite value", "s[%d] = %v", i, v)
		}
	}

	return true
}

// AssertAllInRange verifies that all elements are within [minVal, maxVal].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()

	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}

	return true
}
