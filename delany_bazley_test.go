package porous

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willsbit/acustica-de-salas/internal/testutil"
)

// TestDelanyBazley_ReferenceValues verifies the empirical model against
// hand-computed formula output at several frequency/resistivity points.
func TestDelanyBazley_ReferenceValues(t *testing.T) {
	f := []float64{100, 1000, 5000}
	const sigma = 4000.0

	// Reference values evaluated directly from the power-law formulas with
	// c0 = 343, rho0 = 1.21.
	wantZc := []complex128{
		complex(752.092418309271, -471.11859422805816),
		complex(474.9691158377303, -87.72638741547601),
		complex(432.95597676308546, -27.094562466906577),
	}
	wantKc := []complex128{
		complex(3.9103394810775103, -2.824479115757168),
		complex(22.465491259094012, -7.2600292076609545),
		complex(98.31275570196311, -14.044816509793042),
	}

	zc, kc := DelanyBazley(f, sigma, DefaultAir())

	testutil.AssertComplexSliceClose(t, wantZc, zc, testutil.ReferenceTolerance)
	testutil.AssertComplexSliceClose(t, wantKc, kc, testutil.ReferenceTolerance)
}

// TestDelanyBazleyAlt_SwappedConvention verifies that the alternative
// variant shares Zc with the primary variant and swaps the real and
// imaginary regression terms of kc.
func TestDelanyBazleyAlt_SwappedConvention(t *testing.T) {
	f := []float64{100, 250, 1000, 5000}
	const sigma = 4000.0
	air := DefaultAir()

	zc, kc := DelanyBazley(f, sigma, air)
	zcAlt, kcAlt := DelanyBazleyAlt(f, sigma, air)

	assert.Equal(t, zc, zcAlt, "Zc must be identical in both conventions")

	for i := range f {
		// The magnitude terms trade places: real(alt) = -imag(primary),
		// imag(alt) = real(primary).
		assert.Equal(t, -imag(kc[i]), real(kcAlt[i]), "element %d real part", i)
		assert.Equal(t, real(kc[i]), imag(kcAlt[i]), "element %d imag part", i)
	}
}

// TestDelanyBazley_LengthPreserved verifies output lengths track the input
// frequency vector, including the empty case.
func TestDelanyBazley_LengthPreserved(t *testing.T) {
	tests := []struct {
		name string
		f    []float64
	}{
		{"Empty", []float64{}},
		{"Single", []float64{1000}},
		{"ThirdOctaves", ThirdOctaveBands()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zc, kc := DelanyBazley(tt.f, 4000, DefaultAir())
			assert.Len(t, zc, len(tt.f))
			assert.Len(t, kc, len(tt.f))

			zc, kc = DelanyBazleyAlt(tt.f, 4000, DefaultAir())
			assert.Len(t, zc, len(tt.f))
			assert.Len(t, kc, len(tt.f))
		})
	}
}

// TestDelanyBazley_Elementwise verifies there is no cross-element coupling:
// evaluating a vector whole or in split halves yields identical results.
func TestDelanyBazley_Elementwise(t *testing.T) {
	f := LogFrequencies(50, 5000, 32)
	const sigma = 4000.0
	air := DefaultAir()

	zcWhole, kcWhole := DelanyBazley(f, sigma, air)

	zcLo, kcLo := DelanyBazley(f[:16], sigma, air)
	zcHi, kcHi := DelanyBazley(f[16:], sigma, air)

	assert.Equal(t, zcWhole, append(zcLo, zcHi...))
	assert.Equal(t, kcWhole, append(kcLo, kcHi...))
}

// TestDelanyBazley_DegenerateInputs verifies that out-of-domain inputs
// propagate NaN/Inf instead of being silently clamped or rejected.
func TestDelanyBazley_DegenerateInputs(t *testing.T) {
	air := DefaultAir()

	// Zero frequency: x^-0.75 diverges.
	zc, _ := DelanyBazley([]float64{0}, 4000, air)
	require.Len(t, zc, 1)
	assert.True(t, cmplx.IsInf(zc[0]) || cmplx.IsNaN(zc[0]),
		"zero frequency should produce a non-finite impedance, got %v", zc[0])

	// Negative resistivity: fractional power of a negative number.
	zc, _ = DelanyBazley([]float64{1000}, -4000, air)
	require.Len(t, zc, 1)
	assert.True(t, cmplx.IsNaN(zc[0]),
		"negative resistivity should produce NaN, got %v", zc[0])
}
