package porous

import "math"

// Delany-Bazley power-law coefficients, from the original 1970 regression
// on fibrous absorbent materials.
const (
	dbImpedanceRealCoeff = 9.08
	dbImpedanceRealExp   = -0.75
	dbImpedanceImagCoeff = 11.9
	dbImpedanceImagExp   = -0.73

	dbWaveRealCoeff = 10.8
	dbWaveRealExp   = -0.70
	dbWaveImagCoeff = 10.3
	dbWaveImagExp   = -0.59
)

// DelanyBazley computes the characteristic impedance Zc and characteristic
// wave number kc of a porous material using the Delany-Bazley empirical
// power-law model.
//
// f is the frequency vector in Hz and sigma the flux resistivity of the
// material in N·s/m⁴. The returned slices have the same length as f, with
// element i corresponding to f[i]. The regression is accurate for
// 0.01 < f/sigma < 1.00 with sigma expressed in kN·s/m⁴; values outside
// that range are computed but carry reduced accuracy.
//
// No validation is performed: sigma <= 0 or non-positive frequencies yield
// NaN through the fractional powers, per IEEE semantics.
func DelanyBazley(f []float64, sigma float64, air Air) (zc, kc []complex128) {
	zc = make([]complex128, len(f))
	kc = make([]complex128, len(f))

	z0 := air.Impedance()
	for i, fi := range f {
		// Dimensionless regression variable, f/sigma with sigma in kN·s/m⁴.
		x := 1e3 * fi / sigma

		zc[i] = complex(
			z0*(1+dbImpedanceRealCoeff*math.Pow(x, dbImpedanceRealExp)),
			-z0*dbImpedanceImagCoeff*math.Pow(x, dbImpedanceImagExp),
		)

		k0 := 2 * math.Pi * fi / air.SpeedOfSound
		kc[i] = complex(
			k0*(1+dbWaveRealCoeff*math.Pow(x, dbWaveRealExp)),
			-k0*dbWaveImagCoeff*math.Pow(x, dbWaveImagExp),
		)
	}

	return zc, kc
}

// DelanyBazleyAlt is [DelanyBazley] with the alternative wave-number
// convention found in some published implementations, where the real and
// imaginary regression terms of kc trade places:
//
//	kc = (2πf/c0) · (10.3·x^-0.59 + j·(1 + 10.8·x^-0.70))
//
// Zc is identical to [DelanyBazley]. The two conventions are not
// interchangeable downstream (the propagation and attenuation roles swap),
// so both are kept as separate functions rather than silently unified.
func DelanyBazleyAlt(f []float64, sigma float64, air Air) (zc, kc []complex128) {
	zc, _ = DelanyBazley(f, sigma, air)

	kc = make([]complex128, len(f))
	for i, fi := range f {
		x := 1e3 * fi / sigma

		k0 := 2 * math.Pi * fi / air.SpeedOfSound
		kc[i] = complex(
			k0*dbWaveImagCoeff*math.Pow(x, dbWaveImagExp),
			k0*(1+dbWaveRealCoeff*math.Pow(x, dbWaveRealExp)),
		)
	}

	return zc, kc
}
