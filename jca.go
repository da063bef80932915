package porous

import (
	"math"
	"math/cmplx"
)

// JohnsonChampouxAllard computes the characteristic impedance Zc and
// characteristic wave number kc of a rigid-frame porous material using the
// Johnson-Champoux-Allard semi-phenomenological model.
//
// The model combines the Johnson dynamic density (viscous effects) with the
// Champoux-Allard dynamic bulk modulus (thermal effects):
//
//	Zc = sqrt(K·ρc)
//	kc = ω·sqrt(ρc/K)
//
// f is the frequency vector in Hz; the returned slices have the same length
// as f, elementwise. The principal branch of the complex square root is
// used throughout, which keeps Re(Zc) >= 0 and Im(kc) <= 0 for physical
// parameters (e^(+jωt) convention).
//
// No validation is performed. A zero frequency makes the viscous and
// thermal correction terms divide by zero and produces Inf/NaN in the
// corresponding output elements; callers must exclude f = 0.
func JohnsonChampouxAllard(f []float64, m Material, air Air) (zc, kc []complex128) {
	zc = make([]complex128, len(f))
	kc = make([]complex128, len(f))

	for i, fi := range f {
		omega := 2 * math.Pi * fi

		rho := dynamicDensity(omega, m, air)
		k := dynamicBulkModulus(omega, m, air)

		zc[i] = cmplx.Sqrt(k * rho)
		kc[i] = complex(omega, 0) * cmplx.Sqrt(rho/k)
	}

	return zc, kc
}

// dynamicDensity returns the Johnson dynamic density ρc(ω):
//
//	ρc = ρ0·α∞·(1 + σφ/(j·α∞·ρ0·ω)·sqrt(1 + 4j·α∞²·η·ρ0·ω/(σ²Λ²φ²)))
//
// In the high-frequency limit the correction term vanishes and ρc tends to
// ρ0·α∞ (inertial regime); toward low frequency the viscous term dominates.
func dynamicDensity(omega float64, m Material, air Air) complex128 {
	visc := 4 * m.Tortuosity * m.Tortuosity * air.Viscosity * air.Density * omega /
		(m.FluxResistivity * m.FluxResistivity * m.ViscousLength * m.ViscousLength * m.Porosity * m.Porosity)
	branch := cmplx.Sqrt(complex(1, visc))

	return complex(air.Density*m.Tortuosity, 0) *
		(1 + complex(m.FluxResistivity*m.Porosity, 0)/
			complex(0, m.Tortuosity*air.Density*omega)*branch)
}

// dynamicBulkModulus returns the Champoux-Allard dynamic bulk modulus K(ω):
//
//	K = γ·P0 / (γ − (γ−1)/(1 + σφ/(j·α∞·ρ0·Pr·ω)·sqrt(1 + 4j·α∞²·η·Pr·ρ0·ω/(σ²Λ²φ²))))
//
// The structure mirrors dynamicDensity with the viscosity scaled by the
// Prandtl number, trading viscous for thermal boundary-layer effects.
// K spans γ·P0 (adiabatic, high frequency) down to P0 (isothermal, ω → 0).
func dynamicBulkModulus(omega float64, m Material, air Air) complex128 {
	visc := 4 * m.Tortuosity * m.Tortuosity * air.Viscosity * air.Density * omega /
		(m.FluxResistivity * m.FluxResistivity * m.ViscousLength * m.ViscousLength * m.Porosity * m.Porosity)
	branch := cmplx.Sqrt(complex(1, visc*air.Prandtl))

	g := complex(m.FluxResistivity*m.Porosity, 0) /
		complex(0, m.Tortuosity*air.Density*air.Prandtl*omega) * branch

	gamma := air.SpecificHeatRatio
	return complex(gamma*air.Pressure, 0) /
		(complex(gamma, 0) - complex(gamma-1, 0)/(1+g))
}
