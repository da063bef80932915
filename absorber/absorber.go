// Package absorber composes the porous material models into absorber design
// quantities for a homogeneous layer mounted on a rigid backing: surface
// impedance, normal-incidence pressure reflection coefficient, and
// normal-incidence absorption coefficient.
package absorber

import (
	"fmt"
	"math/cmplx"

	porous "github.com/willsbit/acustica-de-salas"
)

// SurfaceImpedance returns the surface impedance of a porous layer of the
// given depth (m) mounted on a rigid backing:
//
//	Zs = -j·Zc·cot(kc·d)
//
// zc and kc are the characteristic impedance and wave number of the layer
// material, evaluated elementwise over the same frequency vector; the
// result has the same length. Panics if the slices differ in length.
func SurfaceImpedance(zc, kc []complex128, depth float64) []complex128 {
	if len(zc) != len(kc) {
		panic("absorber: impedance and wave number vectors differ in length")
	}

	zs := make([]complex128, len(zc))
	d := complex(depth, 0)
	for i := range zc {
		zs[i] = complex(0, -1) * zc[i] * cmplx.Cot(kc[i]*d)
	}

	return zs
}

// ReflectionCoefficient returns the normal-incidence pressure reflection
// coefficient for each surface impedance element:
//
//	R = (Zs - Z0) / (Zs + Z0)
//
// where Z0 = ρ0·c0 is the impedance of free air.
func ReflectionCoefficient(zs []complex128, air porous.Air) []complex128 {
	z0 := complex(air.Impedance(), 0)

	r := make([]complex128, len(zs))
	for i := range zs {
		r[i] = (zs[i] - z0) / (zs[i] + z0)
	}

	return r
}

// Coefficient returns the normal-incidence absorption coefficient
// α = 1 - |R|² for each reflection coefficient element. For passive
// materials α lies in [0, 1].
func Coefficient(r []complex128) []float64 {
	alpha := make([]float64, len(r))
	for i := range r {
		mag := cmplx.Abs(r[i])
		alpha[i] = 1 - mag*mag
	}

	return alpha
}

// NormalIncidence computes the normal-incidence absorption coefficient of a
// rigid-backed porous layer using the Johnson-Champoux-Allard material
// model. It validates all parameters before computing, unlike the model
// functions themselves.
//
// f is the frequency vector in Hz (every element must be positive) and
// depth the layer thickness in m.
func NormalIncidence(f []float64, m porous.Material, depth float64, air porous.Air) ([]float64, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	if err := air.Validate(); err != nil {
		return nil, err
	}

	if depth <= 0 {
		return nil, fmt.Errorf("%w: layer depth must be positive", porous.ErrInvalidParameter)
	}

	for i, fi := range f {
		if fi <= 0 {
			return nil, fmt.Errorf("%w: frequency at index %d must be positive", porous.ErrInvalidParameter, i)
		}
	}

	zc, kc := porous.JohnsonChampouxAllard(f, m, air)
	zs := SurfaceImpedance(zc, kc, depth)

	return Coefficient(ReflectionCoefficient(zs, air)), nil
}
