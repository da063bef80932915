// Package porous provides frequency-dependent acoustic material models for
// porous sound absorbers in pure Go.
//
// The package computes the two quantities that characterize wave propagation
// inside a porous material: the characteristic impedance Zc and the
// characteristic wave number kc, both complex-valued functions of frequency.
// These feed directly into absorber design calculations such as surface
// impedance, reflection coefficient, and absorption coefficient (see the
// absorber subpackage).
//
// # Models
//
// Two alternative models are provided:
//
//   - [DelanyBazley]: the classic empirical power-law model, parameterized by
//     flux resistivity alone. Fast, widely used for fibrous materials, valid
//     for 0.01 < f/sigma < 1.00 with sigma in kN·s/m⁴.
//   - [JohnsonChampouxAllard]: the semi-phenomenological rigid-frame model,
//     parameterized by flux resistivity, tortuosity, porosity, and viscous
//     characteristic length. More accurate over a wider frequency range.
//
// A second wave-number convention of the empirical model is preserved as
// [DelanyBazleyAlt]; see its documentation for when it applies.
//
// # Quick Start
//
// Evaluate the empirical model over a third-octave frequency vector:
//
//	f := porous.ThirdOctaveBands()
//	zc, kc := porous.DelanyBazley(f, 4000, porous.DefaultAir())
//
// Evaluate the semi-phenomenological model for a characterized material:
//
//	m := porous.Material{
//	    FluxResistivity: 10000,  // N·s/m⁴
//	    Tortuosity:      1.2,
//	    Porosity:        0.95,
//	    ViscousLength:   100e-6, // m
//	}
//	if err := m.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	zc, kc := porous.JohnsonChampouxAllard(f, m, porous.DefaultAir())
//
// # Conventions
//
// Time dependence is e^(+jωt), so physical attenuation corresponds to a
// negative imaginary part of kc. All complex square roots use the principal
// branch (non-negative real part), which keeps Re(Zc) >= 0 for physical
// parameters. Viscous characteristic length is in metres; published values
// quoted in µm must be converted by the caller.
//
// # Error Handling
//
// The model functions perform no validation and follow IEEE floating-point
// semantics: degenerate inputs (zero frequency, non-positive resistivity)
// propagate NaN or Inf through the output instead of returning errors.
// Call [Material.Validate] and [Air.Validate] up front when inputs come from
// untrusted sources; the absorber subpackage does this for you.
//
// # Thread Safety
//
// Every function in this package is pure: no shared state, no mutation of
// inputs, freshly allocated outputs. Concurrent calls are safe.
package porous
