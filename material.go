package porous

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a material or air parameter outside its
// physical domain.
var ErrInvalidParameter = errors.New("invalid acoustic parameter")

// Material holds the macroscopic parameters of a rigid-frame porous
// material as used by the [JohnsonChampouxAllard] model. The empirical
// [DelanyBazley] model uses FluxResistivity alone.
type Material struct {
	// FluxResistivity is the static airflow resistivity σ, N·s/m⁴.
	FluxResistivity float64

	// Tortuosity is the high-frequency limit of tortuosity α∞,
	// dimensionless, >= 1 (1 for straight cylindrical pores).
	Tortuosity float64

	// Porosity is the open-pore volume fraction φ, in (0, 1].
	Porosity float64

	// ViscousLength is the viscous characteristic length Λ, m.
	// Published values are often quoted in µm; convert before use.
	ViscousLength float64
}

// Validate checks that all parameters are inside their physical domain.
// The model functions do not call this; degenerate values propagate as
// NaN/Inf instead. Validate explicitly when parameters come from user
// input or measurement pipelines.
func (m Material) Validate() error {
	if m.FluxResistivity <= 0 {
		return fmt.Errorf("%w: flux resistivity must be positive", ErrInvalidParameter)
	}

	if m.Tortuosity < 1 {
		return fmt.Errorf("%w: tortuosity must be at least 1", ErrInvalidParameter)
	}

	if m.Porosity <= 0 || m.Porosity > 1 {
		return fmt.Errorf("%w: porosity must be in (0, 1]", ErrInvalidParameter)
	}

	if m.ViscousLength <= 0 {
		return fmt.Errorf("%w: viscous characteristic length must be positive", ErrInvalidParameter)
	}

	return nil
}
