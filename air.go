package porous

import "fmt"

// Default environmental constants for air at roughly 20 °C and sea level.
const (
	// DefaultSpeedOfSound is the speed of sound in air, m/s.
	DefaultSpeedOfSound = 343.0

	// DefaultAirDensity is the specific mass of air, kg/m³.
	DefaultAirDensity = 1.21

	// DefaultSpecificHeatRatio is the ratio of specific heats of air (γ).
	DefaultSpecificHeatRatio = 1.4

	// DefaultAirViscosity is the dynamic viscosity of air, N·s/m².
	DefaultAirViscosity = 1.84e-5

	// DefaultPrandtl is the Prandtl number of air.
	DefaultPrandtl = 0.77

	// DefaultAtmosphericPressure is the atmospheric pressure, Pa.
	DefaultAtmosphericPressure = 101325.0
)

// Air holds the environmental constants of the propagation medium.
// Use [DefaultAir] for standard conditions; construct a custom value only
// when modelling a different temperature or altitude.
type Air struct {
	// SpeedOfSound is the speed of sound, m/s.
	SpeedOfSound float64

	// Density is the specific mass of air, kg/m³.
	Density float64

	// SpecificHeatRatio is the ratio of specific heats (γ).
	SpecificHeatRatio float64

	// Viscosity is the dynamic viscosity, N·s/m².
	Viscosity float64

	// Prandtl is the Prandtl number.
	Prandtl float64

	// Pressure is the static atmospheric pressure, Pa.
	Pressure float64
}

// DefaultAir returns air constants for standard conditions
// (20 °C, sea level).
func DefaultAir() Air {
	return Air{
		SpeedOfSound:      DefaultSpeedOfSound,
		Density:           DefaultAirDensity,
		SpecificHeatRatio: DefaultSpecificHeatRatio,
		Viscosity:         DefaultAirViscosity,
		Prandtl:           DefaultPrandtl,
		Pressure:          DefaultAtmosphericPressure,
	}
}

// Validate checks that every constant is physically meaningful.
func (a Air) Validate() error {
	if a.SpeedOfSound <= 0 {
		return fmt.Errorf("%w: speed of sound must be positive", ErrInvalidParameter)
	}

	if a.Density <= 0 {
		return fmt.Errorf("%w: air density must be positive", ErrInvalidParameter)
	}

	if a.SpecificHeatRatio <= 1 {
		return fmt.Errorf("%w: specific heat ratio must be greater than 1", ErrInvalidParameter)
	}

	if a.Viscosity <= 0 {
		return fmt.Errorf("%w: air viscosity must be positive", ErrInvalidParameter)
	}

	if a.Prandtl <= 0 {
		return fmt.Errorf("%w: Prandtl number must be positive", ErrInvalidParameter)
	}

	if a.Pressure <= 0 {
		return fmt.Errorf("%w: atmospheric pressure must be positive", ErrInvalidParameter)
	}

	return nil
}

// Impedance returns the characteristic impedance of free air, ρ0·c0, in
// Pa·s/m. This is the reference impedance for reflection calculations.
func (a Air) Impedance() float64 {
	return a.Density * a.SpeedOfSound
}
