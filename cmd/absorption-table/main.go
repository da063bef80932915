// Command absorption-table evaluates a porous material model over a
// frequency span and writes a CSV table of characteristic impedance,
// characteristic wave number, and the normal-incidence absorption
// coefficient of a rigid-backed layer.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	porous "github.com/willsbit/acustica-de-salas"
	"github.com/willsbit/acustica-de-salas/absorber"
)

// tableRow is one CSV output line.
type tableRow struct {
	Frequency  float64 `csv:"frequency_hz"`
	ZcReal     float64 `csv:"zc_real"`
	ZcImag     float64 `csv:"zc_imag"`
	KcReal     float64 `csv:"kc_real"`
	KcImag     float64 `csv:"kc_imag"`
	Absorption float64 `csv:"absorption"`
}

func main() {
	// Command-line flags
	var (
		model         = flag.String("model", "jca", "Material model: jca, delany-bazley, delany-bazley-alt")
		sigma         = flag.Float64("sigma", defaultSigma, "Flux resistivity in N·s/m⁴")
		tortuosity    = flag.Float64("tortuosity", defaultTortuosity, "Tortuosity (jca only)")
		porosity      = flag.Float64("porosity", defaultPorosity, "Porosity in (0, 1] (jca only)")
		viscousLength = flag.Float64("viscous-length", defaultViscousLength, "Viscous characteristic length in m (jca only)")
		depth         = flag.Float64("depth", defaultDepth, "Layer thickness in m, for the absorption column")
		minFreq       = flag.Float64("fmin", defaultMinFrequency, "Lowest frequency in Hz")
		maxFreq       = flag.Float64("fmax", defaultMaxFrequency, "Highest frequency in Hz")
		points        = flag.Int("points", defaultPoints, "Number of logarithmically spaced frequencies")
		output        = flag.String("output", "-", "Output CSV file, or - for stdout")
	)
	flag.Parse()

	if *minFreq <= 0 || *maxFreq <= *minFreq {
		log.Fatalf("Invalid frequency span: %g to %g Hz", *minFreq, *maxFreq)
	}

	if *points < 2 {
		log.Fatalf("Need at least 2 frequency points, got %d", *points)
	}

	if *depth <= 0 {
		log.Fatalf("Layer depth must be positive, got %g m", *depth)
	}

	air := porous.DefaultAir()
	f := porous.LogFrequencies(*minFreq, *maxFreq, *points)

	zc, kc, err := evaluateModel(*model, f, *sigma, *tortuosity, *porosity, *viscousLength, air)
	if err != nil {
		log.Fatalf("Failed to evaluate model: %v", err)
	}

	zs := absorber.SurfaceImpedance(zc, kc, *depth)
	alpha := absorber.Coefficient(absorber.ReflectionCoefficient(zs, air))

	rows := make([]tableRow, len(f))
	for i := range f {
		rows[i] = tableRow{
			Frequency:  f[i],
			ZcReal:     real(zc[i]),
			ZcImag:     imag(zc[i]),
			KcReal:     real(kc[i]),
			KcImag:     imag(kc[i]),
			Absorption: alpha[i],
		}
	}

	if err := writeTable(rows, *output); err != nil {
		log.Fatalf("Failed to write table: %v", err)
	}
}

// evaluateModel dispatches to the selected material model.
func evaluateModel(model string, f []float64, sigma, tortuosity, porosity, viscousLength float64, air porous.Air) (zc, kc []complex128, err error) {
	switch model {
	case "jca":
		m := porous.Material{
			FluxResistivity: sigma,
			Tortuosity:      tortuosity,
			Porosity:        porosity,
			ViscousLength:   viscousLength,
		}
		if err := m.Validate(); err != nil {
			return nil, nil, err
		}
		zc, kc = porous.JohnsonChampouxAllard(f, m, air)

	case "delany-bazley":
		if sigma <= 0 {
			return nil, nil, fmt.Errorf("%w: flux resistivity must be positive", porous.ErrInvalidParameter)
		}
		zc, kc = porous.DelanyBazley(f, sigma, air)

	case "delany-bazley-alt":
		if sigma <= 0 {
			return nil, nil, fmt.Errorf("%w: flux resistivity must be positive", porous.ErrInvalidParameter)
		}
		zc, kc = porous.DelanyBazleyAlt(f, sigma, air)

	default:
		return nil, nil, fmt.Errorf("unknown model %q", model)
	}

	return zc, kc, nil
}

// writeTable marshals the rows as CSV to the given path, or stdout for "-".
func writeTable(rows []tableRow, path string) error {
	if path == "-" {
		return gocsv.Marshal(&rows, os.Stdout)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	return gocsv.MarshalFile(&rows, file)
}
