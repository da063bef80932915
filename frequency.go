package porous

import "gonum.org/v1/gonum/floats"

// Nominal band-centre frequencies (IEC 61260 / ISO 266), Hz.
const (
	// Band63 is the 63 Hz octave band centre.
	Band63 = 63.0

	// Band125 is the 125 Hz octave band centre.
	Band125 = 125.0

	// Band250 is the 250 Hz octave band centre.
	Band250 = 250.0

	// Band500 is the 500 Hz octave band centre.
	Band500 = 500.0

	// Band1000 is the 1 kHz octave band centre.
	Band1000 = 1000.0

	// Band2000 is the 2 kHz octave band centre.
	Band2000 = 2000.0

	// Band4000 is the 4 kHz octave band centre.
	Band4000 = 4000.0

	// Band8000 is the 8 kHz octave band centre.
	Band8000 = 8000.0
)

// Frequencies returns n linearly spaced frequencies from start to stop,
// inclusive. n must be at least 2 (endpoints are always included).
func Frequencies(start, stop float64, n int) []float64 {
	return floats.Span(make([]float64, n), start, stop)
}

// LogFrequencies returns n logarithmically spaced frequencies from start to
// stop, inclusive. Both endpoints must be positive and n at least 2.
// Logarithmic spacing matches the octave-based resolution used in acoustic
// measurement and plotting.
func LogFrequencies(start, stop float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), start, stop)
}

// OctaveBands returns the nominal octave band centres from 63 Hz to 8 kHz.
func OctaveBands() []float64 {
	return []float64{
		Band63, Band125, Band250, Band500,
		Band1000, Band2000, Band4000, Band8000,
	}
}

// ThirdOctaveBands returns the nominal third-octave band centres from
// 50 Hz to 5 kHz, the range commonly reported for absorption coefficients.
func ThirdOctaveBands() []float64 {
	return []float64{
		50, 63, 80, 100, 125, 160, 200, 250, 315, 400,
		500, 630, 800, 1000, 1250, 1600, 2000, 2500, 3150, 4000, 5000,
	}
}
