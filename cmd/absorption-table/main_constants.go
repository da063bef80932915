package main

// Default command-line parameter values.
const (
	defaultSigma         = 10000.0 // flux resistivity, N·s/m⁴
	defaultTortuosity    = 1.2
	defaultPorosity      = 0.95
	defaultViscousLength = 100e-6 // m
	defaultDepth         = 0.05   // layer thickness, m
	defaultMinFrequency  = 50.0   // Hz
	defaultMaxFrequency  = 5000.0 // Hz
	defaultPoints        = 100
)
