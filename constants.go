package sphbessel

import (
	"math"

	"github.com/tphakala/go-spherical-bessel/internal/mathutil"
	"github.com/tphakala/go-spherical-bessel/internal/moment"
)

// MaxOrder is the highest supported order l.
const MaxOrder = mathutil.MaxOrder

// DefaultThreshold is the default samples-per-cycle handoff threshold.
const DefaultThreshold = moment.DefaultThreshold

// Batch limits
const (
	maxWorkers = 1024 // Upper bound on Config.Workers
)

// Transform constants
const (
	fourPi        = 4 * math.Pi
	phasePeriod   = 4 // (-i)^l repeats every four orders
	minWavenumber = 0.0
)
