package main

import "time"

// Default command-line flag values
const (
	defaultOrder   = 0
	defaultPower   = 0
	defaultMethod  = "auto"
	defaultTimeout = 5 * time.Minute
)

// Table parsing
const (
	tableColumns  = 2   // x and f(x)
	commentPrefix = "#" // Lines starting with this are skipped
)

// Job kinds accepted in batch files
const (
	jobIntegrate = "integrate"
	jobTransform = "transform"
)

// Output formatting
const (
	floatFormat = 'g'
	floatPrec   = -1
	floatBits   = 64
)
