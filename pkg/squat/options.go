package squat

import (
	"runtime"
	"time"
)

const (
	DefaultConcurrency = 8                // Default concurrent metadata lookups
	DefaultTimeout     = 10 * time.Second // Default per-lookup timeout
)

// ScanOptions configures the bit-flip scan phase.
type ScanOptions struct {
	Workers int // Parallel target scans (default: GOMAXPROCS)
}

// WithDefaults returns a copy of ScanOptions with zero values replaced by defaults.
func (o ScanOptions) WithDefaults() ScanOptions {
	opts := o
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return opts
}

// ClassifyOptions configures the classification phase.
type ClassifyOptions struct {
	Concurrency int                  // Maximum in-flight lookups (default: 8)
	Timeout     time.Duration        // Per-lookup timeout (default: 10s)
	Logger      func(string, ...any) // Lookup failure callback (optional)
}

// WithDefaults returns a copy of ClassifyOptions with zero values replaced by defaults.
func (o ClassifyOptions) WithDefaults() ClassifyOptions {
	opts := o
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Options configures a [Scanner].
type Options struct {
	Scan         ScanOptions
	Classify     ClassifyOptions
	SkipClassify bool // Report matches without metadata lookups
}
