package squat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/bitsquat/pkg/observability"
)

// Report is the outcome of one [Scanner.Run].
type Report struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	Duration   time.Duration `json:"duration_ns"`
	Targets    int           `json:"targets"`
	Universe   int           `json:"universe"`
	Classified bool          `json:"classified"`
	Results    []Result      `json:"results"`
}

// Count returns the number of results with the given outcome.
func (r *Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Cyclical returns the results classified as [Cyclical], in report order.
func (r *Report) Cyclical() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Outcome == Cyclical {
			out = append(out, res)
		}
	}
	return out
}

// Scanner runs the scan and classify phases against a fixed universe.
type Scanner struct {
	universe *Universe
	lookup   Lookup
	opts     Options
}

// NewScanner creates a Scanner. lookup may be nil when opts.SkipClassify is set.
func NewScanner(u *Universe, lookup Lookup, opts Options) *Scanner {
	return &Scanner{universe: u, lookup: lookup, opts: opts}
}

// Run scans targets and, unless classification is skipped, classifies
// every match. Unclassified results carry [NotCyclical].
func (s *Scanner) Run(ctx context.Context, targets []string) (*Report, error) {
	start := time.Now()
	hooks := observability.Scan()
	hooks.OnScanStart(ctx, len(targets), s.universe.Len())

	matches, err := FindMatches(ctx, targets, s.universe, s.opts.Scan)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		hooks.OnMatch(ctx, m.Original, m.Flipped)
	}
	hooks.OnScanComplete(ctx, len(matches), time.Since(start))

	report := &Report{
		ID:        uuid.NewString(),
		StartedAt: start,
		Targets:   len(targets),
		Universe:  s.universe.Len(),
	}

	if s.opts.SkipClassify || s.lookup == nil {
		report.Results = make([]Result, len(matches))
		for i, m := range matches {
			report.Results[i] = Result{Match: m, Outcome: NotCyclical}
		}
	} else {
		report.Results = ClassifyAll(ctx, matches, s.lookup, s.opts.Classify)
		report.Classified = true
	}

	report.Duration = time.Since(start)
	return report, ctx.Err()
}
