package squat

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/bitsquat/pkg/observability"
)

// LatestTag is the dist-tag that marks a package's current release.
const LatestTag = "latest"

// Metadata is the part of a registry package document the classifier reads.
type Metadata struct {
	DistTags map[string]string          `json:"dist-tags"`
	Versions map[string]VersionManifest `json:"versions"`
}

// VersionManifest holds the dependency declarations of one published version.
// Only key presence matters, so values are left untyped.
type VersionManifest struct {
	Dependencies    map[string]any `json:"dependencies"`
	DevDependencies map[string]any `json:"devDependencies"`
}

// Latest returns the manifest tagged "latest", if both the tag and the
// version entry exist.
func (m *Metadata) Latest() (VersionManifest, bool) {
	if m == nil {
		return VersionManifest{}, false
	}
	tag, ok := m.DistTags[LatestTag]
	if !ok || tag == "" {
		return VersionManifest{}, false
	}
	v, ok := m.Versions[tag]
	return v, ok
}

// DependsOn reports whether name is a regular or development dependency.
func (v VersionManifest) DependsOn(name string) bool {
	if _, ok := v.Dependencies[name]; ok {
		return true
	}
	_, ok := v.DevDependencies[name]
	return ok
}

// Outcome is the classification of a single match.
type Outcome int

const (
	NotCyclical Outcome = iota // latest release does not depend on the original
	Cyclical                   // latest release depends on the original
	Unknown                    // metadata lookup failed
)

var outcomeNames = [...]string{"not-cyclical", "cyclical", "unknown"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText decodes an outcome name produced by MarshalText.
func (o *Outcome) UnmarshalText(b []byte) error {
	for i, n := range outcomeNames {
		if n == string(b) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q", b)
}

// Lookup fetches registry metadata for a package.
type Lookup interface {
	Lookup(ctx context.Context, name string) (*Metadata, error)
}

// LookupFunc adapts a function to the [Lookup] interface.
type LookupFunc func(ctx context.Context, name string) (*Metadata, error)

// Lookup calls f.
func (f LookupFunc) Lookup(ctx context.Context, name string) (*Metadata, error) { return f(ctx, name) }

// Classify decides whether md, the metadata of a flipped package, depends
// on original. Missing metadata, tag, or version entry is [NotCyclical].
func Classify(md *Metadata, original string) Outcome {
	v, ok := md.Latest()
	if ok && v.DependsOn(original) {
		return Cyclical
	}
	return NotCyclical
}

// IsCyclical fetches metadata for m.Flipped and classifies it.
// A lookup failure returns [Unknown] together with the error.
func IsCyclical(ctx context.Context, m Match, l Lookup) (Outcome, error) {
	md, err := l.Lookup(ctx, m.Flipped)
	if err != nil {
		return Unknown, fmt.Errorf("lookup %s: %w", m.Flipped, err)
	}
	return Classify(md, m.Original), nil
}

// Result is a classified match.
type Result struct {
	Match
	Outcome Outcome `json:"outcome"`
	Err     error   `json:"-"`
}

// ClassifyAll classifies every match with at most opts.Concurrency lookups
// in flight, each bounded by opts.Timeout. Results keep the order of
// matches. A failed lookup marks only its own result [Unknown].
func ClassifyAll(ctx context.Context, matches []Match, l Lookup, opts ClassifyOptions) []Result {
	opts = opts.WithDefaults()
	results := make([]Result, len(matches))

	var g errgroup.Group
	g.SetLimit(opts.Concurrency)
	for i, m := range matches {
		g.Go(func() error {
			results[i] = classifyOne(ctx, m, l, opts)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func classifyOne(ctx context.Context, m Match, l Lookup, opts ClassifyOptions) Result {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	outcome, err := IsCyclical(ctx, m, l)
	if err != nil {
		opts.Logger("classify failed: %s -> %s: %v", m.Original, m.Flipped, err)
	}
	observability.Scan().OnClassify(ctx, m.Flipped, m.Original, outcome.String(), time.Since(start), err)
	return Result{Match: m, Outcome: outcome, Err: err}
}
