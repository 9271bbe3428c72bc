package squat

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/bitsquat/pkg/bitflip"
)

// Match is a known package whose name is one bit away from a target.
type Match struct {
	Flipped  string `json:"flipped"`
	Original string `json:"original"`
	Index    int    `json:"index"` // byte offset of the flipped bit
	Bit      uint   `json:"bit"`
}

// MatchesFor returns the matches for a single target, in candidate order.
func MatchesFor(target string, u *Universe) []Match {
	var out []Match
	for _, c := range bitflip.Candidates(target) {
		if u.Contains(c.Flipped) {
			out = append(out, Match{Flipped: c.Flipped, Original: target, Index: c.Index, Bit: c.Bit})
		}
	}
	return out
}

// FindMatches scans every target against u. Targets are processed in
// parallel but the result is ordered as a sequential scan would order it:
// by target, then by candidate. Duplicates are kept.
// The only error returned is ctx's.
func FindMatches(ctx context.Context, targets []string, u *Universe, opts ScanOptions) ([]Match, error) {
	opts = opts.WithDefaults()
	perTarget := make([][]Match, len(targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perTarget[i] = MatchesFor(target, u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(perTarget...), nil
}
