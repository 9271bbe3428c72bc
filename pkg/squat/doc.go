// Package squat finds bit-flip squatting candidates and classifies them.
//
// # Overview
//
// Detection runs in two phases:
//
//  1. Scan: every single-bit flip of each target name (see [bitflip]) is
//     tested against a [Universe] of known package names. Hits become
//     [Match] values. This phase is local and deterministic.
//  2. Classify: for each match, the flipped package's registry metadata
//     is fetched once through a [Lookup], and the match is marked
//     [Cyclical] when the latest version of the flipped package depends
//     on the original.
//
// Only survivors of the scan reach the network, so the number of lookups
// is bounded by the number of matches rather than by 8 * len(name) per
// target.
//
// # Outcomes
//
// A lookup that fails (transport error, non-2xx status, undecodable body,
// timeout) yields [Unknown] for that match only. Metadata without a
// "latest" dist-tag or without the tagged version entry yields
// [NotCyclical].
//
// # Usage
//
//	u := squat.NewUniverse(allNames)
//	s := squat.NewScanner(u, npm.NewLookup(client), squat.Options{})
//	report, err := s.Run(ctx, targets)
//	for _, r := range report.Results {
//	    if r.Outcome == squat.Cyclical {
//	        fmt.Println("CYCLICAL BITFLIP:", r.Flipped)
//	    }
//	}
//
// [bitflip]: github.com/matzehuels/bitsquat/pkg/bitflip
package squat
