// Package pkg holds the public libraries behind the bitsquat command.
//
// # Overview
//
// Bitsquat looks for bit-flip squatting among npm packages: published names
// that sit one flipped bit away from a popular package and whose latest
// release depends on the package they imitate. The work is split into:
//
//  1. [bitflip] - Enumerate single-bit variants of a name
//  2. [squat] - Match variants against a package universe and classify them
//  3. [integrations] - Registry HTTP clients ([integrations/npm])
//  4. [observability] - Hooks for logging and tracing scans and requests
//  5. [errors] - Coded errors for the command-line boundary
//
// # Architecture
//
//	targets + universe
//	         ↓
//	    [bitflip] candidates per target
//	         ↓
//	    [squat.FindMatches] candidates present in the universe
//	         ↓
//	    [squat.ClassifyAll] latest manifest lookups via [integrations/npm]
//	         ↓
//	    squat.Report (text or JSON)
//
// # Quick Start
//
//	u := squat.NewUniverse(allPackages)
//	client := npm.NewClient(nil, "", nil)
//	report, err := squat.NewScanner(u, client, squat.Options{}).Run(ctx, []string{"react"})
//	if err != nil {
//	    return err
//	}
//	for _, r := range report.Cyclical() {
//	    fmt.Printf("%s imitates %s\n", r.Flipped, r.Original)
//	}
//
// [bitflip]: github.com/matzehuels/bitsquat/pkg/bitflip
// [squat]: github.com/matzehuels/bitsquat/pkg/squat
// [squat.FindMatches]: github.com/matzehuels/bitsquat/pkg/squat#FindMatches
// [squat.ClassifyAll]: github.com/matzehuels/bitsquat/pkg/squat#ClassifyAll
// [integrations]: github.com/matzehuels/bitsquat/pkg/integrations
// [integrations/npm]: github.com/matzehuels/bitsquat/pkg/integrations/npm
// [observability]: github.com/matzehuels/bitsquat/pkg/observability
// [errors]: github.com/matzehuels/bitsquat/pkg/errors
package pkg
