// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches package documents ("packuments") from the npm
// registry (https://registry.npmjs.org) or any registry that serves the
// same JSON shape.
//
// # Usage
//
//	hc := integrations.NewHTTPClient(10*time.Second, 8)
//	client := npm.NewClient(hc, "", nil)
//
//	p, err := client.FetchPackument(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if v, ok := p.Version(p.DistTags["latest"]); ok {
//	    fmt.Println(v.Version, v.Dependencies)
//	}
//
// # Lookup
//
// [Client] implements squat.Lookup, so it can be handed directly to the
// classifier. The conversion keeps dist-tags and the dependencies and
// devDependencies of the version tagged latest; everything else in the
// document is ignored.
//
// # Malformed documents
//
// Old packuments are not always well typed. A field of the wrong JSON
// type is treated as absent instead of failing the lookup, so a single
// broken version entry cannot hide the latest release. Only a body that
// is not a JSON object is a decode error.
//
// # Caching
//
// Responses are not cached. Every call issues one request.
package npm
