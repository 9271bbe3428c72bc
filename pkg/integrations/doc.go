// Package integrations provides HTTP plumbing for package registry APIs.
//
// # Overview
//
// Registry-specific clients live in subpackages:
//
//   - [npm]: Node Package Manager
//
// # Client Pattern
//
// The [Client] type wraps one long-lived [net/http.Client] shared by every
// request of a run, applies default headers, maps HTTP status codes to the
// sentinel errors [ErrNotFound] and [ErrNetwork], and decodes JSON bodies.
// Failed requests are not retried; callers decide how to treat a failure.
//
//	hc := integrations.NewHTTPClient(10*time.Second, 8)
//	client := npm.NewClient(hc, "", nil)
//	pkg, err := client.FetchPackument(ctx, "express")
//
// Every request emits [observability.HTTPHooks] events.
//
// [npm]: github.com/matzehuels/bitsquat/pkg/integrations/npm
// [observability.HTTPHooks]: github.com/matzehuels/bitsquat/pkg/observability.HTTPHooks
package integrations
