package npm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/matzehuels/bitsquat/pkg/integrations"
	"github.com/matzehuels/bitsquat/pkg/squat"
)

// DefaultRegistry is the public npm registry.
const DefaultRegistry = "https://registry.npmjs.org"

// Packument is the registry document describing every published version
// of a package. Decoding is lenient: only a body that is not a JSON object
// fails. Fields of the wrong type decode as absent, and version entries
// are kept raw until [Packument.Version] asks for one.
type Packument struct {
	Name     string
	DistTags map[string]string
	Versions map[string]json.RawMessage
}

// Version is one published version inside a [Packument].
// A dependency field that is not an object is left nil.
type Version struct {
	Version         string
	Dependencies    map[string]any
	DevDependencies map[string]any
}

// UnmarshalJSON implements [json.Unmarshaler].
func (p *Packument) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name     json.RawMessage `json:"name"`
		DistTags json.RawMessage `json:"dist-tags"`
		Versions json.RawMessage `json:"versions"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*p = Packument{}
	p.Name, _ = decodeAs[string](raw.Name)
	if tags, ok := decodeAs[map[string]json.RawMessage](raw.DistTags); ok {
		p.DistTags = make(map[string]string, len(tags))
		for tag, v := range tags {
			if version, ok := decodeAs[string](v); ok {
				p.DistTags[tag] = version
			}
		}
	}
	p.Versions, _ = decodeAs[map[string]json.RawMessage](raw.Versions)
	return nil
}

// Version decodes the entry for version v. It reports false when the
// entry is missing or is not a JSON object.
func (p *Packument) Version(v string) (Version, bool) {
	entry, ok := p.Versions[v]
	if !ok {
		return Version{}, false
	}
	var raw struct {
		Version         json.RawMessage `json:"version"`
		Dependencies    json.RawMessage `json:"dependencies"`
		DevDependencies json.RawMessage `json:"devDependencies"`
	}
	if err := json.Unmarshal(entry, &raw); err != nil {
		return Version{}, false
	}
	var out Version
	out.Version, _ = decodeAs[string](raw.Version)
	out.Dependencies, _ = decodeAs[map[string]any](raw.Dependencies)
	out.DevDependencies, _ = decodeAs[map[string]any](raw.DevDependencies)
	return out, true
}

// decodeAs decodes raw into a T, returning the zero value and false when
// raw is empty or holds a different JSON type.
func decodeAs[T any](raw json.RawMessage) (T, bool) {
	var v T
	if len(raw) == 0 {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Client fetches package documents from an npm-compatible registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Client for baseURL, sharing hc across all requests.
// An empty baseURL selects [DefaultRegistry]; nil hc uses the
// [integrations.NewHTTPClient] defaults.
func NewClient(hc *http.Client, baseURL string, headers map[string]string) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistry
	}
	return &Client{
		Client:  integrations.NewClient(hc, headers),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// BaseURL returns the registry root used for requests.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchPackument fetches the full registry document for pkg.
// The name is used verbatim; npm names are case-sensitive in the registry
// URL, and bit-flipped names frequently differ only in case.
func (c *Client) FetchPackument(ctx context.Context, pkg string) (*Packument, error) {
	var p Packument
	if err := c.Get(ctx, c.baseURL+"/"+EscapeName(pkg), &p); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return nil, err
	}
	return &p, nil
}

// Lookup implements [squat.Lookup].
func (c *Client) Lookup(ctx context.Context, name string) (*squat.Metadata, error) {
	p, err := c.FetchPackument(ctx, name)
	if err != nil {
		return nil, err
	}
	return p.Metadata(), nil
}

// Metadata converts the packument to the classifier's view. Only the
// version the latest tag points at is decoded, so malformed entries for
// other versions never affect the result.
func (p *Packument) Metadata() *squat.Metadata {
	md := &squat.Metadata{DistTags: p.DistTags}
	latest, ok := p.DistTags[squat.LatestTag]
	if !ok {
		return md
	}
	if v, ok := p.Version(latest); ok {
		md.Versions = map[string]squat.VersionManifest{
			latest: {Dependencies: v.Dependencies, DevDependencies: v.DevDependencies},
		}
	}
	return md
}

// EscapeName encodes a package name as a single registry path segment.
// Scoped names keep their leading "@" and have the "/" escaped, which is
// the form the registry expects ("@types%2Fnode").
func EscapeName(name string) string {
	if rest, ok := strings.CutPrefix(name, "@"); ok {
		return "@" + url.PathEscape(rest)
	}
	return url.PathEscape(name)
}

var _ squat.Lookup = (*Client)(nil)
