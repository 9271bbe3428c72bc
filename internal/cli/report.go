package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"

	bserrors "github.com/matzehuels/bitsquat/pkg/errors"
	"github.com/matzehuels/bitsquat/pkg/integrations"
	"github.com/matzehuels/bitsquat/pkg/squat"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

// writeTextReport prints one line per match, then a highlighted line per
// cyclical match and a warning per match that could not be checked.
func writeTextReport(w io.Writer, r *squat.Report) {
	for _, res := range r.Results {
		printInfo(w, "found bitflip: %s %s %s %s", StyleHighlight.Render(res.Original), iconArrow,
			StyleHighlight.Render(res.Flipped), StyleDim.Render(flipPosition(res.Index, res.Bit)))
	}

	if r.Classified {
		if r.Count(squat.Cyclical) == 0 && len(r.Results) > 0 {
			printSuccess(w, "no cyclical bitflips")
		}
		for _, res := range r.Results {
			switch res.Outcome {
			case squat.Cyclical:
				printAlert(w, "CYCLICAL BITFLIP: %s (depends on %s)", res.Flipped, res.Original)
			case squat.Unknown:
				printWarning(w, "could not check %s: %s", res.Flipped, errorCode(res.Err))
				printDetail(w, "%v", res.Err)
			}
		}
	}

	stats := []stat{{r.Targets, "targets"}, {len(r.Results), "matches"}}
	if r.Classified {
		stats = append(stats, stat{r.Count(squat.Cyclical), "cyclical"}, stat{r.Count(squat.Unknown), "unknown"})
	}
	printStats(w, stats...)
}

// jsonReport is the wire form of a report.
type jsonReport struct {
	*squat.Report
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	squat.Result
	Error string        `json:"error,omitempty"`
	Code  bserrors.Code `json:"code,omitempty"`
}

// writeJSONReport encodes r as indented JSON, attaching an error message
// and code to every result whose lookup failed.
func writeJSONReport(w io.Writer, r *squat.Report) error {
	out := jsonReport{Report: r, Results: make([]jsonResult, len(r.Results))}
	for i, res := range r.Results {
		out.Results[i] = jsonResult{Result: res}
		if res.Err != nil {
			out.Results[i].Error = res.Err.Error()
			out.Results[i].Code = errorCode(res.Err)
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// errorCode maps a lookup failure to a stable code.
func errorCode(err error) bserrors.Code {
	if code := bserrors.GetCode(err); code != "" {
		return code
	}
	var ne net.Error
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &ne) && ne.Timeout():
		return bserrors.ErrCodeTimeout
	case errors.Is(err, integrations.ErrNotFound):
		return bserrors.ErrCodePackageNotFound
	case errors.Is(err, integrations.ErrDecode):
		return bserrors.ErrCodeInvalidManifest
	case errors.Is(err, integrations.ErrNetwork):
		return bserrors.ErrCodeNetwork
	default:
		return bserrors.ErrCodeInternal
	}
}
