package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/matzehuels/bitsquat/pkg/squat"
)

// writeMarkdownReport renders r as a GitHub-flavored Markdown document
// suitable for pasting into an issue or advisory.
func writeMarkdownReport(w io.Writer, r *squat.Report) error {
	md := markdown.NewMarkdown(w)

	md.H1("Bitsquat Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Report ID", codeCell(r.ID)},
			{"Started", r.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Targets", strconv.Itoa(r.Targets)},
			{"Known packages", strconv.Itoa(r.Universe)},
			{"Matches", strconv.Itoa(len(r.Results))},
		},
	})
	md.PlainText("")

	writeMarkdownAlert(md, r)

	md.H2("Matches")
	md.PlainText("")
	if len(r.Results) == 0 {
		md.PlainText("No bit-flip candidates found in the package universe.")
		return md.Build()
	}

	header := []string{"Original", "Flipped", "Position"}
	if r.Classified {
		header = append(header, "Outcome")
	}
	rows := make([][]string, len(r.Results))
	for i, res := range r.Results {
		rows[i] = []string{codeCell(res.Original), codeCell(res.Flipped), flipPosition(res.Index, res.Bit)}
		if r.Classified {
			rows[i] = append(rows[i], markdownOutcome(res))
		}
	}
	md.Table(markdown.TableSet{Header: header, Rows: rows})
	md.PlainText("")

	return md.Build()
}

func writeMarkdownAlert(md *markdown.Markdown, r *squat.Report) {
	if !r.Classified {
		return
	}
	cyclical, unknown := r.Count(squat.Cyclical), r.Count(squat.Unknown)
	switch {
	case cyclical > 0:
		md.Cautionf("%d cyclical bitflip(s): the latest release depends on the package it imitates.", cyclical)
	case unknown > 0:
		md.Warningf("%d match(es) could not be checked against the registry.", unknown)
	default:
		md.Tip("No cyclical bitflips detected.")
	}
	md.PlainText("")
}

func markdownOutcome(res squat.Result) string {
	switch res.Outcome {
	case squat.Cyclical:
		return "**" + res.Outcome.String() + "**"
	case squat.Unknown:
		return res.Outcome.String() + " (" + string(errorCode(res.Err)) + ")"
	default:
		return res.Outcome.String()
	}
}

// codeCell renders s as inline code safe for a table cell. Pipes are
// escaped, and a name containing backticks gets a longer fence.
func codeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	if !strings.Contains(s, "`") {
		return markdown.Code(s)
	}
	run, longest := 0, 0
	for _, r := range s {
		if r != '`' {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + s + " " + fence
}
