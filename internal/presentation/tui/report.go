package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/memtree-bench/pkg/domain"
)

// Format selects how a run record is written.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatMarkdown, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, markdown or json)", s)
	}
}

// Summary is the one-line report of both durations in seconds.
func Summary(rec domain.RunRecord) string {
	return fmt.Sprintf("## train time %s, and test time %s", seconds(rec.Train), seconds(rec.Evaluate))
}

// Markdown renders the run as a small markdown document.
func Markdown(rec domain.RunRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", rec.Experiment)
	fmt.Fprintf(&b, "Memory tree nodes: **%d**, model: `%s`\n\n", rec.Nodes, rec.Model.Path)
	b.WriteString("| Stage | Seconds | Exit code |\n")
	b.WriteString("|-------|---------|-----------|\n")
	for _, t := range []domain.Timing{rec.Train, rec.Evaluate} {
		fmt.Fprintf(&b, "| %s | %s | %d |\n", t.Stage, seconds(t), t.ExitCode)
	}
	return b.String()
}

// WriteReport writes rec to w in the requested format. render, when not nil, turns
// markdown into terminal output.
func WriteReport(w io.Writer, rec domain.RunRecord, format Format, render func(string) (string, error)) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case FormatMarkdown:
		md := Markdown(rec)
		if render != nil {
			out, err := render(md)
			if err != nil {
				return err
			}
			md = out
		}
		_, err := io.WriteString(w, md)
		return err
	default:
		_, err := fmt.Fprintln(w, Summary(rec))
		return err
	}
}

func seconds(t domain.Timing) string {
	return fmt.Sprintf("%.3f", t.Seconds())
}
