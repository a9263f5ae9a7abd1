// # Naming Conventions
//
// Reporters in this package implement harness.Reporter:
//
//   - TextReporter writes one "<Label>: <seconds>" line per measurement as it
//     arrives. This is the default and the only format with streaming output.
//   - JSONReporter and TableReporter buffer measurements and write them on
//     Flush.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/microbench/internal/errors"
	"github.com/agbru/microbench/internal/format"
	"github.com/agbru/microbench/internal/harness"
	"github.com/agbru/microbench/internal/ui"
)

// Output format names.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatTable}

// NewReporter returns the reporter for the named format writing to out.
func NewReporter(name string, out io.Writer) (harness.Reporter, error) {
	switch strings.ToLower(name) {
	case FormatText, "":
		return NewTextReporter(out), nil
	case FormatJSON:
		return NewJSONReporter(out), nil
	case FormatTable:
		return NewTableReporter(out), nil
	default:
		return nil, apperrors.NewConfigError("unknown output format %q (want one of %s)", name, strings.Join(Formats, ", "))
	}
}

// TextReporter is the plain line format.
type TextReporter struct {
	*harness.LineReporter
}

// NewTextReporter returns a TextReporter writing to out.
func NewTextReporter(out io.Writer) *TextReporter {
	return &TextReporter{LineReporter: harness.NewLineReporter(out)}
}

type jsonResult struct {
	Label       string  `json:"label"`
	Iteration   int     `json:"iteration"`
	Seconds     float64 `json:"seconds"`
	Nanoseconds int64   `json:"nanoseconds"`
	Error       string  `json:"error,omitempty"`
}

type jsonDocument struct {
	Clock   string       `json:"clock"`
	Results []jsonResult `json:"results"`
}

// JSONReporter writes all measurements as one JSON document on Flush.
type JSONReporter struct {
	out io.Writer
	doc jsonDocument
}

// NewJSONReporter returns a JSONReporter writing to out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{out: out, doc: jsonDocument{Results: []jsonResult{}}}
}

// Report buffers m.
func (r *JSONReporter) Report(m harness.Measurement) error {
	r.doc.Clock = m.Clock
	res := jsonResult{
		Label:       m.Label,
		Iteration:   m.Iteration,
		Seconds:     m.Seconds(),
		Nanoseconds: m.Elapsed.Nanoseconds(),
	}
	if m.Err != nil {
		res.Error = m.Err.Error()
	}
	r.doc.Results = append(r.doc.Results, res)
	return nil
}

// Flush writes the document.
func (r *JSONReporter) Flush() error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(r.doc)
}

// Column widths of the table format.
const (
	colWidthIter    = 9
	colWidthDur     = 10
	colWidthSeconds = 14
	colWidthStatus  = 8
)

// TableReporter writes an aligned summary table on Flush.
type TableReporter struct {
	out  io.Writer
	rows []harness.Measurement
}

// NewTableReporter returns a TableReporter writing to out.
func NewTableReporter(out io.Writer) *TableReporter {
	return &TableReporter{out: out}
}

// Report buffers m.
func (r *TableReporter) Report(m harness.Measurement) error {
	r.rows = append(r.rows, m)
	return nil
}

// Flush renders the table.
func (r *TableReporter) Flush() error {
	theme := ui.GetCurrentTUITheme()

	nameWidth := len("Workload")
	clockName := ""
	for _, m := range r.rows {
		nameWidth = max(nameWidth, len(m.Label))
		clockName = m.Clock
	}
	nameWidth += 2

	nameStyle := lipgloss.NewStyle().Width(nameWidth)
	iterStyle := lipgloss.NewStyle().Width(colWidthIter).Align(lipgloss.Right)
	durStyle := lipgloss.NewStyle().Width(colWidthDur).Align(lipgloss.Right)
	secStyle := lipgloss.NewStyle().Width(colWidthSeconds).Align(lipgloss.Right)
	statusStyle := lipgloss.NewStyle().Width(colWidthStatus).Align(lipgloss.Center)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)

	var sb strings.Builder
	title := "Benchmark Summary"
	if clockName != "" {
		title += " (" + clockName + " clock)"
	}
	sb.WriteString(headerStyle.Render(title))
	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		nameStyle.Render("Workload"),
		iterStyle.Render("Iteration"),
		durStyle.Render("Duration"),
		secStyle.Render("Seconds"),
		statusStyle.Render("Status"),
	)))
	sb.WriteString("\n")

	okStyle := statusStyle.Foreground(theme.Success)
	failStyle := statusStyle.Foreground(theme.Error)
	for _, m := range r.rows {
		status := okStyle.Render("ok")
		if m.Err != nil {
			status = failStyle.Render("FAILED")
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			nameStyle.Render(m.Label),
			iterStyle.Render(strconv.Itoa(m.Iteration)),
			durStyle.Render(format.FormatExecutionDuration(m.Elapsed)),
			secStyle.Render(format.FormatSeconds(m.Elapsed)),
			status,
		))
		sb.WriteString("\n")
	}

	_, err := fmt.Fprint(r.out, sb.String())
	return err
}
