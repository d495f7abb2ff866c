// Package report renders check reports, stored runs and string
// representations for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/sso/internal/corpus"
	"github.com/msto63/sso/internal/diffcheck"
	"github.com/msto63/sso/pkg/sso"
)

const timeLayout = "2006-01-02 15:04:05"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		})
}

// Check writes a per property table, a summary line and, for each failure,
// the command that replays it.
func Check(w io.Writer, r *diffcheck.Report) error {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("sso differential check"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("run %s  seed %d  %d iterations  max length %d",
		r.RunID, r.Seed, r.Iterations, r.MaxLength)))
	b.WriteString("\n")

	t := newTable("PROPERTY", "STATUS", "CASES", "TIME")
	for _, res := range r.Results {
		t.Row(res.Property, statusText(res.Failure == nil), strconv.Itoa(res.Passed), formatDuration(res.Duration))
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	summary := fmt.Sprintf("%d passed, %d failed in %s", r.Passed(), r.Failed(), formatDuration(r.Duration))
	if r.OK() {
		b.WriteString(StatusOKStyle.Render(summary))
	} else {
		b.WriteString(StatusErrorStyle.Render(summary))
	}
	b.WriteString("\n")

	if failures := r.Failures(); len(failures) > 0 {
		b.WriteString("\n")
		b.WriteString(failureBlock(failures, r.MaxLength))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Failures writes the failing cases stored for a run
func Failures(w io.Writer, run *corpus.Run, failures []diffcheck.Failure) error {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("run " + run.ID))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s  seed %d  %d passed, %d failed",
		run.StartedAt.Format(timeLayout), run.Seed, run.Passed, run.Failed)))
	b.WriteString("\n\n")

	if len(failures) == 0 {
		b.WriteString(StatusOKStyle.Render("no failures recorded"))
		b.WriteString("\n")
	} else {
		b.WriteString(failureBlock(failures, run.MaxLength))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func failureBlock(failures []diffcheck.Failure, maxLength int) string {
	var b strings.Builder
	for i, f := range failures {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StatusErrorStyle.Render(f.Property))
		b.WriteString(": ")
		b.WriteString(f.Message)
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("  replay: " + ReplayCommand(f, maxLength)))
		b.WriteString("\n")
	}
	return b.String()
}

// ReplayCommand returns the CLI invocation that reruns a failing case
func ReplayCommand(f diffcheck.Failure, maxLength int) string {
	return fmt.Sprintf("sso replay %s %d --max-length %d", f.Property, f.CaseSeed, maxLength)
}

// Runs writes stored runs, newest first
func Runs(w io.Writer, runs []corpus.Run) error {
	if len(runs) == 0 {
		_, err := io.WriteString(w, HelpStyle.Render("no runs recorded")+"\n")
		return err
	}

	t := newTable("RUN", "STARTED", "SEED", "ITERATIONS", "PASSED", "FAILED", "TIME")
	for _, run := range runs {
		failed := strconv.Itoa(run.Failed)
		if run.Failed > 0 {
			failed = StatusErrorStyle.Render(failed)
		}
		t.Row(run.ID, run.StartedAt.Format(timeLayout), strconv.FormatUint(run.Seed, 10),
			strconv.Itoa(run.Iterations), strconv.Itoa(run.Passed), failed, formatDuration(run.Duration))
	}

	_, err := io.WriteString(w, t.String()+"\n")
	return err
}

// Inspection describes the representation of a String
type Inspection struct {
	Content    string
	Size       int
	Cap        int
	Variant    string
	Terminated bool
}

// Inspect captures the observable representation of s
func Inspect(s *sso.String) Inspection {
	cstr := s.CStr()
	variant := "heap"
	if s.IsInline() {
		variant = "inline"
	}
	return Inspection{
		Content:    s.String(),
		Size:       s.Size(),
		Cap:        s.Cap(),
		Variant:    variant,
		Terminated: cstr[len(cstr)-1] == 0,
	}
}

// Representation writes an inspection as a boxed key/value list
func Representation(w io.Writer, in Inspection) error {
	rows := [][2]string{
		{"content", strconv.Quote(in.Content)},
		{"size", strconv.Itoa(in.Size)},
		{"capacity", strconv.Itoa(in.Cap)},
		{"variant", HighlightStyle.Render(in.Variant)},
		{"inline capacity", strconv.Itoa(sso.InlineCap)},
		{"terminator", terminatorText(in.Terminated)},
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("%-16s %s", r[0], r[1])
	}

	out := TitleStyle.Render("sso.String") + "\n" + BoxStyle.Render(strings.Join(lines, "\n")) + "\n"
	_, err := io.WriteString(w, out)
	return err
}

func terminatorText(ok bool) string {
	if ok {
		return StatusOKStyle.Render("NUL")
	}
	return StatusErrorStyle.Render("missing")
}

func formatDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.Round(time.Millisecond).String()
	}
}
