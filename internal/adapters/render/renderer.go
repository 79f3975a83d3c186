// Package render implements the Renderer port: the summary table and the
// raw detail dump written to the primary output stream.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/ecswatch/internal/core/domain"
	"go.trai.ch/ecswatch/internal/core/ports"
	"go.trai.ch/ecswatch/internal/ui/output"
	"go.trai.ch/ecswatch/internal/ui/style"
	"go.trai.ch/zerr"
)

// timeFormat matches the operator-facing timestamp layout everywhere.
const timeFormat = "2006-01-02 15:04:05"

// timeBreak is the gap between adjacent rows that gets highlighted, so the
// eye can find where one deployment ends and the next begins.
const timeBreak = time.Hour

var _ ports.Renderer = (*Renderer)(nil)

// Renderer writes emissions to a single stream. It holds no state between
// emissions.
type Renderer struct {
	w   io.Writer
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w, defaulting to stdout.
// The color profile is detected from the environment.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{w: w, out: output.New(w)}
}

// NewRendererWithProfile creates a Renderer with an explicit color profile
// selector. Tests use this to force Ascii for deterministic output.
func NewRendererWithProfile(w io.Writer, profileFn func() termenv.Profile) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{w: w, out: output.NewWithProfile(w, profileFn)}
}

// RenderSummary writes one emission block: a poll-time header followed by a
// row per task, oldest first. An empty cluster renders an explicit marker so
// the operator can tell "no tasks" apart from "no output yet".
func (r *Renderer) RenderSummary(s domain.ClusterSummary) error {
	var b strings.Builder

	b.WriteString(s.PolledAt.UTC().Format(timeFormat))
	b.WriteByte('\n')

	if s.Count == 0 {
		b.WriteString(r.out.String("(no tasks)").Faint().String())
		b.WriteByte('\n')
		return r.write(b.String())
	}

	for i, rec := range s.Records {
		line := r.taskRow(rec)
		// Underline a row when the next one is far in the future, to mark
		// the time break.
		if i+1 < len(s.Records) && s.Records[i+1].StartedAt.Sub(rec.StartedAt) >= timeBreak {
			line = r.out.String(line).Underline().String()
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return r.write(b.String())
}

// taskRow formats one task: timestamp, last status (colored), desired
// status, definition version, and images.
func (r *Renderer) taskRow(rec domain.TaskRecord) string {
	status := r.out.String(fmt.Sprintf("%-14s", rec.LastStatus)).
		Foreground(statusColor(rec.LastStatus)).
		String()

	row := fmt.Sprintf("%s  %s %-8s %s [%s]",
		rec.StartedAt.UTC().Format(timeFormat),
		status,
		rec.DesiredStatus,
		rec.DefinitionVersion,
		strings.Join(rec.Images, ", "),
	)

	if rec.Health != "" && rec.Health != "UNKNOWN" {
		row += " " + r.out.String("("+strings.ToLower(rec.Health)+")").Faint().String()
	}

	return row
}

// statusColor maps a task status onto the shared palette.
func statusColor(status string) termenv.Color {
	switch status {
	case "RUNNING":
		return termenv.RGBColor(string(style.Green))
	case "STOPPED", "DEPROVISIONING", "STOPPING":
		return termenv.RGBColor(string(style.Red))
	default:
		// PROVISIONING, PENDING, ACTIVATING, and anything new.
		return termenv.RGBColor(string(style.Yellow))
	}
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return zerr.Wrap(err, "failed to write to output stream")
	}
	return nil
}
