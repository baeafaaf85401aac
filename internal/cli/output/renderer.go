// Package output renders command results for terminals and scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/wildlog/pkg/core"
	"golang.org/x/term"
)

// Mode selects how results are written.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto" // TTY=text, otherwise json
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes results to out and diagnostics to errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, isTTY: isTTY}
}

// EffectiveMode resolves ModeAuto against the TTY state.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModeJSON
}

// Out returns the result writer.
func (r *Renderer) Out() io.Writer {
	return r.out
}

// Sightings writes a list of sightings as a table or JSON array.
func (r *Renderer) Sightings(list []*core.Sighting) error {
	if r.EffectiveMode() == ModeJSON {
		if list == nil {
			list = []*core.Sighting{}
		}
		return r.JSON(list)
	}

	if len(list) == 0 {
		_, _ = fmt.Fprintln(r.out, "(0 sightings)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"ID", "Species", "Location", "Date", "Time"})
	for _, s := range list {
		t.AppendRow(table.Row{s.ID, s.Species, s.Location, s.Date, s.Time})
	}
	t.Render()

	noun := "sightings"
	if len(list) == 1 {
		noun = "sighting"
	}
	_, _ = fmt.Fprintf(r.out, "(%d %s)\n", len(list), noun)
	return nil
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Warn writes a diagnostic line to the error stream.
func (r *Renderer) Warn(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errOut, "Warning: "+format+"\n", args...)
}
