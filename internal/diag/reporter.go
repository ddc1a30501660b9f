// Package diag is the ReportError sink: a collection of formatted
// diagnostic functions, each keyed by an enumerated kind, plus an
// insertion-ordered collector that the program driver and the CLI both
// read from. Diagnostics are delivered synchronously; the checker keeps
// walking after emitting one.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/decafsema/internal/token"
)

// Diagnostic is one reported error, keyed by Kind with the formatted
// message already rendered (the catalogue's per-kind argument lists are
// captured into Message at report time, mirroring the teacher's
// CompilerError shape).
type Diagnostic struct {
	Kind    Kind
	Pos     token.Position
	Message string
}

// Reporter collects diagnostics in the order they are reported — which,
// per the specification's ordering guarantee, is the pre-order (statements)
// / post-order (expressions) of the phase 2 traversal.
type Reporter struct {
	diagnostics []*Diagnostic
	source      string
	file        string
}

func NewReporter() *Reporter {
	return &Reporter{}
}

// SetSource attaches the original source text and filename so Format can
// frame each diagnostic with its offending line. Neither is required:
// without it, Format falls back to just the position and message.
func (r *Reporter) SetSource(source, file string) {
	r.source = source
	r.file = file
}

// Diagnostics returns every diagnostic reported so far, in emission order.
func (r *Reporter) Diagnostics() []*Diagnostic {
	return r.diagnostics
}

// Count returns the number of diagnostics reported.
func (r *Reporter) Count() int {
	return len(r.diagnostics)
}

func (r *Reporter) report(kind Kind, pos token.Position, format string, args ...any) {
	r.diagnostics = append(r.diagnostics, &Diagnostic{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// Format renders a diagnostic as "file:line:col: message", with a source
// line and caret when source text is available.
func (r *Reporter) Format(d *Diagnostic, color bool) string {
	var out strings.Builder

	loc := d.Pos.String()
	if r.file != "" {
		fmt.Fprintf(&out, "%s:%s: %s\n", r.file, loc, d.Message)
	} else {
		fmt.Fprintf(&out, "%s: %s\n", loc, d.Message)
	}

	if line := r.sourceLine(d.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Pos.Line)
		out.WriteString(prefix)
		out.WriteString(line)
		out.WriteString("\n")
		out.WriteString(strings.Repeat(" ", len(prefix)+max(d.Pos.Column-1, 0)))
		if color {
			out.WriteString("\033[1;31m")
		}
		out.WriteString("^")
		if color {
			out.WriteString("\033[0m")
		}
	}

	return strings.TrimRight(out.String(), "\n")
}

func (r *Reporter) sourceLine(line int) string {
	if r.source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(r.source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
