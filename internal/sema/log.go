package sema

import (
	"fmt"
	"log/slog"
)

// logger is the trace-level channel for phase transitions, kept separate
// from internal/diag's Reporter: diag reports semantic diagnostics about
// the program being analyzed, while logger reports on the analysis run
// itself (which phase started, how many declarations or diagnostics it
// produced) — the same split the teacher draws between its interpreter's
// error values and its CLI's informational log output.
//
// The default is a text handler writing to a writer that discards
// everything; CheckProgram never forces
// output on a caller that didn't ask for it. SetLogger lets a caller (the
// CLI, under -v/--verbose) opt in to tracing without this package taking a
// dependency on any particular logging backend beyond the standard
// library's own structured logger.
var logger = slog.New(slog.NewTextHandler(discard{}, nil))

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger installs l as the destination for this package's phase-
// transition tracing.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

// assertf panics with a formatted message if an internal invariant the
// grammar is supposed to guarantee (a non-nil child, a non-empty chain) is
// violated. This is reserved for "this should be impossible" conditions,
// never for malformed-but-representable programs — those get a diag
// diagnostic instead, matching the teacher's own use of bare panics for
// invariant violations rather than recoverable errors.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("sema: invariant violated: "+format, args...))
	}
}
