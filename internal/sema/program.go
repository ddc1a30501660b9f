package sema

import (
	"fmt"
	"strings"

	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/diag"
)

// AnalysisError wraps every diagnostic a Check call produced, so a caller
// that only wants a pass/fail signal can treat the result as a plain error
// while a caller that wants the detail can type-assert it back.
type AnalysisError struct {
	Diagnostics []*diag.Diagnostic
	Reporter    *diag.Reporter
}

func (e *AnalysisError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "semantic analysis failed"
	}
	if len(e.Diagnostics) == 1 {
		return fmt.Sprintf("semantic error: %s", e.Reporter.Format(e.Diagnostics[0], false))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "semantic analysis failed with %d errors:\n", len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, e.Reporter.Format(d, false))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// CheckProgram runs both phases of semantic analysis over program: BuildScopes
// establishes the scope tree and binds every declaration, then Check walks
// the bound tree reporting every diagnostic the catalogue defines. It
// returns nil if the program is free of diagnostics, or an *AnalysisError
// wrapping every diagnostic reporter collected (hints, were there any kind
// of hint in this catalogue, would not suppress success — there are none).
//
// The returned *Context stays valid after CheckProgram returns: callers that
// want the scope tree or the diagnostics for their own reporting (the CLI,
// tests) can keep using it.
func CheckProgram(program *ast.Program) (*Context, error) {
	if program == nil {
		return nil, fmt.Errorf("cannot analyze nil program")
	}

	reporter := diag.NewReporter()
	ctx := NewContext(reporter)

	logger.Debug("phase 1: building scopes", "decls", len(program.Decls))
	BuildScopes(ctx, program, ctx.Global)

	logger.Debug("phase 2: checking", "decls", len(program.Decls))
	Check(ctx, program)

	logger.Debug("analysis complete", "diagnostics", reporter.Count())
	if reporter.Count() > 0 {
		return ctx, &AnalysisError{Diagnostics: reporter.Diagnostics(), Reporter: reporter}
	}
	return ctx, nil
}
