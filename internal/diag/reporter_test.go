package diag

import (
	"strings"
	"testing"

	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/token"
)

func TestReporterCollectsInEmissionOrder(t *testing.T) {
	r := NewReporter()
	this1 := ast.NewThis(token.Position{Line: 1, Column: 1})
	this2 := ast.NewThis(token.Position{Line: 2, Column: 1})

	r.ThisOutsideClassScope(this1)
	r.ThisOutsideClassScope(this2)

	if got := r.Count(); got != 2 {
		t.Fatalf("Count() = %d, want 2", got)
	}
	diags := r.Diagnostics()
	if diags[0].Pos.Line != 1 || diags[1].Pos.Line != 2 {
		t.Error("diagnostics should come back in emission order")
	}
}

func TestReporterFormatWithoutSource(t *testing.T) {
	r := NewReporter()
	stmt := ast.NewBreakStmt(token.Position{Line: 5, Column: 3})
	r.BreakOutsideLoop(stmt)

	out := r.Format(r.Diagnostics()[0], false)
	if !strings.Contains(out, "5:3") {
		t.Errorf("Format output %q should contain the position", out)
	}
	if strings.Contains(out, "|") {
		t.Error("Format should not frame a source line when none was set")
	}
}

func TestReporterFormatWithSource(t *testing.T) {
	r := NewReporter()
	r.SetSource("class A {\n  break;\n}\n", "a.decaf")

	stmt := ast.NewBreakStmt(token.Position{Line: 2, Column: 3})
	r.BreakOutsideLoop(stmt)

	out := r.Format(r.Diagnostics()[0], false)
	if !strings.Contains(out, "a.decaf:2:3") {
		t.Errorf("Format output %q should be prefixed with file:line:col", out)
	}
	if !strings.Contains(out, "break;") {
		t.Errorf("Format output %q should frame the offending source line", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Format output %q should include a caret", out)
	}
}

func TestKindString(t *testing.T) {
	if DeclConflict.String() != "DeclConflict" {
		t.Errorf("DeclConflict.String() = %q", DeclConflict.String())
	}
	if Kind(999).String() != "Unknown" {
		t.Errorf("an out-of-range Kind should stringify to Unknown")
	}
}

func TestReasonString(t *testing.T) {
	if LookingForClass.String() != "class" {
		t.Errorf("LookingForClass.String() = %q", LookingForClass.String())
	}
}
