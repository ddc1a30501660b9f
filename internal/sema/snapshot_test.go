package sema_test

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/decafsema/internal/fixture"
	"github.com/cwbudde/decafsema/internal/sema"
)

// formatDiagnostics runs the full pass over yamlSrc and renders every
// diagnostic through diag.Reporter.Format, one per line, the same text a
// caller of internal/diag would see. It is the snapshot subject for the
// scenarios below, matching spec.md §8's "concrete end-to-end scenarios".
func formatDiagnostics(t *testing.T, yamlSrc string) string {
	t.Helper()
	program, err := fixture.Load(strings.NewReader(yamlSrc))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}
	ctx, _ := sema.CheckProgram(program)
	var out []string
	for _, d := range ctx.Reporter.Diagnostics() {
		out = append(out, ctx.Reporter.Format(d, false))
	}
	return strings.Join(out, "\n")
}

// TestScenarioS1MissingType is spec.md §8's S1: a field declared with an
// undeclared type name.
func TestScenarioS1MissingType(t *testing.T) {
	out := formatDiagnostics(t, `
decls:
  - kind: class
    name: A
    members:
      - kind: var
        name: b
        type: {kind: named, name: B}
`)
	snaps.MatchSnapshot(t, out)
}

// TestScenarioS2OverrideMismatch is spec.md §8's S2: a subclass method that
// changes its ancestor's return type.
func TestScenarioS2OverrideMismatch(t *testing.T) {
	out := formatDiagnostics(t, `
decls:
  - kind: class
    name: Base
    members:
      - kind: fn
        name: f
        returnType: {kind: void}
        formals:
          - kind: var
            name: x
            type: {kind: int}
        body: {kind: block}
  - kind: class
    name: Sub
    extends: Base
    members:
      - kind: fn
        name: f
        returnType: {kind: int}
        formals:
          - kind: var
            name: x
            type: {kind: int}
        body:
          kind: block
          stmts:
            - kind: return
              value: {kind: int, intValue: 0}
`)
	snaps.MatchSnapshot(t, out)
}

// TestScenarioS3InterfaceNotImplemented is spec.md §8's S3: a class that
// declares conformance to an interface but never supplies its member.
func TestScenarioS3InterfaceNotImplemented(t *testing.T) {
	out := formatDiagnostics(t, `
decls:
  - kind: interface
    name: I
    members:
      - kind: fn
        name: m
        returnType: {kind: void}
        formals: []
  - kind: class
    name: C
    implements: [I]
    members: []
`)
	snaps.MatchSnapshot(t, out)
}

// TestScenarioS4ArithmeticMixing is spec.md §8's S4: mixing int and double
// in an arithmetic expression, then assigning the resulting error type back
// into an int — the second diagnostic is suppressed by error propagation,
// leaving exactly one.
func TestScenarioS4ArithmeticMixing(t *testing.T) {
	out := formatDiagnostics(t, `
decls:
  - kind: fn
    name: g
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      decls:
        - kind: var
          name: a
          type: {kind: int}
        - kind: var
          name: b
          type: {kind: double}
      stmts:
        - kind: expr
          expr:
            kind: assign
            left: {kind: field, field: a}
            right:
              kind: arith
              op: +
              left: {kind: field, field: a}
              right: {kind: field, field: b}
`)
	snaps.MatchSnapshot(t, out)
}

// TestScenarioS5BreakOutsideLoop is spec.md §8's S5: a break statement with
// no enclosing loop or switch.
func TestScenarioS5BreakOutsideLoop(t *testing.T) {
	out := formatDiagnostics(t, `
decls:
  - kind: fn
    name: g
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      stmts:
        - kind: break
`)
	snaps.MatchSnapshot(t, out)
}

// TestScenarioS6ThisInFreeFunction is spec.md §8's S6: a this-expression
// reached from a function with no enclosing class.
func TestScenarioS6ThisInFreeFunction(t *testing.T) {
	out := formatDiagnostics(t, `
decls:
  - kind: fn
    name: g
    returnType: {kind: int}
    formals: []
    body:
      kind: block
      stmts:
        - kind: expr
          expr:
            kind: eq
            op: "=="
            left: {kind: this}
            right: {kind: null}
`)
	snaps.MatchSnapshot(t, out)
}
