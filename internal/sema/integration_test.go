package sema_test

import (
	"strings"
	"testing"

	"github.com/cwbudde/decafsema/internal/diag"
	"github.com/cwbudde/decafsema/internal/fixture"
	"github.com/cwbudde/decafsema/internal/sema"
)

func check(t *testing.T, yamlSrc string) *sema.AnalysisError {
	t.Helper()
	program, err := fixture.Load(strings.NewReader(yamlSrc))
	if err != nil {
		t.Fatalf("fixture.Load: %v", err)
	}
	_, analysisErr := sema.CheckProgram(program)
	if analysisErr == nil {
		return nil
	}
	ae, ok := analysisErr.(*sema.AnalysisError)
	if !ok {
		t.Fatalf("CheckProgram returned non-AnalysisError: %v", analysisErr)
	}
	return ae
}

func expectNoErrors(t *testing.T, yamlSrc string) {
	t.Helper()
	if ae := check(t, yamlSrc); ae != nil {
		t.Fatalf("expected no diagnostics, got: %v", ae)
	}
}

func expectDiagnostic(t *testing.T, yamlSrc string, kind diag.Kind) {
	t.Helper()
	ae := check(t, yamlSrc)
	if ae == nil {
		t.Fatalf("expected a %s diagnostic, got none", kind)
	}
	for _, d := range ae.Diagnostics {
		if d.Kind == kind {
			return
		}
	}
	t.Fatalf("expected a %s diagnostic, got: %v", kind, ae)
}

func TestValidClassProgram(t *testing.T) {
	expectNoErrors(t, `
decls:
  - kind: class
    name: Counter
    members:
      - kind: var
        name: n
        type: {kind: int}
      - kind: fn
        name: bump
        returnType: {kind: void}
        formals: []
        body:
          kind: block
          stmts:
            - kind: expr
              expr:
                kind: assign
                left: {kind: field, base: {kind: this}, field: n}
                right: {kind: int, intValue: 1}
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      decls:
        - kind: var
          name: c
          type: {kind: named, name: Counter}
      stmts:
        - kind: expr
          expr:
            kind: assign
            left: {kind: field, field: c}
            right: {kind: new, class: Counter}
        - kind: expr
          expr:
            kind: call
            base: {kind: field, field: c}
            func: bump
            args: []
`)
}

func TestUndeclaredIdentifier(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      stmts:
        - kind: expr
          expr:
            kind: assign
            left: {kind: field, field: x}
            right: {kind: int, intValue: 1}
`, diag.IdentifierNotDeclared)
}

func TestAssignTypeMismatch(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      decls:
        - kind: var
          name: n
          type: {kind: int}
      stmts:
        - kind: expr
          expr:
            kind: assign
            left: {kind: field, field: n}
            right: {kind: string, stringValue: "hi"}
`, diag.IncompatibleOperands)
}

func TestOverrideMismatch(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: class
    name: Base
    members:
      - kind: fn
        name: speak
        returnType: {kind: int}
        formals: []
        body: {kind: block}
  - kind: class
    name: Derived
    extends: Base
    members:
      - kind: fn
        name: speak
        returnType: {kind: string}
        formals: []
        body: {kind: block}
`, diag.OverrideMismatch)
}

func TestInterfaceNotImplemented(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: interface
    name: Greeter
    members:
      - kind: fn
        name: greet
        returnType: {kind: void}
        formals: []
  - kind: class
    name: Silent
    implements: [Greeter]
    members: []
`, diag.InterfaceNotImplemented)
}

func TestBreakOutsideLoop(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      stmts:
        - kind: break
`, diag.BreakOutsideLoop)
}

func TestReturnMismatch(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: fn
    name: getNum
    returnType: {kind: int}
    formals: []
    body:
      kind: block
      stmts:
        - kind: return
          value: {kind: bool, boolValue: true}
`, diag.ReturnMismatch)
}

func TestInheritanceCycle(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: class
    name: A
    extends: B
    members: []
  - kind: class
    name: B
    extends: A
    members: []
`, diag.InheritanceCycle)
}

func TestArrayLengthCallValid(t *testing.T) {
	expectNoErrors(t, `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      decls:
        - kind: var
          name: arr
          type: {kind: array, elem: {kind: int}}
        - kind: var
          name: n
          type: {kind: int}
      stmts:
        - kind: expr
          expr:
            kind: assign
            left: {kind: field, field: arr}
            right:
              kind: newArray
              size: {kind: int, intValue: 5}
              elemType: {kind: int}
        - kind: expr
          expr:
            kind: assign
            left: {kind: field, field: n}
            right:
              kind: call
              base: {kind: field, field: arr}
              func: length
              args: []
`)
}

func TestSwitchCaseMismatch(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      decls:
        - kind: var
          name: n
          type: {kind: int}
      stmts:
        - kind: switch
          scrut: {kind: field, field: n}
          cases:
            - value: {kind: string, stringValue: "x"}
              stmts: []
`, diag.IncompatibleOperands)
}

func TestThisOutsideClassScope(t *testing.T) {
	ae := check(t, `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      stmts:
        - kind: expr
          expr:
            kind: field
            base: {kind: this}
            field: x
`)
	if ae == nil {
		t.Fatal("expected a ThisOutsideClassScope diagnostic, got none")
	}
	if len(ae.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic (no cascading FieldNotFoundInBase), got %d: %v", len(ae.Diagnostics), ae)
	}
	if ae.Diagnostics[0].Kind != diag.ThisOutsideClassScope {
		t.Fatalf("expected ThisOutsideClassScope, got %s", ae.Diagnostics[0].Kind)
	}
}

func TestDeclConflict(t *testing.T) {
	expectDiagnostic(t, `
decls:
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      decls:
        - kind: var
          name: x
          type: {kind: int}
        - kind: var
          name: x
          type: {kind: int}
`, diag.DeclConflict)
}
