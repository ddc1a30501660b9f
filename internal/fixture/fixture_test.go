package fixture

import (
	"strings"
	"testing"

	"github.com/cwbudde/decafsema/internal/ast"
)

func TestLoadValidProgram(t *testing.T) {
	program, err := Load(strings.NewReader(`
decls:
  - kind: class
    name: Shape
    members:
      - kind: var
        name: area
        type: {kind: double}
  - kind: fn
    name: main
    returnType: {kind: void}
    formals: []
    body:
      kind: block
      stmts: []
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(program.Decls) != 2 {
		t.Fatalf("expected 2 top-level decls, got %d", len(program.Decls))
	}
	if _, ok := program.Decls[0].(*ast.ClassDecl); !ok {
		t.Errorf("decls[0] should be a ClassDecl, got %T", program.Decls[0])
	}
	if _, ok := program.Decls[1].(*ast.FnDecl); !ok {
		t.Errorf("decls[1] should be an FnDecl, got %T", program.Decls[1])
	}
}

func TestLoadEveryPositionIsZero(t *testing.T) {
	program, err := Load(strings.NewReader(`
decls:
  - kind: var
    name: g
    type: {kind: int}
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	v := program.Decls[0].(*ast.VarDecl)
	if got := v.Pos().String(); got != "-" {
		t.Errorf("fixture-built node should carry a zero position, got %q", got)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("decls: [this is not a decl list"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadRejectsUnknownDeclKind(t *testing.T) {
	_, err := Load(strings.NewReader(`
decls:
  - kind: bogus
    name: x
`))
	if err == nil {
		t.Fatal("expected an error for an unknown decl kind")
	}
}

func TestLoadRejectsUnknownExprKind(t *testing.T) {
	_, err := Load(strings.NewReader(`
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
            kind: bogus
`))
	if err == nil {
		t.Fatal("expected an error for an unknown expr kind")
	}
}
