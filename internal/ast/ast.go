// Package ast defines the Abstract Syntax Tree node types for the Decaf-like
// language this pass analyzes. Nodes are passive data: they carry no scope
// or type information themselves (the scope builder and checker attach that
// out of band, see package sema) and no behavior beyond a String() form used
// for debugging and diagnostics.
//
// The lexer, the parser, and the grammar that would normally assemble these
// nodes from source text are out of scope for this repository. Tests and the
// CLI build trees either directly through the constructors below or via the
// YAML fixture loader in package fixture.
package ast

import (
	"bytes"
	"strings"

	"github.com/cwbudde/decafsema/internal/token"
)

// Node is the base interface for every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Declaration is implemented by the four declaration variants: VarDecl,
// FnDecl, ClassDecl, InterfaceDecl.
type Declaration interface {
	Node
	declNode()
	DeclName() string
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	Decls []Declaration
}

func NewProgram(decls []Declaration) *Program {
	return &Program{Decls: decls}
}

func (p *Program) TokenLiteral() string {
	if len(p.Decls) > 0 {
		return p.Decls[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, d := range p.Decls {
		out.WriteString(d.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier names a declaration use or occurrence. It is not itself a
// Declaration — it is the spelling used inside an expression or a type
// reference.
type Identifier struct {
	NamePos token.Position
	Name    string
}

func NewIdentifier(pos token.Position, name string) *Identifier {
	return &Identifier{NamePos: pos, Name: name}
}

func (i *Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string   { return i.Name }
func (i *Identifier) Pos() token.Position    { return i.NamePos }
func (i *Identifier) String() string         { return i.Name }

// joinStrings renders a slice of Nodes separated by sep, a small helper
// mirroring the teacher's String() builders.
func joinStrings[T Node](nodes []T, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, sep)
}
