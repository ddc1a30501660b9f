// Package sema implements the two-phase semantic analysis pass: the scope
// builder (phase 1, builder.go), the type checker (phase 2, checker.go and
// typeof.go), the lookup primitives they share (lookup.go), the type
// equivalence judgement (equivalence.go), the program driver (program.go),
// and trace logging plus internal invariant assertions (log.go).
package sema

import (
	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/diag"
	"github.com/cwbudde/decafsema/internal/scope"
)

// Context is the explicit, Program-owned state threaded through both
// phases. It plays the role the specification's design notes recommend in
// place of a global mutable singleton: the global scope and the
// node→scope side table both live here, scoped to one Check invocation,
// rather than as process-wide state.
//
// The side table (rather than a scope field embedded directly in each AST
// node) exists to avoid an import cycle: package scope's context tags
// reference ast.ClassDecl/FnDecl/LoopStmt/SwitchStmt, so scope must import
// ast, and ast cannot import scope back. This mirrors the teacher's own
// separation of semantic metadata (pkg/ast.SemanticInfo) from the passive
// AST nodes it annotates.
type Context struct {
	Global   *scope.Scope
	Reporter *diag.Reporter

	scopes map[ast.Node]*scope.Scope
}

// NewContext creates a fresh context with an empty global scope.
func NewContext(reporter *diag.Reporter) *Context {
	global := scope.New(nil)
	return &Context{
		Global:   global,
		Reporter: reporter,
		scopes:   make(map[ast.Node]*scope.Scope),
	}
}

// SetScope records node's owning scope.
func (c *Context) SetScope(node ast.Node, s *scope.Scope) {
	c.scopes[node] = s
}

// ScopeOf returns node's owning scope, or nil if phase 1 never visited it.
func (c *Context) ScopeOf(node ast.Node) *scope.Scope {
	return c.scopes[node]
}
