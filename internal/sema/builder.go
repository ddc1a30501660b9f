package sema

import (
	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/scope"
)

// BuildScopes is phase 1: a top-down traversal that attaches parentScope
// (or a new scope enclosed by it) to every node, inserts the declarations a
// node introduces, and recurses into children with the scope just
// established. Redeclaration within a single table is rejected
// (DeclConflict); shadowing a name from an outer scope is always legal.
func BuildScopes(ctx *Context, node ast.Node, parentScope *scope.Scope) {
	switch n := node.(type) {

	case *ast.Program:
		ctx.SetScope(n, ctx.Global)
		for _, d := range n.Decls {
			insertDecl(ctx, ctx.Global, d)
		}
		for _, d := range n.Decls {
			BuildScopes(ctx, d, ctx.Global)
		}

	case *ast.ClassDecl:
		classScope := scope.New(parentScope)
		classScope.Class = n
		ctx.SetScope(n, classScope)
		for _, m := range n.Members {
			insertDecl(ctx, classScope, m)
		}
		for _, m := range n.Members {
			BuildScopes(ctx, m, classScope)
		}

	case *ast.InterfaceDecl:
		ifaceScope := scope.New(parentScope)
		ctx.SetScope(n, ifaceScope)
		for _, m := range n.Members {
			insertDecl(ctx, ifaceScope, m)
		}
		for _, m := range n.Members {
			BuildScopes(ctx, m, ifaceScope)
		}

	case *ast.FnDecl:
		fnScope := scope.New(parentScope)
		fnScope.Fn = n
		ctx.SetScope(n, fnScope)
		for _, f := range n.Formals {
			insertDecl(ctx, fnScope, f)
			ctx.SetScope(f, fnScope)
		}
		if n.Body != nil {
			BuildScopes(ctx, n.Body, fnScope)
		}

	case *ast.VarDecl:
		ctx.SetScope(n, parentScope)

	case *ast.StmtBlock:
		blockScope := scope.New(parentScope)
		ctx.SetScope(n, blockScope)
		for _, d := range n.Decls {
			insertDecl(ctx, blockScope, d)
			ctx.SetScope(d, blockScope)
		}
		for _, s := range n.Stmts {
			BuildScopes(ctx, s, blockScope)
		}

	case *ast.IfStmt:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Cond, parentScope)
		BuildScopes(ctx, n.Then, parentScope)
		if n.Else != nil {
			BuildScopes(ctx, n.Else, parentScope)
		}

	case *ast.ForStmt:
		loopScope := scope.New(parentScope)
		loopScope.Loop = n
		ctx.SetScope(n, loopScope)
		if n.Init != nil {
			BuildScopes(ctx, n.Init, loopScope)
		}
		BuildScopes(ctx, n.Cond, loopScope)
		if n.Step != nil {
			BuildScopes(ctx, n.Step, loopScope)
		}
		BuildScopes(ctx, n.Body, loopScope)

	case *ast.WhileStmt:
		loopScope := scope.New(parentScope)
		loopScope.Loop = n
		ctx.SetScope(n, loopScope)
		BuildScopes(ctx, n.Cond, loopScope)
		BuildScopes(ctx, n.Body, loopScope)

	case *ast.SwitchStmt:
		switchScope := scope.New(parentScope)
		switchScope.Switch = n
		ctx.SetScope(n, switchScope)
		BuildScopes(ctx, n.Scrut, switchScope)
		for _, c := range n.Cases {
			if c.Value != nil {
				BuildScopes(ctx, c.Value, switchScope)
			}
			for _, s := range c.Stmts {
				BuildScopes(ctx, s, switchScope)
			}
		}

	case *ast.BreakStmt:
		ctx.SetScope(n, parentScope)

	case *ast.ReturnStmt:
		ctx.SetScope(n, parentScope)
		if n.Value != nil {
			BuildScopes(ctx, n.Value, parentScope)
		}

	case *ast.PrintStmt:
		ctx.SetScope(n, parentScope)
		for _, a := range n.Args {
			BuildScopes(ctx, a, parentScope)
		}

	case *ast.ExprStmt:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Expr, parentScope)

	// Expressions: record the scope and recurse into sub-expressions. This
	// is needed because This, FieldAccess, and Call resolve names against
	// the scope chain during phase 2.
	case *ast.This, *ast.IntConstant, *ast.DoubleConstant, *ast.BoolConstant,
		*ast.StringConstant, *ast.NullConstant, *ast.EmptyExpr,
		*ast.ReadIntegerExpr, *ast.ReadLineExpr:
		ctx.SetScope(n, parentScope)

	case *ast.ArrayAccess:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Base, parentScope)
		BuildScopes(ctx, n.Index, parentScope)

	case *ast.FieldAccess:
		ctx.SetScope(n, parentScope)
		if n.Base != nil {
			BuildScopes(ctx, n.Base, parentScope)
		}

	case *ast.Call:
		ctx.SetScope(n, parentScope)
		if n.Base != nil {
			BuildScopes(ctx, n.Base, parentScope)
		}
		for _, a := range n.Args {
			BuildScopes(ctx, a, parentScope)
		}

	case *ast.NewExpr:
		ctx.SetScope(n, parentScope)

	case *ast.NewArrayExpr:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Size, parentScope)

	case *ast.PostfixExpr:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Operand, parentScope)

	case *ast.ArithmeticExpr:
		ctx.SetScope(n, parentScope)
		if n.Left != nil {
			BuildScopes(ctx, n.Left, parentScope)
		}
		BuildScopes(ctx, n.Right, parentScope)

	case *ast.RelationalExpr:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Left, parentScope)
		BuildScopes(ctx, n.Right, parentScope)

	case *ast.EqualityExpr:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Left, parentScope)
		BuildScopes(ctx, n.Right, parentScope)

	case *ast.LogicalExpr:
		ctx.SetScope(n, parentScope)
		if n.Left != nil {
			BuildScopes(ctx, n.Left, parentScope)
		}
		BuildScopes(ctx, n.Right, parentScope)

	case *ast.AssignExpr:
		ctx.SetScope(n, parentScope)
		BuildScopes(ctx, n.Left, parentScope)
		BuildScopes(ctx, n.Right, parentScope)

	case *ast.Identifier:
		ctx.SetScope(n, parentScope)

	default:
		assertf(false, "BuildScopes: unhandled node type %T", node)
	}
}

// insertDecl inserts decl into s's table, reporting DeclConflict if the
// name was already taken in this scope (shadowing an outer scope is not a
// conflict).
func insertDecl(ctx *Context, s *scope.Scope, decl ast.Declaration) {
	if prior, ok := s.Insert(decl); !ok {
		ctx.Reporter.DeclConflict(decl, prior)
	}
}
