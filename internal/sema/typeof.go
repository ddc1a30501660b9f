package sema

import (
	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/types"
)

// TypeOf synthesizes expr's static type from its already-typed children. It
// never reports a diagnostic and never mutates anything — all it does is
// answer "what type would this expression have, assuming its sub-expressions
// are well-typed". The checker is the one place diagnostics get raised when
// a synthesized type fails an expectation; it calls TypeOf for constants,
// reads, "this", and allocations, and derives the other expression types
// itself while checking their operands.
//
// Struct fields/scopes it needs (the scope an expression sits in, to resolve
// bare names and "this") come from ctx's side table, populated by
// BuildScopes during phase 1.
func TypeOf(ctx *Context, expr ast.Expression) types.Type {
	switch e := expr.(type) {

	case *ast.IntConstant:
		return types.IntType
	case *ast.DoubleConstant:
		return types.DoubleType
	case *ast.BoolConstant:
		return types.BoolType
	case *ast.StringConstant:
		return types.StringType
	case *ast.NullConstant:
		return types.NullType
	case *ast.EmptyExpr:
		return types.VoidType
	case *ast.ReadIntegerExpr:
		return types.IntType
	case *ast.ReadLineExpr:
		return types.StringType

	case *ast.This:
		s := ctx.ScopeOf(e)
		if s == nil {
			return types.ErrorType
		}
		class := s.EnclosingClass()
		if class == nil {
			return types.ErrorType
		}
		return types.NewNamedType(class.Name.Name)

	case *ast.ArrayAccess:
		baseType := TypeOf(ctx, e.Base)
		arr, ok := baseType.(*types.Array)
		if !ok {
			return types.ErrorType
		}
		return arr.Elem

	case *ast.FieldAccess:
		return typeOfFieldAccess(ctx, e)

	case *ast.Call:
		return typeOfCall(ctx, e)

	case *ast.NewExpr:
		s := ctx.ScopeOf(e)
		if s == nil {
			return types.ErrorType
		}
		decl := ctx.Global.Resolve(e.Class.Name)
		if _, ok := decl.(*ast.ClassDecl); !ok {
			return types.ErrorType
		}
		return types.NewNamedType(e.Class.Name)

	case *ast.NewArrayExpr:
		return types.NewArrayType(e.ElemType)

	case *ast.PostfixExpr:
		operand := TypeOf(ctx, e.Operand)
		if types.IsNumeric(operand) || operand == types.ErrorType {
			return operand
		}
		return types.ErrorType

	case *ast.ArithmeticExpr:
		if e.IsUnary() {
			return TypeOf(ctx, e.Right)
		}
		left := TypeOf(ctx, e.Left)
		right := TypeOf(ctx, e.Right)
		if left == types.ErrorType {
			return right
		}
		if right == types.ErrorType {
			return left
		}
		if types.SameKind(left, right) {
			return left
		}
		return types.ErrorType

	case *ast.RelationalExpr:
		// REDESIGN FLAG: the source returns the left operand's type here
		// (so "1 < 2" synthesizes int, not bool), forcing every caller that
		// treats a relational result as a condition to special-case it. A
		// relational expression's own static type is boolean regardless of
		// its operands; report the operand mismatch separately in the
		// checker and always synthesize bool here.
		return types.BoolType

	case *ast.EqualityExpr:
		return types.BoolType

	case *ast.LogicalExpr:
		return types.BoolType

	case *ast.AssignExpr:
		return TypeOf(ctx, e.Left)

	default:
		return types.ErrorType
	}
}

// typeOfFieldAccess handles both "x" (Base nil, resolved unqualified) and
// "base.x" (resolved among base's type's members).
func typeOfFieldAccess(ctx *Context, e *ast.FieldAccess) types.Type {
	s := ctx.ScopeOf(e)
	if s == nil {
		return types.ErrorType
	}

	if e.Base == nil {
		decl := resolveUnqualified(ctx, s, e.Field.Name)
		v, ok := decl.(*ast.VarDecl)
		if !ok {
			return types.ErrorType
		}
		return v.Type
	}

	baseType := TypeOf(ctx, e.Base)
	named, ok := baseType.(*types.Named)
	if !ok {
		return types.ErrorType
	}
	decl := ResolveMember(ctx, e.Field.Name, named)
	v, ok := decl.(*ast.VarDecl)
	if !ok {
		return types.ErrorType
	}
	return v.Type
}

// typeOfCall handles "f(args)" (Base nil), "base.m(args)", and the built-in
// "arr.length()" special case, which has no corresponding FnDecl anywhere.
func typeOfCall(ctx *Context, e *ast.Call) types.Type {
	s := ctx.ScopeOf(e)
	if s == nil {
		return types.ErrorType
	}

	if e.Base == nil {
		decl := resolveUnqualified(ctx, s, e.Func.Name)
		fn, ok := decl.(*ast.FnDecl)
		if !ok {
			return types.ErrorType
		}
		return fn.ReturnType
	}

	baseType := TypeOf(ctx, e.Base)
	if _, ok := baseType.(*types.Array); ok && e.Func.Name == "length" {
		return types.IntType
	}

	named, ok := baseType.(*types.Named)
	if !ok {
		return types.ErrorType
	}
	decl := ResolveMember(ctx, e.Func.Name, named)
	fn, ok := decl.(*ast.FnDecl)
	if !ok {
		return types.ErrorType
	}
	return fn.ReturnType
}
