package sema

import (
	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/types"
)

// Equivalent is both the equivalence and the assignability judgement:
// "left is acceptable where right is expected". It is deliberately
// asymmetric — subtype-on-the-left — per the specification: a value of
// left's type may be assigned into a variable of right's type iff left is
// right or left transitively extends/implements right.
//
// error is equivalent to everything, to suppress cascading diagnostics once
// one sub-expression has already failed to type. null is equivalent to any
// reference type in either position.
func Equivalent(ctx *Context, left, right types.Type) bool {
	if left == nil || right == nil {
		return false
	}
	if left == types.ErrorType || right == types.ErrorType {
		return true
	}
	if left == types.NullType {
		return types.IsReference(right) || right == types.NullType
	}
	if right == types.NullType {
		return types.IsReference(left) || left == types.NullType
	}

	switch lt := left.(type) {
	case *types.Primitive:
		rt, ok := right.(*types.Primitive)
		return ok && lt == rt

	case *types.Array:
		rt, ok := right.(*types.Array)
		return ok && Equivalent(ctx, lt.Elem, rt.Elem)

	case *types.Named:
		rt, ok := right.(*types.Named)
		if !ok {
			return false
		}
		if lt.Name == rt.Name {
			return true
		}
		return isSubtypeOf(ctx, lt.Name, rt.Name)

	default:
		return false
	}
}

// isSubtypeOf reports whether the class named subName transitively extends
// or implements the class/interface named superName, walking the extends
// chain with cycle detection so a malformed "class A extends A" (or a
// longer cycle) terminates instead of looping forever — the behavior the
// specification's design notes flag as a gap in the original source.
func isSubtypeOf(ctx *Context, subName, superName string) bool {
	decl := ctx.Global.Resolve(subName)
	class, ok := decl.(*ast.ClassDecl)
	if !ok {
		return false
	}

	visited := make(map[string]bool)
	for class != nil {
		if visited[class.Name.Name] {
			return false
		}
		visited[class.Name.Name] = true

		for _, iface := range class.Implements {
			if iface.Name == superName {
				return true
			}
		}
		if class.Extends == nil {
			return false
		}
		if class.Extends.Name == superName {
			return true
		}
		nextDecl := ctx.Global.Resolve(class.Extends.Name)
		nextClass, ok := nextDecl.(*ast.ClassDecl)
		if !ok {
			return false
		}
		class = nextClass
	}
	return false
}

// classIsCyclic reports whether class's own extends chain loops back to
// itself, independent of any particular superName target.
func classIsCyclic(ctx *Context, class *ast.ClassDecl) bool {
	visited := map[string]bool{class.Name.Name: true}
	cur := class
	for cur.Extends != nil {
		nextDecl := ctx.Global.Resolve(cur.Extends.Name)
		nextClass, ok := nextDecl.(*ast.ClassDecl)
		if !ok {
			return false
		}
		if visited[nextClass.Name.Name] {
			return true
		}
		visited[nextClass.Name.Name] = true
		cur = nextClass
	}
	return false
}
