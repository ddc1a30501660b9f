package sema

import (
	"testing"

	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/token"
	"github.com/cwbudde/decafsema/internal/types"
)

func classDecl(name string, extends string, implements ...string) *ast.ClassDecl {
	var ext *ast.Identifier
	if extends != "" {
		ext = ast.NewIdentifier(token.Position{}, extends)
	}
	ifaces := make([]*ast.Identifier, len(implements))
	for i, n := range implements {
		ifaces[i] = ast.NewIdentifier(token.Position{}, n)
	}
	return ast.NewClassDecl(token.Position{}, ast.NewIdentifier(token.Position{}, name), ext, ifaces, nil)
}

// newTestContext builds a context whose global scope declares classes, with
// BuildScopes run over them so each has its own (empty) scope recorded.
func newTestContext(classes ...*ast.ClassDecl) *Context {
	ctx := NewContext(nil)
	for _, c := range classes {
		ctx.Global.Insert(c)
		BuildScopes(ctx, c, ctx.Global)
	}
	return ctx
}

func TestEquivalentPrimitives(t *testing.T) {
	ctx := newTestContext()
	if !Equivalent(ctx, types.IntType, types.IntType) {
		t.Error("a type should be equivalent to itself")
	}
	if Equivalent(ctx, types.IntType, types.DoubleType) {
		t.Error("int and double are not equivalent")
	}
}

func TestEquivalentErrorSuppressesEverything(t *testing.T) {
	ctx := newTestContext()
	if !Equivalent(ctx, types.ErrorType, types.StringType) {
		t.Error("error should be equivalent to any type on the left")
	}
	if !Equivalent(ctx, types.BoolType, types.ErrorType) {
		t.Error("error should be equivalent to any type on the right")
	}
}

func TestEquivalentNullAndReferenceTypes(t *testing.T) {
	ctx := newTestContext()
	shape := types.NewNamedType("Shape")
	if !Equivalent(ctx, types.NullType, shape) {
		t.Error("null should be assignable to a named type")
	}
	if !Equivalent(ctx, types.NullType, types.NewArrayType(types.IntType)) {
		t.Error("null should be assignable to an array type")
	}
	if Equivalent(ctx, types.NullType, types.IntType) {
		t.Error("null should not be equivalent to a primitive")
	}
}

func TestEquivalentArraysRecurseOnElement(t *testing.T) {
	ctx := newTestContext()
	a := types.NewArrayType(types.IntType)
	b := types.NewArrayType(types.IntType)
	c := types.NewArrayType(types.DoubleType)
	if !Equivalent(ctx, a, b) {
		t.Error("arrays of the same element type should be equivalent")
	}
	if Equivalent(ctx, a, c) {
		t.Error("arrays of different element types should not be equivalent")
	}
}

func TestEquivalentSubtypeOnTheLeft(t *testing.T) {
	base := classDecl("Animal", "")
	derived := classDecl("Dog", "Animal")
	ctx := newTestContext(base, derived)

	dogType := types.NewNamedType("Dog")
	animalType := types.NewNamedType("Animal")

	if !Equivalent(ctx, dogType, animalType) {
		t.Error("a subclass should be assignable where its ancestor is expected")
	}
	if Equivalent(ctx, animalType, dogType) {
		t.Error("assignability is asymmetric: an ancestor is not a subtype of its descendant")
	}
}

func TestEquivalentInterfaceImplementation(t *testing.T) {
	iface := &ast.InterfaceDecl{Name: ast.NewIdentifier(token.Position{}, "Walker")}
	impl := classDecl("Dog", "", "Walker")
	ctx := NewContext(nil)
	ctx.Global.Insert(iface)
	ctx.Global.Insert(impl)
	BuildScopes(ctx, impl, ctx.Global)

	dogType := types.NewNamedType("Dog")
	walkerType := types.NewNamedType("Walker")
	if !Equivalent(ctx, dogType, walkerType) {
		t.Error("a class should be assignable where an interface it implements is expected")
	}
}

func TestIsSubtypeOfDetectsCycles(t *testing.T) {
	a := classDecl("A", "B")
	b := classDecl("B", "A")
	ctx := newTestContext(a, b)

	if isSubtypeOf(ctx, "A", "Unrelated") {
		t.Error("a cyclic chain should not spuriously report subtyping")
	}
}

func TestClassIsCyclic(t *testing.T) {
	a := classDecl("A", "B")
	b := classDecl("B", "A")
	straight := classDecl("Straight", "")
	ctx := newTestContext(a, b, straight)

	if !classIsCyclic(ctx, a) {
		t.Error("A -> B -> A should be detected as cyclic")
	}
	if classIsCyclic(ctx, straight) {
		t.Error("a class with no ancestors is never cyclic")
	}
}
