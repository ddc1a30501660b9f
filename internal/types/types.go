// Package types implements the Decaf type model: primitive singletons,
// named types (referring to a class or interface by identifier), and array
// types. It purposefully knows nothing about declarations or scopes — the
// subtype-aware Equivalent judgement that needs that context lives in
// package sema.
package types

import "fmt"

// Type is implemented by every type variant.
type Type interface {
	// TypeKind returns a short tag identifying the variant, used for quick
	// discrimination without a type switch at every call site.
	TypeKind() string
	String() string
}

// Primitive is one of the built-in scalar kinds, plus the void, null, and
// error sentinels.
type Primitive struct {
	kind string
}

func (p *Primitive) TypeKind() string { return "primitive" }
func (p *Primitive) String() string   { return p.kind }

// Primitive singletons. Pointer equality is sufficient to compare two
// primitives since these are the only instances ever constructed.
var (
	IntType    = &Primitive{kind: "int"}
	DoubleType = &Primitive{kind: "double"}
	BoolType   = &Primitive{kind: "bool"}
	StringType = &Primitive{kind: "string"}
	VoidType   = &Primitive{kind: "void"}
	NullType   = &Primitive{kind: "null"}
	ErrorType  = &Primitive{kind: "error"}
)

// IsNumeric reports whether t is int or double.
func IsNumeric(t Type) bool {
	p, ok := t.(*Primitive)
	return ok && (p == IntType || p == DoubleType)
}

// IsError reports whether t is the error sentinel.
func IsError(t Type) bool {
	return t == ErrorType
}

// Named refers to a class or interface declared elsewhere by identifier.
// TypeDeclared starts true and is cleared by the checker the first time it
// reports that Name does not resolve to a type, so later uses of the same
// NamedType value stay quiet (error-suppression rule).
type Named struct {
	Name         string
	TypeDeclared bool
}

// NewNamedType returns a Named type that is assumed declared until proven
// otherwise by the checker.
func NewNamedType(name string) *Named {
	return &Named{Name: name, TypeDeclared: true}
}

func (n *Named) TypeKind() string { return "named" }
func (n *Named) String() string   { return n.Name }

// Array wraps an element type.
type Array struct {
	Elem Type
}

func NewArrayType(elem Type) *Array {
	return &Array{Elem: elem}
}

func (a *Array) TypeKind() string { return "array" }
func (a *Array) String() string   { return fmt.Sprintf("%s[]", a.Elem.String()) }

// IsReference reports whether t is a type that null can be assigned to:
// a named type (class or interface) or an array type.
func IsReference(t Type) bool {
	switch t.(type) {
	case *Named, *Array:
		return true
	default:
		return false
	}
}

// SameKind reports structural equality that does not require resolving
// named types against declarations: identical primitives, arrays whose
// element types are SameKind, or named types with the same spelling. The
// error sentinel on either side matches anything, and a named type on the
// left matches null. Callers needing subtype-aware comparison must use
// sema.Equivalent instead.
func SameKind(a, b Type) bool {
	if a == ErrorType || b == ErrorType {
		return true
	}
	switch av := a.(type) {
	case *Primitive:
		bv, ok := b.(*Primitive)
		return ok && av == bv
	case *Array:
		bv, ok := b.(*Array)
		return ok && SameKind(av.Elem, bv.Elem)
	case *Named:
		if b == NullType {
			return true
		}
		bv, ok := b.(*Named)
		return ok && av.Name == bv.Name
	default:
		return false
	}
}
