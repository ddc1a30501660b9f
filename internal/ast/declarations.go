package ast

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/decafsema/internal/token"
	"github.com/cwbudde/decafsema/internal/types"
)

// VarDecl declares a field, a local variable, or a formal parameter. Which
// of the three it is follows from where it sits in the tree, not from a
// flag on the node itself.
type VarDecl struct {
	Token token.Position
	Name  *Identifier
	Type  types.Type
}

func NewVarDecl(pos token.Position, name *Identifier, declType types.Type) *VarDecl {
	return &VarDecl{Token: pos, Name: name, Type: declType}
}

func (v *VarDecl) declNode()              {}
func (v *VarDecl) statementNode()         {}
func (v *VarDecl) TokenLiteral() string   { return v.Name.Name }
func (v *VarDecl) Pos() token.Position    { return v.Token }
func (v *VarDecl) DeclName() string       { return v.Name.Name }
func (v *VarDecl) String() string {
	return fmt.Sprintf("%s %s;", v.Type.String(), v.Name.String())
}

// FnDecl declares a function, a method, or an interface method signature.
// Body is nil for interface members.
type FnDecl struct {
	Token      token.Position
	Name       *Identifier
	ReturnType types.Type
	Formals    []*VarDecl
	Body       *StmtBlock
}

func NewFnDecl(pos token.Position, name *Identifier, returnType types.Type, formals []*VarDecl, body *StmtBlock) *FnDecl {
	return &FnDecl{Token: pos, Name: name, ReturnType: returnType, Formals: formals, Body: body}
}

func (f *FnDecl) declNode()            {}
func (f *FnDecl) TokenLiteral() string { return f.Name.Name }
func (f *FnDecl) Pos() token.Position  { return f.Token }
func (f *FnDecl) DeclName() string     { return f.Name.Name }
func (f *FnDecl) String() string {
	var out bytes.Buffer
	out.WriteString(f.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(f.Name.String())
	out.WriteString("(")
	out.WriteString(joinStrings(f.Formals, ", "))
	out.WriteString(")")
	if f.Body != nil {
		out.WriteString(" ")
		out.WriteString(f.Body.String())
	} else {
		out.WriteString(";")
	}
	return out.String()
}
