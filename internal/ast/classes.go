package ast

import (
	"bytes"

	"github.com/cwbudde/decafsema/internal/token"
)

// Member is implemented by VarDecl and FnDecl — the two node kinds that can
// appear in a class or interface body.
type Member interface {
	Declaration
}

// ClassDecl declares a class: an optional base class, an ordered list of
// implemented interfaces, and ordered members (fields and methods).
type ClassDecl struct {
	Token      token.Position
	Name       *Identifier
	Extends    *Identifier
	Implements []*Identifier
	Members    []Member
}

func NewClassDecl(pos token.Position, name *Identifier, extends *Identifier, implements []*Identifier, members []Member) *ClassDecl {
	return &ClassDecl{Token: pos, Name: name, Extends: extends, Implements: implements, Members: members}
}

func (c *ClassDecl) declNode()            {}
func (c *ClassDecl) TokenLiteral() string { return c.Name.Name }
func (c *ClassDecl) Pos() token.Position  { return c.Token }
func (c *ClassDecl) DeclName() string     { return c.Name.Name }

func (c *ClassDecl) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(c.Name.String())
	if c.Extends != nil {
		out.WriteString(" extends ")
		out.WriteString(c.Extends.String())
	}
	for i, iface := range c.Implements {
		if i == 0 {
			out.WriteString(" implements ")
		} else {
			out.WriteString(", ")
		}
		out.WriteString(iface.String())
	}
	out.WriteString(" {\n")
	for _, m := range c.Members {
		out.WriteString("  ")
		out.WriteString(m.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// InterfaceDecl declares an interface: an ordered list of unimplemented
// method signatures (FnDecl with a nil Body).
type InterfaceDecl struct {
	Token   token.Position
	Name    *Identifier
	Members []*FnDecl
}

func NewInterfaceDecl(pos token.Position, name *Identifier, members []*FnDecl) *InterfaceDecl {
	return &InterfaceDecl{Token: pos, Name: name, Members: members}
}

func (i *InterfaceDecl) declNode()            {}
func (i *InterfaceDecl) TokenLiteral() string { return i.Name.Name }
func (i *InterfaceDecl) Pos() token.Position  { return i.Token }
func (i *InterfaceDecl) DeclName() string     { return i.Name.Name }

func (i *InterfaceDecl) String() string {
	var out bytes.Buffer
	out.WriteString("interface ")
	out.WriteString(i.Name.String())
	out.WriteString(" {\n")
	for _, m := range i.Members {
		out.WriteString("  ")
		out.WriteString(m.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
