// Package scope implements the lexical scope lattice: a symbol table per
// lexical region, linked to its parent, optionally tagged with the
// enclosing class, function, loop, or switch. Scopes hold only non-owning
// references — to their parent and to the declarations they name — per the
// ownership model in the specification's design notes.
package scope

import "github.com/cwbudde/decafsema/internal/ast"

// Table is an insertion-ordered symbol table. Iteration order matters: the
// checker's duplicate-declaration diagnostics report the prior declaration
// in the order it was first seen.
type Table struct {
	symbols map[string]ast.Declaration
	order   []string
}

func NewTable() *Table {
	return &Table{symbols: make(map[string]ast.Declaration)}
}

// Insert adds decl under its name. It returns the previously-declared
// Declaration and false if the name is already taken in this table; the
// caller (the scope builder) is responsible for turning that into a
// DeclConflict diagnostic. On success it returns (decl, true).
func (t *Table) Insert(decl ast.Declaration) (ast.Declaration, bool) {
	name := decl.DeclName()
	if prior, exists := t.symbols[name]; exists {
		return prior, false
	}
	t.symbols[name] = decl
	t.order = append(t.order, name)
	return decl, true
}

// Lookup returns the declaration named name in this table only (no parent
// walk).
func (t *Table) Lookup(name string) (ast.Declaration, bool) {
	d, ok := t.symbols[name]
	return d, ok
}

// Names returns the declared names in first-seen order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// Declarations returns the declarations in first-seen order.
func (t *Table) Declarations() []ast.Declaration {
	decls := make([]ast.Declaration, len(t.order))
	for i, name := range t.order {
		decls[i] = t.symbols[name]
	}
	return decls
}

// Scope owns one Table and links to its (possibly nil) parent. At most one
// of Class, Fn, Loop, Switch is set per scope, recording the nearest
// enclosing construct of each kind that this scope itself represents —
// used to answer "am I inside a loop?" style queries without re-walking the
// AST.
type Scope struct {
	Parent *Scope
	Table  *Table

	Class  *ast.ClassDecl
	Fn     *ast.FnDecl
	Loop   ast.LoopStmt
	Switch *ast.SwitchStmt
}

// New creates a scope enclosed by parent (nil only for the global scope).
func New(parent *Scope) *Scope {
	return &Scope{Parent: parent, Table: NewTable()}
}

// Insert declares name in this scope's table.
func (s *Scope) Insert(decl ast.Declaration) (ast.Declaration, bool) {
	return s.Table.Insert(decl)
}

// Resolve walks this scope and its ancestors, returning the first
// declaration found under name.
func (s *Scope) Resolve(name string) ast.Declaration {
	for cur := s; cur != nil; cur = cur.Parent {
		if d, ok := cur.Table.Lookup(name); ok {
			return d
		}
	}
	return nil
}

// EnclosingClass returns the nearest enclosing ClassDecl, or nil.
func (s *Scope) EnclosingClass() *ast.ClassDecl {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Class != nil {
			return cur.Class
		}
	}
	return nil
}

// EnclosingFn returns the nearest enclosing FnDecl, or nil.
func (s *Scope) EnclosingFn() *ast.FnDecl {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Fn != nil {
			return cur.Fn
		}
	}
	return nil
}

// EnclosingLoop returns the nearest enclosing loop, or nil.
func (s *Scope) EnclosingLoop() ast.LoopStmt {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Loop != nil {
			return cur.Loop
		}
	}
	return nil
}

// EnclosingSwitch returns the nearest enclosing SwitchStmt, or nil.
func (s *Scope) EnclosingSwitch() *ast.SwitchStmt {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Switch != nil {
			return cur.Switch
		}
	}
	return nil
}

// EnclosingLoopOrSwitch reports whether a BreakStmt rooted at s is legal:
// true iff an enclosing loop or switch exists.
func (s *Scope) EnclosingLoopOrSwitch() bool {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Loop != nil || cur.Switch != nil {
			return true
		}
	}
	return false
}

// IsGlobal reports whether s has no parent.
func (s *Scope) IsGlobal() bool {
	return s.Parent == nil
}
