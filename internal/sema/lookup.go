package sema

import (
	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/scope"
	"github.com/cwbudde/decafsema/internal/types"
)

// ResolveName walks s's parent chain, returning the first declaration
// whose table maps name, or nil if none does.
func ResolveName(s *scope.Scope, name string) ast.Declaration {
	return s.Resolve(name)
}

// ResolveMember looks up name among the members of the class or interface
// named by namedType, walking the extends chain for a class. Per the
// design notes (§9 of the specification), this intentionally never walks
// implemented interfaces — the source's TypeOf does not, and preserving
// that quirk keeps synthesized types source-compatible.
func ResolveMember(ctx *Context, name string, namedType *types.Named) ast.Declaration {
	decl := ctx.Global.Resolve(namedType.Name)
	switch d := decl.(type) {
	case *ast.ClassDecl:
		return resolveInClassChain(ctx, d, name)
	case *ast.InterfaceDecl:
		s := ctx.ScopeOf(d)
		if s == nil {
			return nil
		}
		if found, ok := s.Table.Lookup(name); ok {
			return found
		}
	}
	return nil
}

// resolveInClassChain searches class's own scope, then its ancestors',
// stopping at a cycle instead of looping forever.
func resolveInClassChain(ctx *Context, class *ast.ClassDecl, name string) ast.Declaration {
	visited := make(map[string]bool)
	for cur := class; cur != nil; {
		if visited[cur.Name.Name] {
			return nil
		}
		visited[cur.Name.Name] = true

		if s := ctx.ScopeOf(cur); s != nil {
			if found, ok := s.Table.Lookup(name); ok {
				return found
			}
		}
		if cur.Extends == nil {
			return nil
		}
		nextDecl := ctx.Global.Resolve(cur.Extends.Name)
		next, ok := nextDecl.(*ast.ClassDecl)
		if !ok {
			return nil
		}
		cur = next
	}
	return nil
}

// resolveUnqualified resolves a bare identifier used as a variable or
// function reference from within fromScope: first the ordinary lexical
// scope chain (locals, formals, the enclosing class's own members, then
// globals), and — only if that fails and fromScope sits inside a class —
// the enclosing class's ancestors, so inherited members are visible too.
func resolveUnqualified(ctx *Context, fromScope *scope.Scope, name string) ast.Declaration {
	if d := fromScope.Resolve(name); d != nil {
		return d
	}
	if class := fromScope.EnclosingClass(); class != nil {
		return resolveInClassChain(ctx, class, name)
	}
	return nil
}
