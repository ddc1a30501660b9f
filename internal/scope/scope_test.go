package scope

import (
	"testing"

	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/token"
	"github.com/cwbudde/decafsema/internal/types"
)

func varDecl(name string) *ast.VarDecl {
	return ast.NewVarDecl(token.Position{}, ast.NewIdentifier(token.Position{}, name), types.IntType)
}

func TestTableInsertRejectsDuplicate(t *testing.T) {
	tbl := NewTable()
	first := varDecl("x")
	if _, ok := tbl.Insert(first); !ok {
		t.Fatal("first insert should succeed")
	}

	second := varDecl("x")
	prior, ok := tbl.Insert(second)
	if ok {
		t.Fatal("second insert of the same name should fail")
	}
	if prior != first {
		t.Error("Insert should return the prior declaration on conflict")
	}
}

func TestTableNamesPreserveInsertionOrder(t *testing.T) {
	tbl := NewTable()
	for _, name := range []string{"c", "a", "b"} {
		tbl.Insert(varDecl(name))
	}
	got := tbl.Names()
	want := []string{"c", "a", "b"}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

func TestScopeResolveWalksParentChain(t *testing.T) {
	global := New(nil)
	global.Insert(varDecl("g"))

	child := New(global)
	child.Insert(varDecl("c"))

	if child.Resolve("g") == nil {
		t.Error("child should resolve a name declared in its parent")
	}
	if global.Resolve("c") != nil {
		t.Error("a parent should not resolve a name declared only in its child")
	}
	if child.Resolve("missing") != nil {
		t.Error("resolving an undeclared name should return nil")
	}
}

func TestEnclosingLoopOrSwitch(t *testing.T) {
	global := New(nil)
	if global.EnclosingLoopOrSwitch() {
		t.Error("the global scope has no enclosing loop or switch")
	}

	loopScope := New(global)
	loopScope.Loop = &ast.WhileStmt{}
	inner := New(loopScope)
	if !inner.EnclosingLoopOrSwitch() {
		t.Error("a scope nested inside a loop scope should see it")
	}
}

func TestEnclosingClassAndFn(t *testing.T) {
	global := New(nil)
	class := New(global)
	class.Class = &ast.ClassDecl{Name: ast.NewIdentifier(token.Position{}, "Shape")}
	method := New(class)
	method.Fn = &ast.FnDecl{Name: ast.NewIdentifier(token.Position{}, "area")}
	body := New(method)

	if got := body.EnclosingClass(); got == nil || got.Name.Name != "Shape" {
		t.Error("a method body should see its enclosing class")
	}
	if got := body.EnclosingFn(); got == nil || got.Name.Name != "area" {
		t.Error("a method body should see its enclosing function")
	}
	if global.EnclosingClass() != nil {
		t.Error("the global scope has no enclosing class")
	}
}

func TestIsGlobal(t *testing.T) {
	global := New(nil)
	if !global.IsGlobal() {
		t.Error("a scope with no parent should report IsGlobal() = true")
	}
	if New(global).IsGlobal() {
		t.Error("a scope with a parent should report IsGlobal() = false")
	}
}
