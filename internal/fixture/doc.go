// Package fixture loads a Program AST from a YAML document, standing in
// for the lexer and parser this repository does not implement (the
// specification treats source text, tokenizing, and grammar as external
// collaborators specified only through contracts). Every fixture-built node
// carries a zero token.Position: source-location bookkeeping is likewise out
// of scope, and the zero value renders as "-" rather than a bogus location.
package fixture

import (
	"fmt"
	"io"

	yaml "github.com/goccy/go-yaml"

	"github.com/cwbudde/decafsema/internal/ast"
	"github.com/cwbudde/decafsema/internal/token"
	"github.com/cwbudde/decafsema/internal/types"
)

// fileDoc is the top-level shape: an ordered list of top-level
// declarations (classes, interfaces, functions, globals).
type fileDoc struct {
	Decls []declDoc `yaml:"decls"`
}

// declDoc is a tagged union over every declaration kind. Kind selects which
// of the remaining fields apply:
//
//	"var"       -> Name, Type
//	"fn"        -> Name, ReturnType, Formals ([]declDoc of kind "var"), Body
//	"class"     -> Name, Extends, Implements, Members ([]declDoc)
//	"interface" -> Name, Members ([]declDoc of kind "fn")
type declDoc struct {
	Kind       string    `yaml:"kind"`
	Name       string    `yaml:"name"`
	Type       *typeDoc  `yaml:"type,omitempty"`
	ReturnType *typeDoc  `yaml:"returnType,omitempty"`
	Formals    []declDoc `yaml:"formals,omitempty"`
	Body       *stmtDoc  `yaml:"body,omitempty"`
	Extends    string    `yaml:"extends,omitempty"`
	Implements []string  `yaml:"implements,omitempty"`
	Members    []declDoc `yaml:"members,omitempty"`
}

// typeDoc is a tagged union over every type variant: "int", "double",
// "bool", "string", "void", "named" (Name), "array" (Elem).
type typeDoc struct {
	Kind string   `yaml:"kind"`
	Name string   `yaml:"name,omitempty"`
	Elem *typeDoc `yaml:"elem,omitempty"`
}

// stmtDoc is a tagged union over every statement kind: "block", "if",
// "for", "while", "switch", "break", "return", "print", "expr".
type stmtDoc struct {
	Kind  string    `yaml:"kind"`
	Decls []declDoc `yaml:"decls,omitempty"`
	Stmts []stmtDoc `yaml:"stmts,omitempty"`
	Cond  *exprDoc  `yaml:"cond,omitempty"`
	Then  *stmtDoc  `yaml:"then,omitempty"`
	Else  *stmtDoc  `yaml:"else,omitempty"`
	Init  *exprDoc  `yaml:"init,omitempty"`
	Step  *exprDoc  `yaml:"step,omitempty"`
	Body  *stmtDoc  `yaml:"body,omitempty"`
	Scrut *exprDoc  `yaml:"scrut,omitempty"`
	Cases []caseDoc `yaml:"cases,omitempty"`
	Value *exprDoc  `yaml:"value,omitempty"`
	Args  []exprDoc `yaml:"args,omitempty"`
	Expr  *exprDoc  `yaml:"expr,omitempty"`
}

// caseDoc is one switch arm; Value nil means the default arm.
type caseDoc struct {
	Value *exprDoc  `yaml:"value,omitempty"`
	Stmts []stmtDoc `yaml:"stmts,omitempty"`
}

// exprDoc is a tagged union over every expression kind: "int", "double",
// "bool", "string", "null", "empty", "this", "readInteger", "readLine",
// "arrayAccess", "field", "call", "new", "newArray", "postfix", "arith",
// "rel", "eq", "logical", "assign".
type exprDoc struct {
	Kind string `yaml:"kind"`

	IntValue    *int     `yaml:"intValue,omitempty"`
	DoubleValue *float64 `yaml:"doubleValue,omitempty"`
	BoolValue   *bool    `yaml:"boolValue,omitempty"`
	StringValue *string  `yaml:"stringValue,omitempty"`

	Base  *exprDoc  `yaml:"base,omitempty"`
	Field string    `yaml:"field,omitempty"`
	Index *exprDoc  `yaml:"index,omitempty"`
	Func  string    `yaml:"func,omitempty"`
	Args  []exprDoc `yaml:"args,omitempty"`

	Class    string   `yaml:"class,omitempty"`
	ElemType *typeDoc `yaml:"elemType,omitempty"`
	Size     *exprDoc `yaml:"size,omitempty"`

	Op      string   `yaml:"op,omitempty"`
	Left    *exprDoc `yaml:"left,omitempty"`
	Right   *exprDoc `yaml:"right,omitempty"`
	Operand *exprDoc `yaml:"operand,omitempty"`
}

// Load parses a YAML fixture from r into a *ast.Program.
func Load(r io.Reader) (*ast.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fixture: read: %w", err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parse: %w", err)
	}

	decls := make([]ast.Declaration, 0, len(doc.Decls))
	for _, d := range doc.Decls {
		decl, err := buildDecl(d)
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return ast.NewProgram(decls), nil
}

func ident(name string) *ast.Identifier {
	return ast.NewIdentifier(token.Position{}, name)
}

func buildType(t *typeDoc) (types.Type, error) {
	if t == nil {
		return types.VoidType, nil
	}
	switch t.Kind {
	case "int":
		return types.IntType, nil
	case "double":
		return types.DoubleType, nil
	case "bool":
		return types.BoolType, nil
	case "string":
		return types.StringType, nil
	case "void":
		return types.VoidType, nil
	case "named":
		if t.Name == "" {
			return nil, fmt.Errorf("fixture: named type missing name")
		}
		return types.NewNamedType(t.Name), nil
	case "array":
		elem, err := buildType(t.Elem)
		if err != nil {
			return nil, err
		}
		return types.NewArrayType(elem), nil
	default:
		return nil, fmt.Errorf("fixture: unknown type kind %q", t.Kind)
	}
}

func buildDecl(d declDoc) (ast.Declaration, error) {
	switch d.Kind {
	case "var":
		t, err := buildType(d.Type)
		if err != nil {
			return nil, fmt.Errorf("fixture: var %q: %w", d.Name, err)
		}
		return ast.NewVarDecl(token.Position{}, ident(d.Name), t), nil
	case "fn":
		return buildFn(d)
	case "class":
		return buildClass(d)
	case "interface":
		return buildInterface(d)
	default:
		return nil, fmt.Errorf("fixture: unknown decl kind %q", d.Kind)
	}
}

func buildFn(d declDoc) (*ast.FnDecl, error) {
	returnType, err := buildType(d.ReturnType)
	if err != nil {
		return nil, fmt.Errorf("fixture: fn %q: %w", d.Name, err)
	}

	formals := make([]*ast.VarDecl, 0, len(d.Formals))
	for _, f := range d.Formals {
		decl, err := buildDecl(f)
		if err != nil {
			return nil, err
		}
		v, ok := decl.(*ast.VarDecl)
		if !ok {
			return nil, fmt.Errorf("fixture: fn %q: formal %q must be kind var", d.Name, f.Name)
		}
		formals = append(formals, v)
	}

	var body *ast.StmtBlock
	if d.Body != nil {
		built, err := buildStmt(*d.Body)
		if err != nil {
			return nil, err
		}
		block, ok := built.(*ast.StmtBlock)
		if !ok {
			return nil, fmt.Errorf("fixture: fn %q: body must be kind block", d.Name)
		}
		body = block
	}

	return ast.NewFnDecl(token.Position{}, ident(d.Name), returnType, formals, body), nil
}

func buildClass(d declDoc) (*ast.ClassDecl, error) {
	var extends *ast.Identifier
	if d.Extends != "" {
		extends = ident(d.Extends)
	}

	implements := make([]*ast.Identifier, 0, len(d.Implements))
	for _, name := range d.Implements {
		implements = append(implements, ident(name))
	}

	members := make([]ast.Member, 0, len(d.Members))
	for _, m := range d.Members {
		decl, err := buildDecl(m)
		if err != nil {
			return nil, err
		}
		members = append(members, decl.(ast.Member))
	}

	return ast.NewClassDecl(token.Position{}, ident(d.Name), extends, implements, members), nil
}

func buildInterface(d declDoc) (*ast.InterfaceDecl, error) {
	members := make([]*ast.FnDecl, 0, len(d.Members))
	for _, m := range d.Members {
		fn, err := buildFn(m)
		if err != nil {
			return nil, err
		}
		members = append(members, fn)
	}
	return ast.NewInterfaceDecl(token.Position{}, ident(d.Name), members), nil
}

func buildStmt(s stmtDoc) (ast.Statement, error) {
	switch s.Kind {
	case "block":
		decls := make([]*ast.VarDecl, 0, len(s.Decls))
		for _, d := range s.Decls {
			decl, err := buildDecl(d)
			if err != nil {
				return nil, err
			}
			v, ok := decl.(*ast.VarDecl)
			if !ok {
				return nil, fmt.Errorf("fixture: block: local declarations must be kind var")
			}
			decls = append(decls, v)
		}
		stmts, err := buildStmts(s.Stmts)
		if err != nil {
			return nil, err
		}
		return ast.NewStmtBlock(token.Position{}, decls, stmts), nil

	case "if":
		cond, err := buildExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		then, err := buildStmtPtr(s.Then, "if: then")
		if err != nil {
			return nil, err
		}
		els, err := buildOptionalStmtPtr(s.Else)
		if err != nil {
			return nil, err
		}
		return ast.NewIfStmt(token.Position{}, cond, then, els), nil

	case "for":
		init, err := buildOptionalExpr(s.Init)
		if err != nil {
			return nil, err
		}
		cond, err := buildExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		step, err := buildOptionalExpr(s.Step)
		if err != nil {
			return nil, err
		}
		body, err := buildStmtPtr(s.Body, "for: body")
		if err != nil {
			return nil, err
		}
		return ast.NewForStmt(token.Position{}, init, cond, step, body), nil

	case "while":
		cond, err := buildExpr(s.Cond)
		if err != nil {
			return nil, err
		}
		body, err := buildStmtPtr(s.Body, "while: body")
		if err != nil {
			return nil, err
		}
		return ast.NewWhileStmt(token.Position{}, cond, body), nil

	case "switch":
		scrut, err := buildExpr(s.Scrut)
		if err != nil {
			return nil, err
		}
		cases := make([]*ast.SwitchCase, 0, len(s.Cases))
		for _, c := range s.Cases {
			value, err := buildOptionalExpr(c.Value)
			if err != nil {
				return nil, err
			}
			stmts, err := buildStmts(c.Stmts)
			if err != nil {
				return nil, err
			}
			cases = append(cases, &ast.SwitchCase{Token: token.Position{}, Value: value, Stmts: stmts})
		}
		return ast.NewSwitchStmt(token.Position{}, scrut, cases), nil

	case "break":
		return ast.NewBreakStmt(token.Position{}), nil

	case "return":
		value, err := buildOptionalExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStmt(token.Position{}, value), nil

	case "print":
		args, err := buildExprs(s.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewPrintStmt(token.Position{}, args), nil

	case "expr":
		e, err := buildExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return ast.NewExprStmt(token.Position{}, e), nil

	default:
		return nil, fmt.Errorf("fixture: unknown stmt kind %q", s.Kind)
	}
}

func buildStmts(docs []stmtDoc) ([]ast.Statement, error) {
	stmts := make([]ast.Statement, 0, len(docs))
	for _, d := range docs {
		s, err := buildStmt(d)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func buildStmtPtr(s *stmtDoc, what string) (ast.Statement, error) {
	if s == nil {
		return nil, fmt.Errorf("fixture: %s is required", what)
	}
	return buildStmt(*s)
}

func buildOptionalStmtPtr(s *stmtDoc) (ast.Statement, error) {
	if s == nil {
		return nil, nil
	}
	return buildStmt(*s)
}

func buildExpr(e *exprDoc) (ast.Expression, error) {
	if e == nil {
		return nil, fmt.Errorf("fixture: expression is required")
	}

	switch e.Kind {
	case "int":
		v := 0
		if e.IntValue != nil {
			v = *e.IntValue
		}
		return ast.NewIntConstant(token.Position{}, v), nil

	case "double":
		v := 0.0
		if e.DoubleValue != nil {
			v = *e.DoubleValue
		}
		return ast.NewDoubleConstant(token.Position{}, v), nil

	case "bool":
		v := false
		if e.BoolValue != nil {
			v = *e.BoolValue
		}
		return ast.NewBoolConstant(token.Position{}, v), nil

	case "string":
		v := ""
		if e.StringValue != nil {
			v = *e.StringValue
		}
		return ast.NewStringConstant(token.Position{}, v), nil

	case "null":
		return ast.NewNullConstant(token.Position{}), nil

	case "empty":
		return ast.NewEmptyExpr(token.Position{}), nil

	case "this":
		return ast.NewThis(token.Position{}), nil

	case "readInteger":
		return ast.NewReadIntegerExpr(token.Position{}), nil

	case "readLine":
		return ast.NewReadLineExpr(token.Position{}), nil

	case "arrayAccess":
		base, err := buildExpr(e.Base)
		if err != nil {
			return nil, err
		}
		index, err := buildExpr(e.Index)
		if err != nil {
			return nil, err
		}
		return ast.NewArrayAccess(token.Position{}, base, index), nil

	case "field":
		base, err := buildOptionalExpr(e.Base)
		if err != nil {
			return nil, err
		}
		return ast.NewFieldAccess(token.Position{}, base, ident(e.Field)), nil

	case "call":
		base, err := buildOptionalExpr(e.Base)
		if err != nil {
			return nil, err
		}
		args, err := buildExprs(e.Args)
		if err != nil {
			return nil, err
		}
		return ast.NewCall(token.Position{}, base, ident(e.Func), args), nil

	case "new":
		return ast.NewNewExpr(token.Position{}, ident(e.Class)), nil

	case "newArray":
		size, err := buildExpr(e.Size)
		if err != nil {
			return nil, err
		}
		elemType, err := buildType(e.ElemType)
		if err != nil {
			return nil, err
		}
		return ast.NewNewArrayExpr(token.Position{}, size, elemType), nil

	case "postfix":
		operand, err := buildExpr(e.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewPostfixExpr(token.Position{}, e.Op, operand), nil

	case "arith":
		left, err := buildOptionalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewArithmeticExpr(token.Position{}, e.Op, left, right), nil

	case "rel":
		left, err := buildExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewRelationalExpr(token.Position{}, e.Op, left, right), nil

	case "eq":
		left, err := buildExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewEqualityExpr(token.Position{}, e.Op, left, right), nil

	case "logical":
		left, err := buildOptionalExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewLogicalExpr(token.Position{}, e.Op, left, right), nil

	case "assign":
		left, err := buildExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := buildExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewAssignExpr(token.Position{}, left, right), nil

	default:
		return nil, fmt.Errorf("fixture: unknown expr kind %q", e.Kind)
	}
}

func buildOptionalExpr(e *exprDoc) (ast.Expression, error) {
	if e == nil {
		return nil, nil
	}
	return buildExpr(e)
}

func buildExprs(docs []exprDoc) ([]ast.Expression, error) {
	exprs := make([]ast.Expression, 0, len(docs))
	for i := range docs {
		e, err := buildExpr(&docs[i])
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}
