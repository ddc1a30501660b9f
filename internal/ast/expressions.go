package ast

import (
	"fmt"

	"github.com/cwbudde/decafsema/internal/token"
	"github.com/cwbudde/decafsema/internal/types"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

type IntConstant struct {
	Token token.Position
	Value int
}

func NewIntConstant(pos token.Position, v int) *IntConstant { return &IntConstant{Token: pos, Value: v} }

func (e *IntConstant) expressionNode()      {}
func (e *IntConstant) TokenLiteral() string { return fmt.Sprintf("%d", e.Value) }
func (e *IntConstant) Pos() token.Position  { return e.Token }
func (e *IntConstant) String() string       { return fmt.Sprintf("%d", e.Value) }

type DoubleConstant struct {
	Token token.Position
	Value float64
}

func NewDoubleConstant(pos token.Position, v float64) *DoubleConstant {
	return &DoubleConstant{Token: pos, Value: v}
}

func (e *DoubleConstant) expressionNode()      {}
func (e *DoubleConstant) TokenLiteral() string { return fmt.Sprintf("%g", e.Value) }
func (e *DoubleConstant) Pos() token.Position  { return e.Token }
func (e *DoubleConstant) String() string       { return fmt.Sprintf("%g", e.Value) }

type BoolConstant struct {
	Token token.Position
	Value bool
}

func NewBoolConstant(pos token.Position, v bool) *BoolConstant { return &BoolConstant{Token: pos, Value: v} }

func (e *BoolConstant) expressionNode()      {}
func (e *BoolConstant) TokenLiteral() string { return fmt.Sprintf("%t", e.Value) }
func (e *BoolConstant) Pos() token.Position  { return e.Token }
func (e *BoolConstant) String() string       { return fmt.Sprintf("%t", e.Value) }

type StringConstant struct {
	Token token.Position
	Value string
}

func NewStringConstant(pos token.Position, v string) *StringConstant {
	return &StringConstant{Token: pos, Value: v}
}

func (e *StringConstant) expressionNode()      {}
func (e *StringConstant) TokenLiteral() string { return e.Value }
func (e *StringConstant) Pos() token.Position  { return e.Token }
func (e *StringConstant) String() string       { return fmt.Sprintf("%q", e.Value) }

// NullConstant is the literal "null".
type NullConstant struct {
	Token token.Position
}

func NewNullConstant(pos token.Position) *NullConstant { return &NullConstant{Token: pos} }

func (e *NullConstant) expressionNode()      {}
func (e *NullConstant) TokenLiteral() string { return "null" }
func (e *NullConstant) Pos() token.Position  { return e.Token }
func (e *NullConstant) String() string       { return "null" }

// EmptyExpr stands in for a syntactically omitted expression. An omitted
// init or step in "for (;;)" is not one of these: ForStmt leaves those nil.
type EmptyExpr struct {
	Token token.Position
}

func NewEmptyExpr(pos token.Position) *EmptyExpr { return &EmptyExpr{Token: pos} }

func (e *EmptyExpr) expressionNode()      {}
func (e *EmptyExpr) TokenLiteral() string { return "" }
func (e *EmptyExpr) Pos() token.Position  { return e.Token }
func (e *EmptyExpr) String() string       { return "" }

// This refers to the receiver of the enclosing method; legal only inside a
// class's own scope chain.
type This struct {
	Token token.Position
}

func NewThis(pos token.Position) *This { return &This{Token: pos} }

func (e *This) expressionNode()      {}
func (e *This) TokenLiteral() string { return "this" }
func (e *This) Pos() token.Position  { return e.Token }
func (e *This) String() string       { return "this" }

// ---------------------------------------------------------------------------
// Access and invocation
// ---------------------------------------------------------------------------

// ArrayAccess is "Base[Index]".
type ArrayAccess struct {
	Token token.Position
	Base  Expression
	Index Expression
}

func NewArrayAccess(pos token.Position, base, index Expression) *ArrayAccess {
	return &ArrayAccess{Token: pos, Base: base, Index: index}
}

func (e *ArrayAccess) expressionNode()      {}
func (e *ArrayAccess) TokenLiteral() string { return "[" }
func (e *ArrayAccess) Pos() token.Position  { return e.Token }
func (e *ArrayAccess) String() string {
	return fmt.Sprintf("%s[%s]", e.Base.String(), e.Index.String())
}

// FieldAccess is either "Base.Field" or, when Base is nil, a bare
// identifier use resolved by name in the enclosing scope chain.
type FieldAccess struct {
	Token token.Position
	Base  Expression
	Field *Identifier
}

func NewFieldAccess(pos token.Position, base Expression, field *Identifier) *FieldAccess {
	return &FieldAccess{Token: pos, Base: base, Field: field}
}

func (e *FieldAccess) expressionNode()      {}
func (e *FieldAccess) TokenLiteral() string { return e.Field.Name }
func (e *FieldAccess) Pos() token.Position  { return e.Token }
func (e *FieldAccess) String() string {
	if e.Base == nil {
		return e.Field.String()
	}
	return fmt.Sprintf("%s.%s", e.Base.String(), e.Field.String())
}

// Call is either "Base.Func(Args)" or, when Base is nil, a bare function
// call resolved by name.
type Call struct {
	Token token.Position
	Base  Expression
	Func  *Identifier
	Args  []Expression
}

func NewCall(pos token.Position, base Expression, fn *Identifier, args []Expression) *Call {
	return &Call{Token: pos, Base: base, Func: fn, Args: args}
}

func (e *Call) expressionNode()      {}
func (e *Call) TokenLiteral() string { return e.Func.Name }
func (e *Call) Pos() token.Position  { return e.Token }
func (e *Call) String() string {
	prefix := ""
	if e.Base != nil {
		prefix = e.Base.String() + "."
	}
	return fmt.Sprintf("%s%s(%s)", prefix, e.Func.String(), joinStrings(e.Args, ", "))
}

// ---------------------------------------------------------------------------
// Allocation
// ---------------------------------------------------------------------------

// NewExpr is "new T" where T must name a class.
type NewExpr struct {
	Token token.Position
	Class *Identifier
}

func NewNewExpr(pos token.Position, class *Identifier) *NewExpr {
	return &NewExpr{Token: pos, Class: class}
}

func (e *NewExpr) expressionNode()      {}
func (e *NewExpr) TokenLiteral() string { return "new" }
func (e *NewExpr) Pos() token.Position  { return e.Token }
func (e *NewExpr) String() string       { return fmt.Sprintf("new %s", e.Class.String()) }

// NewArrayExpr is "new ElemType[Size]".
type NewArrayExpr struct {
	Token    token.Position
	Size     Expression
	ElemType types.Type
}

func NewNewArrayExpr(pos token.Position, size Expression, elemType types.Type) *NewArrayExpr {
	return &NewArrayExpr{Token: pos, Size: size, ElemType: elemType}
}

func (e *NewArrayExpr) expressionNode()      {}
func (e *NewArrayExpr) TokenLiteral() string { return "new" }
func (e *NewArrayExpr) Pos() token.Position  { return e.Token }
func (e *NewArrayExpr) String() string {
	return fmt.Sprintf("new %s[%s]", e.ElemType.String(), e.Size.String())
}

// ---------------------------------------------------------------------------
// Built-in I/O reads
// ---------------------------------------------------------------------------

type ReadIntegerExpr struct {
	Token token.Position
}

func NewReadIntegerExpr(pos token.Position) *ReadIntegerExpr { return &ReadIntegerExpr{Token: pos} }

func (e *ReadIntegerExpr) expressionNode()      {}
func (e *ReadIntegerExpr) TokenLiteral() string { return "ReadInteger" }
func (e *ReadIntegerExpr) Pos() token.Position  { return e.Token }
func (e *ReadIntegerExpr) String() string       { return "ReadInteger()" }

type ReadLineExpr struct {
	Token token.Position
}

func NewReadLineExpr(pos token.Position) *ReadLineExpr { return &ReadLineExpr{Token: pos} }

func (e *ReadLineExpr) expressionNode()      {}
func (e *ReadLineExpr) TokenLiteral() string { return "ReadLine" }
func (e *ReadLineExpr) Pos() token.Position  { return e.Token }
func (e *ReadLineExpr) String() string       { return "ReadLine()" }

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

// PostfixExpr is "Operand++" or "Operand--".
type PostfixExpr struct {
	Token   token.Position
	Op      string
	Operand Expression
}

func NewPostfixExpr(pos token.Position, op string, operand Expression) *PostfixExpr {
	return &PostfixExpr{Token: pos, Op: op, Operand: operand}
}

func (e *PostfixExpr) expressionNode()      {}
func (e *PostfixExpr) TokenLiteral() string { return e.Op }
func (e *PostfixExpr) Pos() token.Position  { return e.Token }
func (e *PostfixExpr) String() string       { return e.Operand.String() + e.Op }

// ArithmeticExpr covers +, -, *, /, % and unary minus (Left is nil for the
// unary form, and Right holds the sole operand).
type ArithmeticExpr struct {
	Token token.Position
	Op    string
	Left  Expression
	Right Expression
}

func NewArithmeticExpr(pos token.Position, op string, left, right Expression) *ArithmeticExpr {
	return &ArithmeticExpr{Token: pos, Op: op, Left: left, Right: right}
}

func (e *ArithmeticExpr) expressionNode()      {}
func (e *ArithmeticExpr) TokenLiteral() string { return e.Op }
func (e *ArithmeticExpr) Pos() token.Position  { return e.Token }
func (e *ArithmeticExpr) IsUnary() bool        { return e.Left == nil }
func (e *ArithmeticExpr) String() string {
	if e.Left == nil {
		return fmt.Sprintf("(%s%s)", e.Op, e.Right.String())
	}
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

// RelationalExpr covers <, <=, >, >=. Always binary, always numeric.
type RelationalExpr struct {
	Token token.Position
	Op    string
	Left  Expression
	Right Expression
}

func NewRelationalExpr(pos token.Position, op string, left, right Expression) *RelationalExpr {
	return &RelationalExpr{Token: pos, Op: op, Left: left, Right: right}
}

func (e *RelationalExpr) expressionNode()      {}
func (e *RelationalExpr) TokenLiteral() string { return e.Op }
func (e *RelationalExpr) Pos() token.Position  { return e.Token }
func (e *RelationalExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

// EqualityExpr covers == and !=.
type EqualityExpr struct {
	Token token.Position
	Op    string
	Left  Expression
	Right Expression
}

func NewEqualityExpr(pos token.Position, op string, left, right Expression) *EqualityExpr {
	return &EqualityExpr{Token: pos, Op: op, Left: left, Right: right}
}

func (e *EqualityExpr) expressionNode()      {}
func (e *EqualityExpr) TokenLiteral() string { return e.Op }
func (e *EqualityExpr) Pos() token.Position  { return e.Token }
func (e *EqualityExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

// LogicalExpr covers && and || (binary) and ! (unary, Left nil, operand in
// Right).
type LogicalExpr struct {
	Token token.Position
	Op    string
	Left  Expression
	Right Expression
}

func NewLogicalExpr(pos token.Position, op string, left, right Expression) *LogicalExpr {
	return &LogicalExpr{Token: pos, Op: op, Left: left, Right: right}
}

func (e *LogicalExpr) expressionNode()      {}
func (e *LogicalExpr) TokenLiteral() string { return e.Op }
func (e *LogicalExpr) Pos() token.Position  { return e.Token }
func (e *LogicalExpr) IsUnary() bool        { return e.Left == nil }
func (e *LogicalExpr) String() string {
	if e.Left == nil {
		return fmt.Sprintf("(%s%s)", e.Op, e.Right.String())
	}
	return fmt.Sprintf("(%s %s %s)", e.Left.String(), e.Op, e.Right.String())
}

// AssignExpr is "Left = Right".
type AssignExpr struct {
	Token token.Position
	Left  Expression
	Right Expression
}

func NewAssignExpr(pos token.Position, left, right Expression) *AssignExpr {
	return &AssignExpr{Token: pos, Left: left, Right: right}
}

func (e *AssignExpr) expressionNode()      {}
func (e *AssignExpr) TokenLiteral() string { return "=" }
func (e *AssignExpr) Pos() token.Position  { return e.Token }
func (e *AssignExpr) String() string {
	return fmt.Sprintf("%s = %s", e.Left.String(), e.Right.String())
}
