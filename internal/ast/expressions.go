package ast

import "github.com/cwbudde/slc/internal/lexer"

// Ident is a bare identifier reference: a local, a global, or a function
// name.
type Ident struct {
	exprBase
	Name string
}

func NewIdent(pos lexer.Position, name string) *Ident {
	return &Ident{exprBase: exprBase{pos: pos}, Name: name}
}

// Literal is an integer or boolean literal. BitWidth distinguishes the two
// since both are represented as an arbitrary-precision-ish bit pattern at
// the lexer/parser boundary per spec.md §4.7's Literal rule
// ("bitwidth 1 -> Bool, 32 -> Int").
type Literal struct {
	exprBase
	BitWidth int
	IntValue int32
	BoolValue bool
}

func NewIntLiteral(pos lexer.Position, v int32) *Literal {
	return &Literal{exprBase: exprBase{pos: pos}, BitWidth: 32, IntValue: v}
}

func NewBoolLiteral(pos lexer.Position, v bool) *Literal {
	return &Literal{exprBase: exprBase{pos: pos}, BitWidth: 1, BoolValue: v}
}

// SelfExpr is the `self` receiver expression, valid only inside a method or
// constructor body.
type SelfExpr struct {
	exprBase
}

func NewSelfExpr(pos lexer.Position) *SelfExpr {
	return &SelfExpr{exprBase: exprBase{pos: pos}}
}

// UnaryExpr is a prefix `-` or `!` applied to Expr.
type UnaryExpr struct {
	exprBase
	Op   string
	Expr Expression
}

func NewUnaryExpr(pos lexer.Position, op string, expr Expression) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{pos: pos}, Op: op, Expr: expr}
}

// BinaryExpr covers every binary operator: arithmetic, relational,
// short-circuit logical, and assignment (`=`). Which lowering rule applies
// is determined by Op in the emitter, per spec.md §4.7.
type BinaryExpr struct {
	exprBase
	Op       string
	Lhs, Rhs Expression
}

func NewBinaryExpr(pos lexer.Position, op string, lhs, rhs Expression) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{pos: pos}, Op: op, Lhs: lhs, Rhs: rhs}
}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	exprBase
	Cond, Then, Else Expression
}

func NewTernaryExpr(pos lexer.Position, cond, then, els Expression) *TernaryExpr {
	return &TernaryExpr{exprBase: exprBase{pos: pos}, Cond: cond, Then: then, Else: els}
}

// Arg is one named call argument: `name: value`.
type Arg struct {
	Name  string
	Value Expression
	Pos   lexer.Position
}

// CallExpr is a function call with named arguments, matched positionally
// per spec.md §4.7's Call rule (see DESIGN.md for the Open Question
// resolution).
type CallExpr struct {
	exprBase
	Callee Expression
	Args   []Arg
}

func NewCallExpr(pos lexer.Position, callee Expression, args []Arg) *CallExpr {
	return &CallExpr{exprBase: exprBase{pos: pos}, Callee: callee, Args: args}
}

// FieldAccessExpr is `obj.field`.
type FieldAccessExpr struct {
	exprBase
	Obj    Expression
	Member string
}

func NewFieldAccessExpr(pos lexer.Position, obj Expression, member string) *FieldAccessExpr {
	return &FieldAccessExpr{exprBase: exprBase{pos: pos}, Obj: obj, Member: member}
}

// MethodCallExpr is `obj.method(args...)`.
type MethodCallExpr struct {
	exprBase
	Obj    Expression
	Member string
	Args   []Arg
}

func NewMethodCallExpr(pos lexer.Position, obj Expression, member string, args []Arg) *MethodCallExpr {
	return &MethodCallExpr{exprBase: exprBase{pos: pos}, Obj: obj, Member: member, Args: args}
}
