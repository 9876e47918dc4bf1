package diag

import (
	"fmt"

	"github.com/cwbudde/slc/internal/lexer"
)

// Each method below corresponds to exactly one row of the error taxonomy in
// SPEC_FULL.md §7. The fixed argument list per method is the Go expression
// of the C++ original's `DIAG(kind, params, values)` macro table
// (original_source/src/diag/diag.hpp): every call site's arguments are
// checked by the Go compiler instead of by a runtime format-string lookup.

func (b *Bag) UnknownChar(pos lexer.Position, ch rune) {
	b.report(UnknownChar, pos, fmt.Sprintf("unknown character %q", ch))
}

func (b *Bag) InvalidInt(pos lexer.Position, lexeme string) {
	b.report(InvalidInt, pos, fmt.Sprintf("invalid integer literal %q", lexeme))
}

func (b *Bag) OverflowDetected(pos lexer.Position, lexeme string, truncated int32) {
	b.report(OverflowDetected, pos, fmt.Sprintf("integer literal %q overflows 32 bits, truncated to %d", lexeme, truncated))
}

func (b *Bag) ExpectedButFound(pos lexer.Position, expected, found string) {
	b.report(ExpectedButFound, pos, fmt.Sprintf("expected %s, found %s", expected, found))
}

func (b *Bag) UnexpectedToken(pos lexer.Position, found string) {
	b.report(UnexpectedToken, pos, fmt.Sprintf("unexpected token %s", found))
}

func (b *Bag) FuncInNestedScope(pos lexer.Position, name string) {
	b.report(Funception, pos, fmt.Sprintf("function %q cannot be declared inside another function", name))
}

func (b *Bag) DuplicateType(pos lexer.Position, name string) {
	b.report(DuplicateType, pos, fmt.Sprintf("type %q is already declared", name))
}

func (b *Bag) DuplicateField(pos lexer.Position, class, field string) {
	b.report(DuplicateField, pos, fmt.Sprintf("field %q is already declared on class %q", field, class))
}

func (b *Bag) FuncAlreadyDefined(pos lexer.Position, name string) {
	b.report(FuncAlreadyDefined, pos, fmt.Sprintf("function %q is already defined", name))
}

func (b *Bag) FuncNamedAfterType(pos lexer.Position, name string) {
	b.report(FuncNamedAfterType, pos, fmt.Sprintf("function %q has the same name as a type", name))
}

func (b *Bag) InvalidParamType(pos lexer.Position, param, typ string) {
	b.report(InvalidParamType, pos, fmt.Sprintf("parameter %q cannot have type %s", param, typ))
}

func (b *Bag) InvalidVarType(pos lexer.Position, name, typ string) {
	b.report(InvalidVarType, pos, fmt.Sprintf("variable %q cannot have type %s", name, typ))
}

func (b *Bag) MismatchingVarTypes(pos lexer.Position, name string, declared, init string) {
	b.report(MismatchingVarTypes, pos, fmt.Sprintf("variable %q declared as %s but initialized with %s", name, declared, init))
}

func (b *Bag) VarAlreadyDefined(pos lexer.Position, name string) {
	b.report(VarAlreadyDefined, pos, fmt.Sprintf("%q is already defined in this scope", name))
}

func (b *Bag) MissingReturn(pos lexer.Position, function string) {
	b.report(MissingReturn, pos, fmt.Sprintf("function %q does not return a value on all paths", function))
}

func (b *Bag) RetvalMismatchesRetType(pos lexer.Position, got, want string) {
	b.report(RetvalMismatchesRetType, pos, fmt.Sprintf("return value has type %s, expected %s", got, want))
}

func (b *Bag) CantReturnVoidValue(pos lexer.Position) {
	b.report(CantReturnVoidValue, pos, "cannot return a value of type Void")
}

func (b *Bag) UnknownIdent(pos lexer.Position, name string) {
	b.report(UnknownIdent, pos, fmt.Sprintf("unknown identifier %q", name))
}

func (b *Bag) NotAFunction(pos lexer.Position, name string) {
	b.report(NotAFunction, pos, fmt.Sprintf("%q is not a function", name))
}

func (b *Bag) MismatchingArgCount(pos lexer.Position, name string, want, got int) {
	b.report(MismatchingArgCount, pos, fmt.Sprintf("%q expects %d argument(s), got %d", name, want, got))
}

func (b *Bag) CannotConvert(pos lexer.Position, from, to string) {
	b.report(CannotConvert, pos, fmt.Sprintf("cannot convert %s to %s", from, to))
}

func (b *Bag) LhsNotAssignable(pos lexer.Position) {
	b.report(LhsNotAssignable, pos, "left-hand side of assignment is not assignable")
}

func (b *Bag) InvalidUnary(pos lexer.Position, op, typ string) {
	b.report(InvalidUnary, pos, fmt.Sprintf("unary operator %q not defined for type %s", op, typ))
}

func (b *Bag) InvalidBinary(pos lexer.Position, op, lhs, rhs string) {
	b.report(InvalidBinary, pos, fmt.Sprintf("binary operator %q not defined for %s and %s", op, lhs, rhs))
}

func (b *Bag) NotABinaryOp(pos lexer.Position, op string) {
	b.report(NotABinaryOp, pos, fmt.Sprintf("%q is not a binary operator", op))
}

func (b *Bag) TernaryTypeMismatch(pos lexer.Position, then, els string) {
	b.report(TernaryTypeMismatch, pos, fmt.Sprintf("ternary arms have mismatching types %s and %s", then, els))
}

func (b *Bag) TopLevelCtrlFlow(pos lexer.Position) {
	b.report(TopLevelCtrlFlow, pos, "control flow statement cannot appear at the top level")
}

func (b *Bag) FuncInFunc(pos lexer.Position, name string) {
	b.report(FuncInFunc, pos, fmt.Sprintf("nested function %q is not allowed", name))
}

func (b *Bag) InvalidIntWidth(pos lexer.Position, width int) {
	b.report(InvalidIntWidth, pos, fmt.Sprintf("integer literal has unsupported bit width %d", width))
}
