package emit

import (
	"testing"

	"github.com/cwbudde/slc/internal/backend/lir"
	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/lexer"
	"github.com/cwbudde/slc/internal/parser"
	"github.com/cwbudde/slc/internal/semantic/passes"
	"github.com/cwbudde/slc/internal/types"
)

// build runs the full pipeline (lex, parse, resolve, emit) over src and
// returns the diagnostics bag and the lowered module.
func build(t *testing.T, src string) (*diag.Bag, *lir.Module) {
	t.Helper()
	diags := diag.NewBag()
	l := lexer.New("<test>", src, lexer.WithDiagnostics(diags))
	p := parser.New(l, diags)
	decls := p.ParseProgram()

	ctx := passes.NewPassContext(types.NewInterner(), diags)
	passes.Run(ctx, decls)

	mod := EmitProgram(ctx, decls, "test")
	return diags, mod
}

// E1: func f() -> Void {} -> zero diagnostics; one function, one entry
// block ending in a void return.
func TestE1_EmptyVoidFunction(t *testing.T) {
	diags, mod := build(t, `func f() -> Void {}`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn, ok := mod.FindFunction("f")
	if !ok {
		t.Fatalf("function f not found")
	}
	if len(fn.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(fn.Blocks))
	}
	if _, ok := fn.Blocks[0].Term.(lir.RetVoid); !ok {
		t.Fatalf("expected ret-void terminator, got %T", fn.Blocks[0].Term)
	}
}

// E2: func f(x: Int) -> Int { return x + 1; } -> zero diagnostics; an add
// of the parameter and constant 1, followed by a return.
func TestE2_AddAndReturn(t *testing.T) {
	diags, mod := build(t, `func f(x: Int) -> Int { return x + 1; }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn, ok := mod.FindFunction("f")
	if !ok {
		t.Fatalf("function f not found")
	}
	entry := fn.Entry()
	var sawAdd bool
	for _, in := range entry.Instrs {
		if bo, ok := in.(*lir.BinOp); ok && bo.Op == lir.OpAdd {
			sawAdd = true
		}
	}
	if !sawAdd {
		t.Fatalf("expected an add instruction in entry block, got %v", entry.Instrs)
	}
	if _, ok := entry.Term.(*lir.Ret); !ok {
		t.Fatalf("expected ret terminator, got %T", entry.Term)
	}
}

// E3: if/else where the then-arm returns a constant and the fall-through
// returns the parameter.
func TestE3_IfThenReturnsFallthroughReturns(t *testing.T) {
	diags, mod := build(t, `func f(x: Int) -> Int { if (x % 2 == 0) return 1337; return x; }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn, ok := mod.FindFunction("f")
	if !ok {
		t.Fatalf("function f not found")
	}
	var thenRet, fallthroughRet bool
	for _, b := range fn.Blocks {
		ret, ok := b.Term.(*lir.Ret)
		if !ok {
			continue
		}
		if ci, ok := ret.Val.(*lir.ConstInt); ok && ci.Val == 1337 {
			thenRet = true
		} else if _, ok := ret.Val.(*lir.Load); ok {
			fallthroughRet = true
		}
	}
	if !thenRet {
		t.Fatalf("expected the then-arm to return constant 1337")
	}
	if !fallthroughRet {
		t.Fatalf("expected the fall-through path to return a loaded value")
	}
}

// E4: a let-bound local is reassigned, and the reassignment is legal.
func TestE4_LetLocalReassignAndDivide(t *testing.T) {
	diags, mod := build(t, `func f(x: Int) -> Int { let y: Int = x * 2; y = y / x; return y; }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn, ok := mod.FindFunction("f")
	if !ok {
		t.Fatalf("function f not found")
	}
	entry := fn.Entry()
	var allocas, sdivs int
	for _, in := range entry.Instrs {
		switch v := in.(type) {
		case *lir.Alloca:
			allocas++
		case *lir.BinOp:
			if v.Op == lir.OpSDiv {
				sdivs++
			}
		}
	}
	if allocas != 2 {
		t.Fatalf("expected 2 stack slots (x, y), got %d", allocas)
	}
	if sdivs != 1 {
		t.Fatalf("expected 1 sdiv instruction, got %d", sdivs)
	}
}

// E5: a Void-typed parameter is rejected.
func TestE5_VoidParamRejected(t *testing.T) {
	diags, _ := build(t, `func f(x: Void) -> Void { return x; }`)
	if got := diags.CountOf(diag.InvalidParamType); got != 1 {
		t.Fatalf("expected exactly one InvalidParamType, got %d: %v", got, diags.All())
	}
}

// E6: returning the value of a Void-returning call is always illegal, even
// from a Void-returning function.
func TestE6_CantReturnVoidValue(t *testing.T) {
	diags, _ := build(t, `func f() -> Void { return f(); }`)
	if got := diags.CountOf(diag.CantReturnVoidValue); got != 1 {
		t.Fatalf("expected exactly one CantReturnVoidValue, got %d: %v", got, diags.All())
	}
	if diags.ErrorCount() != 1 {
		t.Fatalf("expected exactly one diagnostic overall, got %d: %v", diags.ErrorCount(), diags.All())
	}
}

// E7: a control-flow statement at the top level is rejected, and nothing
// else about it (e.g. the unresolved x) is ever reported.
func TestE7_TopLevelCtrlFlow(t *testing.T) {
	diags, _ := build(t, `if (x == 1) {;}`)
	if got := diags.CountOf(diag.TopLevelCtrlFlow); got != 1 {
		t.Fatalf("expected exactly one TopLevelCtrlFlow, got %d: %v", got, diags.All())
	}
	if diags.ErrorCount() != 1 {
		t.Fatalf("expected exactly one diagnostic overall, got %d: %v", diags.ErrorCount(), diags.All())
	}
}

// E8: an over-wide integer literal truncates with a warning, not an error.
func TestE8_OverflowDetected(t *testing.T) {
	diags, _ := build(t, `func f() -> Int { return 999999999999999999999999999999999; }`)
	if got := diags.CountOf(diag.OverflowDetected); got != 1 {
		t.Fatalf("expected exactly one OverflowDetected, got %d: %v", got, diags.All())
	}
	if diags.ErrorCount() != 0 {
		t.Fatalf("overflow is a warning, expected zero errors, got %d: %v", diags.ErrorCount(), diags.All())
	}
}

// MissingReturn: a non-void function that can fall off the end is reported
// and the block is closed with unreachable instead of a bogus return.
func TestMissingReturn(t *testing.T) {
	diags, mod := build(t, `func f() -> Int { let x: Int = 1; }`)
	if got := diags.CountOf(diag.MissingReturn); got != 1 {
		t.Fatalf("expected exactly one MissingReturn, got %d: %v", got, diags.All())
	}
	fn, _ := mod.FindFunction("f")
	if _, ok := fn.Entry().Term.(lir.Unreachable); !ok {
		t.Fatalf("expected unreachable terminator, got %T", fn.Entry().Term)
	}
}

// Classes: field access/assignment and method calls lower to
// getfieldptr-based addressing rather than any direct struct access.
func TestClassFieldAndMethod(t *testing.T) {
	src := `
class Counter {
	var n: Int;
	init(start: Int) {
		self.n = start;
	}
	func bump() -> Int {
		self.n = self.n + 1;
		return self.n;
	}
}
func f() -> Int {
	let c: Counter = Counter(start: 0);
	return c.bump();
}
`
	diags, mod := build(t, src)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	bump, ok := mod.FindFunction("Counter.bump")
	if !ok {
		t.Fatalf("expected a backend function named Counter.bump")
	}
	var sawFieldPtr bool
	for _, b := range bump.Blocks {
		for _, in := range b.Instrs {
			if _, ok := in.(*lir.GetFieldPtr); ok {
				sawFieldPtr = true
			}
		}
	}
	if !sawFieldPtr {
		t.Fatalf("expected field access to lower through getfieldptr")
	}
}
