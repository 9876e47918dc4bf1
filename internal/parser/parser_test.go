package parser

import (
	"testing"

	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/lexer"
)

func parse(t *testing.T, src string) ([]ast.Decl, *diag.Bag) {
	t.Helper()
	diags := diag.NewBag()
	l := lexer.New("<test>", src, lexer.WithDiagnostics(diags))
	p := New(l, diags)
	return p.ParseProgram(), diags
}

func TestParseFreeFunction(t *testing.T) {
	decls, diags := parse(t, `func add(a: Int, b: Int) -> Int { return a + b; }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	if len(decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(decls))
	}
	fn, ok := decls[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", decls[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Stmts))
	}
	ret, ok := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected *ast.ReturnStmt, got %T", fn.Body.Stmts[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected a + binary expression, got %+v", ret.Value)
	}
}

func TestParseExternalFunction(t *testing.T) {
	decls, diags := parse(t, `func puts(s: Int) -> Void external(cputs);`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	ext, ok := decls[0].(*ast.ExtFunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.ExtFunctionDecl, got %T", decls[0])
	}
	if ext.ExternalName != "cputs" {
		t.Fatalf("expected external name cputs, got %q", ext.ExternalName)
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	// a = b = 1 should parse as a = (b = 1), not (a = b) = 1.
	decls, diags := parse(t, `func f(a: Int, b: Int) -> Void { a = b = 1; }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn := decls[0].(*ast.FunctionDecl)
	stmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	outer, ok := stmt.Expr.(*ast.BinaryExpr)
	if !ok || outer.Op != "=" {
		t.Fatalf("expected outer assignment, got %+v", stmt.Expr)
	}
	if _, ok := outer.Lhs.(*ast.Ident); !ok {
		t.Fatalf("expected outer lhs to be a bare ident, got %+v", outer.Lhs)
	}
	inner, ok := outer.Rhs.(*ast.BinaryExpr)
	if !ok || inner.Op != "=" {
		t.Fatalf("expected the rhs to itself be an assignment, got %+v", outer.Rhs)
	}
}

func TestTernaryParsesCondThenElse(t *testing.T) {
	decls, diags := parse(t, `func f(a: Bool) -> Int { return a ? 1 : 2; }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn := decls[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	tern, ok := ret.Value.(*ast.TernaryExpr)
	if !ok {
		t.Fatalf("expected *ast.TernaryExpr, got %T", ret.Value)
	}
	if _, ok := tern.Cond.(*ast.Ident); !ok {
		t.Fatalf("expected cond to be an ident, got %+v", tern.Cond)
	}
}

func TestMethodCallAndFieldAccess(t *testing.T) {
	decls, diags := parse(t, `func f(c: Counter) -> Int { return c.n + c.bump(); }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn := decls[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	bin := ret.Value.(*ast.BinaryExpr)

	if _, ok := bin.Lhs.(*ast.FieldAccessExpr); !ok {
		t.Fatalf("expected lhs to be a field access, got %T", bin.Lhs)
	}
	if _, ok := bin.Rhs.(*ast.MethodCallExpr); !ok {
		t.Fatalf("expected rhs to be a method call, got %T", bin.Rhs)
	}
}

func TestNamedArgumentsParse(t *testing.T) {
	decls, diags := parse(t, `func f() -> Int { return add(a: 1, b: 2); }`)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn := decls[0].(*ast.FunctionDecl)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	call, ok := ret.Value.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", ret.Value)
	}
	if len(call.Args) != 2 || call.Args[0].Name != "a" || call.Args[1].Name != "b" {
		t.Fatalf("unexpected args: %+v", call.Args)
	}
}

func TestClassDeclWithCtorMethodAndDestructor(t *testing.T) {
	src := `
class Counter {
	var n: Int;
	init(start: Int) { self.n = start; }
	func bump() -> Int { return self.n; }
	deinit() {}
}
`
	decls, diags := parse(t, src)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	cls, ok := decls[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", decls[0])
	}
	if len(cls.Fields) != 1 || cls.Ctor == nil || len(cls.Methods) != 1 || cls.Destructor == nil {
		t.Fatalf("unexpected class shape: fields=%d ctor=%v methods=%d destructor=%v",
			len(cls.Fields), cls.Ctor != nil, len(cls.Methods), cls.Destructor != nil)
	}
}

func TestTopLevelIfReportsTopLevelCtrlFlow(t *testing.T) {
	_, diags := parse(t, `if (x == 1) {}`)
	if got := diags.CountOf(diag.TopLevelCtrlFlow); got != 1 {
		t.Fatalf("expected exactly one TopLevelCtrlFlow, got %d: %v", got, diags.All())
	}
}

func TestUnexpectedTokenRecoversAndResynchronizes(t *testing.T) {
	// The bogus "@@@" should produce one UnexpectedToken-family diagnostic
	// and parsing should still pick up the following, well-formed function.
	decls, diags := parse(t, `@@@ func f() -> Void {}`)
	if diags.ErrorCount() == 0 {
		t.Fatalf("expected at least one diagnostic for the malformed input")
	}
	var found bool
	for _, d := range decls {
		if fn, ok := d.(*ast.FunctionDecl); ok && fn.Name == "f" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected parsing to recover and still find function f, got %+v", decls)
	}
}
