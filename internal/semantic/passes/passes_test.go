package passes

import (
	"testing"

	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/lexer"
	"github.com/cwbudde/slc/internal/parser"
	"github.com/cwbudde/slc/internal/types"
)

func runPasses(t *testing.T, src string) (*diag.Bag, *PassContext) {
	t.Helper()
	diags := diag.NewBag()
	l := lexer.New("<test>", src, lexer.WithDiagnostics(diags))
	p := parser.New(l, diags)
	decls := p.ParseProgram()

	ctx := NewPassContext(types.NewInterner(), diags)
	Run(ctx, decls)
	return diags, ctx
}

func TestForwardReferenceBetweenClassesResolves(t *testing.T) {
	src := `
class A {
	var b: B;
}
class B {
	var n: Int;
}
`
	diags, ctx := runPasses(t, src)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	a, ok := ctx.Interner.LookupClass("A")
	if !ok {
		t.Fatalf("expected class A to be declared")
	}
	bField, ok := a.Field("b")
	if !ok {
		t.Fatalf("expected A to have a field b")
	}
	if bField.Type.TypeKind() != "CLASS" {
		t.Fatalf("expected A.b to resolve to a class type, got %s", bField.Type.TypeKind())
	}
}

func TestDuplicateClassReportsDuplicateType(t *testing.T) {
	src := `
class A { var n: Int; }
class A { var m: Int; }
`
	diags, _ := runPasses(t, src)
	if got := diags.CountOf(diag.DuplicateType); got != 1 {
		t.Fatalf("expected exactly one DuplicateType, got %d: %v", got, diags.All())
	}
}

func TestDuplicateFieldReportsDuplicateField(t *testing.T) {
	src := `
class A {
	var n: Int;
	var n: Bool;
}
`
	diags, _ := runPasses(t, src)
	if got := diags.CountOf(diag.DuplicateField); got != 1 {
		t.Fatalf("expected exactly one DuplicateField, got %d: %v", got, diags.All())
	}
}

func TestFreeFunctionRegisteredWithInternedType(t *testing.T) {
	src := `func add(a: Int, b: Int) -> Int { return a + b; }`
	diags, ctx := runPasses(t, src)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	fn, ok := ctx.Globals.Funcs["add"]
	if !ok {
		t.Fatalf("expected add to be registered")
	}
	if len(fn.Type.Params) != 2 || fn.Type.Return != types.INT32 {
		t.Fatalf("unexpected function type: %s", fn.Type)
	}
}

func TestDuplicateFreeFunctionReportsFuncAlreadyDefined(t *testing.T) {
	src := `
func f() -> Void {}
func f() -> Void {}
`
	diags, _ := runPasses(t, src)
	if got := diags.CountOf(diag.FuncAlreadyDefined); got != 1 {
		t.Fatalf("expected exactly one FuncAlreadyDefined, got %d: %v", got, diags.All())
	}
}

func TestFunctionNamedAfterClassReportsFuncNamedAfterType(t *testing.T) {
	src := `
class Widget { var n: Int; }
func Widget() -> Void {}
`
	diags, _ := runPasses(t, src)
	if got := diags.CountOf(diag.FuncNamedAfterType); got != 1 {
		t.Fatalf("expected exactly one FuncNamedAfterType, got %d: %v", got, diags.All())
	}
}

func TestClassMembersRegisteredWithImplicitSelf(t *testing.T) {
	src := `
class Counter {
	var n: Int;
	init(start: Int) {
		self.n = start;
	}
	func bump() -> Int {
		return self.n;
	}
	deinit() {}
}
`
	diags, ctx := runPasses(t, src)
	if diags.ErrorCount() != 0 {
		t.Fatalf("expected zero diagnostics, got %d: %v", diags.ErrorCount(), diags.All())
	}
	cls, _ := ctx.Interner.LookupClass("Counter")
	cs := ctx.Globals.ClassSymbolFor(cls)

	if cs.Ctor == nil || cs.Ctor.Name != "Counter.init" {
		t.Fatalf("expected a registered constructor named Counter.init, got %+v", cs.Ctor)
	}
	if !cs.Ctor.Type.HasSelf() {
		t.Fatalf("expected the constructor's type to carry an implicit self")
	}

	bump, ok := cs.Methods["bump"]
	if !ok || bump.Name != "Counter.bump" {
		t.Fatalf("expected a registered method named Counter.bump, got %+v", bump)
	}

	if cs.Destructor == nil || cs.Destructor.Name != "Counter.deinit" {
		t.Fatalf("expected a registered destructor named Counter.deinit, got %+v", cs.Destructor)
	}
}

func TestGlobalVarDuplicateReportsVarAlreadyDefined(t *testing.T) {
	src := `
let x: Int = 1;
let x: Int = 2;
`
	diags, _ := runPasses(t, src)
	if got := diags.CountOf(diag.VarAlreadyDefined); got != 1 {
		t.Fatalf("expected exactly one VarAlreadyDefined, got %d: %v", got, diags.All())
	}
}
