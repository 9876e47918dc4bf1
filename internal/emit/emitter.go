// Package emit is the IR Emitter: the single AST walk described in
// spec.md §4.7 that type-checks every expression and statement while
// driving the backend/lir Builder to produce typed IR. Grounded on
// original_source/src/irgen/passes/irEmitter/ for the walk-and-lower
// structure (entry-block alloca insertion point, branch-and-merge for
// if/ternary/short-circuit) and on the teacher's
// internal/semantic/passes/validation_pass.go for the "one combined
// check-and-annotate pass" shape — this repo folds validation_pass's
// type-checking responsibilities and the original's lowering into one
// pass, since nothing downstream needs a separately-typed AST before
// lowering begins.
package emit

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/backend/lir"
	"github.com/cwbudde/slc/internal/semantic"
	"github.com/cwbudde/slc/internal/semantic/passes"
	"github.com/cwbudde/slc/internal/types"
)

// Emitter walks a resolved AST Context and lowers it into one lir.Module.
type Emitter struct {
	ctx *passes.PassContext
	mod *lir.Module
	b   *lir.Builder

	scope *semantic.ScopeStack

	classStructs map[string]lir.StructType
	backendFuncs map[string]*lir.Function

	// selfClass is the receiver type of the function currently being
	// emitted, or nil for a free function/ext function.
	selfClass *types.ClassType
}

// EmitProgram type-checks and lowers decls (already processed by
// passes.Run) into a fresh lir.Module named name.
func EmitProgram(ctx *passes.PassContext, decls []ast.Decl, name string) *lir.Module {
	e := &Emitter{
		ctx:          ctx,
		mod:          lir.NewModule(name),
		scope:        semantic.NewScopeStack(),
		classStructs: make(map[string]lir.StructType),
		backendFuncs: make(map[string]*lir.Function),
	}
	e.b = lir.NewBuilder(e.mod)

	e.declareClassStructs(decls)
	e.declareFunctions(decls)
	e.checkGlobalVars(decls)
	e.emitFunctionBodies(decls)

	return e.mod
}

// declareClassStructs builds the backend struct layout for every declared
// class before any function body is emitted, so field-typed parameters and
// constructor calls can resolve their backend type regardless of
// declaration order. Classes are walked in decls' source order, per
// spec.md §5's determinism requirement, rather than via the Interner's
// ClassNames (whose iteration order is arbitrary) — mirrors
// declareFunctions below.
func (e *Emitter) declareClassStructs(decls []ast.Decl) {
	for _, d := range decls {
		cd, ok := d.(*ast.ClassDecl)
		if !ok {
			continue
		}
		cls, ok := e.ctx.Interner.LookupClass(cd.Name)
		if !ok {
			continue
		}
		fields := make([]lir.DataType, 0, len(cls.FieldOrder()))
		for _, fname := range cls.FieldOrder() {
			f, _ := cls.Field(fname)
			fields = append(fields, e.toBackendType(f.Type))
		}
		st := lir.NewClassStruct(cd.Name, fields)
		e.classStructs[cd.Name] = st
		e.mod.DeclareStruct(st)
	}
}

// toBackendType is the "type-conversion facility" spec.md §6.3 requires:
// given a source type, it returns the backend's structural representation.
func (e *Emitter) toBackendType(t types.Type) lir.DataType {
	switch t {
	case nil, types.VOID:
		return lir.Void
	case types.BOOL:
		return lir.I1
	case types.INT32, types.ERROR:
		return lir.I32
	}
	if cls, ok := t.(*types.ClassType); ok {
		if st, ok := e.classStructs[cls.Name]; ok {
			return lir.Ptr(st)
		}
		return lir.Ptr(lir.NewClassStruct(cls.Name, nil))
	}
	return lir.I32
}

// paramNamesOf recovers the source-level parameter names for a FuncSymbol's
// Decl, so declareFunctions can give backend parameters the names the
// programmer wrote instead of synthetic "arg0" labels.
func paramNamesOf(decl ast.Node) []string {
	var params []ast.Param
	switch d := decl.(type) {
	case *ast.FunctionDecl:
		params = d.Params
	case *ast.ExtFunctionDecl:
		params = d.Params
	case *ast.CtorDecl:
		params = d.Params
	case *ast.MethodDecl:
		params = d.Params
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

// declareFunctions registers every free function, external function,
// constructor, method and destructor the Function Resolver found as a
// body-less lir.Function, before any body is emitted — this is what lets a
// function call a sibling declared later in the source. Declarations are
// walked in decls' source order, per spec.md §5's determinism requirement,
// rather than via GlobalScope's maps (whose iteration order is arbitrary).
func (e *Emitter) declareFunctions(decls []ast.Decl) {
	for _, d := range decls {
		switch decl := d.(type) {
		case *ast.FunctionDecl:
			if sym := e.ctx.Globals.Funcs[decl.Name]; sym != nil && sym.Decl == decl {
				e.declareOne(sym)
			}
		case *ast.ExtFunctionDecl:
			if sym := e.ctx.Globals.Funcs[decl.Name]; sym != nil && sym.Decl == decl {
				e.declareOne(sym)
			}
		case *ast.ClassDecl:
			cs := e.ctx.Globals.Classes[decl.Name]
			if cs == nil {
				continue
			}
			if decl.Ctor != nil && cs.Ctor != nil && cs.Ctor.Decl == decl.Ctor {
				e.declareOne(cs.Ctor)
			}
			for _, m := range decl.Methods {
				if sym := cs.Methods[m.Name]; sym != nil && sym.Decl == m {
					e.declareOne(sym)
				}
			}
			if decl.Destructor != nil && cs.Destructor != nil && cs.Destructor.Decl == decl.Destructor {
				e.declareOne(cs.Destructor)
			}
		}
	}
}

func (e *Emitter) declareOne(sym *semantic.FuncSymbol) {
	backendTypes := sym.Type.BackendParams()
	names := paramNamesOf(sym.Decl)
	if sym.Type.HasSelf() {
		names = append([]string{"self"}, names...)
	}
	specs := make([]lir.ParamSpec, len(backendTypes))
	for i, t := range backendTypes {
		n := "_"
		if i < len(names) {
			n = names[i]
		}
		specs[i] = lir.ParamSpec{Name: n, Typ: e.toBackendType(t)}
	}
	fn := e.mod.DeclareFunction(sym.Name, specs, e.toBackendType(sym.Type.Return))
	e.backendFuncs[sym.Name] = fn
}

// checkGlobalVars type-checks each global's initializer (inferring an
// elided declared type from it) and patches GlobalScope's VarSymbol.Type in
// place before any function body is emitted, per the deferred-inference
// note on registerGlobalVar. It does not allocate backend storage: §6.3's
// instruction list names alloca/load/store as stack-slot operations only,
// with no module-level data instruction, so a global variable's storage is
// left to the external backend and this pass only establishes its type for
// the rest of the emitter to consult — see DESIGN.md.
func (e *Emitter) checkGlobalVars(decls []ast.Decl) {
	// Global initializers are type-checked under a scratch, unregistered
	// function so the builder has somewhere to put any instructions an
	// initializer expression needs (a call, an arithmetic op); this scratch
	// IR is discarded, since no global storage is emitted for it.
	e.b.StartFunction(&lir.Function{Name: "$globals"})

	for _, d := range decls {
		gd, ok := d.(*ast.GlobalVarDecl)
		if !ok {
			continue
		}
		sym := e.ctx.Globals.Vars[gd.Name]
		if sym == nil || sym.Decl != gd {
			continue // a duplicate VarAlreadyDefined already reported this
		}
		if gd.Init == nil {
			if sym.Type == nil || !types.IsValid(sym.Type) {
				e.ctx.Diags.InvalidVarType(gd.Pos(), gd.Name, "<unresolved>")
				sym.Type = types.ERROR
			}
			continue
		}
		e.scope.Enter() // a throwaway frame; globals reference no locals
		e.emitExpr(gd.Init)
		e.scope.Exit()
		initType := gd.Init.ResolvedType()
		if sym.Type == nil {
			sym.Type = initType
		} else if sym.Type != initType && sym.Type != types.ERROR && initType != types.ERROR {
			e.ctx.Diags.MismatchingVarTypes(gd.Pos(), gd.Name, sym.Type.String(), initType.String())
			sym.Type = types.ERROR
		}
		if sym.Type != types.ERROR && !types.IsValid(sym.Type) {
			e.ctx.Diags.InvalidVarType(gd.Pos(), gd.Name, sym.Type.String())
			sym.Type = types.ERROR
		}
	}
}

// emitFunctionBodies walks decls in source order (per spec.md §5's
// determinism requirement) and lowers every function-like body it finds. A
// decl that lost a name collision in Pass B (its FuncSymbol.Decl points at
// an earlier declaration instead) is silently skipped: FuncAlreadyDefined
// was already reported when it was resolved, and "emitter skips body" is
// exactly its recovery rule in spec.md §7's error table.
func (e *Emitter) emitFunctionBodies(decls []ast.Decl) {
	for _, d := range decls {
		switch decl := d.(type) {
		case *ast.FunctionDecl:
			sym := e.ctx.Globals.Funcs[decl.Name]
			if sym == nil || sym.Decl != decl {
				continue
			}
			e.emitFunction(sym, decl.Params, decl.Body)
		case *ast.ClassDecl:
			cs := e.ctx.Globals.Classes[decl.Name]
			if cs == nil {
				continue
			}
			if decl.Ctor != nil && cs.Ctor != nil && cs.Ctor.Decl == decl.Ctor {
				e.emitFunction(cs.Ctor, decl.Ctor.Params, decl.Ctor.Body)
			}
			for _, m := range decl.Methods {
				sym := cs.Methods[m.Name]
				if sym == nil || sym.Decl != m {
					continue
				}
				e.emitFunction(sym, m.Params, m.Body)
			}
			if decl.Destructor != nil && cs.Destructor != nil && cs.Destructor.Decl == decl.Destructor {
				e.emitFunction(cs.Destructor, nil, decl.Destructor.Body)
			}
		}
	}
}

// emitFunction is spec.md §4.7's "Function body" rule: begin a new
// function frame with the declared return type, bind self (if any) directly
// to the incoming receiver parameter, allocate a stack slot for each
// declared parameter, visit the body, and close the
// function's last block with a return/unreachable if the source left it
// open.
func (e *Emitter) emitFunction(sym *semantic.FuncSymbol, params []ast.Param, body *ast.Block) {
	fn := e.backendFuncs[sym.Name]
	if fn == nil || body == nil {
		return
	}

	e.b.StartFunction(fn)
	e.scope = semantic.NewScopeStack()
	e.scope.Enter()
	e.scope.SetReturnType(sym.Type.Return)
	e.selfClass = sym.Type.Self

	backendIdx := 0
	if sym.Type.HasSelf() {
		e.scope.Insert("self", semantic.Binding{Type: sym.Type.Self, Handle: fn.Params[0]})
		backendIdx = 1
	}
	for i, p := range params {
		pt := sym.Type.Params[i]
		if !types.IsValid(pt) {
			e.ctx.Diags.InvalidParamType(p.Pos, p.Name, pt.String())
			e.scope.Insert(p.Name, semantic.Binding{Type: types.ERROR})
			backendIdx++
			continue
		}
		alloca := e.b.CreateAlloca(p.Name, e.toBackendType(pt))
		e.b.CreateStore(alloca, fn.Params[backendIdx])
		e.scope.Insert(p.Name, semantic.Binding{Type: pt, Handle: alloca})
		backendIdx++
	}

	e.emitStmts(body.Stmts)

	if !e.b.Current().Terminated() {
		if sym.Type.Return == types.VOID {
			e.b.CreateRetVoid()
		} else {
			e.ctx.Diags.MissingReturn(body.Pos(), sym.Name)
			e.b.CreateUnreachable()
		}
	}

	e.scope.Exit()
	e.selfClass = nil
}

// errorValue is the placeholder backend value attached to an Error-typed
// expression, so lowering can keep producing structurally valid IR after a
// diagnostic; the driver suppresses using any of this module's IR once
// errors > 0, per spec.md §6.2, so the placeholder's actual value never
// matters.
func (e *Emitter) errorValue() lir.Value {
	return e.b.ConstI32(0)
}

func (e *Emitter) zeroValue(t types.Type) lir.Value {
	switch t {
	case types.BOOL:
		return e.b.ConstBool(false)
	default:
		return e.b.ConstI32(0)
	}
}

// accessible applies the effective access rule for a class member: the
// effective visibility is the more restrictive of the class's own access
// and the member's — a private class hides even its public members from
// the outside, and a private member stays hidden regardless of its class's
// access. Either way it's visible only from the class's own
// methods/constructor.
func (e *Emitter) accessible(cls *types.ClassType, access int) bool {
	if e.selfClass == cls {
		return true
	}
	return ast.Access(cls.Access) != ast.AccessPrivate && ast.Access(access) != ast.AccessPrivate
}
