package passes

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/semantic"
	"github.com/cwbudde/slc/internal/types"
)

// RunFunctionPass is the Function Resolver (Pass B): walks global
// declarations and class members, entering each free function, external
// function, constructor, method and destructor into the global scope
// under its interned function type. By the time this pass runs, Pass A
// has already introduced every class name, so self/param/return types
// resolve regardless of declaration order. Grounded on the teacher's
// declaration_pass.go (second half) and symbol_table.go's Define* family.
func RunFunctionPass(ctx *PassContext, decls []ast.Decl) {
	for _, d := range decls {
		switch decl := d.(type) {
		case *ast.FunctionDecl:
			registerFreeFunc(ctx, decl.Name, decl.Params, decl.ReturnType, decl)
		case *ast.ExtFunctionDecl:
			registerFreeFunc(ctx, decl.Name, decl.Params, decl.ReturnType, decl)
		case *ast.GlobalVarDecl:
			registerGlobalVar(ctx, decl)
		case *ast.ClassDecl:
			registerClassMembers(ctx, decl)
		}
	}
}

func paramTypes(ctx *PassContext, params []ast.Param) []types.Type {
	out := make([]types.Type, len(params))
	for i, p := range params {
		t := resolveTypeExpr(ctx.Interner, p.Type)
		if t == nil {
			t = types.ERROR
		}
		out[i] = t
	}
	return out
}

func registerFreeFunc(ctx *PassContext, name string, params []ast.Param, ret *ast.TypeExpr, decl ast.Node) {
	if _, isClass := ctx.Interner.LookupClass(name); isClass {
		ctx.Diags.FuncNamedAfterType(decl.Pos(), name)
		return
	}
	if _, exists := ctx.Globals.Funcs[name]; exists {
		ctx.Diags.FuncAlreadyDefined(decl.Pos(), name)
		return
	}
	retType := resolveTypeExpr(ctx.Interner, ret)
	if retType == nil {
		retType = types.VOID
	}
	ft := ctx.Interner.InternFunction(paramTypes(ctx, params), retType, nil, false)
	ctx.Globals.Funcs[name] = &semantic.FuncSymbol{Name: name, Type: ft, Decl: decl, Defined: true}
}

func registerGlobalVar(ctx *PassContext, decl *ast.GlobalVarDecl) {
	if _, exists := ctx.Globals.Vars[decl.Name]; exists {
		ctx.Diags.VarAlreadyDefined(decl.Pos(), decl.Name)
		return
	}
	// Type may be nil here when elided; the emitter's checkGlobalVars infers
	// it from Init, walking globals in source order, before any function
	// body is emitted.
	typ := resolveTypeExpr(ctx.Interner, decl.Type)
	ctx.Globals.Vars[decl.Name] = &semantic.VarSymbol{Type: typ, Access: decl.Access, Decl: decl}
}

func registerClassMembers(ctx *PassContext, decl *ast.ClassDecl) {
	cls, ok := ctx.Interner.LookupClass(decl.Name)
	if !ok {
		return // DuplicateType already reported in Pass A
	}
	cs := ctx.Globals.ClassSymbolFor(cls)

	if decl.Ctor != nil {
		ft := ctx.Interner.InternFunction(paramTypes(ctx, decl.Ctor.Params), types.VOID, cls, true)
		cs.Ctor = &semantic.FuncSymbol{Name: decl.Name + ".init", Type: ft, Access: decl.Ctor.Access, Decl: decl.Ctor, Defined: true}
	}

	for _, m := range decl.Methods {
		if _, exists := cs.Methods[m.Name]; exists {
			ctx.Diags.FuncAlreadyDefined(m.Pos(), decl.Name+"."+m.Name)
			continue
		}
		retType := resolveTypeExpr(ctx.Interner, m.ReturnType)
		if retType == nil {
			retType = types.VOID
		}
		ft := ctx.Interner.InternFunction(paramTypes(ctx, m.Params), retType, cls, false)
		cs.Methods[m.Name] = &semantic.FuncSymbol{Name: decl.Name + "." + m.Name, Type: ft, Access: m.Access, Decl: m, Defined: true}
	}

	if decl.Destructor != nil {
		ft := ctx.Interner.InternFunction(nil, types.VOID, cls, false)
		cs.Destructor = &semantic.FuncSymbol{Name: decl.Name + ".deinit", Type: ft, Decl: decl.Destructor, Defined: true}
	}
}
