// Package passes implements the Type Resolver (Pass A) and Function
// Resolver (Pass B) from spec.md §§4.4-4.5: two full sweeps over the
// global declaration list that populate the type interner and the global
// scope before the emitter ever walks a function body. Grounded on the
// teacher's internal/semantic/passes package (declaration_pass.go's
// two-sweep "register names first, fields/bodies second" idiom,
// pass_context.go's shared PassContext), trimmed to the TypeRegistry +
// Symbols this spec actually needs.
package passes

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/semantic"
	"github.com/cwbudde/slc/internal/types"
)

// PassContext is the struct shared by Pass A and Pass B: the type
// interner, the global scope being built, and the diagnostics bag both
// passes report into. Named after the teacher's passes.PassContext.
type PassContext struct {
	Interner *types.Interner
	Globals  *semantic.GlobalScope
	Diags    *diag.Bag
}

func NewPassContext(interner *types.Interner, diags *diag.Bag) *PassContext {
	return &PassContext{
		Interner: interner,
		Globals:  semantic.NewGlobalScope(),
		Diags:    diags,
	}
}

// resolveTypeExpr resolves a parsed TypeExpr against the interner. A nil
// TypeExpr (an elided local/global type) resolves to nil — callers must
// handle inference themselves.
func resolveTypeExpr(interner *types.Interner, t *ast.TypeExpr) types.Type {
	if t == nil {
		return nil
	}
	return interner.Resolve(&types.UnresolvedType{Name: t.Name})
}

// Run executes Pass A followed by Pass B over decls, per spec.md §4.4's
// requirement that every class name exist before any field or function
// signature is resolved.
func Run(ctx *PassContext, decls []ast.Decl) {
	RunDeclarationPass(ctx, decls)
	RunFunctionPass(ctx, decls)
}
