package passes

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/types"
)

// RunDeclarationPass is the Type Resolver (Pass A): a first sweep
// introduces every class name as an opaque class type so forward
// references between classes in the same file resolve regardless of
// source order; a second sweep fills in each class's field table, now
// that every class name exists. Grounded on the teacher's
// declaration_pass.go two-sweep structure.
func RunDeclarationPass(ctx *PassContext, decls []ast.Decl) {
	var classes []*ast.ClassDecl
	for _, d := range decls {
		cd, ok := d.(*ast.ClassDecl)
		if !ok {
			continue
		}
		classes = append(classes, cd)
		cls, isNew := ctx.Interner.DeclareClass(cd.Name)
		if !isNew {
			ctx.Diags.DuplicateType(cd.Pos(), cd.Name)
			continue
		}
		cls.Access = int(cd.Access)
	}

	for _, cd := range classes {
		cls, ok := ctx.Interner.LookupClass(cd.Name)
		if !ok {
			continue // DuplicateType already reported; this decl owns no type
		}
		for _, field := range cd.Fields {
			typ := resolveTypeExpr(ctx.Interner, field.Type)
			if typ == nil {
				typ = types.ERROR
			}
			if !cls.AddField(field.Name, typ, int(field.Access)) {
				ctx.Diags.DuplicateField(field.Pos(), cd.Name, field.Name)
			}
		}
	}
}
