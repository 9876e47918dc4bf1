package emit

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/backend/lir"
	"github.com/cwbudde/slc/internal/semantic"
	"github.com/cwbudde/slc/internal/types"
)

// emitStmts visits a statement sequence without pushing its own frame — the
// caller (emitFunction for a body, emitStmt's *ast.Block case for a nested
// block) owns the Enter/Exit around it.
func (e *Emitter) emitStmts(stmts []ast.Statement) {
	for _, s := range stmts {
		e.emitStmt(s)
	}
}

func (e *Emitter) emitStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.EmptyStmt:
		// nothing to do
	case *ast.Block:
		e.scope.Enter()
		e.emitStmts(st.Stmts)
		e.scope.Exit()
	case *ast.IfStmt:
		e.emitIf(st)
	case *ast.ReturnStmt:
		e.emitReturn(st)
	case *ast.LocalVarStmt:
		e.emitLocalVar(st)
	case *ast.ExprStmt:
		e.emitExpr(st.Expr)
	}
}

// emitLocalVar is spec.md §4.7's "Local variable" rule: evaluate the
// initializer, settle on a type (declared, or inferred when elided),
// reject Void/Error storage, allocate a stack slot, store, and bind.
func (e *Emitter) emitLocalVar(s *ast.LocalVarStmt) {
	if s.Type == nil && s.Init == nil {
		// Eliding both the type and the initializer is illegal; the
		// parser accepts the syntax, so the emitter rejects it here.
		e.ctx.Diags.InvalidVarType(s.Pos(), s.Name, "<elided>")
		if !e.scope.Insert(s.Name, semantic.Binding{Type: types.ERROR}) {
			e.ctx.Diags.VarAlreadyDefined(s.Pos(), s.Name)
		}
		return
	}

	var declared types.Type
	if s.Type != nil {
		declared = e.ctx.Interner.Resolve(&types.UnresolvedType{Name: s.Type.Name})
	}

	var initVal lir.Value
	initType := types.Type(types.ERROR)
	if s.Init != nil {
		initVal = e.emitExpr(s.Init)
		initType = s.Init.ResolvedType()
	} else if declared != types.ERROR {
		// Initializer legally elided (a type is declared); default to
		// the type's zero value.
		initVal = e.zeroValue(declared)
	} else {
		// Initializer missing past recovery (declared type itself
		// already invalid); no expression to lower.
		initVal = e.errorValue()
	}

	varType := declared
	if declared == nil {
		varType = initType
	} else if declared != types.ERROR && initType != types.ERROR && declared != initType {
		e.ctx.Diags.MismatchingVarTypes(s.Pos(), s.Name, declared.String(), initType.String())
		varType = types.ERROR
	}

	if varType != types.ERROR && !types.IsValid(varType) {
		e.ctx.Diags.InvalidVarType(s.Pos(), s.Name, varType.String())
		varType = types.ERROR
	}

	if varType == types.ERROR {
		if !e.scope.Insert(s.Name, semantic.Binding{Type: types.ERROR}) {
			e.ctx.Diags.VarAlreadyDefined(s.Pos(), s.Name)
		}
		return
	}

	alloca := e.b.CreateAlloca(s.Name, e.toBackendType(varType))
	e.b.CreateStore(alloca, initVal)
	if !e.scope.Insert(s.Name, semantic.Binding{Type: varType, Handle: alloca}) {
		e.ctx.Diags.VarAlreadyDefined(s.Pos(), s.Name)
	}
}

// emitIf is spec.md §4.7's "If" rule.
func (e *Emitter) emitIf(s *ast.IfStmt) {
	condVal := e.emitExpr(s.Cond)
	condType := s.Cond.ResolvedType()
	if condType != types.BOOL && condType != types.ERROR {
		e.ctx.Diags.CannotConvert(s.Cond.Pos(), condType.String(), types.BOOL.String())
		condVal = e.b.ConstBool(false)
	}

	thenBlk := e.b.NewBlock("if.then")
	elseBlk := e.b.NewBlock("if.else")
	endBlk := e.b.NewBlock("if.end")
	e.b.CreateCondBr(condVal, thenBlk, elseBlk)

	e.b.SetInsertPoint(thenBlk)
	e.scope.Enter()
	e.emitStmts(s.Then.Stmts)
	e.scope.Exit()
	thenTerminated := e.b.Current().Terminated()
	if !thenTerminated {
		e.b.CreateBr(endBlk)
	}

	e.b.SetInsertPoint(elseBlk)
	e.scope.Enter()
	elseTerminated := false
	if s.Else != nil {
		e.emitStmts(s.Else.Stmts)
		elseTerminated = e.b.Current().Terminated()
	}
	e.scope.Exit()
	if !elseTerminated {
		e.b.CreateBr(endBlk)
	}

	e.b.SetInsertPoint(endBlk)
	if thenTerminated && elseTerminated {
		// Both arms terminate: the end block is unreachable. It has no
		// predecessor branch into it; mark it so, and let whatever follows
		// in source (also unreachable) overwrite this terminator as it's
		// emitted, same as any other dead code.
		e.b.CreateUnreachable()
	}
}

// emitReturn is spec.md §4.7's "Return" rule.
func (e *Emitter) emitReturn(s *ast.ReturnStmt) {
	retType := e.scope.ReturnType()

	if s.Value == nil {
		if retType != types.VOID {
			e.ctx.Diags.RetvalMismatchesRetType(s.Pos(), types.VOID.String(), retType.String())
			e.b.CreateUnreachable()
			return
		}
		e.b.CreateRetVoid()
		return
	}

	val := e.emitExpr(s.Value)
	valType := s.Value.ResolvedType()

	if valType == types.VOID {
		e.ctx.Diags.CantReturnVoidValue(s.Pos())
		e.b.CreateUnreachable()
		return
	}
	if valType != types.ERROR && retType != types.ERROR && valType != retType {
		e.ctx.Diags.RetvalMismatchesRetType(s.Pos(), valType.String(), retType.String())
		e.b.CreateUnreachable()
		return
	}

	e.b.CreateRet(val)
}
