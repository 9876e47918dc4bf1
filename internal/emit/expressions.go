package emit

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/backend/lir"
	"github.com/cwbudde/slc/internal/types"
)

// emitExpr is the single entry point spec.md §4.7 describes: "for each
// expression it computes the source-level type (storing it back on the
// node) and produces an opaque backend value."
func (e *Emitter) emitExpr(expr ast.Expression) lir.Value {
	if expr == nil {
		// A malformed expression the parser already reported and left
		// as nil (e.g. a missing initializer); treat it as Error rather
		// than dereferencing a nil interface.
		return e.errorValue()
	}
	switch ex := expr.(type) {
	case *ast.Ident:
		return e.emitIdent(ex)
	case *ast.Literal:
		return e.emitLiteral(ex)
	case *ast.SelfExpr:
		return e.emitSelf(ex)
	case *ast.UnaryExpr:
		return e.emitUnary(ex)
	case *ast.BinaryExpr:
		switch ex.Op {
		case "=":
			return e.emitAssign(ex)
		case "&&", "||":
			return e.emitShortCircuit(ex)
		default:
			return e.emitBinary(ex)
		}
	case *ast.TernaryExpr:
		return e.emitTernary(ex)
	case *ast.CallExpr:
		return e.emitCall(ex)
	case *ast.FieldAccessExpr:
		return e.emitFieldAccess(ex)
	case *ast.MethodCallExpr:
		return e.emitMethodCall(ex)
	}
	expr.SetResolvedType(types.ERROR)
	return e.errorValue()
}

// emitIdent is spec.md §4.7's "Ident" rule: look up in scope, load a local,
// or yield a function value; on miss, report and set Error.
func (e *Emitter) emitIdent(id *ast.Ident) lir.Value {
	if b, ok := e.scope.Lookup(id.Name); ok {
		id.SetResolvedType(b.Type)
		if b.Type == types.ERROR {
			return e.errorValue()
		}
		if alloca, ok := b.Handle.(*lir.Alloca); ok {
			return e.b.CreateLoad(alloca)
		}
		if v, ok := b.Handle.(lir.Value); ok {
			return v
		}
		return e.errorValue()
	}
	if gv, ok := e.ctx.Globals.Vars[id.Name]; ok {
		id.SetResolvedType(gv.Type)
		if gv.Type == nil || gv.Type == types.ERROR {
			return e.errorValue()
		}
		return e.zeroValue(gv.Type)
	}
	e.ctx.Diags.UnknownIdent(id.Pos(), id.Name)
	id.SetResolvedType(types.ERROR)
	return e.errorValue()
}

func (e *Emitter) emitLiteral(l *ast.Literal) lir.Value {
	switch l.BitWidth {
	case 1:
		l.SetResolvedType(types.BOOL)
		return e.b.ConstBool(l.BoolValue)
	case 32:
		l.SetResolvedType(types.INT32)
		return e.b.ConstI32(l.IntValue)
	default:
		e.ctx.Diags.InvalidIntWidth(l.Pos(), l.BitWidth)
		l.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
}

func (e *Emitter) emitSelf(s *ast.SelfExpr) lir.Value {
	if e.selfClass == nil {
		e.ctx.Diags.UnknownIdent(s.Pos(), "self")
		s.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
	s.SetResolvedType(e.selfClass)
	b, _ := e.scope.Lookup("self")
	if v, ok := b.Handle.(lir.Value); ok {
		return v
	}
	return e.errorValue()
}

// emitUnary is spec.md §4.7's "Unary" rule: `-` on Int/Bool, `!` on Bool
// only. The backend has no dedicated logical-not instruction, so `!x`
// lowers to `icmp eq x, false`.
func (e *Emitter) emitUnary(u *ast.UnaryExpr) lir.Value {
	val := e.emitExpr(u.Expr)
	t := u.Expr.ResolvedType()

	switch u.Op {
	case "-":
		if t == types.INT32 || t == types.BOOL {
			u.SetResolvedType(t)
			return e.b.CreateNeg(val)
		}
		if t != types.ERROR {
			e.ctx.Diags.InvalidUnary(u.Pos(), u.Op, t.String())
		}
	case "!":
		if t == types.BOOL {
			u.SetResolvedType(types.BOOL)
			return e.b.CreateICmp(lir.ICmpEQ, val, e.b.ConstBool(false))
		}
		if t != types.ERROR {
			e.ctx.Diags.InvalidUnary(u.Pos(), u.Op, t.String())
		}
	}
	u.SetResolvedType(types.ERROR)
	return e.errorValue()
}

var binOpKinds = map[string]lir.BinOpKind{
	"+": lir.OpAdd,
	"-": lir.OpSub,
	"*": lir.OpMul,
	"/": lir.OpSDiv,
	"%": lir.OpSRem,
}

var icmpPreds = map[string]lir.ICmpPred{
	"==": lir.ICmpEQ,
	"!=": lir.ICmpNE,
	"<":  lir.ICmpSLT,
	"<=": lir.ICmpSLE,
	">":  lir.ICmpSGT,
	">=": lir.ICmpSGE,
}

// emitBinary is spec.md §4.7's "Binary, general" rule.
func (e *Emitter) emitBinary(b *ast.BinaryExpr) lir.Value {
	lhsVal := e.emitExpr(b.Lhs)
	rhsVal := e.emitExpr(b.Rhs)
	lt := b.Lhs.ResolvedType()
	rt := b.Rhs.ResolvedType()

	if lt != rt {
		if lt != types.ERROR && rt != types.ERROR {
			e.ctx.Diags.InvalidBinary(b.Pos(), b.Op, lt.String(), rt.String())
		}
		b.SetResolvedType(types.ERROR)
		return e.errorValue()
	}

	if kind, ok := binOpKinds[b.Op]; ok {
		if lt != types.INT32 {
			if lt != types.ERROR {
				e.ctx.Diags.InvalidBinary(b.Pos(), b.Op, lt.String(), rt.String())
			}
			b.SetResolvedType(types.ERROR)
			return e.errorValue()
		}
		b.SetResolvedType(types.INT32)
		return e.b.CreateBinOp(kind, lhsVal, rhsVal)
	}

	if pred, ok := icmpPreds[b.Op]; ok {
		needsIntOnly := b.Op == "<" || b.Op == "<=" || b.Op == ">" || b.Op == ">="
		ok := lt == types.INT32 || (!needsIntOnly && lt == types.BOOL)
		if !ok {
			if lt != types.ERROR {
				e.ctx.Diags.InvalidBinary(b.Pos(), b.Op, lt.String(), rt.String())
			}
			b.SetResolvedType(types.ERROR)
			return e.errorValue()
		}
		b.SetResolvedType(types.BOOL)
		return e.b.CreateICmp(pred, lhsVal, rhsVal)
	}

	e.ctx.Diags.NotABinaryOp(b.Pos(), b.Op)
	b.SetResolvedType(types.ERROR)
	return e.errorValue()
}

// emitShortCircuit is spec.md §4.7's "Binary, short-circuit &&/||" rule.
func (e *Emitter) emitShortCircuit(b *ast.BinaryExpr) lir.Value {
	lhsVal := e.emitExpr(b.Lhs)
	lt := b.Lhs.ResolvedType()
	if lt != types.BOOL && lt != types.ERROR {
		e.ctx.Diags.InvalidBinary(b.Pos(), b.Op, lt.String(), "?")
		lhsVal = e.b.ConstBool(false)
	}

	longBlk := e.b.NewBlock("sc.long")
	contBlk := e.b.NewBlock("sc.cont")
	if b.Op == "&&" {
		e.b.CreateCondBr(lhsVal, longBlk, contBlk)
	} else {
		e.b.CreateCondBr(lhsVal, contBlk, longBlk)
	}
	lhsPred := e.b.Current()

	e.b.SetInsertPoint(longBlk)
	rhsVal := e.emitExpr(b.Rhs)
	rt := b.Rhs.ResolvedType()
	if rt != types.BOOL && rt != types.ERROR {
		e.ctx.Diags.InvalidBinary(b.Pos(), b.Op, rt.String(), "?")
		rhsVal = e.b.ConstBool(false)
	}
	longEnd := e.b.Current()
	if !longEnd.Terminated() {
		e.b.CreateBr(contBlk)
	}

	e.b.SetInsertPoint(contBlk)
	shortValue := b.Op == "||"
	phi := e.b.CreatePhi(lir.I1, []lir.PhiEdge{
		{Pred: lhsPred, Val: e.b.ConstBool(shortValue)},
		{Pred: longEnd, Val: rhsVal},
	})
	b.SetResolvedType(types.BOOL)
	return phi
}

// emitAssign is spec.md §4.7's "Binary, assignment" rule.
func (e *Emitter) emitAssign(b *ast.BinaryExpr) lir.Value {
	switch lhs := b.Lhs.(type) {
	case *ast.Ident:
		binding, ok := e.scope.Lookup(lhs.Name)
		alloca, isAlloca := binding.Handle.(*lir.Alloca)
		if !ok || !isAlloca {
			e.ctx.Diags.LhsNotAssignable(b.Pos())
			lhs.SetResolvedType(types.ERROR)
			e.emitExpr(b.Rhs)
			b.SetResolvedType(types.ERROR)
			return e.errorValue()
		}
		lhs.SetResolvedType(binding.Type)
		rhsVal := e.emitExpr(b.Rhs)
		rt := b.Rhs.ResolvedType()
		if binding.Type != types.ERROR && rt != types.ERROR && rt != binding.Type {
			e.ctx.Diags.CannotConvert(b.Rhs.Pos(), rt.String(), binding.Type.String())
			b.SetResolvedType(types.ERROR)
			return e.errorValue()
		}
		e.b.CreateStore(alloca, rhsVal)
		b.SetResolvedType(types.VOID)
		return nil

	case *ast.FieldAccessExpr:
		objVal := e.emitExpr(lhs.Obj)
		objType := lhs.Obj.ResolvedType()
		cls, ok := objType.(*types.ClassType)
		if !ok {
			if objType != types.ERROR {
				e.ctx.Diags.LhsNotAssignable(b.Pos())
			}
			lhs.SetResolvedType(types.ERROR)
			e.emitExpr(b.Rhs)
			b.SetResolvedType(types.ERROR)
			return e.errorValue()
		}
		field, ok := cls.Field(lhs.Member)
		if !ok || !e.accessible(cls, field.Access) {
			e.ctx.Diags.UnknownIdent(lhs.Pos(), lhs.Member)
			lhs.SetResolvedType(types.ERROR)
			e.emitExpr(b.Rhs)
			b.SetResolvedType(types.ERROR)
			return e.errorValue()
		}
		lhs.SetResolvedType(field.Type)
		rhsVal := e.emitExpr(b.Rhs)
		rt := b.Rhs.ResolvedType()
		if field.Type != types.ERROR && rt != types.ERROR && rt != field.Type {
			e.ctx.Diags.CannotConvert(b.Rhs.Pos(), rt.String(), field.Type.String())
			b.SetResolvedType(types.ERROR)
			return e.errorValue()
		}
		addr := e.b.CreateGetFieldPtr(objVal, field.Index+1, e.toBackendType(field.Type))
		e.b.CreateStore(addr, rhsVal)
		b.SetResolvedType(types.VOID)
		return nil

	default:
		e.ctx.Diags.LhsNotAssignable(b.Pos())
		e.emitExpr(b.Lhs)
		e.emitExpr(b.Rhs)
		b.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
}

// emitTernary is spec.md §4.7's "Ternary" rule.
func (e *Emitter) emitTernary(t *ast.TernaryExpr) lir.Value {
	condVal := e.emitExpr(t.Cond)
	condType := t.Cond.ResolvedType()
	if condType != types.BOOL && condType != types.ERROR {
		e.ctx.Diags.CannotConvert(t.Cond.Pos(), condType.String(), types.BOOL.String())
		condVal = e.b.ConstBool(false)
	}

	thenBlk := e.b.NewBlock("tern.then")
	elseBlk := e.b.NewBlock("tern.else")
	contBlk := e.b.NewBlock("tern.cont")
	e.b.CreateCondBr(condVal, thenBlk, elseBlk)

	e.b.SetInsertPoint(thenBlk)
	thenVal := e.emitExpr(t.Then)
	thenType := t.Then.ResolvedType()
	thenEnd := e.b.Current()
	if !thenEnd.Terminated() {
		e.b.CreateBr(contBlk)
	}

	e.b.SetInsertPoint(elseBlk)
	elseVal := e.emitExpr(t.Else)
	elseType := t.Else.ResolvedType()
	elseEnd := e.b.Current()
	if !elseEnd.Terminated() {
		e.b.CreateBr(contBlk)
	}

	e.b.SetInsertPoint(contBlk)

	if thenType != elseType && thenType != types.ERROR && elseType != types.ERROR {
		e.ctx.Diags.TernaryTypeMismatch(t.Pos(), thenType.String(), elseType.String())
		t.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
	resultType := thenType
	if resultType == types.ERROR {
		resultType = elseType
	}
	t.SetResolvedType(resultType)
	if resultType == types.ERROR || resultType == types.VOID {
		return e.errorValue()
	}
	return e.b.CreatePhi(e.toBackendType(resultType), []lir.PhiEdge{
		{Pred: thenEnd, Val: thenVal},
		{Pred: elseEnd, Val: elseVal},
	})
}

// emitArgs type-checks a named-argument call list against params strictly
// positionally: the source-level name label is parsed but not used for
// reordering (see DESIGN.md's Open Question resolution).
func (e *Emitter) emitArgs(pos ast.Node, calleeName string, args []ast.Arg, params []types.Type) []lir.Value {
	if len(args) != len(params) {
		e.ctx.Diags.MismatchingArgCount(pos.Pos(), calleeName, len(params), len(args))
	}
	vals := make([]lir.Value, len(args))
	for i, a := range args {
		v := e.emitExpr(a.Value)
		vals[i] = v
		if i >= len(params) {
			continue
		}
		at := a.Value.ResolvedType()
		pt := params[i]
		if at != pt && at != types.ERROR && pt != types.ERROR {
			e.ctx.Diags.CannotConvert(a.Value.Pos(), at.String(), pt.String())
		}
	}
	return vals
}

// emitCall is spec.md §4.7's "Call" rule. A callee naming a declared class
// is a constructor call (object construction); any other identifier must
// name a free/external function.
func (e *Emitter) emitCall(c *ast.CallExpr) lir.Value {
	ident, ok := c.Callee.(*ast.Ident)
	if !ok {
		e.ctx.Diags.NotAFunction(c.Pos(), "<expression>")
		c.SetResolvedType(types.ERROR)
		return e.errorValue()
	}

	if cls, isClass := e.ctx.Interner.LookupClass(ident.Name); isClass {
		return e.emitConstructorCall(c, cls)
	}

	sym, ok := e.ctx.Globals.Funcs[ident.Name]
	if !ok {
		e.ctx.Diags.UnknownIdent(c.Pos(), ident.Name)
		ident.SetResolvedType(types.ERROR)
		c.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
	ident.SetResolvedType(sym.Type)

	argVals := e.emitArgs(c, ident.Name, c.Args, sym.Type.Params)
	c.SetResolvedType(sym.Type.Return)

	fn := e.backendFuncs[sym.Name]
	if fn == nil || !sym.Defined {
		return e.errorValue()
	}
	return e.b.CreateCall(fn, argVals)
}

// emitConstructorCall builds a new class instance: allocates its backend
// struct, initializes the reference count to 1, and invokes the
// constructor (if any) with the instance as the implicit self argument.
// Heap placement is the external backend's job — §6.3 names no allocation
// instruction, so this stack-allocates the struct as a structural stand-in
// (see DESIGN.md).
func (e *Emitter) emitConstructorCall(c *ast.CallExpr, cls *types.ClassType) lir.Value {
	cs := e.ctx.Globals.ClassSymbolFor(cls)
	st := e.classStructs[cls.Name]
	inst := e.b.CreateAlloca(cls.Name+".instance", st)

	rcAddr := e.b.CreateGetFieldPtr(inst, 0, lir.I32)
	e.b.CreateStore(rcAddr, e.b.ConstI32(1))

	if cs.Ctor != nil {
		argVals := e.emitArgs(c, cls.Name, c.Args, cs.Ctor.Type.Params)
		if fn := e.backendFuncs[cs.Ctor.Name]; fn != nil {
			fullArgs := append([]lir.Value{inst}, argVals...)
			e.b.CreateCall(fn, fullArgs)
		}
	} else if len(c.Args) > 0 {
		e.ctx.Diags.MismatchingArgCount(c.Pos(), cls.Name, 0, len(c.Args))
		for _, a := range c.Args {
			e.emitExpr(a.Value)
		}
	}

	c.SetResolvedType(cls)
	return inst
}

// emitFieldAccess is half of spec.md §4.7's "Field access / method call"
// rule: `obj.field` as a value.
func (e *Emitter) emitFieldAccess(f *ast.FieldAccessExpr) lir.Value {
	objVal := e.emitExpr(f.Obj)
	objType := f.Obj.ResolvedType()
	cls, ok := objType.(*types.ClassType)
	if !ok {
		if objType != types.ERROR {
			e.ctx.Diags.CannotConvert(f.Pos(), objType.String(), "class")
		}
		f.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
	field, ok := cls.Field(f.Member)
	if !ok || !e.accessible(cls, field.Access) {
		e.ctx.Diags.UnknownIdent(f.Pos(), f.Member)
		f.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
	f.SetResolvedType(field.Type)
	addr := e.b.CreateGetFieldPtr(objVal, field.Index+1, e.toBackendType(field.Type))
	return e.b.CreateLoad(addr)
}

// emitMethodCall is the other half: `obj.method(args...)`.
func (e *Emitter) emitMethodCall(m *ast.MethodCallExpr) lir.Value {
	objVal := e.emitExpr(m.Obj)
	objType := m.Obj.ResolvedType()
	cls, ok := objType.(*types.ClassType)
	if !ok {
		if objType != types.ERROR {
			e.ctx.Diags.CannotConvert(m.Pos(), objType.String(), "class")
		}
		m.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
	cs := e.ctx.Globals.ClassSymbolFor(cls)
	sym, ok := cs.Methods[m.Member]
	if !ok {
		e.ctx.Diags.UnknownIdent(m.Pos(), m.Member)
		m.SetResolvedType(types.ERROR)
		return e.errorValue()
	}
	if !e.accessible(cls, int(sym.Access)) {
		e.ctx.Diags.UnknownIdent(m.Pos(), m.Member)
		m.SetResolvedType(types.ERROR)
		return e.errorValue()
	}

	argVals := e.emitArgs(m, cls.Name+"."+m.Member, m.Args, sym.Type.Params)
	m.SetResolvedType(sym.Type.Return)

	fn := e.backendFuncs[sym.Name]
	if fn == nil {
		return e.errorValue()
	}
	fullArgs := append([]lir.Value{objVal}, argVals...)
	return e.b.CreateCall(fn, fullArgs)
}
