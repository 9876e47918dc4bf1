package lir

// Builder issues instructions into one Function at a time, tracking the
// current insertion block and the function's hidden alloca insertion
// point. It is the sole way to mutate a Module once created, mirroring the
// teacher/original's "emitter drives an opaque IR builder" contract
// (spec.md §6.3).
type Builder struct {
	mod *Module

	fn  *Function
	cur *Block
}

// NewBuilder creates a Builder that will populate mod.
func NewBuilder(mod *Module) *Builder { return &Builder{mod: mod} }

// ids returns the id sequence shared with mod, so every Value across the
// module (parameters included) gets a distinct id.
func (b *Builder) ids() *idSeq { return &b.mod.ids }

// StartFunction begins emitting fn's body: creates its entry block, sets
// it current, and resets the alloca insertion point to the top of that
// block.
func (b *Builder) StartFunction(fn *Function) *Block {
	b.fn = fn
	entry := newBlock("entry")
	fn.Blocks = append(fn.Blocks, entry)
	fn.allocaInsertBlock = entry
	fn.allocaInsertIdx = 0
	b.cur = entry
	return entry
}

// NewBlock creates a new, not-yet-current block appended to the current
// function.
func (b *Builder) NewBlock(label string) *Block {
	blk := newBlock(label)
	b.fn.Blocks = append(b.fn.Blocks, blk)
	return blk
}

// SetInsertPoint moves subsequent non-alloca instructions to blk.
func (b *Builder) SetInsertPoint(blk *Block) { b.cur = blk }

// Current returns the block currently receiving instructions.
func (b *Builder) Current() *Block { return b.cur }

func (b *Builder) append(i Instr) Instr {
	b.cur.Instrs = append(b.cur.Instrs, i)
	return i
}

// CreateAlloca reserves a stack slot for elem at the function's alloca
// insertion point — always the top of the entry block, never the current
// block — per spec.md §4.7's allocation discipline.
func (b *Builder) CreateAlloca(name string, elem DataType) *Alloca {
	a := &Alloca{id: b.ids().alloc(), Name: name, Elem: elem}
	entry := b.fn.allocaInsertBlock
	idx := b.fn.allocaInsertIdx
	entry.Instrs = append(entry.Instrs, nil)
	copy(entry.Instrs[idx+1:], entry.Instrs[idx:])
	entry.Instrs[idx] = a
	b.fn.allocaInsertIdx++
	return a
}

func (b *Builder) CreateLoad(addr Value) *Load {
	l := &Load{id: b.ids().alloc(), Addr: addr}
	b.append(l)
	return l
}

func (b *Builder) CreateStore(addr, val Value) *Store {
	s := &Store{Addr: addr, Val: val}
	b.append(s)
	return s
}

func (b *Builder) CreateBinOp(op BinOpKind, lhs, rhs Value) *BinOp {
	v := &BinOp{id: b.ids().alloc(), Op: op, Lhs: lhs, Rhs: rhs}
	b.append(v)
	return v
}

func (b *Builder) CreateNeg(operand Value) *Neg {
	v := &Neg{id: b.ids().alloc(), Operand: operand}
	b.append(v)
	return v
}

func (b *Builder) CreateICmp(pred ICmpPred, lhs, rhs Value) *ICmp {
	v := &ICmp{id: b.ids().alloc(), Pred: pred, Lhs: lhs, Rhs: rhs}
	b.append(v)
	return v
}

// CreateGetFieldPtr computes the address of field index (0-based, already
// offset past the refcount word by the caller) of base.
func (b *Builder) CreateGetFieldPtr(base Value, index int, elem DataType) *GetFieldPtr {
	v := &GetFieldPtr{id: b.ids().alloc(), Base: base, Index: index, Elem: elem}
	b.append(v)
	return v
}

func (b *Builder) CreateCall(callee *Function, args []Value) *Call {
	v := &Call{id: b.ids().alloc(), Callee: callee, Args: args}
	b.append(v)
	return v
}

func (b *Builder) CreatePhi(typ DataType, edges []PhiEdge) *Phi {
	v := &Phi{id: b.ids().alloc(), Typ: typ, Edges: edges}
	b.append(v)
	return v
}

// CreateBr terminates the current block with an unconditional branch.
func (b *Builder) CreateBr(target *Block) {
	b.cur.Term = &Br{Target: target}
}

// CreateCondBr terminates the current block with a conditional branch.
func (b *Builder) CreateCondBr(cond Value, then, els *Block) {
	b.cur.Term = &CondBr{Cond: cond, Then: then, Else: els}
}

// CreateRet terminates the current block by returning val.
func (b *Builder) CreateRet(val Value) {
	b.cur.Term = &Ret{Val: val}
}

// CreateRetVoid terminates the current block with a void return.
func (b *Builder) CreateRetVoid() {
	b.cur.Term = RetVoid{}
}

// CreateUnreachable terminates the current block as unreachable.
func (b *Builder) CreateUnreachable() {
	b.cur.Term = Unreachable{}
}

// ConstI32 yields a 32-bit integer constant.
func (b *Builder) ConstI32(v int32) *ConstInt {
	return &ConstInt{id: b.ids().alloc(), Typ: I32, Val: int64(v)}
}

// ConstBool yields a 1-bit boolean constant.
func (b *Builder) ConstBool(v bool) *ConstInt {
	var iv int64
	if v {
		iv = 1
	}
	return &ConstInt{id: b.ids().alloc(), Typ: I1, Val: iv}
}
