package lir

// Function is one function/method/constructor/destructor lowered to the
// structural IR: its parameter list, return type, and basic blocks.
type Function struct {
	Name    string
	Params  []*Param
	RetType DataType
	Blocks  []*Block

	// allocaInsertBlock/allocaInsertIdx is the hidden "alloca insertion
	// point": every CreateAlloca call on this function's Builder inserts
	// just before this index in the entry block, regardless of which
	// block is current, per spec.md §4.7's allocation discipline.
	allocaInsertBlock *Block
	allocaInsertIdx   int
}

// Entry returns the function's entry block (its first block).
func (f *Function) Entry() *Block {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}
