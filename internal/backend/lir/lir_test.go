package lir

import "testing"

// Every block must end in exactly one terminator once a function is fully
// emitted (testable property 5 of SPEC_FULL.md §8).
func TestBlockAlwaysTerminated(t *testing.T) {
	mod := NewModule("m")
	fn := mod.DeclareFunction("f", nil, Void)
	b := NewBuilder(mod)
	entry := b.StartFunction(fn)

	if entry.Terminated() {
		t.Fatalf("freshly started entry block should not be terminated yet")
	}
	b.CreateRetVoid()
	if !entry.Terminated() {
		t.Fatalf("expected entry block to be terminated after CreateRetVoid")
	}
}

// Every CreateAlloca call lands at a single tracked index at the top of the
// entry block, regardless of the current insertion block.
func TestAllocaAlwaysEntersAtEntryBlockTop(t *testing.T) {
	mod := NewModule("m")
	fn := mod.DeclareFunction("f", nil, Void)
	b := NewBuilder(mod)
	entry := b.StartFunction(fn)

	other := b.NewBlock("other")
	b.SetInsertPoint(other)
	first := b.CreateAlloca("y", I32) // issued while "other" is current...
	b.SetInsertPoint(entry)
	second := b.CreateAlloca("x", I32)

	if len(entry.Instrs) != 2 {
		t.Fatalf("expected 2 allocas in entry block, got %d", len(entry.Instrs))
	}
	if entry.Instrs[0].(*Alloca) != first {
		t.Fatalf("expected y's alloca first, despite being issued while 'other' was current")
	}
	if entry.Instrs[1].(*Alloca) != second {
		t.Fatalf("expected x's alloca second")
	}
	if len(other.Instrs) != 0 {
		t.Fatalf("expected no instructions in the 'other' block; got %d", len(other.Instrs))
	}
}

func TestGetFieldPtrOffsetsPastRefcount(t *testing.T) {
	mod := NewModule("m")
	st := NewClassStruct("C", []DataType{I32, I32})
	mod.DeclareStruct(st)
	fn := mod.DeclareFunction("f", []ParamSpec{{Name: "self", Typ: Ptr(st)}}, Void)
	b := NewBuilder(mod)
	b.StartFunction(fn)

	fieldPtr := b.CreateGetFieldPtr(fn.Params[0], 1, I32)
	if fieldPtr.Index != 1 {
		t.Fatalf("expected field index 1 (past the refcount word), got %d", fieldPtr.Index)
	}
	if _, ok := fieldPtr.DataType().(PtrType); !ok {
		t.Fatalf("expected GetFieldPtr's DataType to be a pointer, got %T", fieldPtr.DataType())
	}
}

func TestClassStructLayoutHasLeadingRefcount(t *testing.T) {
	st := NewClassStruct("C", []DataType{I32, I1})
	if len(st.Fields) != 3 {
		t.Fatalf("expected refcount + 2 fields = 3, got %d", len(st.Fields))
	}
	if st.Fields[0] != DataType(I32) {
		t.Fatalf("expected leading refcount field to be i32, got %s", st.Fields[0])
	}
}
