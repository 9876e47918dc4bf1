package lir

import (
	"fmt"
	"io"
)

// Dump writes a human-readable textual rendering of the module to w, one
// function per line group, grounded on the teacher's bytecode.Disassembler
// (internal/bytecode/disassembler.go): a flat instruction-by-instruction
// writer-based dump used purely for driver/test output, never re-parsed.
func (m *Module) Dump(w io.Writer) {
	for _, s := range m.Structs {
		fmt.Fprintf(w, "struct %s {\n", s.Name)
		for i, f := range s.Fields {
			fmt.Fprintf(w, "  %d: %s\n", i, f)
		}
		fmt.Fprintln(w, "}")
	}
	for _, fn := range m.Functions {
		fn.Dump(w)
	}
}

// Dump writes fn's signature and, if it has a body, its blocks in
// declaration order.
func (f *Function) Dump(w io.Writer) {
	fmt.Fprintf(w, "func %s(", f.Name)
	for i, p := range f.Params {
		if i > 0 {
			fmt.Fprint(w, ", ")
		}
		fmt.Fprintf(w, "%s: %s", p.Name, p.Typ)
	}
	fmt.Fprintf(w, ") -> %s", f.RetType)
	if len(f.Blocks) == 0 {
		fmt.Fprintln(w, " external")
		return
	}
	fmt.Fprintln(w, " {")
	for _, b := range f.Blocks {
		fmt.Fprintf(w, "%s:\n", b.Label)
		for _, instr := range b.Instrs {
			fmt.Fprintf(w, "  %s\n", instr)
		}
		if b.Term != nil {
			fmt.Fprintf(w, "  %s\n", b.Term)
		}
	}
	fmt.Fprintln(w, "}")
}
