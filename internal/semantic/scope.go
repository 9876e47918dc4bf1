// Package semantic holds the global symbol table populated by Pass A/Pass
// B, and the per-function scope stack the emitter drives while walking a
// function body. Grounded on the teacher's internal/semantic package
// (NewEnclosedSymbolTable(outer) scope chaining, symbol_table.go's
// Define*/Lookup idiom), generalized into the explicit push/pop frame
// stack spec.md §4.6 requires.
package semantic

import "github.com/cwbudde/slc/internal/types"

// Binding is what a name resolves to inside a scope frame: its source
// type and an opaque storage handle the emitter attaches (a backend
// alloca, a function value, ...). The Scope Stack never interprets
// Handle; it only stores and returns it.
type Binding struct {
	Type   types.Type
	Handle interface{}
}

// frame is one push/pop level of the scope stack: a single flat name
// table. Insert only ever touches the top frame.
type frame struct {
	names map[string]Binding
}

func newFrame() *frame {
	return &frame{names: make(map[string]Binding)}
}

// ScopeStack is the emitter's per-function nested symbol table. The
// bottom frame of a function also carries its reserved return-type slot
// (see ReturnType/SetReturnType).
type ScopeStack struct {
	frames     []*frame
	returnType types.Type
}

// NewScopeStack creates an empty stack (Empty() is true until Enter is
// called).
func NewScopeStack() *ScopeStack {
	return &ScopeStack{}
}

// Empty reports whether no function has been entered (global scope).
func (s *ScopeStack) Empty() bool { return len(s.frames) == 0 }

// Enter pushes a new, empty frame.
func (s *ScopeStack) Enter() {
	s.frames = append(s.frames, newFrame())
}

// Exit pops the top frame. Exiting the last frame clears the reserved
// return-type slot.
func (s *ScopeStack) Exit() {
	s.frames = s.frames[:len(s.frames)-1]
	if len(s.frames) == 0 {
		s.returnType = nil
	}
}

// Insert writes name into the top frame. It reports false (and does not
// insert) if name already exists in that frame — callers translate this
// into VarAlreadyDefined.
func (s *ScopeStack) Insert(name string, b Binding) bool {
	top := s.frames[len(s.frames)-1]
	if _, exists := top.names[name]; exists {
		return false
	}
	top.names[name] = b
	return true
}

// Lookup walks frames top-down and returns the innermost match.
func (s *ScopeStack) Lookup(name string) (Binding, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if b, ok := s.frames[i].names[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// SetReturnType records the enclosing function's declared return type in
// the reserved bottom-frame slot. Call once, right after the first Enter.
func (s *ScopeStack) SetReturnType(t types.Type) { s.returnType = t }

// ReturnType returns the enclosing function's declared return type.
func (s *ScopeStack) ReturnType() types.Type { return s.returnType }
