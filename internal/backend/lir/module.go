package lir

// Module is the structural IR produced for one compilation: every
// function and struct type the emitter declared against it.
type Module struct {
	Name      string
	Functions []*Function
	Structs   []StructType

	ids idSeq
}

// NewModule creates an empty module named name.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// ParamSpec names and types one function parameter for DeclareFunction.
type ParamSpec struct {
	Name string
	Typ  DataType
}

// DeclareFunction adds a new, body-less Function to the module and returns
// it; the Builder fills in its blocks via StartFunction.
func (m *Module) DeclareFunction(name string, params []ParamSpec, ret DataType) *Function {
	ps := make([]*Param, len(params))
	for i, spec := range params {
		ps[i] = &Param{id: m.ids.alloc(), Name: spec.Name, Typ: spec.Typ}
	}
	fn := &Function{Name: name, Params: ps, RetType: ret}
	m.Functions = append(m.Functions, fn)
	return fn
}

// DeclareStruct registers a class's backend layout with the module.
func (m *Module) DeclareStruct(s StructType) {
	m.Structs = append(m.Structs, s)
}

// FindFunction looks up a previously declared function by name.
func (m *Module) FindFunction(name string) (*Function, bool) {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}
