package types

// Interner canonicalizes types so that structurally identical Function
// types share one identity and each Class type is created exactly once per
// source declaration, per the invariants in SPEC_FULL.md §3. Type interning
// is monotonic: types are added, never removed, for the lifetime of the
// owning ast.Context.
type Interner struct {
	classes   map[string]*ClassType
	functions []*FunctionType
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{classes: make(map[string]*ClassType)}
}

// DeclareClass creates a new, empty ClassType for name and registers it.
// Returns (nil, false) if name is already declared as a class.
func (in *Interner) DeclareClass(name string) (*ClassType, bool) {
	if _, exists := in.classes[name]; exists {
		return nil, false
	}
	ct := &ClassType{Name: name, Fields: make(map[string]Field)}
	in.classes[name] = ct
	return ct, true
}

// LookupClass returns the previously-declared ClassType for name, if any.
func (in *Interner) LookupClass(name string) (*ClassType, bool) {
	ct, ok := in.classes[name]
	return ct, ok
}

// InternFunction returns the canonical *FunctionType for the given shape,
// creating and registering one the first time a given shape is seen. Two
// FunctionType values with identical Params/Return/Self/IsCtor always
// resolve to the same pointer afterward.
func (in *Interner) InternFunction(params []Type, ret Type, self *ClassType, isCtor bool) *FunctionType {
	candidate := &FunctionType{Params: params, Return: ret, Self: self, IsCtor: isCtor}
	for _, existing := range in.functions {
		if existing.Equals(candidate) {
			return existing
		}
	}
	in.functions = append(in.functions, candidate)
	return candidate
}

// Resolve follows an UnresolvedType to its underlying type by looking it up
// as a primitive keyword, then as a class name. Returns ERROR (never nil)
// when the name resolves to nothing, per the "Unresolved resolves to
// exactly one underlying type or remains an error" invariant.
func (in *Interner) Resolve(u *UnresolvedType) Type {
	switch u.Name {
	case "Void":
		return VOID
	case "Bool":
		return BOOL
	case "Int":
		return INT32
	}
	if ct, ok := in.classes[u.Name]; ok {
		return ct
	}
	return ERROR
}

// ResolveType resolves t if it is an *UnresolvedType, otherwise returns t
// unchanged. Convenience wrapper used throughout the resolver/emitter.
func (in *Interner) ResolveType(t Type) Type {
	if u, ok := t.(*UnresolvedType); ok {
		return in.Resolve(u)
	}
	return t
}

// ClassNames returns every declared class name in arbitrary (map) order.
// Callers that must produce deterministic output should instead walk the
// source decls for *ast.ClassDecl and look each one up individually.
func (in *Interner) ClassNames() []string {
	names := make([]string, 0, len(in.classes))
	for n := range in.classes {
		names = append(names, n)
	}
	return names
}
