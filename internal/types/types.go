// Package types implements the interned type system described in
// SPEC_FULL.md §3: types are compared by identity, singletons exist for the
// primitive kinds, and Function/Class types are created exactly once per
// distinct signature/declaration. Grounded on the teacher repo's
// internal/types package (API recovered from its test suite: a Type
// interface with TypeKind/String/Equals, package-level singleton vars for
// primitives) and cross-checked against original_source/src/ast/type.hpp's
// Type::Kind enum (ERROR, VOID, BOOL, INT, UNRESOLVED, FUNCTION, CLASS).
package types

import "strings"

// Type is implemented by every type variant. Types are compared by Go
// pointer identity (==), not by Equals, for primitives and interned
// Function/Class types; Equals is provided for completeness and for
// comparing structurally-described types before they are interned.
type Type interface {
	TypeKind() string
	String() string
	Equals(Type) bool
}

// primitive is a singleton type with no extra data: Error, Void, Bool, or
// Int32.
type primitive struct {
	kind string
	name string
}

func (p *primitive) TypeKind() string { return p.kind }
func (p *primitive) String() string   { return p.name }
func (p *primitive) Equals(o Type) bool {
	op, ok := o.(*primitive)
	return ok && op == p
}

// The four primitive singletons. Two structurally identical primitives are
// always the same pointer because these are the only values of type
// *primitive that exist.
var (
	ERROR = &primitive{kind: "ERROR", name: "<error>"}
	VOID  = &primitive{kind: "VOID", name: "Void"}
	BOOL  = &primitive{kind: "BOOL", name: "Bool"}
	INT32 = &primitive{kind: "INT32", name: "Int"}
)

// IsValid reports whether t can be stored in a variable or passed as a
// value, i.e. it is neither Void nor Error.
func IsValid(t Type) bool {
	return t != VOID && t != ERROR
}

// UnresolvedType names a type that hasn't been looked up yet. It resolves
// to exactly one underlying type (via the Interner) or remains an error.
type UnresolvedType struct {
	Name string
}

func (u *UnresolvedType) TypeKind() string { return "UNRESOLVED" }
func (u *UnresolvedType) String() string   { return u.Name }
func (u *UnresolvedType) Equals(o Type) bool {
	ou, ok := o.(*UnresolvedType)
	return ok && ou.Name == u.Name
}

// FunctionType describes a callable signature: its parameter types, return
// type, and (for constructors/methods) the implicit receiver type tracked
// separately from the source-level parameter list, per SPEC_FULL.md §4.5
// and §9's "Implicit self" design note.
type FunctionType struct {
	Params []Type
	Return Type
	Self   *ClassType // non-nil for constructors and methods
	IsCtor bool
}

func (f *FunctionType) TypeKind() string { return "FUNCTION" }

func (f *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(f.Return.String())
	return sb.String()
}

func (f *FunctionType) Equals(o Type) bool {
	of, ok := o.(*FunctionType)
	if !ok || of.Return != f.Return || of.IsCtor != f.IsCtor || of.Self != f.Self {
		return false
	}
	if len(of.Params) != len(f.Params) {
		return false
	}
	for i := range f.Params {
		if f.Params[i] != of.Params[i] {
			return false
		}
	}
	return true
}

// HasSelf reports whether this function type is a method or constructor.
func (f *FunctionType) HasSelf() bool { return f.Self != nil }

// BackendParams returns the parameter types as seen by the backend: with
// the implicit self parameter prepended for constructors/methods.
func (f *FunctionType) BackendParams() []Type {
	if f.Self == nil {
		return f.Params
	}
	out := make([]Type, 0, len(f.Params)+1)
	out = append(out, f.Self)
	out = append(out, f.Params...)
	return out
}

// Field describes one field of a ClassType: its type, its 0-based index in
// declaration order (which is also the backend struct field index, offset
// by the reference count header — see SPEC_FULL.md §6.3), and its access
// specifier.
type Field struct {
	Type   Type
	Index  int
	Access int // mirrors ast.Access without importing ast (would cycle)
}

// ClassType represents a user-defined reference-counted class. Exactly one
// ClassType identity is created per source class declaration (by the
// Interner), matching spec.md's class-identity invariant.
type ClassType struct {
	Name   string
	Fields map[string]Field
	Access int // mirrors ast.Access without importing ast (would cycle)

	// fieldOrder preserves declaration order for backend struct layout.
	fieldOrder []string
}

func (c *ClassType) TypeKind() string   { return "CLASS" }
func (c *ClassType) String() string     { return c.Name }
func (c *ClassType) Equals(o Type) bool { return o == Type(c) }

// Field looks up a field by name, returning (field, true) if it exists.
func (c *ClassType) Field(name string) (Field, bool) {
	f, ok := c.Fields[name]
	return f, ok
}

// AddField registers a field in declaration order. Returns false if name is
// already a field of this class.
func (c *ClassType) AddField(name string, typ Type, access int) bool {
	if c.Fields == nil {
		c.Fields = make(map[string]Field)
	}
	if _, exists := c.Fields[name]; exists {
		return false
	}
	idx := len(c.fieldOrder)
	c.Fields[name] = Field{Type: typ, Index: idx, Access: access}
	c.fieldOrder = append(c.fieldOrder, name)
	return true
}

// FieldOrder returns field names in declaration order, which is also
// backend struct-field order (see SPEC_FULL.md §6.3).
func (c *ClassType) FieldOrder() []string { return c.fieldOrder }
