package ast

import "github.com/cwbudde/slc/internal/lexer"

// TypeExpr is a type as written in source: a bare identifier naming either
// a primitive keyword (Bool, Int, Void) or a class name. Resolving it to an
// interned types.Type is the Type Resolver's job, not the parser's.
type TypeExpr struct {
	Name string
	pos  lexer.Position
}

func (t *TypeExpr) Pos() lexer.Position { return t.pos }

func NewTypeExpr(name string, pos lexer.Position) *TypeExpr {
	return &TypeExpr{Name: name, pos: pos}
}

// Param is one function/method/constructor parameter.
type Param struct {
	Name string
	Type *TypeExpr
	Pos  lexer.Position
}

// FunctionDecl is a free function with a body.
type FunctionDecl struct {
	Name       string
	Params     []Param
	ReturnType *TypeExpr
	Body       *Block
	Access     Access
	pos        lexer.Position
}

func (f *FunctionDecl) Pos() lexer.Position { return f.pos }
func (f *FunctionDecl) declNode()           {}

func NewFunctionDecl(pos lexer.Position, access Access, name string, params []Param, ret *TypeExpr, body *Block) *FunctionDecl {
	return &FunctionDecl{Name: name, Params: params, ReturnType: ret, Body: body, Access: access, pos: pos}
}

// ExtFunctionDecl is an externally linked function: it has a declared
// signature and a linkage name, but no body known to this compilation.
type ExtFunctionDecl struct {
	Name         string
	Params       []Param
	ReturnType   *TypeExpr
	ExternalName string
	Access       Access
	pos          lexer.Position
}

func (f *ExtFunctionDecl) Pos() lexer.Position { return f.pos }
func (f *ExtFunctionDecl) declNode()           {}

func NewExtFunctionDecl(pos lexer.Position, access Access, name string, params []Param, ret *TypeExpr, externalName string) *ExtFunctionDecl {
	return &ExtFunctionDecl{Name: name, Params: params, ReturnType: ret, ExternalName: externalName, Access: access, pos: pos}
}

// GlobalVarDecl is a top-level mutable or immutable binding.
type GlobalVarDecl struct {
	Name    string
	Type    *TypeExpr // nil if elided; inferred from Init
	Init    Expression
	IsConst bool
	Access  Access
	pos     lexer.Position
}

func (g *GlobalVarDecl) Pos() lexer.Position { return g.pos }
func (g *GlobalVarDecl) declNode()           {}

func NewGlobalVarDecl(pos lexer.Position, access Access, name string, typ *TypeExpr, init Expression, isConst bool) *GlobalVarDecl {
	return &GlobalVarDecl{Name: name, Type: typ, Init: init, IsConst: isConst, Access: access, pos: pos}
}

// FieldDecl is one field of a class.
type FieldDecl struct {
	Name   string
	Type   *TypeExpr
	Access Access
	pos    lexer.Position
}

func (f *FieldDecl) Pos() lexer.Position { return f.pos }

func NewFieldDecl(pos lexer.Position, name string, typ *TypeExpr, access Access) *FieldDecl {
	return &FieldDecl{Name: name, Type: typ, Access: access, pos: pos}
}

// CtorDecl is a class constructor (the `init` member).
type CtorDecl struct {
	Params []Param
	Body   *Block
	Access Access
	pos    lexer.Position
}

func (c *CtorDecl) Pos() lexer.Position { return c.pos }

func NewCtorDecl(pos lexer.Position, params []Param, body *Block, access Access) *CtorDecl {
	return &CtorDecl{Params: params, Body: body, Access: access, pos: pos}
}

// MethodDecl is a class method (a function without the external form).
type MethodDecl struct {
	Name       string
	Params     []Param
	ReturnType *TypeExpr
	Body       *Block
	Access     Access
	pos        lexer.Position
}

func (m *MethodDecl) Pos() lexer.Position { return m.pos }

func NewMethodDecl(pos lexer.Position, name string, params []Param, ret *TypeExpr, body *Block, access Access) *MethodDecl {
	return &MethodDecl{Name: name, Params: params, ReturnType: ret, Body: body, Access: access, pos: pos}
}

// DestructorDecl is a class destructor. Source syntax uses the contextual
// member name `deinit` (recognized by the parser, not reserved as a
// keyword) since spec.md names no dedicated token for it; the AST records
// it as its own node so it cannot be confused with an ordinary method
// during resolution.
type DestructorDecl struct {
	Body *Block
	pos  lexer.Position
}

func (d *DestructorDecl) Pos() lexer.Position { return d.pos }

func NewDestructorDecl(pos lexer.Position, body *Block) *DestructorDecl {
	return &DestructorDecl{Body: body, pos: pos}
}

// ClassDecl is a user-defined reference-counted class declaration.
type ClassDecl struct {
	Name        string
	Fields      []*FieldDecl
	Ctor        *CtorDecl
	Methods     []*MethodDecl
	Destructor  *DestructorDecl
	Access      Access
	pos         lexer.Position
}

func (c *ClassDecl) Pos() lexer.Position { return c.pos }
func (c *ClassDecl) declNode()           {}

func NewClassDecl(pos lexer.Position, access Access, name string) *ClassDecl {
	return &ClassDecl{Name: name, Access: access, pos: pos}
}
