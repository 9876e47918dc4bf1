// Package ast defines the Abstract Syntax Tree node types for the source
// language, grounded on the teacher repo's internal/ast package: an
// interface hierarchy (Node/Expression/Statement/Decl) with one concrete
// struct per node kind, rather than a single generic tagged Node struct
// (contrast the other pack repo hhramberg-go-vslc's ir.Node). This resolves
// SPEC_FULL.md's "two overlapping AST hierarchies" open question in favor
// of exactly one, class-aware, hierarchy — see DESIGN.md.
package ast

import (
	"github.com/cwbudde/slc/internal/lexer"
	"github.com/cwbudde/slc/internal/types"
)

// Node is the base interface every AST node implements.
type Node interface {
	Pos() lexer.Position
}

// Expression is any node that produces a value. ResolvedType is set by the
// emitter and is non-nil after emission for every expression node that was
// visited, per invariant 2 in SPEC_FULL.md §8.
type Expression interface {
	Node
	expressionNode()
	ResolvedType() types.Type
	SetResolvedType(types.Type)
}

// Statement is a node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
}

// Decl is a top-level (or class-member) declaration.
type Decl interface {
	Node
	declNode()
}

// Access is the access specifier attached to a declaration or class member.
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessPrivate
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessPrivate:
		return "private"
	default:
		return ""
	}
}

// exprBase is embedded by every Expression implementation to provide the
// ResolvedType bookkeeping uniformly.
type exprBase struct {
	pos lexer.Position
	typ types.Type
}

func (e *exprBase) Pos() lexer.Position          { return e.pos }
func (e *exprBase) ResolvedType() types.Type      { return e.typ }
func (e *exprBase) SetResolvedType(t types.Type)  { e.typ = t }
func (e *exprBase) expressionNode()               {}

// Context is the single owner of every AST node and of the type interner
// for one compilation, per SPEC_FULL.md §3's "AST Context" and §5's
// ownership rules. All references between nodes are back/forward
// references within this one owner; Go's garbage collector, not an arena
// allocator, reclaims them once the Context itself is dropped.
type Context struct {
	Interner *types.Interner

	// Declarations holds the top-level declarations in source order.
	Declarations []Decl
}

// NewContext creates an empty Context with its own type interner.
func NewContext() *Context {
	return &Context{Interner: types.NewInterner()}
}

// AddDecl appends a top-level declaration, preserving source order.
func (c *Context) AddDecl(d Decl) {
	c.Declarations = append(c.Declarations, d)
}
