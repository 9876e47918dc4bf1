package semantic

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/types"
)

// VarSymbol is a global (top-level) variable binding.
type VarSymbol struct {
	Type   types.Type
	Access ast.Access
	Decl   *ast.GlobalVarDecl
}

// FuncSymbol is any callable global entity: a free function, an external
// function, a constructor, a method, or a destructor. Decl carries enough
// of the original AST node for the emitter to find the body (nil for a
// destructor's synthetic "no value" case is never needed — every
// FuncSymbol stands for something the emitter can visit).
type FuncSymbol struct {
	Name    string
	Type    *types.FunctionType
	Access  ast.Access
	Decl    ast.Node
	Defined bool // set for every registered symbol; a redeclaration reported as FuncAlreadyDefined is not registered at all
}

// ClassSymbol groups the ctor/destructor/methods the Function Resolver
// (Pass B) discovers for one class, per spec.md §3's Global scope model
// ("class -> (ctor, access)", "class -> destructor", "(class, name) ->
// (method type, value, access)").
type ClassSymbol struct {
	Class      *types.ClassType
	Ctor       *FuncSymbol
	Destructor *FuncSymbol
	Methods    map[string]*FuncSymbol
}

// GlobalScope is the Function Resolver's output: every name reachable
// without walking a function body, per spec.md §3's "Global scope" model.
type GlobalScope struct {
	Vars    map[string]*VarSymbol
	Funcs   map[string]*FuncSymbol
	Classes map[string]*ClassSymbol
}

func NewGlobalScope() *GlobalScope {
	return &GlobalScope{
		Vars:    make(map[string]*VarSymbol),
		Funcs:   make(map[string]*FuncSymbol),
		Classes: make(map[string]*ClassSymbol),
	}
}

// ClassSymbolFor returns (creating if necessary) the ClassSymbol tracking
// cls's ctor/destructor/methods.
func (g *GlobalScope) ClassSymbolFor(cls *types.ClassType) *ClassSymbol {
	if cs, ok := g.Classes[cls.Name]; ok {
		return cs
	}
	cs := &ClassSymbol{Class: cls, Methods: make(map[string]*FuncSymbol)}
	g.Classes[cls.Name] = cs
	return cs
}
