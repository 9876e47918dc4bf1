package lir

import "fmt"

// Value is anything an instruction can reference as an operand: another
// instruction's result, a constant, a block parameter, or a phi.
// Grounded on the *other* pack repo's ir.Value interface (Id/Type/String),
// trimmed of its hardware-register bookkeeping since this IR never reaches
// a real machine backend.
type Value interface {
	ID() int
	DataType() DataType
	String() string
}

// ConstInt is an integer constant of a given width (I1 or I32).
type ConstInt struct {
	id  int
	Typ DataType
	Val int64
}

func (c *ConstInt) ID() int          { return c.id }
func (c *ConstInt) DataType() DataType { return c.Typ }
func (c *ConstInt) String() string   { return fmt.Sprintf("%s %d", c.Typ, c.Val) }

// Param is a function parameter, referenced as a value inside the body.
type Param struct {
	id   int
	Name string
	Typ  DataType
}

func (p *Param) ID() int          { return p.id }
func (p *Param) DataType() DataType { return p.Typ }
func (p *Param) String() string   { return fmt.Sprintf("%%%s", p.Name) }

// idSeq assigns monotonically increasing ids to every Value a Builder
// creates, scoped to that Builder's Module (ids are never reused).
type idSeq struct{ next int }

func (s *idSeq) alloc() int {
	id := s.next
	s.next++
	return id
}
