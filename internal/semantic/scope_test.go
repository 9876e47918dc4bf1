package semantic

import (
	"testing"

	"github.com/cwbudde/slc/internal/types"
)

func TestScopeStackInsertAndLookup(t *testing.T) {
	s := NewScopeStack()
	if !s.Empty() {
		t.Fatalf("expected a fresh stack to be empty")
	}

	s.Enter()
	if !s.Insert("x", Binding{Type: types.INT32}) {
		t.Fatalf("expected first insert of x to succeed")
	}
	if s.Insert("x", Binding{Type: types.BOOL}) {
		t.Fatalf("expected re-inserting x in the same frame to fail")
	}

	b, ok := s.Lookup("x")
	if !ok || b.Type != types.INT32 {
		t.Fatalf("expected to find x:Int, got %+v (ok=%v)", b, ok)
	}

	s.Exit()
	if !s.Empty() {
		t.Fatalf("expected the stack to be empty after exiting the last frame")
	}
	if _, ok := s.Lookup("x"); ok {
		t.Fatalf("expected x to be gone after Exit")
	}
}

func TestScopeStackShadowingInnermostWins(t *testing.T) {
	s := NewScopeStack()
	s.Enter()
	s.Insert("x", Binding{Type: types.INT32})
	s.Enter()
	s.Insert("x", Binding{Type: types.BOOL})

	b, ok := s.Lookup("x")
	if !ok || b.Type != types.BOOL {
		t.Fatalf("expected the inner frame's x:Bool to shadow the outer, got %+v", b)
	}

	s.Exit()
	b, ok = s.Lookup("x")
	if !ok || b.Type != types.INT32 {
		t.Fatalf("expected the outer x:Int after exiting the inner frame, got %+v", b)
	}
}

func TestScopeStackReturnTypeClearedOnExit(t *testing.T) {
	s := NewScopeStack()
	s.Enter()
	s.SetReturnType(types.INT32)
	if s.ReturnType() != types.INT32 {
		t.Fatalf("expected return type Int, got %s", s.ReturnType())
	}
	s.Exit()
	if s.ReturnType() != nil {
		t.Fatalf("expected return type to be cleared after exiting the last frame, got %s", s.ReturnType())
	}
}

func TestGlobalScopeClassSymbolForCreatesOnce(t *testing.T) {
	g := NewGlobalScope()
	ct := &types.ClassType{Name: "Counter"}

	cs1 := g.ClassSymbolFor(ct)
	cs2 := g.ClassSymbolFor(ct)
	if cs1 != cs2 {
		t.Fatalf("expected ClassSymbolFor to return the same ClassSymbol on repeated calls")
	}
	if cs1.Methods == nil {
		t.Fatalf("expected Methods map to be initialized")
	}
}
