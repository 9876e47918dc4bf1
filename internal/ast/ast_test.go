package ast

import (
	"testing"

	"github.com/cwbudde/slc/internal/lexer"
	"github.com/cwbudde/slc/internal/types"
)

func TestExpressionResolvedTypeRoundTrips(t *testing.T) {
	id := NewIdent(lexer.Position{Line: 1, Column: 1}, "x")
	if id.ResolvedType() != nil {
		t.Fatalf("expected a freshly parsed ident to have no resolved type yet")
	}
	id.SetResolvedType(types.INT32)
	if id.ResolvedType() != types.INT32 {
		t.Fatalf("expected resolved type to stick after SetResolvedType")
	}
}

func TestAccessStringer(t *testing.T) {
	cases := map[Access]string{
		AccessNone:    "",
		AccessPublic:  "public",
		AccessPrivate: "private",
	}
	for access, want := range cases {
		if got := access.String(); got != want {
			t.Fatalf("Access(%d).String() = %q, want %q", access, got, want)
		}
	}
}

func TestContextAddDeclPreservesSourceOrder(t *testing.T) {
	ctx := NewContext()
	f1 := NewFunctionDecl(lexer.Position{}, AccessNone, "a", nil, nil, nil)
	f2 := NewFunctionDecl(lexer.Position{}, AccessNone, "b", nil, nil, nil)
	ctx.AddDecl(f1)
	ctx.AddDecl(f2)

	if len(ctx.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(ctx.Declarations))
	}
	if ctx.Declarations[0] != Decl(f1) || ctx.Declarations[1] != Decl(f2) {
		t.Fatalf("expected declarations to preserve insertion order")
	}
}

func TestLiteralBitWidthDistinguishesBoolFromInt(t *testing.T) {
	i := NewIntLiteral(lexer.Position{}, 42)
	if i.BitWidth != 32 || i.IntValue != 42 {
		t.Fatalf("unexpected int literal: %+v", i)
	}
	b := NewBoolLiteral(lexer.Position{}, true)
	if b.BitWidth != 1 || !b.BoolValue {
		t.Fatalf("unexpected bool literal: %+v", b)
	}
}
