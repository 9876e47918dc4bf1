package lexer

import (
	"testing"

	"github.com/cwbudde/slc/internal/diag"
)

func TestNextToken(t *testing.T) {
	input := `func add(a: Int, b: Int) -> Int {
	return a + b;
}`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{FUNC, "func"},
		{IDENT, "add"},
		{LPAREN, "("},
		{IDENT, "a"},
		{COLON, ":"},
		{INT_TYPE, "Int"},
		{COMMA, ","},
		{IDENT, "b"},
		{COLON, ":"},
		{INT_TYPE, "Int"},
		{RPAREN, ")"},
		{ARROW, "->"},
		{INT_TYPE, "Int"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{IDENT, "a"},
		{PLUS, "+"},
		{IDENT, "b"},
		{SEMI, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	}

	l := New("<test>", input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "let var self class public private external init deinit Bool Int Void true false if else return"
	expected := []TokenType{
		LET, VAR, SELF, CLASS, PUBLIC, PRIVATE, EXTERNAL, INIT,
		IDENT, BOOL_TYPE, INT_TYPE, VOID_TYPE, TRUE, FALSE, IF, ELSE, RETURN, EOF,
	}
	l := New("<test>", input)
	for i, want := range expected {
		tok := l.Next()
		if tok.Type != want {
			t.Fatalf("token[%d]: expected %s, got %s (literal=%q)", i, want, tok.Type, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "== != <= >= < > && || ! ?"
	expected := []TokenType{EQ, NOT_EQ, LE, GE, LT, GT, AND, OR, BANG, QUESTION, EOF}
	l := New("<test>", input)
	for i, want := range expected {
		tok := l.Next()
		if tok.Type != want {
			t.Fatalf("token[%d]: expected %s, got %s", i, want, tok.Type)
		}
	}
}

func TestPositionTracking(t *testing.T) {
	input := "let\nx = 1;"
	l := New("f.slc", input)

	tok := l.Next() // "let"
	if tok.Pos.Line != 1 || tok.Pos.Column != 1 {
		t.Fatalf("let: expected 1:1, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}

	tok = l.Next() // "x"
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Fatalf("x: expected 2:1, got %d:%d", tok.Pos.Line, tok.Pos.Column)
	}
}

func TestIllegalCharReportsDiagnostic(t *testing.T) {
	diags := diag.NewBag()
	l := New("<test>", "let x = @;", WithDiagnostics(diags))

	for {
		tok := l.Next()
		if tok.Type == EOF {
			break
		}
	}

	if diags.CountOf(diag.UnknownChar) != 1 {
		t.Fatalf("expected exactly one UnknownChar diagnostic, got %d", diags.CountOf(diag.UnknownChar))
	}
}
