// Package parser implements the hand-written recursive-descent, Pratt-style
// expression parser for the source language. It is grounded on the teacher
// repo's internal/parser package (TokenCursor lookahead, prefix/infix
// parse-function maps keyed by token type, expectPeek/peekError idiom) but
// does not use goyacc/yacc — spec.md §4.3 mandates hand-written recursive
// descent, which the teacher itself already is (the *other* pack repo,
// hhramberg-go-vslc, generates its parser with goyacc; that approach has no
// home here, see DESIGN.md).
package parser

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/diag"
	"github.com/cwbudde/slc/internal/lexer"
)

// Precedence levels, lowest to highest, matching spec.md §4.3's table.
const (
	_ int = iota
	LOWEST
	ASSIGN   // =            (right-assoc: recurses at prec-1)
	TERNARY  // ?:
	LOGICAL  // && ||
	EQUALITY // == !=
	RELATION // < <= > >=
	SUM      // + -
	PRODUCT  // * / %
	UNARY    // prefix - !
	CALL     // f(...), obj.member
)

var precedences = map[lexer.TokenType]int{
	lexer.ASSIGN:   ASSIGN,
	lexer.QUESTION: TERNARY,
	lexer.AND:      LOGICAL,
	lexer.OR:       LOGICAL,
	lexer.EQ:       EQUALITY,
	lexer.NOT_EQ:   EQUALITY,
	lexer.LT:       RELATION,
	lexer.LE:       RELATION,
	lexer.GT:       RELATION,
	lexer.GE:       RELATION,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.STAR:     PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.PERCENT:  PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.DOT:      CALL,
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser builds an AST from a token stream, reporting errors to a
// diag.Bag and recovering by producing a nil sub-tree so that a single
// parse reports every error it can find, per spec.md §4.3.
type Parser struct {
	cur            *TokenCursor
	diags          *diag.Bag
	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
	inFunctionBody bool
}

// New creates a Parser reading tokens from l and reporting into diags.
func New(l *lexer.Lexer, diags *diag.Bag) *Parser {
	p := &Parser{cur: NewTokenCursor(l), diags: diags}

	p.prefixParseFns = map[lexer.TokenType]prefixParseFn{
		lexer.IDENT:   p.parseIdent,
		lexer.INT:     p.parseIntLiteral,
		lexer.TRUE:    p.parseBoolLiteral,
		lexer.FALSE:   p.parseBoolLiteral,
		lexer.SELF:    p.parseSelf,
		lexer.MINUS:   p.parseUnary,
		lexer.BANG:    p.parseUnary,
		lexer.LPAREN:  p.parseGroupedExpr,
	}
	p.infixParseFns = map[lexer.TokenType]infixParseFn{
		lexer.PLUS:     p.parseBinary,
		lexer.MINUS:    p.parseBinary,
		lexer.STAR:     p.parseBinary,
		lexer.SLASH:    p.parseBinary,
		lexer.PERCENT:  p.parseBinary,
		lexer.EQ:       p.parseBinary,
		lexer.NOT_EQ:   p.parseBinary,
		lexer.LT:       p.parseBinary,
		lexer.LE:       p.parseBinary,
		lexer.GT:       p.parseBinary,
		lexer.GE:       p.parseBinary,
		lexer.AND:      p.parseBinary,
		lexer.OR:       p.parseBinary,
		lexer.ASSIGN:   p.parseAssign,
		lexer.QUESTION: p.parseTernary,
		lexer.LPAREN:   p.parseCall,
		lexer.DOT:      p.parseMemberAccess,
	}
	return p
}

func (p *Parser) tok() lexer.Token        { return p.cur.Current() }
func (p *Parser) peek(n int) lexer.Token  { return p.cur.Peek(n) }
func (p *Parser) advance()                { p.cur.Advance() }

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.tok().Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek(1).Type == t }

// expect advances past the current token if it matches t, reporting
// ExpectedButFound and returning false otherwise.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.diags.ExpectedButFound(p.tok().Pos, t.String(), p.tok().Type.String())
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.tok().Type]; ok {
		return pr
	}
	return LOWEST
}

// synchronize skips tokens until a likely statement/declaration boundary,
// so one malformed construct doesn't cascade into unrelated errors.
func (p *Parser) synchronize() {
	for !p.curIs(lexer.EOF) {
		if p.curIs(lexer.SEMI) {
			p.advance()
			return
		}
		switch p.tok().Type {
		case lexer.FUNC, lexer.LET, lexer.VAR, lexer.CLASS, lexer.RBRACE, lexer.PUBLIC, lexer.PRIVATE:
			return
		}
		p.advance()
	}
}

// ParseProgram parses an entire source file into a top-level declaration
// list, consuming tokens until EOF. It never returns an error value:
// problems are reported through the diag.Bag, per spec.md §4.1.
func (p *Parser) ParseProgram() []ast.Decl {
	var decls []ast.Decl
	for !p.curIs(lexer.EOF) {
		d := p.parseTopLevelDecl()
		if d != nil {
			decls = append(decls, d)
		} else {
			p.synchronize()
		}
	}
	return decls
}

// parseExpression is the Pratt-style precedence-climbing entry point.
// Assignment (the ASSIGN level) is right-associative: its infix handler
// recurses at prec-1, per spec.md §4.3.
func (p *Parser) parseExpression(prec int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.tok().Type]
	if !ok {
		p.diags.UnexpectedToken(p.tok().Pos, p.tok().Type.String())
		return nil
	}
	left := prefix()

	for !p.curIs(lexer.SEMI) && prec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.tok().Type]
		if !ok {
			return left
		}
		left = infix(left)
	}
	return left
}
