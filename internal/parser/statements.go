package parser

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/lexer"
)

// parseBlock parses a brace-delimited statement sequence. Function
// declarations are rejected inside it (FuncInNestedScope), per spec.md §5's
// single-pass nested-function prohibition.
func (p *Parser) parseBlock() *ast.Block {
	pos := p.tok().Pos
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	var stmts []ast.Statement
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		s := p.parseStatement()
		if s != nil {
			stmts = append(stmts, s)
		} else {
			p.synchronize()
		}
	}
	p.expect(lexer.RBRACE)
	return ast.NewBlock(pos, stmts)
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.tok().Type {
	case lexer.SEMI:
		pos := p.tok().Pos
		p.advance()
		return ast.NewEmptyStmt(pos)
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.LET, lexer.VAR:
		return p.parseLocalVarStmt()
	case lexer.FUNC:
		p.diags.FuncInNestedScope(p.tok().Pos, p.peek(1).Literal)
		p.advance()
		return nil
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseIfStmt() ast.Statement {
	pos := p.tok().Pos
	p.advance() // consume 'if'
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	cond := p.parseExpression(LOWEST)
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	// An unbraced arm is a single statement, wrapped in its own block.
	var then *ast.Block
	if p.curIs(lexer.LBRACE) {
		then = p.parseBlock()
	} else if s := p.parseStatement(); s != nil {
		then = ast.NewBlock(s.Pos(), []ast.Statement{s})
	}
	var els *ast.Block
	if p.curIs(lexer.ELSE) {
		p.advance()
		if p.curIs(lexer.IF) {
			inner := p.parseIfStmt()
			if inner == nil {
				return nil
			}
			els = ast.NewBlock(inner.Pos(), []ast.Statement{inner})
		} else if p.curIs(lexer.LBRACE) {
			els = p.parseBlock()
		} else if s := p.parseStatement(); s != nil {
			els = ast.NewBlock(s.Pos(), []ast.Statement{s})
		}
	}
	if cond == nil || then == nil {
		return nil
	}
	return ast.NewIfStmt(pos, cond, then, els)
}

func (p *Parser) parseReturnStmt() ast.Statement {
	pos := p.tok().Pos
	p.advance() // consume 'return'
	if p.curIs(lexer.SEMI) {
		p.advance()
		return ast.NewReturnStmt(pos, nil)
	}
	val := p.parseExpression(LOWEST)
	p.expect(lexer.SEMI)
	return ast.NewReturnStmt(pos, val)
}

// parseLocalVarStmt parses `(let|var) ident (':' type)? ('=' expr)? ';'`.
// A declaration with neither a type nor an initializer is rejected by the
// emitter (InvalidVarType), not here.
func (p *Parser) parseLocalVarStmt() ast.Statement {
	pos := p.tok().Pos
	isConst := p.curIs(lexer.LET)
	p.advance() // consume 'let'/'var'

	nameTok := p.tok()
	if !p.expect(lexer.IDENT) {
		return nil
	}

	var typ *ast.TypeExpr
	if p.curIs(lexer.COLON) {
		p.advance()
		typ = p.parseTypeExpr()
	}

	var init ast.Expression
	if p.curIs(lexer.ASSIGN) {
		p.advance()
		init = p.parseExpression(LOWEST)
	}
	p.expect(lexer.SEMI)
	return ast.NewLocalVarStmt(pos, nameTok.Literal, typ, init, isConst)
}

func (p *Parser) parseExprStmt() ast.Statement {
	pos := p.tok().Pos
	expr := p.parseExpression(LOWEST)
	p.expect(lexer.SEMI)
	if expr == nil {
		return nil
	}
	return ast.NewExprStmt(pos, expr)
}

// parseTypeExpr parses a bare type name: a primitive keyword or a class
// identifier.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	t := p.tok()
	switch t.Type {
	case lexer.BOOL_TYPE, lexer.INT_TYPE, lexer.VOID_TYPE, lexer.IDENT:
		p.advance()
		return ast.NewTypeExpr(t.Literal, t.Pos)
	default:
		p.diags.ExpectedButFound(t.Pos, "type name", t.Type.String())
		return nil
	}
}
