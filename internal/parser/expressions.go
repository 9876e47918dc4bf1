package parser

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/lexer"
)

func (p *Parser) parseIdent() ast.Expression {
	t := p.tok()
	p.advance()
	return ast.NewIdent(t.Pos, t.Literal)
}

func (p *Parser) parseIntLiteral() ast.Expression {
	t := p.tok()
	p.advance()
	v := lexer.ParseInt32(p.diags, t.Pos, t.Literal)
	return ast.NewIntLiteral(t.Pos, v)
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	t := p.tok()
	p.advance()
	return ast.NewBoolLiteral(t.Pos, t.Type == lexer.TRUE)
}

func (p *Parser) parseSelf() ast.Expression {
	t := p.tok()
	p.advance()
	return ast.NewSelfExpr(t.Pos)
}

func (p *Parser) parseGroupedExpr() ast.Expression {
	p.advance() // consume '('
	expr := p.parseExpression(LOWEST)
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseUnary() ast.Expression {
	t := p.tok()
	p.advance()
	operand := p.parseExpression(UNARY)
	if operand == nil {
		return nil
	}
	return ast.NewUnaryExpr(t.Pos, t.Type.String(), operand)
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	t := p.tok()
	prec := p.peekPrecedence()
	p.advance()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	return ast.NewBinaryExpr(t.Pos, t.Type.String(), left, right)
}

// parseAssign implements right-associative `=` by recursing one
// precedence level below ASSIGN, per spec.md §4.3.
func (p *Parser) parseAssign(left ast.Expression) ast.Expression {
	t := p.tok()
	p.advance()
	right := p.parseExpression(ASSIGN - 1)
	if right == nil {
		return nil
	}
	return ast.NewBinaryExpr(t.Pos, "=", left, right)
}

func (p *Parser) parseTernary(cond ast.Expression) ast.Expression {
	t := p.tok()
	p.advance() // consume '?'
	then := p.parseExpression(LOWEST)
	if !p.expect(lexer.COLON) {
		return nil
	}
	els := p.parseExpression(TERNARY)
	if then == nil || els == nil {
		return nil
	}
	return ast.NewTernaryExpr(t.Pos, cond, then, els)
}

// parseCallArgs parses a parenthesized, comma-separated list of named
// arguments: `ident ':' expr`.
func (p *Parser) parseCallArgs() []ast.Arg {
	p.advance() // consume '('
	var args []ast.Arg
	if p.curIs(lexer.RPAREN) {
		p.advance()
		return args
	}
	for {
		nameTok := p.tok()
		if !p.expect(lexer.IDENT) {
			return args
		}
		if !p.expect(lexer.COLON) {
			return args
		}
		val := p.parseExpression(LOWEST)
		args = append(args, ast.Arg{Name: nameTok.Literal, Value: val, Pos: nameTok.Pos})
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(lexer.RPAREN) {
		return args
	}
	return args
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	pos := p.tok().Pos
	args := p.parseCallArgs()
	return ast.NewCallExpr(pos, callee, args)
}

func (p *Parser) parseMemberAccess(obj ast.Expression) ast.Expression {
	p.advance() // consume '.'
	memberTok := p.tok()
	if !p.expect(lexer.IDENT) {
		return nil
	}
	if p.curIs(lexer.LPAREN) {
		args := p.parseCallArgs()
		return ast.NewMethodCallExpr(memberTok.Pos, obj, memberTok.Literal, args)
	}
	return ast.NewFieldAccessExpr(memberTok.Pos, obj, memberTok.Literal)
}
