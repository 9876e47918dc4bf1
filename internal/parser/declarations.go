package parser

import (
	"github.com/cwbudde/slc/internal/ast"
	"github.com/cwbudde/slc/internal/lexer"
)

// parseAccess consumes a leading `public`/`private` modifier, defaulting to
// AccessNone when absent (the emitter's access check treats AccessNone like
// public).
func (p *Parser) parseAccess() ast.Access {
	switch p.tok().Type {
	case lexer.PUBLIC:
		p.advance()
		return ast.AccessPublic
	case lexer.PRIVATE:
		p.advance()
		return ast.AccessPrivate
	default:
		return ast.AccessNone
	}
}

func (p *Parser) parseTopLevelDecl() ast.Decl {
	access := p.parseAccess()
	switch p.tok().Type {
	case lexer.FUNC:
		return p.parseFunctionDecl(access)
	case lexer.LET, lexer.VAR:
		return p.parseGlobalVarDecl(access)
	case lexer.CLASS:
		return p.parseClassDecl(access)
	case lexer.IF, lexer.RETURN, lexer.LBRACE:
		// A control-flow or block statement at the top level: report and
		// discard it as a statement so the declaration list resynchronizes
		// cleanly on whatever follows.
		p.diags.TopLevelCtrlFlow(p.tok().Pos)
		p.parseStatement()
		return nil
	default:
		p.diags.UnexpectedToken(p.tok().Pos, p.tok().Type.String())
		p.advance()
		return nil
	}
}

// parseParams parses a parenthesized, comma-separated parameter list:
// `ident ':' type`.
func (p *Parser) parseParams() []ast.Param {
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	var params []ast.Param
	if p.curIs(lexer.RPAREN) {
		p.advance()
		return params
	}
	for {
		nameTok := p.tok()
		if !p.expect(lexer.IDENT) {
			return params
		}
		if !p.expect(lexer.COLON) {
			return params
		}
		typ := p.parseTypeExpr()
		params = append(params, ast.Param{Name: nameTok.Literal, Type: typ, Pos: nameTok.Pos})
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.RPAREN)
	return params
}

// parseFunctionDecl parses a free function, which is either backed by a
// body or declared `external` with a linkage name:
//
//	func name(params) -> Type { ... }
//	func name(params) -> Type external(linkname);
func (p *Parser) parseFunctionDecl(access ast.Access) ast.Decl {
	pos := p.tok().Pos
	p.advance() // consume 'func'

	nameTok := p.tok()
	if !p.expect(lexer.IDENT) {
		return nil
	}
	params := p.parseParams()
	var ret *ast.TypeExpr
	if p.curIs(lexer.ARROW) {
		p.advance()
		ret = p.parseTypeExpr()
	}

	if p.curIs(lexer.EXTERNAL) {
		p.advance()
		if !p.expect(lexer.LPAREN) {
			return nil
		}
		linkTok := p.tok()
		if !p.expect(lexer.IDENT) {
			return nil
		}
		p.expect(lexer.RPAREN)
		p.expect(lexer.SEMI)
		return ast.NewExtFunctionDecl(pos, access, nameTok.Literal, params, ret, linkTok.Literal)
	}

	body := p.parseBlock()
	return ast.NewFunctionDecl(pos, access, nameTok.Literal, params, ret, body)
}

// parseGlobalVarDecl parses a top-level `let`/`var` binding.
func (p *Parser) parseGlobalVarDecl(access ast.Access) ast.Decl {
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
	return ast.NewGlobalVarDecl(pos, access, nameTok.Literal, typ, init, isConst)
}

// parseClassDecl parses a class body: fields, exactly zero-or-one
// constructor, methods, and an optional destructor (the contextual `deinit`
// member, recognized by name rather than by keyword since the source
// language reserves no dedicated token for it).
func (p *Parser) parseClassDecl(access ast.Access) ast.Decl {
	pos := p.tok().Pos
	p.advance() // consume 'class'

	nameTok := p.tok()
	if !p.expect(lexer.IDENT) {
		return nil
	}
	if !p.expect(lexer.LBRACE) {
		return nil
	}

	class := ast.NewClassDecl(pos, access, nameTok.Literal)
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		memberAccess := p.parseAccess()
		switch p.tok().Type {
		case lexer.INIT:
			if class.Ctor != nil {
				p.diags.FuncAlreadyDefined(p.tok().Pos, "init")
			}
			class.Ctor = p.parseCtorDecl(memberAccess)
		case lexer.FUNC:
			p.advance() // consume 'func'
			class.Methods = append(class.Methods, p.parseMethodDecl(memberAccess))
		case lexer.IDENT:
			if p.tok().Literal == "deinit" && p.peekIs(lexer.LPAREN) {
				class.Destructor = p.parseDestructorDecl()
				continue
			}
			class.Methods = append(class.Methods, p.parseMethodDecl(memberAccess))
		case lexer.VAR, lexer.LET:
			class.Fields = append(class.Fields, p.parseFieldDecl(memberAccess))
		default:
			p.diags.UnexpectedToken(p.tok().Pos, p.tok().Type.String())
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)
	return class
}

func (p *Parser) parseFieldDecl(access ast.Access) *ast.FieldDecl {
	pos := p.tok().Pos
	p.advance() // consume 'let'/'var'
	nameTok := p.tok()
	if !p.expect(lexer.IDENT) {
		return ast.NewFieldDecl(pos, "", nil, access)
	}
	if !p.expect(lexer.COLON) {
		return ast.NewFieldDecl(pos, nameTok.Literal, nil, access)
	}
	typ := p.parseTypeExpr()
	p.expect(lexer.SEMI)
	return ast.NewFieldDecl(pos, nameTok.Literal, typ, access)
}

func (p *Parser) parseCtorDecl(access ast.Access) *ast.CtorDecl {
	pos := p.tok().Pos
	p.advance() // consume 'init'
	params := p.parseParams()
	body := p.parseBlock()
	return ast.NewCtorDecl(pos, params, body, access)
}

func (p *Parser) parseMethodDecl(access ast.Access) *ast.MethodDecl {
	pos := p.tok().Pos
	nameTok := p.tok()
	p.expect(lexer.IDENT)
	params := p.parseParams()
	var ret *ast.TypeExpr
	if p.curIs(lexer.ARROW) {
		p.advance()
		ret = p.parseTypeExpr()
	}
	body := p.parseBlock()
	return ast.NewMethodDecl(pos, nameTok.Literal, params, ret, body, access)
}

func (p *Parser) parseDestructorDecl() *ast.DestructorDecl {
	pos := p.tok().Pos
	p.advance() // consume 'deinit'
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.expect(lexer.RPAREN)
	body := p.parseBlock()
	return ast.NewDestructorDecl(pos, body)
}
