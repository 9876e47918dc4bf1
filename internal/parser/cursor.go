package parser

import "github.com/cwbudde/slc/internal/lexer"

// TokenCursor buffers tokens pulled from a Lexer so the parser can look
// arbitrarily far ahead, grounded on the teacher repo's
// internal/parser/cursor.go (a token cache supporting Peek(n)), adapted
// from its sliding two-token-lookahead use into the arbitrary-lookahead
// cache spec.md §4.3 requires.
type TokenCursor struct {
	l    *lexer.Lexer
	buf  []lexer.Token
	pos  int // index into buf of the "current" token
}

// NewTokenCursor creates a cursor positioned on the first token of l.
func NewTokenCursor(l *lexer.Lexer) *TokenCursor {
	c := &TokenCursor{l: l}
	c.fill(1)
	return c
}

// fill ensures at least n tokens are buffered from pos onward.
func (c *TokenCursor) fill(n int) {
	for len(c.buf)-c.pos < n {
		c.buf = append(c.buf, c.l.Next())
	}
}

// Current returns the token the cursor is positioned on.
func (c *TokenCursor) Current() lexer.Token {
	c.fill(1)
	return c.buf[c.pos]
}

// Peek returns the token n positions ahead of Current; Peek(0) == Current().
func (c *TokenCursor) Peek(n int) lexer.Token {
	c.fill(n + 1)
	return c.buf[c.pos+n]
}

// Advance moves the cursor one token forward and returns the cursor itself
// for chaining (mirrors the teacher's immutable-cursor idiom, but this
// cursor is mutated in place since the core is single-threaded and
// synchronous per spec.md §5).
func (c *TokenCursor) Advance() *TokenCursor {
	c.fill(2)
	c.pos++
	return c
}

// Mark returns an opaque position that ResetTo can later rewind to, for
// lightweight backtracking during speculative lookahead.
func (c *TokenCursor) Mark() int { return c.pos }

// ResetTo rewinds the cursor to a position previously returned by Mark.
func (c *TokenCursor) ResetTo(mark int) { c.pos = mark }
