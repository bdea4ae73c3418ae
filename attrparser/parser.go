package attrparser

import "fmt"

// Parse parses an attribute fragment and returns its declarations in order.
// An empty or all-whitespace fragment yields an empty list.
// Returns a *SyntaxError on failure; no partial list is returned.
func Parse(fragment string) (List, error) {
	p := &parser{s: newScanner(fragment), attrs: List{}}
	return p.parseFragment()
}

// MustParse is like Parse but panics if the fragment is malformed.
func MustParse(fragment string) List {
	attrs, err := Parse(fragment)
	if err != nil {
		panic(fmt.Sprintf("attrparser: Parse(%q): %v", fragment, err))
	}
	return attrs
}

type parser struct {
	s     *scanner
	attrs List
}

func (p *parser) fail(reason Reason, pos Position, format string, args ...any) error {
	return &SyntaxError{
		Reason:   reason,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
		Fragment: p.s.src,
	}
}

func (p *parser) parseFragment() (List, error) {
	for {
		p.s.skipWhitespace()
		if p.s.atEnd() {
			return p.attrs, nil
		}
		if err := p.parseDeclaration(); err != nil {
			return nil, err
		}
	}
}

// parseDeclaration reads one name[=value] declaration.
func (p *parser) parseDeclaration() error {
	pos := p.s.currentPos()

	name, err := p.scanBare(true)
	if err != nil {
		return err
	}
	if name == "" {
		return p.fail(MissingName, pos, "attribute name missing before '='")
	}

	p.s.skipWhitespace()
	if p.s.peek() != '=' {
		p.attrs = append(p.attrs, Attribute{Name: name, Value: name, Kind: KindReference, Pos: pos})
		return nil
	}

	eqPos := p.s.currentPos()
	p.s.advance() // consume =
	p.s.skipWhitespace()
	if p.s.atEnd() {
		return p.fail(MissingValue, eqPos, "value missing after '=' for attribute %q", name)
	}

	value, kind, err := p.parseValue()
	if err != nil {
		return err
	}
	p.attrs = append(p.attrs, Attribute{Name: name, Value: value, Kind: kind, Pos: pos})
	return nil
}

// parseValue dispatches on the first byte of the value.
func (p *parser) parseValue() (string, Kind, error) {
	ch := p.s.peek()
	switch {
	case isQuote(ch):
		v, err := p.scanQuoted()
		return v, KindString, err
	case ch == '#' && p.s.peekAt(1) == '{':
		v, err := p.scanExpression()
		return v, KindDynamic, err
	default:
		v, err := p.scanBare(false)
		return v, KindReference, err
	}
}

// scanBare reads an unquoted token: a name, or a reference value. It stops
// at whitespace and, for names, at '='. Quotes and '}' cannot appear in it.
func (p *parser) scanBare(isName bool) (string, error) {
	begin := p.s.pos
	for !p.s.atEnd() {
		ch := p.s.peek()
		if isSpace(ch) || (isName && ch == '=') {
			break
		}
		if isQuote(ch) {
			return "", p.fail(UnexpectedQuote, p.s.currentPos(),
				"unexpected %s quote in unquoted %s %q", quoteName(ch), tokenRole(isName), p.s.src[begin:p.s.pos])
		}
		if ch == '}' {
			return "", p.fail(UnexpectedCloseBrace, p.s.currentPos(),
				"unexpected '}' with no matching '#{' in %s %q", tokenRole(isName), p.s.src[begin:p.s.pos])
		}
		p.s.advance()
	}

	tok := p.s.src[begin:p.s.pos]
	if tok != "" && tok[len(tok)-1] == ':' {
		pos := p.s.currentPos()
		pos.Column--
		pos.Offset--
		return "", p.fail(DanglingScheme, pos, "incomplete attribute %q: dangling ':'", tok)
	}
	return tok, nil
}

// scanQuoted reads a quoted value and returns the text between the quotes.
// A backslash keeps the following byte from closing the string; both bytes
// stay in the result.
func (p *parser) scanQuoted() (string, error) {
	pos := p.s.currentPos()
	quote := p.s.advance() // consume opening quote
	begin := p.s.pos

	for {
		if p.s.atEnd() {
			return "", p.fail(UnterminatedString, pos, "unterminated %s-quoted value", quoteName(quote))
		}
		ch := p.s.advance()
		switch {
		case ch == '\\' && !p.s.atEnd():
			p.s.advance()
		case ch == quote:
			return p.s.src[begin : p.s.pos-1], nil
		}
	}
}

// scanExpression reads #{...} and returns the expression source. Nested
// braces and quoted strings inside the expression are skipped over.
func (p *parser) scanExpression() (string, error) {
	pos := p.s.currentPos()
	p.s.advance() // consume #
	p.s.advance() // consume {
	begin := p.s.pos

	depth := 0
	for {
		if p.s.atEnd() {
			return "", p.fail(UnterminatedExpression, pos, "unterminated expression: missing '}' for '#{'")
		}
		ch := p.s.advance()
		switch ch {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return p.s.src[begin : p.s.pos-1], nil
			}
			depth--
		case '\'', '"':
			if !p.skipString(ch) {
				return "", p.fail(UnterminatedExpression, pos, "unterminated expression: string opened inside '#{' is never closed")
			}
		}
	}
}

// skipString advances past a string literal inside an expression whose
// opening quote was already consumed. It reports false at end of input.
func (p *parser) skipString(quote byte) bool {
	for !p.s.atEnd() {
		ch := p.s.advance()
		switch {
		case ch == '\\' && !p.s.atEnd():
			p.s.advance()
		case ch == quote:
			return true
		}
	}
	return false
}

func quoteName(q byte) string {
	if q == '"' {
		return "double"
	}
	return "single"
}

func tokenRole(isName bool) string {
	if isName {
		return "name"
	}
	return "value"
}
