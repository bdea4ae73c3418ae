package attrparser

// scanner walks a fragment byte by byte and tracks the source position.
type scanner struct {
	src  string
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1, col: 1}
}

func (s *scanner) currentPos() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.pos}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

// peekAt returns the byte n positions ahead of the cursor, or 0 past the end.
func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) advance() byte {
	ch := s.src[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) skipWhitespace() {
	for !s.atEnd() && isSpace(s.peek()) {
		s.advance()
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f' || ch == '\v'
}

func isQuote(ch byte) bool {
	return ch == '\'' || ch == '"'
}
