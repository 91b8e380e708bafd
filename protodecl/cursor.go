package protodecl

// cursor walks decoded source one character at a time.
type cursor struct {
	src []rune

	next   int // offset of the next unread character
	offset int // offset of ch, or len(src) once exhausted

	line   int
	column int

	ch   rune
	read bool
	eof  bool
}

func newCursor(src string) *cursor {
	return &cursor{src: []rune(src), line: 1}
}

// advance reads the next character. At end of input it marks exhaustion and
// returns false, leaving ch untouched.
func (c *cursor) advance() bool {
	if c.next >= len(c.src) {
		c.eof = true
		c.offset = len(c.src)
		return false
	}

	// A newline belongs to the line it terminates; the following
	// character starts the next one.
	if c.read && c.ch == '\n' {
		c.line++
		c.column = 0
	}

	c.ch = c.src[c.next]
	c.offset = c.next
	c.next++
	c.column++
	c.read = true
	return true
}

func (c *cursor) peek() (rune, bool) {
	if c.next >= len(c.src) {
		return 0, false
	}
	return c.src[c.next], true
}

func (c *cursor) position() Position {
	return Position{Line: c.line, Column: c.column, Offset: c.offset}
}

// endPosition is where a token at end of input would start.
func (c *cursor) endPosition() Position {
	pos := Position{Line: c.line, Column: c.column + 1, Offset: len(c.src)}
	if c.read && c.ch == '\n' {
		pos.Line++
		pos.Column = 1
	}
	return pos
}

func (c *cursor) span(start int) string {
	return string(c.src[start:c.offset])
}
