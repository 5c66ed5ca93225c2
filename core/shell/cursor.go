package shell

// EOL is the sentinel byte reported once the cursor has run off the end
// of the input. Running out of characters and seeing a real newline are
// treated identically by the grammar.
const EOL byte = '\n'

// Cursor is a forward-only read position over one line of input. It
// never fails: reading at or past the end of the line yields EOL, and
// advancing past the end is a no-op.
type Cursor struct {
	src string
	pos int
}

// NewCursor returns a cursor positioned at the start of line.
func NewCursor(line string) *Cursor {
	return &Cursor{src: line}
}

// Current returns the byte under the cursor, or EOL if the input is
// empty or exhausted.
func (c *Cursor) Current() byte {
	if c.pos >= len(c.src) {
		return EOL
	}
	return c.src[c.pos]
}

// Advance moves the cursor one byte forward and returns the new current
// byte. The advance saturates at the end of input, so scanning loops
// terminate without bounds checks.
func (c *Cursor) Advance() byte {
	if c.pos < len(c.src) {
		c.pos++
	}
	return c.Current()
}

// Pos reports the cursor's offset into the line.
func (c *Cursor) Pos() int {
	return c.pos
}
