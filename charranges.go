package charranges

import "unicode/utf8"

// CharRanges is a double-ended cursor over the characters of a string,
// yielding each character together with the half-open byte range
// [start, end) it occupies in the text.
//
// Call [CharRanges.Next] or [CharRanges.NextBack] to produce the next
// character from the front or the back, then read it through
// [CharRanges.Rune], [CharRanges.Str], and [CharRanges.Positions]. The two
// directions interleave freely and converge in the middle: every character
// of the text is produced exactly once, from whichever end reached it
// first. Once the text is fully consumed, all stepping methods report
// false, permanently.
//
// The cursor holds a view into the original string and never copies it.
// Copying a CharRanges value yields an independent cursor at the same
// position.
type CharRanges struct {
	// rest is the unconsumed part of the text. Forward steps shrink it
	// from the front, backward steps from the back, always on character
	// boundaries.
	rest string

	// pos is the byte position of the start of rest within the text the
	// cursor was constructed from. Backward steps leave it untouched.
	pos int

	// offset is added to all reported positions.
	offset int

	// The most recently produced character, positions already
	// offset-adjusted.
	cur        rune
	start, end int
}

// NewCharRanges returns a cursor over the characters of text.
func NewCharRanges(text string) *CharRanges {
	return &CharRanges{rest: text, cur: utf8.RuneError}
}

// NewCharRangesOffset returns a cursor over the characters of text whose
// reported positions are all shifted by offset.
//
// Use this when text is a substring of some larger original starting at
// byte position offset within it, so that the reported ranges are valid
// indices into the original.
func NewCharRangesOffset(text string, offset int) *CharRanges {
	return &CharRanges{rest: text, offset: offset, cur: utf8.RuneError}
}

// Next produces the first unconsumed character. It returns false if the
// text is exhausted, leaving the cursor unchanged.
func (c *CharRanges) Next() bool {
	r, size, rest := FirstCharInString(c.rest)
	if size == 0 {
		return false
	}
	c.cur = r
	c.start = c.offset + c.pos
	c.end = c.start + size
	c.rest = rest
	c.pos += size
	return true
}

// NextBack produces the last unconsumed character. It returns false if the
// text is exhausted, leaving the cursor unchanged.
//
// Locating the character start inspects at most the final four bytes of
// the unconsumed text, never the whole of it.
func (c *CharRanges) NextBack() bool {
	r, size, rest := LastCharInString(c.rest)
	if size == 0 {
		return false
	}
	c.cur = r
	c.end = c.offset + c.pos + len(c.rest)
	c.start = c.end - size
	c.rest = rest
	return true
}

// Nth skips n characters from the front and then behaves like one call to
// [CharRanges.Next]: Nth(0) is Next. Skipped characters are decoded only
// for their width and never materialized.
//
// If fewer than n+1 characters remain, the cursor is exhausted and Nth
// returns false.
func (c *CharRanges) Nth(n int) bool {
	for ; n > 0; n-- {
		_, size, rest := FirstCharInString(c.rest)
		if size == 0 {
			return false
		}
		c.rest = rest
		c.pos += size
	}
	return c.Next()
}

// NthBack skips n characters from the back and then behaves like one call
// to [CharRanges.NextBack]: NthBack(0) is NextBack.
//
// If fewer than n+1 characters remain, the cursor is exhausted and NthBack
// returns false.
func (c *CharRanges) NthBack(n int) bool {
	for ; n > 0; n-- {
		_, size, rest := LastCharInString(c.rest)
		if size == 0 {
			return false
		}
		c.rest = rest
	}
	return c.NextBack()
}

// Last consumes all remaining characters and produces the final one,
// without decoding the characters in between. It is equivalent to calling
// [CharRanges.NextBack] until it reports false and keeping the final
// produced item. Last returns false if the text is already exhausted.
func (c *CharRanges) Last() bool {
	r, size, _ := LastCharInString(c.rest)
	if size == 0 {
		return false
	}
	c.cur = r
	c.end = c.offset + c.pos + len(c.rest)
	c.start = c.end - size
	c.rest = ""
	return true
}

// Rune returns the character produced by the most recent successful step.
// Before the first successful step it returns [utf8.RuneError].
func (c *CharRanges) Rune() rune {
	return c.cur
}

// Str returns the character produced by the most recent successful step as
// a string.
func (c *CharRanges) Str() string {
	return string(c.cur)
}

// Positions returns the half-open byte range [start, end) of the character
// produced by the most recent successful step. Positions include the
// cursor's offset as it was at the moment the character was produced;
// later [CharRanges.SetOffset] calls do not change them.
func (c *CharRanges) Positions() (start, end int) {
	return c.start, c.end
}

// Rest returns the unconsumed part of the text, reflecting whatever has
// been consumed from either end so far.
func (c *CharRanges) Rest() string {
	return c.rest
}

// Offset returns the offset added to all reported positions.
func (c *CharRanges) Offset() int {
	return c.offset
}

// SetOffset changes the offset added to reported positions. It affects
// only characters produced after the call; positions already produced stay
// as they were reported.
func (c *CharRanges) SetOffset(offset int) {
	c.offset = offset
}

// Remaining returns bounds on the number of unconsumed characters: at
// least min and at most max remain. The exact count is not computable
// without decoding the whole rest of the text, so none is claimed; a
// character occupies between 1 and [utf8.UTFMax] bytes.
func (c *CharRanges) Remaining() (min, max int) {
	return (len(c.rest) + utf8.UTFMax - 1) / utf8.UTFMax, len(c.rest)
}
