/*
Package charranges implements character iteration with byte ranges for
UTF-8 text.

Go's range-over-string loop reports the start byte index of each rune, but
not where the rune ends. Deriving a range by mapping a start index i to
i..i+1 is wrong: UTF-8 characters are variable-width, occupying 1 to 4
bytes.

	Char | Bytes | Range
	'O'  |   1   | 0..1
	'Ø'  |   2   | 0..2
	'∈'  |   3   | 0..3
	'🌏' |   4   | 0..4

This package yields, for each character, both the character value and the
half-open byte range [start, end) it occupies in the text. Iteration works
from both ends, and ranges can be biased by a fixed offset so they stay
valid against a larger original text when iterating over a substring.

# Getting Started

For cursor-style iteration:
  - [CharRanges] - double-ended cursor over a string (recommended)
  - [NewCharRanges] / [NewCharRangesOffset] - constructors

For stateless stepping:
  - [FirstChar] / [FirstCharInString] - decode the first character
  - [LastChar] / [LastCharInString] - decode the last character
  - [CharCount] - count characters

# Cursor Iteration

The [CharRanges] cursor consumes the text one character at a time:

	chars := charranges.NewCharRanges("Hello 🗻∈🌏")
	for chars.Next() {
		start, end := chars.Positions()
		fmt.Println(start, end, chars.Str())
	}

[CharRanges.Next] consumes from the front and [CharRanges.NextBack] from
the back. The two directions interleave freely and converge in the middle:
each character is produced exactly once, from whichever end reached it
first. [CharRanges.Rest] returns whatever has not been consumed yet.

Stepping backward does not scan the text from the front. Finding where the
last character starts only ever inspects its trailing continuation bytes,
so walking a string in reverse costs the same as walking it forward.

[CharRanges.Nth], [CharRanges.NthBack], and [CharRanges.Last] skip
intermediate characters without materializing their ranges. They produce
results identical to repeated Next/NextBack calls.

# Offset Ranges

When the text at hand is a substring of some larger original, construct
the cursor with [NewCharRangesOffset] and the position of the substring
within the original. All reported ranges are then valid indices into the
original text:

	text := "Hello 👋 World 🌏"
	start := 11 // byte index of 'W'
	chars := charranges.NewCharRangesOffset(text[start:], start)
	chars.Next() // 'W' at 11..12

# Preconditions

Input is assumed to be valid UTF-8, as produced by Go string literals and
correct text processing. The package performs no validation; feeding it
malformed bytes is a contract violation with unspecified results.
Exhaustion is not an error: an empty cursor simply reports false from
every stepping method, permanently.
*/
package charranges
