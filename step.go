package charranges

import "unicode/utf8"

// FirstChar returns the first character found in the given byte slice, the
// number of bytes it occupies, and the sub-slice of b starting after it.
//
// This function can be called continuously to walk all characters of a byte
// slice front to back, as illustrated in the examples. The byte range of the
// returned character is the first size bytes of b; callers tracking absolute
// positions add size to their running position after each call.
//
// Given an empty byte slice, the function returns [utf8.RuneError], a size
// of 0, and a nil rest. A size of 0 is the exhaustion signal: valid UTF-8
// input never produces it otherwise.
//
// The input is assumed to be valid UTF-8; see the package documentation.
func FirstChar(b []byte) (c rune, size int, rest []byte) {
	if len(b) == 0 {
		return utf8.RuneError, 0, nil
	}
	if b[0] < utf8.RuneSelf {
		return rune(b[0]), 1, b[1:]
	}
	c, size = utf8.DecodeRune(b)
	return c, size, b[size:]
}

// FirstCharInString is like [FirstChar] but its input and rest are strings.
func FirstCharInString(str string) (c rune, size int, rest string) {
	if len(str) == 0 {
		return utf8.RuneError, 0, ""
	}
	if str[0] < utf8.RuneSelf {
		return rune(str[0]), 1, str[1:]
	}
	c, size = utf8.DecodeRuneInString(str)
	return c, size, str[size:]
}

// LastChar returns the last character found in the given byte slice, the
// number of bytes it occupies, and the sub-slice of b ending before it.
//
// Locating the start of the last character inspects at most the final four
// bytes of b, so walking a slice back to front with this function costs the
// same as walking it front to back with [FirstChar]. The byte range of the
// returned character is the final size bytes of b.
//
// Given an empty byte slice, the function returns [utf8.RuneError], a size
// of 0, and a nil rest.
func LastChar(b []byte) (c rune, size int, rest []byte) {
	if len(b) == 0 {
		return utf8.RuneError, 0, nil
	}
	if b[len(b)-1] < utf8.RuneSelf {
		return rune(b[len(b)-1]), 1, b[:len(b)-1]
	}
	c, size = utf8.DecodeLastRune(b)
	return c, size, b[:len(b)-size]
}

// LastCharInString is like [LastChar] but its input and rest are strings.
func LastCharInString(str string) (c rune, size int, rest string) {
	if len(str) == 0 {
		return utf8.RuneError, 0, ""
	}
	if str[len(str)-1] < utf8.RuneSelf {
		return rune(str[len(str)-1]), 1, str[:len(str)-1]
	}
	c, size = utf8.DecodeLastRuneInString(str)
	return c, size, str[:len(str)-size]
}

// CharCount returns the number of characters in the given string. Note that
// this counts Unicode code points, not user-perceived characters: combining
// sequences and multi-rune emoji count once per code point.
func CharCount(str string) int {
	return utf8.RuneCountInString(str)
}
