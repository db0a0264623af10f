// Package text provides small code-point-aware string helpers shared by the
// argument and command parsers. Character counting throughout the command
// prompt is by Unicode scalar value (code point), never by byte or grapheme
// cluster: segmentation is explicitly out of scope (see the module's
// SPEC_FULL.md, §1 Non-goals).
package text

import "unicode/utf8"

// BytePos returns the byte offset of the k-th code point of s. If k is at or
// past the number of code points in s, it returns len(s).
func BytePos(s string, k int) int {
	if k <= 0 {
		return 0
	}

	i := 0
	for byteOffset := range s {
		if i == k {
			return byteOffset
		}
		i++
	}
	return len(s)
}

// CommonPrefix returns the longest string that is a prefix of every element
// of options, compared code point by code point. It returns "" when options
// is empty, and the result is always itself a prefix of options[0].
func CommonPrefix(options []string) string {
	if len(options) == 0 {
		return ""
	}

	res := options[0]
	for _, next := range options[1:] {
		res = commonPrefixPair(res, next)
	}
	return res
}

func commonPrefixPair(a, b string) string {
	matchedEnd := min(len(a), len(b))

	bi := 0
	for ai, ra := range a {
		if bi >= len(b) {
			break
		}
		rb, size := utf8.DecodeRuneInString(b[bi:])
		if ra != rb {
			matchedEnd = ai
			break
		}
		bi += size
	}

	return a[:matchedEnd]
}

// CodePointCount returns the number of Unicode code points in s.
func CodePointCount(s string) int {
	return len([]rune(s))
}
