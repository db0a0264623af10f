package argparse

import "strings"

type keywordSetParser struct {
	keywords []string
	hints    []string
}

// KeywordSet builds a parser accepting an exact match against one of
// keywords. Its hint and failure reasons are the keywords themselves.
// keywords must be non-empty.
func KeywordSet(keywords ...string) Parser[string] {
	return KeywordSetWithHint(keywords, keywords)
}

// KeywordSetWithHint is like KeywordSet but reports hints separately from
// the accepted keywords.
func KeywordSetWithHint(keywords, hints []string) Parser[string] {
	if len(keywords) == 0 {
		panic("argparse: KeywordSet requires at least one keyword")
	}
	return keywordSetParser{
		keywords: append([]string(nil), keywords...),
		hints:    append([]string(nil), hints...),
	}
}

func (p keywordSetParser) Parse(input string) Result[string] {
	for _, k := range p.keywords {
		if input == k {
			return Parsed(k)
		}
	}

	longest := 0
	for _, k := range p.keywords {
		if n := commonPrefixLen(input, k); n > longest {
			longest = n
		}
	}

	return Result[string]{parsedUpTo: longest, reasons: append([]string(nil), p.hints...)}
}

func (p keywordSetParser) Suggestion(prefix string) []string {
	var res []string
	for _, k := range p.keywords {
		if strings.HasPrefix(k, prefix) && len(k) > len(prefix) {
			res = append(res, k)
		}
	}
	return res
}

func (p keywordSetParser) Hint() []string {
	return append([]string(nil), p.hints...)
}

// commonPrefixLen returns the number of leading code points shared by a and
// b.
func commonPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	matched := 0
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			break
		}
		matched++
	}
	return matched
}
