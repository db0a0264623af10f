package cmdparse

// alternativesParser combines several command forms producing the same
// result type, trying each in order. The first to succeed wins; otherwise
// the combined failure is the one with the largest parsedUpTo, with ties
// combined as Result.Merge describes.
type alternativesParser[Res any] struct {
	parsers []Parser[Res]
}

// Alternatives combines several command parsers with the same result type,
// for commands with multiple distinct argument shapes. parsers must be
// non-empty.
func Alternatives[Res any](parsers ...Parser[Res]) Parser[Res] {
	if len(parsers) == 0 {
		panic("cmdparse: Alternatives requires at least one parser")
	}
	return alternativesParser[Res]{parsers: parsers}
}

func (a alternativesParser[Res]) Parse(input string, pos *int) (Result[Res], *Suggestions) {
	res, suggestions := a.parsers[0].Parse(input, pos)

	for _, p := range a.parsers[1:] {
		pRes, pSuggestions := p.Parse(input, pos)
		res = res.Merge(pRes)
		suggestions = mergeSuggestions(suggestions, pSuggestions)
	}

	return res, suggestions
}

// mergeSuggestions combines two optional suggestion lists: nil on one side
// passes the other through unchanged; two presents concatenate their words.
func mergeSuggestions(a, b *Suggestions) *Suggestions {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		words := make([]string, 0, len(a.Words)+len(b.Words))
		words = append(words, a.Words...)
		words = append(words, b.Words...)
		return &Suggestions{Words: words}
	}
}
