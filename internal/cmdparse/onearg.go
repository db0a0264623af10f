package cmdparse

import "github.com/ilya-bobyr/icp/internal/argparse"

// oneArgParser accepts a single required argument token.
type oneArgParser[T1, Res any] struct {
	arg1  argparse.Parser[T1]
	build func(T1) Res
}

// OneArg builds a command parser expecting exactly one argument, parsed by
// arg1 and converted to Res by build.
func OneArg[T1, Res any](arg1 argparse.Parser[T1], build func(T1) Res) Parser[Res] {
	return oneArgParser[T1, Res]{arg1: arg1, build: build}
}

func (p oneArgParser[T1, Res]) Parse(input string, pos *int) (Result[Res], *Suggestions) {
	toks := tokenize(input)

	if len(toks) == 0 {
		upTo, failure, suggestions := expectedArg(0, p.arg1.Hint, p.arg1.Suggestion, input, pos, 0)
		return Failed[Res](upTo, failure), suggestions
	}

	tok := toks[0]
	res := p.arg1.Parse(tok.text)

	var suggestions *Suggestions
	if cursorIn(pos, tok.from, tok.to) {
		suggestions = &Suggestions{Words: p.arg1.Suggestion(tok.text[:*pos-tok.from])}
	}

	if !res.IsParsed() {
		upTo, failure := argFailure(tok, res.ParsedUpTo(), res.Reasons())
		return Failed[Res](upTo, failure), suggestions
	}

	if len(toks) > 1 {
		upTo, failure := unexpectedArgument(toks[1], tok.to)
		return Failed[Res](upTo, failure), suggestions
	}

	return Parsed(p.build(res.Value())), suggestions
}
