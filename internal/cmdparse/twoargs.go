package cmdparse

import "github.com/ilya-bobyr/icp/internal/argparse"

// twoArgsParser accepts two required argument tokens; the second is parsed
// with the first's value as context.
type twoArgsParser[T1, T2, Res any] struct {
	arg1  argparse.Parser[T1]
	arg2  argparse.Arg2Parser[T1, T2]
	build func(T1, T2) Res
}

// TwoArgs builds a command parser expecting exactly two arguments. arg2
// receives arg1's parsed value as context, so it may restrict or shape its
// own grammar based on what came before (e.g. a direction keyword selecting
// which range an integer must fall in).
func TwoArgs[T1, T2, Res any](arg1 argparse.Parser[T1], arg2 argparse.Arg2Parser[T1, T2], build func(T1, T2) Res) Parser[Res] {
	return twoArgsParser[T1, T2, Res]{arg1: arg1, arg2: arg2, build: build}
}

func (p twoArgsParser[T1, T2, Res]) Parse(input string, pos *int) (Result[Res], *Suggestions) {
	toks := tokenize(input)

	if len(toks) == 0 {
		upTo, failure, suggestions := expectedArg(0, p.arg1.Hint, p.arg1.Suggestion, input, pos, 0)
		return Failed[Res](upTo, failure), suggestions
	}

	tok1 := toks[0]
	res1 := p.arg1.Parse(tok1.text)

	var suggestions1 *Suggestions
	if cursorIn(pos, tok1.from, tok1.to) {
		suggestions1 = &Suggestions{Words: p.arg1.Suggestion(tok1.text[:*pos-tok1.from])}
	}

	if !res1.IsParsed() {
		upTo, failure := argFailure(tok1, res1.ParsedUpTo(), res1.Reasons())
		return Failed[Res](upTo, failure), suggestions1
	}
	v1 := res1.Value()

	if len(toks) == 1 {
		upTo, failure, suggestions2 := expectedArg(
			1,
			func() []string { return p.arg2.Hint(v1) },
			func(prefix string) []string { return p.arg2.Suggestion(v1, prefix) },
			input, pos, tok1.to,
		)
		if suggestions1 != nil {
			return Failed[Res](upTo, failure), suggestions1
		}
		return Failed[Res](upTo, failure), suggestions2
	}

	tok2 := toks[1]
	res2 := p.arg2.Parse(v1, tok2.text)

	suggestions := suggestions1
	if suggestions == nil && cursorIn(pos, tok2.from, tok2.to) {
		suggestions = &Suggestions{Words: p.arg2.Suggestion(v1, tok2.text[:*pos-tok2.from])}
	}

	if !res2.IsParsed() {
		upTo, failure := argFailure(tok2, res2.ParsedUpTo(), res2.Reasons())
		return Failed[Res](upTo, failure), suggestions
	}
	v2 := res2.Value()

	if len(toks) > 2 {
		upTo, failure := unexpectedArgument(toks[2], tok2.to)
		return Failed[Res](upTo, failure), suggestions
	}

	return Parsed(p.build(v1, v2)), suggestions
}
