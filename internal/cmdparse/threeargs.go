package cmdparse

import "github.com/ilya-bobyr/icp/internal/argparse"

// threeArgsParser accepts three required argument tokens; the third is
// parsed with both earlier values as context.
type threeArgsParser[T1, T2, T3, Res any] struct {
	arg1  argparse.Parser[T1]
	arg2  argparse.Arg2Parser[T1, T2]
	arg3  argparse.Arg2Parser[argparse.Pair[T1, T2], T3]
	build func(T1, T2, T3) Res
}

// ThreeArgs builds a command parser expecting exactly three arguments. The
// source's own grammar only enables one- and two-argument forms, but the
// same tokenization generalizes cleanly to a third slot, whose context is
// the pair of both earlier values.
func ThreeArgs[T1, T2, T3, Res any](
	arg1 argparse.Parser[T1],
	arg2 argparse.Arg2Parser[T1, T2],
	arg3 argparse.Arg2Parser[argparse.Pair[T1, T2], T3],
	build func(T1, T2, T3) Res,
) Parser[Res] {
	return threeArgsParser[T1, T2, T3, Res]{arg1: arg1, arg2: arg2, arg3: arg3, build: build}
}

func (p threeArgsParser[T1, T2, T3, Res]) Parse(input string, pos *int) (Result[Res], *Suggestions) {
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
	ctx := argparse.Pair[T1, T2]{First: v1, Second: v2}

	if len(toks) == 2 {
		upTo, failure, suggestions3 := expectedArg(
			2,
			func() []string { return p.arg3.Hint(ctx) },
			func(prefix string) []string { return p.arg3.Suggestion(ctx, prefix) },
			input, pos, tok2.to,
		)
		if suggestions != nil {
			return Failed[Res](upTo, failure), suggestions
		}
		return Failed[Res](upTo, failure), suggestions3
	}

	tok3 := toks[2]
	res3 := p.arg3.Parse(ctx, tok3.text)

	if suggestions == nil && cursorIn(pos, tok3.from, tok3.to) {
		suggestions = &Suggestions{Words: p.arg3.Suggestion(ctx, tok3.text[:*pos-tok3.from])}
	}

	if !res3.IsParsed() {
		upTo, failure := argFailure(tok3, res3.ParsedUpTo(), res3.Reasons())
		return Failed[Res](upTo, failure), suggestions
	}
	v3 := res3.Value()

	if len(toks) > 3 {
		upTo, failure := unexpectedArgument(toks[3], tok3.to)
		return Failed[Res](upTo, failure), suggestions
	}

	return Parsed(p.build(v1, v2, v3)), suggestions
}
