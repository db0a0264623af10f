package cmdparse

// noArgsParser accepts a command with no arguments at all: any non-blank
// input is an UnexpectedArgument.
type noArgsParser[Res any] struct {
	exec func() Res
}

// NoArgs builds a command parser that takes no arguments, invoking exec to
// build the result once whitespace-only input is confirmed.
func NoArgs[Res any](exec func() Res) Parser[Res] {
	return noArgsParser[Res]{exec: exec}
}

func (p noArgsParser[Res]) Parse(input string, _ *int) (Result[Res], *Suggestions) {
	toks := tokenize(input)
	if len(toks) == 0 {
		return Parsed(p.exec()), nil
	}
	return Failed[Res](0, Failure{Kind: UnexpectedArgument, From: toks[0].from}), nil
}
