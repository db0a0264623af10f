// Package cmdparse implements the command-level parser combinators that sit
// on top of internal/argparse: zero/one/two/three-argument command grammars
// and an alternatives combinator over whole command forms. A command parser
// tokenizes its input (the byte range following a command keyword) on
// whitespace and threads each token through an internal/argparse.Parser,
// carrying the previously parsed values as context for later arguments.
//
// Every offset in this package — token bounds, cursor position, Failure.From
// and Failure.To — is a byte offset into whatever string was passed to
// Parse, not a code-point index. The edit buffer (internal/edit.State)
// converts its code-point cursor into a byte position before calling
// internal/command.Table, which rebases that position into the argument
// region before calling in, and rebases the byte offsets reported back
// against the whole input line.
package cmdparse

import (
	"unicode"
	"unicode/utf8"

	"github.com/ilya-bobyr/icp/internal/text"
)

// FailureKind distinguishes the three ways a command parse can fail.
type FailureKind int

const (
	// ArgumentParseFailed means a present token failed its argument parser.
	ArgumentParseFailed FailureKind = iota
	// ExpectedArg means a required argument token is missing.
	ExpectedArg
	// UnexpectedArgument means more tokens were present than the command
	// expects.
	UnexpectedArgument
)

// Failure describes why a command failed to parse. Only the fields
// belonging to Kind are meaningful.
type Failure struct {
	Kind FailureKind

	// ArgumentParseFailed and UnexpectedArgument.
	From, To int

	// ArgumentParseFailed.
	Reasons []string

	// ExpectedArg.
	Index int
	Hints []string
}

// Suggestions wraps a candidate list. A nil *Suggestions means "no opinion";
// a non-nil one with an empty Words slice means "deliberately nothing to
// suggest here" — the two are distinct outcomes tracked separately by
// Parse's second return value.
type Suggestions struct {
	Words []string
}

// Result is the outcome of parsing a full command: either a built value, or
// a failure describing how far parsing got (for ranking alternatives) and
// why.
type Result[Res any] struct {
	parsed     bool
	value      Res
	parsedUpTo int
	failure    Failure
}

// Parsed builds a successful Result.
func Parsed[Res any](value Res) Result[Res] {
	return Result[Res]{parsed: true, value: value}
}

// Failed builds a failed Result.
func Failed[Res any](parsedUpTo int, failure Failure) Result[Res] {
	return Result[Res]{parsedUpTo: parsedUpTo, failure: failure}
}

// IsParsed reports whether r holds a successfully parsed value.
func (r Result[Res]) IsParsed() bool { return r.parsed }

// Value returns the parsed value. It panics if r is a failure.
func (r Result[Res]) Value() Res {
	if !r.parsed {
		panic("cmdparse: Value() called on a failed Result")
	}
	return r.value
}

// ParsedUpTo returns how far parsing got before failing. Valid only when r
// is a failure.
func (r Result[Res]) ParsedUpTo() int { return r.parsedUpTo }

// Failure returns the failure detail. Valid only when r is a failure.
func (r Result[Res]) Failure() Failure { return r.failure }

// Merge combines two results, preferring r, the way Alternatives combines
// its children. Parsed wins over any failure, with r winning ties. Between
// two failures, the one with the larger parsedUpTo wins. On an exact tie
// with a matching Kind, reasons/hints are concatenated (r's first); a tie
// between differing Kinds keeps r unchanged. Such a tie does occur: a
// no-args form reports UnexpectedArgument at 0 for any token, while a
// one-argument form whose parser matches nothing of that token reports
// ArgumentParseFailed at 0 too.
func (r Result[Res]) Merge(other Result[Res]) Result[Res] {
	if r.parsed {
		return r
	}
	if other.parsed {
		return other
	}

	switch {
	case r.parsedUpTo > other.parsedUpTo:
		return r
	case r.parsedUpTo < other.parsedUpTo:
		return other
	}

	if r.failure.Kind != other.failure.Kind {
		return r
	}

	switch r.failure.Kind {
	case ArgumentParseFailed:
		reasons := make([]string, 0, len(r.failure.Reasons)+len(other.failure.Reasons))
		reasons = append(reasons, r.failure.Reasons...)
		reasons = append(reasons, other.failure.Reasons...)
		return Result[Res]{
			parsedUpTo: r.parsedUpTo,
			failure: Failure{
				Kind: ArgumentParseFailed, From: r.failure.From, To: r.failure.To,
				Reasons: reasons,
			},
		}
	case ExpectedArg:
		hints := make([]string, 0, len(r.failure.Hints)+len(other.failure.Hints))
		hints = append(hints, r.failure.Hints...)
		hints = append(hints, other.failure.Hints...)
		return Result[Res]{
			parsedUpTo: r.parsedUpTo,
			failure:    Failure{Kind: ExpectedArg, Index: r.failure.Index, Hints: hints},
		}
	default: // UnexpectedArgument
		return r
	}
}

// Parser is a command-level grammar producing a value of type Res.
type Parser[Res any] interface {
	// Parse consumes input (the argument region following a command
	// keyword). pos, when non-nil, is the byte offset of the cursor within
	// input.
	Parse(input string, pos *int) (Result[Res], *Suggestions)
}

// token is a whitespace-delimited chunk of the input, with its byte bounds.
type token struct {
	text     string
	from, to int
}

// tokenize splits input on Unicode whitespace, recording each token's byte
// bounds in the original string.
func tokenize(input string) []token {
	var toks []token
	i := 0
	n := len(input)
	for i < n {
		r, size := utf8.DecodeRuneInString(input[i:])
		for i < n && unicode.IsSpace(r) {
			i += size
			if i >= n {
				break
			}
			r, size = utf8.DecodeRuneInString(input[i:])
		}
		if i >= n {
			break
		}

		start := i
		for i < n {
			r, size = utf8.DecodeRuneInString(input[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		toks = append(toks, token{text: input[start:i], from: start, to: i})
	}
	return toks
}

// cursorIn reports whether pos falls within [from, to], inclusive on both
// ends (a cursor sitting right at a token's start or end boundary is still
// considered "in" the token, per the grammar's suggestion rules).
func cursorIn(pos *int, from, to int) bool {
	return pos != nil && *pos >= from && *pos <= to
}

// argFailure converts a failed internal/argparse.Result into a command-level
// Failure and its scalar parsedUpTo, given the token it was parsed from.
// Failure.From/To always span the whole token, regardless of how far the
// underlying argument parser itself got; the scalar parsedUpTo used to rank
// alternatives, by contrast, reflects the argument parser's own progress,
// converted from a code-point offset into a byte offset within the token.
func argFailure(tok token, argParsedUpTo int, reasons []string) (int, Failure) {
	parsedUpTo := tok.from + text.BytePos(tok.text, argParsedUpTo)
	return parsedUpTo, Failure{Kind: ArgumentParseFailed, From: tok.from, To: tok.to, Reasons: reasons}
}

// expectedArg builds the failure for a missing required argument at index,
// along with its suggestions (non-nil only when the cursor sits in the
// argument's expected region: from the end of the previous token, or 0 if
// there is none, through the end of input).
func expectedArg(index int, hint func() []string, suggestion func(string) []string, input string, pos *int, regionStart int) (int, Failure, *Suggestions) {
	var suggestions *Suggestions
	if pos != nil && *pos >= regionStart && *pos <= len(input) {
		suggestions = &Suggestions{Words: suggestion("")}
	}
	return regionStart, Failure{Kind: ExpectedArg, Index: index, Hints: hint()}, suggestions
}

// unexpectedArgument builds the failure for a surplus token found after every
// expected argument has been consumed.
func unexpectedArgument(tok token, lastValidEnd int) (int, Failure) {
	return lastValidEnd, Failure{Kind: UnexpectedArgument, From: tok.from}
}
