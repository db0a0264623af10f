package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ilya-bobyr/icp/internal/cmdparse"
	"github.com/ilya-bobyr/icp/internal/sink"
	"github.com/ilya-bobyr/icp/internal/text"
)

// dispatchRe splits an input line into a leading keyword and the rest of the
// line, mirroring the two capture groups used throughout this package:
// group 1 is the keyword, group 2 is everything that follows it (after any
// separating whitespace is skipped).
var dispatchRe = regexp.MustCompile(`\s*(\S+)\s*(.*)`)

const helpBanner = "Chip Debugging Tool\n\n" +
	"Function key shortcuts are along the bottom of the screen.\n\n" +
	"Commands:\n"

// Table dispatches an input line to one of a fixed set of registered
// Commands, plus a built-in help command appended automatically.
type Table struct {
	commands []Command
	sink     sink.Sink
}

// NewTable builds a Table from commands and a terminal sink that command
// executors (notably help) may push lines to. It panics if two commands
// share a keyword.
func NewTable(s sink.Sink, commands ...Command) *Table {
	help := newHelp(s)

	all := make([]Command, 0, len(commands)+1)
	all = append(all, commands...)
	all = append(all, help)

	seen := make(map[string]bool, len(all))
	for _, c := range all {
		if seen[c.Keyword()] {
			panic("command: duplicate keyword: " + c.Keyword())
		}
		seen[c.Keyword()] = true
	}

	t := &Table{commands: all, sink: s}
	help.setTable(t)
	return t
}

// DefaultUsage renders a fixed banner followed by one line per registered
// command: a two-space indent, the keyword padded to the width of the
// widest registered keyword, a four-space gap, then the command's short
// usage string.
func (t *Table) DefaultUsage() string {
	maxWidth := 0
	for _, c := range t.commands {
		if n := len(c.Keyword()); n > maxWidth {
			maxWidth = n
		}
	}

	var b strings.Builder
	b.WriteString(helpBanner)
	for i, c := range t.commands {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %-*s    %s", maxWidth, c.Keyword(), c.ShortUsage())
	}
	return b.String()
}

// Parse dispatches input to a registered command, producing the advisory
// bundle the edit buffer copies verbatim. pos is the byte offset of the
// cursor within input.
func (t *Table) Parse(input string, pos int) ParseRes {
	idx := dispatchRe.FindStringSubmatchIndex(input)
	if idx == nil {
		return t.emptyInput()
	}
	ws, we := idx[2], idx[3]
	as, ae := idx[4], idx[5]
	word := input[ws:we]
	args := input[as:ae]

	for _, c := range t.commands {
		if c.Keyword() == word {
			var innerPos *int
			if pos >= as && pos <= ae {
				p := pos - as
				innerPos = &p
			}
			return t.parseArgs(c, args, innerPos, as, ae)
		}
	}

	var matching []Command
	for _, c := range t.commands {
		if strings.HasPrefix(c.Keyword(), word) {
			matching = append(matching, c)
		}
	}

	if len(matching) > 0 {
		if pos < ws || pos > we {
			return t.prefixNoHints()
		}
		return t.prefixCommand(word[:pos-ws], matching)
	}

	return t.noMatch()
}

func (t *Table) emptyInput() ParseRes {
	keywords := make([]string, len(t.commands))
	for i, c := range t.commands {
		keywords[i] = c.Keyword()
	}

	hint := "<command>"
	usage := "Waiting for a command"
	return ParseRes{
		InlineHint:  &hint,
		Suggestions: keywords,
		Usage:       &usage,
	}
}

// noMatch and prefixNoHints carry the original implementation's own
// placeholder strings forward verbatim for their hint/usage text — spec.md
// §9 Open Question (a) flags this text as left undecided by the
// specification, only constraining the advisory's shape (Error/Info,
// whole-line).
func (t *Table) noMatch() ParseRes {
	usage := "TODO: usage"
	return ParseRes{
		EndOfLineHint: &EndOfLineHint{Target: WholeLine(), Kind: Error, Text: "TODO no_match"},
		Suggestions:   []string{},
		Usage:         &usage,
	}
}

func (t *Table) prefixNoHints() ParseRes {
	usage := "TODO: prefix_command_no_hints usage"
	return ParseRes{
		EndOfLineHint: &EndOfLineHint{Target: WholeLine(), Kind: Info, Text: "TODO prefix_command_no_hints"},
		Suggestions:   []string{},
		Usage:         &usage,
	}
}

func (t *Table) prefixCommand(prefix string, matching []Command) ParseRes {
	keywords := make([]string, len(matching))
	for i, c := range matching {
		keywords[i] = c.Keyword()
	}

	inlineHint, completion := hintAndCompletion(prefix, keywords)
	usage := "TODO: prefix_command usage"
	return ParseRes{
		InlineHint:    inlineHint,
		Completion:    completion,
		EndOfLineHint: &EndOfLineHint{Target: WholeLine(), Kind: Info, Text: "<command>"},
		Suggestions:   keywords,
		Usage:         &usage,
	}
}

// hintAndCompletion implements the §4.7 advisory-derivation rule: let C be
// the code-point common prefix of keywords and P the typed prefix.
func hintAndCompletion(prefix string, keywords []string) (*string, *string) {
	common := text.CommonPrefix(keywords)
	commonLen := text.CodePointCount(common)
	prefixLen := text.CodePointCount(prefix)

	if commonLen == 0 || commonLen == prefixLen {
		return nil, nil
	}

	rest := string([]rune(common)[prefixLen:])
	if len(keywords) == 1 {
		completion := rest + " "
		return &rest, &completion
	}
	return &rest, &rest
}

// parseArgs converts a single command's own cmdparse.Result into a
// ParseRes. Its usage field, across every branch, carries forward the
// original implementation's own "TODO: parse_args usage" placeholder — see
// noMatch for why.
func (t *Table) parseArgs(cmd Command, args string, pos *int, as, ae int) ParseRes {
	res, suggestions := cmd.Parse(args, pos)

	suggWords := []string{}
	if suggestions != nil && suggestions.Words != nil {
		suggWords = suggestions.Words
	}

	usage := "TODO: parse_args usage"

	if res.IsParsed() {
		return ParseRes{
			Suggestions: suggWords,
			Usage:       &usage,
			Command:     res.Value(),
		}
	}

	failure := res.Failure()
	switch failure.Kind {
	case cmdparse.ArgumentParseFailed:
		return ParseRes{
			EndOfLineHint: &EndOfLineHint{
				Target: Substring(as+failure.From, as+failure.To),
				Kind:   Error,
				Text:   strings.Join(failure.Reasons, " | "),
			},
			Suggestions: suggWords,
			Usage:       &usage,
		}
	case cmdparse.ExpectedArg:
		return ParseRes{
			EndOfLineHint: &EndOfLineHint{
				Target: WholeLine(),
				Kind:   Error,
				Text:   strings.Join(failure.Hints, " | "),
			},
			Suggestions: suggWords,
			Usage:       &usage,
		}
	default: // UnexpectedArgument
		return ParseRes{
			EndOfLineHint: &EndOfLineHint{
				Target: Substring(as+failure.From, ae),
				Kind:   Error,
				Text:   "Unexpected argument",
			},
			Suggestions: suggWords,
			Usage:       &usage,
		}
	}
}
