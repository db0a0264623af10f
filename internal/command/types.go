// Package command implements the uniform command abstraction and the
// top-level keyword dispatcher: a Table holds a set of user-registered
// Commands plus a built-in help command, and turns an input line into a
// ParseRes — the rendering-ready advisory bundle the edit buffer copies
// verbatim after every keystroke.
package command

import "github.com/ilya-bobyr/icp/internal/cmdparse"

// Executor is a bound, ready-to-run command: the value a successful parse
// produces. Its captured arguments already carry whatever the command
// needs; invoking it may push lines to the table's sink but must not
// re-enter any edit operation.
type Executor func()

// HintKind distinguishes an informational end-of-line hint from one
// reporting a parse error.
type HintKind int

const (
	Info HintKind = iota
	Error
)

// HintTarget is either the whole input line, or a byte range within it.
type HintTarget struct {
	wholeLine  bool
	from, to   int
	isSubrange bool
}

// WholeLine targets the entire input line.
func WholeLine() HintTarget {
	return HintTarget{wholeLine: true}
}

// Substring targets the byte range [from, to) of the input line.
func Substring(from, to int) HintTarget {
	return HintTarget{isSubrange: true, from: from, to: to}
}

// IsWholeLine reports whether the target is the whole line.
func (t HintTarget) IsWholeLine() bool { return t.wholeLine }

// Range returns the target's byte bounds. Valid only when !IsWholeLine().
func (t HintTarget) Range() (from, to int) { return t.from, t.to }

// EndOfLineHint is rendered past the end of the current input.
type EndOfLineHint struct {
	Target HintTarget
	Kind   HintKind
	Text   string
}

// ParseRes is the advisory bundle derived from a single call to
// Table.Parse: every field the edit buffer's own advisory bundle copies
// verbatim.
type ParseRes struct {
	InlineHint    *string
	Completion    *string
	EndOfLineHint *EndOfLineHint
	Suggestions   []string
	Usage         *string
	Command       Executor // nil means no command is bound
}

// Command is the uniform representation of a user-registered command.
type Command interface {
	Keyword() string
	ShortUsage() string
	LongUsage() string
	// Parse parses the argument region following the command's keyword.
	// pos, when non-nil, is the byte offset of the cursor within input.
	Parse(input string, pos *int) (cmdparse.Result[Executor], *cmdparse.Suggestions)
}

// simpleCommand is the straightforward Command implementation: a fixed set
// of help strings around a cmdparse.Parser.
type simpleCommand struct {
	keyword    string
	shortUsage string
	longUsage  string
	parser     cmdparse.Parser[Executor]
}

// New builds a Command from a keyword, its two usage strings, and the
// command-parser combinator tree that parses its arguments into an
// Executor.
func New(keyword, shortUsage, longUsage string, parser cmdparse.Parser[Executor]) Command {
	return simpleCommand{keyword: keyword, shortUsage: shortUsage, longUsage: longUsage, parser: parser}
}

func (c simpleCommand) Keyword() string    { return c.keyword }
func (c simpleCommand) ShortUsage() string { return c.shortUsage }
func (c simpleCommand) LongUsage() string  { return c.longUsage }

func (c simpleCommand) Parse(input string, pos *int) (cmdparse.Result[Executor], *cmdparse.Suggestions) {
	return c.parser.Parse(input, pos)
}
