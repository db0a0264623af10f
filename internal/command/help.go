package command

import (
	"fmt"
	"strings"
	"weak"

	"github.com/ilya-bobyr/icp/internal/argparse"
	"github.com/ilya-bobyr/icp/internal/cmdparse"
	"github.com/ilya-bobyr/icp/internal/sink"
)

// helpCommand is the built-in "help" command. Because it needs the full
// Table (which in turn owns it), it is built uninitialized and wired to its
// owning Table in a second step, once the Table exists. The back reference
// is a weak.Pointer: non-owning, so the cycle does not keep the Table alive
// past its last strong reference, matching the lifetime contract a
// consumer embedding this package would expect.
type helpCommand struct {
	sink sink.Sink

	initialized bool
	table       weak.Pointer[Table]
	parser      cmdparse.Parser[Executor]
}

func newHelp(s sink.Sink) *helpCommand {
	return &helpCommand{sink: s}
}

// setTable wires the back reference and builds the argument parser over the
// table's final keyword set. Must be called exactly once, after the owning
// Table has been fully constructed.
func (h *helpCommand) setTable(t *Table) {
	keywords := make([]string, len(t.commands))
	for i, c := range t.commands {
		keywords[i] = c.Keyword()
	}

	noArgs := cmdparse.NoArgs(func() Executor {
		return h.helpForAll
	})

	arg1 := argparse.KeywordSetWithHint(keywords, []string{"<command name>"})
	oneArg := cmdparse.OneArg(arg1, func(keyword string) Executor {
		return func() { h.helpFor(keyword) }
	})

	h.parser = cmdparse.Alternatives[Executor](noArgs, oneArg)
	h.table = weak.Make(t)
	h.initialized = true
}

func (h *helpCommand) Keyword() string { return "help" }

func (h *helpCommand) ShortUsage() string {
	return "All the commands and their descriptions."
}

func (h *helpCommand) LongUsage() string {
	return "help\n\n" +
		"    Shows the list of all the supported commands along with their\n" +
		"    descriptions.\n\n" +
		"help <command>\n\n" +
		"    Show detailed description of the specified command.\n"
}

func (h *helpCommand) Parse(input string, pos *int) (cmdparse.Result[Executor], *cmdparse.Suggestions) {
	h.tableOrPanic() // fail fast, even if the chosen alternative never needs it
	return h.parser.Parse(input, pos)
}

// tableOrPanic upgrades the weak back reference, panicking if help was never
// wired to a table, or if the table it was wired to no longer exists.
func (h *helpCommand) tableOrPanic() *Table {
	if !h.initialized {
		panic("command: help.Parse called before setTable was called")
	}
	t := h.table.Value()
	if t == nil {
		panic("command: help.Parse called after its commands table was dropped")
	}
	return t
}

func (h *helpCommand) helpForAll() {
	t := h.tableOrPanic()
	t.sink.Extend(strings.Split(t.DefaultUsage(), "\n"))
}

func (h *helpCommand) helpFor(keyword string) {
	t := h.tableOrPanic()
	for _, c := range t.commands {
		if c.Keyword() == keyword {
			t.sink.Extend(strings.Split(c.LongUsage(), "\n"))
			return
		}
	}
	panic(fmt.Sprintf("command: help requested for unregistered keyword %q", keyword))
}
