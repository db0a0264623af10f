// Package catalog provides built-in commands that are not part of the
// core ICP library but exercise it end to end: copy reaches the system
// clipboard, shell spawns a pty-backed subshell. Neither belongs in the
// core packages, which must stay free of I/O.
package catalog

import (
	"log"
	"weak"

	"github.com/atotto/clipboard"

	"github.com/ilya-bobyr/icp/internal/cmdparse"
	"github.com/ilya-bobyr/icp/internal/command"
)

// copyCommand is the built-in "copy" command: it copies the owning table's
// current default usage banner to the system clipboard. Like the core
// help command, it needs a back reference to the table that will own it,
// so it is built uninitialized and wired in a second step once the table
// exists; the reference is a weak.Pointer, non-owning for the same reason
// help's is.
type copyCommand struct {
	logger *log.Logger

	initialized bool
	table       weak.Pointer[command.Table]
	parser      cmdparse.Parser[command.Executor]
}

// NewCopy builds the "copy" command. SetTable must be called once, after
// the owning command.Table has been fully constructed, before Parse is
// ever invoked.
func NewCopy(logger *log.Logger) *copyCommand {
	return &copyCommand{logger: logger}
}

// SetTable wires the back reference. Must be called exactly once.
func (c *copyCommand) SetTable(t *command.Table) {
	c.table = weak.Make(t)
	c.initialized = true
	c.parser = cmdparse.NoArgs(func() command.Executor {
		return c.execute
	})
}

func (c *copyCommand) Keyword() string { return "copy" }

func (c *copyCommand) ShortUsage() string {
	return "copy the command list to the clipboard"
}

func (c *copyCommand) LongUsage() string {
	return "copy\n\n    Copy the current command usage banner to the system clipboard.\n"
}

func (c *copyCommand) Parse(input string, pos *int) (cmdparse.Result[command.Executor], *cmdparse.Suggestions) {
	c.tableOrPanic() // fail fast, even though a no-args parser never needs it
	return c.parser.Parse(input, pos)
}

// tableOrPanic upgrades the weak back reference, panicking if SetTable was
// never called or the table it was wired to has since been dropped: both
// are programming errors, mirroring the core help command's own contract.
func (c *copyCommand) tableOrPanic() *command.Table {
	if !c.initialized {
		panic("catalog: copy.Parse called before SetTable was called")
	}
	t := c.table.Value()
	if t == nil {
		panic("catalog: copy.Parse called after its commands table was dropped")
	}
	return t
}

func (c *copyCommand) execute() {
	t := c.tableOrPanic()

	banner := t.DefaultUsage()
	if err := clipboard.WriteAll(banner); err != nil {
		if c.logger != nil {
			c.logger.Printf("copy: failed to write to clipboard: %v", err)
		}
		return
	}
	if c.logger != nil {
		c.logger.Printf("copy: wrote %d bytes to the clipboard", len(banner))
	}
}
