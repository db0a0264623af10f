package command

import (
	"runtime"
	"testing"
	"weak"

	"github.com/ilya-bobyr/icp/internal/sink"
)

func TestHelpParseBeforeSetTablePanics(t *testing.T) {
	h := newHelp(sink.NewLines())

	defer func() {
		if recover() == nil {
			t.Fatal("Parse did not panic on an uninitialized help command")
		}
	}()
	h.Parse("", nil)
}

func TestHelpForUnregisteredKeywordPanics(t *testing.T) {
	var calls []string
	table := newTestTable(sink.NewLines(), &calls)

	defer func() {
		if recover() == nil {
			t.Fatal("helpFor did not panic for an unregistered keyword")
		}
	}()
	table.commands[len(table.commands)-1].(*helpCommand).helpFor("no-such-command")
}

func TestHelpParseAfterTableDroppedPanics(t *testing.T) {
	h := newHelp(sink.NewLines())
	func() {
		table := NewTable(sink.NewLines())
		h.table = weak.Make(table)
		h.initialized = true
	}()

	runtime.GC()
	runtime.GC()

	defer func() {
		if recover() == nil {
			t.Fatal("Parse did not panic after its table was dropped")
		}
	}()
	h.Parse("", nil)
}
