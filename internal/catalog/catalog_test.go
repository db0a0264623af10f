package catalog

import (
	"log"
	"testing"

	"github.com/ilya-bobyr/icp/internal/command"
	"github.com/ilya-bobyr/icp/internal/sink"
)

func TestCopyParseBeforeSetTablePanics(t *testing.T) {
	c := NewCopy(nil)

	defer func() {
		if recover() == nil {
			t.Fatal("Parse before SetTable did not panic")
		}
	}()
	c.Parse("", nil)
}

func TestCopyParsesNoArgsAndBindsExecutor(t *testing.T) {
	c := NewCopy(log.New(testWriter{t}, "", 0))
	s := sink.NewLines()
	table := command.NewTable(s, c)
	c.SetTable(table)

	res, _ := c.Parse("", nil)
	if !res.IsParsed() {
		t.Fatalf("Parse(\"\") did not parse: %+v", res.Failure())
	}
	if res.Value() == nil {
		t.Fatal("Parse(\"\") bound a nil Executor")
	}

	// Invoking the executor should not panic even if the host has no real
	// clipboard backend; failures are logged, not propagated.
	res.Value()()
}

func TestShellCommandKeywordAndUsage(t *testing.T) {
	s := NewShell(nil, "")
	if s.Keyword() != "shell" {
		t.Fatalf("Keyword() = %q, want %q", s.Keyword(), "shell")
	}
	if s.ShortUsage() == "" || s.LongUsage() == "" {
		t.Fatal("ShortUsage()/LongUsage() must not be empty")
	}

	res, _ := s.Parse("", nil)
	if !res.IsParsed() {
		t.Fatalf("Parse(\"\") did not parse: %+v", res.Failure())
	}
	if res.Value() == nil {
		t.Fatal("Parse(\"\") bound a nil Executor")
	}
	// The bound executor spawns a real subshell; it is intentionally not
	// invoked here.
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", p)
	return len(p), nil
}
