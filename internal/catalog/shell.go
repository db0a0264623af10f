package catalog

import (
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/ilya-bobyr/icp/internal/cmdparse"
	"github.com/ilya-bobyr/icp/internal/command"
)

// shellCommand is the built-in "shell" command: executing it suspends the
// prompt and spawns a pty-backed subshell in workdir, inheriting the
// controlling terminal until the subshell exits. It needs no back
// reference to its table; it only reads the environment and workdir it was
// built with.
type shellCommand struct {
	logger  *log.Logger
	workdir string
}

// NewShell builds the "shell" command. workdir is the directory the
// subshell starts in; an empty workdir inherits the host process's own
// current directory.
func NewShell(logger *log.Logger, workdir string) command.Command {
	s := &shellCommand{logger: logger, workdir: workdir}
	return command.New("shell", s.ShortUsage(), s.LongUsage(),
		cmdparse.NoArgs(func() command.Executor {
			return s.execute
		}))
}

func (s *shellCommand) ShortUsage() string {
	return "drop to an interactive subshell"
}

func (s *shellCommand) LongUsage() string {
	return "shell\n\n    Start an interactive subshell in the configured working directory.\n" +
		"    Exit the subshell to return to the command prompt.\n"
}

func (s *shellCommand) execute() {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = "/bin/sh"
	}

	c := exec.Command(shellPath)
	c.Dir = s.workdir

	ptmx, err := pty.Start(c)
	if err != nil {
		s.logf("shell: failed to start pty: %v", err)
		return
	}
	defer func() { _ = ptmx.Close() }()

	resize := make(chan os.Signal, 1)
	signal.Notify(resize, syscall.SIGWINCH)
	defer signal.Stop(resize)
	go func() {
		for range resize {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				s.logf("shell: failed to resize pty: %v", err)
			}
		}
	}()
	resize <- syscall.SIGWINCH

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		s.logf("shell: failed to enter raw mode: %v", err)
		return
	}
	defer func() { _ = term.Restore(int(os.Stdin.Fd()), oldState) }()

	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()
	_, _ = io.Copy(os.Stdout, ptmx)

	_ = c.Wait()
}

func (s *shellCommand) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
