// Command icp-shell is a runnable host around the ICP core: it wires a
// command.Table (the built-in catalog commands plus help) to an
// edit.State, and drives it either through the interactive
// internal/shell renderer loop or, when stdout is not a terminal, a
// single-line non-interactive batch mode.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/ilya-bobyr/icp/internal/catalog"
	"github.com/ilya-bobyr/icp/internal/command"
	"github.com/ilya-bobyr/icp/internal/config"
	"github.com/ilya-bobyr/icp/internal/edit"
	"github.com/ilya-bobyr/icp/internal/shell"
	"github.com/ilya-bobyr/icp/internal/sink"
)

func main() {
	rootCmd := &cobra.Command{
		Use:              "icp-shell",
		Short:            "Interactive command prompt engine demo shell",
		Args:             cobra.NoArgs,
		RunE:             run,
		TraverseChildren: true,
	}

	rootCmd.Flags().String("workdir", "", "working directory for the shell command (default: the process's working directory)")
	rootCmd.Flags().String("history-file", "", "unused by the core; reserved for a host that wants to persist prompt history across runs")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	logger := log.New(os.Stderr, "icp-shell: ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Printf("config: %v, continuing with defaults", err)
		cfg = &config.File{}
	}

	workdir, _ := cmd.Flags().GetString("workdir")
	if workdir == "" && cfg.Workdir != nil {
		workdir = *cfg.Workdir
	}
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("icp-shell: %w", err)
		}
		workdir = wd
	}

	s := sink.NewLines()
	copyCmd := catalog.NewCopy(logger)
	shellCmd := catalog.NewShell(logger, workdir)
	table := command.NewTable(s, copyCmd, shellCmd)
	copyCmd.SetTable(table)

	prompt := resolvePrompt(cfg)
	state := edit.New(prompt, table)

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return runInteractive(state)
	}
	return runBatch(state, s)
}

// resolvePrompt applies the config file's prompt overrides, if any, on top
// of the built-in defaults.
func resolvePrompt(cfg *config.File) edit.Prompt {
	prompt := edit.Prompt{
		Empty:      "> ",
		Incomplete: "... ",
		Invalid:    "!! ",
		Complete:   "OK ",
	}
	if cfg.Prompts == nil {
		return prompt
	}
	if cfg.Prompts.Empty != nil {
		prompt.Empty = *cfg.Prompts.Empty
	}
	if cfg.Prompts.Incomplete != nil {
		prompt.Incomplete = *cfg.Prompts.Incomplete
	}
	if cfg.Prompts.Invalid != nil {
		prompt.Invalid = *cfg.Prompts.Invalid
	}
	if cfg.Prompts.Complete != nil {
		prompt.Complete = *cfg.Prompts.Complete
	}
	return prompt
}

func runInteractive(state *edit.State) error {
	p := tea.NewProgram(shell.New(state))
	_, err := p.Run()
	return err
}

// runBatch reads a single line from stdin, dispatches it through the same
// core command table an interactive run would use, and prints whatever the
// bound command pushed to the sink — the non-interactive fallback used
// when stdout is not a terminal (e.g. when piped or run in CI).
func runBatch(state *edit.State, lines *sink.Lines) error {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return nil
	}
	line = strings.TrimRight(line, "\n")

	for _, c := range line {
		state.Insert(c)
	}
	state.Execute()

	for _, l := range lines.All() {
		fmt.Println(l)
	}
	return nil
}
