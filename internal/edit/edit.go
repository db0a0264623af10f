// Package edit implements the command prompt's edit-buffer state machine:
// the single mutable home for the input line, its cursor, and the advisory
// bundle derived from them after every mutation.
package edit

import (
	"unicode"

	"github.com/ilya-bobyr/icp/internal/command"
	"github.com/ilya-bobyr/icp/internal/history"
	"github.com/ilya-bobyr/icp/internal/text"
)

// Prompt holds the four prompt strings shown depending on the state of the
// current input, selected by CurrentPrompt.
type Prompt struct {
	// Empty is shown when no text has been entered.
	Empty string
	// Incomplete is shown when the input does not yet form a full command,
	// but could be extended into one.
	Incomplete string
	// Invalid is shown when the input cannot be extended into any valid
	// command.
	Invalid string
	// Complete is shown when the input is a full command, ready to execute.
	Complete string
}

// Advisory is the rendering-ready bundle recomputed after every mutation; it
// mirrors command.ParseRes field for field.
type Advisory struct {
	InlineHint    *string
	Completion    *string
	EndOfLineHint *command.EndOfLineHint
	Suggestions   []string
	Usage         *string
	Command       command.Executor
}

// State is the edit buffer: the current input, its cursor, and the
// advisory bundle derived from them. The cursor is a code-point index, not
// a byte offset; every mutation converts to bytes only where a specific
// byte position is actually needed.
type State struct {
	table  *command.Table
	prompt Prompt

	input string
	pos   int

	advisory Advisory
	history  *history.History
}

// New returns a State with empty input, cursor at 0, and its advisory
// bundle already computed.
func New(prompt Prompt, table *command.Table) *State {
	s := &State{prompt: prompt, table: table, history: history.New()}
	s.recompute()
	return s
}

// Input returns the current input line.
func (s *State) Input() string { return s.input }

// Pos returns the cursor's code-point index into Input().
func (s *State) Pos() int { return s.pos }

// Advisory returns the advisory bundle as of the last mutation.
func (s *State) Advisory() Advisory { return s.advisory }

// CurrentPrompt selects which of the four Prompt strings applies to the
// current state.
func (s *State) CurrentPrompt() string {
	switch {
	case s.input == "":
		return s.prompt.Empty
	case s.advisory.Command != nil:
		return s.prompt.Complete
	case len(s.advisory.Suggestions) > 0:
		return s.prompt.Incomplete
	default:
		return s.prompt.Invalid
	}
}

// recompute derives the advisory bundle from the current input and cursor.
// Every edit operation ends by calling this.
func (s *State) recompute() {
	bytePos := text.BytePos(s.input, s.pos)
	res := s.table.Parse(s.input, bytePos)
	s.advisory = Advisory{
		InlineHint:    res.InlineHint,
		Completion:    res.Completion,
		EndOfLineHint: res.EndOfLineHint,
		Suggestions:   res.Suggestions,
		Usage:         res.Usage,
		Command:       res.Command,
	}
}

// Insert inserts c at the cursor and advances the cursor by one code
// point. Control code points are silently ignored.
func (s *State) Insert(c rune) {
	if unicode.IsControl(c) {
		return
	}

	bytePos := text.BytePos(s.input, s.pos)
	s.input = s.input[:bytePos] + string(c) + s.input[bytePos:]
	s.pos++
	s.recompute()
}

// Backspace removes the code point immediately before the cursor. No-op at
// the start of the input.
func (s *State) Backspace() {
	if s.pos == 0 || s.input == "" {
		return
	}

	bytePos := text.BytePos(s.input, s.pos)
	prevBytePos := text.BytePos(s.input, s.pos-1)
	s.input = s.input[:prevBytePos] + s.input[bytePos:]
	s.pos--
	s.recompute()
}

// DeleteForward removes the code point at the cursor. No-op at the end of
// the input.
func (s *State) DeleteForward() {
	count := text.CodePointCount(s.input)
	if s.pos >= count {
		return
	}

	bytePos := text.BytePos(s.input, s.pos)
	nextBytePos := text.BytePos(s.input, s.pos+1)
	s.input = s.input[:bytePos] + s.input[nextBytePos:]
	s.recompute()
}

// EraseToStart removes everything from the start of the input up to the
// cursor, and moves the cursor to 0. No-op when the cursor is already at 0.
func (s *State) EraseToStart() {
	if s.pos == 0 {
		return
	}

	bytePos := text.BytePos(s.input, s.pos)
	s.input = s.input[bytePos:]
	s.pos = 0
	s.recompute()
}

// CursorLeft moves the cursor one code point toward the start. No-op at 0.
func (s *State) CursorLeft() {
	if s.pos == 0 {
		return
	}
	s.pos--
	s.recompute()
}

// CursorRight moves the cursor one code point toward the end. No-op at the
// end of the input.
func (s *State) CursorRight() {
	count := text.CodePointCount(s.input)
	if s.pos >= count {
		return
	}
	s.pos++
	s.recompute()
}

// CursorStart moves the cursor to 0. No-op if already there.
func (s *State) CursorStart() {
	if s.pos == 0 {
		return
	}
	s.pos = 0
	s.recompute()
}

// CursorEnd moves the cursor to the end of the input. No-op if already
// there.
func (s *State) CursorEnd() {
	count := text.CodePointCount(s.input)
	if s.pos >= count {
		return
	}
	s.pos = count
	s.recompute()
}

// HistoryPrev replaces the input with the previous history entry, as
// History.Prev describes. If the cursor was at the end of the input, it
// moves to the end of the replacement too.
func (s *State) HistoryPrev() {
	atEnd := s.pos >= text.CodePointCount(s.input)
	s.input = s.history.Prev(s.input)
	if atEnd {
		s.pos = text.CodePointCount(s.input)
	}
	s.recompute()
}

// HistoryNext replaces the input with the next history entry, as
// History.Next describes. If the cursor was at the end of the input, it
// moves to the end of the replacement too.
func (s *State) HistoryNext() {
	atEnd := s.pos >= text.CodePointCount(s.input)
	s.input = s.history.Next(s.input)
	if atEnd {
		s.pos = text.CodePointCount(s.input)
	}
	s.recompute()
}

// Complete inserts the current Advisory().Completion at the cursor, if any,
// and advances the cursor by the code-point count of the inserted text.
func (s *State) Complete() {
	if s.advisory.Completion == nil {
		return
	}

	inserted := *s.advisory.Completion
	bytePos := text.BytePos(s.input, s.pos)
	s.input = s.input[:bytePos] + inserted + s.input[bytePos:]
	s.pos += text.CodePointCount(inserted)
	s.recompute()
}

// Execute invokes the current Advisory().Command, if any: the input is
// appended to history, the buffer is cleared, and the advisory bundle is
// recomputed before the executor runs.
func (s *State) Execute() {
	exec := s.advisory.Command
	if exec == nil {
		return
	}

	s.history.Append(s.input)
	s.input = ""
	s.pos = 0
	s.recompute()
	exec()
}
