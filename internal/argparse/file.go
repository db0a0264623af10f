package argparse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

type fileParser struct {
	base string
	hint string
}

// FileForDir builds a parser that accepts a file path relative to base. An
// absolute input path disregards base entirely.
func FileForDir(base, hint string) Parser[string] {
	return fileParser{base: base, hint: hint}
}

// FileForCurrentDir is like FileForDir, with base set to the process's
// current working directory.
func FileForCurrentDir(hint string) (Parser[string], error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return fileParser{base: base, hint: hint}, nil
}

type parsedInputKind int

const (
	invalidPath parsedInputKind = iota
	entryPrefix
	fileEntry
)

type parsedInput struct {
	kind       parsedInputKind
	err        error
	parent     string
	prefix     string
	parsedUpTo int
	file       string
}

// cutLastComponent removes the last path component from input, given as a
// plain string. path/filepath's Dir normalizes its input first, which would
// silently eat a trailing "/." — this operates on the raw string instead.
func cutLastComponent(input string) string {
	end := -1
	for i := len(input) - 1; i >= 0; i-- {
		if input[i] != '/' {
			end = i
			break
		}
	}

	head := input
	if end != -1 {
		head = input[:end+1]
	}

	idx := strings.LastIndexByte(head, '/')
	if idx == -1 {
		return ""
	}
	return head[:idx+1]
}

// resolve returns the absolute path. input may be absolute, in which case
// base is disregarded, matching filepath.Join's own handling of an absolute
// second argument... except filepath.Join does not special-case that, so
// this does it explicitly.
func resolve(base, input string) string {
	if filepath.IsAbs(input) {
		return filepath.Clean(input)
	}
	return filepath.Join(base, input)
}

// rawJoin joins base and input without Clean-ing the result: unlike
// resolve/filepath.Join, it does not lexically cancel a ".." segment
// against a preceding one. Path::push, which the upstream parser builds
// on, does not normalize either, so the fallback branch of parseInput uses
// this instead of resolve to decide what splitComponents should see.
func rawJoin(base, input string) string {
	if filepath.IsAbs(input) {
		return input
	}
	if strings.HasSuffix(base, "/") {
		return base + input
	}
	return base + "/" + input
}

// splitComponents breaks an absolute path into its non-empty, non-"."
// segments, preserving ".." entries literally rather than canceling them
// against a preceding segment — filepath.Clean cancels ".." lexically,
// which disagrees with the upstream parser's behavior for paths that do not
// exist yet (see parseInput's fallback branch).
func splitComponents(path string) []string {
	parts := strings.Split(path, "/")
	comps := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		comps = append(comps, p)
	}
	return comps
}

func parseInput(input, base string) parsedInput {
	if strings.HasSuffix(input, "/.") {
		trimmed := input[:len(input)-1]
		parent := resolve(base, trimmed[:len(trimmed)-1])
		return parsedInput{kind: entryPrefix, parent: parent, prefix: ".", parsedUpTo: len(trimmed)}
	}

	showDirContent := input == "" || strings.HasSuffix(input, "/")
	joined := resolve(base, input)

	info, err := os.Stat(joined)
	switch {
	case err == nil && !info.IsDir():
		return parsedInput{kind: fileEntry, file: joined}
	case err == nil && showDirContent:
		return parsedInput{kind: entryPrefix, parent: joined, prefix: "", parsedUpTo: len(input)}
	case err != nil && showDirContent:
		return parsedInput{kind: invalidPath, err: err}
	}

	comps := splitComponents(rawJoin(base, input))
	if len(comps) == 0 {
		return parsedInput{kind: invalidPath, err: err}
	}

	entry := comps[len(comps)-1]
	parentDir := "/" + strings.Join(comps[:len(comps)-1], "/")

	pinfo, perr := os.Stat(parentDir)
	if perr == nil && pinfo.IsDir() {
		return parsedInput{
			kind:       entryPrefix,
			parent:     parentDir,
			prefix:     entry,
			parsedUpTo: len(cutLastComponent(input)),
		}
	}

	return parsedInput{kind: invalidPath, err: err}
}

func findMatching(dir, prefix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var res []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if entry.IsDir() {
			name += "/"
		}
		res = append(res, name)
	}

	sort.Strings(res)
	return res
}

func (p fileParser) Parse(input string) Result[string] {
	switch parsed := parseInput(input, p.base); parsed.kind {
	case invalidPath:
		return Result[string]{parsedUpTo: utf8.RuneCountInString(input), reasons: []string{parsed.err.Error()}}
	case entryPrefix:
		// parsed.parsedUpTo is a byte length of a prefix of input; Result
		// counts code points.
		return Result[string]{parsedUpTo: utf8.RuneCountInString(input[:parsed.parsedUpTo])}
	default: // fileEntry
		return Parsed(parsed.file)
	}
}

func (p fileParser) Suggestion(inputPrefix string) []string {
	switch parsed := parseInput(inputPrefix, p.base); parsed.kind {
	case invalidPath:
		return []string{parsed.err.Error()}
	case entryPrefix:
		return findMatching(parsed.parent, parsed.prefix)
	default: // fileEntry
		name := filepath.Base(parsed.file)
		parent := filepath.Dir(parsed.file)
		return findMatching(parent, name)
	}
}

func (p fileParser) Hint() []string {
	return []string{p.hint}
}
