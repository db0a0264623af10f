package argparse

import "testing"

func checkHint(t *testing.T, name string, p interface{ Hint() []string }, want []string) {
	t.Helper()
	got := p.Hint()
	if !equalStrings(got, want) {
		t.Errorf("%s.Hint() = %v, want %v", name, got, want)
	}
}

func checkParse[T comparable](t *testing.T, name string, p Parser[T], input string, want T) {
	t.Helper()
	res := p.Parse(input)
	if !res.IsParsed() || res.Value() != want {
		t.Errorf("%s.Parse(%q) = %+v, want Parsed(%v)", name, input, res, want)
	}
}

func checkFailure[T any](t *testing.T, name string, p Parser[T], input string, parsedUpTo int, reasons []string) {
	t.Helper()
	res := p.Parse(input)
	if res.IsParsed() {
		t.Fatalf("%s.Parse(%q) succeeded, want failure", name, input)
	}
	if res.ParsedUpTo() != parsedUpTo {
		t.Errorf("%s.Parse(%q).ParsedUpTo() = %d, want %d", name, input, res.ParsedUpTo(), parsedUpTo)
	}
	if !equalStrings(res.Reasons(), reasons) {
		t.Errorf("%s.Parse(%q).Reasons() = %v, want %v", name, input, res.Reasons(), reasons)
	}
}

func checkSuggestions(t *testing.T, name string, p interface{ Suggestion(string) []string }, prefix string, want []string) {
	t.Helper()
	got := p.Suggestion(prefix)
	if !equalStrings(got, want) {
		t.Errorf("%s.Suggestion(%q) = %v, want %v", name, prefix, got, want)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestU8Parsing(t *testing.T) {
	p := Int[uint8]()
	hint := []string{"<0-255>"}

	checkHint(t, "parser", p, hint)

	checkParse(t, "parser", p, "0", uint8(0))
	checkParse(t, "parser", p, "1", uint8(1))
	checkParse(t, "parser", p, "255", uint8(255))

	checkFailure(t, "parser", p, "-1", 2, hint)
	checkFailure(t, "parser", p, "", 0, hint)
	checkFailure(t, "parser", p, "a", 0, hint)
	checkFailure(t, "parser", p, "z", 0, hint)
	checkFailure(t, "parser", p, "*", 0, hint)
	checkFailure(t, "parser", p, "256", 3, hint)

	checkSuggestions(t, "parser", p, "", nil)
	checkSuggestions(t, "parser", p, "1", nil)
}

func TestU8WithHint(t *testing.T) {
	p := IntNamed[uint8]("width")
	hint := []string{"<width: 0-255>"}

	checkHint(t, "parser", p, hint)

	checkParse(t, "parser", p, "0", uint8(0))
	checkParse(t, "parser", p, "255", uint8(255))

	checkFailure(t, "parser", p, "-1", 2, hint)
	checkFailure(t, "parser", p, "256", 3, hint)
}

func TestI64WithRange(t *testing.T) {
	p := IntRange[int64](-10, 1700)
	belowHint := []string{"min: -10"}
	aboveHint := []string{"max: 1700"}
	hint := []string{"<-10 - 1700>"}

	checkHint(t, "i64_arg", p, hint)

	checkParse(t, "i64_arg", p, "-10", int64(-10))
	checkParse(t, "i64_arg", p, "-7", int64(-7))
	checkParse(t, "i64_arg", p, "0", int64(0))
	checkParse(t, "i64_arg", p, "1700", int64(1700))

	checkFailure(t, "i64_arg", p, "-100", 4, belowHint)
	checkFailure(t, "i64_arg", p, "-11", 3, belowHint)
	checkFailure(t, "i64_arg", p, "", 0, hint)
	checkFailure(t, "i64_arg", p, "a", 0, hint)
	checkFailure(t, "i64_arg", p, "1701", 4, aboveHint)
	checkFailure(t, "i64_arg", p, "100000", 6, aboveHint)
}

func TestU64WithRangeAndHint(t *testing.T) {
	p := IntRangeNamed[uint64](10, 100, "height")
	belowHint := []string{"min height: 10"}
	aboveHint := []string{"max height: 100"}
	hint := []string{"<height: 10-100>"}

	checkHint(t, "u64_arg", p, hint)

	checkParse(t, "u64_arg", p, "10", uint64(10))
	checkParse(t, "u64_arg", p, "17", uint64(17))
	checkParse(t, "u64_arg", p, "100", uint64(100))

	checkFailure(t, "u64_arg", p, "-7", 2, hint)
	checkFailure(t, "u64_arg", p, "0", 1, belowHint)
	checkFailure(t, "u64_arg", p, "3", 1, belowHint)
	checkFailure(t, "u64_arg", p, "101", 3, aboveHint)
	checkFailure(t, "u64_arg", p, "100000", 6, aboveHint)
}

func TestIntMap(t *testing.T) {
	base := Int[int8]()
	saturated := Map[int8, int8](base, func(v int8) int8 {
		if v < 0 {
			return 0
		}
		return v
	})

	hint := []string{"<-128 - 127>"}
	checkHint(t, "saturated_arg", saturated, hint)

	checkParse(t, "saturated_arg", saturated, "-10", int8(0))
	checkParse(t, "saturated_arg", saturated, "0", int8(0))
	checkParse(t, "saturated_arg", saturated, "33", int8(33))

	checkFailure(t, "saturated_arg", saturated, "-1000", 5, hint)
	checkFailure(t, "saturated_arg", saturated, "200", 3, hint)
}
