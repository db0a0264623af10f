package argparse

import (
	"reflect"
	"testing"
)

func TestResultMergeParsedWinsOverFailure(t *testing.T) {
	parsed := Parsed(7)
	failed := Failed[int](3, "expected a digit")

	if got := parsed.Merge(failed); !got.IsParsed() || got.Value() != 7 {
		t.Errorf("Parsed.Merge(Failed) = %+v, want Parsed(7)", got)
	}
	if got := failed.Merge(parsed); !got.IsParsed() || got.Value() != 7 {
		t.Errorf("Failed.Merge(Parsed) = %+v, want Parsed(7)", got)
	}
}

func TestResultMergeParsedWinsTies(t *testing.T) {
	a := Parsed(1)
	b := Parsed(2)

	if got := a.Merge(b); got.Value() != 1 {
		t.Errorf("a.Merge(b) = %v, want 1 (left wins ties)", got.Value())
	}
}

func TestResultMergeFailureLargerParsedUpToWins(t *testing.T) {
	shallow := Failed[int](1, "a")
	deep := Failed[int](5, "b")

	if got := shallow.Merge(deep); got.ParsedUpTo() != 5 || !reflect.DeepEqual(got.Reasons(), []string{"b"}) {
		t.Errorf("shallow.Merge(deep) = %+v, want parsedUpTo=5 reasons=[b]", got)
	}
	if got := deep.Merge(shallow); got.ParsedUpTo() != 5 || !reflect.DeepEqual(got.Reasons(), []string{"b"}) {
		t.Errorf("deep.Merge(shallow) = %+v, want parsedUpTo=5 reasons=[b]", got)
	}
}

func TestResultMergeFailureEqualParsedUpToConcatenatesReasons(t *testing.T) {
	a := Failed[int](3, "a1", "a2")
	b := Failed[int](3, "b1")

	got := a.Merge(b)
	if got.ParsedUpTo() != 3 {
		t.Fatalf("ParsedUpTo() = %d, want 3", got.ParsedUpTo())
	}
	if want := []string{"a1", "a2", "b1"}; !reflect.DeepEqual(got.Reasons(), want) {
		t.Errorf("Reasons() = %v, want %v", got.Reasons(), want)
	}

	got2 := b.Merge(a)
	if want := []string{"b1", "a1", "a2"}; !reflect.DeepEqual(got2.Reasons(), want) {
		t.Errorf("b.Merge(a).Reasons() = %v, want %v", got2.Reasons(), want)
	}
}

func TestResultMergeIsAssociative(t *testing.T) {
	a := Failed[int](2, "a")
	b := Failed[int](5, "b")
	c := Failed[int](5, "c")

	left := a.Merge(b).Merge(c)
	right := a.Merge(b.Merge(c))

	if left.ParsedUpTo() != right.ParsedUpTo() || !reflect.DeepEqual(left.Reasons(), right.Reasons()) {
		t.Errorf("Merge is not associative: (a.Merge(b)).Merge(c) = %+v, a.Merge(b.Merge(c)) = %+v", left, right)
	}
}

func TestAdaptIgnoresContext(t *testing.T) {
	base := KeywordSet("east", "west")
	adapted := Adapt[string, string](base)

	res := adapted.Parse("ignored-context", "east")
	if !res.IsParsed() || res.Value() != "east" {
		t.Errorf("adapted.Parse(_, %q) = %+v, want Parsed(east)", "east", res)
	}

	if got := adapted.Hint("ignored-context"); !reflect.DeepEqual(got, base.Hint()) {
		t.Errorf("adapted.Hint(_) = %v, want %v", got, base.Hint())
	}
	if got := adapted.Suggestion("ignored-context", "e"); !reflect.DeepEqual(got, base.Suggestion("e")) {
		t.Errorf("adapted.Suggestion(_, e) = %v, want %v", got, base.Suggestion("e"))
	}
}

func TestMapConvertsParsedValue(t *testing.T) {
	base := Int[int]()
	doubled := Map(base, func(v int) int { return v * 2 })

	res := doubled.Parse("21")
	if !res.IsParsed() || res.Value() != 42 {
		t.Errorf("doubled.Parse(21) = %+v, want Parsed(42)", res)
	}
}

func TestMapPreservesFailure(t *testing.T) {
	base := Int[uint8]()
	doubled := Map(base, func(v uint8) uint8 { return v * 2 })

	res := doubled.Parse("abc")
	if res.IsParsed() {
		t.Fatalf("doubled.Parse(abc) succeeded, want failure")
	}
	if want := base.Parse("abc"); res.ParsedUpTo() != want.ParsedUpTo() || !reflect.DeepEqual(res.Reasons(), want.Reasons()) {
		t.Errorf("doubled.Parse(abc) = %+v, want failure matching base: %+v", res, want)
	}
}

func TestMapArg2ReceivesContext(t *testing.T) {
	base := Adapt[int, string](KeywordSet("a", "b"))
	withCtx := MapArg2(base, func(ctx int, v string) string {
		if ctx > 0 {
			return v + "+"
		}
		return v
	})

	if got := withCtx.Parse(1, "a"); got.Value() != "a+" {
		t.Errorf("withCtx.Parse(1, a) = %v, want a+", got.Value())
	}
	if got := withCtx.Parse(0, "a"); got.Value() != "a" {
		t.Errorf("withCtx.Parse(0, a) = %v, want a", got.Value())
	}
}

func TestAlternativesTriesEachAndMerges(t *testing.T) {
	p := Alternatives(
		KeywordSet("east", "west"),
		KeywordSet("north", "south"),
	)

	checkParse(t, "alternatives", p, "east", "east")
	checkParse(t, "alternatives", p, "north", "north")

	res := p.Parse("xyz")
	if res.IsParsed() {
		t.Fatalf("p.Parse(xyz) succeeded, want failure")
	}

	suggestions := p.Suggestion("")
	want := []string{"east", "west", "north", "south"}
	if !reflect.DeepEqual(suggestions, want) {
		t.Errorf("p.Suggestion(\"\") = %v, want %v", suggestions, want)
	}

	hint := p.Hint()
	wantHint := []string{"east", "west", "north", "south"}
	if !reflect.DeepEqual(hint, wantHint) {
		t.Errorf("p.Hint() = %v, want %v", hint, wantHint)
	}
}

func TestAlternativesConstructedEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Alternatives() with no parsers to panic")
		}
	}()
	Alternatives[string]()
}
