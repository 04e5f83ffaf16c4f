package values

import (
	"testing"
)

func TestMakeNumber(t *testing.T) {
	items := []struct {
		literal string
		wantT   NumberType
		want    string
	}{
		{"2", INTEGER, "2"},
		{"-3", INTEGER, "-3"},
		{"007", INTEGER, "7"},
		{"1.5", FLOAT, "1.5"},
		{"-0.25", FLOAT, "-0.25"},
		{"12345678901234567890", INTEGER, "12345678901234567890"},
	}
	for i, item := range items {
		n, ok := MakeNumber(item.literal)
		if !ok {
			t.Fatalf("tests[%d] - unexpected rejection of %q", i, item.literal)
		}
		if n.T != item.wantT {
			t.Fatalf("tests[%d] - type wrong for %q", i, item.literal)
		}
		if got := n.String(); got != item.want {
			t.Fatalf("tests[%d] - value wrong for %q. expected=%q, got=%q", i, item.literal, item.want, got)
		}
	}
}

// Syntactically numeric tokens can still be semantically malformed; the big
// number library is the arbiter.
func TestMakeNumberRejects(t *testing.T) {
	for i, literal := range []string{"1.2.3", "--5", "1-2", "5-"} {
		if _, ok := MakeNumber(literal); ok {
			t.Fatalf("tests[%d] - expected rejection of %q", i, literal)
		}
	}
}

func TestArithmetic(t *testing.T) {
	items := []struct {
		a, b string
		op   func(Number, Number) Number
		want string
	}{
		{"2", "3", Number.Add, "5"},
		{"2", "3", Number.Sub, "-1"},
		{"2", "3", Number.Mul, "6"},
		{"7", "2", Number.Div, "3"},
		{"1.5", "2", Number.Add, "3.5"},
	}
	for i, item := range items {
		a, _ := MakeNumber(item.a)
		b, _ := MakeNumber(item.b)
		if got := item.op(a, b).String(); got != item.want {
			t.Fatalf("tests[%d] - arithmetic wrong. expected=%q, got=%q", i, item.want, got)
		}
	}
}

func TestCompare(t *testing.T) {
	a, _ := MakeNumber("2")
	b, _ := MakeNumber("2.0")
	if a.Compare(b) != 0 {
		t.Fatalf("expected 2 and 2.0 to compare equal")
	}
	c, _ := MakeNumber("3")
	if a.Compare(c) != -1 {
		t.Fatalf("expected 2 < 3")
	}
}
