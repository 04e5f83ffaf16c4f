package parser

import (
	"testing"

	"charm/source/signature"
)

func TestTypeSignatureParsing(t *testing.T) {
	items := []struct {
		input string
		want  string
	}{
		{`f :: any -> any`, `f :: any -> any`},
		{`f :: int string -> list`, `f :: int string -> list`},
		{`f :: int -> int | float -> float`, `f :: int -> int | float -> float`},
		{`f :: list/string -> int`, `f :: list/string -> int`},
		{`f :: -> int`, `f :: -> int`},
		{`f :: int ->`, `f :: int ->`},
	}
	for i, item := range items {
		p := New("test")
		_, fa, e := p.Lex(item.input)
		if e != nil {
			t.Fatalf("tests[%d] - unexpected error %q parsing %q", i, e.Error(), item.input)
		}
		sig, ok := fa.GetTypeSignature("f")
		if !ok {
			t.Fatalf("tests[%d] - signature for 'f' not registered", i)
		}
		if got := sig.String(); got != item.want {
			t.Fatalf("tests[%d] - signature wrong. expected=%q, got=%q", i, item.want, got)
		}
	}
}

func TestTypeSignatureAlternatives(t *testing.T) {
	p := New("test")
	_, fa, e := p.Lex("f :: int -> string | float -> list")
	if e != nil {
		t.Fatalf("unexpected error %q", e.Error())
	}
	sig, _ := fa.GetTypeSignature("f")
	if len(sig.Units) != 2 {
		t.Fatalf("expected two units, got %d", len(sig.Units))
	}
	first, second := sig.Units[0], sig.Units[1]
	if len(first.Pops) != 1 || first.Pops[0] != signature.INT ||
		len(first.Pushes) != 1 || first.Pushes[0] != signature.STRING {
		t.Fatalf("first unit wrong: %q", first.String())
	}
	if len(second.Pops) != 1 || second.Pops[0] != signature.FLOAT ||
		len(second.Pushes) != 1 || second.Pushes[0] != signature.LIST {
		t.Fatalf("second unit wrong: %q", second.String())
	}
}

func TestTypeSignatureOverwrite(t *testing.T) {
	p := New("test")
	p.Lex("f :: int -> int")
	_, fa, e := p.Lex("f :: float -> float")
	if e != nil {
		t.Fatalf("unexpected error %q", e.Error())
	}
	sig, _ := fa.GetTypeSignature("f")
	if got := sig.String(); got != "f :: float -> float" {
		t.Fatalf("re-registration didn't overwrite. got=%q", got)
	}
}
