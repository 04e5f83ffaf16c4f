package parser

import (
	"testing"

	"charm/source/ast"
)

// parseDef builds a definition through the parser so that the analyzer sees it
// the way a session would.
func parseDef(t *testing.T, p *Parser, line string) *ast.FunctionDefinition {
	functions, _, e := p.Lex(line)
	if e != nil {
		t.Fatalf("unexpected error %q parsing %q", e.Error(), line)
	}
	def, ok := functions[len(functions)-1].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected a definition from %q", line)
	}
	return def
}

func TestTailCallRecursion(t *testing.T) {
	items := []struct {
		line string
		want bool
	}{
		{`loop := dup loop`, true},
		{`loop := loop`, true},
		{`f := f dup`, false},
		{`f := f dup f`, false},
		{`g := [ g ] pop`, false},
		{`h := dup`, false},
		{`e := `, false},
	}
	for i, item := range items {
		p := New("test")
		def := parseDef(t, p, item.line)
		if def.Info.TailCallRecursive != item.want {
			t.Fatalf("tests[%d] - tail call detection wrong for %q. expected=%v, got=%v",
				i, item.line, item.want, def.Info.TailCallRecursive)
		}
	}
}

func TestInlineability(t *testing.T) {
	items := []struct {
		line string
		want bool
	}{
		{`f := dup *`, true},
		{`f := `, true},
		{`f := f`, false},
		{`f := dup f`, false},
		{`f := [ f ] pop`, false},
		{`f := [ [ f ] ] pop`, false},
		{`f := g h`, true},
	}
	for i, item := range items {
		p := New("test")
		def := parseDef(t, p, item.line)
		if def.Info.Inlineable != item.want {
			t.Fatalf("tests[%d] - inlineability wrong for %q. expected=%v, got=%v",
				i, item.line, item.want, def.Info.Inlineable)
		}
	}
}

// A recursive redefinition must evict the stale inline body: the registry
// reflects the latest definition of the name, and nothing else.
func TestRedefinitionEvictsInlineBody(t *testing.T) {
	p := New("test")
	parseDef(t, p, "h := dup")
	if _, ok := p.fa.InlineBody("h"); !ok {
		t.Fatalf("expected an inline body for 'h'")
	}
	parseDef(t, p, "h := dup h")
	if _, ok := p.fa.InlineBody("h"); ok {
		t.Fatalf("stale inline body for 'h' survived redefinition")
	}
}

func TestDoInline(t *testing.T) {
	p := New("test")
	parseDef(t, p, "sq := dup *")
	out := []ast.Function{}
	call := &ast.DefinedFunction{Name: "sq"}
	if !p.fa.DoInline(&out, call) {
		t.Fatalf("expected DoInline to succeed for 'sq'")
	}
	if got := ast.StringOf(out); got != "dup *" {
		t.Fatalf("inlined body wrong. expected=%q, got=%q", "dup *", got)
	}
	if p.fa.DoInline(&out, &ast.DefinedFunction{Name: "zork"}) {
		t.Fatalf("expected DoInline to fail for an unknown name")
	}
}

func TestKnownFunctions(t *testing.T) {
	p := New("test")
	p.Lex("sq := dup *")
	p.Lex("f :: int -> int")
	names := p.fa.KnownFunctions()
	if !names.Contains("sq") || !names.Contains("f") {
		t.Fatalf("expected both 'sq' and 'f' to be known, got %v", names.ToSlice())
	}
}
