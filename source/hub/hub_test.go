package hub

import (
	"bytes"
	"strings"
	"testing"
)

func TestDoShowsStack(t *testing.T) {
	out := &bytes.Buffer{}
	h := New(nil, out)
	if quit := h.Do("2 3 +"); quit {
		t.Fatalf("expected the session to continue")
	}
	if !strings.Contains(out.String(), "5") {
		t.Fatalf("expected the stack display to show 5, got %q", out.String())
	}
}

func TestDoReportsErrorsAndContinues(t *testing.T) {
	out := &bytes.Buffer{}
	h := New(nil, out)
	if quit := h.Do(`" abc`); quit {
		t.Fatalf("a parse error must not end the session")
	}
	if !strings.Contains(out.String(), "expected an ending quote") {
		t.Fatalf("expected a parse error report, got %q", out.String())
	}
	out.Reset()
	if quit := h.Do("zork"); quit {
		t.Fatalf("a runtime error must not end the session")
	}
	if !strings.Contains(out.String(), "unknown function") {
		t.Fatalf("expected a runtime error report, got %q", out.String())
	}
}

func TestQuit(t *testing.T) {
	h := New(nil, &bytes.Buffer{})
	if !h.Do("quit") {
		t.Fatalf("expected 'quit' to end the session")
	}
}

func TestKnownNamesForCompletion(t *testing.T) {
	out := &bytes.Buffer{}
	h := New(nil, out)
	h.Do("sq := dup *")
	names := h.KnownNames()
	foundSq, foundDup := false, false
	for _, name := range names {
		if name == "sq" {
			foundSq = true
		}
		if name == "dup" {
			foundDup = true
		}
	}
	if !foundSq || !foundDup {
		t.Fatalf("expected completion to know 'sq' and 'dup', got %v", names)
	}
}
