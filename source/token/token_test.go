package token

import (
	"testing"
)

func TestKindOf(t *testing.T) {
	items := []struct {
		literal string
		want    Kind
	}{
		{"[", LIST},
		{"\"", STRING},
		{":=", DEFINITION},
		{"2", NUMBER},
		{"-3.5", NUMBER},
		{"1.2.3", NUMBER},
		{"dup", DEFINED},
		{"]", DEFINED},
		{"-", DEFINED},
		{".", DEFINED},
		{"x2", DEFINED},
		{"::", DEFINED},
	}
	for i, item := range items {
		if got := KindOf(item.literal); got != item.want {
			t.Fatalf("tests[%d] - kind wrong for %q. expected=%q, got=%q",
				i, item.literal, item.want.String(), got.String())
		}
	}
}

func TestIsNumeric(t *testing.T) {
	items := []struct {
		literal string
		want    bool
	}{
		{"0", true},
		{"-42", true},
		{"3.14", true},
		{"1.2.3", true},
		{"--1", true},
		{"", false},
		{"-", false},
		{"..", false},
		{"12a", false},
	}
	for i, item := range items {
		if got := IsNumeric(item.literal); got != item.want {
			t.Fatalf("tests[%d] - IsNumeric(%q) expected=%v, got=%v", i, item.literal, item.want, got)
		}
	}
}
