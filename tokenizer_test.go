package authorship

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"Pearl!", "pearl"},
		{"card-board", "card-board"},
		{"\"Don't!\"", "don't"},
		{"...", ""},
		{"", ""},
		{"(ÉCOLE)", "école"},
		{"--a.b--", "a.b"},
	}
	for _, c := range cases {
		if got := Clean(c.in); got != c.out {
			t.Errorf("Clean(%q) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("A pearl! Pearl!\tLustrous\npearl! -- Rare.\x1fWhat")
	want := []string{"a", "pearl", "pearl", "lustrous", "pearl", "rare", "what"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
	if w := Words(" ?! ... "); len(w) != 0 {
		t.Errorf("Words of punctuation = %q, want none", w)
	}
}
