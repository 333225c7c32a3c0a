package intent

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in     string
		text   string
		tokens []string
	}{
		{"Where's my ORDER?!", "wheres my order", []string{"wheres", "my", "order"}},
		{"  ship   to\tIndia ", "ship to india", []string{"ship", "to", "india"}},
		{"", "", nil},
		{"...", "", nil},
		{"Ａｂｃ 123", "abc 123", []string{"abc", "123"}},
	}

	for _, tt := range tests {
		u := Normalize(tt.in, None)
		if u.Text != tt.text {
			t.Errorf("Normalize(%q).Text = %q, want %q", tt.in, u.Text, tt.text)
		}
		if len(u.Tokens) != len(tt.tokens) || (len(tt.tokens) > 0 && !reflect.DeepEqual(u.Tokens, tt.tokens)) {
			t.Errorf("Normalize(%q).Tokens = %v, want %v", tt.in, u.Tokens, tt.tokens)
		}
		if u.WordCount() != len(tt.tokens) {
			t.Errorf("Normalize(%q).WordCount() = %d", tt.in, u.WordCount())
		}
	}
}

func TestVocabulary(t *testing.T) {
	tokens := []string{"can", "you", "ship", "it", "to", "me"}

	if !vocab("ship").in(tokens) {
		t.Errorf("expected single word match")
	}
	if vocab("ship to").in(tokens) {
		t.Errorf("phrase must be contiguous")
	}
	if !vocab("it to").in(tokens) {
		t.Errorf("expected phrase match")
	}
	if vocab("shi").in(tokens) {
		t.Errorf("partial words must not match")
	}
	if !followedBy(tokens, vocab("ship"), vocab("to")) {
		t.Errorf("expected ship ... to")
	}
	if followedBy(tokens, vocab("to"), vocab("ship")) {
		t.Errorf("order must be respected")
	}
	if followedBy(tokens, vocab("ship"), vocab("ship")) {
		t.Errorf("a term cannot follow itself")
	}
}

func TestElongated(t *testing.T) {
	tests := []struct {
		token, base string
		want        bool
	}{
		{"hi", "hi", true},
		{"hiiii", "hi", true},
		{"heyyy", "hey", true},
		{"him", "hi", false},
		{"hey", "hi", false},
		{"h", "hi", false},
	}
	for _, tt := range tests {
		if got := elongated(tt.token, tt.base); got != tt.want {
			t.Errorf("elongated(%q, %q) = %v, want %v", tt.token, tt.base, got, tt.want)
		}
	}
}

func TestWords(t *testing.T) {
	got := words("And it's THAT?")
	want := []string{"and", "it", "s", "that"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words() = %v, want %v", got, want)
	}
}
