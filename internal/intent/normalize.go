package intent

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Utterance is the normalized form the rules are evaluated against.
type Utterance struct {
	Text     string
	Tokens   []string
	Previous Intent
}

// Normalize lower-cases the input, drops everything that is neither a letter,
// a digit nor whitespace, and splits the rest on whitespace runs.
func Normalize(raw string, previous Intent) Utterance {
	// Caser is stateful, so one per call.
	lowered := cases.Lower(language.Und).String(norm.NFKC.String(raw))

	text := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lowered)

	tokens := strings.Fields(text)
	return Utterance{
		Text:     strings.Join(tokens, " "),
		Tokens:   tokens,
		Previous: previous,
	}
}

// WordCount is the number of tokens.
func (u Utterance) WordCount() int {
	return len(u.Tokens)
}

// words splits raw text on anything that is not a letter or digit. It is the
// word-boundary view of the unnormalized utterance.
func words(raw string) []string {
	return strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// vocabulary is a set of whole-word terms; a term may span several words.
type vocabulary [][]string

func vocab(terms ...string) vocabulary {
	v := make(vocabulary, len(terms))
	for i, t := range terms {
		v[i] = strings.Fields(t)
	}
	return v
}

// in reports whether any term occurs in tokens.
func (v vocabulary) in(tokens []string) bool {
	_, ok := v.firstEnd(tokens, 0)
	return ok
}

// firstEnd returns the smallest token index just past an occurrence of any
// term starting at or after from.
func (v vocabulary) firstEnd(tokens []string, from int) (int, bool) {
	best, found := 0, false
	for _, term := range v {
		for start := from; start+len(term) <= len(tokens); start++ {
			if matchAt(tokens, start, term) {
				if end := start + len(term); !found || end < best {
					best, found = end, true
				}
				break
			}
		}
	}
	return best, found
}

// startsAtOrAfter reports whether any term starts at index from or later.
func (v vocabulary) startsAtOrAfter(tokens []string, from int) bool {
	for _, term := range v {
		for start := from; start+len(term) <= len(tokens); start++ {
			if matchAt(tokens, start, term) {
				return true
			}
		}
	}
	return false
}

func matchAt(tokens []string, start int, term []string) bool {
	for i, w := range term {
		if tokens[start+i] != w {
			return false
		}
	}
	return true
}

// followedBy reports whether a term of first occurs and a term of then
// starts somewhere after it.
func followedBy(tokens []string, first, then vocabulary) bool {
	end, ok := first.firstEnd(tokens, 0)
	if !ok {
		return false
	}
	return then.startsAtOrAfter(tokens, end)
}

// elongated reports whether token is base with its last letter repeated,
// e.g. "hiii" for "hi".
func elongated(token, base string) bool {
	if !strings.HasPrefix(token, base) {
		return false
	}
	last := base[len(base)-1]
	for i := len(base); i < len(token); i++ {
		if token[i] != last {
			return false
		}
	}
	return true
}
