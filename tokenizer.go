package nspell

import (
	"bufio"
	"os"
	"strings"
	"unicode"
)

// tokenizer is the concrete implementation of the external "Tokenizer"
// collaborator from spec.md §6: it owns an alphabet (the set of runes
// considered part of a word), case-folds and splits raw text into
// sentences of words, and persists its alphabet alongside the model
// (spec.md §4.F).
//
// This is deliberately small: spec.md treats tokenization as an external
// collaborator and only specifies its contract, not its internals. The
// rules below (alphabet runes, letters and digits are word characters,
// everything else is a separator, sentences break on '.', '!', '?' and
// newlines) are enough to make
// the Trainer/Scorer pipeline runnable end to end and match the
// original's alphabet-gated word boundary in spirit.
type tokenizer struct {
	alphabet map[rune]struct{}
}

func newTokenizer() *tokenizer {
	return &tokenizer{alphabet: map[rune]struct{}{}}
}

// loadAlphabet reads a file of one rune (or short run of runes) per line
// and adds each to the alphabet. Returns false if the file cannot be
// opened (spec.md §7, Error kind IO-open).
func (tk *tokenizer) loadAlphabet(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		for _, r := range line {
			tk.alphabet[unicode.ToLower(r)] = struct{}{}
		}
	}
	return sc.Err() == nil
}

// extendAlphabet merges other's alphabet into tk's, used when augmenting
// or merging models (spec.md §4.D) so the combined tokenizer recognizes
// every letter either side trained on.
func (tk *tokenizer) extendAlphabet(other *tokenizer) {
	for r := range other.alphabet {
		tk.alphabet[r] = struct{}{}
	}
}

func (tk *tokenizer) getAlphabet() map[rune]struct{} { return tk.alphabet }

func (tk *tokenizer) clear() { tk.alphabet = map[rune]struct{}{} }

func (tk *tokenizer) isWordRune(r rune) bool {
	if _, ok := tk.alphabet[unicode.ToLower(r)]; ok {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// process case-folds text and splits it into sentences of lowercase
// words, per spec.md §4.D step 2. A sentence boundary is '.', '!', '?',
// or a newline; anything not recognized as a word rune is a plain word
// separator. Empty sentences (runs of punctuation only) are dropped.
func (tk *tokenizer) process(text string) [][]string {
	text = strings.ToLower(text)

	var sentences [][]string
	var words []string
	var cur strings.Builder

	flushWord := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	flushSentence := func() {
		flushWord()
		if len(words) > 0 {
			sentences = append(sentences, words)
			words = nil
		}
	}

	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?' || r == '\n':
			flushSentence()
		case tk.isWordRune(r):
			cur.WriteRune(r)
		default:
			flushWord()
		}
	}
	flushSentence()
	return sentences
}
