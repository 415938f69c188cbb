package nspell

import "math"

// defaultK is the add-K smoothing constant used when a Model is
// constructed with NewModel. spec.md §4.E leaves the exact value
// implementation-defined; 0.05 matches the reference implementation.
const defaultK = 0.05

// Model is the frozen, queryable aggregate spec.md §2 describes: a
// Vocabulary, a trained Store, the Tokenizer that produced its
// sentences, and the bookkeeping counters the Scorer's probability
// formulas need (TotalWords, VocabSize). It moves through the lifecycle
// phases documented in spec.md §5: empty, under construction (via
// Train/Merge), frozen (Store built, only Scorer and getters permitted).
type Model struct {
	vocab      *Vocab
	tokenizer  *tokenizer
	store      *store
	k          float64
	totalWords uint64
	vocabSize  uint32
	lastWordID WordId
	checksum   uint64
}

// NewModel returns an empty Model, ready for Train or Merge.
func NewModel() *Model {
	return &Model{
		vocab:     NewVocab(),
		tokenizer: newTokenizer(),
		k:         defaultK,
	}
}

// Clear returns the Model to the empty state. Idempotent: calling Clear
// twice in a row leaves identical state (spec.md §8).
func (m *Model) Clear() {
	m.vocab = NewVocab()
	m.tokenizer = newTokenizer()
	m.store = nil
	m.k = defaultK
	m.totalWords = 0
	m.vocabSize = 0
	m.lastWordID = 0
	m.checksum = 0
}

// ContainsWord reports whether w was seen during training.
func (m *Model) ContainsWord(w string) bool { return m.vocab.Contains(w) }

// WordId returns the WordId of w, or UnknownWordId if w is out of
// vocabulary.
func (m *Model) WordId(w string) WordId { return m.vocab.Lookup(w) }

// WordById returns the surface word for id, or "" if out of range.
func (m *Model) WordById(id WordId) string { return m.vocab.WordOf(id) }

// WordCount returns the unigram count of id, or 0 if id is unknown or
// out of range — matching spec.md §8's "any word id not in vocabulary
// returns 0 from all three Store lookups".
func (m *Model) WordCount(id WordId) Count {
	if m.store == nil || id == UnknownWordId || uint32(id) >= m.vocab.Bound() {
		return 0
	}
	return m.store.lookup(Key1{id}.bytes())
}

// Checksum returns the content checksum computed at the last freeze.
func (m *Model) Checksum() uint64 { return m.checksum }

// Alphabet returns the set of runes the tokenizer recognizes as word
// characters.
func (m *Model) Alphabet() map[rune]struct{} { return m.tokenizer.getAlphabet() }

// Tokenize splits text into sentences of lowercase words using the
// Model's tokenizer.
func (m *Model) Tokenize(text string) [][]string { return m.tokenizer.process(text) }

// TotalWords is the sum of all unigram counts at the last freeze.
func (m *Model) TotalWords() uint64 { return m.totalWords }

// VocabSize is the number of distinct unigrams at the last freeze.
func (m *Model) VocabSize() uint32 { return m.vocabSize }

// minPositive is the smallest representable positive float64, returned
// by Score for an empty word sequence (spec.md §4.E step 1).
const minPositive = math.SmallestNonzeroFloat64
