package nspell

import (
	"encoding/binary"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/glog"
)

// clockNow is the timestamp source for the checksum. freeze reads it once
// the gram tables are built, not when training begins. It is a variable
// rather than a direct time.Now() call so tests can pin it and assert
// the "train twice with a fixed clock source yields equal checksums"
// property from spec.md §8.
var clockNow = func() int64 { return time.Now().UnixNano() }

// progressInterval is how often Train logs a progress line while
// scanning sentences, matching the reference implementation's ~4s
// cadence (spec.md §4.D) — a logging concern, not a semantic one.
const progressInterval = 4 * time.Second

// gramTables holds the three working hash tables the Trainer accumulates
// into before freezing into a Store. Plain Go maps, matching the
// reference's std::unordered_map usage once the teacher's FSM-era
// open-addressing map (xqwMap) is no longer relevant (see DESIGN.md).
type gramTables struct {
	g1 map[Key1]Count
	g2 map[Key2]Count
	g3 map[Key3]Count
}

func newGramTables() *gramTables {
	return &gramTables{
		g1: map[Key1]Count{},
		g2: map[Key2]Count{},
		g3: map[Key3]Count{},
	}
}

// Train builds a Model from scratch out of tokenized text. It fails
// (spec.md §7, Training-empty) if the tokenizer produces no sentences,
// leaving the Model unchanged.
func (m *Model) Train(alphabetPath, text string) bool {
	tk := newTokenizer()
	tk.extendAlphabet(m.tokenizer)
	if !tk.loadAlphabet(alphabetPath) {
		return false
	}
	prev := m.tokenizer
	m.tokenizer = tk
	if !m.train(text, nil) {
		m.tokenizer = prev
		return false
	}
	return true
}

// TrainPretrained builds a Model from text, augmenting it with the
// counts of an already-trained model per spec.md §4.D's "Pre-trained
// augmentation": every pre-trained word is imported first, and any
// gram key the new text does not touch is carried over unchanged, so
// the result is the pointwise sum of both corpora.
func (m *Model) TrainPretrained(alphabetPath, text string, pretrained *Model) bool {
	if !m.tokenizer.loadAlphabet(alphabetPath) {
		return false
	}
	return m.train(text, pretrained)
}

func (m *Model) train(text string, pretrained *Model) bool {
	tables := newGramTables()

	if pretrained != nil {
		m.tokenizer.extendAlphabet(pretrained.tokenizer)
		for id := WordId(0); id < pretrained.vocab.Bound(); id++ {
			m.vocab.Intern(pretrained.vocab.WordOf(id))
		}
	}

	sentences := m.tokenizer.process(text)
	if len(sentences) == 0 {
		return false
	}

	start := time.Now()
	last := start
	var totalWords uint64
	for si, sentence := range sentences {
		ids := make([]WordId, len(sentence))
		for i, w := range sentence {
			ids[i] = m.vocab.Intern(w)
		}
		for j, wj := range ids {
			seedAndInc(tables.g1, Key1{wj}, pretrained, m.vocab)
			totalWords++
			if j < len(ids)-1 {
				seedAndInc2(tables.g2, Key2{wj, ids[j+1]}, pretrained, m.vocab)
			}
			if j < len(ids)-2 {
				seedAndInc3(tables.g3, Key3{wj, ids[j+1], ids[j+2]}, pretrained, m.vocab)
			}
		}
		if glog.V(1) && time.Since(last) >= progressInterval {
			glog.Infof("training: %d/%d sentences, %d words", si+1, len(sentences), totalWords)
			last = time.Now()
		}
	}
	sentenceCount := len(sentences)
	// Free the token buffers eagerly by dropping our only reference to
	// them before the hash-table freeze step. text itself stays referenced
	// (its length feeds the checksum).
	sentences = nil

	if pretrained != nil {
		carryOverUntouched(tables, pretrained, m.vocab)
	}

	m.totalWords = totalWords
	if pretrained != nil {
		m.totalWords += pretrained.totalWords
	}
	m.lastWordID = m.vocab.Bound()
	m.vocabSize = uint32(len(tables.g1))

	return m.freeze(tables, int64(len(text)), sentenceCount)
}

// seedAndInc implements the "when a gram key is encountered for the
// first time, seed the table with the pre-trained count before
// incrementing" rule from spec.md §4.D for unigram keys; seedAndInc2 and
// seedAndInc3 below apply the same rule to bigram and trigram keys.
func seedAndInc(table map[Key1]Count, k Key1, pretrained *Model, vocab *Vocab) {
	if _, ok := table[k]; !ok && pretrained != nil {
		table[k] = pretrainedCount(pretrained, vocab, k.bytes())
	}
	table[k]++
}

func seedAndInc2(table map[Key2]Count, k Key2, pretrained *Model, vocab *Vocab) {
	if _, ok := table[k]; !ok && pretrained != nil {
		table[k] = pretrainedCount(pretrained, vocab, k.bytes())
	}
	table[k]++
}

func seedAndInc3(table map[Key3]Count, k Key3, pretrained *Model, vocab *Vocab) {
	if _, ok := table[k]; !ok && pretrained != nil {
		table[k] = pretrainedCount(pretrained, vocab, k.bytes())
	}
	table[k]++
}

// pretrainedCount looks up keyBytes (already expressed in the merged
// vocabulary's ids) against pretrained's own Store. Since pretrained's
// ids may differ from the merged vocab's ids in the general case, the
// caller is responsible for translating ids before calling this in a
// true cross-vocabulary merge (see Merge below); during simple
// augmentation the pretrained model's words are interned first and in
// the same order, so ids coincide.
func pretrainedCount(pretrained *Model, vocab *Vocab, keyBytes []byte) Count {
	if pretrained.store == nil {
		return 0
	}
	return pretrained.store.lookup(keyBytes)
}

// carryOverUntouched copies any gram key from pretrained's id range that
// the new text's scan did not already place in tables, completing the
// pointwise-sum semantics of pre-trained augmentation. Trigrams are
// walked under every bigram with a nonzero pre-trained count, whether or
// not the new text already touched that bigram.
func carryOverUntouched(tables *gramTables, pretrained *Model, vocab *Vocab) {
	for a := WordId(0); a < pretrained.lastWordID; a++ {
		k1 := Key1{a}
		if _, ok := tables.g1[k1]; !ok {
			if c := pretrained.store.lookup(k1.bytes()); c > 0 {
				tables.g1[k1] = c
			}
		}
		for b := WordId(0); b < pretrained.lastWordID; b++ {
			k2 := Key2{a, b}
			c2 := pretrained.store.lookup(k2.bytes())
			if c2 == 0 {
				continue
			}
			if _, ok := tables.g2[k2]; !ok {
				tables.g2[k2] = c2
			}
			for c := WordId(0); c < pretrained.lastWordID; c++ {
				k3 := Key3{a, b, c}
				if _, ok := tables.g3[k3]; ok {
					continue
				}
				if c3 := pretrained.store.lookup(k3.bytes()); c3 > 0 {
					tables.g3[k3] = c3
				}
			}
		}
	}
}

// freeze serializes all three gram tables into key/value sets, builds
// the perfect-hash Store over them, and computes the content checksum
// (spec.md §4.D step 6, §3).
func (m *Model) freeze(tables *gramTables, textSize int64, sentenceCount int) bool {
	keys := make([][]byte, 0, len(tables.g1)+len(tables.g2)+len(tables.g3))
	values := make(map[string]Count, cap(keys))

	for k, c := range tables.g1 {
		b := k.bytes()
		keys = append(keys, b)
		values[string(b)] = c
	}
	for k, c := range tables.g2 {
		b := k.bytes()
		keys = append(keys, b)
		values[string(b)] = c
	}
	for k, c := range tables.g3 {
		b := k.bytes()
		keys = append(keys, b)
		values[string(b)] = c
	}

	glog.Infof("ngrams1 size: %d, ngrams2 size: %d, ngrams3 size: %d, total words: %d",
		len(tables.g1), len(tables.g2), len(tables.g3), m.totalWords)
	s, err := buildStore(keys, values)
	if err != nil {
		glog.Errorf("freezing model: %v", err)
		return false
	}
	m.store = s
	m.checksum = computeChecksum(clockNow(), len(tables.g1), len(tables.g2), len(tables.g3), s.bucketCount(), textSize, int64(sentenceCount))
	return true
}

// computeChecksum hashes the canonical byte serialization of a
// timestamp, |G1|, |G2|, |G3|, bucket count, input text size, and
// sentence count. freeze passes the clockNow() reading taken at freeze
// time, not one taken when training started.
func computeChecksum(timestamp int64, g1, g2, g3 int, buckets uint32, textSize, sentenceCount int64) uint64 {
	buf := make([]byte, 0, 8*7)
	put := func(v uint64) {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v)
		buf = append(buf, b[:]...)
	}
	put(uint64(timestamp))
	put(uint64(g1))
	put(uint64(g2))
	put(uint64(g3))
	put(uint64(buckets))
	put(uint64(textSize))
	put(uint64(sentenceCount))
	return xxhash.Sum64(buf)
}

// Merge combines two trained models A and B into m, per spec.md §4.D's
// Merge algorithm: A's vocabulary and grams are imported verbatim, B's
// vocabulary is imported with new ids allocated for words A didn't
// already have, and B's gram counts are translated into the merged id
// space and added (not overwritten) to any existing entry. This fixes
// the reference implementation's id-translation bug (spec.md §9): here
// the loop variables range over B's own vocabulary, not A's.
func (m *Model) Merge(a, b *Model) bool {
	m.Clear()
	m.tokenizer.extendAlphabet(a.tokenizer)
	m.tokenizer.extendAlphabet(b.tokenizer)

	aToMerged := make([]WordId, a.vocab.Bound())
	for id := WordId(0); id < a.vocab.Bound(); id++ {
		aToMerged[id] = m.vocab.Intern(a.vocab.WordOf(id))
	}
	bToMerged := make([]WordId, b.vocab.Bound())
	for id := WordId(0); id < b.vocab.Bound(); id++ {
		bToMerged[id] = m.vocab.Intern(b.vocab.WordOf(id))
	}

	tables := newGramTables()

	translate1 := func(k Key1, table []WordId) Key1 { return Key1{table[k[0]]} }
	translate2 := func(k Key2, table []WordId) Key2 { return Key2{table[k[0]], table[k[1]]} }
	translate3 := func(k Key3, table []WordId) Key3 { return Key3{table[k[0]], table[k[1]], table[k[2]]} }

	for aid := WordId(0); aid < a.vocab.Bound(); aid++ {
		k1 := Key1{aid}
		if c := a.store.lookup(k1.bytes()); c > 0 {
			// insert-or-add for symmetry (spec.md §9), though the target
			// table starts empty on this path.
			tables.g1[translate1(k1, aToMerged)] += c
		}
		for bj := WordId(0); bj < a.vocab.Bound(); bj++ {
			k2 := Key2{aid, bj}
			if c := a.store.lookup(k2.bytes()); c > 0 {
				tables.g2[translate2(k2, aToMerged)] += c
			}
			for ck := WordId(0); ck < a.vocab.Bound(); ck++ {
				k3 := Key3{aid, bj, ck}
				if c := a.store.lookup(k3.bytes()); c > 0 {
					tables.g3[translate3(k3, aToMerged)] += c
				}
			}
		}
	}

	for bid := WordId(0); bid < b.vocab.Bound(); bid++ {
		k1 := Key1{bid}
		if c := b.store.lookup(k1.bytes()); c > 0 {
			tables.g1[translate1(k1, bToMerged)] += c
		}
		for bj := WordId(0); bj < b.vocab.Bound(); bj++ {
			k2 := Key2{bid, bj}
			if c := b.store.lookup(k2.bytes()); c > 0 {
				tables.g2[translate2(k2, bToMerged)] += c
			}
			for ck := WordId(0); ck < b.vocab.Bound(); ck++ {
				k3 := Key3{bid, bj, ck}
				if c := b.store.lookup(k3.bytes()); c > 0 {
					tables.g3[translate3(k3, bToMerged)] += c
				}
			}
		}
	}

	m.lastWordID = m.vocab.Bound()
	m.vocabSize = uint32(len(tables.g1))
	for _, c := range tables.g1 {
		m.totalWords += uint64(c)
	}

	return m.freeze(tables, 0, 0)
}
