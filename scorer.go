package nspell

import "math"

// Score computes the add-K smoothed trigram log-probability of text,
// after tokenizing and case-folding it through the Model's own
// tokenizer. Returns the smallest representable positive number for
// text that tokenizes to no words (spec.md §4.E step 1).
func (m *Model) Score(text string) float64 {
	sentences := m.tokenizer.process(text)
	var words []string
	for _, s := range sentences {
		words = append(words, s...)
	}
	return m.ScoreWords(words)
}

// ScoreWords computes the same score as Score but over an
// already-tokenized sequence of surface words.
func (m *Model) ScoreWords(words []string) float64 {
	if len(words) == 0 {
		return minPositive
	}

	ids := make([]WordId, 0, len(words)+2)
	for _, w := range words {
		ids = append(ids, m.vocab.Lookup(w))
	}
	// Trailing sentinels so the trigram window iterates to the true end
	// (spec.md §4.E step 2). Both contribute only smoothing terms since
	// UnknownWordId never hits the Store. Every word adds three log terms,
	// so the score grows more negative with sequence length.
	ids = append(ids, UnknownWordId, UnknownWordId)

	var logProb float64
	for i := 0; i < len(ids)-2; i++ {
		a, b, c := ids[i], ids[i+1], ids[i+2]
		logProb += math.Log(m.prob1(a))
		logProb += math.Log(m.prob2(a, b))
		logProb += math.Log(m.prob3(a, b, c))
	}
	return logProb
}

func (m *Model) count1(a WordId) Count {
	if a == UnknownWordId || m.store == nil {
		return 0
	}
	return m.store.lookup(Key1{a}.bytes())
}

func (m *Model) count2(a, b WordId) Count {
	if a == UnknownWordId || b == UnknownWordId || m.store == nil {
		return 0
	}
	return m.store.lookup(Key2{a, b}.bytes())
}

func (m *Model) count3(a, b, c WordId) Count {
	if a == UnknownWordId || b == UnknownWordId || c == UnknownWordId || m.store == nil {
		return 0
	}
	return m.store.lookup(Key3{a, b, c}.bytes())
}

// prob1 implements P1(a) = (count(a) + K) / (TotalWords + VocabSize).
func (m *Model) prob1(a WordId) float64 {
	c := m.count1(a)
	return (float64(c) + m.k) / (float64(m.totalWords) + float64(m.vocabSize))
}

// prob2 implements P2(a,b) = (count(a,b) + K) / (count(a) + TotalWords),
// with the collision-rejection guard: any count(a,b) exceeding count(a)
// is physically impossible and is therefore treated as a Store false
// positive and zeroed before smoothing (spec.md §4.E).
func (m *Model) prob2(a, b WordId) float64 {
	base := m.count1(a)
	num := m.count2(a, b)
	if num > base {
		num = 0
	}
	return (float64(num) + m.k) / (float64(base) + float64(m.totalWords))
}

// prob3 implements P3(a,b,c) = (count(a,b,c) + K) / (count(a,b) + TotalWords),
// with the same collision-rejection guard against count(a,b,c) > count(a,b).
func (m *Model) prob3(a, b, c WordId) float64 {
	base := m.count2(a, b)
	num := m.count3(a, b, c)
	if num > base {
		num = 0
	}
	return (float64(num) + m.k) / (float64(base) + float64(m.totalWords))
}
