package nspell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMergeDisjointVocabulariesUnion(t *testing.T) {
	a := newTrainedModel(t, "a b c")
	b := newTrainedModel(t, "b c d")

	m := NewModel()
	if !m.Merge(a, b) {
		t.Fatal("Merge failed")
	}

	for _, w := range []string{"a", "b", "c", "d"} {
		if !m.ContainsWord(w) {
			t.Errorf("merged vocabulary missing %q", w)
		}
	}

	bId := m.WordId("b")
	cId := m.WordId("c")
	if got := m.WordCount(bId); got != 2 {
		t.Errorf("count(b) = %d, want 2", got)
	}
	if got := m.WordCount(cId); got != 2 {
		t.Errorf("count(c) = %d, want 2", got)
	}
	if got := m.count2(bId, cId); got != 2 {
		t.Errorf("count(b,c) = %d, want 2", got)
	}
}

func TestMergeWithEmptyModelBEqualsA(t *testing.T) {
	a := newTrainedModel(t, "the cat sat on the mat")
	emptyText := NewModel()
	// An "empty" model B here is one trained on a single token, the
	// smallest non-empty corpus a Trainer can accept (spec.md §7 rejects
	// genuinely empty training input outright).
	if !emptyText.train("x", nil) {
		t.Fatal("training empty-ish model B failed")
	}

	m := NewModel()
	if !m.Merge(a, emptyText) {
		t.Fatal("Merge failed")
	}

	for _, w := range []string{"the", "cat", "sat", "on", "mat"} {
		aCount := a.WordCount(a.WordId(w))
		mCount := m.WordCount(m.WordId(w))
		if aCount != mCount {
			t.Errorf("count(%q) changed across merge with near-empty B: %d != %d", w, aCount, mCount)
		}
	}
}

func TestTrainPretrainedAugmentsCounts(t *testing.T) {
	pre := newTrainedModel(t, "the cat sat")

	m := NewModel()
	if !m.train("the cat sat", pre) {
		t.Fatal("training with a pre-trained model failed")
	}

	theId := m.WordId("the")
	if got := m.WordCount(theId); got != 2 {
		t.Errorf("augmented count(the) = %d, want 2 (1 pre-trained + 1 new)", got)
	}
}

func TestTrainEmptyTextFails(t *testing.T) {
	m := NewModel()
	if m.train("", nil) {
		t.Error("expected training on empty text to fail")
	}
}

func TestTrainPublicAPILoadsAlphabetFile(t *testing.T) {
	alphabetPath := filepath.Join(t.TempDir(), "alphabet.txt")
	if err := os.WriteFile(alphabetPath, []byte("a\nb\nc\n"), 0o644); err != nil {
		t.Fatalf("writing alphabet file: %v", err)
	}

	m := NewModel()
	if !m.Train(alphabetPath, "the cat sat on the mat") {
		t.Fatal("Train failed")
	}
	if _, ok := m.Alphabet()['a']; !ok {
		t.Error("expected loaded alphabet to contain 'a'")
	}
	if !m.ContainsWord("cat") {
		t.Error("expected trained model to contain \"cat\"")
	}
}

func TestTrainMissingAlphabetFileFails(t *testing.T) {
	m := NewModel()
	if m.Train(filepath.Join(t.TempDir(), "missing.txt"), "the cat sat") {
		t.Error("expected Train to fail when the alphabet file can't be opened")
	}
}
