package nspell

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// WordId is a dense, monotonically assigned identifier for a vocabulary
// word. Ids start at 0 and are never reused.
type WordId uint32

// UnknownWordId denotes a word outside the trained vocabulary. It sits
// outside any range ids are ever assigned from, so it can never collide
// with a real word's id.
const UnknownWordId WordId = ^WordId(0)

const (
	minWordLen = 1
	maxWordLen = 9999
)

// Vocab is the bidirectional mapping between surface words and WordIds.
// Ids are assigned densely from 0 as words are first interned; once
// assigned, a word's id is stable for the lifetime of the Vocab. Must be
// constructed with NewVocab.
type Vocab struct {
	id2str []string
	str2id map[string]WordId
}

// NewVocab returns an empty Vocab.
func NewVocab() *Vocab {
	return &Vocab{str2id: map[string]WordId{}}
}

// Copy returns a Vocab that can be modified without affecting v.
func (v *Vocab) Copy() *Vocab {
	c := &Vocab{
		id2str: make([]string, len(v.id2str)),
		str2id: make(map[string]WordId, len(v.str2id)),
	}
	copy(c.id2str, v.id2str)
	for w, id := range v.str2id {
		c.str2id[w] = id
	}
	return c
}

// Bound returns the largest assigned WordId + 1, i.e. the current
// vocabulary size.
func (v *Vocab) Bound() WordId { return WordId(len(v.id2str)) }

// Lookup returns the WordId of w, or UnknownWordId if w was never
// interned. It never mutates the Vocab.
func (v *Vocab) Lookup(w string) WordId {
	if id, ok := v.str2id[w]; ok {
		return id
	}
	return UnknownWordId
}

// Contains reports whether w has been interned.
func (v *Vocab) Contains(w string) bool {
	_, ok := v.str2id[w]
	return ok
}

// WordOf returns the surface word for id, or "" if id is out of range.
func (v *Vocab) WordOf(id WordId) string {
	if id == UnknownWordId || int(id) >= len(v.id2str) {
		return ""
	}
	return v.id2str[id]
}

// Intern returns the existing WordId for w, assigning a new one if w has
// not been seen before. Panics if w's length is outside
// [minWordLen, maxWordLen] (spec.md §4.C) — that is a caller bug, not a
// recoverable runtime condition.
func (v *Vocab) Intern(w string) WordId {
	if n := len(w); n < minWordLen || n > maxWordLen {
		panic(fmt.Sprintf("nspell: word length %d outside [%d, %d]: %q", n, minWordLen, maxWordLen, w))
	}
	if id, ok := v.str2id[w]; ok {
		return id
	}
	id := v.Bound()
	v.id2str = append(v.id2str, w)
	v.str2id[w] = id
	return id
}

// gobVocab is the on-the-wire shape of a Vocab: only the forward mapping
// is persisted. WordOf's reverse index is rebuilt on load, so the cyclic
// id2str/str2id relationship never needs to survive serialization intact.
type gobVocab struct {
	WordToId map[string]WordId
	LastId   WordId
}

// MarshalBinary serializes a Vocab via gob, matching the teacher's
// MarshalBinary/UnmarshalBinary convention used by every persisted type.
func (v *Vocab) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	g := gobVocab{WordToId: v.str2id, LastId: v.Bound()}
	if err := gob.NewEncoder(&buf).Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary deserializes a Vocab and rebuilds the id2str reverse
// index from the word→id mapping.
func (v *Vocab) UnmarshalBinary(data []byte) error {
	var g gobVocab
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	v.str2id = g.WordToId
	v.id2str = make([]string, g.LastId)
	for w, id := range v.str2id {
		if int(id) < len(v.id2str) {
			v.id2str[id] = w
		}
	}
	return nil
}
