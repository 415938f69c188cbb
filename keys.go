package nspell

import "encoding/binary"

// Gram keys are ordered tuples of WordIds of order 1, 2, or 3
// (spec.md §3). Key1/Key2/Key3 give each shape its own Go type so the
// Trainer's gram tables (map[KeyN]Count) can't mix shapes by mistake.
type (
	Key1 [1]WordId
	Key2 [2]WordId
	Key3 [3]WordId
)

// encodeKey produces the canonical byte representation of a gram key: a
// length-prefixed concatenation of fixed-width little-endian WordIds.
// This is the exact byte string that is both perfect-hashed and
// fingerprinted (spec.md §4.B) — construction and lookup must call this
// same function, never reimplement it.
func encodeKey(ids ...WordId) []byte {
	buf := make([]byte, 1+4*len(ids))
	buf[0] = byte(len(ids))
	for i, id := range ids {
		binary.LittleEndian.PutUint32(buf[1+4*i:], uint32(id))
	}
	return buf
}

func (k Key1) bytes() []byte { return encodeKey(k[0]) }
func (k Key2) bytes() []byte { return encodeKey(k[0], k[1]) }
func (k Key3) bytes() []byte { return encodeKey(k[0], k[1], k[2]) }
