package nspell

import "github.com/cespare/xxhash/v2"

// storeBucket is the fixed on-disk/in-memory layout for one store slot:
// a 16-bit fingerprint guarding against false hits from other keys that
// share the same perfect-hash bucket, and the 16-bit packed count
// (spec.md §3, "Store bucket"). Fields are exported so gob (which only
// serializes exported fields) can round-trip the bucket array as part
// of store.MarshalBinary/UnmarshalBinary.
type storeBucket struct {
	Fingerprint uint16
	Packed      uint16
}

// store is the frozen, perfect-hash-indexed bucket array described in
// spec.md §4.B. It is built once over a complete key/value set and is
// read-only afterward; there is no insert or delete path.
type store struct {
	ph      *perfectHash
	buckets []storeBucket
}

// fingerprint16 derives the bucket's guard value from a key's canonical
// bytes. spec.md calls for "CityHash16"; no Go port of CityHash exists
// anywhere in the retrieval pack, so the pack's own CityHash-family
// stand-in, xxhash, fills that role (see DESIGN.md). Folding the 64-bit
// digest to 16 bits by XOR rather than truncation spreads all input bits
// into the retained ones instead of discarding three of the four
// quarters outright.
func fingerprint16(key []byte) uint16 {
	h := xxhash.Sum64(key)
	return uint16(h) ^ uint16(h>>16) ^ uint16(h>>32) ^ uint16(h>>48)
}

// buildStore constructs a store over the given keys and their counts.
// keys must be distinct as byte strings; values must contain an entry
// for every key. Each key's bucket slot is written exactly once.
func buildStore(keys [][]byte, values map[string]Count) (*store, error) {
	ph, err := buildPerfectHash(keys)
	if err != nil {
		return nil, err
	}
	s := &store{
		ph:      ph,
		buckets: make([]storeBucket, ph.bucketCount()),
	}
	for _, k := range keys {
		b := ph.hash(k)
		if b == 0 || b >= ph.bucketCount() {
			panic("nspell: perfect hash produced an out-of-range bucket for a construction key")
		}
		v := values[string(k)]
		s.buckets[b] = storeBucket{
			Fingerprint: fingerprint16(k),
			Packed:      packCount(v),
		}
	}
	return s, nil
}

// lookup returns the count associated with keyBytes, or 0 if keyBytes
// was not part of the key set the store was built from — modulo the
// documented false-positive rate of 2⁻¹⁶ from a fingerprint collision
// (spec.md §4.B). Callers that can independently bound a plausible
// count (the Scorer's collision-rejection rule) should do so; lookup
// itself performs no such check.
func (s *store) lookup(keyBytes []byte) Count {
	b := s.ph.hash(keyBytes)
	if b == 0 || b >= uint32(len(s.buckets)) {
		return 0
	}
	bucket := s.buckets[b]
	if bucket.Fingerprint != fingerprint16(keyBytes) {
		return 0
	}
	return unpackCount(bucket.Packed)
}

func (s *store) bucketCount() uint32 { return uint32(len(s.buckets)) }

type gobStore struct {
	PerfectHash []byte
	Buckets     []storeBucket
}

func (s *store) MarshalBinary() ([]byte, error) {
	phBytes, err := s.ph.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return gobEncode(gobStore{PerfectHash: phBytes, Buckets: s.buckets})
}

func (s *store) UnmarshalBinary(data []byte) error {
	var g gobStore
	if err := gobDecode(data, &g); err != nil {
		return err
	}
	ph, err := unmarshalPerfectHash(g.PerfectHash, uint32(len(g.Buckets)))
	if err != nil {
		return err
	}
	s.ph = ph
	s.buckets = g.Buckets
	return nil
}
