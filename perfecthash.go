package nspell

import (
	"bytes"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/opencoff/go-bbhash"
)

// perfectHashGamma is the load factor handed to bbhash.New. Larger values
// build faster at the cost of more memory; 2.0 is a conservative middle
// ground for corpora in the tens-of-millions-of-keys range described in
// spec.md §1.
const perfectHashGamma = 2.0

// perfectHash is this module's implementation of the "perfect-hash
// builder" collaborator from spec.md §6: init(keys) → H,
// H.hash(bytes) → u32, H.bucket_count() → u32, with the guarantee that
// hash(key) < bucket_count() for every key used to build it.
//
// It wraps github.com/opencoff/go-bbhash, whose public construction API
// (observed in the retrieval pack's copy of dbwriter.go, same package)
// operates over []uint64 rather than arbitrary byte strings, and whose
// Find returns a 1-based index with 0 meaning "not in the key set". Byte
// keys are reduced to uint64 via xxhash before being handed to bbhash;
// the bucket array is sized len(keys)+1 so bbhash's 1-based indices can
// be used directly without remapping (slot 0 is never written).
type perfectHash struct {
	bb      *bbhash.BBHash
	buckets uint32 // len(keys) + 1
}

// buildPerfectHash constructs a perfectHash over the given distinct byte
// keys. Keys must be distinct as byte strings (spec.md §4.B); duplicate
// keys are a caller bug and produce an error here rather than silently
// dropping one.
func buildPerfectHash(keys [][]byte) (*perfectHash, error) {
	hashed := make([]uint64, len(keys))
	seen := make(map[uint64]struct{}, len(keys))
	for i, k := range keys {
		h := xxhash.Sum64(k)
		if _, dup := seen[h]; dup {
			return nil, fmt.Errorf("nspell: duplicate or colliding key at index %d", i)
		}
		seen[h] = struct{}{}
		hashed[i] = h
	}
	bb, err := bbhash.New(perfectHashGamma, hashed)
	if err != nil {
		return nil, fmt.Errorf("nspell: building perfect hash: %w", err)
	}
	return &perfectHash{bb: bb, buckets: uint32(len(keys)) + 1}, nil
}

// hash returns the bucket index for key. The caller must independently
// verify occupancy via a fingerprint comparison (§4.B); hash alone does
// not distinguish a key that was in the build set from one that was not.
func (p *perfectHash) hash(key []byte) uint32 {
	h := xxhash.Sum64(key)
	idx := p.bb.Find(h)
	return uint32(idx)
}

func (p *perfectHash) bucketCount() uint32 { return p.buckets }

// MarshalBinary serializes the perfect hash's internal tables for
// inclusion in the model's persisted blob (spec.md §4.F).
func (p *perfectHash) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.bb.MarshalBinary(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unmarshalPerfectHash reconstructs the perfect hash from bytes previously
// produced by MarshalBinary. buckets must be restored by the caller
// (it is not part of bbhash's own serialized form).
func unmarshalPerfectHash(data []byte, buckets uint32) (*perfectHash, error) {
	bb, err := bbhash.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("nspell: reading perfect hash: %w", err)
	}
	return &perfectHash{bb: bb, buckets: buckets}, nil
}
