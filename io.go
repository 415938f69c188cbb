package nspell

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/golang/glog"
)

// modelMagic brackets the binary file format at both ends (spec.md
// §4.F); a mismatch on either occurrence means the file is not a model
// of this format, or is truncated/corrupted.
const modelMagic uint64 = 0x6e7370656c6c0001 // "nspell" + format tag

// modelVersion is bumped whenever the inner blob's shape changes in a
// way that would break older readers. Version mismatches are rejected
// outright; there is no migration path (spec.md §7, Format-version).
const modelVersion uint16 = 1

// gobModelBlob is the canonical dump of everything persisted inside the
// magic markers: smoothing K, vocabulary, bookkeeping counters, the
// tokenizer's alphabet, and the frozen Store's own serialized form
// (spec.md §4.F).
type gobModelBlob struct {
	K          float64
	Vocab      []byte
	LastWordID WordId
	TotalWords uint64
	VocabSize  uint32
	CheckSum   uint64
	Alphabet   []rune
	Store      []byte
}

// Dump writes m's entire state to path as a single binary file. The
// model remains queryable afterward (spec.md §5).
func (m *Model) Dump(path string) bool {
	data, err := m.MarshalBinary()
	if err != nil {
		glog.Errorf("marshaling model: %v", err)
		return false
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		glog.Errorf("writing model file %s: %v", path, err)
		return false
	}
	return true
}

// Load replaces m's entire state with the model stored at path. If the
// file's contents fail to decode — including a magic or version mismatch —
// m is fully cleared rather than left with a partial load (spec.md §4.F,
// §7 Format-magic). If the file cannot be read, m is left unchanged.
func (m *Model) Load(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		glog.Errorf("reading model file %s: %v", path, err)
		return false
	}
	if err := m.UnmarshalBinary(data); err != nil {
		glog.Errorf("loading model file %s: %v", path, err)
		m.Clear()
		return false
	}
	return true
}

// MarshalBinary serializes m into the MAGIC|VERSION|blob|MAGIC container
// described in spec.md §4.F.
func (m *Model) MarshalBinary() ([]byte, error) {
	vocabBytes, err := m.vocab.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("nspell: marshaling vocabulary: %w", err)
	}
	var storeBytes []byte
	if m.store != nil {
		storeBytes, err = m.store.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("nspell: marshaling store: %w", err)
		}
	}
	alphabet := make([]rune, 0, len(m.tokenizer.alphabet))
	for r := range m.tokenizer.alphabet {
		alphabet = append(alphabet, r)
	}

	blob, err := gobEncode(gobModelBlob{
		K:          m.k,
		Vocab:      vocabBytes,
		LastWordID: m.lastWordID,
		TotalWords: m.totalWords,
		VocabSize:  m.vocabSize,
		CheckSum:   m.checksum,
		Alphabet:   alphabet,
		Store:      storeBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("nspell: marshaling model blob: %w", err)
	}

	out := make([]byte, 0, 8+2+len(blob)+8)
	out = appendUint64(out, modelMagic)
	out = appendUint16(out, modelVersion)
	out = append(out, blob...)
	out = appendUint64(out, modelMagic)
	return out, nil
}

// UnmarshalBinary parses a MAGIC|VERSION|blob|MAGIC container and
// restores m's state from it. Returns an error without mutating m on
// any malformed input; callers that want the Clear-on-failure policy
// from spec.md §4.F should call Load, which wraps this.
func (m *Model) UnmarshalBinary(data []byte) error {
	if len(data) < 8+2+8 {
		return fmt.Errorf("nspell: model file too short (%d bytes)", len(data))
	}
	leadMagic := binary.LittleEndian.Uint64(data[:8])
	if leadMagic != modelMagic {
		return fmt.Errorf("nspell: bad leading magic %#x", leadMagic)
	}
	version := binary.LittleEndian.Uint16(data[8:10])
	if version != modelVersion {
		return fmt.Errorf("nspell: unsupported model version %d", version)
	}
	trailMagic := binary.LittleEndian.Uint64(data[len(data)-8:])
	if trailMagic != modelMagic {
		return fmt.Errorf("nspell: bad trailing magic %#x", trailMagic)
	}

	blob := data[10 : len(data)-8]
	var g gobModelBlob
	if err := gobDecode(blob, &g); err != nil {
		return fmt.Errorf("nspell: decoding model blob: %w", err)
	}

	vocab := NewVocab()
	if err := vocab.UnmarshalBinary(g.Vocab); err != nil {
		return fmt.Errorf("nspell: decoding vocabulary: %w", err)
	}
	tok := newTokenizer()
	for _, r := range g.Alphabet {
		tok.alphabet[r] = struct{}{}
	}
	var st *store
	if len(g.Store) > 0 {
		st = &store{}
		if err := st.UnmarshalBinary(g.Store); err != nil {
			return fmt.Errorf("nspell: decoding store: %w", err)
		}
	}

	m.vocab = vocab
	m.tokenizer = tok
	m.store = st
	m.k = g.K
	m.lastWordID = g.LastWordID
	m.totalWords = g.TotalWords
	m.vocabSize = g.VocabSize
	m.checksum = g.CheckSum
	return nil
}

func appendUint64(b []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

func appendUint16(b []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(b, tmp[:]...)
}
