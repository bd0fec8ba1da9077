// Package digest computes content fingerprints of deques.
//
// A fingerprint is the SHA-256 of the elements in logical order, each encoded
// as a little-endian 64 bit word. It depends only on the elements, never on
// where a deque keeps them.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/minio/sha256-simd"
	"github.com/skyline93/deque/internal/deque"
	"github.com/skyline93/deque/internal/errors"
)

// Size is the length of an ID in bytes.
const Size = sha256.Size

// ID is the fingerprint of a sequence of elements.
type ID [Size]byte

// Null is the all-zero ID. No sequence hashes to it in practice.
var Null ID

// ParseID decodes the hex form returned by String.
func ParseID(s string) (ID, error) {
	var id ID
	if len(s) != 2*Size {
		return Null, errors.Errorf("digest %q: want %d hex digits, got %d", s, 2*Size, len(s))
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return Null, errors.Wrapf(err, "digest %q", s)
	}
	return id, nil
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// Str is the short form used in log messages and CLI output: the first four
// bytes in hex.
func (id *ID) Str() string {
	switch {
	case id == nil:
		return "[nil]"
	case id.IsNull():
		return "[null]"
	}
	return id.String()[:8]
}

func (id ID) IsNull() bool { return id == Null }

func (id ID) Equal(other ID) bool { return id == other }

// Hash returns the SHA-256 of raw bytes.
func Hash(data []byte) ID {
	return sha256.Sum256(data)
}

// Hasher accumulates elements one at a time.
type Hasher struct {
	h   hash.Hash
	buf [8]byte
	n   int
}

func NewHasher() *Hasher {
	return &Hasher{h: sha256.New()}
}

// Add appends vs to the hashed sequence.
func (h *Hasher) Add(vs ...int) {
	for _, v := range vs {
		binary.LittleEndian.PutUint64(h.buf[:], uint64(v))
		_, _ = h.h.Write(h.buf[:])
	}
	h.n += len(vs)
}

// Count returns the number of elements added so far.
func (h *Hasher) Count() int {
	return h.n
}

// Sum returns the ID of the elements added so far.
func (h *Hasher) Sum() ID {
	var id ID
	h.h.Sum(id[:0])
	return id
}

// Values returns the ID of values.
func Values(values []int) ID {
	h := NewHasher()
	h.Add(values...)
	return h.Sum()
}

// Sum returns the ID of the elements of d, front to back.
func Sum(d *deque.Deque) ID {
	return Values(d.Values())
}
