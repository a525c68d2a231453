package bitpack

import (
	"errors"
	"fmt"
)

// Reader provides sequential and random access over a decompressed block,
// decoding once on Load and serving Get/Next/Decode from the resulting
// buffer. A Reader is not safe for concurrent use; create one Reader per
// goroutine over the same words if concurrent access is needed.
//
// A Reader is bound to a single already-constructed Codec: the wire format
// does not self-describe which of the three modes produced it, so callers
// must know the mode out-of-band and pick the matching codec, exactly as
// they must when calling Codec.Get directly.
type Reader struct {
	codec Codec

	values []int64
	pos    int
	loaded bool
}

// ErrNotLoaded is returned by Reader.Get when the reader has not yet been
// loaded with data; Next and Decode instead report an unloaded reader by
// returning ok == false and nil respectively.
var ErrNotLoaded = errors.New("bitpack: reader not loaded")

// NewReader creates an empty Reader bound to codec. The reader must be
// loaded with Load before Get/Next/Decode are meaningful.
func NewReader(codec Codec) *Reader {
	return &Reader{codec: codec}
}

// Load decodes words into the reader's internal buffer, resetting the
// sequential position. Load may be called repeatedly to reuse the reader
// across multiple compressed blocks.
func (r *Reader) Load(words []uint32) error {
	values, err := r.codec.Decompress(words, r.values[:0])
	if err != nil {
		return err
	}
	r.values = values
	r.pos = 0
	r.loaded = true
	return nil
}

// IsLoaded reports whether Load has succeeded at least once.
func (r *Reader) IsLoaded() bool {
	return r.loaded
}

// Len returns the number of elements in the loaded block.
func (r *Reader) Len() int {
	return len(r.values)
}

// Pos returns the current position for sequential iteration.
func (r *Reader) Pos() int {
	return r.pos
}

// Reset rewinds the sequential position to the beginning.
func (r *Reader) Reset() {
	r.pos = 0
}

// Get returns the value at pos, independent of the sequential position.
func (r *Reader) Get(pos int) (int64, error) {
	if !r.loaded {
		return 0, ErrNotLoaded
	}
	if pos < 0 || pos >= len(r.values) {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, pos, len(r.values))
	}
	return r.values[pos], nil
}

// Next returns the next value in sequence and its position, advancing the
// sequential cursor. ok is false once the cursor reaches the end.
func (r *Reader) Next() (value int64, pos int, ok bool) {
	if !r.loaded || r.pos >= len(r.values) {
		return 0, 0, false
	}
	value = r.values[r.pos]
	pos = r.pos
	r.pos++
	return value, pos, true
}

// Decode copies all decoded values into dst, growing it if necessary, and
// returns the resulting slice.
func (r *Reader) Decode(dst []int64) []int64 {
	if !r.loaded {
		return nil
	}
	if cap(dst) < len(r.values) {
		dst = make([]int64, len(r.values))
	} else {
		dst = dst[:len(r.values)]
	}
	copy(dst, r.values)
	return dst
}
