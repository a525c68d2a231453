package bitpack

import (
	"fmt"
	"math"
)

// overflowCodec implements small-k packing with an escape token: the
// reserved token M = (1<<smallK)-1 means "the real value lives in the
// overflow tail," a trailing run of full 32-bit words, one per escaped
// value, in order of appearance. Only values strictly greater than M-1
// escape; M-1 itself is still storable inline.
type overflowCodec struct {
	smallK    int
	useZigZag bool
}

func (c *overflowCodec) escapeToken() uint32 {
	return uint32(widthMask(c.smallK))
}

// inlineLimit is M-1, the largest value still storable as a plain token.
func (c *overflowCodec) inlineLimit() uint32 {
	return c.escapeToken() - 1
}

// Compress packs values into an overflow header word, the small_k-wide
// token bitstream, and the overflow tail.
func (c *overflowCodec) Compress(values []int64) ([]uint32, error) {
	if err := checkArrayLen(len(values)); err != nil {
		return nil, err
	}

	M := c.escapeToken()
	limit := c.inlineLimit()
	tokens := make([]uint32, len(values))
	var overflow []uint32

	for i, v := range values {
		val, err := overflowValueToken(v, c.useZigZag)
		if err != nil {
			return nil, fmt.Errorf("bitpack: overflow compress at index %d: %w", i, err)
		}
		if val <= limit {
			tokens[i] = val
		} else {
			tokens[i] = M
			overflow = append(overflow, val)
		}
	}
	if len(overflow) > 0xFF {
		return nil, fmt.Errorf("%w: %d overflow values", ErrTooManyOverflows, len(overflow))
	}

	body := packFlat(tokens, c.smallK)
	out := make([]uint32, 0, 1+len(body)+len(overflow))
	out = append(out, encodeOverflowHeader(c.smallK, len(values), len(overflow)))
	out = append(out, body...)
	out = append(out, overflow...)
	return out, nil
}

// Decompress clears out and refills it with the n values encoded in words.
func (c *overflowCodec) Decompress(words []uint32, out []int64) ([]int64, error) {
	out = out[:0]
	if len(words) < 1 {
		return out, fmt.Errorf("%w: overflow decompress needs a header word", ErrShortStream)
	}
	smallK, n, overflowCount := decodeOverflowHeader(words[0])
	if smallK < 1 || smallK > 31 {
		return out, fmt.Errorf("%w: header small_k=%d", ErrMalformedHeader, smallK)
	}
	bodyWords := bodyWordsFor(n, smallK)
	overflowStart := 1 + bodyWords
	need := overflowStart + overflowCount
	if len(words) < need {
		return out, fmt.Errorf("%w: need %d words, have %d", ErrShortStream, need, len(words))
	}

	tokens := make([]uint32, n)
	unpackFlat(tokens, words[1:overflowStart], n, smallK)

	if cap(out) < n {
		out = make([]int64, n)
	} else {
		out = out[:n]
	}
	M := c.escapeToken()
	tail := words[overflowStart:need]
	tailIdx := 0
	for i, token := range tokens {
		var val uint32
		if token == M {
			val = tail[tailIdx]
			tailIdx++
		} else {
			val = token
		}
		out[i] = overflowTokenToValue(val, c.useZigZag)
	}
	return out, nil
}

// Get returns the value at index i, scanning preceding tokens for escapes
// when the requested token is itself an escape marker. Worst case
// O(i*small_k/32); the expected overflow density is assumed low.
func (c *overflowCodec) Get(words []uint32, i int) (int64, error) {
	if len(words) < 1 {
		return 0, fmt.Errorf("%w: overflow get needs a header word", ErrShortStream)
	}
	smallK, n, _ := decodeOverflowHeader(words[0])
	if smallK < 1 || smallK > 31 {
		return 0, fmt.Errorf("%w: header small_k=%d", ErrMalformedHeader, smallK)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	bodyWords := bodyWordsFor(n, smallK)
	overflowStart := 1 + bodyWords
	if len(words) < overflowStart {
		return 0, fmt.Errorf("%w: need %d words, have %d", ErrShortStream, overflowStart, len(words))
	}
	body := words[1:overflowStart]

	M := c.escapeToken()
	token := getFlat(body, i*smallK, smallK)
	if token != M {
		return overflowTokenToValue(token, c.useZigZag), nil
	}

	tailOffset := 0
	for j := 0; j < i; j++ {
		if getFlat(body, j*smallK, smallK) == M {
			tailOffset++
		}
	}
	tailIdx := overflowStart + tailOffset
	if tailIdx >= len(words) {
		return 0, fmt.Errorf("%w: overflow tail word %d missing", ErrShortStream, tailIdx)
	}
	return overflowTokenToValue(words[tailIdx], c.useZigZag), nil
}

// overflowValueToken applies ZigZag (if enabled) but does not truncate to
// small_k bits - an out-of-width value escapes to the overflow tail rather
// than being rejected.
func overflowValueToken(v int64, useZigZag bool) (uint32, error) {
	if useZigZag {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d does not fit in an int32 for zigzag encoding", ErrValueOutOfRange, v)
		}
		return ZigZagEncode32(int32(v)), nil
	}
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d is negative or exceeds 32 bits", ErrValueOutOfRange, v)
	}
	return uint32(v), nil
}

func overflowTokenToValue(v uint32, useZigZag bool) int64 {
	if useZigZag {
		return int64(ZigZagDecode32(v))
	}
	return int64(v)
}
