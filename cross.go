package bitpack

import "fmt"

// crossCodec implements the tight, cross-word packing strategy: values are
// written LSB-first into a rolling bit buffer with no regard for word
// boundaries, so a value may straddle two words. See getFlat for the
// 64-bit combine random access depends on.
type crossCodec struct {
	k         int
	useZigZag bool
}

// Compress packs values into a header word followed by the cross-word
// bitstream body.
func (c *crossCodec) Compress(values []int64) ([]uint32, error) {
	if err := checkArrayLen(len(values)); err != nil {
		return nil, err
	}

	tokens := make([]uint32, len(values))
	for i, v := range values {
		token, err := encodeToken(v, c.k, c.useZigZag)
		if err != nil {
			return nil, fmt.Errorf("bitpack: cross compress at index %d: %w", i, err)
		}
		tokens[i] = token
	}

	body := packFlat(tokens, c.k)
	out := make([]uint32, 0, 1+len(body))
	out = append(out, encodeSimpleHeader(c.k, len(values)))
	out = append(out, body...)
	return out, nil
}

// Decompress clears out and refills it with the n values encoded in words.
func (c *crossCodec) Decompress(words []uint32, out []int64) ([]int64, error) {
	out = out[:0]
	if len(words) < 1 {
		return out, fmt.Errorf("%w: cross decompress needs a header word", ErrShortStream)
	}
	k, n := decodeSimpleHeader(words[0])
	if k < 1 || k > 32 {
		return out, fmt.Errorf("%w: header k=%d", ErrMalformedHeader, k)
	}
	if need := 1 + bodyWordsFor(n, k); len(words) < need {
		return out, fmt.Errorf("%w: need %d words, have %d", ErrShortStream, need, len(words))
	}

	tokens := make([]uint32, n)
	unpackFlat(tokens, words[1:], n, k)

	if cap(out) < n {
		out = make([]int64, n)
	} else {
		out = out[:n]
	}
	for i, token := range tokens {
		out[i] = decodeToken(token, c.useZigZag)
	}
	return out, nil
}

// Get returns the value at index i without decoding the rest of the stream.
func (c *crossCodec) Get(words []uint32, i int) (int64, error) {
	if len(words) < 1 {
		return 0, fmt.Errorf("%w: cross get needs a header word", ErrShortStream)
	}
	k, n := decodeSimpleHeader(words[0])
	if k < 1 || k > 32 {
		return 0, fmt.Errorf("%w: header k=%d", ErrMalformedHeader, k)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, n)
	}
	if need := 1 + bodyWordsFor(n, k); len(words) < need {
		return 0, fmt.Errorf("%w: need %d words, have %d", ErrShortStream, need, len(words))
	}
	token := getFlat(words[1:], i*k, k)
	return decodeToken(token, c.useZigZag), nil
}
