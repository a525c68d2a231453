package bitpack

import (
	"fmt"
	"math"
)

// maxArrayLen is the largest array length the 16-bit length header field
// can address.
const maxArrayLen = 0xFFFF

// encodeToken applies the optional ZigZag transform and validates that the
// result fits in width bits, the shared admission check for the cross and
// aligned codecs (the overflow codec has its own, escape-instead-of-reject
// variant in overflow.go).
func encodeToken(v int64, width int, useZigZag bool) (uint32, error) {
	var token uint32
	if useZigZag {
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d does not fit in an int32 for zigzag encoding", ErrValueOutOfRange, v)
		}
		token = ZigZagEncode32(int32(v))
	} else {
		if v < 0 || v > math.MaxUint32 {
			return 0, fmt.Errorf("%w: %d is negative or exceeds 32 bits", ErrValueOutOfRange, v)
		}
		token = uint32(v)
	}
	if width < 32 && uint64(token) > widthMask(width) {
		return 0, fmt.Errorf("%w: value requires more than %d bits", ErrValueOutOfRange, width)
	}
	return token, nil
}

// decodeToken reverses encodeToken.
func decodeToken(token uint32, useZigZag bool) int64 {
	if useZigZag {
		return int64(ZigZagDecode32(token))
	}
	return int64(token)
}

func checkArrayLen(n int) error {
	if n < 0 || n > maxArrayLen {
		return fmt.Errorf("%w: length %d", ErrTooManyValues, n)
	}
	return nil
}
