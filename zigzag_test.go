package bitpack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZigZagRoundTrip(t *testing.T) {
	assert := assert.New(t)

	samples := []int32{0, 1, -1, 2, -2, 1000000, -1000000, math.MaxInt32, math.MinInt32}
	for _, x := range samples {
		z := ZigZagEncode32(x)
		assert.Equal(x, ZigZagDecode32(z), "round trip for %d", x)
	}
}

func TestZigZagSmallMagnitudesStaySmall(t *testing.T) {
	assert := assert.New(t)

	// The whole point of zigzag: [0, -1, 1, -2, 2] -> [0, 1, 2, 3, 4].
	in := []int32{0, -1, 1, -2, 2}
	want := []uint32{0, 1, 2, 3, 4}
	for i, x := range in {
		assert.Equal(want[i], ZigZagEncode32(x))
	}
}
