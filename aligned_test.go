package bitpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignedSingleValue(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c, err := New(ModeAligned, WithK(4))
	require.NoError(err)

	words, err := c.Compress([]int64{13})
	require.NoError(err)
	assert.Equal([]uint32{encodeSimpleHeader(4, 1), 0x0000000D}, words)

	v, err := c.Get(words, 0)
	require.NoError(err)
	assert.EqualValues(13, v)
}

func TestAlignedDegenerateFullWidth(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	c, err := New(ModeAligned, WithK(32))
	require.NoError(err)

	in := []int64{1, 2, 3}
	words, err := c.Compress(in)
	require.NoError(err)
	assert.Equal(1+len(in), len(words), "k=32 is one value per word")

	out, err := c.Decompress(words, nil)
	require.NoError(err)
	assert.Equal(in, out)
}

func TestAlignedRoundTripRandom(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		k := 1 + rng.Intn(32)
		n := rng.Intn(500)
		c, err := New(ModeAligned, WithK(k))
		require.NoError(err)

		in := make([]int64, n)
		maxVal := int64(1) << uint(k)
		for i := range in {
			if k == 32 {
				in[i] = int64(rng.Uint32())
			} else {
				in[i] = rng.Int63n(maxVal)
			}
		}

		words, err := c.Compress(in)
		require.NoError(err)

		p := 32 / k
		wantWords := 1
		if n > 0 {
			wantWords = 1 + (n+p-1)/p
		}
		assert.Equal(wantWords, len(words))

		out, err := c.Decompress(words, nil)
		require.NoError(err)
		assert.Equal(in, out)

		for i, want := range in {
			got, err := c.Get(words, i)
			require.NoError(err)
			assert.Equal(want, got)
		}
	}
}

func TestAlignedWastesBitsExceptWhenDivisible(t *testing.T) {
	for k := 1; k <= 32; k++ {
		p := 32 / k
		wasted := 32 - p*k
		if 32%k == 0 {
			assert.Equal(t, 0, wasted, "k=%d", k)
		} else {
			assert.Greater(t, wasted, 0, "k=%d", k)
		}
	}
}
