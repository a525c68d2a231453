package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUnknownMode(t *testing.T) {
	_, err := New(Mode("bogus"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestNewCrossMissingK(t *testing.T) {
	_, err := New(ModeCross)
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestNewAlignedKOutOfRange(t *testing.T) {
	_, err := New(ModeAligned, WithK(33))
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = New(ModeAligned, WithK(0))
	assert.ErrorIs(t, err, ErrInvalidK)
}

func TestNewOverflowMissingSmallK(t *testing.T) {
	_, err := New(ModeOverflow)
	assert.ErrorIs(t, err, ErrInvalidSmallK)

	_, err = New(ModeOverflow, WithSmallK(32))
	assert.ErrorIs(t, err, ErrInvalidSmallK)
}

func TestMustPanicsOnInvalidConfig(t *testing.T) {
	assert.Panics(t, func() {
		Must(ModeCross)
	})
}

func TestMustReturnsUsableCodec(t *testing.T) {
	assert := assert.New(t)
	c := Must(ModeCross, WithK(8))

	words, err := c.Compress([]int64{1, 2, 3})
	assert.NoError(err)
	assert.NotEmpty(words)
}

func TestDeterministicOutput(t *testing.T) {
	assert := assert.New(t)

	c, err := New(ModeAligned, WithK(5))
	assert.NoError(err)

	in := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	a, err := c.Compress(in)
	assert.NoError(err)
	b, err := c.Compress(in)
	assert.NoError(err)
	assert.Equal(a, b, "identical inputs must produce bit-identical output")
}
