package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeTokenRoundTrip(t *testing.T) {
	assert := assert.New(t)

	token, err := encodeToken(5, 8, false)
	assert.NoError(err)
	assert.EqualValues(5, decodeToken(token, false))

	token, err = encodeToken(-5, 8, true)
	assert.NoError(err)
	assert.EqualValues(-5, decodeToken(token, true))
}

func TestEncodeTokenRejectsOutOfRange(t *testing.T) {
	_, err := encodeToken(256, 8, false)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	_, err = encodeToken(-1, 8, false)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestCheckArrayLen(t *testing.T) {
	assert.NoError(t, checkArrayLen(0))
	assert.NoError(t, checkArrayLen(maxArrayLen))
	assert.ErrorIs(t, checkArrayLen(maxArrayLen+1), ErrTooManyValues)
}
