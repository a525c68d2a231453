package bitpack

// ZigZagEncode32 maps a signed 32-bit integer to an unsigned token such that
// small magnitudes, positive or negative, encode to small unsigned values.
func ZigZagEncode32(x int32) uint32 {
	return uint32(x<<1) ^ uint32(x>>31)
}

// ZigZagDecode32 is the inverse of ZigZagEncode32.
func ZigZagDecode32(z uint32) int32 {
	return int32((z >> 1) ^ uint32(-int32(z&1)))
}
