// Package bitpack implements a fixed-width bit-packing codec core for
// storing integer sequences as 32-bit machine words.
//
// Three packing strategies share one codec contract (Compress, Decompress,
// Get): a tight cross-word codec, a word-aligned codec, and an escape-coded
// overflow codec for small-k packing with rare large outliers. An optional
// ZigZag pre-transform admits signed values. Each compressed stream is
// self-describing: its first word is a packed header carrying the bit
// width and element count (plus the overflow count in overflow mode), so
// Decompress and Get
// never need out-of-band parameters beyond the codec's own configuration.
//
// Codec values carry only their configuration (k/small_k/useZigZag) and are
// safe to share across goroutines for read-only use; Compress and
// Decompress never mutate the codec itself.
package bitpack

import "fmt"

// Mode selects which packing strategy New/Must constructs.
type Mode string

const (
	ModeCross    Mode = "cross"
	ModeAligned  Mode = "aligned"
	ModeOverflow Mode = "overflow"
)

// Codec is the contract every packing strategy satisfies: compress an
// ordered sequence of integers into 32-bit words, decompress that sequence
// back out, or fetch a single index without decompressing the rest.
//
// Values flow through the contract as int64 so codecs built with
// WithZigZag can admit negative inputs without a separate signed API;
// non-zigzag cross and aligned codecs reject values outside [0, 2^k), while
// the non-zigzag overflow codec accepts any value in [0, 2^32) and escapes
// the ones that do not fit in small_k bits.
type Codec interface {
	// Compress encodes values into a self-describing word sequence.
	Compress(values []int64) ([]uint32, error)

	// Decompress clears out, then appends the n values encoded in words.
	Decompress(words []uint32, out []int64) ([]int64, error)

	// Get returns the value at index i without decompressing the rest.
	Get(words []uint32, i int) (int64, error)
}

type config struct {
	k         int
	smallK    int
	useZigZag bool
}

// Option configures a codec constructed by New or Must.
type Option func(*config)

// WithK sets the per-value bit width for cross and aligned codecs.
func WithK(k int) Option {
	return func(c *config) { c.k = k }
}

// WithSmallK sets the per-token bit width for the overflow codec.
func WithSmallK(k int) Option {
	return func(c *config) { c.smallK = k }
}

// WithZigZag enables the signed/unsigned ZigZag pre-transform.
func WithZigZag(enabled bool) Option {
	return func(c *config) { c.useZigZag = enabled }
}

// New constructs the codec named by mode, applying opts. It returns
// ErrUnknownMode for an unrecognized mode, or ErrInvalidK/ErrInvalidSmallK
// if the required width parameter is missing or out of range.
func New(mode Mode, opts ...Option) (Codec, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	switch mode {
	case ModeCross:
		if cfg.k < 1 || cfg.k > 32 {
			return nil, fmt.Errorf("%w: k=%d", ErrInvalidK, cfg.k)
		}
		return &crossCodec{k: cfg.k, useZigZag: cfg.useZigZag}, nil
	case ModeAligned:
		if cfg.k < 1 || cfg.k > 32 {
			return nil, fmt.Errorf("%w: k=%d", ErrInvalidK, cfg.k)
		}
		return &alignedCodec{k: cfg.k, useZigZag: cfg.useZigZag}, nil
	case ModeOverflow:
		if cfg.smallK < 1 || cfg.smallK > 31 {
			return nil, fmt.Errorf("%w: small_k=%d", ErrInvalidSmallK, cfg.smallK)
		}
		return &overflowCodec{smallK: cfg.smallK, useZigZag: cfg.useZigZag}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Must is like New but panics if construction fails. Intended for package
// init-time codec construction with parameters known to be valid.
func Must(mode Mode, opts ...Option) Codec {
	c, err := New(mode, opts...)
	if err != nil {
		panic(err)
	}
	return c
}
