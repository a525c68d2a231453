// Command bitpackcheck round-trips a comma-separated list of integers
// through a chosen bitpack mode and reports the resulting word count. It
// exists to exercise the library from outside package bitpack, not to
// benchmark it - no timing is performed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mhr3/streamvbyte"

	"github.com/haxpax/bitpack"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "bitpackcheck:", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("bitpackcheck", flag.ContinueOnError)
	mode := fs.String("mode", "cross", "cross | aligned | overflow | streamvbyte")
	k := fs.Int("k", 8, "bits per value (cross/aligned modes)")
	smallK := fs.Int("small-k", 4, "bits per token (overflow mode)")
	zigzag := fs.Bool("zigzag", false, "enable the zigzag sign transform")
	if err := fs.Parse(args); err != nil {
		return err
	}

	values, err := readValues(in)
	if err != nil {
		return err
	}

	switch *mode {
	case "streamvbyte":
		return runStreamVByte(out, values)
	default:
		return runBitpack(out, bitpack.Mode(*mode), *k, *smallK, *zigzag, values)
	}
}

func runBitpack(out io.Writer, mode bitpack.Mode, k, smallK int, zigzag bool, values []int64) error {
	opts := []bitpack.Option{bitpack.WithZigZag(zigzag)}
	switch mode {
	case bitpack.ModeCross, bitpack.ModeAligned:
		opts = append(opts, bitpack.WithK(k))
	case bitpack.ModeOverflow:
		opts = append(opts, bitpack.WithSmallK(smallK))
	}

	codec, err := bitpack.New(mode, opts...)
	if err != nil {
		return err
	}

	words, err := codec.Compress(values)
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	decoded, err := codec.Decompress(words, nil)
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	if !int64SlicesEqual(values, decoded) {
		return fmt.Errorf("round trip mismatch: got %v, want %v", decoded, values)
	}

	fmt.Fprintf(out, "mode=%s n=%d words=%d bytes=%d\n", mode, len(values), len(words), len(words)*4)
	return nil
}

// runStreamVByte encodes the same input with the real streamvbyte library
// purely as a size comparison against the bitpack modes above; it is not
// part of the codec contract.
func runStreamVByte(out io.Writer, values []int64) error {
	u32 := make([]uint32, len(values))
	for i, v := range values {
		if v < 0 || v > 0xFFFFFFFF {
			return fmt.Errorf("value %d does not fit in uint32 for streamvbyte comparison", v)
		}
		u32[i] = uint32(v)
	}

	encoded := streamvbyte.EncodeUint32(u32, nil)
	decoded := streamvbyte.DecodeUint32(encoded, len(u32), nil)
	if !uint32SlicesEqual(u32, decoded) {
		return fmt.Errorf("streamvbyte round trip mismatch")
	}

	fmt.Fprintf(out, "mode=streamvbyte n=%d bytes=%d\n", len(values), len(encoded))
	return nil
}

func readValues(in io.Reader) ([]int64, error) {
	var values []int64
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", field, err)
			}
			values = append(values, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

func int64SlicesEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func uint32SlicesEqual(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
