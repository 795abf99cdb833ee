package lengths

import "io"

// Histogram counts how often each byte value occurs while reading r to EOF,
// the way original_source/histogram.c counts bytes in a file: the result is
// always exactly 256 entries long, one per possible byte value, ready to
// hand straight to any of this package's length-assignment kernels as
// numSymbols=256.
func Histogram(r io.Reader) ([]uint64, error) {
	histogram := make([]uint64, 256)

	var buf [64 * 1024]byte
	for {
		n, err := r.Read(buf[:])
		for _, b := range buf[:n] {
			histogram[b]++
		}
		if err == io.EOF {
			return histogram, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
