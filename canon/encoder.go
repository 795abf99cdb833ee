package canon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// NewEncoderFromSizes constructs an Encoder from a code-length vector.
func NewEncoderFromSizes(codeLengths []byte) Encoder {
	var e Encoder
	e.Init(codeLengths)
	return e
}

// Encoder assigns canonical Huffman bit patterns to symbols from a
// precomputed code-length vector, such as one produced by the lengths
// package's kernels.
type Encoder struct {
	codes   []Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from a code-length vector: one entry per
// Symbol in the alphabet, with 0 meaning "this symbol is unused".  Lengths
// must already satisfy the Kraft inequality, e.g. by coming straight out of
// one of the lengths package's kernels.
func (e *Encoder) Init(codeLengths []byte) {
	numSymbols := len(codeLengths)
	assert.Assertf(numSymbols <= int(MaxSymbol), "numSymbols %d > MaxSymbol %d", numSymbols, int(MaxSymbol))

	codes := make([]Code, numSymbols)
	var minSize, maxSize byte
	var hasMinMax bool
	for symbol := 0; symbol < numSymbols; symbol++ {
		size := codeLengths[symbol]
		if size == 0 {
			continue
		}
		assert.Assertf(size <= maxBitsPerCode, "codeLengths[%d] %d > maxBitsPerCode %d", symbol, size, maxBitsPerCode)
		codes[symbol].Size = size
		if !hasMinMax {
			hasMinMax = true
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}

	if hasMinMax {
		assignCanonicalBits(codes)
	}

	*e = Encoder{
		codes:   codes,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Encode encodes a Symbol into a Huffman-coded bit string.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// MaxSymbol is the last Symbol in the code's alphabet.
//
// (The first Symbol in the code's alphabet is always 0.)
//
func (e Encoder) MaxSymbol() Symbol {
	return Symbol(len(e.codes)) - 1
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet.  This array can be transmitted to another party and used by
// Decoder to reconstruct this Huffman code on the receiving end.
//
func (e Encoder) SizeBySymbol() []byte {
	numSymbols := Symbol(len(e.codes))
	out := make([]byte, numSymbols)
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := e.codes[symbol]
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	numSymbols := Symbol(len(e.codes))
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = nil\n", symbol)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString is Dump's output as a string.
func (e Encoder) DebugString() string {
	var buf bytes.Buffer
	_, _ = e.Dump(&buf)
	return buf.String()
}

// GoString implements fmt.GoStringer.
func (e Encoder) GoString() string {
	var buf bytes.Buffer
	buf.WriteString("NewEncoderFromSizes([]byte{")
	for i, size := range e.SizeBySymbol() {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%d", size)
	}
	buf.WriteString("})")
	return buf.String()
}

// String implements fmt.Stringer.
func (e Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)", len(e.codes), e.minSize, e.maxSize)
}

// MarshalJSON implements json.Marshaler, serializing the code lengths.
func (e Encoder) MarshalJSON() ([]byte, error) {
	return json.Marshal(intSizes(e.SizeBySymbol()))
}

// UnmarshalJSON implements json.Unmarshaler, reconstructing the Encoder from
// a serialized code-length vector.
func (e *Encoder) UnmarshalJSON(raw []byte) error {
	var ints []int
	if err := json.Unmarshal(raw, &ints); err != nil {
		return err
	}
	e.Init(bytesFromInts(ints))
	return nil
}

func intSizes(sizes []byte) []int {
	out := make([]int, len(sizes))
	for i, size := range sizes {
		out[i] = int(size)
	}
	return out
}

func bytesFromInts(ints []int) []byte {
	out := make([]byte, len(ints))
	for i, v := range ints {
		out[i] = byte(v)
	}
	return out
}

// assignCanonicalBits computes the "second pass" of Huffman code assignment:
// transforming (Symbol, codes[Symbol].Size) assignments into a canonical
// Huffman code written back to codes[Symbol].Bits.
func assignCanonicalBits(codes []Code) {
	// Step 1: sort the symbols by (codes[Symbol].Size, Symbol) ascending.

	numSymbols := Symbol(len(codes))
	sorted := make(bySize, 0, numSymbols)
	for symbol := Symbol(0); symbol < numSymbols; symbol++ {
		hc := codes[symbol]
		if hc.Size == 0 {
			continue
		}
		sorted = append(sorted, symbolAndSize{symbol, hc.Size})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	// RFC 1951 builds these codes MSB-first, but DEFLATE-style bitstreams
	// transmit the least significant bit of a code first, so the code
	// actually stored here (and returned by Encode) is bit-reversed, per
	// the convention documented on Code.Bits.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		codes[item.symbol] = MakeReversedCode(item.size, nextCode)
		nextCode++
	}
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	ay, ai := a.symbol, a.size
	by, bi := b.symbol, b.size
	if ai != bi {
		return ai < bi
	}
	return ay < by
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
