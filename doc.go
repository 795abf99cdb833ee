// Package lengths assigns per-symbol code lengths for canonical prefix
// (Huffman-style) codes.  Given a frequency histogram and a maximum
// permitted code length, each kernel in this package produces an integer
// length for every symbol such that the Kraft inequality holds over the
// symbols actually used; the lengths alone are the output, construction of
// the canonical bit patterns themselves is the job of the sibling canon
// package.
//
// Six independent strategies are provided, trading optimality for speed:
//
//   - Moffat: unconstrained optimal Huffman lengths, O(n) auxiliary space.
//   - PackageMerge: optimal length-limited lengths via the coin-collector
//     construction, O(n*L) time and space.
//   - LimitedJPEG and LimitedMiniz: two length-histogram reducers that
//     trade an unconstrained Moffat result down to a shorter maximum
//     length while preserving the Kraft inequality exactly.
//   - LimitedBzip2: repeated frequency halving followed by re-running
//     Moffat, converging on a length-limited result.
//   - LimitedKraft and LimitedKraftHeap: fast heuristics that round
//     per-symbol entropy estimates to integer lengths and then walk the
//     Kraft inequality back under 1.
//
// All entry points share the same failure convention: 0 means the call
// could not produce valid lengths (infeasible parameters, empty alphabet,
// or a length limit too small for the alphabet size).  On that path the
// output slice is either fully zeroed or, when maxLength or numSymbols is
// rejected before any work is done, left untouched.  LimitedBzip2 does not
// check the limit against the alphabet size: when 2^maxLength is smaller
// than the number of used symbols it never returns.
//
// References:
//
//     <https://create.stephan-brumme.com/length-limited-prefix-codes/>
//
//     <https://en.wikipedia.org/wiki/Package-merge_algorithm>
//
package lengths
