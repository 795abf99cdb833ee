// Package canon assigns canonical bit patterns from a code-length vector,
// and decodes bit strings back into symbols.  It is the downstream half of
// the lengths package: lengths produces per-symbol bit lengths, canon turns
// those lengths into an actual prefix code.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
package canon
