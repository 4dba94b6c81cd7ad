// Package bitpack packs variable-length codewords into a dense bit stream.
// Given a table assigning each symbol a codeword of arbitrary bit length,
// a Packer concatenates the codewords for a sequence of symbols with no
// padding between them, emitting fixed-width output words as they fill.
// These streams are useful for Huffman coding and other prefix-code
// compression algorithms.
//
// Bits are appended least significant bit first: bit 0 of the stream is the
// least significant bit of the first output word.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.1.1
package bitpack
