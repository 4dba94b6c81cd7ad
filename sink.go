package bitpack

import (
	"io"
)

// WordWriter is the output sink of a Packer.  Words arrive in stream order,
// one call per word, and the sink must preserve that order.
type WordWriter[W Word] interface {
	WriteWord(word W) error
}

// WordBuffer is a WordWriter that collects output words in memory.  The zero
// value is an empty buffer ready for use.
type WordBuffer[W Word] struct {
	words []W
}

// WriteWord appends one word to the buffer.  It never fails.
func (b *WordBuffer[W]) WriteWord(word W) error {
	b.words = append(b.words, word)
	return nil
}

// Words returns the words written so far, in stream order.  The slice is
// valid until the next WriteWord or Reset.
func (b *WordBuffer[W]) Words() []W {
	return b.words
}

// Len is the number of words written so far.
func (b *WordBuffer[W]) Len() int {
	return len(b.words)
}

// Reset empties the buffer, retaining its storage.
func (b *WordBuffer[W]) Reset() {
	b.words = b.words[:0]
}

var _ WordWriter[uint64] = (*WordBuffer[uint64])(nil)

// StreamWriter is a WordWriter that writes each word to an io.Writer in
// little-endian byte order: byte i of a word holds stream bits 8i through
// 8i+7, so the first bit appended by the Packer is the least significant bit
// of the first byte written.
type StreamWriter[W Word] struct {
	w io.Writer
}

// NewStreamWriter constructs a StreamWriter on top of the given writer.
func NewStreamWriter[W Word](w io.Writer) *StreamWriter[W] {
	return &StreamWriter[W]{w: w}
}

// WriteWord writes one word to the underlying writer.
func (sw *StreamWriter[W]) WriteWord(word W) error {
	var scratch [8]byte
	n := wordBits[W]() / 8
	for i := 0; i < n; i++ {
		scratch[i] = byte(word >> (8 * i))
	}
	_, err := sw.w.Write(scratch[:n])
	return err
}

var _ WordWriter[uint8] = (*StreamWriter[uint8])(nil)
