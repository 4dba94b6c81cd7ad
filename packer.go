package bitpack

import (
	"github.com/chronos-tachyon/assert"
)

// Packer packs a sequence of Symbols into a dense bit stream.  Each appended
// Symbol contributes its Codeword's bits, least significant bit first,
// immediately after the bits already in the stream; output words are handed
// to the sink the moment they fill, and Finish flushes the final partial
// word.
//
// A Packer is single-use: after Finish it accepts no further Symbols.  It is
// not safe for concurrent use, but independent Packers may share one Table.
type Packer[W Word] struct {
	table *Table[W]
	sink  WordWriter[W]

	// The low-order nb bits of buf hold bits appended but not yet emitted.
	// The remaining high bits of buf are always zero.
	buf  W
	nb   int
	done bool
}

// NewPacker constructs a Packer that packs codewords from the given table
// and emits output words to the given sink.
func NewPacker[W Word](table *Table[W], sink WordWriter[W]) *Packer[W] {
	assert.Assertf(table != nil, "table is nil")
	assert.Assertf(sink != nil, "sink is nil")
	return &Packer[W]{table: table, sink: sink}
}

// Append appends the given symbol's codeword to the stream, emitting each
// output word as it fills.  The only errors returned are those of the sink;
// appending a symbol outside the table's alphabet is a bug in the caller.
func (p *Packer[W]) Append(symbol Symbol) error {
	assert.Assertf(!p.done, "Append after Finish")
	cw := p.table.Lookup(symbol)

	w := wordBits[W]()

	// Number of whole output words completed by this codeword.  This
	// counts the codeword's bits and the nb bits already buffered
	// together, so it may exceed the number of full words the codeword
	// occupies on its own.
	numWords := (p.nb + cw.Size) / w

	for i := 0; i < numWords; i++ {
		word := cw.word(i)
		if err := p.sink.WriteWord(p.buf | word<<p.nb); err != nil {
			return err
		}
		// The codeword bits that did not fit become the low bits of
		// the new buffer.  When nb == 0 this shifts by the full word
		// width, which Go defines as 0: exactly the empty buffer the
		// stream needs.
		p.buf = word >> (w - p.nb)
	}

	// At this point numWords*w bits of the codeword and buffer have been
	// consumed, and the codeword's unconsumed tail is strictly shorter
	// than one word, so it fits in the buffer without overflowing.
	p.buf |= cw.word(numWords) << p.nb
	p.nb = (p.nb + cw.Size) % w
	return nil
}

// AppendBytes appends one Symbol per input byte.
func (p *Packer[W]) AppendBytes(input []byte) error {
	for _, b := range input {
		if err := p.Append(Symbol(b)); err != nil {
			return err
		}
	}
	return nil
}

// Finish emits the final partial output word, if there is one, and ends the
// stream.  The high bits of the final word above the last codeword bit are
// zero filler; a reader needs external framing, such as a known symbol
// count, to ignore them.  Finish is idempotent: the second and later calls
// emit nothing and return nil.
func (p *Packer[W]) Finish() error {
	if p.done {
		return nil
	}
	p.done = true
	if p.nb == 0 {
		return nil
	}
	word := p.buf
	p.buf = 0
	p.nb = 0
	return p.sink.WriteWord(word)
}

// word returns word i of the codeword with all don't-care bits masked to
// zero, and zero for any i at or beyond the stored words.  The packer never
// trusts a table's storage to be zeroed above Size, and never reads past it:
// the word one beyond a codeword's storage is reachable when the codeword
// ends exactly on a word boundary, and is defined here as 0.
func (cw Codeword[W]) word(i int) W {
	if i >= len(cw.Words) {
		return 0
	}
	w := wordBits[W]()
	valid := cw.Size - i*w
	switch {
	case valid <= 0:
		return 0
	case valid >= w:
		return cw.Words[i]
	}
	return cw.Words[i] & (W(1)<<valid - 1)
}
