package bitpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Table is an immutable mapping from every Symbol in an alphabet to one
// Codeword.  How the codewords were assigned, whether by Huffman
// construction, read from a file header, or written out by hand, is no
// concern of the Table or of any Packer using it.
//
// A Table is safe to share between any number of Packers, including Packers
// running concurrently, because nothing mutates it after construction.
type Table[W Word] struct {
	codes   []Codeword[W]
	maxSize int
}

// NewTable constructs a Table from one Codeword per Symbol, starting at
// Symbol 0.  Symbols that never occur in legal input may be given a Codeword
// with Size 0.  Every Codeword must fit in MaxCodewordBits and must actually
// store as many bits as its Size declares; a table violating either bound is
// a bug in the caller and fails fast here rather than corrupting a stream
// later.
func NewTable[W Word](codes []Codeword[W]) *Table[W] {
	assert.Assertf(len(codes) <= int(MaxSymbol), "alphabet size %d > MaxSymbol %d", len(codes), int(MaxSymbol))

	w := wordBits[W]()
	var maxSize int
	copied := make([]Codeword[W], len(codes))
	for symbol, cw := range codes {
		assert.Assertf(cw.Size >= 0, "symbol %d: codeword size %d < 0", symbol, cw.Size)
		assert.Assertf(cw.Size <= MaxCodewordBits, "symbol %d: codeword size %d > MaxCodewordBits %d", symbol, cw.Size, MaxCodewordBits)
		assert.Assertf(len(cw.Words)*w >= cw.Size, "symbol %d: %d words of %d bits cannot hold %d bits", symbol, len(cw.Words), w, cw.Size)
		copied[symbol] = cw
		if cw.Size > maxSize {
			maxSize = cw.Size
		}
	}

	return &Table[W]{codes: copied, maxSize: maxSize}
}

// Lookup returns the Codeword for the given symbol.  Looking up a symbol
// outside the table's alphabet is a bug in the caller.
func (t *Table[W]) Lookup(symbol Symbol) Codeword[W] {
	assert.Assertf(symbol >= 0, "symbol %d is negative", symbol)
	assert.Assertf(int(symbol) < len(t.codes), "symbol %d outside alphabet [0, %d)", symbol, len(t.codes))
	return t.codes[symbol]
}

// NumSymbols is the number of Symbols in the table's alphabet.
func (t *Table[W]) NumSymbols() int {
	return len(t.codes)
}

// MaxSymbol is the last Symbol in the table's alphabet.
//
// (The first Symbol in the table's alphabet is always 0.)
func (t *Table[W]) MaxSymbol() Symbol {
	return Symbol(len(t.codes)) - 1
}

// MaxSize is the bit length of the longest codeword in the table.
func (t *Table[W]) MaxSize() int {
	return t.maxSize
}

// Dump writes a programmer-readable debugging dump of the Table to the given
// writer.
func (t *Table[W]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	fmt.Fprintf(&buf, "\tNumSymbols() = %d\n", len(t.codes))
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol, cw := range t.codes {
		if cw.Size == 0 {
			fmt.Fprintf(&buf, "\tLookup(%d) = nil\n", symbol)
		} else {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, cw)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
