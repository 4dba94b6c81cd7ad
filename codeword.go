package bitpack

import (
	"fmt"
	mathbits "math/bits"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Word is the set of types usable as a bit stream's output unit.  The bit
// width of the chosen type is the stream's word size.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// wordBits returns the width of W in bits.
func wordBits[W Word]() int {
	return mathbits.Len64(uint64(^W(0)))
}

// Codeword represents a sequence of up to MaxCodewordBits bits.
type Codeword[W Word] struct {
	// Size holds the number of valid bits.
	Size int

	// Words holds the actual values of the bits.  The least significant
	// bit of Words[0] is the first bit, and bit i of the sequence lives at
	// Words[i/W] bit i%W, where W is the word width in bits.  Bits at
	// positions Size and above are don't-care.
	Words []W
}

// MakeCodeword is a convenience function that constructs a Codeword.  The
// words must hold at least size bits.
func MakeCodeword[W Word](size int, words ...W) Codeword[W] {
	assert.Assertf(size >= 0, "size %d < 0", size)
	assert.Assertf(size <= MaxCodewordBits, "size %d > MaxCodewordBits %d", size, MaxCodewordBits)
	assert.Assertf(len(words)*wordBits[W]() >= size, "%d words of %d bits cannot hold %d bits", len(words), wordBits[W](), size)
	return Codeword[W]{Size: size, Words: words}
}

// AppendBit appends one bit to the end of the sequence.
func (cw *Codeword[W]) AppendBit(bit bool) {
	assert.Assertf(cw.Size < MaxCodewordBits, "codeword already holds MaxCodewordBits %d bits", MaxCodewordBits)
	w := wordBits[W]()
	index := cw.Size
	if index/w == len(cw.Words) {
		cw.Words = append(cw.Words, 0)
	}
	if bit {
		cw.Words[index/w] |= W(1) << (index % w)
	} else {
		cw.Words[index/w] &^= W(1) << (index % w)
	}
	cw.Size++
}

// DropBit removes the last bit of the sequence, without returning it.
func (cw *Codeword[W]) DropBit() {
	assert.Assertf(cw.Size > 0, "codeword is empty")
	cw.Size--
}

// Bit returns bit i of the sequence.
func (cw Codeword[W]) Bit(i int) bool {
	assert.Assertf(i >= 0 && i < cw.Size, "bit index %d outside [0, %d)", i, cw.Size)
	w := wordBits[W]()
	return (cw.Words[i/w]>>(i%w))&1 != 0
}

// Clone returns a deep copy of this Codeword.
func (cw Codeword[W]) Clone() Codeword[W] {
	words := make([]W, len(cw.Words))
	copy(words, cw.Words)
	return Codeword[W]{Size: cw.Size, Words: words}
}

// String returns the string representation of this Codeword, with the first
// bit of the sequence leftmost.
func (cw Codeword[W]) String() string {
	if cw.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(cw.Size)
	for i := 0; i < cw.Size; i++ {
		if cw.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Codeword[uint8]{}
