package bitpack

import (
	"math"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is used by internal tree nodes and test helpers to clearly
// indicate that no symbol is being held.
const InvalidSymbol = Symbol(-1)

// NumByteSymbols is the number of symbols in the byte alphabet, the most
// common alphabet for this package.
const NumByteSymbols = 256

// MaxCodewordBits is the longest codeword that a Table will accept.  A
// maximally skewed prefix code over an alphabet of N symbols assigns a
// codeword of N-1 bits, so the bound is tied to the largest supported
// alphabet rather than to any particular word width.
const MaxCodewordBits = NumByteSymbols
