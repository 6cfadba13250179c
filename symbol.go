package huffman

import (
	"math"
	"strings"
)

// Symbol represents a symbol in the input alphabet.  In practice each Symbol
// holds a single Unicode code point.  Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes also carry it.
const InvalidSymbol = Symbol(-1)

// Symbols splits a string into its Symbols, one per code point.
func Symbols(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, ch := range str {
		out = append(out, Symbol(ch))
	}
	return out
}

// SymbolsString is the inverse of Symbols.
func SymbolsString(list []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(list))
	for _, symbol := range list {
		sb.WriteRune(rune(symbol))
	}
	return sb.String()
}

// IsValid returns true iff this Symbol may appear in a FrequencyTable.
func (symbol Symbol) IsValid() bool {
	return symbol >= 0
}

// String returns the symbol as a one-character string.
func (symbol Symbol) String() string {
	if !symbol.IsValid() {
		return "<invalid>"
	}
	return string(rune(symbol))
}
