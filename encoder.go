package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// UnknownSymbolError is returned when a message contains a Symbol that has no
// entry in the CodeTable.
type UnknownSymbolError struct {
	Symbol Symbol
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("huffman: symbol %q (%d) has no codeword", rune(err.Symbol), int32(err.Symbol))
}

var _ error = (*UnknownSymbolError)(nil)

// EncodedMessage is the concatenation of the codewords of a message, as a
// string of '0' and '1' digits.
type EncodedMessage string

// Len returns the number of bits in the message.
func (m EncodedMessage) Len() int {
	return len(m)
}

// Pack packs the message into bytes, first bit in the most significant
// position.  The final byte is padded with zero bits.
func (m EncodedMessage) Pack() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the packed form of the message to w.
func (m EncodedMessage) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bitio.NewWriter(cw)
	for index := 0; index < len(m); index++ {
		switch m[index] {
		case '0':
			bw.TryWriteBool(false)
		case '1':
			bw.TryWriteBool(true)
		default:
			return cw.n, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, m[index], index)
		}
	}
	if bw.TryError != nil {
		return cw.n, bw.TryError
	}
	err := bw.Close()
	return cw.n, err
}

// Encode replaces each symbol of message with its codeword from ct.  It fails
// with an *UnknownSymbolError on the first symbol that ct does not cover.
func Encode(message []Symbol, ct CodeTable) (EncodedMessage, error) {
	var sb strings.Builder
	for _, symbol := range message {
		cw, found := ct[symbol]
		if !found {
			return "", &UnknownSymbolError{Symbol: symbol}
		}
		sb.WriteString(string(cw))
	}
	return EncodedMessage(sb.String()), nil
}

// Encoder bundles a Huffman tree with the CodeTable derived from it.
type Encoder struct {
	tree  *Tree
	table CodeTable
}

// Init initializes this Encoder from a table of symbol frequencies.
func (e *Encoder) Init(ft FrequencyTable) {
	tree := NewTree(ft)
	*e = Encoder{
		tree:  tree,
		table: NewCodeTable(tree),
	}
}

// Encode returns the codeword for one Symbol.  The second return value is
// false if the Symbol is not part of this code.
func (e Encoder) Encode(symbol Symbol) (Codeword, bool) {
	cw, found := e.table[symbol]
	return cw, found
}

// EncodeMessage encodes a whole message.
func (e Encoder) EncodeMessage(message []Symbol) (EncodedMessage, error) {
	return Encode(message, e.table)
}

// Tree returns the Huffman tree.
func (e Encoder) Tree() *Tree {
	return e.tree
}

// Table returns the CodeTable.
func (e Encoder) Table() CodeTable {
	return e.table
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	for _, symbol := range e.table.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%q) = %q\n", rune(symbol), string(e.table[symbol]))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
