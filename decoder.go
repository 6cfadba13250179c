package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidBit is returned when an EncodedMessage holds a digit other
	// than '0' or '1'.
	ErrInvalidBit = errors.New("huffman: invalid bit")

	// ErrTruncated is returned when an EncodedMessage ends partway through
	// a codeword.
	ErrTruncated = errors.New("huffman: message ends in the middle of a codeword")
)

// Decoder recovers symbols from an EncodedMessage by walking a Huffman tree.
type Decoder struct {
	tree *Tree
}

// NewDecoder returns a Decoder for the given tree.
func NewDecoder(t *Tree) Decoder {
	return Decoder{tree: t}
}

// Decode walks the tree one bit at a time, going left on '0' and right on
// '1', and emits a symbol each time it reaches a leaf before returning to the
// root.  If the tree is a single leaf, every '0' stands for that symbol.
func (d Decoder) Decode(m EncodedMessage) ([]Symbol, error) {
	if len(m) == 0 {
		return nil, nil
	}
	if d.tree == nil || d.tree.IsEmpty() {
		return nil, ErrTruncated
	}

	out := make([]Symbol, 0, len(m))
	root := d.tree.Root()

	if n := d.tree.Node(root); n.IsLeaf() {
		for index := 0; index < len(m); index++ {
			if m[index] != '0' {
				return out, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, m[index], index)
			}
			out = append(out, n.Symbol)
		}
		return out, nil
	}

	id := root
	for index := 0; index < len(m); index++ {
		n := d.tree.Node(id)
		switch m[index] {
		case '0':
			id = n.Left
		case '1':
			id = n.Right
		default:
			return out, fmt.Errorf("%w: %q at offset %d", ErrInvalidBit, m[index], index)
		}
		if child := d.tree.Node(id); child.IsLeaf() {
			out = append(out, child.Symbol)
			id = root
		}
	}
	if id != root {
		return out, ErrTruncated
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	if d.tree != nil {
		fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", d.tree.NumLeaves())
		ct := NewCodeTable(d.tree)
		for _, symbol := range ct.Symbols() {
			fmt.Fprintf(&buf, "\tDecode(%q) = %q\n", string(ct[symbol]), rune(symbol))
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
