// Package huffman builds optimal variable-length prefix codes (Huffman codes)
// for a stream of symbols and encodes messages against them.
//
// The pipeline runs strictly forward:
//
//     FrequencyTable -> OrderedQueue -> Tree -> CodeTable -> EncodedMessage
//
// Frequently occurring symbols receive shorter codewords, and no codeword is a
// prefix of another.  Codewords are strings of '0' and '1' digits, where '0'
// means "take the left branch" and '1' means "take the right branch".
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
