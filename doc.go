// Package huffman implements a classic Huffman coder for 7-bit text.
//
// A Codec counts symbol frequencies, builds a Huffman tree with a min-heap
// merge, derives a prefix-free CodeTable from it, and packs the concatenated
// codes into bytes.  The last byte always carries a padding marker: one '1'
// bit followed by '0' bits up to the byte boundary, so the payload needs no
// length header.  The CodeTable is persisted separately as text of the form
//
//     97:0-98:10-99:11-
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
