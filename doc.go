// Package huffman implements classic (tree-based) Huffman compression of
// byte streams.  Compression counts byte frequencies, builds an optimal
// prefix tree with a min-heap, derives a code for every symbol from the tree,
// and packs the codes into a bit stream terminated by a synthetic
// end-of-stream symbol.  The frequency table is stored as a header in front
// of the packed bits so that decompression can rebuild the identical tree.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://protobuf.dev/programming-guides/encoding/> (header wire format)
//
package huffman
