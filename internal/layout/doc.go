// Package layout holds the pure sequence operations behind table rendering.
//
// A cell value is chopped into fixed-width fragments, the fragment lists of
// one logical row are padded to a common height, and the resulting
// column-major matrix is transposed into the physical lines that get printed:
//
//	cols := [][]Fragment{{Present("1")}, {Present("LongTi"), Present("tle")}}
//	_ = Normalize(cols)          // [[1, <absent>], [LongTi, tle]]
//	lines, _ := Interleave(cols) // [[1, LongTi], [<absent>, tle]]
//
// Everything here counts raw bytes; there is no display-width handling.
package layout
