package huffman

import (
	"path/filepath"
	"strings"
)

// Extension is appended to the name of a compressed file.
const Extension = ".huf"

// CompressedName returns the name of the artifact produced by compressing
// path: "example.txt" becomes "example.txt.huf".
func CompressedName(path string) string {
	return path + Extension
}

// DecompressedName returns the name of the file produced by decompressing
// path: "example.txt.huf" becomes "example_unc.txt".  A trailing ".huf" is
// removed, then "_unc" is inserted before the first dot of the base name,
// or appended if there is none.
func DecompressedName(path string) string {
	dir, base := filepath.Split(strings.TrimSuffix(path, Extension))
	name, ext := base, ""
	if i := strings.IndexByte(base, '.'); i >= 0 {
		name, ext = base[:i], base[i:]
	}
	return dir + name + "_unc" + ext
}
