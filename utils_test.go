package tombolos_test

import (
	"testing"

	tombolos "github.com/AlexandrosLiaskos/Tombolos"
)

func TestIsValidPath(t *testing.T) {
	// Path with invalid UTF-8 (without embedding raw invalid bytes in source)
	invalidUTF8 := string([]byte{'a', 0xff, 'b'})

	tt := []struct {
		Name string
		Path string
		Want bool
	}{
		// Basics
		{Name: "root path", Path: "/", Want: false},
		{Name: "empty path", Path: "", Want: false},
		{Name: "leading slash", Path: "/some/path", Want: false},
		{Name: "ends with slash", Path: "some/path/", Want: false},

		// Double dots anywhere are invalid
		{Name: "double dots segment", Path: "../", Want: false},
		{Name: "double dots traversal", Path: "../../etc/passwd", Want: false},
		{Name: "double dots in middle segment", Path: "a/../b", Want: false},
		{Name: "double dots in filename", Path: "a/b..c", Want: false},

		// Single dot segments are invalid
		{Name: "single dot segment", Path: "a/./b", Want: false},
		{Name: "single dot prefix", Path: "./a", Want: false},
		{Name: "single dot only", Path: ".", Want: false},

		// Double slashes invalid
		{Name: "double slash", Path: "a//b", Want: false},
		{Name: "leading double slash", Path: "//a", Want: false},

		// Forbidden characters
		{Name: "contains space", Path: "some path/file.ext", Want: false},
		{Name: "contains tab", Path: "some\tpath/file.ext", Want: false},
		{Name: "contains newline", Path: "some\npath/file.ext", Want: false},
		{Name: "contains backslash", Path: `some\path/file.ext`, Want: false},
		{Name: "contains hash", Path: "some/path#frag", Want: false},
		{Name: "contains question mark", Path: "some/path?x=1", Want: false},
		{Name: "contains tilde", Path: "some/~path/file.ext", Want: false},

		// Control chars / NUL
		{Name: "contains NUL", Path: "some\x00path/file.ext", Want: false},
		{Name: "contains DEL", Path: "some\x7fpath/file.ext", Want: false},
		{Name: "contains control char", Path: "some\x1fpath/file.ext", Want: false},

		// UTF-8 validity
		{Name: "invalid utf8", Path: invalidUTF8, Want: false},

		// Valid examples
		{Name: "top-level file", Path: "favicon.svg", Want: true},
		{Name: "nested file", Path: "data/tombolos.geojson", Want: true},
		{Name: "deep nesting", Path: "icons/markers/islet.svg", Want: true},
		{Name: "hidden file valid", Path: ".hidden/file", Want: true},
		{Name: "unicode valid", Path: "χάρτης/νησί.svg", Want: true},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			got := tombolos.IsValidPath(tc.Path)
			if got != tc.Want {
				t.Errorf("IsValidPath(%q) = %v, want %v", tc.Path, got, tc.Want)
			}
		})
	}
}
