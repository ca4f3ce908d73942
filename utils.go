package tombolos

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidPath validates that a request path is safe to hand to the asset
// store. It rejects:
//   - empty paths, ".", and "/"
//   - absolute paths and paths ending in "/"
//   - ".." anywhere (path traversal) and "//" (empty segments)
//   - "." segments
//   - the characters \ ? # ~, whitespace, control characters, and DEL
//   - invalid UTF-8
//
// The os.Root sandbox in the filesystem package is the second line of
// defense; this check exists so traversal attempts fail before any
// filesystem access.
func IsValidPath(p string) bool {
	if p == "" || p == "/" || p == "." {
		return false
	}

	if p[0] == '/' || strings.HasSuffix(p, "/") {
		return false
	}

	if strings.Contains(p, "..") || strings.Contains(p, "//") {
		return false
	}

	if strings.HasPrefix(p, "./") || strings.Contains(p, "/./") || strings.HasSuffix(p, "/.") {
		return false
	}

	if strings.ContainsAny(p, `\?#~`) {
		return false
	}

	if !utf8.ValidString(p) {
		return false
	}

	for _, r := range p {
		if r < 0x20 || r == 0x7f || unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
