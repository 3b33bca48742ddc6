package extract

import (
	"path"
	"path/filepath"
	"strings"

	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// decode converts raw file bytes to UTF-8 source text. A leading BOM is
// stripped and malformed byte sequences are dropped, so a stray Latin-1 byte
// inside an identifier shortens the name instead of breaking the parse.
// Literal U+FFFD characters are dropped as well.
func decode(raw []byte) ([]byte, error) {
	t := transform.Chain(
		unicode.UTF8BOM.NewDecoder(),
		runes.Remove(runes.Predicate(func(r rune) bool { return r == utf8.RuneError })),
	)
	out, _, err := transform.Bytes(t, raw)
	return out, err
}

// ModulePath computes the dotted module key of file relative to root and the
// slash-separated relative path it was derived from.
//
//	ModulePath("pkg", "pkg/core/shapes.py") // "core.shapes", "core/shapes.py"
func ModulePath(root, file string) (module, rel string, err error) {
	r, err := filepath.Rel(root, file)
	if err != nil {
		return "", "", err
	}
	rel = filepath.ToSlash(r)

	dir, base := path.Split(rel)
	if ext := path.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}

	segments := strings.Split(strings.Trim(dir, "/"), "/")
	if segments[0] == "" {
		segments = segments[:0]
	}
	if base != "" {
		segments = append(segments, base)
	}
	return strings.Join(segments, "."), rel, nil
}
