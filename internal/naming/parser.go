package naming

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Sheet is a discovered sprite-sheet path split into the parts used for naming.
type Sheet struct {
	Path   string // As discovered.
	Dir    string // Parent directory.
	ItemID string // Digits of the file stem; may be empty.
}

// ParseSheet splits path into its naming components.
func ParseSheet(path string) Sheet {
	return Sheet{
		Path:   path,
		Dir:    filepath.Dir(path),
		ItemID: digits(stem(filepath.Base(path))),
	}
}

// ItemIdentifier returns every decimal digit of the filename stem, in
// order, with all other characters dropped. "sword_007.png" → "007".
// A stem without digits yields "".
func ItemIdentifier(name string) string {
	return digits(stem(name))
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
