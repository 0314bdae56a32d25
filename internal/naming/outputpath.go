package naming

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OutputExt is the extension of every extracted frame strip.
const OutputExt = ".png"

// MirrorDir maps a directory under targets to the same place under results.
// When dir is not under targets, the first occurrence of targets in dir is
// replaced instead; when targets does not occur at all dir is returned
// unchanged.
func MirrorDir(dir, targets, results string) string {
	dir = filepath.Clean(dir)
	targets = filepath.Clean(targets)
	results = filepath.Clean(results)

	if rel, err := filepath.Rel(targets, dir); err == nil && rel != ".." &&
		!strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Join(results, rel)
	}
	return strings.Replace(dir, targets, results, 1)
}

// FileName returns "<lower(dirName)>_<lower(animation)>_<itemID>.png".
// A Caser is stateful, so each call builds its own.
func FileName(dirName, animation, itemID string) string {
	lower := cases.Lower(language.Und)
	return lower.String(dirName) + "_" + lower.String(animation) + "_" + itemID + OutputExt
}

// OutputPath builds the destination for one animation of one sheet:
//
//	<MirrorDir(sheet.Dir)>/<animation>/<FileName(base(sheet.Dir), animation, sheet.ItemID)>
func OutputPath(s Sheet, animation, targets, results string) string {
	dir := MirrorDir(s.Dir, targets, results)
	return filepath.Join(dir, animation, FileName(filepath.Base(s.Dir), animation, s.ItemID))
}
