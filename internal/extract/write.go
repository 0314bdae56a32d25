package extract

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// WritePNG encodes img as PNG and creates dst with it, creating parent
// directories as needed. dst is opened with O_EXCL: when it already exists
// the returned error matches fs.ErrExist and nothing is written. The image
// is encoded before the file is created, and a failed write removes the
// partial file.
func WritePNG(dst string, img image.Image) (int64, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return 0, fmt.Errorf("%w: encode %s: %w", ErrWrite, dst, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("%w: create directory for %s: %w", ErrWrite, dst, err)
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	n, werr := buf.WriteTo(f)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: %s: %w", ErrWrite, dst, werr)
	}
	return n, nil
}
