package probe

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF sheets
	_ "image/jpeg" // register JPEG sheets
	_ "image/png"  // register PNG sheets
	"os"

	_ "golang.org/x/image/bmp"  // register BMP sheets
	_ "golang.org/x/image/tiff" // register TIFF sheets
	_ "golang.org/x/image/webp" // register WebP sheets

	"github.com/backmassage/sheetcrop/internal/extract"
)

// Formats lists the sheet formats a run can decode.
var Formats = []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"}

// SheetInfo is the header-level description of one sheet.
type SheetInfo struct {
	Path   string
	Format string // Decoder name, e.g. "png".
	Width  int
	Height int
	Size   int64 // File size in bytes.
}

// Probe opens path and decodes only the image header. Every error wraps
// extract.ErrDecode.
func Probe(path string) (*SheetInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", extract.ErrDecode, path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %q: %w", extract.ErrDecode, path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %q is a directory", extract.ErrDecode, path)
	}

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: read header %q: %w", extract.ErrDecode, path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %q: empty image (%dx%d)", extract.ErrDecode, path, cfg.Width, cfg.Height)
	}

	return &SheetInfo{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   fi.Size(),
	}, nil
}
