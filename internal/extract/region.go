package extract

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
)

// Outcome is the terminal state of one extraction task.
type Outcome int

const (
	Written Outcome = iota
	SkippedBlack
	SkippedExists
	SkippedBounds
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Written:
		return "written"
	case SkippedBlack:
		return "skipped-black"
	case SkippedExists:
		return "skipped-exists"
	case SkippedBounds:
		return "skipped-invalid-bounds"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options controls a single Region call.
type Options struct {
	// DryRun runs every check but creates no directory or file. A task
	// that would be written reports Written with zero Bytes.
	DryRun bool
}

// Result describes what Region did.
type Result struct {
	Outcome Outcome
	Bytes   int64 // Encoded size on disk; zero unless a file was written.
}

// Region crops rect (sheet-local, origin at the top-left pixel) out of img
// and writes it to dst. Skips are reported through Result with a nil error;
// a non-nil error always comes with Outcome SkippedBounds or Failed and
// wraps ErrInvalidRegion or ErrWrite.
func Region(img image.Image, rect image.Rectangle, dst string, opts Options) (Result, error) {
	b := img.Bounds()
	abs := rect.Add(b.Min)
	if rect.Empty() || rect.Min.X < 0 || rect.Min.Y < 0 || !abs.In(b) {
		return Result{Outcome: SkippedBounds}, fmt.Errorf("%w: %v outside %dx%d sheet",
			ErrInvalidRegion, rect, b.Dx(), b.Dy())
	}

	frame := imaging.Crop(img, abs)
	if frame.Bounds().Size() != rect.Size() {
		return Result{Outcome: SkippedBounds}, fmt.Errorf("%w: cropped %v, want %v",
			ErrInvalidRegion, frame.Bounds().Size(), rect.Size())
	}

	if IsBlack(frame) {
		return Result{Outcome: SkippedBlack}, nil
	}

	switch _, err := os.Stat(dst); {
	case err == nil:
		return Result{Outcome: SkippedExists}, nil
	case !errors.Is(err, fs.ErrNotExist):
		return Result{Outcome: Failed}, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if opts.DryRun {
		return Result{Outcome: Written}, nil
	}

	n, err := WritePNG(dst, frame)
	switch {
	case errors.Is(err, fs.ErrExist):
		return Result{Outcome: SkippedExists}, nil
	case err != nil:
		return Result{Outcome: Failed}, err
	}
	return Result{Outcome: Written, Bytes: n}, nil
}
