package pipeline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is created inside the results directory while a run holds it.
const LockFileName = ".sheetcrop.lock"

// ErrLocked is returned when another run already holds the results tree.
var ErrLocked = errors.New("results directory is locked by another run")

// AcquireLock takes a non-blocking exclusive lock on resultsDir so two runs
// never write into the same tree. The caller must Unlock the returned lock.
func AcquireLock(resultsDir string) (*flock.Flock, error) {
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create results directory: %w", err)
	}
	fl := flock.New(filepath.Join(resultsDir, LockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, fl.Path())
	}
	return fl, nil
}

// LockHeld reports whether another process currently holds the lock on
// resultsDir. It never creates the directory or the lock file.
func LockHeld(resultsDir string) (bool, error) {
	p := filepath.Join(resultsDir, LockFileName)
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	fl := flock.New(p)
	ok, err := fl.TryLock()
	if err != nil {
		return false, fmt.Errorf("probe lock %s: %w", p, err)
	}
	if ok {
		_ = fl.Unlock()
		return false, nil
	}
	return true, nil
}
