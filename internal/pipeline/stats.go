package pipeline

import "github.com/backmassage/sheetcrop/internal/extract"

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Sheets       int // Discovered.
	SheetsFailed int // Probe or decode failures.
	Tasks        int

	Written       int
	SkippedBlack  int
	SkippedExists int
	SkippedBounds int
	Failed        int

	BytesWritten int64
}

// Skipped returns the number of tasks that resolved without output and
// without a write failure.
func (s *RunStats) Skipped() int {
	return s.SkippedBlack + s.SkippedExists + s.SkippedBounds
}

// HasFailures reports whether any sheet or task failed or was rejected.
// Black and existing frames are not failures.
func (s *RunStats) HasFailures() bool {
	return s.SheetsFailed > 0 || s.Failed > 0 || s.SkippedBounds > 0
}

func (s *RunStats) add(o extract.Outcome, bytes int64) {
	s.Tasks++
	switch o {
	case extract.Written:
		s.Written++
		s.BytesWritten += bytes
	case extract.SkippedBlack:
		s.SkippedBlack++
	case extract.SkippedExists:
		s.SkippedExists++
	case extract.SkippedBounds:
		s.SkippedBounds++
	case extract.Failed:
		s.Failed++
	}
}

func (s *RunStats) merge(o RunStats) {
	s.SheetsFailed += o.SheetsFailed
	s.Tasks += o.Tasks
	s.Written += o.Written
	s.SkippedBlack += o.SkippedBlack
	s.SkippedExists += o.SkippedExists
	s.SkippedBounds += o.SkippedBounds
	s.Failed += o.Failed
	s.BytesWritten += o.BytesWritten
}
