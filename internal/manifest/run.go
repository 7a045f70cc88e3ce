package manifest

import (
	"time"

	"github.com/google/uuid"
)

// FileRecord is the outcome of one generation step
type FileRecord struct {
	Generator string `json:"generator"`
	Path      string `json:"path"`
	Requested int    `json:"requested"`
	Lines     int    `json:"lines"`
	Bytes     int64  `json:"bytes"`
	Error     string `json:"error,omitempty"`
}

// Run is one invocation of the generator
type Run struct {
	ID         string       `json:"id"`
	Seed       uint64       `json:"seed"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Files      []FileRecord `json:"files"`
}

// NewRun starts a run with a fresh ID
func NewRun(seed uint64) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Seed:      seed,
		StartedAt: time.Now(),
	}
}

// Record appends the outcome of a step; err may be nil
func (r *Run) Record(generator, path string, requested, lines int, bytes int64, err error) {
	rec := FileRecord{
		Generator: generator,
		Path:      path,
		Requested: requested,
		Lines:     lines,
		Bytes:     bytes,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	r.Files = append(r.Files, rec)
}

func (r *Run) Finish() {
	r.FinishedAt = time.Now()
}

// Failed reports whether any step of the run failed
func (r *Run) Failed() bool {
	for _, f := range r.Files {
		if f.Error != "" {
			return true
		}
	}
	return false
}

// TotalBytes sums the bytes written across all files of the run
func (r *Run) TotalBytes() int64 {
	var n int64
	for _, f := range r.Files {
		n += f.Bytes
	}
	return n
}
