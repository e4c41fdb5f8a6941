package report

import (
	"fmt"
	"io"

	"github.com/sstent/ftracker-go/internal/training"
)

// Reporter prints finished training summaries, one line per training.
type Reporter struct {
	w io.Writer
}

func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report writes the formatted summary for one training followed by a
// newline. Summary failures are returned unchanged.
func (r *Reporter) Report(t training.Training) error {
	info, err := training.Summary(t)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, info.Message())
	return err
}
