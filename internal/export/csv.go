package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/emrzvv/bulksim/internal/errs"
	"github.com/emrzvv/bulksim/internal/model"
)

// TraceWriter streams the queue length trace as `time,value` rows. Each
// finalized cycle i contributes two rows: (T_i, X_i), the queue the server
// finds on arrival, and (T_i+tau_i, Y_i), the queue just before the next
// server arrives.
type TraceWriter struct {
	f io.Closer
	w *csv.Writer
}

func NewTraceWriter(path string) (*TraceWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s for writing: %v: %w", path, err, errs.ErrInvalidArgument)
	}
	tw, err := newTraceWriter(f, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return tw, nil
}

func newTraceWriter(w io.Writer, c io.Closer) (*TraceWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "value"}); err != nil {
		return nil, err
	}
	return &TraceWriter{f: c, w: cw}, nil
}

// Observe matches simulator.Observer.
func (tw *TraceWriter) Observe(_ int, c *model.Cycle) error {
	if err := tw.w.Write([]string{
		fmt.Sprintf("%.5f", c.T),
		fmt.Sprintf("%.0f", c.X),
	}); err != nil {
		return err
	}
	return tw.w.Write([]string{
		fmt.Sprintf("%.5f", c.T+c.Tau),
		fmt.Sprintf("%.0f", c.Y),
	})
}

func (tw *TraceWriter) Close() error {
	tw.w.Flush()
	err := tw.w.Error()
	if tw.f != nil {
		if cerr := tw.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
