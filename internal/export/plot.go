package export

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/emrzvv/bulksim/internal/errs"
	"github.com/emrzvv/bulksim/internal/model"
)

// queuePoints lays the finalized cycles out as the same (time, queue)
// sequence the trace csv holds.
func queuePoints(cycles []model.Cycle) plotter.XYs {
	pts := make(plotter.XYs, 0, 2*len(cycles))
	for _, c := range cycles {
		pts = append(pts,
			plotter.XY{X: c.T, Y: c.X},
			plotter.XY{X: c.T + c.Tau, Y: c.Y})
	}
	return pts
}

// CheckPlotPath fails early when file cannot be created, so an unwritable
// destination is reported before the simulation runs.
func CheckPlotPath(file string) error {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("unable to open %s for writing: %v: %w", file, err, errs.ErrInvalidArgument)
	}
	return f.Close()
}

// PlotQueue saves the queue length trace of the finalized cycles as an image;
// the format follows the file extension.
func PlotQueue(cycles []model.Cycle, file string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Queue length over %d cycles", len(cycles))
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Clients waiting"

	line, err := plotter.NewLine(queuePoints(cycles))
	if err != nil {
		return err
	}
	p.Add(line)
	if err := p.Save(20*vg.Centimeter, 10*vg.Centimeter, file); err != nil {
		return fmt.Errorf("unable to save plot %s: %v: %w", file, err, errs.ErrInvalidArgument)
	}
	return nil
}
