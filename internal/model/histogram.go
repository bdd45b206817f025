package model

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/errs"
)

const (
	histRolls     = 10000
	histStars     = 100
	histIntervals = 10
)

// Bins draws histRolls samples and counts them in histIntervals equal-width
// bins over the observed [min, max]. The maximum lands in the last bin, and
// a degenerate range puts every sample there.
func (d Distribution) Bins(rng *common.RNG) ([]int, error) {
	r := make([]float64, histRolls)
	for i := range r {
		v, err := d.Sample(rng)
		if err != nil {
			return nil, err
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%s produced non-finite sample %v: %w", d, v, errs.ErrInvalidArgument)
		}
		r[i] = v
	}
	sort.Float64s(r)

	dividers := make([]float64, histIntervals+1)
	floats.Span(dividers, r[0], r[len(r)-1])
	// stat.Histogram bins are half-open, so nudge the top edge past the max
	dividers[histIntervals] = math.Nextafter(r[len(r)-1], math.Inf(1))

	counts := stat.Histogram(nil, dividers, r, nil)
	bins := make([]int, histIntervals)
	for i, c := range counts {
		bins[i] = int(c)
	}
	return bins, nil
}

// Histogram prints the distribution and an ASCII bar chart of its samples,
// one row per bin, histStars stars standing for the full sample.
func (d Distribution) Histogram(w io.Writer, rng *common.RNG) error {
	bins, err := d.Bins(rng)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, d.Format()); err != nil {
		return err
	}
	for i, n := range bins {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, strings.Repeat("*", n*histStars/histRolls)); err != nil {
			return err
		}
	}
	return nil
}
