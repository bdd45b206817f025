package simulator

import (
	"fmt"
	"math"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/errs"
	"github.com/emrzvv/bulksim/internal/model"
)

// Generate runs a renewal process with inter-event gaps drawn from dist over
// [0, t). It returns the number of events strictly before t and the integral
// over [0, t) of the event count, where the count is credited for each swept
// interval before it is incremented and the last interval is clipped to t.
// A non-positive t draws nothing. An infinite t, a gap distribution with a
// non-positive mean, or a non-finite gap draw is rejected.
func Generate(t float64, dist model.Distribution, rng *common.RNG) (int, float64, error) {
	if math.IsInf(t, 1) || math.IsNaN(t) {
		return 0, 0, fmt.Errorf("renewal horizon %v is not finite: %w", t, errs.ErrInvalidArgument)
	}
	if t <= 0 {
		return 0, 0, nil
	}
	if !(dist.Mean() > 0) {
		return 0, 0, fmt.Errorf("renewal gap %s never advances time: %w", dist, errs.ErrInvalidArgument)
	}
	n := 0
	w := 0.0
	theta := 0.0
	for theta < t {
		dtheta, err := dist.Sample(rng)
		if err != nil {
			return 0, 0, err
		}
		if math.IsNaN(dtheta) || math.IsInf(dtheta, 0) {
			return 0, 0, fmt.Errorf("renewal gap %s drew %v: %w", dist, dtheta, errs.ErrInvalidArgument)
		}
		w += float64(n) * (math.Min(t, theta+dtheta) - theta)
		theta += dtheta
		if theta < t {
			n++
		}
	}
	return n, w, nil
}
