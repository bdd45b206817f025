package simulator

import (
	"fmt"
	"math"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/config"
	"github.com/emrzvv/bulksim/internal/errs"
	"github.com/emrzvv/bulksim/internal/model"
	"github.com/emrzvv/bulksim/internal/stats"
)

// Observer is called with every finalized cycle, in order. It must not
// modify the cycle.
type Observer func(i int, c *model.Cycle) error

type Result struct {
	Cycles     []model.Cycle
	Statistics *stats.Statistics
	Summary    *stats.Summary
}

// Arrivals is the inter-arrival distribution of clients: exponential with
// rate rho*Ec/Etau, i.e. rho clients per unit of mean batch capacity per
// mean server cycle.
func Arrivals(p *config.Params) (model.Distribution, error) {
	return model.NewExponential(p.Rho * p.Ec / p.Etau)
}

// Services is the distribution of gaps between service completions.
func Services(p *config.Params) (model.Distribution, error) {
	return model.NewExponential(p.Mu)
}

// Run simulates p.Niter cycles. Cycle 0 starts with an empty system and no
// server; each transition i -> i+1 draws the next server's period, service
// and capacity, counts arrivals and completions, and folds cycle i into the
// running statistics. Any error aborts the run.
func Run(p *config.Params, rng *common.RNG, maxCycles int, observe Observer) (*Result, error) {
	if err := p.ValidateRun(); err != nil {
		return nil, err
	}
	if maxCycles > 0 && p.Niter > maxCycles {
		return nil, fmt.Errorf("%d cycles requested, limit is %d: %w", p.Niter, maxCycles, errs.ErrAllocation)
	}

	arrivals, err := Arrivals(p)
	if err != nil {
		return nil, fmt.Errorf("arrival distribution: %w", err)
	}
	services, err := Services(p)
	if err != nil {
		return nil, fmt.Errorf("service distribution: %w", err)
	}

	cycles := make([]model.Cycle, p.Niter)
	st := stats.NewStatistics()

	for i := 0; i < p.Niter-1; i++ {
		cur, next := &cycles[i], &cycles[i+1]
		if err := step(p, cur, next, arrivals, services, rng); err != nil {
			return nil, fmt.Errorf("cycle %d: %w", i, err)
		}
		st.Fold(cur, next)
		if observe != nil {
			if err := observe(i, cur); err != nil {
				return nil, err
			}
		}
	}

	last := cycles[len(cycles)-1]
	return &Result{
		Cycles:     cycles,
		Statistics: st,
		Summary:    st.Summarize(p.Niter, last.T+last.Service, p.Ex),
	}, nil
}

// step finalizes cur and fills the drawn and carried-over fields of next.
func step(p *config.Params, cur, next *model.Cycle, arrivals, services model.Distribution, rng *common.RNG) error {
	tau, err := draw(p.DistTau, "tau", rng)
	if err != nil {
		return err
	}
	// the next server cannot arrive before the current one is done
	cur.Tau = math.Max(cur.Service, tau)

	if next.Service, err = draw(p.DistX, "x", rng); err != nil {
		return err
	}
	c, err := draw(p.DistC, "c", rng)
	if err != nil {
		return err
	}
	next.Capacity = math.Max(0, math.Min(math.Round(c), p.C))

	a1, wq, err := Generate(cur.Tau-cur.Service, arrivals, rng)
	if err != nil {
		return fmt.Errorf("arrivals while idle: %w", err)
	}
	a2, d, err := Generate(next.Service, arrivals, rng)
	if err != nil {
		return fmt.Errorf("arrivals during service: %w", err)
	}
	cur.A = math.Min(float64(a1+a2), p.Amax)
	cur.Wq = wq
	cur.D = d
	cur.W = wq + cur.X*cur.Tau + float64(a1)*next.Service + d
	cur.Wp = wq + cur.X*cur.Tau + d

	s, _, err := Generate(next.Service, services, rng)
	if err != nil {
		return fmt.Errorf("service completions: %w", err)
	}
	next.S = float64(s)

	// carry-over ignores demand in the min, z does not
	next.X = math.Max(cur.X+cur.A-math.Min(next.S, next.Capacity), 0)
	next.Z = math.Min(cur.X+cur.A, math.Min(next.Capacity, next.S))

	next.T = cur.T + cur.Tau
	cur.Y = cur.X + float64(a1)
	return nil
}

// draw samples d and rejects values that would stall the renewal counters.
func draw(d model.Distribution, field string, rng *common.RNG) (float64, error) {
	v, err := d.Sample(rng)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %s drew %v: %w", field, d, v, errs.ErrInvalidArgument)
	}
	return v, nil
}
