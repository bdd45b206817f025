package config

import (
	"fmt"
	"io"
	"os"

	"github.com/emrzvv/bulksim/internal/errs"
	"github.com/emrzvv/bulksim/internal/model"
)

// Params describes the queue being simulated. It is parsed once and never
// modified afterwards.
type Params struct {
	Etau    float64            // analytic mean of the server inter-arrival period
	DistTau model.Distribution // server inter-arrival period
	Ex      float64            // analytic mean of the service duration
	DistX   model.Distribution // service duration
	Ec      float64            // analytic mean of the batch capacity
	DistC   model.Distribution // batch capacity
	C       float64            // capacity ceiling
	Mu      float64            // per-client service rate
	Amax    float64            // arrivals admitted per cycle

	Rho   float64 // load factor
	Niter int     // number of cycles
	Seed  int64
}

// ParseParams reads `<Etau> <dist_tau> <Ex> <dist_x> <Ec> <dist_c> <C> <mu> <Amax>`.
// Run fields (Rho, Niter, Seed) are left zero.
func ParseParams(r io.Reader) (*Params, error) {
	s := model.NewScanner(r)
	p := &Params{}
	var err error

	if p.Etau, err = s.Float("Etau"); err != nil {
		return nil, err
	}
	if p.DistTau, err = model.Parse(s); err != nil {
		return nil, fmt.Errorf("dist_tau: %w", err)
	}
	if p.Ex, err = s.Float("Ex"); err != nil {
		return nil, err
	}
	if p.DistX, err = model.Parse(s); err != nil {
		return nil, fmt.Errorf("dist_x: %w", err)
	}
	if p.Ec, err = s.Float("Ec"); err != nil {
		return nil, err
	}
	if p.DistC, err = model.Parse(s); err != nil {
		return nil, fmt.Errorf("dist_c: %w", err)
	}
	if p.C, err = s.Float("C"); err != nil {
		return nil, err
	}
	if p.Mu, err = s.Float("mu"); err != nil {
		return nil, err
	}
	if p.Amax, err = s.Float("Amax"); err != nil {
		return nil, err
	}
	return p, nil
}

func LoadParams(path string) (*Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s for reading: %v: %w", path, err, errs.ErrInvalidArgument)
	}
	defer f.Close()

	p, err := ParseParams(f)
	if err != nil {
		return nil, fmt.Errorf("error when parsing %s: %w", path, err)
	}
	return p, nil
}

// WriteParams prints p in the layout ParseParams reads, one field per line.
func WriteParams(w io.Writer, p *Params) error {
	_, err := fmt.Fprintf(w, "%v\n%s\n%v\n%s\n%v\n%s\n%v\n%v\n%v\n",
		p.Etau, p.DistTau,
		p.Ex, p.DistX,
		p.Ec, p.DistC,
		p.C, p.Mu, p.Amax)
	return err
}

// ValidateRun checks the run fields.
func (p *Params) ValidateRun() error {
	if !(p.Rho > 0) {
		return fmt.Errorf("load factor must be > 0, got %v: %w", p.Rho, errs.ErrInvalidArgument)
	}
	if p.Niter <= 0 {
		return fmt.Errorf("invalid value for niter %d: %w", p.Niter, errs.ErrInvalidArgument)
	}
	if !(p.Mu > 0) {
		return fmt.Errorf("mu must be > 0, got %v: %w", p.Mu, errs.ErrInvalidArgument)
	}
	if !(p.Etau > 0) {
		return fmt.Errorf("Etau must be > 0, got %v: %w", p.Etau, errs.ErrInvalidArgument)
	}
	if !(p.Ec > 0) {
		return fmt.Errorf("Ec must be > 0, got %v: %w", p.Ec, errs.ErrInvalidArgument)
	}
	return nil
}
