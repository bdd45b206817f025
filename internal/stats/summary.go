package stats

import (
	"fmt"
	"io"
	"math"
)

// Summary holds the derived quantities of a finished run. Nothing here feeds
// back into the simulation.
type Summary struct {
	Cycles  int
	Horizon float64 // T + x of the last cycle

	MeanTau, SdTau           float64
	MeanService, SdService   float64
	MeanCapacity, SdCapacity float64
	MeanS, SdS               float64
	MeanZ, SdZ               float64
	MeanX, SdX, MaxX, MinX   float64
	MeanY, SdY, MaxY, MinY   float64

	TotalA, TotalW, TotalWp  float64
	TotalZ, TotalS, TotalTau float64
	TotalService, TotalX     float64
	TotalY, TotalCapacity    float64
	TotalGamma               float64

	Utilization float64 // A / min(sum c, sum S)
	L, Lp       float64 // time-average queue length, W and Wp based
	Lambda      float64 // observed arrival rate
	Wait, WaitP float64 // Little's law waiting times
	W0          float64 // reference waiting time
	WRatio      float64 // Wait / W0
	WpRatio     float64 // WaitP / W0
}

// Summarize finalizes the accumulators. horizon is T+x of the last cycle and
// ex the declared mean service duration.
//
// The reference waiting time is the mean residual life of the server
// arrival process, (var(tau) + E[tau]^2) / (2 E[tau]), plus ex.
func (st *Statistics) Summarize(cycles int, horizon, ex float64) *Summary {
	s := &Summary{
		Cycles:  cycles,
		Horizon: horizon,

		MeanTau: st.Tau.Mean(), SdTau: st.Tau.StdDev(),
		MeanService: st.Service.Mean(), SdService: st.Service.StdDev(),
		MeanCapacity: st.Capacity.Mean(), SdCapacity: st.Capacity.StdDev(),
		MeanS: st.S.Mean(), SdS: st.S.StdDev(),
		MeanZ: st.Z.Mean(), SdZ: st.Z.StdDev(),
		MeanX: st.X.Mean(), SdX: st.X.StdDev(), MaxX: extremum(st.X, st.X.Max), MinX: extremum(st.X, st.X.Min),
		MeanY: st.Y.Mean(), SdY: st.Y.StdDev(), MaxY: extremum(st.Y, st.Y.Max), MinY: extremum(st.Y, st.Y.Min),

		TotalA:        st.TotalA,
		TotalW:        st.TotalW,
		TotalWp:       st.TotalWp,
		TotalZ:        st.Z.Sum,
		TotalS:        st.S.Sum,
		TotalTau:      st.Tau.Sum,
		TotalService:  st.Service.Sum,
		TotalX:        st.X.Sum,
		TotalY:        st.Y.Sum,
		TotalCapacity: st.Capacity.Sum,
		TotalGamma:    st.TotalGamma,
	}

	s.Utilization = safeDiv(st.TotalA, math.Min(st.Capacity.Sum, st.S.Sum))
	s.L = safeDiv(st.TotalW, horizon)
	s.Lp = safeDiv(st.TotalWp, horizon)
	s.Lambda = safeDiv(st.TotalA, horizon)
	s.Wait = safeDiv(s.L, s.Lambda)
	s.WaitP = safeDiv(s.Lp, s.Lambda)
	s.W0 = safeDiv(s.SdTau*s.SdTau+s.MeanTau*s.MeanTau, 2*s.MeanTau) + ex
	s.WRatio = safeDiv(s.Wait, s.W0)
	s.WpRatio = safeDiv(s.WaitP, s.W0)
	return s
}

func extremum(r Running, v float64) float64 {
	if r.N == 0 {
		return 0
	}
	return v
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Report writes the summary as `label: value` lines in a fixed order.
func (s *Summary) Report(w io.Writer) error {
	lines := []struct {
		label string
		value float64
	}{
		{"time", s.Horizon},
		{"tau mean", s.MeanTau},
		{"tau dev", s.SdTau},
		{"x mean", s.MeanService},
		{"x dev", s.SdService},
		{"c mean", s.MeanCapacity},
		{"c dev", s.SdCapacity},
		{"S mean", s.MeanS},
		{"S dev", s.SdS},
		{"z mean", s.MeanZ},
		{"z dev", s.SdZ},
		{"X mean", s.MeanX},
		{"X dev", s.SdX},
		{"X max", s.MaxX},
		{"X min", s.MinX},
		{"Y mean", s.MeanY},
		{"Y dev", s.SdY},
		{"Y max", s.MaxY},
		{"Y min", s.MinY},
		{"tau total", s.TotalTau},
		{"x total", s.TotalService},
		{"X total", s.TotalX},
		{"Y total", s.TotalY},
		{"A total", s.TotalA},
		{"W total", s.TotalW},
		{"Wp total", s.TotalWp},
		{"z total", s.TotalZ},
		{"S total", s.TotalS},
		{"c total", s.TotalCapacity},
		{"gamma total", s.TotalGamma},
		{"rho", s.Utilization},
		{"lambda", s.Lambda},
		{"L", s.L},
		{"L'", s.Lp},
		{"W", s.Wait},
		{"W'", s.WaitP},
		{"W0", s.W0},
		{"W/W0", s.WRatio},
		{"W'/W0", s.WpRatio},
	}
	if _, err := fmt.Fprintf(w, "cycles: %d\n", s.Cycles); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s: %f\n", l.label, l.value); err != nil {
			return err
		}
	}
	return nil
}
