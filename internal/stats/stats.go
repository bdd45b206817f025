package stats

import (
	"math"

	"github.com/emrzvv/bulksim/internal/model"
)

// Running accumulates one quantity over the cycle sequence.
type Running struct {
	N     int
	Sum   float64
	SumSq float64
	Max   float64
	Min   float64
}

func NewRunning() Running {
	return Running{Max: math.Inf(-1), Min: math.Inf(1)}
}

func (r *Running) Add(v float64) {
	r.N++
	r.Sum += v
	r.SumSq += v * v
	r.Max = math.Max(r.Max, v)
	r.Min = math.Min(r.Min, v)
}

func (r *Running) Mean() float64 {
	if r.N == 0 {
		return 0
	}
	return r.Sum / float64(r.N)
}

// StdDev is the sample standard deviation
// sqrt(n/(n-1) * (sum(x^2)/n - (sum(x)/n)^2)).
func (r *Running) StdDev() float64 {
	if r.N < 2 {
		return 0
	}
	n := float64(r.N)
	mean := r.Sum / n
	v := n / (n - 1) * (r.SumSq/n - mean*mean)
	if v < 0 {
		// round-off on near-constant sequences
		return 0
	}
	return math.Sqrt(v)
}

// Statistics are the running accumulators of a run. Fold is called once per
// cycle transition; Summarize only after the last one.
type Statistics struct {
	Tau      Running
	Service  Running
	Capacity Running
	S        Running
	Z        Running
	X        Running
	Y        Running

	TotalA     float64
	TotalW     float64
	TotalWp    float64
	TotalGamma float64 // sum of min(c, S): capacity actually backed by service
}

func NewStatistics() *Statistics {
	return &Statistics{
		Tau:      NewRunning(),
		Service:  NewRunning(),
		Capacity: NewRunning(),
		S:        NewRunning(),
		Z:        NewRunning(),
		X:        NewRunning(),
		Y:        NewRunning(),
	}
}

// Fold adds the finalized cycle cur and the draws of its successor next.
func (st *Statistics) Fold(cur, next *model.Cycle) {
	st.Tau.Add(cur.Tau)
	st.X.Add(cur.X)
	st.Y.Add(cur.Y)
	st.TotalA += cur.A
	st.TotalW += cur.W
	st.TotalWp += cur.Wp

	st.Service.Add(next.Service)
	st.Capacity.Add(next.Capacity)
	st.S.Add(next.S)
	st.Z.Add(next.Z)
	st.TotalGamma += math.Min(next.Capacity, next.S)
}
