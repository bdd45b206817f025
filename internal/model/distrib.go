package model

import (
	"fmt"
	"math"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/errs"
)

type Kind int

const (
	Constant Kind = iota
	Uniform
	Erlang
	Normal
	Hypoexponential
	Exponential
)

// normLayers is the number of uniforms averaged per normal draw.
const normLayers = 256

var kindIDs = map[Kind]string{
	Constant:        "CONS",
	Uniform:         "UNIF",
	Erlang:          "ERLANG",
	Normal:          "NORM",
	Hypoexponential: "HYPO",
	Exponential:     "EXP",
}

func (k Kind) String() string {
	if id, ok := kindIDs[k]; ok {
		return id
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Distribution is an immutable random variable of one of the supported kinds.
// Field meaning depends on the kind:
//
//	CONS   a=value
//	UNIF   a, b
//	ERLANG shape, a=rate
//	NORM   a=mean, b=deviation
//	HYPO   a, b
//	EXP    a=rate
type Distribution struct {
	kind  Kind
	shape int
	a, b  float64
}

func NewConstant(value float64) Distribution {
	return Distribution{kind: Constant, a: value}
}

func NewUniform(a, b float64) Distribution {
	return Distribution{kind: Uniform, a: a, b: b}
}

func NewErlang(shape int, rate float64) (Distribution, error) {
	if shape < 1 {
		return Distribution{}, fmt.Errorf("ERLANG shape must be >= 1, got %d: %w", shape, errs.ErrInvalidArgument)
	}
	if !(rate > 0) || math.IsInf(rate, 1) {
		return Distribution{}, fmt.Errorf("ERLANG rate must be finite and > 0, got %v: %w", rate, errs.ErrInvalidArgument)
	}
	return Distribution{kind: Erlang, shape: shape, a: rate}, nil
}

func NewNormal(mean, dev float64) (Distribution, error) {
	if !(dev >= 0) {
		return Distribution{}, fmt.Errorf("NORM dev must be >= 0, got %v: %w", dev, errs.ErrInvalidArgument)
	}
	return Distribution{kind: Normal, a: mean, b: dev}, nil
}

func NewExponential(rate float64) (Distribution, error) {
	if !(rate > 0) || math.IsInf(rate, 1) {
		return Distribution{}, fmt.Errorf("EXP rate must be finite and > 0, got %v: %w", rate, errs.ErrInvalidArgument)
	}
	return Distribution{kind: Exponential, a: rate}, nil
}

// NewHypoexponential builds a distribution that can be parsed and printed
// but not sampled.
func NewHypoexponential(a, b float64) Distribution {
	return Distribution{kind: Hypoexponential, a: a, b: b}
}

func (d Distribution) Kind() Kind {
	return d.kind
}

// Params returns the numeric parameters in their textual order.
func (d Distribution) Params() []float64 {
	switch d.kind {
	case Constant, Exponential:
		return []float64{d.a}
	case Erlang:
		return []float64{float64(d.shape), d.a}
	default:
		return []float64{d.a, d.b}
	}
}

// Sample draws one value. Sampling a Hypoexponential always fails with
// errs.ErrUnsupportedDistribution.
func (d Distribution) Sample(rng *common.RNG) (float64, error) {
	switch d.kind {
	case Constant:
		return d.a, nil
	case Uniform:
		return rng.Uniform(d.a, d.b), nil
	case Normal:
		return d.a + d.b*irwinHall(rng), nil
	case Erlang:
		// log of a product of uniforms; underflows to -Inf for very large shapes
		r := 1.0
		for i := 0; i < d.shape; i++ {
			r *= rng.Float64()
		}
		return math.Log(r) / -d.a, nil
	case Exponential:
		return math.Log(1-rng.Float64()) / -d.a, nil
	case Hypoexponential:
		return 0, fmt.Errorf("sampling %s: %w", d, errs.ErrUnsupportedDistribution)
	default:
		return 0, fmt.Errorf("sampling %s: %w", d.kind, errs.ErrUnsupportedDistribution)
	}
}

// irwinHall approximates a standard normal by averaging normLayers uniforms.
// Each call consumes normLayers draws and the result is bounded by
// ±sqrt(3*normLayers).
func irwinHall(rng *common.RNG) float64 {
	sum := 0.0
	for i := 0; i < normLayers; i++ {
		sum += rng.Float64()
	}
	sum /= normLayers
	sum -= 0.5
	return sum * math.Sqrt(12*normLayers)
}

// Mean returns the analytic mean. For HYPO it is the sum of the two stage
// means a and b.
func (d Distribution) Mean() float64 {
	switch d.kind {
	case Constant:
		return d.a
	case Uniform:
		return (d.a + d.b) / 2
	case Erlang:
		return float64(d.shape) / d.a
	case Normal:
		return d.a
	case Exponential:
		return 1 / d.a
	case Hypoexponential:
		return d.a + d.b
	}
	return math.NaN()
}
