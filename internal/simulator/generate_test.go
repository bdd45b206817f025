package simulator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/errs"
	"github.com/emrzvv/bulksim/internal/model"
)

func TestGenerateNonPositiveHorizon(t *testing.T) {
	exp, err := model.NewExponential(2)
	require.NoError(t, err)

	for _, d := range []model.Distribution{
		model.NewConstant(1),
		exp,
		// no draw happens, so even an unsupported variant is fine
		model.NewHypoexponential(1, 2),
	} {
		for _, horizon := range []float64{0, -1, -1e9} {
			rng := common.NewRNG(3)
			n, w, err := Generate(horizon, d, rng)
			require.NoError(t, err)
			assert.Zero(t, n)
			assert.Zero(t, w)
			// the generator was not touched
			assert.Equal(t, common.NewRNG(3).Float64(), rng.Float64())
		}
	}
}

func TestGenerateConstant(t *testing.T) {
	tests := []struct {
		horizon, gap float64
		n            int
		w            float64
	}{
		// events at 2 and 4; W = 0*2 + 1*2 + 2*(5-4)
		{5, 2, 2, 4},
		// events at .3 .6 .9; W = 0*.3 + 1*.3 + 2*.3 + 3*.1
		{1, 0.3, 3, 1.2},
		// first event is already past the horizon
		{1, 2, 0, 0},
		{7.5, 1, 7, 21 + 7*0.5},
	}
	for _, tt := range tests {
		n, w, err := Generate(tt.horizon, model.NewConstant(tt.gap), common.NewRNG(1))
		require.NoError(t, err)
		assert.Equal(t, int(math.Floor(tt.horizon/tt.gap)), n, "horizon %v gap %v", tt.horizon, tt.gap)
		assert.Equal(t, tt.n, n)
		assert.InDelta(t, tt.w, w, 1e-9, "horizon %v gap %v", tt.horizon, tt.gap)
	}
}

func TestGenerateIntegralBounds(t *testing.T) {
	exp, err := model.NewExponential(3)
	require.NoError(t, err)
	rng := common.NewRNG(42)
	for i := 0; i < 1000; i++ {
		horizon := float64(i%10) + 0.5
		n, w, err := Generate(horizon, exp, rng)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 0)
		// the step function never exceeds n on [0, t)
		require.LessOrEqual(t, w, float64(n)*horizon+1e-9)
		require.GreaterOrEqual(t, w, 0.0)
	}
}

func TestGeneratePoissonMean(t *testing.T) {
	exp, err := model.NewExponential(4)
	require.NoError(t, err)
	rng := common.NewRNG(42)
	total := 0
	runs := 5000
	for i := 0; i < runs; i++ {
		n, _, err := Generate(2, exp, rng)
		require.NoError(t, err)
		total += n
	}
	assert.InDelta(t, 8.0, float64(total)/float64(runs), 0.2)
}

func TestGenerateErrors(t *testing.T) {
	_, _, err := Generate(1, model.NewHypoexponential(1, 2), common.NewRNG(1))
	assert.ErrorIs(t, err, errs.ErrUnsupportedDistribution)

	_, _, err = Generate(1, model.NewConstant(0), common.NewRNG(1))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestGenerateRejectsStalls(t *testing.T) {
	exp, err := model.NewExponential(1)
	require.NoError(t, err)
	norm, err := model.NewNormal(0, 0)
	require.NoError(t, err)

	tests := []struct {
		name    string
		horizon float64
		dist    model.Distribution
	}{
		{"infinite horizon", math.Inf(1), exp},
		{"nan horizon", math.NaN(), exp},
		{"zero width uniform", 1, model.NewUniform(0, 0)},
		{"zero normal", 1, norm},
		{"negative constant", 1, model.NewConstant(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Generate(tt.horizon, tt.dist, common.NewRNG(1))
			assert.ErrorIs(t, err, errs.ErrInvalidArgument)
		})
	}
}
