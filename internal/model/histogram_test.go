package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/errs"
)

func sum(bins []int) int {
	total := 0
	for _, b := range bins {
		total += b
	}
	return total
}

func TestBinsCountEverySample(t *testing.T) {
	bins, err := mustErlang(t, 2, 1).Bins(common.NewRNG(42))
	require.NoError(t, err)
	require.Len(t, bins, histIntervals)
	assert.Equal(t, histRolls, sum(bins))
	// the maximum is always counted somewhere in the last bin
	assert.Positive(t, bins[histIntervals-1])
}

func TestBinsConstantFallsInLastBin(t *testing.T) {
	bins, err := NewConstant(3).Bins(common.NewRNG(1))
	require.NoError(t, err)
	for i := 0; i < histIntervals-1; i++ {
		assert.Zero(t, bins[i], "bin %d", i)
	}
	assert.Equal(t, histRolls, bins[histIntervals-1])
}

func TestBinsUniformIsFlat(t *testing.T) {
	bins, err := NewUniform(0, 1).Bins(common.NewRNG(42))
	require.NoError(t, err)
	for i, b := range bins {
		assert.InDelta(t, histRolls/histIntervals, b, 150, "bin %d", i)
	}
}

func TestHistogramOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConstant(3).Histogram(&buf, common.NewRNG(1)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, histIntervals+1)
	assert.Equal(t, "CONS 3", lines[0])
	assert.Equal(t, "0: ", lines[1])
	assert.Equal(t, "9: "+strings.Repeat("*", histStars), lines[histIntervals])
}

func TestHistogramHypoexponentialFails(t *testing.T) {
	var buf bytes.Buffer
	err := NewHypoexponential(1, 2).Histogram(&buf, common.NewRNG(1))
	assert.ErrorIs(t, err, errs.ErrUnsupportedDistribution)
	assert.Zero(t, buf.Len())
}
