package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrzvv/bulksim/internal/config"
	"github.com/emrzvv/bulksim/internal/errs"
)

func testConfig(t *testing.T, params string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "params.txt")
	require.NoError(t, os.WriteFile(path, []byte(params), 0o644))
	cfg := config.Default()
	cfg.Params = path
	cfg.Niter = 200
	return cfg
}

func TestRunReport(t *testing.T) {
	cfg := testConfig(t, "3 ERLANG 3 1 1 UNIF 0.5 1.5 5 NORM 5 1 8 2 50")
	cfg.Output = filepath.Join(t.TempDir(), "trace.csv")

	var out, diag bytes.Buffer
	require.NoError(t, run(cfg, &out, &diag))
	assert.Contains(t, out.String(), "cycles: 200\n")
	assert.Contains(t, out.String(), "rho: ")
	assert.Zero(t, diag.Len())

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "time,value", lines[0])
	assert.Len(t, lines, 1+2*(cfg.Niter-1))
}

func TestRunDeterministicReport(t *testing.T) {
	cfg := testConfig(t, "2 CONS 2 1 CONS 1 5 CONS 5 5 1 100")

	var first, second bytes.Buffer
	require.NoError(t, run(cfg, &first, &bytes.Buffer{}))

	// diagnostics draw from their own stream
	cfg.Verbose = true
	var diag bytes.Buffer
	require.NoError(t, run(cfg, &second, &diag))
	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, diag.String(), "tau distribution:\nCONS 2\n")
	assert.Contains(t, diag.String(), "c distribution:\n")
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(t, "2 HYPO 1 1 1 CONS 1 5 CONS 5 5 1 100")
	err := run(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errs.ErrUnsupportedDistribution)

	cfg = testConfig(t, "2 CONS 2 1 CONS")
	err = run(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errs.ErrMalformedInput)

	cfg = testConfig(t, "2 CONS 2 1 CONS 1 5 CONS 5 5 1 100")
	cfg.Niter = 0
	err = run(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	cfg.Niter = 10
	cfg.MaxCycles = 5
	err = run(cfg, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errs.ErrAllocation)
}

func TestRunUnwritablePlotFailsFirst(t *testing.T) {
	cfg := testConfig(t, "2 CONS 2 1 CONS 1 5 CONS 5 5 1 100")
	cfg.Plot = filepath.Join(t.TempDir(), "missing", "queue.png")

	var out bytes.Buffer
	err := run(cfg, &out, &bytes.Buffer{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	// nothing was simulated or reported
	assert.Zero(t, out.Len())
}
