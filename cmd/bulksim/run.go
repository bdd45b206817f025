package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/config"
	"github.com/emrzvv/bulksim/internal/export"
	"github.com/emrzvv/bulksim/internal/model"
	"github.com/emrzvv/bulksim/internal/simulator"
)

var (
	configPath string // optional yaml run config
	paramsPath string // parameter file
	rho        float64
	niter      int
	seed       int64
	outputPath string // trace csv
	plotPath   string // trace image
	verbose    bool
	logLevel   string
)

// meanTolerance is the relative gap between a declared mean and the
// distribution's analytic mean above which a warning is logged.
const meanTolerance = 0.1

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cycle simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		level, _ := logrus.ParseLevel(cfg.LogLevel)
		logrus.SetLevel(level)

		if cfg.Params == "" {
			_ = cmd.Usage()
			logrus.Fatalf("parameter file not provided (use --params)")
		}
		if err := run(cfg, os.Stdout, os.Stderr); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

// resolveConfig starts from the yaml file, if any, and lets explicitly set
// flags override it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("params") || cfg.Params == "" {
		cfg.Params = paramsPath
	}
	if flags.Changed("rho") {
		cfg.Rho = rho
	}
	if flags.Changed("niter") {
		cfg.Niter = niter
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("output") {
		cfg.Output = outputPath
	}
	if flags.Changed("plot") {
		cfg.Plot = plotPath
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config, out, diag io.Writer) error {
	params, err := config.LoadParams(cfg.Params)
	if err != nil {
		return err
	}
	params.Rho = cfg.Rho
	params.Niter = cfg.Niter
	params.Seed = cfg.Seed

	rng := common.NewRNG(params.Seed)
	params.Seed = rng.Seed()
	logrus.Infof("Starting simulation: %d cycles, rho=%v, seed=%d", params.Niter, params.Rho, params.Seed)
	checkMean("Etau", params.Etau, params.DistTau)
	checkMean("Ex", params.Ex, params.DistX)
	checkMean("Ec", params.Ec, params.DistC)

	if cfg.Verbose {
		// separate stream so verbosity never changes the simulated trace
		if err := dumpDiagnostics(diag, params, common.NewRNG(params.Seed)); err != nil {
			return err
		}
	}

	if cfg.Plot != "" {
		if err := export.CheckPlotPath(cfg.Plot); err != nil {
			return err
		}
	}

	var observe simulator.Observer
	var trace *export.TraceWriter
	if cfg.Output != "" {
		if trace, err = export.NewTraceWriter(cfg.Output); err != nil {
			return err
		}
		observe = trace.Observe
	}

	startTime := time.Now()
	res, err := simulator.Run(params, rng, cfg.MaxCycles, observe)
	if trace != nil {
		if cerr := trace.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("unable to write trace %s: %w", cfg.Output, cerr)
		}
	}
	if err != nil {
		return err
	}
	logrus.Infof("Simulation complete in %v", time.Since(startTime))

	if err := res.Summary.Report(out); err != nil {
		return err
	}
	if cfg.Plot != "" && len(res.Cycles) > 1 {
		if err := export.PlotQueue(res.Cycles[:len(res.Cycles)-1], cfg.Plot); err != nil {
			return err
		}
		logrus.Infof("Queue plot saved to %s", cfg.Plot)
	}
	return nil
}

func checkMean(name string, declared float64, d model.Distribution) {
	if d.Kind() == model.Hypoexponential {
		return
	}
	m := d.Mean()
	if declared == 0 || math.Abs(m-declared)/math.Abs(declared) > meanTolerance {
		logrus.Warnf("%s=%v but %s has mean %v", name, declared, d, m)
	}
}

func dumpDiagnostics(w io.Writer, p *config.Params, rng *common.RNG) error {
	if err := config.WriteParams(w, p); err != nil {
		return err
	}
	for _, h := range []struct {
		name string
		dist model.Distribution
	}{
		{"tau", p.DistTau},
		{"x", p.DistX},
		{"c", p.DistC},
	} {
		fmt.Fprintf(w, "%s distribution:\n", h.name)
		if err := h.dist.Histogram(w, rng); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run config; flags override its values")
	runCmd.Flags().StringVarP(&paramsPath, "params", "p", "", "Parameter file (required)")
	runCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "Load factor")
	runCmd.Flags().IntVarP(&niter, "niter", "n", config.DefaultNiter, "Number of simulated cycles")
	runCmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "Random seed (0 derives one from the clock)")
	runCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the queue length trace as csv")
	runCmd.Flags().StringVar(&plotPath, "plot", "", "Save the queue length trace as an image (png, svg, pdf)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Dump parameters and distribution histograms to stderr")
	runCmd.Flags().StringVar(&logLevel, "log", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
}
