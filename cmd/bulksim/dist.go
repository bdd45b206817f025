package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/emrzvv/bulksim/internal/common"
	"github.com/emrzvv/bulksim/internal/model"
)

var distSeed int64

var distCmd = &cobra.Command{
	Use:     "dist <ID> <params...>",
	Short:   "Print the mean and a sample histogram of one distribution",
	Example: "  bulksim dist ERLANG 2 1.5",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := model.ParseDistribution(strings.Join(args, " "))
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mean: %f\n", d.Mean())
		if err := d.Histogram(out, common.NewRNG(distSeed)); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	distCmd.Flags().Int64Var(&distSeed, "seed", 1993, "Random seed for the sample")
}
