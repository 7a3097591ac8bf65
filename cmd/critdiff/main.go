package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ranklab/critdiff/internal/utils/logger"
)

func main() {
	logger.Init()

	rootCmd := &cobra.Command{
		Use:   "critdiff",
		Short: "Critical-difference diagrams for algorithm benchmarks",
		Long: "critdiff compares algorithms evaluated across benchmark problems using " +
			"the Friedman/Nemenyi procedure and produces critical-difference diagrams.",
	}

	rootCmd.AddCommand(newPlotCmd())
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
