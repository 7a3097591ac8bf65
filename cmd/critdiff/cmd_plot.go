package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ranklab/critdiff/internal/config"
	"github.com/ranklab/critdiff/internal/layout"
	"github.com/ranklab/critdiff/internal/render"
	"github.com/ranklab/critdiff/internal/results"
)

// comparisonSpec is the optional YAML description of a comparison:
// where the results live, the significance level, and the algorithm names.
type comparisonSpec struct {
	Input        string   `yaml:"input"`
	Alpha        float64  `yaml:"alpha"`
	TieTolerance float64  `yaml:"tie_tolerance"`
	Algorithms   []string `yaml:"algorithms"`
}

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Compute and render a critical-difference diagram",
		Run:   runPlot,
	}

	cmd.Flags().StringP("input", "i", "", "results file (.csv or .json) or HTTP URL")
	cmd.Flags().String("config", "", "YAML comparison config (overridden by explicit flags)")
	cmd.Flags().Float64("alpha", 0, "significance level, 0.01 or 0.05 (default 0.05)")
	cmd.Flags().Float64("tie-tolerance", 0, "tolerance for detecting tied scores")
	cmd.Flags().String("names", "", "comma-separated algorithm names, overriding the input file")
	cmd.Flags().StringP("output", "o", "term", "output format: term or json")

	return cmd
}

func runPlot(cmd *cobra.Command, _ []string) {
	spec := comparisonSpec{}
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("failed to read comparison config")
			os.Exit(1)
		}
		if err := yaml.Unmarshal(data, &spec); err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("failed to parse comparison config")
			os.Exit(1)
		}
	}

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		spec.Input = input
	}
	if alpha, _ := cmd.Flags().GetFloat64("alpha"); alpha != 0 {
		spec.Alpha = alpha
	}
	if tol, _ := cmd.Flags().GetFloat64("tie-tolerance"); tol != 0 {
		spec.TieTolerance = tol
	}
	if names, _ := cmd.Flags().GetString("names"); names != "" {
		spec.Algorithms = strings.Split(names, ",")
	}
	if spec.Alpha == 0 {
		if cfg, err := config.LoadConfig(); err == nil {
			spec.Alpha = cfg.Alpha
		} else {
			spec.Alpha = 0.05
		}
	}
	if spec.Input == "" {
		log.Error().Msg("no results input given; use --input or a --config file")
		os.Exit(1)
	}

	var set *results.Set
	var err error
	if strings.HasPrefix(spec.Input, "http://") || strings.HasPrefix(spec.Input, "https://") {
		set, err = results.Fetch(spec.Input, 30*time.Second)
	} else {
		set, err = results.LoadFile(spec.Input)
	}
	if err != nil {
		log.Error().Err(err).Str("input", spec.Input).Msg("failed to load results")
		os.Exit(1)
	}

	names := set.Names
	if len(spec.Algorithms) > 0 {
		names = spec.Algorithms
	}

	builder := layout.New(
		layout.WithAlpha(spec.Alpha),
		layout.WithTieTolerance(spec.TieTolerance),
	)
	l, err := builder.BuildMatrix(set.Scores, names)
	if err != nil {
		log.Error().Err(err).Msg("failed to build diagram layout")
		os.Exit(1)
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		data, err := sonic.MarshalIndent(l, "", "  ")
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal layout")
			os.Exit(1)
		}
		fmt.Println(string(data))
	case "term":
		render.Terminal(os.Stdout, l)
	default:
		log.Error().Str("output", output).Msg("unknown output format, want term or json")
		os.Exit(1)
	}
}
