// Command evoline fits a line y = m*x + c to a two-column CSV of (x, y)
// observations with a genetic algorithm search.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/baldhumanity/evoline/evoline"
)

var (
	configPath      string
	checkpointPath  string
	checkpointEvery int
	resumePath      string
	verbosity       int

	flagCycles          int
	flagPopSize         int
	flagMinM, flagMaxM  float64
	flagMinC, flagMaxC  float64
	flagMutProb         float64
	flagMutVal          float64
	flagDecimalPlaces   int
	flagTournamentSize  float64
	flagGoldenSize      float64
	flagImmigrationSize float64
	flagSeed            int64
)

var rootCmd = &cobra.Command{
	Use:   "evoline <data.csv>",
	Short: "Fit a line to CSV data with a genetic algorithm",
	Long: `evoline searches the (m, c) space of y = m*x + c with a genetic
algorithm: tournament selection, m/c crossover, mutation, and random
immigration, until a formula fits the data exactly at the configured
precision or the cycle budget runs out.

The data file is a two-column CSV of x, y values.`,
	Args:         cobra.ExactArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to an INI hyperparameter file")
	flags.StringVar(&checkpointPath, "checkpoint", "", "path to write run-state checkpoints to")
	flags.IntVar(&checkpointEvery, "checkpoint-every", 50, "generations between checkpoints")
	flags.StringVar(&resumePath, "resume", "", "checkpoint file to resume from")
	flags.IntVar(&verbosity, "verbosity", 2, "log detail, 1 (debug) to 5 (silent)")

	flags.IntVar(&flagCycles, "cycles", 1000, "number of evolutionary cycles to execute")
	flags.IntVar(&flagPopSize, "popSize", 100, "size of base population")
	flags.Float64Var(&flagMinM, "minM", 0, "smallest possible value of m")
	flags.Float64Var(&flagMaxM, "maxM", 100, "largest possible value of m")
	flags.Float64Var(&flagMinC, "minC", 0, "smallest possible value of c")
	flags.Float64Var(&flagMaxC, "maxC", 100, "largest possible value of c")
	flags.Float64Var(&flagMutProb, "mutProb", 0.01, "probability of mutating a child")
	flags.Float64Var(&flagMutVal, "mutVal", 0.05, "magnitude of a mutation step")
	flags.IntVar(&flagDecimalPlaces, "dps", 1, "decimal places of accuracy")
	flags.Float64Var(&flagTournamentSize, "tournamentSize", 0.08, "fraction of population in each tournament")
	flags.Float64Var(&flagGoldenSize, "goldenSize", 0.4, "fraction of population kept by selection")
	flags.Float64Var(&flagImmigrationSize, "immigrationSize", 0.2, "fraction of each generation that is fresh")
	flags.Int64Var(&flagSeed, "seed", 0, "random seed, 0 for a clock-derived one")
}

// buildParams resolves the hyperparameters: defaults, then the config file
// if given, then any flag the user set explicitly.
func buildParams(cmd *cobra.Command) (*evoline.HyperParams, error) {
	params := evoline.DefaultHyperParams()
	if configPath != "" {
		loaded, err := evoline.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		params = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("cycles") {
		params.Cycles = flagCycles
	}
	if flags.Changed("popSize") {
		params.PopSize = flagPopSize
	}
	if flags.Changed("minM") {
		params.Range.MinM = flagMinM
	}
	if flags.Changed("maxM") {
		params.Range.MaxM = flagMaxM
	}
	if flags.Changed("minC") {
		params.Range.MinC = flagMinC
	}
	if flags.Changed("maxC") {
		params.Range.MaxC = flagMaxC
	}
	if flags.Changed("mutProb") {
		params.MutProb = flagMutProb
	}
	if flags.Changed("mutVal") {
		params.MutVal = flagMutVal
	}
	if flags.Changed("dps") {
		params.DecimalPlaces = flagDecimalPlaces
	}
	if flags.Changed("tournamentSize") {
		params.TournamentSize = flagTournamentSize
	}
	if flags.Changed("goldenSize") {
		params.GoldenSize = flagGoldenSize
	}
	if flags.Changed("immigrationSize") {
		params.ImmigrationSize = flagImmigrationSize
	}
	if flags.Changed("seed") {
		params.Seed = flagSeed
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// logLevel maps the verbosity scale onto slog levels. 1 shows every draw
// and pool size, 2 is per-generation progress, higher values quiet the run
// down to warnings and errors.
func logLevel(verbosity int) slog.Level {
	switch {
	case verbosity <= 1:
		return slog.LevelDebug
	case verbosity == 2:
		return slog.LevelInfo
	case verbosity == 3:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(verbosity),
	}))

	params, err := buildParams(cmd)
	if err != nil {
		return err
	}

	data, err := evoline.LoadData(args[0])
	if err != nil {
		return err
	}
	logger.Info("data loaded", "path", args[0], "points", len(data))

	var engine *evoline.Engine
	if resumePath != "" {
		engine, err = evoline.LoadCheckpoint(resumePath, data, params)
		if err != nil {
			return err
		}
		logger.Info("resumed from checkpoint", "path", resumePath, "generation", engine.Generation)
	} else {
		engine, err = evoline.NewEngine(data, params)
		if err != nil {
			return err
		}
	}
	engine.Log = logger

	var best evoline.Formula
	cycles := params.Cycles
	for engine.Generation < params.Cycles {
		winner, err := engine.RunGeneration()
		if err != nil {
			return err
		}
		if winner != nil {
			best = *winner
			cycles = engine.Generation
			break
		}
		if checkpointPath != "" && engine.Generation%checkpointEvery == 0 {
			if err := engine.SaveCheckpoint(checkpointPath); err != nil {
				logger.Warn("failed to save checkpoint", "path", checkpointPath, "error", err)
			} else {
				logger.Debug("checkpoint saved", "path", checkpointPath, "generation", engine.Generation)
			}
		}
	}
	if engine.Generation >= params.Cycles && best == (evoline.Formula{}) {
		final := engine.Population.Best()
		if final == nil {
			return fmt.Errorf("run ended with no scored candidates; resume with a larger --cycles budget")
		}
		best = *final
	}

	fmt.Printf("Best candidate found with fitness of %g and formula of %gx+%g after %d cycles\n",
		best.Fitness, best.M, best.C, cycles)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
