package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/termview"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "boids",
		Short: "Boid flocking simulation",
		Long: `boids simulates emergent group movement among autonomous agents,
each reacting only to nearby peers via separation, alignment and
cohesion. The core is headless; pick a front end with a subcommand.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to JSON config file (defaults to built-in parameters)")
	rootCmd.PersistentFlags().String("schema", "config/boids.schema.json", "Path to JSON schema for config validation")
	rootCmd.PersistentFlags().Int("num", 0, "Override the number of boids")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")

	rootCmd.AddCommand(
		newRunCmd(),
		newTuiCmd(),
		newBenchCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup resolves the shared flags into a config and a seeded random
// source; each front end builds its own flock from them.
func setup(cmd *cobra.Command) (*flock.Config, *rand.Rand, error) {
	configFile, _ := cmd.Flags().GetString("config")
	schemaFile, _ := cmd.Flags().GetString("schema")
	num, _ := cmd.Flags().GetInt("num")
	seed, _ := cmd.Flags().GetUint64("seed")

	cfg := flock.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = flock.LoadConfig(configFile, schemaFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	if num > 0 {
		cfg.NumBoids = num
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return cfg, rand.New(rand.NewPCG(seed, seed)), nil
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the simulation in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rng, err := setup(cmd)
			if err != nil {
				return err
			}

			game := simulation.NewGame(cfg, rng)

			ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
			ebiten.SetWindowTitle("Boid Flocking Simulation")
			if err := ebiten.RunGame(game); err != nil {
				return fmt.Errorf("game loop failed: %w", err)
			}
			return nil
		},
	}
}

func newTuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the simulation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rng, err := setup(cmd)
			if err != nil {
				return err
			}
			fps, _ := cmd.Flags().GetInt("fps")

			view, err := termview.New(flock.New(cfg, rng), cfg, fps)
			if err != nil {
				return fmt.Errorf("failed to start terminal view: %w", err)
			}
			return view.Run()
		},
	}
	cmd.Flags().Int("fps", 30, "Target frames per second")
	return cmd
}

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run headless ticks and report timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, rng, err := setup(cmd)
			if err != nil {
				return err
			}
			ticks, _ := cmd.Flags().GetInt("ticks")
			if ticks <= 0 {
				return fmt.Errorf("ticks must be positive, got %d", ticks)
			}

			f := flock.New(cfg, rng)
			start := time.Now()
			for i := 0; i < ticks; i++ {
				f.Tick(cfg)
			}
			elapsed := time.Since(start)

			fmt.Printf("boids: %d\nticks: %d\ntotal: %s\nper tick: %s\n",
				cfg.NumBoids, ticks, elapsed, elapsed/time.Duration(ticks))
			return nil
		},
	}
	cmd.Flags().Int("ticks", 1000, "Number of ticks to run")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("boids version %s\n", version)
		},
	}
}
