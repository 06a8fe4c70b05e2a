package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/abhisek/mathlab/internal/config"
	"github.com/abhisek/mathlab/internal/logging"
	"github.com/abhisek/mathlab/internal/problemgen"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathlab",
	Short: "Arithmetic and spelling practice for kids",
	Long: `Mathlab is a terminal practice app for young learners: sums, times tables,
word problems, number pyramids, clocks, comparisons, dice and spelling.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides MATHLAB_CONFIG)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for reproducible exercises (0 picks one)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// runEnv is what every command needs after flags and config are resolved.
type runEnv struct {
	cfg    *config.Config
	rng    problemgen.Rand
	logger *slog.Logger
	closer io.Closer
}

func (rt *runEnv) Close() error {
	if rt.closer == nil {
		return nil
	}
	return rt.closer.Close()
}

// loadRuntime resolves the configuration with flags taking priority over
// the environment and the config file. Logs go to --log-file when set and to
// fallback otherwise; a nil fallback discards them.
func loadRuntime(cmd *cobra.Command, fallback io.Writer) (*runEnv, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.Log.File = v
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	rt := &runEnv{cfg: cfg, rng: problemgen.NewRand(cfg.Seed)}
	if cfg.Log.File != "" {
		rt.logger, rt.closer, err = logging.OpenFile(cfg.Log.File, level)
		if err != nil {
			return nil, err
		}
	} else {
		rt.logger = logging.New(level, fallback)
	}

	rt.logger.Debug("config loaded", "path", cfg.Path, "seed", cfg.Seed)
	return rt, nil
}
