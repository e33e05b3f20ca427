package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/realitycheck/internal/app"
	"github.com/abhisek/realitycheck/internal/checker"
	"github.com/abhisek/realitycheck/internal/realism"
)

// config is the resolved runtime configuration.
type config struct {
	LogLevel string
	LogFile  string
	Seed     uint64
	Year     int
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "realitycheck",
		Short: "Find out how realistic your New Year's resolution is",
		Long: `Reality Check classifies a New Year's resolution as achievable, optimistic
or delusional and tells you, with brutal honesty, what it thinks.

Run without arguments to start the interactive checker.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/realitycheck/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "write logs to this file (the interactive checker logs nowhere otherwise)")
	flags.Uint64("seed", 0, "seed for verdict selection (0 picks a random seed)")
	flags.Int("year", 0, "resolution year shown in the tagline (default: current year)")

	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.file", flags.Lookup("log-file"))
	_ = v.BindPFlag("seed", flags.Lookup("seed"))
	_ = v.BindPFlag("year", flags.Lookup("year"))

	rootCmd.AddCommand(newCheckCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".config", "realitycheck"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("REALITYCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) config {
	cfg := config{
		LogLevel: v.GetString("log.level"),
		LogFile:  v.GetString("log.file"),
		Seed:     v.GetUint64("seed"),
		Year:     v.GetInt("year"),
	}
	if cfg.Year <= 0 {
		cfg.Year = time.Now().Year()
	}
	return cfg
}

// newController builds the checker controller for the given configuration.
func newController(cfg config, logger *zap.Logger) *checker.Controller {
	var opts []realism.Option
	if cfg.Seed != 0 {
		opts = append(opts, realism.WithRand(realism.NewSeededRand(cfg.Seed)))
	}
	return checker.New(realism.NewClassifier(opts...), logger)
}

// runApp builds dependencies and launches the TUI.
func runApp(v *viper.Viper) error {
	cfg := loadConfig(v)

	// The TUI owns the terminal, so logs only go to a file.
	logger := zap.NewNop()
	if cfg.LogFile != "" {
		var err error
		logger, err = newLogger(cfg.LogLevel, cfg.LogFile)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	logger.Info("starting checker", zap.Int("year", cfg.Year), zap.Uint64("seed", cfg.Seed))
	return app.Run(app.Options{
		Controller: newController(cfg, logger),
		Year:       cfg.Year,
		Logger:     logger,
	})
}
