// Package cli wires the strkit toolkit into cobra commands. Every subcommand
// reads one problem instance from stdin in its exercise format and writes
// the answer to stdout; diagnostics go to stderr through the logger.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/strkit/internal/config"
	"github.com/katalvlaran/strkit/internal/logger"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "strkit",
		Short:             "strkit runs exact string-matching algorithms on stdin",
		Long:              `strkit solves string-processing exercises with KMP, Z-arrays, tries and rolling hashes.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.strkit.yaml)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Uint64("hash-base", 0, "rolling hash base (0 keeps the configured value)")
	flags.Uint64("hash-modulus", 0, "rolling hash modulus, 0 for 2^64 wraparound")

	bind := map[string]string{
		config.KeyLogLevel:    "log-level",
		config.KeyLogFormat:   "log-format",
		config.KeyHashModulus: "hash-modulus",
	}
	for key, name := range bind {
		cobra.CheckErr(a.v.BindPFlag(key, flags.Lookup(name)))
	}

	root.AddCommand(
		a.kmpCmd(),
		a.zsearchCmd(),
		a.stripsCmd(),
		a.passwordCmd(),
		a.periodCmd(),
		a.borderCmd(),
		a.dangerCmd(),
		a.prefixStatsCmd(),
		a.maxXorCmd(),
		a.substrEqCmd(),
		a.repeatCmd(),
		a.anagramsCmd(),
	)

	return root
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// A zero base means "not given"; only a set flag overrides the config.
	if f := cmd.Flags().Lookup("hash-base"); f != nil && f.Changed {
		a.v.Set(config.KeyHashBase, f.Value.String())
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.cfg = cfg
	logger.Debug("configuration loaded",
		"command", cmd.Name(),
		"config_file", a.v.ConfigFileUsed(),
		"hash_base", cfg.HashBase,
		"hash_modulus", cfg.HashModulus)

	return nil
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error("command failed", "error", err)
		return 1
	}

	return 0
}
