// Package cli provides the command-line interface for nslint.
package cli

import (
	"fmt"
	"os"

	"github.com/funvibe/nslint/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

var (
	cfgFile           string
	allowComputedFlag bool
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nslint [files or directories...]",
		Short: "nslint - namespace import checker for ES modules",
		Long: `nslint validates that every access to an imported namespace binding
(a wildcard import, or an import re-exporting a nested namespace) refers
to a name the target module actually exports, including deep member
chains, destructuring patterns and JSX tag members.`,
		Version:      Version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: nearest "+config.ConfigFileName+")")
	rootCmd.PersistentFlags().BoolVar(&allowComputedFlag, "allow-computed", false,
		"tolerate computed references like ns[expr]")

	rootCmd.AddCommand(newLintCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [files or directories...]",
		Short: "Lint the given files (same as the bare root command)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nslint %s (%s)\n", Version, GitCommit)
		},
	}
}

// loadConfig resolves the effective configuration: explicit file, or
// discovery from the first lint target upwards, with flag overrides.
func loadConfig(flags *pflag.FlagSet, args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		start := "."
		if len(args) > 0 {
			start = args[0]
		}
		if info, statErr := os.Stat(start); statErr == nil && !info.IsDir() {
			start = "."
		}
		cfg, err = config.Discover(start)
	}
	if err != nil {
		return nil, err
	}
	if flags.Changed("allow-computed") {
		cfg.AllowComputed = allowComputedFlag
	}
	return cfg, nil
}

func runLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}
	cfg, err := loadConfig(cmd.Flags(), args)
	if err != nil {
		return err
	}

	runner := NewRunner(cfg)
	files, err := runner.CollectFiles(args)
	if err != nil {
		return err
	}

	reporter := NewReporter(cmd.OutOrStdout())
	problems := 0
	for _, file := range files {
		errs, lintErr := runner.LintFile(file)
		if lintErr != nil {
			return lintErr
		}
		reporter.Report(errs)
		problems += len(errs)
	}
	reporter.Summary(len(files), problems)

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	return nil
}

// Execute runs the root command and returns a process exit code.
func Execute() int {
	cmd := NewRootCmd()
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
