// Package cmd provides the CLI commands for pos.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pos-pricing/core/checkout"
	"pos-pricing/core/input"
	"pos-pricing/core/output"
	"pos-pricing/core/ui"
	"pos-pricing/internal/config"
	"pos-pricing/internal/logging"
)

var (
	cfgFile      string
	verbose      bool
	noColor      bool
	outputFormat string
	maxAttempts  int
)

// rootCmd represents the base command. Without a subcommand it runs
// one interactive checkout.
var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Price a checkout with a selectable pricing strategy",
	Long: `pos is an interactive point-of-sale price calculator.

It asks for a unit price and a quantity, lets the operator pick a
pricing strategy (flat charge, threshold rebate, percentage discount
or tax addition), asks for that strategy's parameters and prints the
original and charged amounts.

Examples:
  pos
  pos --format json
  pos strategies`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runCheckout,
}

// Execute runs the CLI and reports any failure on stderr
func Execute() error {
	defer logging.Sync()
	err := rootCmd.Execute()
	if err != nil {
		reportFailure(rootCmd.ErrOrStderr(), err)
	}
	return err
}

// reportFailure prints err for the operator. Closed input is a
// cancellation, not a fault.
func reportFailure(out io.Writer, err error) {
	w := ui.NewWriter(out, noColor || config.Get().Output.NoColor)
	if stderrors.Is(err, io.EOF) {
		w.Warning("input closed, checkout cancelled")
		return
	}
	w.Error("%v", err)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, .hcl or .json (default is ./pos.hcl)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "cli", "receipt format (cli, json)")
	rootCmd.PersistentFlags().IntVar(&maxAttempts, "max-attempts", 0, "entries accepted per value before giving up (0 = unlimited)")

	rootCmd.AddCommand(versionCmd)
}

// initConfig layers defaults, config file, environment and flags
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		path = "pos.hcl"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = outputFormat
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = noColor
	}
	if flags.Changed("max-attempts") {
		cfg.Session.MaxAttempts = maxAttempts
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	logging.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("format", cfg.Output.Format),
		zap.Int("max_attempts", cfg.Session.MaxAttempts))
	return nil
}

func runCheckout(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	w := ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor)
	reader := input.NewReader(cmd.InOrStdin(), cmd.OutOrStdout(),
		input.WithMaxAttempts(cfg.Session.MaxAttempts))

	flow := checkout.NewFlow(reader, w, logging.Logger)
	receipt, err := flow.Run()
	if err != nil {
		logging.Error("checkout failed", zap.Error(err))
		return err
	}

	return output.NewFormatter(format).Format(w.Out(), receipt)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pos version 0.1.0")
	},
}
