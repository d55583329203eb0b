package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sirkon/fluentify/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "fluentify",
	Short: "Rewrite classic assertions into constraint assertions",
	Long: `fluentify turns classic assertion calls like Assert.AreEqual(42, x) into
constraint based ones like Assert.That(x, Is.EqualTo(42)), keeping the set of
failing assertions exactly the same.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupOutput,
}

// errChanges is returned by rewrite --fail-on-change when something would change.
var errChanges = errors.New("some assertions need a rewrite")

func init() {
	rootCmd.AddCommand(rewriteCmd)
	rootCmd.AddCommand(rulesCmd)

	rootCmd.PersistentFlags().String("config", "", "path to the YAML config")
	rootCmd.PersistentFlags().Bool("verbose", false, "log every file and change")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errChanges) {
			_, _ = fmt.Fprintln(os.Stderr, "fluentify:", err)
		}
		os.Exit(1)
	}
}

func setupOutput(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q, must be one of auto, on, off", mode)
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
