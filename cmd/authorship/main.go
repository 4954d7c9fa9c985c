package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	authorship "github.com/samuel/go-authorship"
	"github.com/samuel/go-authorship/internal/config"
	"github.com/samuel/go-authorship/internal/logging"
)

var version = "0.1.0-dev"

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	cfg     *config.Config
	weights authorship.Weights
	log     *logrus.Entry
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "authorship",
		Short: "Guess the author of a text from its writing style",
		Long: `authorship computes a five-number stylistic signature of a text
(average word length, type-token ratio, hapax ratio, average sentence
length and average sentence complexity) and reports which known author's
signature is closest.

Known signatures come from --known (a directory of texts), --database
(a sqlite file written by "authorship build"), or, when neither is set,
a built-in catalog of four classic novelists.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (YAML, or TOML with a .toml extension)")
	flags.Bool("json", false, "Output as JSON")
	flags.String("known", "", "Directory of texts by known authors")
	flags.String("database", "", "Sqlite file with precomputed signatures")
	flags.Int("workers", 0, "Concurrent signature computations (0 = one per CPU)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSignatureCmd(a),
		newIdentifyCmd(a),
		newCatalogCmd(a),
		newBuildCmd(a),
	)
	return rootCmd
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("known") {
		cfg.KnownDir, _ = flags.GetString("known")
	}
	if flags.Changed("database") {
		cfg.Database, _ = flags.GetString("database")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.weights, _ = cfg.ParsedWeights()
	a.log = logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	return nil
}
