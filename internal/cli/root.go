package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/danakotech/osintwalletonline/internal/analysis/risk"
	"github.com/danakotech/osintwalletonline/internal/control"
	"github.com/danakotech/osintwalletonline/internal/core/config"
	"github.com/danakotech/osintwalletonline/internal/infra/blacklist"
	"github.com/danakotech/osintwalletonline/internal/infra/etherscan"
	"github.com/danakotech/osintwalletonline/internal/infra/storage/sqlite"
)

var (
	cfgPath    string
	isDebug    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "osint <address>",
	Short: "Ethereum wallet risk analyzer",
	Long: `osint aggregates public on-chain data for an Ethereum address,
cross-references it against a community scam blacklist, and produces a
heuristic risk score with human-readable explanations.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

// Execute is the CLI entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file (default is config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the full report as JSON")
}

// setup loads env, config and logging shared by every command.
func setup() (*config.AppConfig, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if isDebug || cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})))

	return cfg, nil
}

func newAnalyzer(cfg *config.AppConfig) *control.Analyzer {
	return control.NewAnalyzer(
		etherscan.NewClient(cfg.Etherscan),
		blacklist.NewChecker(cfg.Blacklist),
		risk.NewClassifier(cfg.Scoring),
	)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	analyzer := newAnalyzer(cfg)

	report, err := analyzer.Analyze(context.Background(), args[0], func(step string, percent int) {
		fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, step)
	})
	if err != nil {
		return err
	}

	if cfg.Storage.Enabled() {
		db, dbErr := sqlite.NewDB(cmd.Context(), cfg.Storage)
		if dbErr != nil {
			slog.Warn("history store unavailable", "error", dbErr)
		} else {
			defer db.Close()
			if _, saveErr := sqlite.NewReportRepo(db).Save(cmd.Context(), report); saveErr != nil {
				slog.Warn("failed to record analysis in history", "error", saveErr)
			}
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printSummary(report)
	return nil
}
