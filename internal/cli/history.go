package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danakotech/osintwalletonline/internal/infra/storage"
	"github.com/danakotech/osintwalletonline/internal/infra/storage/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [address]",
	Short: "List previously analyzed wallets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if !cfg.Storage.Enabled() {
		return fmt.Errorf("no history store configured (set storage.path)")
	}

	db, err := sqlite.NewDB(cmd.Context(), cfg.Storage)
	if err != nil {
		return err
	}
	defer db.Close()
	repo := sqlite.NewReportRepo(db)

	var rows []storage.ReportRecord
	if len(args) == 1 {
		rows, err = repo.ByAddress(cmd.Context(), args[0], historyLimit)
	} else {
		rows, err = repo.Recent(cmd.Context(), historyLimit)
	}
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("no analyses recorded yet")
		return nil
	}
	for _, row := range rows {
		flag := " "
		if row.IsBlacklisted {
			flag = "!"
		}
		fmt.Printf("%s %-42s %-8s %4.1f/10 %3d%%  %s\n",
			flag, row.Address, row.RiskLevel, row.RiskScore, row.ConfidenceLevel,
			row.AnalyzedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
