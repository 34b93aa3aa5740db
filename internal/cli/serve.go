package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danakotech/osintwalletonline/internal/infra/storage"
	"github.com/danakotech/osintwalletonline/internal/infra/storage/memory"
	"github.com/danakotech/osintwalletonline/internal/infra/storage/sqlite"
	"github.com/danakotech/osintwalletonline/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	var reports storage.ReportStore
	if cfg.Storage.Enabled() {
		db, err := sqlite.NewDB(cmd.Context(), cfg.Storage)
		if err != nil {
			return err
		}
		defer db.Close()
		reports = sqlite.NewReportRepo(db)
	} else {
		slog.Info("no storage path configured, keeping history in memory")
		reports = memory.NewReportStore()
	}

	srv := server.New(newAnalyzer(cfg), reports, cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	slog.Info("API server started", "port", cfg.Server.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
