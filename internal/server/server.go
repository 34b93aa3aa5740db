// Package server exposes the analysis pipeline over HTTP for the
// presentation layer: one endpoint runs an analysis, the history
// endpoints read the local store, and /metrics serves prometheus.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danakotech/osintwalletonline/internal/control"
	"github.com/danakotech/osintwalletonline/internal/core/domain"
	"github.com/danakotech/osintwalletonline/internal/infra/storage"
)

// Server serves the JSON API.
type Server struct {
	analyzer *control.Analyzer
	reports  storage.ReportStore // nil when no history store is configured
	server   *http.Server
}

// New creates the API server. reports may be nil.
func New(analyzer *control.Analyzer, reports storage.ReportStore, port int) *Server {
	mux := http.NewServeMux()
	s := &Server{
		analyzer: analyzer,
		reports:  reports,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	mux.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/v1/history", s.handleHistory)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")

	report, err := s.analyzer.Analyze(r.Context(), address, func(step string, percent int) {
		slog.Debug("analysis progress", "address", address, "step", step, "percent", percent)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAddress) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.reports != nil {
		if _, err := s.reports.Save(r.Context(), report); err != nil {
			slog.Warn("failed to save report to history", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.reports == nil {
		writeError(w, http.StatusNotFound, "history store not configured")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	var (
		rows []storage.ReportRecord
		err  error
	)
	if address := r.URL.Query().Get("address"); address != "" {
		if vErr := domain.ValidateAddress(address); vErr != nil {
			writeError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		rows, err = s.reports.ByAddress(r.Context(), address, limit)
	} else {
		rows, err = s.reports.Recent(r.Context(), limit)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if rows == nil {
		rows = []storage.ReportRecord{}
	}

	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
