// Package server exposes the comparison pipeline over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/mortgage-compare/internal/compare"
	"github.com/iwvelando/mortgage-compare/internal/config"
	"github.com/iwvelando/mortgage-compare/internal/metrics"
	"github.com/iwvelando/mortgage-compare/pkg/amortize"
	"github.com/iwvelando/mortgage-compare/pkg/constants"
	"github.com/iwvelando/mortgage-compare/pkg/scenario"
)

type handler struct {
	logger          *zap.Logger
	maxRequestBytes int64
	version         string
}

type compareOptions struct {
	IncludeSchedules bool
}

// NewHandler constructs the HTTP handler that serves the comparison API.
func NewHandler(logger *zap.Logger, maxRequestBytes int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestBytes <= 0 {
		maxRequestBytes = constants.DefaultMaxRequestBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxRequestBytes: maxRequestBytes, version: trimmedVersion}

	mux := http.NewServeMux()

	// Comparison API endpoint (YAML or JSON configuration document)
	mux.HandleFunc("/api/v1/compare", h.handleCompare)

	// Liveness and metadata endpoints
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.HandleFunc("/version", h.handleVersion)

	// Prometheus metrics
	mux.Handle("/metrics", metrics.Handler())

	return metrics.Middleware(mux)
}

type compareResponse struct {
	Results    []compare.Result   `json:"results"`
	Comparison compare.Comparison `json:"comparison"`
	Warnings   []string           `json:"warnings,omitempty"`
	Duration   string             `json:"duration"`
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	opts := compareOptions{}
	if raw := r.URL.Query().Get("schedules"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid schedules parameter: %q", raw))
			return
		}
		opts.IncludeSchedules = parsed
	}

	if h.maxRequestBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestBytes)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestBytes))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err))
		return
	}

	conf, err := decodeConfiguration(body, r.Header.Get("Content-Type"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err))
		return
	}

	h.runComparison(w, conf, start, opts, "server.handleCompare")
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runComparison(w http.ResponseWriter, conf *config.Configuration, start time.Time, opts compareOptions, op string) {
	warnings := conf.ValidateConfiguration()

	results, err := compare.Run(h.logger, conf)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, amortize.ErrNonAmortizing):
			status = http.StatusUnprocessableEntity
			metrics.NonAmortizingRejections.Inc()
		case errors.Is(err, scenario.ErrInvalidParameter):
			status = http.StatusUnprocessableEntity
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}
	if len(results) == 0 {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, "no active scenarios in configuration", op)
		return
	}

	if !opts.IncludeSchedules {
		for i := range results {
			results[i].Schedule = nil
		}
	}

	metrics.ComparisonsTotal.Inc()
	metrics.SchedulesComputed.Add(float64(len(results)))

	elapsed := time.Since(start)

	response := compareResponse{
		Results:    results,
		Comparison: compare.Compare(results),
		Warnings:   warnings,
		Duration:   elapsed.String(),
	}

	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.Int("scenarios", len(results)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func decodeConfiguration(data []byte, contentType string) (*config.Configuration, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty configuration document")
	}

	var conf config.Configuration
	if strings.Contains(contentType, "json") || trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &conf); err != nil {
			return nil, err
		}
		return &conf, nil
	}

	if err := yaml.Unmarshal(trimmed, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondErrorWithOp(w, status, msg, "server.handleCompare")
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("compare request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// Serve runs the HTTP server until the context is canceled, then drains it
// with a bounded shutdown.
func Serve(ctx context.Context, logger *zap.Logger, cfg *Config, h http.Handler) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("listening on %s", cfg.Address),
			zap.String("op", "server.Serve"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}
