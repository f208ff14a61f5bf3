package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/kpi-dashboard/internal/config"
	"github.com/iwvelando/kpi-dashboard/internal/dashboard"
	"github.com/iwvelando/kpi-dashboard/internal/series"
	"github.com/iwvelando/kpi-dashboard/internal/session"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
	"github.com/iwvelando/kpi-dashboard/pkg/output"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger   *zap.Logger
	conf     *config.Configuration
	sessions *session.Store
	version  string
}

// NewHandler constructs the HTTP handler that serves the web UI and dashboard API.
func NewHandler(logger *zap.Logger, conf *config.Configuration, sessions *session.Store, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = config.Default()
	}
	if sessions == nil {
		sessions = session.NewStore(conf.Data.Seed, constants.DefaultMaxSessions)
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, conf: conf, sessions: sessions, version: trimmedVersion}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/dashboard", instrument("dashboard", h.handleDashboard))
	mux.HandleFunc("/api/regenerate", instrument("regenerate", h.handleRegenerate))
	mux.HandleFunc("/api/export.csv", instrument("export_csv", h.handleExportCSV))
	mux.HandleFunc("/api/export.xlsx", instrument("export_xlsx", h.handleExportXLSX))
	mux.HandleFunc("/api/version", instrument("version", h.handleVersion))
	mux.Handle("/metrics", promhttp.Handler())

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type dashboardResponse struct {
	*dashboard.View
	Windows  []windowOption `json:"windows"`
	CSV      string         `json:"csv"`
	Duration string         `json:"duration"`
}

type windowOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	id := h.sessionID(w, r)
	view, status, err := h.buildView(r, h.sessions.Seed(id))
	if err != nil {
		h.respondErrorWithOp(w, status, err.Error(), "server.handleDashboard")
		return
	}
	h.respondView(w, view, start, "server.handleDashboard")
}

func (h *handler) handleRegenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	id := h.sessionID(w, r)
	seed := h.sessions.Regenerate(id)
	regenerationsTotal.Inc()

	h.logger.Info("seed regenerated",
		zap.String("op", "server.handleRegenerate"),
		zap.Int64("seed", seed),
	)

	view, status, err := h.buildView(r, seed)
	if err != nil {
		h.respondErrorWithOp(w, status, err.Error(), "server.handleRegenerate")
		return
	}
	h.respondView(w, view, start, "server.handleRegenerate")
}

func (h *handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	view, status, err := h.buildView(r, h.sessions.Seed(h.sessionID(w, r)))
	if err != nil {
		h.respondErrorWithOp(w, status, err.Error(), "server.handleExportCSV")
		return
	}

	var buf bytes.Buffer
	if err := output.CsvFormat(&buf, view.Series); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export CSV: %v", err), "server.handleExportCSV")
		return
	}
	exportsTotal.WithLabelValues(constants.OutputFormatCSV).Inc()
	h.writeAttachment(w, "text/csv; charset=utf-8", constants.ExportFileCSV, buf.Bytes())
}

func (h *handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	view, status, err := h.buildView(r, h.sessions.Seed(h.sessionID(w, r)))
	if err != nil {
		h.respondErrorWithOp(w, status, err.Error(), "server.handleExportXLSX")
		return
	}

	var buf bytes.Buffer
	if err := output.XlsxFormat(&buf, view.Series); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export workbook: %v", err), "server.handleExportXLSX")
		return
	}
	exportsTotal.WithLabelValues(constants.OutputFormatXLSX).Inc()
	h.writeAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", constants.ExportFileXLSX, buf.Bytes())
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

// sessionID returns the caller's session id, issuing a cookie for new callers.
func (h *handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := h.sessions.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// buildView runs the pipeline for seed with the window from the query string,
// falling back to the configured window.
func (h *handler) buildView(r *http.Request, seed int64) (*dashboard.View, int, error) {
	req, err := h.conf.DashboardRequest(seed)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("invalid dashboard configuration: %w", err)
	}

	if label := r.URL.Query().Get("window"); label != "" {
		window, err := series.ParseWindow(label)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		req.Window = window
	}

	view, err := dashboard.Build(h.logger, req)
	if err != nil {
		if errors.Is(err, series.ErrInvalidSelection) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return view, http.StatusOK, nil
}

func (h *handler) respondView(w http.ResponseWriter, view *dashboard.View, start time.Time, op string) {
	csvText, err := output.CsvString(view.Series)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to export CSV: %v", err), op)
		return
	}
	elapsed := time.Since(start)

	response := dashboardResponse{
		View:     view,
		Windows:  windowOptions(),
		CSV:      csvText,
		Duration: elapsed.String(),
	}

	h.logger.Info("dashboard computed",
		zap.String("op", op),
		zap.Int64("seed", view.Seed),
		zap.String("window", view.Window),
		zap.Int("rows", len(view.Rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func windowOptions() []windowOption {
	windows := series.Windows()
	options := make([]windowOption, 0, len(windows))
	for _, window := range windows {
		options = append(options, windowOption{Value: window.String(), Label: window.Title()})
	}
	return options
}

func (h *handler) writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write attachment",
			zap.String("op", "server.writeAttachment"),
			zap.String("file", filename),
			zap.Error(err),
		)
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("dashboard request failed",
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
