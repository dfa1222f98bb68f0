package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

var errInvalidLimit = errors.New("limit must be a positive integer")

// ReportHandler serves stored alerts and block analyses, newest first.
type ReportHandler struct {
	reader Reader
	logger *zap.Logger
}

func NewReportHandler(reader Reader, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reader: reader, logger: logger.Named("report_handler")}
}

// Register mounts the reporting routes on router.
func (h *ReportHandler) Register(router *mux.Router) {
	router.HandleFunc("/alerts", h.Alerts).Methods(http.MethodGet)
	router.HandleFunc("/blocks", h.Blocks).Methods(http.MethodGet)
}

func (h *ReportHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	alerts, err := h.reader.Alerts(r.Context(), limit)
	if err != nil {
		h.logger.Error("read alerts", zap.Int64("limit", limit), zap.Error(err))
		respondError(w, "failed to read alerts", http.StatusInternalServerError)
		return
	}
	respondJSON(w, newAlertResponses(alerts))
}

func (h *ReportHandler) Blocks(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, err.Error(), http.StatusBadRequest)
		return
	}

	analyses, err := h.reader.BlockAnalyses(r.Context(), limit)
	if err != nil {
		h.logger.Error("read block analyses", zap.Int64("limit", limit), zap.Error(err))
		respondError(w, "failed to read block analyses", http.StatusInternalServerError)
		return
	}
	respondJSON(w, newBlockAnalysisResponses(analyses))
}

// parseLimit reads ?limit, clamping values above MaxLimit.
func parseLimit(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return DefaultLimit, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return 0, errInvalidLimit
	}
	return min(limit, MaxLimit), nil
}

func respondJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
