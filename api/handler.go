package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/yourusername/arpalette/core"
)

// maxBodyBytes caps a live-state write.
const maxBodyBytes = 64 << 10

// StateHost is what the handlers need from the host.
type StateHost interface {
	State() core.Document
	ApplyState(doc core.Document) (core.Document, []string)
	Info() core.Document
	ConfigInfo() []core.HelpEntry
	Save(ctx context.Context) error
}

// MetricsRecorder defines the interface for recording metrics
type MetricsRecorder interface {
	RecordStateRead()
	RecordStateWrite(fields []string)
}

// Handler serves the JSON state API
type Handler struct {
	host    StateHost
	metrics MetricsRecorder
	logger  *zap.Logger
}

// NewHandler creates a new API handler. metrics and logger may be nil.
func NewHandler(host StateHost, metrics MetricsRecorder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		host:    host,
		metrics: metrics,
		logger:  logger,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SaveResponse is returned by a successful configuration save
type SaveResponse struct {
	Saved bool `json:"saved"`
}

// Register mounts the handlers on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/json/state", h.State)
	mux.HandleFunc("/json/info", h.Info)
	mux.HandleFunc("/json/cfginfo", h.ConfigInfo)
	mux.HandleFunc("/cfg/save", h.SaveConfig)
}

// State handles GET and POST /json/state.
//
// GET returns the live state of every enabled module. POST merges the body
// into the live state and answers with the result; modules only change the
// keys present in the body.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if h.metrics != nil {
			h.metrics.RecordStateRead()
		}
		h.sendJSON(w, http.StatusOK, h.host.State())

	case http.MethodPost:
		var patch core.Document
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&patch); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.sendError(w, http.StatusRequestEntityTooLarge, "body_too_large", "State update exceeds size limit")
				return
			}
			h.sendError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
			return
		}
		if patch == nil {
			patch = core.Document{}
		}

		state, applied := h.host.ApplyState(patch)
		if h.metrics != nil {
			h.metrics.RecordStateWrite(applied)
		}
		h.sendJSON(w, http.StatusOK, state)

	default:
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET and POST requests are allowed")
	}
}

// Info handles GET /json/info
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET requests are allowed")
		return
	}
	h.sendJSON(w, http.StatusOK, h.host.Info())
}

// ConfigInfo handles GET /json/cfginfo
func (h *Handler) ConfigInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET requests are allowed")
		return
	}
	info := h.host.ConfigInfo()
	if info == nil {
		info = []core.HelpEntry{}
	}
	h.sendJSON(w, http.StatusOK, info)
}

// SaveConfig handles POST /cfg/save: persist the current values now
func (h *Handler) SaveConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only POST requests are allowed")
		return
	}
	if err := h.host.Save(r.Context()); err != nil {
		h.logger.Error("configuration save failed", zap.Error(err))
		h.sendError(w, http.StatusInternalServerError, "save_failed", "Configuration could not be saved")
		return
	}
	h.sendJSON(w, http.StatusOK, SaveResponse{Saved: true})
}

func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *Handler) sendError(w http.ResponseWriter, statusCode int, errorCode, message string) {
	h.sendJSON(w, statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}
