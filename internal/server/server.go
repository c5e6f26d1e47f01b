// Package server exposes the schedule engine and the profile store over a
// JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/canamort/mortgage-schedule/internal/engine"
	"github.com/canamort/mortgage-schedule/internal/profiles"
	"github.com/canamort/mortgage-schedule/pkg/constants"
	"github.com/canamort/mortgage-schedule/pkg/output"
	"github.com/canamort/mortgage-schedule/pkg/rates"
	"github.com/canamort/mortgage-schedule/pkg/validation"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	store       profiles.Store
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the schedule and
// profile API.
func NewHandler(logger *zap.Logger, store profiles.Store, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = profiles.NewMemoryStore()
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, store: store, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Schedule computation (JSON body or stored profile via query parameter)
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Profile store CRUD
	mux.HandleFunc("/api/profiles", h.handleProfiles)
	mux.HandleFunc("/api/profiles/", h.handleProfileByID)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type profileRequest struct {
	Name   string            `json:"name"`
	Params engine.Parameters `json:"params"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"
	start := time.Now()

	var params engine.Parameters
	switch r.Method {
	case http.MethodPost:
		if !h.decodeBody(w, r, &params, op) {
			return
		}
	case http.MethodGet:
		profileID := r.URL.Query().Get("profile")
		if profileID == "" {
			h.respondError(w, http.StatusBadRequest, "missing profile query parameter", op)
			return
		}
		profile, err := h.store.Get(r.Context(), profileID)
		if errors.Is(err, profiles.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, fmt.Sprintf("no profile with id %s", profileID), op)
			return
		}
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to load profile: %v", err), op)
			return
		}
		params = profile.Params
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if _, err := rates.ParseCadence(string(params.Cadence)); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	schedule, err := engine.Run(h.logger, params)
	if err != nil {
		status := http.StatusInternalServerError
		if validation.IsInvalidInput(err) {
			status = http.StatusBadRequest
		}
		h.respondError(w, status, err.Error(), op)
		return
	}

	h.logger.Debug("computed schedule",
		zap.String("op", op),
		zap.Int("payments", schedule.Summary.PaymentCount),
		zap.Duration("duration", time.Since(start)),
	)

	if r.URL.Query().Get("format") == constants.OutputFormatCSV {
		w.Header().Set("Content-Type", "text/csv")
		output.CsvFormat(w, schedule)
		return
	}
	h.writeJSON(w, http.StatusOK, schedule)
}

func (h *handler) handleProfiles(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProfiles"

	switch r.Method {
	case http.MethodGet:
		list, err := h.store.List(r.Context())
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to list profiles: %v", err), op)
			return
		}
		h.writeJSON(w, http.StatusOK, list)
	case http.MethodPost:
		var req profileRequest
		if !h.decodeBody(w, r, &req, op) {
			return
		}
		profile, err := h.store.Create(r.Context(), req.Name, req.Params)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create profile: %v", err), op)
			return
		}
		h.writeJSON(w, http.StatusCreated, profile)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleProfileByID(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProfileByID"

	id := strings.TrimPrefix(r.URL.Path, "/api/profiles/")
	if id == "" || strings.Contains(id, "/") {
		h.respondError(w, http.StatusNotFound, "not found", op)
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := h.store.Get(r.Context(), id)
		if !h.checkStoreError(w, err, id, op) {
			return
		}
		h.writeJSON(w, http.StatusOK, profile)
	case http.MethodPut:
		var req profileRequest
		if !h.decodeBody(w, r, &req, op) {
			return
		}
		profile, err := h.store.Update(r.Context(), id, req.Name, req.Params)
		if !h.checkStoreError(w, err, id, op) {
			return
		}
		h.writeJSON(w, http.StatusOK, profile)
	case http.MethodDelete:
		err := h.store.Delete(r.Context(), id)
		if !h.checkStoreError(w, err, id, op) {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

// decodeBody decodes a size-capped JSON request body into dst, responding
// with an error and returning false when decoding fails.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

// checkStoreError maps store errors onto responses; it returns true when
// err was nil and the caller should proceed.
func (h *handler) checkStoreError(w http.ResponseWriter, err error, id string, op string) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, profiles.ErrNotFound) {
		h.respondError(w, http.StatusNotFound, fmt.Sprintf("no profile with id %s", id), op)
		return false
	}
	h.respondError(w, http.StatusInternalServerError, err.Error(), op)
	return false
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
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
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
