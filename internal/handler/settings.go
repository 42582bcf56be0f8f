package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// SettingsHandler serves a profile's stored generator settings.
type SettingsHandler struct {
	settings  *service.SettingsService
	generator *service.GeneratorService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settings *service.SettingsService, gen *service.GeneratorService) *SettingsHandler {
	return &SettingsHandler{settings: settings, generator: gen}
}

// HandleGet handles GET /api/v1/settings requests.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	st, err := h.settings.Get(r.Context(), id)
	if err != nil {
		slog.Error("loading settings failed", "profile_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, st)
}

// HandlePut handles PUT /api/v1/settings requests.
func (h *SettingsHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var st model.Settings
	if !decodeBody(w, r, &st, false) {
		return
	}

	saved, err := h.settings.Update(r.Context(), id, st)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLengthOutOfRange),
			errors.Is(err, service.ErrInvalidAppearance),
			errors.Is(err, service.ErrInvalidScaling):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("saving settings failed", "profile_id", id, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// HandleGenerate handles POST /api/v1/settings/generate?count=N requests.
func (h *SettingsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.ProfileIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	count := 1
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("count must be an integer"))
			return
		}
		count = n
	}

	st, err := h.settings.Get(r.Context(), id)
	if err != nil {
		slog.Error("loading settings failed", "profile_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	resp, err := h.generator.GenerateFromSettings(st, count)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
