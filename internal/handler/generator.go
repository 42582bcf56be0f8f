package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/passgen/internal/generator"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleClasses handles GET /api/v1/classes requests.
func (h *GeneratorHandler) HandleClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Classes())
}

func writeGenerateError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	slog.Error("password generation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	return errors.Is(err, generator.ErrEmptyLength) ||
		errors.Is(err, generator.ErrNoCharacterClassSelected) ||
		errors.Is(err, service.ErrLengthOutOfRange) ||
		errors.Is(err, service.ErrCountOutOfRange)
}
