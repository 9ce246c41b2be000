// Package api exposes the statement analysis engine over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AbhishekSharmale/newexpense-sub001/internal/extractor"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/models"
	"github.com/AbhishekSharmale/newexpense-sub001/internal/parser"
)

// AnalyzeResponse is the JSON response from the analyze endpoint.
type AnalyzeResponse struct {
	Success      bool                 `json:"success"`
	RunID        string               `json:"runId,omitempty"`
	BankName     string               `json:"bankName,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	Summary      models.Summary       `json:"summary"`
	Diagnostics  *models.Diagnostics  `json:"diagnostics,omitempty"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	engine         *parser.Engine
	maxUploadBytes int64
	log            zerolog.Logger
}

// NewHandler creates a Handler around the given engine.
func NewHandler(engine *parser.Engine, maxUploadBytes int64, log zerolog.Logger) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 32 << 20
	}
	return &Handler{engine: engine, maxUploadBytes: maxUploadBytes, log: log}
}

// Health returns 200 if the service is alive.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Analyze accepts a bank statement upload and returns the
// reconstructed transactions plus summary. The statement text comes
// either from an uploaded PDF (form field "file") or, when the client
// extracted text itself, from the "extractedText" form value.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form", err.Error())
		return
	}

	rawText := strings.TrimSpace(r.FormValue("extractedText"))
	if rawText == "" {
		text, status, err := h.extractFromUpload(r)
		if err != nil {
			writeError(w, status, "extraction failed", err.Error())
			return
		}
		rawText = text
	}

	result, err := h.engine.Parse(r.Context(), rawText)
	if err != nil {
		if errors.Is(err, models.ErrEmptyInput) {
			writeError(w, http.StatusUnprocessableEntity, "empty statement", err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "parsing failed", err.Error())
		return
	}

	runID := uuid.NewString()
	h.log.Info().
		Str("run_id", runID).
		Str("bank", result.BankName).
		Int("transactions", len(result.Transactions)).
		Msg("statement analyzed")

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Success:      true,
		RunID:        runID,
		BankName:     result.BankName,
		Transactions: result.Transactions,
		Summary:      result.Summary,
		Diagnostics:  result.Diagnostics,
	})
}

// extractFromUpload saves the uploaded PDF to a temp file and runs
// text extraction on it.
func (h *Handler) extractFromUpload(r *http.Request) (string, int, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return "", http.StatusBadRequest, errors.New("no file uploaded; use form field 'file' or 'extractedText'")
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return "", http.StatusBadRequest, errors.New("only PDF files are supported")
	}

	tmp, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", http.StatusInternalServerError, fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		return "", http.StatusInternalServerError, fmt.Errorf("save upload: %w", err)
	}
	tmp.Close()

	text, err := extractor.ExtractText(tmp.Name())
	if err != nil {
		return "", http.StatusUnprocessableEntity, err
	}
	return text, http.StatusOK, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   message,
		Message: details,
	})
}
