package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/parceldesk/parceldesk/internal/core"
	"github.com/parceldesk/parceldesk/internal/csv"
	"github.com/parceldesk/parceldesk/internal/logging"
)

// handleHealth reports service liveness and the live session count.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": s.service.SessionCount(),
	})
}

// handleDownloadTemplate serves the canonical CSV template with sample rows.
func (s *Server) handleDownloadTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="parcel_import_template.csv"`)
	w.Write(csv.Template())
}

// handleCreateImport accepts a CSV file upload and opens a review session.
func (s *Server) handleCreateImport(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	state, err := s.service.Ingest(header.Filename, data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("import created",
		"import_id", state.SessionID,
		"file", state.FileName,
		"records", state.Summary.Total,
	)

	writeJSON(w, http.StatusCreated, state)
}

// handleGetImport returns the current state of a review session.
func (s *Server) handleGetImport(w http.ResponseWriter, r *http.Request) {
	importID := chi.URLParam(r, "importID")

	state, err := s.service.Get(importID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// handleUpdateRecord applies a partial edit to one record.
func (s *Server) handleUpdateRecord(w http.ResponseWriter, r *http.Request) {
	importID := chi.URLParam(r, "importID")
	recordID := chi.URLParam(r, "recordID")

	var edit core.RecordEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := s.service.UpdateRecord(importID, recordID, edit)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// handleRemoveRecord drops one record from the review session.
func (s *Server) handleRemoveRecord(w http.ResponseWriter, r *http.Request) {
	importID := chi.URLParam(r, "importID")
	recordID := chi.URLParam(r, "recordID")

	state, err := s.service.RemoveRecord(importID, recordID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// analyzeResponse pairs the AI report with the updated session state.
type analyzeResponse struct {
	Analysis *core.Analysis    `json:"analysis"`
	State    core.SessionState `json:"state"`
}

// handleAnalyze runs the AI quality review over a session's records.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	importID := chi.URLParam(r, "importID")

	analysis, state, err := s.service.Analyze(r.Context(), importID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("import analyzed",
		"import_id", importID,
		"corrections", len(analysis.Corrections),
	)

	writeJSON(w, http.StatusOK, analyzeResponse{Analysis: analysis, State: state})
}

// handleConfirm freezes the session into a shipment batch.
func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	importID := chi.URLParam(r, "importID")

	batch, err := s.service.Confirm(importID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("batch confirmed",
		"import_id", importID,
		"batch_id", batch.ID,
		"records", batch.Total,
	)

	writeJSON(w, http.StatusCreated, batch)
}

// respondError logs the error and maps core sentinel errors to HTTP
// statuses. Anything unmapped is treated as internal.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
	)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	writeError(w, status, message)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, core.ErrSessionNotFound), errors.Is(err, core.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrNoRecords):
		return http.StatusUnprocessableEntity
	case errors.Is(err, core.ErrSessionConfirmed), errors.Is(err, core.ErrBatchBlocked):
		return http.StatusConflict
	case errors.Is(err, core.ErrInvalidTier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
