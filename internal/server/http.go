package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"inode-msd/internal/logging"
	"inode-msd/msd"
)

// maxPayloadBytes bounds the request body; MSD payloads are tens of
// bytes, so even a generous hex dump with separators stays well under
// this.
const maxPayloadBytes = 4096

type errorResponse struct {
	Error string `json:"error"`
}

type modelInfo struct {
	Model byte   `json:"model"`
	Label string `json:"label"`
}

// handleDecode decodes one hex-encoded MSD payload from the request
// body and responds with the JSON record.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read request body"})
		return
	}

	data, err := msd.ParseHex(string(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	logging.LogPayload("decode request", data)

	rec, err := msd.Decode(data)
	if err != nil {
		var unknownErr *msd.UnknownModelError
		if errors.As(err, &unknownErr) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	logging.Debug("Payload decoded",
		zap.String("remote_addr", r.RemoteAddr),
		zap.String("record", rec.String()),
	)
	writeJSON(w, http.StatusOK, rec)
}

// handleModels lists the registered device models.
func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	models := msd.Models()
	infos := make([]modelInfo, 0, len(models))
	for _, m := range models {
		infos = append(infos, modelInfo{Model: byte(m), Label: m.String()})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response", zap.Error(err))
	}
}
