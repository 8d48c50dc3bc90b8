package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/nao1215/pwmeter/internal/model"
)

// AnalyzeRequest is the body of POST /v1/analyze.
type AnalyzeRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GenerateResponse is the body returned by POST /v1/generate.
type GenerateResponse struct {
	Password string               `json:"password"`
	Analysis model.AnalysisResult `json:"analysis"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if status, err := s.decode(w, r, &req); err != nil {
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, s.engine.Analyze(req.Username, req.Password))
}

func (s *Server) handleGenerate(w http.ResponseWriter, _ *http.Request) {
	password := s.generator.Generate()
	writeJSON(w, http.StatusOK, GenerateResponse{
		Password: password,
		Analysis: s.engine.Analyze("", password),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode reads a JSON body into v and returns the HTTP status for failures:
// 413 for oversized bodies, 400 for anything malformed.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodySize)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return http.StatusRequestEntityTooLarge, errors.New("request body too large")
		case errors.Is(err, io.EOF):
			return http.StatusBadRequest, errors.New("request body is empty")
		default:
			return http.StatusBadRequest, errors.New("malformed JSON body")
		}
	}

	// Trailing data after the object is rejected.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return http.StatusRequestEntityTooLarge, errors.New("request body too large")
		}
		return http.StatusBadRequest, errors.New("request body must contain a single JSON object")
	}
	return http.StatusOK, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v) //nolint:errchkjson // response already started
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
