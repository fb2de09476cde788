package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/essay-grader/internal/archive"
	"github.com/jonathan/essay-grader/internal/db"
	"github.com/jonathan/essay-grader/internal/pipeline"
	"github.com/jonathan/essay-grader/internal/types"
)

// maxBodyBytes bounds request bodies; essays are a few kilobytes.
const maxBodyBytes = 1 << 20

// SaveResultsResponse represents the response for /api/save-results
type SaveResultsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Path    string `json:"path"`
	ID      string `json:"id"`
}

// ListEssaysResponse represents the response for GET /api/essays
type ListEssaysResponse struct {
	Essays []db.EssayAnalysis `json:"essays"`
	Count  int                `json:"count"`
}

// decodeJSON reads a bounded JSON body into v, writing a 400 on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// handleAnalyzeText analyzes an essay and returns the report
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), &req)
	if err != nil {
		log.Printf("[analyze] request failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), errorMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeStream analyzes an essay and streams progress via SSE
func (s *Server) handleAnalyzeStream(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	// Reject invalid input before switching to an event stream.
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	analyzer := s.analyzer.WithProgress(func(event pipeline.ProgressEvent) {
		if err := sse.WriteEvent("step", event); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})

	report, err := analyzer.Analyze(r.Context(), &req)
	if err != nil {
		log.Printf("[analyze] streaming request failed: %v", err)
		sse.WriteError(errorMessage(err))
		return
	}

	sse.WriteComplete(report)
}

// handleSaveResults archives a finished analysis and stores it when a database is configured
func (s *Server) handleSaveResults(w http.ResponseWriter, r *http.Request) {
	var req types.SaveResultsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, errorMessage(err))
		return
	}

	report := req.EssayAnalysis
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		theme = report.Theme
	}

	dir, err := s.archive.Write(archive.Entry{
		ClassName:       req.StudentInfo.Class,
		Theme:           theme,
		StudentName:     req.StudentInfo.Name,
		TeacherComments: req.TeacherComments,
		Report:          report,
	})
	if err != nil {
		log.Printf("[save-results] archive failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Erro ao salvar resultados: "+err.Error())
		return
	}

	if s.store != nil {
		err := s.store.SaveAnalysis(r.Context(), &db.EssayAnalysis{
			ID:              report.ID,
			StudentName:     req.StudentInfo.Name,
			ClassName:       req.StudentInfo.Class,
			Theme:           theme,
			Title:           report.Title,
			Report:          report,
			TeacherComments: req.TeacherComments,
			ArchivePath:     dir,
		})
		if err != nil {
			log.Printf("[save-results] database save failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Erro ao salvar resultados: "+err.Error())
			return
		}
	}

	log.Printf("[save-results] saved analysis %s to %s", report.ID, dir)
	s.jsonResponse(w, http.StatusOK, SaveResultsResponse{
		Success: true,
		Message: "Resultados salvos com sucesso",
		Path:    dir,
		ID:      report.ID.String(),
	})
}

// handleGetEssay returns a stored analysis by ID
func (s *Server) handleGetEssay(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, HTTPStatus(ErrStoreUnavailable), errorMessage(ErrStoreUnavailable))
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid essay ID format")
		return
	}

	analysis, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if analysis == nil {
		s.errorResponse(w, http.StatusNotFound, "Essay not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleListEssays lists stored analyses, optionally filtered by class
func (s *Server) handleListEssays(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.errorResponse(w, HTTPStatus(ErrStoreUnavailable), errorMessage(ErrStoreUnavailable))
		return
	}

	filters := db.ListFilters{ClassName: r.URL.Query().Get("class")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		filters.Limit = limit
	}

	essays, err := s.store.ListAnalyses(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListEssaysResponse{Essays: essays, Count: len(essays)})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRoot identifies the API
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "API de Correção de Redações"})
}
