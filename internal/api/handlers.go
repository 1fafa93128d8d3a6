// Package api exposes the analysis engine over HTTP. It carries no engine
// logic of its own: requests are sanitized, handed to the engine, and the
// result is serialized back.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ignite/outreach-engine/internal/analyzer"
	"github.com/ignite/outreach-engine/internal/config"
	"github.com/ignite/outreach-engine/internal/optimizer"
	"github.com/ignite/outreach-engine/internal/pkg/logger"
	"github.com/ignite/outreach-engine/internal/sanitize"
	"github.com/ignite/outreach-engine/internal/storage"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	cfg       *config.Config
	optimizer *optimizer.Optimizer
	history   *storage.HistoryStore
}

// NewHandlers creates a new Handlers instance. history may be nil when the
// Redis store is disabled.
func NewHandlers(cfg *config.Config, opt *optimizer.Optimizer, history *storage.HistoryStore) *Handlers {
	return &Handlers{cfg: cfg, optimizer: opt, history: history}
}

// AnalyzeRequest is the request body for /api/analyze and /api/optimize.
type AnalyzeRequest struct {
	Subject   string                  `json:"subject"`
	Body      string                  `json:"body"`
	Recipient *analyzer.RecipientData `json:"recipient,omitempty"`
	ClientID  string                  `json:"clientId,omitempty"`
}

// AnalyzeResponse wraps the analysis with the sanitizer's verdicts.
type AnalyzeResponse struct {
	Analysis analyzer.ComprehensiveAnalysis `json:"analysis"`
	Subject  sanitize.Result                `json:"subjectValidation"`
	Body     sanitize.Result                `json:"bodyValidation"`
}

// HandleAnalyze runs the comprehensive analysis on a sanitized draft.
func (h *Handlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	subjectRes := sanitize.ContentWithLimit(req.Subject, h.cfg.Engine.MaxContentLength)
	bodyRes := sanitize.ContentWithLimit(req.Body, h.cfg.Engine.MaxContentLength)

	// An invalid draft gets a zeroed analysis; the sanitizer verdicts in the
	// response carry the reasons.
	var analysis analyzer.ComprehensiveAnalysis
	if subjectRes.IsValid && bodyRes.IsValid {
		analysis = analyzer.AnalyzeComprehensive(subjectRes.Sanitized, bodyRes.Sanitized, req.Recipient)
		h.recordHistory(r, req, analysis, len(req.Subject), len(req.Body))
	}

	logger.Info("analyze request served",
		"email_type", string(analysis.EmailType),
		"overall_score", analysis.OverallScore,
		"subject", req.Subject,
		"body", req.Body)

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		Analysis: analysis,
		Subject:  subjectRes,
		Body:     bodyRes,
	})
}

// HandleOptimize runs the safe optimizer, which includes the analysis.
func (h *Handlers) HandleOptimize(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	subjectRes := sanitize.ContentWithLimit(req.Subject, h.cfg.Engine.MaxContentLength)
	bodyRes := sanitize.ContentWithLimit(req.Body, h.cfg.Engine.MaxContentLength)

	result := h.optimizer.SafeOptimize(r.Context(), subjectRes.Sanitized, bodyRes.Sanitized, req.Recipient)

	h.recordHistory(r, req, result.Analysis, len(req.Subject), len(req.Body))

	respondJSON(w, http.StatusOK, result)
}

// HandleHistory lists recent analysis summaries for a client.
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		respondError(w, http.StatusServiceUnavailable, "history store is not configured")
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		respondError(w, http.StatusBadRequest, "clientId query parameter is required")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.history.List(r.Context(), clientID, limit)
	if err != nil {
		logger.Error("history lookup failed", "client_id", clientID, "error", err.Error())
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"clientId": clientID,
		"entries":  entries,
	})
}

// HandleHealth reports liveness plus the model configuration, without secrets.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"model": map[string]interface{}{
			"id":      h.cfg.Bedrock.ModelID,
			"region":  h.cfg.Bedrock.Region,
			"enabled": h.cfg.Bedrock.Enabled,
		},
	}

	if h.history != nil {
		if err := h.history.Ping(r.Context()); err != nil {
			health["history"] = "unreachable"
		} else {
			health["history"] = "ok"
		}
	} else {
		health["history"] = "disabled"
	}

	respondJSON(w, http.StatusOK, health)
}

func (h *Handlers) decodeDraft(w http.ResponseWriter, r *http.Request) (AnalyzeRequest, bool) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON request body")
		return req, false
	}
	return req, true
}

func (h *Handlers) recordHistory(r *http.Request, req AnalyzeRequest, analysis analyzer.ComprehensiveAnalysis, subjectLen, bodyLen int) {
	if h.history == nil || req.ClientID == "" {
		return
	}
	entry := storage.HistoryEntry{
		ID:           uuid.NewString(),
		AnalyzedAt:   time.Now().UTC(),
		EmailType:    string(analysis.EmailType),
		OverallScore: analysis.OverallScore,
		LetterGrade:  analysis.LetterGrade,
		SubjectLen:   subjectLen,
		BodyLen:      bodyLen,
	}
	if err := h.history.Record(r.Context(), req.ClientID, entry); err != nil {
		// History is best-effort; the analysis response is not blocked on it.
		logger.Warn("failed to record history", "client_id", req.ClientID, "error", err.Error())
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
