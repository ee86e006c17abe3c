package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"deal-checker/i18n"
	"deal-checker/models"
	"deal-checker/services"
)

type apiCheckRequest struct {
	URL  string `json:"url"`
	Lang string `json:"lang"`
}

type apiCheckResponse struct {
	Report          *models.NormalizedReport `json:"report"`
	DisplayEstimate string                   `json:"display_estimate"`
}

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleAPICheck is the stateless JSON variant of the check flow.
func (s *Server) handleAPICheck(w http.ResponseWriter, r *http.Request) {
	log := s.loggerFrom(r.Context())

	var req apiCheckRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "invalid JSON body"})
		return
	}
	lang := req.Lang
	if lang == "" {
		lang = i18n.Negotiate(r.Header.Get("Accept-Language"), s.defaultLang)
	}
	lang = i18n.Normalize(lang)
	ui := i18n.Lookup(lang)
	ref := strings.TrimSpace(req.URL)

	submit, err := services.ValidateListing(ref)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: ui.InvalidDomain})
		return
	}
	if !submit {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	raw, err := s.analyzer.Analyze(r.Context(), ref)
	if err != nil {
		log.Error("[api] Analysis of %s failed: %v", ref, err)
		writeJSON(w, http.StatusBadGateway, apiError{Error: ui.AnalysisFailed})
		return
	}
	if raw.Meta.URL == "" {
		raw.Meta.URL = ref
	}

	resp := apiCheckResponse{DisplayEstimate: services.Placeholder}
	if report := s.builder.Build(raw, lang); report != nil {
		resp.Report = report
		resp.DisplayEstimate = report.DisplayEstimate
		s.archive.Record(models.NewScan(ref, report))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := map[string]string{"status": "ok", "analyzer": "ok"}
	if err := s.analyzer.Ping(ctx); err != nil {
		status["analyzer"] = err.Error()
	}
	writeJSON(w, http.StatusOK, status)
}
