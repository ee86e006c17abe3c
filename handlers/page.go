package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"deal-checker/i18n"
	"deal-checker/models"
	"deal-checker/services"
)

type pageData struct {
	Lang       string
	OtherLang  string
	UI         *i18n.Strings
	URL        string
	Error      string
	Report     *models.NormalizedReport
	NoAnalysis bool
}

func otherLang(lang string) string {
	if lang == "de" {
		return "en"
	}
	return "de"
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.OtherLang = otherLang(data.Lang)
	data.UI = i18n.Lookup(data.Lang)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.page.Execute(w, data); err != nil {
		s.loggerFrom(r.Context()).Capture(err, "[page] Template execution failed")
	}
}

// handleIndex renders the form and, when one is held, the current report.
// The report is rebuilt on every render so a language switch applies to it.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	lang := s.resolveLang(w, r)
	raw := s.sessions.Current(sessionFrom(r.Context()))

	data := pageData{Lang: lang}
	if raw != nil {
		data.Report = s.builder.Build(raw, lang)
		data.NoAnalysis = data.Report == nil
		data.URL = raw.Meta.URL
	}
	s.render(w, r, http.StatusOK, data)
}

// handleCheck validates the submitted listing, calls the analysis service
// and redirects back to the index on success.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	log := s.loggerFrom(r.Context())
	lang := s.resolveLang(w, r)
	sessionID := sessionFrom(r.Context())
	ref := strings.TrimSpace(r.FormValue("url"))

	submit, err := services.ValidateListing(ref)
	if err != nil {
		log.Info("[check] Rejected listing %q: %v", ref, err)
		data := pageData{Lang: lang, URL: ref, Error: i18n.Lookup(lang).InvalidDomain}
		if raw := s.sessions.Current(sessionID); raw != nil {
			data.Report = s.builder.Build(raw, lang)
		}
		s.render(w, r, http.StatusUnprocessableEntity, data)
		return
	}
	if !submit {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx, gen := s.sessions.Begin(r.Context(), sessionID)
	log.Info("[check] Analyzing %s (generation %d)", ref, gen)

	raw, err := s.analyzer.Analyze(ctx, ref)
	if err != nil {
		if errors.Is(err, context.Canceled) && !s.sessions.Latest(sessionID, gen) {
			log.Info("[check] Generation %d superseded by a newer submission", gen)
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.sessions.Fail(sessionID, gen)
		log.Error("[check] Analysis of %s failed: %v", ref, err)
		s.render(w, r, http.StatusBadGateway, pageData{Lang: lang, URL: ref, Error: i18n.Lookup(lang).AnalysisFailed})
		return
	}

	if raw.Meta.URL == "" {
		raw.Meta.URL = ref
	}
	if !s.sessions.Commit(sessionID, gen, raw) {
		log.Info("[check] Dropping stale result of generation %d", gen)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if report := s.builder.Build(raw, lang); report != nil {
		s.archive.Record(models.NewScan(ref, report))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
