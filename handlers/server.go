// Package handlers serves the deal checker web UI and its JSON API.
package handlers

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"deal-checker/i18n"
	"deal-checker/models"
	"deal-checker/services"
	"deal-checker/storage"
	"deal-checker/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Analyzer is the analysis service as seen by the handlers.
type Analyzer interface {
	Analyze(ctx context.Context, listingURL string) (*models.RawAnalysisReport, error)
	Ping(ctx context.Context) error
}

// Server wires the check flow to HTTP.
type Server struct {
	analyzer    Analyzer
	sessions    *services.SessionStore
	builder     *services.ReportBuilder
	archive     *storage.Archiver
	limiter     *ClientLimiter
	logger      *utils.Logger
	defaultLang string
	page        *template.Template
}

// Options configures a Server.
type Options struct {
	Analyzer    Analyzer
	Sessions    *services.SessionStore
	Archive     *storage.Archiver
	Limiter     *ClientLimiter
	Logger      *utils.Logger
	DefaultLang string
}

// NewServer parses the page template and returns a ready Server.
func NewServer(opts Options) *Server {
	funcs := template.FuncMap{"lower": strings.ToLower}
	page := template.Must(template.New("page.html").Funcs(funcs).ParseFS(templateFS, "templates/page.html"))

	if opts.Sessions == nil {
		opts.Sessions = services.NewSessionStore(time.Hour)
	}
	if opts.Limiter == nil {
		opts.Limiter = NewClientLimiter(1, 5)
	}

	return &Server{
		analyzer:    opts.Analyzer,
		sessions:    opts.Sessions,
		builder:     services.NewReportBuilder(opts.Logger),
		archive:     opts.Archive,
		limiter:     opts.Limiter,
		logger:      opts.Logger,
		defaultLang: i18n.Normalize(opts.DefaultLang),
		page:        page,
	}
}

// Routes returns the HTTP handler tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(s.recovery)
	r.Use(securityHeaders)

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(withSession)
		r.Get("/", s.handleIndex)
		r.With(s.limiter.Middleware).Post("/check", s.handleCheck)
	})

	r.With(s.limiter.Middleware).Post("/api/check", s.handleAPICheck)

	return r
}

// resolveLang picks the UI language: explicit ?lang (remembered in a
// cookie), then the cookie, then Accept-Language, then the default.
func (s *Server) resolveLang(w http.ResponseWriter, r *http.Request) string {
	if q := r.URL.Query().Get("lang"); q != "" {
		lang := i18n.Normalize(q)
		http.SetCookie(w, &http.Cookie{
			Name:     langCookie,
			Value:    lang,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return lang
	}
	if c, err := r.Cookie(langCookie); err == nil && i18n.IsSupported(c.Value) {
		return i18n.Normalize(c.Value)
	}
	return i18n.Negotiate(r.Header.Get("Accept-Language"), s.defaultLang)
}
