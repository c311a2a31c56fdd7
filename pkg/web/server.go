// Package web serves the annotation team's browser UI: login, the record
// editor, export and user management. Every action runs request/response
// against the shared store; the only state outside it is the session table.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/qazaqnlp/qural/pkg/auth"
	"github.com/qazaqnlp/qural/pkg/export"
	"github.com/qazaqnlp/qural/pkg/storage"
	"github.com/rs/zerolog"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookie = "qural_session"

// maxSteps caps the step editor; nobody annotates hundred-step dialogues.
const maxSteps = 20

type Server struct {
	store     storage.Storage
	auth      *auth.Service
	sessions  *auth.Sessions
	exporter  *export.Exporter
	logger    zerolog.Logger
	validator *validator.Validate
	tmpl      *template.Template
	adminUser string
}

func NewServer(store storage.Storage, authSvc *auth.Service, logger zerolog.Logger, adminUser string) (*Server, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"contains": containsString,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Server{
		store:     store,
		auth:      authSvc,
		sessions:  auth.NewSessions(),
		exporter:  export.NewExporter(store, logger),
		logger:    logger.With().Str("component", "web").Logger(),
		validator: validator.New(),
		tmpl:      tmpl,
		adminUser: adminUser,
	}, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// Handler wires the routes. Everything except /login requires a session.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /login", s.loginPage)
	mux.HandleFunc("POST /login", s.login)
	mux.HandleFunc("POST /logout", s.logout)

	mux.HandleFunc("GET /{$}", s.requireAuth(s.annotatePage))
	mux.HandleFunc("POST /annotations", s.requireAuth(s.annotateAction))

	mux.HandleFunc("GET /export", s.requireAuth(s.exportPage))
	mux.HandleFunc("POST /export/generate", s.requireAuth(s.exportGenerate))
	mux.HandleFunc("GET /export/file", s.requireAuth(s.exportFile))

	mux.HandleFunc("GET /users", s.requireAuth(s.usersPage))
	mux.HandleFunc("POST /users", s.requireAuth(s.userCreate))
	mux.HandleFunc("POST /users/password", s.requireAuth(s.userPassword))

	return mux
}

type authedHandler func(w http.ResponseWriter, r *http.Request, username string)

func (s *Server) requireAuth(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		username, ok := s.sessions.Lookup(cookie.Value)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r, username)
	}
}

func (s *Server) isAdmin(username string) bool {
	return username == s.adminUser
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("render failed")
	}
}
