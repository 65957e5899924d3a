package dashboard

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/zewedjobs/service-jobportal-go/internal/job"
	"github.com/zewedjobs/service-jobportal-go/internal/message"
	"github.com/zewedjobs/service-jobportal-go/internal/stats"
	"github.com/zewedjobs/service-jobportal-go/internal/user"
)

//go:embed templates/*.html
var templateFS embed.FS

// Repos bundles the store-backed dependencies the dashboard needs.
type Repos struct {
	Users    *user.Repo
	Jobs     *job.Repo
	Messages *message.Repo
	Stats    *stats.Repo
}

// Server is the admin dashboard: server-side HTML pages plus JSON APIs, all
// behind the session cookie.
type Server struct {
	log      *zap.SugaredLogger
	sessions *Sessions
	creds    Credentials
	repos    Repos
	tmpl     *template.Template
}

func NewServer(creds Credentials, sessions *Sessions, repos Repos, log *zap.SugaredLogger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{log: log, sessions: sessions, creds: creds, repos: repos, tmpl: tmpl}, nil
}

// Routes mounts all handlers on a stdlib mux wrapped with the middleware
// chain. HTML routes and API routes get different unauthenticated behavior:
// a redirect to /login versus a 401 JSON body.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /logout", s.handleLogout)

	mux.HandleFunc("GET /dashboard", s.page(s.handleDashboard))
	mux.HandleFunc("GET /users", s.page(s.handleUsersPage))
	mux.HandleFunc("GET /jobs", s.page(s.handleJobsPage))
	mux.HandleFunc("GET /messages", s.page(s.handleMessagesPage))
	mux.HandleFunc("GET /settings", s.page(s.handleSettingsPage))

	mux.HandleFunc("GET /api/stats", s.api(s.handleAPIStats))
	mux.HandleFunc("GET /api/users", s.api(s.handleAPIUsers))
	mux.HandleFunc("GET /api/jobs", s.api(s.handleAPIJobs))
	mux.HandleFunc("GET /api/messages", s.api(s.handleAPIMessages))
	mux.HandleFunc("POST /api/broadcast", s.api(s.handleAPIBroadcast))

	return LoggingMiddleware(s.log)(SecurityHeadersMiddleware()(mux))
}

// page guards an HTML route: unauthenticated visitors are redirected to the
// login form.
func (s *Server) page(next func(w http.ResponseWriter, r *http.Request, username string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := s.sessions.usernameFromRequest(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next(w, r, username)
	}
}

// api guards a JSON route: unauthenticated callers get a 401 error body.
func (s *Server) api(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.sessions.usernameFromRequest(r); !ok {
			s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			return
		}
		next(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Errorw("template render failed", "template", name, "err", err)
	}
}
