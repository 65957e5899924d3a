package dashboard

import (
	"net/http"

	"github.com/zewedjobs/service-jobportal-go/internal/job"
	"github.com/zewedjobs/service-jobportal-go/internal/stats"
	"github.com/zewedjobs/service-jobportal-go/internal/user"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessions.usernameFromRequest(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

type loginData struct {
	Error string
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login.html", loginData{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.render(w, "login.html", loginData{Error: "Invalid form submission"})
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if !s.creds.Match(username, password) {
		s.log.Warnw("login rejected", "username", username)
		s.render(w, "login.html", loginData{Error: "Invalid username or password"})
		return
	}

	token, err := s.sessions.Issue(username)
	if err != nil {
		s.log.Errorw("session issue failed", "err", err)
		s.render(w, "login.html", loginData{Error: "Could not start a session"})
		return
	}
	s.sessions.SetCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.ClearCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

type dashboardData struct {
	Username    string
	Stats       stats.DashboardSummary
	RecentUsers []user.User
	RecentJobs  []job.Listing
	UserGrowth  []stats.GrowthPoint
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request, username string) {
	ctx := r.Context()
	s.render(w, "dashboard.html", dashboardData{
		Username:    username,
		Stats:       s.repos.Stats.DashboardSummary(ctx),
		RecentUsers: s.repos.Users.ListRecent(ctx, 10),
		RecentJobs:  s.repos.Jobs.ListRecent(ctx, 10),
		UserGrowth:  s.repos.Stats.UserGrowth(ctx, 7),
	})
}

type pageData struct {
	Username string
}

func (s *Server) handleUsersPage(w http.ResponseWriter, r *http.Request, username string) {
	s.render(w, "users.html", pageData{Username: username})
}

func (s *Server) handleJobsPage(w http.ResponseWriter, r *http.Request, username string) {
	s.render(w, "jobs.html", pageData{Username: username})
}

func (s *Server) handleMessagesPage(w http.ResponseWriter, r *http.Request, username string) {
	s.render(w, "messages.html", pageData{Username: username})
}

func (s *Server) handleSettingsPage(w http.ResponseWriter, r *http.Request, username string) {
	s.render(w, "settings.html", pageData{Username: username})
}
