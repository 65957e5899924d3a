package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/zewedjobs/service-jobportal-go/internal/job"
	"github.com/zewedjobs/service-jobportal-go/internal/user"
	"github.com/zewedjobs/service-jobportal-go/pkg/utilities"
)

// parsePage reads limit/offset query params with the dashboard defaults.
func parsePage(r *http.Request) (limit, offset int) {
	limit, offset = 100, 0
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > 500 {
		limit = 500
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v >= 0 {
		offset = v
	}
	return limit, offset
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"overall":   s.repos.Stats.Overall(ctx),
		"daily":     s.repos.Stats.Daily(ctx, 30),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleAPIUsers serves one filtered page plus an unfiltered total. The total
// comes from a second COUNT(*) query, so it is independent of limit, offset
// and filters.
func (s *Server) handleAPIUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := parsePage(r)
	filter := user.Filter{
		UserType: r.URL.Query().Get("type"),
		Status:   r.URL.Query().Get("status"),
	}
	page := s.repos.Users.List(ctx, filter, limit, offset)
	if page == nil {
		page = []user.User{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"users":  page,
		"total":  s.repos.Users.CountAll(ctx),
		"limit":  limit,
		"offset": offset,
	})
}

func (s *Server) handleAPIJobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit, offset := parsePage(r)
	filter := job.Filter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}
	page := s.repos.Jobs.List(ctx, filter, limit, offset)
	if page == nil {
		page = []job.AdminRow{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"jobs":   page,
		"total":  s.repos.Jobs.CountAll(ctx),
		"limit":  limit,
		"offset": offset,
	})
}

func (s *Server) handleAPIMessages(w http.ResponseWriter, r *http.Request) {
	msgs := s.repos.Messages.RecentWithSender(r.Context(), 100)
	s.writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

type broadcastRequest struct {
	Message string `json:"message"`
}

// handleAPIBroadcast accepts a broadcast message and only logs it; there is
// no fan-out delivery from the dashboard. Each accepted request gets a
// snowflake id so operators can correlate log lines.
func (s *Server) handleAPIBroadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message required"})
		return
	}
	id := utilities.NewBroadcastID()
	s.log.Infow("broadcast message accepted", "broadcast_id", id, "message", req.Message)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"id":        id,
		"message":   "Broadcast scheduled",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
