package stats

import (
	"context"
	"time"

	"github.com/zewedjobs/service-jobportal-go/internal/store"
)

// Repo bundles the aggregate queries behind the statistics surfaces (bot
// /admin and statistics replies, dashboard page, /api/stats).
type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo { return &Repo{s: s} }

// Overall is the all-time count block of /api/stats.
type Overall struct {
	TotalUsers        int64 `db:"total_users" json:"total_users"`
	JobSeekers        int64 `db:"job_seekers" json:"job_seekers"`
	Employers         int64 `db:"employers" json:"employers"`
	TotalJobs         int64 `db:"total_jobs" json:"total_jobs"`
	ActiveJobs        int64 `db:"active_jobs" json:"active_jobs"`
	TotalCompanies    int64 `db:"total_companies" json:"total_companies"`
	TotalApplications int64 `db:"total_applications" json:"total_applications"`
	TotalMessages     int64 `db:"total_messages" json:"total_messages"`
}

func (r *Repo) Overall(ctx context.Context) Overall {
	const q = `SELECT
	  (SELECT COUNT(*) FROM users) AS total_users,
	  (SELECT COUNT(*) FROM users WHERE user_type = 'job_seeker') AS job_seekers,
	  (SELECT COUNT(*) FROM users WHERE user_type = 'employer') AS employers,
	  (SELECT COUNT(*) FROM jobs) AS total_jobs,
	  (SELECT COUNT(*) FROM jobs WHERE status = 'active') AS active_jobs,
	  (SELECT COUNT(*) FROM companies) AS total_companies,
	  (SELECT COUNT(*) FROM applications) AS total_applications,
	  (SELECT COUNT(*) FROM messages) AS total_messages`
	var o Overall
	r.s.Get(ctx, &o, q)
	return o
}

// DailyPoint is one day of the 30-day series in /api/stats.
type DailyPoint struct {
	Date            time.Time `db:"date" json:"date"`
	NewUsers        int64     `db:"new_users" json:"new_users"`
	NewJobs         int64     `db:"new_jobs" json:"new_jobs"`
	NewApplications int64     `db:"new_applications" json:"new_applications"`
}

func (r *Repo) Daily(ctx context.Context, days int) []DailyPoint {
	const q = `SELECT d.date,
	  (SELECT COUNT(*) FROM users WHERE created_at::date = d.date) AS new_users,
	  (SELECT COUNT(*) FROM jobs WHERE created_at::date = d.date) AS new_jobs,
	  (SELECT COUNT(*) FROM applications WHERE created_at::date = d.date) AS new_applications
	FROM (
	  SELECT created_at::date AS date FROM users
	  WHERE created_at >= NOW() - make_interval(days => $1)
	  GROUP BY created_at::date
	) d
	ORDER BY d.date DESC LIMIT $2`
	var points []DailyPoint
	r.s.Select(ctx, &points, q, days, days)
	return points
}

// DashboardSummary is the stat-card block on the dashboard HTML page.
type DashboardSummary struct {
	TotalUsers        int64 `db:"total_users" json:"total_users"`
	NewUsersToday     int64 `db:"new_users_today" json:"new_users_today"`
	ActiveJobs        int64 `db:"active_jobs" json:"active_jobs"`
	TodayApplications int64 `db:"today_applications" json:"today_applications"`
	MessagesToday     int64 `db:"messages_today" json:"messages_today"`
	ActiveUsersToday  int64 `db:"active_users_today" json:"active_users_today"`
}

func (r *Repo) DashboardSummary(ctx context.Context) DashboardSummary {
	const q = `SELECT
	  (SELECT COUNT(*) FROM users) AS total_users,
	  (SELECT COUNT(*) FROM users WHERE created_at::date = CURRENT_DATE) AS new_users_today,
	  (SELECT COUNT(*) FROM jobs WHERE status = 'active') AS active_jobs,
	  (SELECT COUNT(*) FROM applications WHERE created_at::date = CURRENT_DATE) AS today_applications,
	  (SELECT COUNT(*) FROM messages WHERE timestamp::date = CURRENT_DATE) AS messages_today,
	  (SELECT COUNT(DISTINCT user_id) FROM messages WHERE timestamp::date = CURRENT_DATE) AS active_users_today`
	var s DashboardSummary
	r.s.Get(ctx, &s, q)
	return s
}

// GrowthPoint is one day of the user-growth chart.
type GrowthPoint struct {
	Date  time.Time `db:"date" json:"date"`
	Count int64     `db:"count" json:"count"`
}

func (r *Repo) UserGrowth(ctx context.Context, days int) []GrowthPoint {
	const q = `SELECT created_at::date AS date, COUNT(*) AS count
	FROM users
	WHERE created_at >= NOW() - make_interval(days => $1)
	GROUP BY created_at::date
	ORDER BY date`
	var points []GrowthPoint
	r.s.Select(ctx, &points, q, days)
	return points
}

// AdminSummary is the count block of the bot's /admin panel.
type AdminSummary struct {
	TotalUsers        int64 `db:"total_users" json:"total_users"`
	ActiveJobs        int64 `db:"active_jobs" json:"active_jobs"`
	ActiveCompanies   int64 `db:"active_companies" json:"active_companies"`
	TodayApplications int64 `db:"today_applications" json:"today_applications"`
}

func (r *Repo) AdminSummary(ctx context.Context) AdminSummary {
	const q = `SELECT
	  (SELECT COUNT(*) FROM users) AS total_users,
	  (SELECT COUNT(*) FROM jobs WHERE status = 'active') AS active_jobs,
	  (SELECT COUNT(*) FROM companies WHERE status = 'active') AS active_companies,
	  (SELECT COUNT(*) FROM applications WHERE created_at::date = CURRENT_DATE) AS today_applications`
	var s AdminSummary
	r.s.Get(ctx, &s, q)
	return s
}

// PortalSummary is the public statistics reply in the bot.
type PortalSummary struct {
	JobSeekers           int64 `db:"job_seekers" json:"job_seekers"`
	Employers            int64 `db:"employers" json:"employers"`
	ActiveJobs           int64 `db:"active_jobs" json:"active_jobs"`
	PendingApplications  int64 `db:"pending_applications" json:"pending_applications"`
	AcceptedApplications int64 `db:"accepted_applications" json:"accepted_applications"`
	Locations            int64 `db:"locations" json:"locations"`
}

func (r *Repo) PortalSummary(ctx context.Context) PortalSummary {
	const q = `SELECT
	  (SELECT COUNT(*) FROM users WHERE user_type = 'job_seeker') AS job_seekers,
	  (SELECT COUNT(*) FROM users WHERE user_type = 'employer') AS employers,
	  (SELECT COUNT(*) FROM jobs WHERE status = 'active') AS active_jobs,
	  (SELECT COUNT(*) FROM applications WHERE status = 'pending') AS pending_applications,
	  (SELECT COUNT(*) FROM applications WHERE status = 'accepted') AS accepted_applications,
	  (SELECT COUNT(DISTINCT location) FROM jobs WHERE status = 'active') AS locations`
	var s PortalSummary
	r.s.Get(ctx, &s, q)
	return s
}
