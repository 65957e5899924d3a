package application

import (
	"context"

	"github.com/zewedjobs/service-jobportal-go/internal/store"
)

// Repo provides data access for the applications table.
type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo { return &Repo{s: s} }

// Create records a pending application. Duplicate applications are allowed;
// the portal surfaces them as-is.
func (r *Repo) Create(ctx context.Context, jobID, userID int64) bool {
	const q = `INSERT INTO applications (job_id, user_id, status, created_at)
	VALUES ($1, $2, 'pending', NOW())`
	return r.s.Exec(ctx, q, jobID, userID)
}

// CountForJob returns the number of applications for one job.
func (r *Repo) CountForJob(ctx context.Context, jobID int64) int64 {
	var n int64
	r.s.Get(ctx, &n, `SELECT COUNT(*) FROM applications WHERE job_id = $1`, jobID)
	return n
}

// CountByUser returns the number of applications a user has submitted.
func (r *Repo) CountByUser(ctx context.Context, userID int64) int64 {
	var n int64
	r.s.Get(ctx, &n, `SELECT COUNT(*) FROM applications WHERE user_id = $1`, userID)
	return n
}

// CountToday returns applications created today.
func (r *Repo) CountToday(ctx context.Context) int64 {
	var n int64
	r.s.Get(ctx, &n, `SELECT COUNT(*) FROM applications WHERE created_at::date = CURRENT_DATE`)
	return n
}

// CountByStatus returns the number of applications in the given status.
func (r *Repo) CountByStatus(ctx context.Context, status string) int64 {
	var n int64
	r.s.Get(ctx, &n, `SELECT COUNT(*) FROM applications WHERE status = $1`, status)
	return n
}
