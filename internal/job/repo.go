package job

import (
	"context"
	"fmt"
	"time"

	"github.com/zewedjobs/service-jobportal-go/internal/store"
)

// Repo provides data access for the jobs table.
type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo { return &Repo{s: s} }

const jobColumns = `j.id, j.title, j.description, j.requirements, j.company_id,
	j.location, j.category, j.job_type, j.experience_level, j.salary_min,
	j.salary_max, j.status, j.deadline, j.created_at, j.updated_at`

// visible gates every listing: only active jobs whose deadline has not passed.
const visible = `j.status = 'active' AND j.deadline >= CURRENT_DATE`

// ListActive returns visible jobs, newest first, optionally narrowed by
// category and location substring.
func (r *Repo) ListActive(ctx context.Context, limit int, category, location string) []Listing {
	q := `SELECT ` + jobColumns + `, c.name AS company_name, c.logo AS company_logo
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id
	WHERE ` + visible
	var args []any
	if category != "" {
		args = append(args, category)
		q += fmt.Sprintf(" AND j.category = $%d", len(args))
	}
	if location != "" {
		args = append(args, "%"+location+"%")
		q += fmt.Sprintf(" AND j.location ILIKE $%d", len(args))
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT $%d", len(args))

	var jobs []Listing
	r.s.Select(ctx, &jobs, q, args...)
	return jobs
}

// Search matches visible jobs whose title, description or location contains
// the keywords, newest first.
func (r *Repo) Search(ctx context.Context, keywords string, limit int) []Listing {
	q := `SELECT ` + jobColumns + `, c.name AS company_name, c.logo AS company_logo
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id
	WHERE ` + visible + `
	  AND (j.title ILIKE $1 OR j.description ILIKE $1 OR j.location ILIKE $1)
	ORDER BY j.created_at DESC LIMIT $2`
	pattern := "%" + keywords + "%"
	var jobs []Listing
	r.s.Select(ctx, &jobs, q, pattern, limit)
	return jobs
}

// GetDetails returns a job with the full company record, or nil when absent.
func (r *Repo) GetDetails(ctx context.Context, id int64) *Details {
	q := `SELECT ` + jobColumns + `, c.name AS company_name,
	  c.description AS company_description, c.email AS company_email,
	  c.website AS company_website
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id
	WHERE j.id = $1`
	var d Details
	if !r.s.Get(ctx, &d, q, id) {
		return nil
	}
	return &d
}

// Similar returns visible jobs in the same category as the given job,
// excluding the job itself.
func (r *Repo) Similar(ctx context.Context, id int64, limit int) []Listing {
	q := `SELECT ` + jobColumns + `, c.name AS company_name, c.logo AS company_logo
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id
	WHERE ` + visible + `
	  AND j.id <> $1
	  AND j.category = (SELECT category FROM jobs WHERE id = $1)
	ORDER BY j.created_at DESC LIMIT $2`
	var jobs []Listing
	r.s.Select(ctx, &jobs, q, id, limit)
	return jobs
}

// CreatedSince returns visible jobs created after the cutoff, for the digest.
func (r *Repo) CreatedSince(ctx context.Context, cutoff time.Time, limit int) []Listing {
	q := `SELECT ` + jobColumns + `, c.name AS company_name, c.logo AS company_logo
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id
	WHERE j.status = 'active' AND j.created_at >= $1
	ORDER BY j.created_at DESC LIMIT $2`
	var jobs []Listing
	r.s.Select(ctx, &jobs, q, cutoff, limit)
	return jobs
}

// Filter narrows the dashboard job listing.
type Filter struct {
	Status   string
	Category string
}

// List returns one filtered page for the dashboard, each row carrying its
// application count.
func (r *Repo) List(ctx context.Context, f Filter, limit, offset int) []AdminRow {
	q := `SELECT ` + jobColumns + `, c.name AS company_name,
	  (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS applications_count
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id
	WHERE 1=1`
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		q += fmt.Sprintf(" AND j.status = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		q += fmt.Sprintf(" AND j.category = $%d", len(args))
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY j.created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	var rows []AdminRow
	r.s.Select(ctx, &rows, q, args...)
	return rows
}

// ListRecent returns the latest jobs regardless of visibility, for the
// dashboard overview.
func (r *Repo) ListRecent(ctx context.Context, limit int) []Listing {
	q := `SELECT ` + jobColumns + `, c.name AS company_name, c.logo AS company_logo
	FROM jobs j
	LEFT JOIN companies c ON j.company_id = c.id
	ORDER BY j.created_at DESC LIMIT $1`
	var jobs []Listing
	r.s.Select(ctx, &jobs, q, limit)
	return jobs
}

// CountAll returns the unfiltered total, reported independently of any page.
func (r *Repo) CountAll(ctx context.Context) int64 {
	var n int64
	r.s.Get(ctx, &n, `SELECT COUNT(*) FROM jobs`)
	return n
}

// PurgeExpired deletes expired jobs not updated within the retention window.
// Rows with any other status are untouched regardless of age. Returns the
// number of rows deleted, -1 on store failure.
func (r *Repo) PurgeExpired(ctx context.Context, retention time.Duration, now time.Time) int64 {
	const q = `DELETE FROM jobs WHERE status = 'expired' AND updated_at < $1`
	return r.s.ExecRows(ctx, q, now.Add(-retention))
}
