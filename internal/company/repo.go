package company

import (
	"context"

	"github.com/zewedjobs/service-jobportal-go/internal/store"
)

// Repo provides data access for the companies table.
type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo { return &Repo{s: s} }

// GetByID returns the company or nil when absent.
func (r *Repo) GetByID(ctx context.Context, id int64) *Company {
	const q = `SELECT id, name, description, email, website, logo, status
	FROM companies WHERE id = $1`
	var c Company
	if !r.s.Get(ctx, &c, q, id) {
		return nil
	}
	return &c
}

// CountActive returns the number of active companies.
func (r *Repo) CountActive(ctx context.Context) int64 {
	var n int64
	r.s.Get(ctx, &n, `SELECT COUNT(*) FROM companies WHERE status = 'active'`)
	return n
}
