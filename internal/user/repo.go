package user

import (
	"context"
	"fmt"

	"github.com/zewedjobs/service-jobportal-go/internal/store"
)

// Repo provides data access for the users table.
type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo { return &Repo{s: s} }

const userColumns = `id, telegram_id, username, full_name, email, phone, profession,
	experience, education, skills, user_type, status, notifications_enabled,
	created_at, last_seen`

// GetByTelegramID returns the user or nil when absent (or on store failure).
func (r *Repo) GetByTelegramID(ctx context.Context, telegramID int64) *User {
	var u User
	q := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	if !r.s.Get(ctx, &u, q, telegramID) {
		return nil
	}
	return &u
}

// UpsertOnContact creates the user on first contact and touches last_seen on
// every repeat contact. New users start as active job seekers.
func (r *Repo) UpsertOnContact(ctx context.Context, telegramID int64, username, fullName string) bool {
	const q = `
	INSERT INTO users (telegram_id, username, full_name, user_type, status, created_at, last_seen)
	VALUES ($1, NULLIF($2,''), NULLIF($3,''), 'job_seeker', 'active', NOW(), NOW())
	ON CONFLICT (telegram_id) DO UPDATE SET last_seen = NOW()`
	return r.s.Exec(ctx, q, telegramID, username, fullName)
}

// ListRecent returns the most recently created users.
func (r *Repo) ListRecent(ctx context.Context, limit int) []User {
	var users []User
	q := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`
	r.s.Select(ctx, &users, q, limit)
	return users
}

// Filter narrows a paginated user listing.
type Filter struct {
	UserType string
	Status   string
}

// List returns one filtered page of users ordered by creation time.
func (r *Repo) List(ctx context.Context, f Filter, limit, offset int) []User {
	q := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	var args []any
	if f.UserType != "" {
		args = append(args, f.UserType)
		q += fmt.Sprintf(" AND user_type = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		q += fmt.Sprintf(" AND status = $%d", len(args))
	}
	args = append(args, limit)
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, offset)
	q += fmt.Sprintf(" OFFSET $%d", len(args))

	var users []User
	r.s.Select(ctx, &users, q, args...)
	return users
}

// CountAll returns the unfiltered total, reported independently of any page.
func (r *Repo) CountAll(ctx context.Context) int64 {
	var n int64
	r.s.Get(ctx, &n, `SELECT COUNT(*) FROM users`)
	return n
}

// OptedIn returns active users with notifications enabled, for the daily digest.
func (r *Repo) OptedIn(ctx context.Context) []User {
	var users []User
	q := `SELECT ` + userColumns + ` FROM users
	WHERE notifications_enabled AND status = 'active'`
	r.s.Select(ctx, &users, q)
	return users
}
