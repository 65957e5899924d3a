package message

import (
	"context"

	"github.com/zewedjobs/service-jobportal-go/internal/store"
)

// Repo provides data access for the messages log.
type Repo struct {
	s *store.Store
}

func NewRepo(s *store.Store) *Repo { return &Repo{s: s} }

// Log appends one inbound message. userID is the internal user id, resolved
// from the telegram id by the caller; zero means unknown sender.
func (r *Repo) Log(ctx context.Context, userID int64, content string) bool {
	if userID == 0 {
		return r.s.Exec(ctx,
			`INSERT INTO messages (user_id, content, timestamp) VALUES (NULL, $1, NOW())`, content)
	}
	return r.s.Exec(ctx,
		`INSERT INTO messages (user_id, content, timestamp) VALUES ($1, $2, NOW())`, userID, content)
}

// RecentWithSender returns the latest messages joined with sender info.
func (r *Repo) RecentWithSender(ctx context.Context, limit int) []WithSender {
	const q = `SELECT m.id, m.user_id, m.content, m.timestamp, u.username, u.full_name
	FROM messages m
	LEFT JOIN users u ON m.user_id = u.id
	ORDER BY m.timestamp DESC LIMIT $1`
	var msgs []WithSender
	r.s.Select(ctx, &msgs, q, limit)
	return msgs
}
