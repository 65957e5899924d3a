package message

import "time"

// Message is one row of the append-only chat log used for dashboard analytics.
type Message struct {
	ID        int64     `db:"id" json:"id"`
	UserID    *int64    `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

// WithSender is a message joined with its sender for the dashboard feed.
type WithSender struct {
	Message
	Username *string `db:"username" json:"username"`
	FullName *string `db:"full_name" json:"full_name"`
}
