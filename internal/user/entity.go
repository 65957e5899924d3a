package user

import "time"

// User is a row in the users table, keyed externally by Telegram ID.
// Profile fields are nullable; they are filled in over time by the user.
type User struct {
	ID                   int64     `db:"id" json:"id"`
	TelegramID           int64     `db:"telegram_id" json:"telegram_id"`
	Username             *string   `db:"username" json:"username"`
	FullName             *string   `db:"full_name" json:"full_name"`
	Email                *string   `db:"email" json:"email"`
	Phone                *string   `db:"phone" json:"phone"`
	Profession           *string   `db:"profession" json:"profession"`
	Experience           *string   `db:"experience" json:"experience"`
	Education            *string   `db:"education" json:"education"`
	Skills               *string   `db:"skills" json:"skills"`
	UserType             string    `db:"user_type" json:"user_type"`
	Status               string    `db:"status" json:"status"`
	NotificationsEnabled bool      `db:"notifications_enabled" json:"notifications_enabled"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
	LastSeen             time.Time `db:"last_seen" json:"last_seen"`
}

// profileFields is the fixed set counted toward profile completion.
func (u *User) profileFields() []*string {
	return []*string{u.FullName, u.Email, u.Phone, u.Profession, u.Experience, u.Education, u.Skills}
}

// ProfileCompletion returns the completion percentage over the tracked
// profile fields, rounded to the nearest integer.
func (u *User) ProfileCompletion() int {
	fields := u.profileFields()
	completed := 0
	for _, f := range fields {
		if f != nil && *f != "" {
			completed++
		}
	}
	return int(float64(completed)/float64(len(fields))*100 + 0.5)
}
