package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendDailyAlerts delivers the daily digest: jobs created within the last
// rolling day, one formatted message per opted-in user. Each send is
// independent; a delivery failure is logged and the loop moves on. The body
// takes the reference time so it can run under the scheduler's clock.
func (b *Bot) SendDailyAlerts(ctx context.Context, now time.Time) {
	users := b.repos.Users.OptedIn(ctx)
	if len(users) == 0 {
		return
	}
	jobs := b.repos.Jobs.CreatedSince(ctx, now.Add(-24*time.Hour), 5)
	if len(jobs) == 0 {
		return
	}

	text := digestText(jobs)
	sent := 0
	for _, u := range users {
		msg := tgbotapi.NewMessage(u.TelegramID, text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := b.sender.Send(msg); err != nil {
			b.log.Errorw("digest delivery failed", "telegram_id", u.TelegramID, "err", err)
			continue
		}
		sent++
	}
	b.log.Infow("daily alerts sent", "jobs", len(jobs), "recipients", sent, "opted_in", len(users))
}
