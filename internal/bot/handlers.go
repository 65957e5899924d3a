package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (b *Bot) handleStart(msg *tgbotapi.Message) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Browse Jobs", Action{Kind: ActionBrowseJobs}.Token()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Create Profile", Action{Kind: ActionCreateProfile}.Token()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💼 For Employers", Action{Kind: ActionEmployerInfo}.Token()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 View Statistics", Action{Kind: ActionStatistics}.Token()),
		),
	)
	b.replyWithKeyboard(msg.Chat.ID, welcomeText(msg.From.FirstName), kb)
}

func (b *Bot) handleJobs(ctx context.Context, chatID int64) {
	jobs := b.repos.Jobs.ListActive(ctx, 5, "", "")
	if len(jobs) == 0 {
		b.reply(chatID, "📭 No jobs available at the moment. Check back later!")
		return
	}
	for _, l := range jobs {
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📄 View Details", Action{Kind: ActionViewJob, ID: l.ID}.Token()),
				tgbotapi.NewInlineKeyboardButtonData("📝 Apply Now", Action{Kind: ActionApplyJob, ID: l.ID}.Token()),
			),
		)
		b.replyWithKeyboard(chatID, jobCardText(l), kb)
	}
}

func (b *Bot) handleSearch(ctx context.Context, chatID int64, keywords string) {
	if keywords == "" {
		b.reply(chatID, "🔍 *Search Jobs*\n\n"+
			"Please specify search keywords:\n"+
			"Example: `/search software engineer addis ababa`\n"+
			"Example: `/search marketing remote`")
		return
	}
	jobs := b.repos.Jobs.Search(ctx, keywords, 10)
	if len(jobs) == 0 {
		b.reply(chatID, fmt.Sprintf("❌ No jobs found for: *%s*\n\nTry different keywords or check back later.", keywords))
		return
	}
	b.reply(chatID, fmt.Sprintf("🔍 Found *%d* jobs for: *%s*", len(jobs), keywords))
	for _, l := range jobs {
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("View Details", Action{Kind: ActionViewJob, ID: l.ID}.Token()),
				tgbotapi.NewInlineKeyboardButtonData("Apply", Action{Kind: ActionApplyJob, ID: l.ID}.Token()),
			),
		)
		b.replyWithKeyboard(chatID, searchResultText(l), kb)
	}
}

func (b *Bot) handleProfile(ctx context.Context, chatID, telegramID int64) {
	u := b.repos.Users.GetByTelegramID(ctx, telegramID)
	if u == nil {
		b.reply(chatID, "👤 *Profile Not Found*\n\nPlease use /start to create your profile first.")
		return
	}
	applications := b.repos.Applications.CountByUser(ctx, u.ID)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Edit Profile", Action{Kind: ActionCreateProfile}.Token()),
		),
	)
	b.replyWithKeyboard(chatID, profileText(*u, applications), kb)
}

func (b *Bot) handleAdmin(ctx context.Context, chatID int64) {
	summary := b.repos.Stats.AdminSummary(ctx)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👥 Users", Action{Kind: ActionAdminUsers}.Token()),
			tgbotapi.NewInlineKeyboardButtonData("💼 Jobs", Action{Kind: ActionAdminJobs}.Token()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏢 Companies", Action{Kind: ActionAdminCompanies}.Token()),
			tgbotapi.NewInlineKeyboardButtonData("📢 Broadcast", Action{Kind: ActionAdminBroadcast}.Token()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💾 Backup", Action{Kind: ActionAdminBackup}.Token()),
		),
	)
	b.replyWithKeyboard(chatID, adminPanelText(summary), kb)
}

func (b *Bot) handleStatistics(ctx context.Context, chatID int64) {
	b.reply(chatID, portalStatsText(b.repos.Stats.PortalSummary(ctx)))
}

func (b *Bot) handleViewJob(ctx context.Context, chatID, jobID int64) {
	d := b.repos.Jobs.GetDetails(ctx, jobID)
	if d == nil {
		b.reply(chatID, "❌ Job not found.")
		return
	}
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Apply Now", Action{Kind: ActionApplyJob, ID: d.ID}.Token()),
			tgbotapi.NewInlineKeyboardButtonData("💾 Save Job", Action{Kind: ActionSaveJob, ID: d.ID}.Token()),
		),
	}
	second := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🔍 Similar Jobs", Action{Kind: ActionSimilarJobs, ID: d.ID}.Token()),
	}
	if d.CompanyID != nil {
		second = append([]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🏢 View Company", Action{Kind: ActionViewCompany, ID: *d.CompanyID}.Token()),
		}, second...)
	}
	rows = append(rows, second, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to Jobs", Action{Kind: ActionBrowseJobs}.Token()),
	))
	b.replyWithKeyboard(chatID, jobDetailsText(*d), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleApplyJob(ctx context.Context, chatID, telegramID, jobID int64) {
	u := b.repos.Users.GetByTelegramID(ctx, telegramID)
	if u == nil {
		b.reply(chatID, "👤 Please use /start first so we know who is applying.")
		return
	}
	d := b.repos.Jobs.GetDetails(ctx, jobID)
	if d == nil {
		b.reply(chatID, "❌ Job not found.")
		return
	}
	if !b.repos.Applications.Create(ctx, jobID, u.ID) {
		b.reply(chatID, "⚠️ Could not submit your application right now. Please try again later.")
		return
	}
	b.reply(chatID, fmt.Sprintf("✅ Application submitted for *%s*!\n\nThe employer will review it shortly. Track it from /profile.", d.Title))
}

func (b *Bot) handleViewCompany(ctx context.Context, chatID, companyID int64) {
	c := b.repos.Companies.GetByID(ctx, companyID)
	if c == nil {
		b.reply(chatID, "❌ Company not found.")
		return
	}
	b.reply(chatID, fmt.Sprintf(`🏢 *%s*

%s

📧 *Contact:* %s
🌐 *Website:* %s`,
		c.Name, orNA(c.Description), orNA(c.Email), orNA(c.Website)))
}

func (b *Bot) handleSimilarJobs(ctx context.Context, chatID, jobID int64) {
	jobs := b.repos.Jobs.Similar(ctx, jobID, 5)
	if len(jobs) == 0 {
		b.reply(chatID, "📭 No similar jobs found right now.")
		return
	}
	for _, l := range jobs {
		kb := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("View Details", Action{Kind: ActionViewJob, ID: l.ID}.Token()),
				tgbotapi.NewInlineKeyboardButtonData("Apply", Action{Kind: ActionApplyJob, ID: l.ID}.Token()),
			),
		)
		b.replyWithKeyboard(chatID, searchResultText(l), kb)
	}
}

func (b *Bot) handleAdminUsers(ctx context.Context, chatID int64) {
	users := b.repos.Users.ListRecent(ctx, 10)
	if len(users) == 0 {
		b.reply(chatID, "📭 No users found.")
		return
	}
	b.reply(chatID, adminUsersText(users))
}
