package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/zewedjobs/service-jobportal-go/internal/application"
	"github.com/zewedjobs/service-jobportal-go/internal/company"
	"github.com/zewedjobs/service-jobportal-go/internal/job"
	"github.com/zewedjobs/service-jobportal-go/internal/message"
	"github.com/zewedjobs/service-jobportal-go/internal/stats"
	"github.com/zewedjobs/service-jobportal-go/internal/user"
)

// Sender is the outbound half of the Telegram API, split out so scheduled
// tasks and tests can swap the transport.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Repos bundles the store-backed dependencies the bot handlers need.
type Repos struct {
	Users        *user.Repo
	Jobs         *job.Repo
	Companies    *company.Repo
	Applications *application.Repo
	Messages     *message.Repo
	Stats        *stats.Repo
}

// Bot routes Telegram commands and callback buttons to handlers. Handlers
// hold no state across invocations; everything they need rides on Repos.
type Bot struct {
	api    *tgbotapi.BotAPI
	sender Sender
	log    *zap.SugaredLogger
	admins AllowList
	repos  Repos
}

func New(token string, admins AllowList, repos Repos, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, sender: api, log: log, admins: admins, repos: repos}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.log.Infow("bot started", "username", b.api.Self.UserName)

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches one update, converting any panic into a logged
// error plus a formatted alert to every allow-listed admin. Delivery failures
// to individual admins are swallowed.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			var userID, chatID int64
			if u := update.SentFrom(); u != nil {
				userID = u.ID
			}
			if c := update.FromChat(); c != nil {
				chatID = c.ID
			}
			b.log.Errorw("update handler panicked", "err", r, "user", userID, "chat", chatID)
			b.alertAdmins(errorAlertText(r, userID, chatID, time.Now()))
		}
	}()

	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	from := msg.From
	if from == nil {
		return
	}
	fullName := from.FirstName
	if from.LastName != "" {
		fullName += " " + from.LastName
	}
	b.repos.Users.UpsertOnContact(ctx, from.ID, from.UserName, fullName)
	if u := b.repos.Users.GetByTelegramID(ctx, from.ID); u != nil {
		b.repos.Messages.Log(ctx, u.ID, msg.Text)
	}

	if !msg.IsCommand() {
		return
	}

	cmd := ParseCommand(msg.Command())
	if cmd.RequiresAdmin() && !b.admins.Allows(from.ID) {
		b.reply(msg.Chat.ID, accessDeniedText)
		return
	}

	switch cmd {
	case CmdStart:
		b.handleStart(msg)
	case CmdJobs:
		b.handleJobs(ctx, msg.Chat.ID)
	case CmdSearch:
		b.handleSearch(ctx, msg.Chat.ID, msg.CommandArguments())
	case CmdProfile:
		b.handleProfile(ctx, msg.Chat.ID, from.ID)
	case CmdAdmin:
		b.handleAdmin(ctx, msg.Chat.ID)
	case CmdHelp:
		b.reply(msg.Chat.ID, helpText)
	case CmdUnknown:
		b.reply(msg.Chat.ID, "🤔 Unknown command. Use /help to see what I can do.")
	}
}

func (b *Bot) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// acknowledge the button press regardless of outcome
	if _, err := b.sender.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.log.Debugw("callback ack failed", "err", err)
	}
	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID

	action, err := ParseAction(query.Data)
	if err != nil {
		b.log.Warnw("unknown callback token", "data", query.Data)
		return
	}
	if action.RequiresAdmin() && !b.admins.Allows(query.From.ID) {
		b.reply(chatID, accessDeniedText)
		return
	}

	switch action.Kind {
	case ActionBrowseJobs:
		b.handleJobs(ctx, chatID)
	case ActionCreateProfile:
		b.reply(chatID, createProfileText)
	case ActionEmployerInfo:
		b.reply(chatID, employerInfoText)
	case ActionStatistics:
		b.handleStatistics(ctx, chatID)
	case ActionViewJob:
		b.handleViewJob(ctx, chatID, action.ID)
	case ActionApplyJob:
		b.handleApplyJob(ctx, chatID, query.From.ID, action.ID)
	case ActionSaveJob:
		b.reply(chatID, "💾 Job saved. Use /jobs to keep browsing.")
	case ActionViewCompany:
		b.handleViewCompany(ctx, chatID, action.ID)
	case ActionSimilarJobs:
		b.handleSimilarJobs(ctx, chatID, action.ID)
	case ActionAdminUsers:
		b.handleAdminUsers(ctx, chatID)
	case ActionAdminJobs:
		b.reply(chatID, "💼 Job management is available on the web dashboard.")
	case ActionAdminCompanies:
		b.reply(chatID, "🏢 Company management is available on the web dashboard.")
	case ActionAdminBroadcast:
		b.reply(chatID, "📢 Broadcasts are sent from the web dashboard.")
	case ActionAdminBackup:
		b.reply(chatID, "💾 Backups are managed on the server, not from chat.")
	}
}

// reply sends a Markdown message; failures are logged, not raised.
func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.sender.Send(msg); err != nil {
		b.log.Errorw("send failed", "chat", chatID, "err", err)
	}
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = kb
	if _, err := b.sender.Send(msg); err != nil {
		b.log.Errorw("send failed", "chat", chatID, "err", err)
	}
}

// alertAdmins fans an alert out to every allow-listed admin, swallowing
// per-admin delivery failures.
func (b *Bot) alertAdmins(text string) {
	for id := range b.admins {
		msg := tgbotapi.NewMessage(id, text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		_, _ = b.sender.Send(msg)
	}
}
