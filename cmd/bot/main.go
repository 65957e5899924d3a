package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/zewedjobs/service-jobportal-go/internal/application"
	"github.com/zewedjobs/service-jobportal-go/internal/bot"
	"github.com/zewedjobs/service-jobportal-go/internal/company"
	"github.com/zewedjobs/service-jobportal-go/internal/config"
	"github.com/zewedjobs/service-jobportal-go/internal/job"
	"github.com/zewedjobs/service-jobportal-go/internal/message"
	"github.com/zewedjobs/service-jobportal-go/internal/scheduler"
	"github.com/zewedjobs/service-jobportal-go/internal/stats"
	"github.com/zewedjobs/service-jobportal-go/internal/store"
	"github.com/zewedjobs/service-jobportal-go/internal/user"
	"github.com/zewedjobs/service-jobportal-go/pkg/database"
	"github.com/zewedjobs/service-jobportal-go/pkg/utilities"
)

func main() {
	// load .env file if present so os.Getenv picks values from it
	// this is best-effort: if no .env exists, continue (use defaults or real env)
	_ = godotenv.Load()

	// init logger
	lg, err := utilities.Init(utilities.ConfigFromEnv())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()

	sugar := lg.Sugar()
	sugar.Info("starting zewedjobs bot")

	cfg := config.FromEnv()
	if err := cfg.ValidateBot(); err != nil {
		sugar.Fatalf("config: %v", err)
	}

	// init db through the shared store
	st, err := store.Open(database.ConfigFromEnv(), sugar)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer st.Close()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := st.EnsureSchema(ctx); err != nil {
		sugar.Fatalf("schema: %v", err)
	}

	repos := bot.Repos{
		Users:        user.NewRepo(st),
		Jobs:         job.NewRepo(st),
		Companies:    company.NewRepo(st),
		Applications: application.NewRepo(st),
		Messages:     message.NewRepo(st),
		Stats:        stats.NewRepo(st),
	}

	b, err := bot.New(cfg.BotToken, bot.NewAllowList(cfg.AdminIDs), repos, sugar)
	if err != nil {
		sugar.Fatalf("telegram connect: %v", err)
	}

	sched := scheduler.New(clockwork.NewRealClock(), sugar)
	sched.Add(scheduler.Task{
		Name: "daily-job-alerts",
		Hour: cfg.AlertHour,
		Run:  b.SendDailyAlerts,
	})
	purgeDay := cfg.PurgeWeekday
	retention := time.Duration(cfg.RetentionDays) * 24 * time.Hour
	sched.Add(scheduler.Task{
		Name:    "expired-job-purge",
		Hour:    cfg.PurgeHour,
		Weekday: &purgeDay,
		Run: func(ctx context.Context, now time.Time) {
			n := repos.Jobs.PurgeExpired(ctx, retention, now)
			sugar.Infow("expired job purge finished", "deleted", n)
		},
	})
	sched.Start(ctx)

	sugar.Info("bot is running; press Ctrl+C to stop")

	b.Run(ctx)

	sugar.Info("goodbye")
}
