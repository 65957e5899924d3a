package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zewedjobs/service-jobportal-go/internal/config"
	"github.com/zewedjobs/service-jobportal-go/internal/dashboard"
	"github.com/zewedjobs/service-jobportal-go/internal/job"
	"github.com/zewedjobs/service-jobportal-go/internal/message"
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
	sugar.Info("starting zewedjobs dashboard")

	cfg := config.FromEnv()

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

	creds := dashboard.Credentials{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Hash:     cfg.AdminPasswordHash,
	}
	sessions := dashboard.NewSessions(cfg.SessionSecret, 24*time.Hour)
	repos := dashboard.Repos{
		Users:    user.NewRepo(st),
		Jobs:     job.NewRepo(st),
		Messages: message.NewRepo(st),
		Stats:    stats.NewRepo(st),
	}

	server, err := dashboard.NewServer(creds, sessions, repos, sugar)
	if err != nil {
		sugar.Fatalf("dashboard setup: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.DashboardAddr,
		Handler: server.Routes(),
	}

	sugar.Infow("dashboard is running; press Ctrl+C to stop", "addr", cfg.DashboardAddr)

	// run server in background
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("shutting down")

	// give a short grace period for cleanup
	doneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
