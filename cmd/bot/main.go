package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/raid-bot/internal/config"
	"github.com/diegoclair/raid-bot/internal/database"
	"github.com/diegoclair/raid-bot/internal/discord"
	"github.com/diegoclair/raid-bot/internal/domain"
	"github.com/diegoclair/raid-bot/internal/domain/service"
	"github.com/diegoclair/raid-bot/internal/gyms"
	"github.com/diegoclair/raid-bot/internal/handlers"
	"github.com/diegoclair/raid-bot/internal/logger"
	"github.com/diegoclair/raid-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat)

	if err := run(log, cfg); err != nil {
		log.Error("Bot stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(log *slog.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations completed successfully")

	dm := database.NewInstance(db)

	if cfg.GymsFile != "" {
		if _, _, err := gyms.LoadFile(ctx, log, dm, cfg.GymsFile); err != nil {
			return fmt.Errorf("failed to load gyms: %w", err)
		}
	}

	svc := service.NewInstance(log, dm, service.Config{
		DefaultDuration:   cfg.RaidDefaultDuration,
		SweepInterval:     cfg.RaidSweepInterval,
		ExpireOnStartTime: cfg.RaidExpireOnStart,
	})

	if err := svc.Sweeper.Start(); err != nil {
		return err
	}
	defer svc.Sweeper.Stop()

	g, ctx := errgroup.WithContext(ctx)

	if cfg.SlackEnabled() {
		slackClient := slack.New(cfg.SlackBotToken)
		svc.Raid.RegisterFactionResolver(domain.PlatformSlack, handlers.NewSlackFactionResolver(slackClient))

		handler := handlers.New(log, slackClient, svc.Raid, cfg.SlackSigningSecret)
		g.Go(func() error {
			return serveHTTP(ctx, log, cfg.Port, handler)
		})
	}

	if cfg.DiscordEnabled() {
		bot, err := discord.New(log, cfg.DiscordBotToken, svc.Raid)
		if err != nil {
			return err
		}
		svc.Raid.RegisterFactionResolver(domain.PlatformDiscord, bot.FactionResolver())

		g.Go(func() error {
			return bot.Run(ctx)
		})
	}

	return g.Wait()
}

func serveHTTP(ctx context.Context, log *slog.Logger, port string, handler *handlers.SlackHandler) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shut down server", slog.Any("error", err))
		}
	}()

	log.Info("Server starting", slog.String("port", port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
