package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/omarshaarawi/spottergrid/internal/api/feed"
	"github.com/omarshaarawi/spottergrid/internal/board"
	"github.com/omarshaarawi/spottergrid/internal/bot"
	"github.com/omarshaarawi/spottergrid/internal/config"
	"github.com/omarshaarawi/spottergrid/internal/metrics"
	"github.com/omarshaarawi/spottergrid/internal/repository/memory"
	"github.com/omarshaarawi/spottergrid/internal/scheduler"
	"github.com/omarshaarawi/spottergrid/internal/server"
	"github.com/omarshaarawi/spottergrid/internal/service"
	"github.com/omarshaarawi/spottergrid/internal/teams"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file loaded", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	repo := memory.NewRepository()
	rec := metrics.NewRecorder()
	boardService := service.NewBoardService(board.NewPipeline(logger), teams.Default(), repo, rec).
		WithDefaultTeam(cfg.DefaultTeam)
	feedClient := feed.NewClient(cfg.Feed.Timeout)

	sched, err := scheduler.NewScheduler(boardService, cfg.Sessions.TTL, cfg.Sessions.PruneInterval)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.BotEnabled() {
		telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, boardService, feedClient)
		if err != nil {
			return err
		}

		go func() {
			if err := telegramBot.Start(ctx); err != nil {
				slog.Error("Error running telegram bot", "error", err)
			}
		}()

		if cfg.TelegramBot.ChatID != 0 {
			_ = telegramBot.SendMessage("🏈 SpotterGrid is online. Use /help to see available commands.")
		}
	} else {
		slog.Info("TELEGRAM_TOKEN not set, bot disabled")
	}

	err = server.New(boardService, rec).ListenAndServe(ctx, cfg.HTTP.Addr)
	slog.Info("Shutting down gracefully...")
	return err
}
