package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/domain/homework"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	"homework_notification_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		once    bool
		envFile string
	)

	cmd := &cobra.Command{
		Use:           "homework-bot",
		Short:         "Notify a Telegram chat when a Practicum homework review status changes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, envFile, once)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run a single poll cycle and exit")
	cmd.Flags().StringVar(&envFile, "env-file", "", "path to a .env file (default: .env in the working directory)")
	return cmd
}

func run(ctx context.Context, envFile string, once bool) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		return err
	}
	if err := logger.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not initialize logger: %v\n", err)
		return err
	}
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":     cfg.LogLevel,
		"environment":   cfg.Environment,
		"poll_interval": cfg.PollInterval.String(),
	}).Info("Configuration loaded")

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramAPIURL, nil, false)
	if err != nil {
		mainLogger.WithError(err).Error("Could not create Telegram bot")
		return err
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.ChatID, cfg.AdminChatID, logger.Component("notifier"))

	apiClient := practicum.NewClient(nil, cfg.Endpoint, cfg.PracticumToken)
	pollService := app.NewPollService(apiClient, notifier, homework.CursorAt(time.Now()), logger.Component("poller"))

	if once {
		mainLogger.Info("Running a single poll cycle")
		return pollService.RunCycle(ctx)
	}

	pollScheduler := scheduler.NewPollScheduler(pollService, cfg.PollInterval, logger.Component("scheduler"))
	pollScheduler.Start()
	mainLogger.Info("Application setup complete. Polling started.")

	<-ctx.Done() // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	pollScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
	return nil
}
