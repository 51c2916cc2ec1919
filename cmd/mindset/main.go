package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kalambet/mindset/internal/coach"
	"github.com/kalambet/mindset/internal/config"
	"github.com/kalambet/mindset/internal/inference"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:           "mindset",
	Short:         "Growth mindset coach powered by Hugging Face",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable colored and markdown-rendered output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(boostCmd)
	rootCmd.AddCommand(insightCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError("%v", err)
		os.Exit(1)
	}
}

// newCoach loads config, installs the logger and builds the coach. It fails
// with config.ErrMissingAPIKey before any client exists when no key is set.
// One-shot commands pass quiet to keep routine log lines off the terminal.
func newCoach(quiet bool) (*coach.Coach, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	level := cfg.Log.Level
	if quiet && !strings.EqualFold(level, "debug") {
		level = "error"
	}
	setupLogging(level)

	client := inference.NewClientWithURL(cfg.Inference.APIKey, cfg.Inference.URL)
	return coach.New(client), cfg, nil
}

func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

func writeLine(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
