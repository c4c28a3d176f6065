package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"bannergen/internal/adapters/bannerbear"
	"bannergen/internal/adapters/downloader"
	"bannergen/internal/adapters/localstorage"
	"bannergen/internal/campaign"
	"bannergen/internal/config"
	"bannergen/internal/platform/logger"
	"bannergen/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bannergen: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "bannergen",
		Usage: "Render the campaign's Bannerbear templates and download the images",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env",
				Usage: "Path to an env file to load",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Aliases: []string{"o"},
				Usage:   "Directory for images and reports",
			},
			&cli.StringFlag{
				Name:  "report",
				Usage: "File name of the URL report",
			},
			&cli.DurationFlag{
				Name:  "poll-interval",
				Usage: "Wait between status checks",
			},
			&cli.IntFlag{
				Name:  "max-attempts",
				Usage: "Status checks before giving up on an image",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (pretty, json)",
			},
			&cli.BoolFlag{
				Name:    "no-progress",
				Usage:   "Disable the progress bar",
				Sources: cli.EnvVars("BANNERGEN_NO_PROGRESS"),
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("env"))
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)
	if err != nil {
		return err
	}

	renderer, err := bannerbear.NewClient(bannerbear.Options{
		APIKey:       cfg.APIKey,
		BaseURL:      cfg.BaseURL,
		PollInterval: cfg.PollInterval,
		MaxAttempts:  cfg.MaxAttempts,
		Timeout:      cfg.HTTPTimeout,
	}, log)
	if err != nil {
		return err
	}

	opts := service.Options{
		ReportFile:   cfg.ReportFile,
		ManifestFile: cfg.ManifestFile,
		Out:          os.Stdout,
		Progress:     progressWriter(cmd),
	}

	orchestrator := service.NewOrchestrator(
		renderer,
		downloader.NewHTTPDownloader(cfg.HTTPTimeout, log),
		localstorage.NewLocalStorage(cfg.OutputDir),
		log,
		opts,
	)

	result, err := orchestrator.Run(ctx, campaign.JVRoofing())
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", result.RunID).
		Int("succeeded", len(result.Succeeded())).
		Int("total", len(result.Results)).
		Msg("done")
	return nil
}

// progressWriter returns where the progress bar goes, or nil when it is off.
func progressWriter(cmd *cli.Command) io.Writer {
	if cmd.Bool("no-progress") {
		return nil
	}
	return os.Stderr
}

// applyFlags lets explicitly set flags override file and environment config.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("output-dir") {
		cfg.OutputDir = cmd.String("output-dir")
	}
	if cmd.IsSet("report") {
		cfg.ReportFile = cmd.String("report")
	}
	if cmd.IsSet("poll-interval") {
		cfg.PollInterval = cmd.Duration("poll-interval")
	}
	if cmd.IsSet("max-attempts") {
		cfg.MaxAttempts = int(cmd.Int("max-attempts"))
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
}
