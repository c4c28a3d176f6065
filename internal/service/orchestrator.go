package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"bannergen/internal/campaign"
	"bannergen/internal/core/domain"
	"bannergen/internal/core/ports"
)

// Options controls where the orchestrator writes its outputs.
type Options struct {
	ReportFile   string    // flat URL report, written only when something succeeded
	ManifestFile string    // JSON manifest of every result; empty disables it
	Out          io.Writer // summary table
	Progress     io.Writer // progress bar; nil disables it
}

// Orchestrator renders every template of a campaign in turn.
type Orchestrator struct {
	renderer   ports.Renderer
	downloader ports.Downloader
	storage    ports.Storage
	logger     zerolog.Logger
	opts       Options
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	renderer ports.Renderer,
	downloader ports.Downloader,
	storage ports.Storage,
	logger zerolog.Logger,
	opts Options,
) *Orchestrator {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Orchestrator{
		renderer:   renderer,
		downloader: downloader,
		storage:    storage,
		logger:     logger,
		opts:       opts,
	}
}

// Run processes the campaign's templates sequentially. A failing template is
// recorded and logged but never stops the batch; the returned error is only
// for an invalid campaign or a report that could not be written.
func (o *Orchestrator) Run(ctx context.Context, c *campaign.Campaign) (*domain.BatchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &domain.BatchResult{
		RunID:     uuid.New().String(),
		Campaign:  c.Title,
		Results:   make([]domain.JobResult, 0, len(c.Templates)),
		StartedAt: time.Now().UTC(),
	}
	log := o.logger.With().Str("run_id", result.RunID).Logger()

	log.Info().Int("templates", len(c.Templates)).Msgf("generating images for %s", c.Title)
	for _, a := range c.Assets {
		log.Info().Str("asset", a.Name).Msg(path.Base(a.Value))
	}

	mods := c.Modifications()
	bar := o.newProgressBar(len(c.Templates))

	for _, t := range c.Templates {
		res := o.processTemplate(ctx, log, c, t, mods)
		result.Results = append(result.Results, res)

		if res.Success {
			log.Info().Str("template", t.Name).Msg("SUCCESS")
		} else {
			log.Warn().Str("template", t.Name).Msg("FAILED")
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	result.CompletedAt = time.Now().UTC()

	if err := writeSummary(o.opts.Out, result); err != nil {
		log.Warn().Err(err).Msg("could not write summary")
	}

	var reportErr error
	if succeeded := result.Succeeded(); len(succeeded) > 0 {
		reportPath, err := o.storage.SaveFile(ctx, o.opts.ReportFile, buildReport(c.Title, succeeded))
		if err != nil {
			reportErr = fmt.Errorf("failed to save report: %w", err)
		} else {
			result.ReportPath = reportPath
			log.Info().Str("path", reportPath).Msg("URLs saved")
		}
	}

	// The manifest is written even when the report failed so every result
	// stays on disk.
	o.saveManifest(ctx, log, result)

	return result, reportErr
}

func (o *Orchestrator) saveManifest(ctx context.Context, log zerolog.Logger, result *domain.BatchResult) {
	if o.opts.ManifestFile == "" {
		return
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("could not encode manifest")
		return
	}
	if _, err := o.storage.SaveFile(ctx, o.opts.ManifestFile, data); err != nil {
		log.Warn().Err(err).Msg("could not save manifest")
	}
}

func (o *Orchestrator) processTemplate(
	ctx context.Context,
	log zerolog.Logger,
	c *campaign.Campaign,
	t domain.Template,
	mods []domain.Modification,
) domain.JobResult {
	start := time.Now()
	res := domain.JobResult{Template: t, StartedAt: start.UTC()}

	log = log.With().Str("template", t.Name).Str("template_uid", t.UID).Logger()
	log.Info().Msg("generating")

	imageURL, err := o.renderer.Render(ctx, t.UID, mods)
	if err != nil {
		log.Error().Err(err).Msg("no image produced")
		return finish(res, start)
	}
	log.Info().Str("url", imageURL).Msg("image generated")

	filename := c.FileName(t)
	reader, err := o.downloader.Download(ctx, imageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to download image")
		return finish(res, start)
	}
	defer reader.Close()

	filePath, err := o.storage.SaveImage(ctx, filename, reader)
	if err != nil {
		log.Error().Err(err).Msg("failed to save image")
		return finish(res, start)
	}
	log.Info().Str("path", filePath).Msg("saved")

	res.FilePath = filePath
	res.ImageURL = imageURL
	res.Success = true
	return finish(res, start)
}

func finish(res domain.JobResult, start time.Time) domain.JobResult {
	res.Duration = time.Since(start).Round(time.Millisecond).String()
	return res
}

func (o *Orchestrator) newProgressBar(n int) *progressbar.ProgressBar {
	if o.opts.Progress == nil {
		return nil
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(o.opts.Progress),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
