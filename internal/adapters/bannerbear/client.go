package bannerbear

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"bannergen/internal/core/domain"
	"bannergen/internal/platform/logger"
)

const (
	DefaultBaseURL      = "https://api.bannerbear.com/v2"
	DefaultPollInterval = 2 * time.Second
	DefaultMaxAttempts  = 30
)

var (
	ErrSubmissionFailed = errors.New("image submission rejected")
	ErrJobFailed        = errors.New("image generation failed")
	ErrJobTimedOut      = errors.New("timed out waiting for image")
)

// Options configures a Client.
type Options struct {
	APIKey       string
	BaseURL      string
	PollInterval time.Duration
	MaxAttempts  int
	Timeout      time.Duration
}

// Client implements ports.Renderer using the Bannerbear REST API.
type Client struct {
	client       *resty.Client
	pollInterval time.Duration
	maxAttempts  int
	logger       zerolog.Logger
}

// NewClient creates a new Client. Zero-valued options fall back to the defaults.
func NewClient(opts Options, log zerolog.Logger) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("bannerbear api key not set")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}

	rc := resty.New().
		SetLogger(logger.Resty(log)).
		SetBaseURL(opts.BaseURL).
		SetAuthToken(opts.APIKey).
		SetHeader("Content-Type", "application/json")
	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}

	return &Client{
		client:       rc,
		pollInterval: opts.PollInterval,
		maxAttempts:  opts.MaxAttempts,
		logger:       log.With().Str("component", "bannerbear").Logger(),
	}, nil
}

// Render submits an image job and polls until it completes.
func (c *Client) Render(ctx context.Context, templateUID string, mods []domain.Modification) (string, error) {
	img, err := c.CreateImage(ctx, templateUID, mods)
	if err != nil {
		return "", err
	}
	c.logger.Info().Str("uid", img.UID).Str("status", img.Status).Msg("request accepted")

	return c.waitForImage(ctx, img.UID)
}

// CreateImage sends POST /images. Only 200 and 202 count as accepted.
func (c *Client) CreateImage(ctx context.Context, templateUID string, mods []domain.Modification) (*Image, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(createImageRequest{
			Template:      templateUID,
			Modifications: mods,
		}).
		Post("/images")
	if err != nil {
		return nil, fmt.Errorf("failed to submit image: %w", err)
	}

	if res.StatusCode() != http.StatusOK && res.StatusCode() != http.StatusAccepted {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrSubmissionFailed, res.StatusCode(), res.String())
	}

	var img Image
	if err := json.Unmarshal(res.Body(), &img); err != nil {
		return nil, fmt.Errorf("failed to decode submission response: %w", err)
	}
	if img.UID == "" {
		return nil, fmt.Errorf("%w: response has no uid", ErrSubmissionFailed)
	}
	return &img, nil
}

// GetImage sends GET /images/{uid}.
func (c *Client) GetImage(ctx context.Context, uid string) (*Image, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetPathParam("uid", uid).
		Get("/images/{uid}")
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode())
	}

	var img Image
	if err := json.Unmarshal(res.Body(), &img); err != nil {
		return nil, fmt.Errorf("failed to decode image status: %w", err)
	}
	return &img, nil
}

func (c *Client) waitForImage(ctx context.Context, uid string) (string, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		img, err := c.GetImage(ctx, uid)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			// A failed status check still uses up an attempt.
			c.logger.Warn().Err(err).Int("attempt", attempt).Int("max", c.maxAttempts).Msg("status check failed")
			continue
		}

		c.logger.Info().Msgf("attempt %d/%d: %s", attempt, c.maxAttempts, img.Status)

		switch img.Status {
		case StatusCompleted:
			if img.ImageURL == "" {
				return "", fmt.Errorf("%w: completed without image_url", ErrJobFailed)
			}
			return img.ImageURL, nil
		case StatusFailed:
			return "", fmt.Errorf("%w: %s", ErrJobFailed, img.Error)
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrJobTimedOut, c.maxAttempts)
}
