package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"bannergen/internal/platform/logger"
)

var ErrUnexpectedStatus = errors.New("unexpected status code")

// HTTPDownloader implements ports.Downloader.
type HTTPDownloader struct {
	client *resty.Client
}

// NewHTTPDownloader creates a new HTTPDownloader. A zero timeout means no limit.
func NewHTTPDownloader(timeout time.Duration, log zerolog.Logger) *HTTPDownloader {
	c := resty.New().SetLogger(logger.Resty(log))
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPDownloader{client: c}
}

// Download fetches the resource at the given URL as a stream.
func (d *HTTPDownloader) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	res, err := d.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", url, err)
	}

	body := res.RawBody()
	if res.StatusCode() != http.StatusOK {
		body.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode())
	}

	return body, nil
}
