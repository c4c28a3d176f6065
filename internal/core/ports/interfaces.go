package ports

import (
	"context"
	"io"

	"bannergen/internal/core/domain"
)

// Renderer defines the contract for producing an image from a template.
type Renderer interface {
	// Render submits a job for templateUID with the given modifications and
	// blocks until the job completes, fails, or runs out of poll attempts.
	// Returns the URL of the rendered image.
	Render(ctx context.Context, templateUID string, mods []domain.Modification) (string, error)
}

// Downloader defines the contract for fetching rendered images.
type Downloader interface {
	// Download fetches the resource at the given URL.
	// Returns a ReadCloser that the caller must close.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

// Storage defines the contract for persisting batch artifacts.
type Storage interface {
	// SaveImage writes the image bytes under filename and returns the written path.
	SaveImage(ctx context.Context, filename string, reader io.Reader) (string, error)

	// SaveFile writes a small artifact (report, manifest) and returns the written path.
	SaveFile(ctx context.Context, filename string, data []byte) (string, error)
}
