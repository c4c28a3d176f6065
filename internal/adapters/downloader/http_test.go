package downloader

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/img.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("\x89PNG fake"))
	}))
	defer server.Close()

	d := NewHTTPDownloader(0, zerolog.Nop())

	t.Run("ok", func(t *testing.T) {
		rc, err := d.Download(context.Background(), server.URL+"/img.png")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG fake", string(data))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := d.Download(context.Background(), server.URL+"/missing.png")
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
	})
}
