package logger

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type restyLogger struct {
	l zerolog.Logger
}

// Resty adapts l to resty's logger so HTTP client warnings share the app's output.
func Resty(l zerolog.Logger) resty.Logger {
	return restyLogger{l: l.With().Str("component", "http").Logger()}
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn().Msgf(strings.TrimSpace(format), v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Msgf(strings.TrimSpace(format), v...)
}
