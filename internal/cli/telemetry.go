package cli

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	pulse "github.com/pulsesocial/pulse-go"
)

// telemetryHooks adapts the SDK's telemetry callbacks to a zerolog logger.
func telemetryHooks(logger zerolog.Logger) pulse.TelemetryHooks {
	return pulse.TelemetryHooks{
		OnHTTPResponse: func(ctx context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
			evt := logger.Debug().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Dur("latency", latency)
			if err != nil {
				evt.Err(err).Msg("request failed")
				return
			}
			evt.Int("status", resp.StatusCode).Msg("request done")
		},
		OnLogEntry: func(ctx context.Context, entry pulse.LogEntry) {
			evt := logger.Info()
			if entry.Level == pulse.LogLevelError {
				evt = logger.Error()
			}
			evt.Fields(entry.Fields).Msg(entry.Message)
		},
	}
}
