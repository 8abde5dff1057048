package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log is the global logger instance
var Log *slog.Logger

// Init initializes the global logger based on environment.
// Development: text with debug level. Production: JSON with info level.
// When sentryDSN is set, error records are also forwarded to Sentry.
func Init(isDev bool, sentryDSN, environment string) {
	handlers := []slog.Handler{stdoutHandler(os.Stdout, isDev)}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			Environment:      environment,
			TracesSampleRate: 1.0,
		})
		if err != nil {
			slog.New(handlers[0]).Warn("sentry init failed, continuing without it", "error", err)
		} else {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func stdoutHandler(w io.Writer, isDev bool) slog.Handler {
	if isDev {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}
