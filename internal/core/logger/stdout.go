package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sort"
)

type StdoutLogger struct {
	logger  *slog.Logger
	verbose bool
	exit    func(code int)
}

func initStdoutLogger(serviceName string, verbose bool) (Logger, error) {
	return newTextLogger(os.Stdout, serviceName, verbose), nil
}

func newTextLogger(w io.Writer, serviceName string, verbose bool) *StdoutLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	handlerWithAttrs := handler.WithAttrs([]slog.Attr{
		slog.String("service", serviceName),
	})

	return &StdoutLogger{
		logger:  slog.New(handlerWithAttrs),
		verbose: verbose,
		exit:    os.Exit,
	}
}

func (l *StdoutLogger) Log(ctx context.Context, entry LogEntry) {
	attrs := make([]any, 0, len(entry.Attributes)*2+2)

	// attributes make every line long, only print them when asked to
	if l.verbose {
		keys := make([]string, 0, len(entry.Attributes))
		for key := range entry.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			attrs = append(attrs, key, entry.Attributes[key])
		}
	}
	if entry.Error != nil {
		attrs = append(attrs, "error", entry.Error.Error())
	}

	switch entry.Level {
	case LogLevelDebug:
		l.logger.DebugContext(ctx, entry.Message, attrs...)
	case LogLevelInfo:
		l.logger.InfoContext(ctx, entry.Message, attrs...)
	case LogLevelWarn:
		l.logger.WarnContext(ctx, entry.Message, attrs...)
	case LogLevelError:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
	case LogLevelFatal:
		l.logger.ErrorContext(ctx, entry.Message, attrs...)
		l.exit(1)
	}
}

func (l *StdoutLogger) Shutdown(context.Context) error {
	return nil
}
