package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options описывает, куда и с каким уровнем писать лог
type Options struct {
	Path      string
	Level     string
	Overwrite bool // как filemode='w': каждый запуск начинает файл заново
}

type Logger struct {
	slog   *slog.Logger
	closer io.Closer
}

func NewLogger(opts Options) (*Logger, error) {
	if opts.Overwrite {
		if err := os.Remove(opts.Path); err != nil && !os.IsNotExist(err) {
			return nil, err
		}
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    50,
		MaxBackups: 3,
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return &Logger{slog: slog.New(handler).With("name", "web-scrape"), closer: file}, nil
}

// NewWriterLogger пишет в произвольный writer (stderr, буфер в тестах)
func NewWriterLogger(w io.Writer, level string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &Logger{slog: slog.New(handler)}
}

func NewNop() *Logger {
	return NewWriterLogger(io.Discard, "error")
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.slog.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.slog.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.slog.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...interface{}) {
	l.slog.Error(msg, fields...)
}

// With возвращает логгер с постоянными полями (site, engine ...)
func (l *Logger) With(fields ...interface{}) *Logger {
	return &Logger{slog: l.slog.With(fields...), closer: l.closer}
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
