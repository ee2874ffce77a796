package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
	closer io.Closer
}

// New creates new Logger instance with the specified level.
// When file is not empty records are also written to a rotating log file.
func New(level int, file string) *Logger {
	var out io.Writer = os.Stdout
	var closer io.Closer

	if file != "" {
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotating)
		closer = rotating
	}

	return NewWithWriter(out, level, closer)
}

// NewWithWriter creates Logger writing text records to w.
func NewWithWriter(w io.Writer, level int, closer io.Closer) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.Level(level)})),
		closer: closer,
	}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	_ = l.Close()
	os.Exit(1)
}
