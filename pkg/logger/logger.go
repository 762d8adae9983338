package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger логгер с printf-интерфейсом поверх slog
type Logger struct {
	slog *slog.Logger
	file *os.File
}

// New создает логгер. Если filePath пустой, пишет только в stdout,
// иначе дублирует записи в файл.
func New(filePath string, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  io.Writer = os.Stdout
		file *os.File
	)
	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open file %s: %w", filePath, err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	return NewWithWriter(out, lvl, file), nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level slog.Level, file *os.File) *Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		slog: slog.New(h).With("service", "availability-service"),
		file: file,
	}
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	return NewWithWriter(io.Discard, slog.LevelError+1, nil)
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(slog.LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(slog.LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(slog.LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(slog.LevelError, format, v...) }

// Fatal пишет ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
	_ = l.Close()
	os.Exit(1)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) log(level slog.Level, format string, v ...interface{}) {
	ctx := context.Background()
	if !l.slog.Enabled(ctx, level) {
		return
	}
	l.slog.Log(ctx, level, fmt.Sprintf(format, v...))
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", level)
	}
}
