package services

import (
	"context"
	"log/slog"

	portssvc "github.com/newstepsproject/backend/internal/core/ports/services"
	"github.com/newstepsproject/backend/internal/middleware"
)

// BaseService provides logging and notification helpers shared by services.
type BaseService struct {
	Notifier portssvc.Notifier
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// statusNote returns the note to record in status history. Admins may leave
// the note blank, but history entries never are: a generated fallback names
// the status that was set.
func statusNote(note, status string) string {
	if note != "" {
		return note
	}
	return "Status changed to " + status
}

// NotifyAsync dispatches a status email without blocking the caller. The
// request may finish before delivery completes; failures are logged only.
func (s *BaseService) NotifyAsync(ctx context.Context, n portssvc.Notification) {
	if s.Notifier == nil || n.To == "" {
		return
	}
	logger := s.GetLogger(ctx)
	bg := context.WithoutCancel(ctx)
	go func() {
		if err := s.Notifier.Notify(bg, n); err != nil {
			logger.Error("notification delivery failed",
				slog.String("template", string(n.Template)),
				slog.String("reference_id", n.ReferenceID),
				slog.String("error", err.Error()))
		}
	}()
}
