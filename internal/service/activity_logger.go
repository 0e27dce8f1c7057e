package service

import (
	"context"
	"fmt"

	"foodadmin/internal/model"
	"foodadmin/internal/repository"
)

// Activity describes one administrative action to record.
type Activity struct {
	Message      string
	Admin        string
	RestaurantID string
	Details      map[string]any
}

// ActivityLogger appends entries to the activity log.
type ActivityLogger interface {
	LogActivity(ctx context.Context, activity Activity) error
}

type activityLogger struct {
	logs repository.LogRepository
}

// NewActivityLogger creates an activity logger writing to logs.
func NewActivityLogger(logs repository.LogRepository) ActivityLogger {
	return &activityLogger{logs: logs}
}

// LogActivity writes one entry; the store assigns its timestamp.
func (l *activityLogger) LogActivity(ctx context.Context, activity Activity) error {
	entry := &model.LogEntry{
		Message:      activity.Message,
		Admin:        activity.Admin,
		RestaurantID: activity.RestaurantID,
		Details:      activity.Details,
	}
	if err := l.logs.Create(ctx, entry); err != nil {
		return fmt.Errorf("log activity %q: %w", activity.Message, err)
	}
	return nil
}
