package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"foodadmin/internal/model"
)

// LogRepository defines activity log persistence operations. The log is
// append-only: there is no update or delete.
type LogRepository interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	ListRecent(ctx context.Context, limit int) ([]model.LogEntry, error)
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new log repository.
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

// Create appends an entry; the timestamp is assigned by the store.
func (r *logRepository) Create(ctx context.Context, entry *model.LogEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create log entry: %w", err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first.
func (r *logRepository) ListRecent(ctx context.Context, limit int) ([]model.LogEntry, error) {
	var entries []model.LogEntry
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list recent logs: %w", err)
	}
	return entries, nil
}
