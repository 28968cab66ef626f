package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageconv"
)

// Ensure LoggingRecordStore implements pageconv.RecordStore.
var _ pageconv.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with logging. Record creation and
// deletion are logged at info level, field writes at debug level.
type LoggingRecordStore struct {
	next   pageconv.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next pageconv.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// CreateRecord delegates to the wrapped store and logs the new record.
func (s *LoggingRecordStore) CreateRecord(ctx context.Context, record *pageconv.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record created",
			"id", record.ID,
			"type", string(record.Type),
			"title", record.Title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, record)
}

// WriteField delegates to the wrapped store and logs the write.
func (s *LoggingRecordStore) WriteField(ctx context.Context, recordID string, w pageconv.FieldWrite) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "field written",
			"record", recordID,
			"key", w.Key,
			"name", w.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteField(ctx, recordID, w)
}

// FindRecordByID delegates to the wrapped store.
func (s *LoggingRecordStore) FindRecordByID(ctx context.Context, id string) (*pageconv.Record, error) {
	return s.next.FindRecordByID(ctx, id)
}

// FindRecords delegates to the wrapped store.
func (s *LoggingRecordStore) FindRecords(ctx context.Context, filter pageconv.RecordFilter) ([]*pageconv.Record, error) {
	return s.next.FindRecords(ctx, filter)
}

// FindFields delegates to the wrapped store.
func (s *LoggingRecordStore) FindFields(ctx context.Context, recordID string) ([]pageconv.FieldWrite, error) {
	return s.next.FindFields(ctx, recordID)
}

// DeleteRecord delegates to the wrapped store and logs the deletion.
func (s *LoggingRecordStore) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("record deleted",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
