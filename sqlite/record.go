package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pageconv"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pageconv.RecordStore = (*RecordStore)(nil)

// RecordStore implements pageconv.RecordStore using SQLite.
// Field values are stored as JSON, one row per field key.
type RecordStore struct {
	db *DB
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

// CreateRecord creates a new record.
func (s *RecordStore) CreateRecord(ctx context.Context, record *pageconv.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if record.Status == "" {
		record.Status = pageconv.StatusPublish
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (id, type, title, status, source_name, source_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, record.ID, string(record.Type), record.Title, record.Status, record.SourceName, record.SourceHash,
		record.CreatedAt.Format(time.RFC3339))

	return err
}

// WriteField stores one field value. A rewrite of the same key replaces the
// value but keeps the position of the first write.
func (s *RecordStore) WriteField(ctx context.Context, recordID string, w pageconv.FieldWrite) error {
	if w.Key == "" {
		return pageconv.Errorf(pageconv.EINVALID, "field key required")
	}
	if w.Value == nil {
		return pageconv.Errorf(pageconv.EINVALID, "field %s has no value", w.Key)
	}
	if err := s.requireRecord(ctx, recordID); err != nil {
		return err
	}

	value, err := json.Marshal(w.Value)
	if err != nil {
		return fmt.Errorf("failed to encode field %s: %w", w.Key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO field_values (record_id, field_key, field_name, position, value)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM field_values WHERE record_id = ?), ?)
		ON CONFLICT (record_id, field_key) DO UPDATE SET
			field_name = excluded.field_name,
			value = excluded.value
	`, recordID, w.Key, w.Name, recordID, string(value))

	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordStore) FindRecordByID(ctx context.Context, id string) (*pageconv.Record, error) {
	records, err := s.FindRecords(ctx, pageconv.RecordFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, pageconv.Errorf(pageconv.ENOTFOUND, "record not found")
	}
	return records[0], nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordStore) FindRecords(ctx context.Context, filter pageconv.RecordFilter) ([]*pageconv.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, type, title, status, source_name, source_hash, created_at FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Type))
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*pageconv.Record
	for rows.Next() {
		var r pageconv.Record
		var recordType, createdAt string

		if err := rows.Scan(&r.ID, &recordType, &r.Title, &r.Status, &r.SourceName, &r.SourceHash, &createdAt); err != nil {
			return nil, err
		}
		r.Type = pageconv.ContentType(recordType)

		r.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		records = append(records, &r)
	}

	return records, rows.Err()
}

// FindFields returns the field values of a record in first-write order.
func (s *RecordStore) FindFields(ctx context.Context, recordID string) ([]pageconv.FieldWrite, error) {
	if err := s.requireRecord(ctx, recordID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT field_key, field_name, value
		FROM field_values
		WHERE record_id = ?
		ORDER BY position ASC
	`, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []pageconv.FieldWrite
	for rows.Next() {
		var w pageconv.FieldWrite
		var value string

		if err := rows.Scan(&w.Key, &w.Name, &value); err != nil {
			return nil, err
		}
		w.Value, err = pageconv.DecodeValue([]byte(value))
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %s: %w", w.Key, err)
		}

		fields = append(fields, w)
	}

	return fields, rows.Err()
}

// DeleteRecord permanently removes a record and its field values.
func (s *RecordStore) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pageconv.Errorf(pageconv.ENOTFOUND, "record not found")
	}

	return nil
}

func (s *RecordStore) requireRecord(ctx context.Context, id string) error {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM records WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return pageconv.Errorf(pageconv.ENOTFOUND, "record %s not found", id)
	}
	return err
}
