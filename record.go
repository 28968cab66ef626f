package pageconv

import (
	"context"
	"time"
)

// StatusPublish is the status given to every converted record.
const StatusPublish = "publish"

// Record is a content record created from one source document.
type Record struct {
	ID         string      `json:"id"`
	Type       ContentType `json:"type"`
	Title      string      `json:"title"`
	Status     string      `json:"status"`
	SourceName string      `json:"sourceName"`
	SourceHash string      `json:"sourceHash"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if !r.Type.Valid() {
		return Errorf(EINVALID, "record type %q invalid", r.Type)
	}
	return nil
}

// RecordStore represents a service for managing content records and their
// field values.
type RecordStore interface {
	// CreateRecord creates a new record and assigns its ID.
	CreateRecord(ctx context.Context, record *Record) error

	// WriteField stores one field value of a record, replacing any value
	// previously written under the same key.
	// Returns ENOTFOUND if the record does not exist.
	WriteField(ctx context.Context, recordID string, w FieldWrite) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// FindFields returns the field values of a record in write order.
	FindFields(ctx context.Context, recordID string) ([]FieldWrite, error)

	// DeleteRecord permanently removes a record and its field values.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID    *string      `json:"id"`
	Type  *ContentType `json:"type"`
	Title *string      `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
