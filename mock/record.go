package mock

import (
	"context"

	"github.com/fwojciec/pageconv"
)

var _ pageconv.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of pageconv.RecordStore.
type RecordStore struct {
	CreateRecordFn   func(ctx context.Context, record *pageconv.Record) error
	WriteFieldFn     func(ctx context.Context, recordID string, w pageconv.FieldWrite) error
	FindRecordByIDFn func(ctx context.Context, id string) (*pageconv.Record, error)
	FindRecordsFn    func(ctx context.Context, filter pageconv.RecordFilter) ([]*pageconv.Record, error)
	FindFieldsFn     func(ctx context.Context, recordID string) ([]pageconv.FieldWrite, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordStore) CreateRecord(ctx context.Context, record *pageconv.Record) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordStore) WriteField(ctx context.Context, recordID string, w pageconv.FieldWrite) error {
	return s.WriteFieldFn(ctx, recordID, w)
}

func (s *RecordStore) FindRecordByID(ctx context.Context, id string) (*pageconv.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordStore) FindRecords(ctx context.Context, filter pageconv.RecordFilter) ([]*pageconv.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordStore) FindFields(ctx context.Context, recordID string) ([]pageconv.FieldWrite, error) {
	return s.FindFieldsFn(ctx, recordID)
}

func (s *RecordStore) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
