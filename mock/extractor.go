package mock

import "github.com/fwojciec/pageconv"

var _ pageconv.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pageconv.Extractor.
type Extractor struct {
	ExtractFn func(data []byte, ct pageconv.ContentType) (*pageconv.ParsedDocument, error)
}

func (e *Extractor) Extract(data []byte, ct pageconv.ContentType) (*pageconv.ParsedDocument, error) {
	return e.ExtractFn(data, ct)
}
