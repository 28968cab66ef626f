package pageconv

import "context"

// DefaultTitle is used when a document has no level-1 heading.
const DefaultTitle = "Untitled"

// MaxDocumentSize is the largest source document a Loader will return.
const MaxDocumentSize = 50 << 20

// ParsedDocument is the structured content recovered from one source document.
// It is created by an Extractor and not modified afterwards.
type ParsedDocument struct {
	Title    string    `json:"title" yaml:"title"`
	Intro    string    `json:"intro" yaml:"intro"`
	Sections []Section `json:"sections" yaml:"sections"`
	FAQs     []FaqPair `json:"faqs,omitempty" yaml:"faqs,omitempty"`
}

// Section is a titled content block: one level-2 heading and the paragraphs
// and lists that follow it up to the next level-2 heading.
type Section struct {
	Title   string   `json:"title" yaml:"title"`
	Body    string   `json:"body" yaml:"body"`
	Bullets []string `json:"bullets,omitempty" yaml:"bullets,omitempty"`
}

// FaqPair is one question and its answer from a trailing FAQ section.
type FaqPair struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Extractor recovers a ParsedDocument from raw HTML.
type Extractor interface {
	// Extract parses the HTML permissively and returns the document model.
	// FAQ splitting is applied only for ContentBuyersGuide.
	// Returns EUNREADABLE if data is empty; malformed markup never fails.
	Extract(data []byte, ct ContentType) (*ParsedDocument, error)
}

// Loader reads a source document by name (a file path or URL).
type Loader interface {
	// Load returns the raw bytes of the named document.
	// Returns ENOTFOUND if the document does not exist.
	Load(ctx context.Context, name string) ([]byte, error)
}

// SourceLister expands a location into the names of the source documents it
// holds, in a stable order. A location is a directory or a sitemap URL.
type SourceLister interface {
	ListSources(ctx context.Context, location string) ([]string, error)
}
