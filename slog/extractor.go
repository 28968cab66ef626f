// Package slog provides logging decorators for pageconv services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pageconv"
)

// introPrefixLen is the number of intro runes included in the log line.
const introPrefixLen = 50

// Ensure LoggingExtractor implements pageconv.Extractor.
var _ pageconv.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   pageconv.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pageconv.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the resulting
// document shape. Each section is logged at debug level.
func (e *LoggingExtractor) Extract(data []byte, ct pageconv.ContentType) (doc *pageconv.ParsedDocument, err error) {
	defer func(begin time.Time) {
		var title, intro string
		var sections, faqs int
		if doc != nil {
			title = doc.Title
			intro = truncate(doc.Intro, introPrefixLen)
			sections = len(doc.Sections)
			faqs = len(doc.FAQs)
			for i, s := range doc.Sections {
				e.logger.Debug("section added",
					"row", i+1,
					"title", s.Title,
					"bullets", len(s.Bullets),
				)
			}
		}
		e.logger.Info("document extracted",
			"type", string(ct),
			"bytes", len(data),
			"title", title,
			"intro", intro,
			"sections", sections,
			"faqs", faqs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(data, ct)
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
