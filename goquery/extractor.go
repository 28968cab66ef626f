// Package goquery implements the document extractor on top of goquery.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pageconv"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements pageconv.Extractor at compile time.
var _ pageconv.Extractor = (*Extractor)(nil)

// Extractor recovers titled sections from word-processor HTML exports.
// The only structural signal is heading boundaries: the first h1 is the
// title, the first p is the intro and every h2 opens a section that runs
// over its following siblings up to the next h2.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses data permissively and returns the document model.
func (e *Extractor) Extract(data []byte, ct pageconv.ContentType) (*pageconv.ParsedDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, pageconv.Errorf(pageconv.EUNREADABLE, "document is empty")
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, pageconv.Errorf(pageconv.EUNREADABLE, "failed to parse HTML: %v", err)
	}

	parsed := &pageconv.ParsedDocument{
		Title:    pageconv.DefaultTitle,
		Sections: []pageconv.Section{},
	}
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		parsed.Title = strings.TrimSpace(h1.Text())
	}
	if p := doc.Find("p").First(); p.Length() > 0 {
		parsed.Intro = strings.TrimSpace(p.Text())
	}

	doc.Find("h2").Each(func(_ int, h2 *goquery.Selection) {
		if s, ok := extractSection(h2); ok {
			parsed.Sections = append(parsed.Sections, s)
		}
	})

	if ct == pageconv.ContentBuyersGuide {
		parsed.Sections, parsed.FAQs = pageconv.SplitFAQ(parsed.Sections)
	}

	return parsed, nil
}

// extractSection collects the paragraphs and list items between a level-2
// heading and the next one among its siblings. Sections without a title are
// dropped.
func extractSection(h2 *goquery.Selection) (pageconv.Section, bool) {
	title := strings.TrimSpace(h2.Text())
	if title == "" {
		return pageconv.Section{}, false
	}

	var body strings.Builder
	bullets := []string{}

	h2.NextUntil("h2").Each(func(_ int, sib *goquery.Selection) {
		switch sib.Get(0).DataAtom {
		case atom.P:
			body.WriteString(strings.TrimSpace(sib.Text()))
			body.WriteString("\n")
		case atom.Ul, atom.Ol:
			sib.Find("li").Each(func(_ int, li *goquery.Selection) {
				if text := strings.TrimSpace(li.Text()); text != "" {
					bullets = append(bullets, text)
				}
			})
		}
	})

	return pageconv.Section{
		Title:   title,
		Body:    strings.TrimSpace(body.String()),
		Bullets: bullets,
	}, true
}
