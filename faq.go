package pageconv

import (
	"regexp"
	"strings"
)

// faqQuestionRe matches a question line: ends with "?" and does not start
// with a hyphen.
var faqQuestionRe = regexp.MustCompile(`^[^-].*\?$`)

// IsFAQSection reports whether a section title marks a FAQ block, that is,
// it contains "question" or "faq" in any case.
//
// This is a positional heuristic: it is only ever applied to the last
// section of a document (see SplitFAQ).
func IsFAQSection(title string) bool {
	t := strings.ToLower(title)
	return strings.Contains(t, "question") || strings.Contains(t, "faq")
}

// ParseFAQ pairs question and answer lines from a FAQ section body.
// A question line becomes the current question; the next non-empty line is
// its answer. Lines that fit neither role are skipped.
func ParseFAQ(body string) []FaqPair {
	var pairs []FaqPair
	var question string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if faqQuestionRe.MatchString(line) {
			question = line
			continue
		}
		if question != "" && line != "" {
			pairs = append(pairs, FaqPair{Question: question, Answer: line})
			question = ""
		}
	}
	return pairs
}

// SplitFAQ removes a trailing FAQ section from sections and returns its
// question/answer pairs. If the last section is not a FAQ section the
// sections are returned unchanged with no pairs.
func SplitFAQ(sections []Section) ([]Section, []FaqPair) {
	last, ok := LastSection(sections)
	if !ok || !IsFAQSection(last.Title) {
		return sections, nil
	}
	return sections[:len(sections)-1], ParseFAQ(last.Body)
}

// LastSection returns the final section of a document. Rows sourced from
// "the last section" (the City Service CTA row) use it; ok is false when
// there are no sections.
func LastSection(sections []Section) (Section, bool) {
	if len(sections) == 0 {
		return Section{}, false
	}
	return sections[len(sections)-1], true
}
