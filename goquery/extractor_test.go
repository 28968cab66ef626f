package goquery_test

import (
	"testing"

	"github.com/fwojciec/pageconv"
	"github.com/fwojciec/pageconv/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, intro and sections", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Plumbing</h1>
<p>We fix pipes.</p>
<h2>Services</h2>
<p>Fast response</p>
<ul><li>Leak repair</li><li>Drain cleaning</li></ul>
</body></html>`

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentService)

		require.NoError(t, err)
		assert.Equal(t, "Plumbing", doc.Title)
		assert.Equal(t, "We fix pipes.", doc.Intro)
		assert.Equal(t, []pageconv.Section{
			{Title: "Services", Body: "Fast response", Bullets: []string{"Leak repair", "Drain cleaning"}},
		}, doc.Sections)
		assert.Empty(t, doc.FAQs)
	})

	t.Run("joins paragraphs with newlines and stops at next h2", func(t *testing.T) {
		t.Parallel()

		html := `<h1>T</h1>
<h2>  First  </h2>
<p> One </p>
<div><p>ignored, not a sibling paragraph</p></div>
<p>Two</p>
<h2>Second</h2>
<ol><li> A </li><li>   </li><li>B</li></ol>`

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentService)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 2)
		assert.Equal(t, "First", doc.Sections[0].Title)
		assert.Equal(t, "One\nTwo", doc.Sections[0].Body)
		assert.Empty(t, doc.Sections[0].Bullets)
		assert.Equal(t, "Second", doc.Sections[1].Title)
		assert.Equal(t, "", doc.Sections[1].Body)
		assert.Equal(t, []string{"A", "B"}, doc.Sections[1].Bullets)
	})

	t.Run("intro is the first paragraph anywhere", func(t *testing.T) {
		t.Parallel()

		html := `<p>Before title</p><h1>Title</h1><p>After</p>`

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentService)

		require.NoError(t, err)
		assert.Equal(t, "Before title", doc.Intro)
	})

	t.Run("defaults title when there is no h1", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewExtractor().Extract([]byte(`<h2>Only</h2>`), pageconv.ContentService)

		require.NoError(t, err)
		assert.Equal(t, pageconv.DefaultTitle, doc.Title)
		assert.Equal(t, "", doc.Intro)
		require.Len(t, doc.Sections, 1)
	})

	t.Run("drops sections with empty titles", func(t *testing.T) {
		t.Parallel()

		html := `<h1>T</h1><h2> </h2><p>lost</p><h2>Kept</h2><p>body</p>`

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentService)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Kept", doc.Sections[0].Title)
	})

	t.Run("collects nested list items", func(t *testing.T) {
		t.Parallel()

		html := `<h2>S</h2><ul><li>Outer<ul><li>Inner</li></ul></li></ul>`

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentService)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, []string{"OuterInner", "Inner"}, doc.Sections[0].Bullets)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Broken<h2>Section<p>text`

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentService)

		require.NoError(t, err)
		assert.NotEmpty(t, doc.Title)
	})

	t.Run("falls back to defaults for non-HTML input", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"\x00\xff garbage", "<<<>>"} {
			doc, err := goquery.NewExtractor().Extract([]byte(input), pageconv.ContentService)

			require.NoError(t, err, "input %q", input)
			assert.Equal(t, pageconv.DefaultTitle, doc.Title)
			assert.Equal(t, "Untitled", doc.Title)
			assert.Empty(t, doc.Intro)
			assert.NotNil(t, doc.Sections)
			assert.Empty(t, doc.Sections)
			assert.Empty(t, doc.FAQs)
		}
	})

	t.Run("returns unreadable for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewExtractor().Extract([]byte("  \n\t"), pageconv.ContentService)

		require.Error(t, err)
		assert.Equal(t, pageconv.EUNREADABLE, pageconv.ErrorCode(err))
	})
}

func TestExtractor_Extract_FAQ(t *testing.T) {
	t.Parallel()

	html := `<h1>Guide</h1>
<h2>Overview</h2><p>All about pipes.</p>
<h2>Frequently Asked Questions</h2>
<p>Is it safe?</p>
<p>Yes, fully insured.</p>
<p>How long does it take?</p>
<p>Usually one day.</p>`

	t.Run("splits trailing FAQ for buyer's guides", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentBuyersGuide)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "Overview", doc.Sections[0].Title)
		assert.Equal(t, []pageconv.FaqPair{
			{Question: "Is it safe?", Answer: "Yes, fully insured."},
			{Question: "How long does it take?", Answer: "Usually one day."},
		}, doc.FAQs)
	})

	t.Run("keeps FAQ section for other content types", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewExtractor().Extract([]byte(html), pageconv.ContentService)

		require.NoError(t, err)
		require.Len(t, doc.Sections, 2)
		assert.Empty(t, doc.FAQs)
	})
}
