package pageconv_test

import (
	"testing"

	"github.com/fwojciec/pageconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want pageconv.ContentType
	}{
		{"services", pageconv.ContentService},
		{"Service", pageconv.ContentService},
		{"buyers_guide", pageconv.ContentBuyersGuide},
		{"buyers-guide", pageconv.ContentBuyersGuide},
		{"near-me", pageconv.ContentCityService},
		{" city ", pageconv.ContentCityService},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			ct, err := pageconv.ParseContentType(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ct)
		})
	}

	t.Run("rejects unknown type", func(t *testing.T) {
		t.Parallel()

		_, err := pageconv.ParseContentType("landing")

		require.Error(t, err)
		assert.Equal(t, pageconv.EINVALID, pageconv.ErrorCode(err))
	})
}

func TestContentType_Valid(t *testing.T) {
	t.Parallel()

	for _, ct := range pageconv.ContentTypes() {
		assert.True(t, ct.Valid(), "%s should be valid", ct)
	}
	assert.False(t, pageconv.ContentType("posts").Valid())
	assert.False(t, pageconv.ContentType("").Valid())
}
