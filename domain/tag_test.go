package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olivvybee/emojitools/domain"
)

func TestNormalizeTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{
			name:     "should strip the refs/tags prefix and leading v",
			ref:      "refs/tags/v2.4.0",
			expected: "2.4.0",
		},
		{
			name:     "should strip only the leading v from a bare tag",
			ref:      "v2.4.0",
			expected: "2.4.0",
		},
		{
			name:     "should leave an already-normalized tag unchanged",
			ref:      "2.4.0",
			expected: "2.4.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			tag := domain.NormalizeTag(tt.ref)

			// then
			assert.Equal(t, tt.expected, tag)
		})
	}
}

func TestTagFromRef(t *testing.T) {
	t.Parallel()

	t.Run("should keep the leading v so the service can resolve the ref", func(t *testing.T) {
		t.Parallel()

		// when
		tag := domain.TagFromRef("refs/tags/v2.4.0")

		// then
		assert.Equal(t, "v2.4.0", tag)
	})
}

func TestStagingDirName(t *testing.T) {
	t.Parallel()

	t.Run("should prefix the normalized tag", func(t *testing.T) {
		t.Parallel()

		// when
		dir := domain.StagingDirName("2.4.0")

		// then
		assert.Equal(t, "updates-2.4.0", dir)
	})
}

func TestPreviewImageURL(t *testing.T) {
	t.Parallel()

	t.Run("should derive the raw preview URL from repository and tag", func(t *testing.T) {
		t.Parallel()

		// when
		url := domain.PreviewImageURL("olivvybee", "emojis", "2.4.0")

		// then
		assert.Equal(t,
			"https://raw.githubusercontent.com/olivvybee/emojis/2.4.0/previews/2.4.0.png",
			url,
		)
	})
}
