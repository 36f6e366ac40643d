package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocator_LegacyPublicURL(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantBucket string
		wantPath   string
	}{
		{
			name:       "SimplePath",
			raw:        "https://cdn.example.com/storage/v1/object/public/briefings/finais/final.mp4",
			wantBucket: "briefings",
			wantPath:   "finais/final.mp4",
		},
		{
			name:       "OtherBucket",
			raw:        "https://cdn.example.com/storage/v1/object/public/portfolio/hero.jpg",
			wantBucket: "portfolio",
			wantPath:   "hero.jpg",
		},
		{
			name:       "URLEncodedFilename",
			raw:        "https://cdn.example.com/storage/v1/object/public/briefings/finais/v%C3%ADdeo%20final.mp4",
			wantBucket: "briefings",
			wantPath:   "finais/vídeo final.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, path, err := ParseLocator(tt.raw, "briefings")
			require.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestParseLocator_BucketRelative(t *testing.T) {
	bucket, path, err := ParseLocator("briefings/finais/final.mp4", "briefings")
	require.NoError(t, err)
	assert.Equal(t, "briefings", bucket)
	assert.Equal(t, "finais/final.mp4", path)
}

func TestParseLocator_BarePathFallback(t *testing.T) {
	bucket, path, err := ParseLocator("finais/final.mp4", "briefings")
	require.NoError(t, err)
	assert.Equal(t, "briefings", bucket)
	assert.Equal(t, "finais/final.mp4", path)
}

func TestParseLocator_BothFormsResolveSameBlob(t *testing.T) {
	// Compatibility invariant: a legacy public URL and a bucket-relative
	// locator with matching bucket/path must address the same object.
	legacyBucket, legacyPath, err := ParseLocator(
		"https://cdn.example.com/storage/v1/object/public/briefings/finais/final.mp4",
		"briefings",
	)
	require.NoError(t, err)

	relBucket, relPath, err := ParseLocator("briefings/finais/final.mp4", "briefings")
	require.NoError(t, err)

	assert.Equal(t, legacyBucket, relBucket)
	assert.Equal(t, legacyPath, relPath)
}

func TestParseLocator_Errors(t *testing.T) {
	t.Run("EmptyLocator", func(t *testing.T) {
		_, _, err := ParseLocator("", "briefings")
		assert.Error(t, err)
	})

	t.Run("LegacyURLWithoutPath", func(t *testing.T) {
		_, _, err := ParseLocator("https://cdn.example.com/storage/v1/object/public/briefings", "briefings")
		assert.Error(t, err)
	})

	t.Run("LegacyURLWithBadEscape", func(t *testing.T) {
		_, _, err := ParseLocator("https://cdn.example.com/storage/v1/object/public/briefings/bad%zz", "briefings")
		assert.Error(t, err)
	})
}
