// Package storage provides blob store access and file locator parsing for
// downloadable deliverables.
package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// legacyPublicMarker appears in fully-qualified public object URLs persisted
// before the storage bucket was made private. Descriptors created since then
// carry bucket-relative paths, but both forms must keep resolving forever.
const legacyPublicMarker = "/object/public/"

// ParseLocator resolves a persisted file locator to a (bucket, path) pair.
//
// Three forms are accepted:
//   - a legacy public object URL: bucket and path are parsed out of the URL
//     segment following the public-object marker, URL-decoded;
//   - a "<defaultBucket>/<path>" string: the bucket prefix is stripped;
//   - anything else: treated as a path within defaultBucket.
//
// Future storage-layout migrations should only ever touch this function.
func ParseLocator(raw, defaultBucket string) (bucket, path string, err error) {
	if raw == "" {
		return "", "", fmt.Errorf("empty file locator")
	}

	if idx := strings.Index(raw, legacyPublicMarker); idx >= 0 {
		rest := raw[idx+len(legacyPublicMarker):]
		rest = strings.TrimPrefix(rest, "/")
		bucket, path, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || path == "" {
			return "", "", fmt.Errorf("malformed legacy object URL: %q", raw)
		}
		decoded, decodeErr := url.PathUnescape(path)
		if decodeErr != nil {
			return "", "", fmt.Errorf("decoding legacy object path %q: %w", path, decodeErr)
		}
		return bucket, decoded, nil
	}

	if rest, ok := strings.CutPrefix(raw, defaultBucket+"/"); ok && rest != "" {
		return defaultBucket, rest, nil
	}

	return defaultBucket, raw, nil
}
