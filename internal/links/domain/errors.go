package domain

import (
	apperrors "github.com/estudiomov/linkgate/internal/errors"
)

// Named errors for the link resolution and file delivery protocol. Each wraps
// a standard sentinel so handlers can map categories without inspecting
// messages.
var (
	// ErrLinkNotFound indicates no unique_links row matches the token.
	ErrLinkNotFound = apperrors.Wrap(apperrors.ErrNotFound, "link")

	// ErrLinkExpired indicates the token exists but is past expira_em.
	// Distinct from not-found so the viewer can explain that a replacement
	// link may exist.
	ErrLinkExpired = apperrors.Wrap(apperrors.ErrExpired, "link")

	// ErrInvalidLinkType indicates the persisted tipo column holds neither
	// recognized value. A data error, reported generically to callers.
	ErrInvalidLinkType = apperrors.Wrap(apperrors.ErrUnsupportedType, "link type")

	// ErrActiveLinkExists indicates a still-valid link exists for the target
	// and the regeneration was not explicitly confirmed.
	ErrActiveLinkExists = apperrors.Wrap(apperrors.ErrConflict, "active link exists")

	// ErrDownloadFailed indicates the blob store could not deliver the file
	// bytes.
	ErrDownloadFailed = apperrors.Wrap(apperrors.ErrUpstream, "blob download")
)
