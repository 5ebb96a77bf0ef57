// Package usecase はmediaフィーチャーのビジネスロジックを実装します。
package usecase

import "errors"

var (
	// ErrEmptyImage is returned when the upload contains no data.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrImageTooLarge is returned when the upload exceeds MaxImageSize.
	ErrImageTooLarge = errors.New("image exceeds maximum size")

	// ErrUnsupportedFormat is returned for anything but jpg/jpeg/png.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrImageRejected is returned when content moderation rejects the image.
	ErrImageRejected = errors.New("image rejected by content moderation")

	// ErrSuggestionsDisabled is returned when no description writer is wired.
	ErrSuggestionsDisabled = errors.New("description suggestions are not enabled")
)
