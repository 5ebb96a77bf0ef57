// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"os"
	"time"

	"shopp_backend/internal/feature/media/adapters/gemini"
	"shopp_backend/internal/feature/media/adapters/vision"
	"shopp_backend/internal/feature/media/usecase"
	"shopp_backend/internal/platform/externalapi/cloudinary"
	infrahttp "shopp_backend/internal/platform/http"
	"shopp_backend/internal/shared/ratelimiter"
)

// NewImageUploader creates a fully configured Cloudinary client with HTTP client
// and a rate limiter for the upstream API quota.
func NewImageUploader() *cloudinary.Client {
	cfg := cloudinary.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(10, time.Second)
	return cloudinary.NewClient(cfg, httpClient, limiter)
}

// NewImageModerator creates a Vision SafeSearch moderator when
// MEDIA_MODERATION is "true". Returns nil (moderation skipped) otherwise,
// or when the client cannot be initialized.
func NewImageModerator(ctx context.Context) usecase.ImageModerator {
	if os.Getenv("MEDIA_MODERATION") != "true" {
		return nil
	}
	m, err := vision.NewSafeSearchModerator(ctx)
	if err != nil {
		slog.Warn("image moderation disabled: vision client init failed", "error", err)
		return nil
	}
	return m
}

// NewDescriptionWriter creates a Gemini description writer when
// MEDIA_SUGGESTIONS is "true". Returns nil (suggestions disabled) otherwise,
// or when the client cannot be initialized.
func NewDescriptionWriter(ctx context.Context) usecase.DescriptionWriter {
	if os.Getenv("MEDIA_SUGGESTIONS") != "true" {
		return nil
	}
	w, err := gemini.NewGeminiWriter(ctx)
	if err != nil {
		slog.Warn("description suggestions disabled: gemini client init failed", "error", err)
		return nil
	}
	return w
}
