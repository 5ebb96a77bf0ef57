// Package cloudinary provides a client for the Cloudinary image upload API.
package cloudinary

import (
	"os"
	"time"
)

// DefaultFolder is the Cloudinary media library folder for product images.
const DefaultFolder = "shopp-products"

// Config holds configuration for the Cloudinary API client.
type Config struct {
	CloudName string        // Cloudinary cloud name
	APIKey    string        // API key for authentication
	APISecret string        // API secret used to sign upload requests
	Folder    string        // Target folder in the media library
	BaseURL   string        // Base URL for the API (e.g., "https://api.cloudinary.com")
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads Cloudinary configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		Folder:    os.Getenv("CLOUDINARY_UPLOAD_FOLDER"),
		BaseURL:   os.Getenv("CLOUDINARY_BASE_URL"),
		Timeout:   30 * time.Second,
	}
	if cfg.Folder == "" {
		cfg.Folder = DefaultFolder
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.cloudinary.com"
	}
	return cfg
}
