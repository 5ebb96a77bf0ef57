// Package entity defines the domain models for the catalog feature.
package entity

import "time"

// Product represents an item in the storefront catalog.
// The ID is assigned by the catalog service as max(existing)+1 rather than
// by an auto-increment sequence, to stay compatible with the storefront's
// numeric product ids. Deletions leave gaps; ids are never backfilled.
type Product struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Image     string    `gorm:"size:512;not null"`
	Category  string    `gorm:"size:100;not null;index"`
	NewPrice  float64   `gorm:"not null"`
	OldPrice  float64   `gorm:"not null"`
	Available bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}
