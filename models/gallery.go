package models

import (
	"time"
)

// GalleryItem is one clinic gallery image hosted on the media CDN.
type GalleryItem struct {
	ID          string    `bson:"id" json:"id"`
	Image       string    `bson:"image" json:"image"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
