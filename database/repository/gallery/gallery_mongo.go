package galleryRepo

import (
	"context"
	"fmt"
	"time"

	"clinicbook/database"
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GalleryRepository defines methods for gallery image data access.
type GalleryRepository interface {
	// Create inserts a new gallery item.
	Create(item *models.GalleryItem) error
	// GetAll retrieves all gallery items, newest first.
	GetAll() ([]models.GalleryItem, error)
	// Delete removes a gallery item and returns it, nil when absent.
	Delete(id string) (*models.GalleryItem, error)
}

// MongoGalleryRepo implements GalleryRepository using MongoDB.
type MongoGalleryRepo struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepo creates a new instance of GalleryRepository using MongoDB.
func NewMongoGalleryRepo() GalleryRepository {
	return &MongoGalleryRepo{coll: database.Collection("gallery")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new gallery item document.
func (r *MongoGalleryRepo) Create(item *models.GalleryItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	return nil
}

// GetAll retrieves all gallery items, newest first.
func (r *MongoGalleryRepo) GetAll() ([]models.GalleryItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve gallery items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.GalleryItem
	for cursor.Next(ctx) {
		var it models.GalleryItem
		if err := cursor.Decode(&it); err != nil {
			return nil, fmt.Errorf("failed to decode gallery item: %w", err)
		}
		items = append(items, it)
	}
	return items, nil
}

// Delete removes a gallery item document and returns the removed item.
// Returns nil without error when the item does not exist.
func (r *MongoGalleryRepo) Delete(id string) (*models.GalleryItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.GalleryItem
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete gallery item with id %s: %w", id, err)
	}
	return &item, nil
}
