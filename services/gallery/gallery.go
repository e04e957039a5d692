package gallery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	galleryRepo "clinicbook/database/repository/gallery"
	"clinicbook/models"
	"clinicbook/services/storage"
	"clinicbook/utils"
)

// GalleryService manages the clinic's public image gallery.
type GalleryService interface {
	// Upload stores the local image files on the CDN and records one gallery
	// item per file, sharing the given title and description.
	Upload(title, description string, localFilePaths []string) ([]models.GalleryItem, error)
	// List returns all gallery items, newest first.
	List() ([]models.GalleryItem, error)
	// Delete removes a gallery item and its hosted image.
	Delete(id string) error
}

type DefaultGalleryService struct {
	Repo    galleryRepo.GalleryRepository
	Storage storage.StorageService
}

func (s *DefaultGalleryService) Upload(title, description string, localFilePaths []string) ([]models.GalleryItem, error) {
	if len(localFilePaths) == 0 {
		return nil, errors.New("at least one image is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	items := make([]models.GalleryItem, 0, len(localFilePaths))
	for _, path := range localFilePaths {
		url, err := s.Storage.UploadImage(ctx, path, storage.FolderGallery)
		if err != nil {
			return items, fmt.Errorf("failed to upload gallery image: %w", err)
		}
		item := models.GalleryItem{
			ID:          uuid.New().String(),
			Image:       url,
			Title:       title,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := s.Repo.Create(&item); err != nil {
			return items, fmt.Errorf("failed to save gallery item: %w", err)
		}
		items = append(items, item)
	}

	utils.GetLogger().Info("gallery images uploaded", zap.Int("count", len(items)))
	return items, nil
}

func (s *DefaultGalleryService) List() ([]models.GalleryItem, error) {
	return s.Repo.GetAll()
}

func (s *DefaultGalleryService) Delete(id string) error {
	item, err := s.Repo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery item: %w", err)
	}
	if item == nil {
		return errors.New("gallery item not found")
	}

	if publicID := storagePublicID(item.Image); publicID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Storage.DeleteImage(ctx, publicID); err != nil {
			utils.GetLogger().Warn("gallery: failed to delete hosted image",
				zap.String("id", id), zap.Error(err))
		}
	}
	return nil
}
