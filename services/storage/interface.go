package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Media folders used by the clinic backend.
const (
	FolderDoctors       = "clinic/doctors"
	FolderPatients      = "clinic/patients"
	FolderPrescriptions = "clinic/prescriptions"
	FolderGallery       = "clinic/gallery"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadImage uploads a local image file into the given folder and
	// returns its permanent delivery URL.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteImage deletes an uploaded image given its public ID.
	DeleteImage(ctx context.Context, publicID string) error
	// SecureURL builds a signed short-lived URL for a private asset.
	SecureURL(publicID string, expiresInSeconds int64) string
}

// StorageServiceImpl implements StorageService on Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
	}
}
