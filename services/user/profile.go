package user

import (
	"context"
	"fmt"

	"clinicbook/models"
	"clinicbook/services/storage"

	"go.mongodb.org/mongo-driver/bson"
)

// Profile returns the patient's profile.
func (s *DefaultUserService) Profile(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"passwordHash": 0})
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	return usr, nil
}

// UpdateProfile applies a profile save. A provided image path is uploaded
// to the media store and the delivery URL persisted.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate) error {
	fields := bson.M{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Phone != nil {
		fields["phone"] = *update.Phone
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.DOB != nil {
		fields["dob"] = *update.DOB
	}
	if update.Gender != nil {
		fields["gender"] = *update.Gender
	}

	if update.ImagePath != "" {
		url, err := s.Storage.UploadImage(ctx, update.ImagePath, storage.FolderPatients)
		if err != nil {
			return fmt.Errorf("failed to upload profile photo: %w", err)
		}
		fields["image"] = url
	}

	if len(fields) == 0 {
		return nil
	}
	if err := s.Repo.UpdateFields(userID, fields); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}
