package admin

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/services/identity"
	"clinicbook/services/storage"
	"clinicbook/utils"
)

// AddDoctor onboards a new doctor: validates the payload, uploads the
// portrait, normalizes the declared working hours into typed shifts and
// provisions the sign-in account.
func (s *DefaultAdminService) AddDoctor(data models.DoctorRegistrationData) (*models.Doctor, error) {
	logger := utils.GetLogger()

	if data.Name == "" || data.Email == "" || data.Password == "" {
		return nil, errors.New("name, email and password are required")
	}
	if _, err := mail.ParseAddress(data.Email); err != nil {
		return nil, errors.New("invalid email address")
	}
	if len(data.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	if existing, _ := s.DoctorRepo.GetByEmail(data.Email); existing != nil {
		return nil, errors.New("a doctor with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	imageURL := ""
	if data.ImagePath != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		imageURL, err = s.Storage.UploadImage(ctx, data.ImagePath, storage.FolderDoctors)
		if err != nil {
			return nil, fmt.Errorf("failed to upload doctor image: %w", err)
		}
	}

	rules := availability.NormalizeLegacy(data.Availability)
	now := time.Now()
	doc := &models.Doctor{
		ID:                  uuid.New().String(),
		Name:                data.Name,
		Email:               data.Email,
		PasswordHash:        string(hashed),
		Image:               imageURL,
		Speciality:          data.Speciality,
		Degree:              data.Degree,
		Experience:          data.Experience,
		About:               data.About,
		Available:           true,
		Fees:                data.Fees,
		Availability:        rules,
		UsesDefaultSchedule: len(rules) == 0,
		SlotsBooked:         map[string][]string{},
		Address:             data.Address,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if s.Identity != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		uid, err := s.Identity.EnsureUser(ctx, doc.Email, data.Password, doc.Name)
		if err != nil {
			logger.Warn("AddDoctor: identity provisioning failed",
				zap.String("email", doc.Email), zap.Error(err))
		} else {
			doc.FirebaseUID = uid
			if err := s.Identity.SetRole(ctx, uid, identity.RoleDoctor); err != nil {
				logger.Warn("AddDoctor: failed to set role claim",
					zap.String("uid", uid), zap.Error(err))
			}
		}
	}

	if err := s.DoctorRepo.Create(doc); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	logger.Info("doctor added", zap.String("doctorId", doc.ID), zap.String("name", doc.Name))
	return doc, nil
}

// AllDoctors returns every doctor profile including email, for the admin list.
func (s *DefaultAdminService) AllDoctors() ([]models.Doctor, error) {
	return s.DoctorRepo.GetAllWithProjection(bson.M{
		"passwordHash": 0,
	})
}

// ChangeAvailability flips the doctor's bookable flag and returns the new value.
func (s *DefaultAdminService) ChangeAvailability(docID string) (bool, error) {
	doc, err := s.DoctorRepo.GetByID(docID)
	if err != nil {
		return false, fmt.Errorf("doctor not found: %w", err)
	}
	next := !doc.Available
	if err := s.DoctorRepo.UpdateFields(docID, bson.M{"available": next}); err != nil {
		return false, err
	}
	return next, nil
}

// DeleteDoctor removes a doctor together with all of their appointments.
func (s *DefaultAdminService) DeleteDoctor(docID string) error {
	if _, err := s.DoctorRepo.GetByID(docID); err != nil {
		return fmt.Errorf("doctor not found: %w", err)
	}

	removed, err := s.ApptRepo.DeleteByDoctor(docID)
	if err != nil {
		return fmt.Errorf("failed to delete doctor appointments: %w", err)
	}
	if err := s.DoctorRepo.Delete(docID); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	utils.GetLogger().Info("doctor deleted",
		zap.String("doctorId", docID), zap.Int64("appointmentsRemoved", removed))
	return nil
}
