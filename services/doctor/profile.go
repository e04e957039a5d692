package doctor

import (
	"fmt"

	"clinicbook/models"
	"clinicbook/services/availability"

	"go.mongodb.org/mongo-driver/bson"
)

// ListPublic returns the doctor directory for the patient app with
// credentials and contact email stripped.
func (s *DefaultDoctorService) ListPublic() ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAllWithProjection(bson.M{"passwordHash": 0, "email": 0, "firebaseUid": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// Profile returns a doctor's own profile without credentials.
func (s *DefaultDoctorService) Profile(docID string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByIDWithProjection(docID, bson.M{"passwordHash": 0})
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	return doc, nil
}

// UpdateProfile applies a doctor-panel profile save. A provided availability
// list (typed rules or legacy strings) replaces the stored shifts wholesale;
// an explicitly empty list switches the doctor to the clinic default
// schedule.
func (s *DefaultDoctorService) UpdateProfile(docID string, update models.DoctorProfileUpdate) error {
	fields := bson.M{}
	if update.Fees != nil {
		fields["fees"] = *update.Fees
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}
	if update.Available != nil {
		fields["available"] = *update.Available
	}
	if update.About != nil {
		fields["about"] = *update.About
	}

	if update.Rules != nil || update.Availability != nil {
		rules := update.Rules
		if rules == nil {
			rules = availability.NormalizeLegacy(update.Availability)
		}
		if rules == nil {
			rules = []models.AvailabilityRule{}
		}
		fields["availability"] = rules
		fields["usesDefaultSchedule"] = len(rules) == 0
	}

	if len(fields) == 0 {
		return nil
	}
	if err := s.Repo.UpdateFields(docID, fields); err != nil {
		return fmt.Errorf("failed to update doctor profile: %w", err)
	}
	return nil
}

// ToggleAvailable flips the doctor's bookable flag.
func (s *DefaultDoctorService) ToggleAvailable(docID string) error {
	doc, err := s.Repo.GetByIDWithProjection(docID, bson.M{"available": 1})
	if err != nil {
		return fmt.Errorf("doctor not found: %w", err)
	}
	if err := s.Repo.UpdateFields(docID, bson.M{"available": !doc.Available}); err != nil {
		return fmt.Errorf("failed to change availability: %w", err)
	}
	return nil
}
