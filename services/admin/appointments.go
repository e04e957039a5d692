package admin

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"clinicbook/models"
	"clinicbook/utils"
)

// AllAppointments returns every appointment across the clinic, newest first.
func (s *DefaultAdminService) AllAppointments() ([]models.Appointment, error) {
	return s.ApptRepo.GetAll()
}

// CancelAppointment cancels on the patient's behalf and frees the slot so it
// becomes bookable again.
func (s *DefaultAdminService) CancelAppointment(appointmentID string) error {
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("appointment not found: %w", err)
	}
	if appt.Cancelled {
		return nil
	}
	if appt.IsCompleted {
		return errors.New("cannot cancel a completed appointment")
	}

	if err := s.ApptRepo.UpdateFields(appointmentID, bson.M{"cancelled": true}); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if err := s.DoctorRepo.ReleaseSlot(appt.DocID, appt.SlotDate, appt.SlotTime); err != nil {
		utils.GetLogger().Warn("CancelAppointment: failed to release slot",
			zap.String("appointmentId", appointmentID), zap.Error(err))
	}
	return nil
}

// CompleteAppointment marks an appointment as carried out.
func (s *DefaultAdminService) CompleteAppointment(appointmentID string) error {
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("appointment not found: %w", err)
	}
	if appt.Cancelled {
		return errors.New("cannot complete a cancelled appointment")
	}
	return s.ApptRepo.UpdateFields(appointmentID, bson.M{"isCompleted": true})
}
