package doctor

import (
	"fmt"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Appointments lists the doctor's appointments, newest first.
func (s *DefaultDoctorService) Appointments(docID string) ([]models.Appointment, error) {
	appts, err := s.ApptRepo.GetByDoctor(docID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// owned fetches an appointment and verifies it belongs to the doctor.
func (s *DefaultDoctorService) owned(docID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	if appt.DocID != docID {
		return nil, fmt.Errorf("appointment does not belong to this doctor")
	}
	return appt, nil
}

// CancelAppointment cancels one of the doctor's own appointments and
// releases the reserved slot for rebooking.
func (s *DefaultDoctorService) CancelAppointment(docID, appointmentID string) error {
	appt, err := s.owned(docID, appointmentID)
	if err != nil {
		return err
	}
	if appt.Cancelled {
		return nil
	}

	if err := s.ApptRepo.UpdateFields(appointmentID, bson.M{"cancelled": true}); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if err := s.Repo.ReleaseSlot(docID, appt.SlotDate, appt.SlotTime); err != nil {
		return fmt.Errorf("appointment cancelled but slot release failed: %w", err)
	}
	return nil
}

// CompleteAppointment marks one of the doctor's own appointments done.
func (s *DefaultDoctorService) CompleteAppointment(docID, appointmentID string) error {
	if _, err := s.owned(docID, appointmentID); err != nil {
		return err
	}
	if err := s.ApptRepo.UpdateFields(appointmentID, bson.M{"isCompleted": true}); err != nil {
		return fmt.Errorf("failed to complete appointment: %w", err)
	}
	return nil
}

// Dashboard aggregates the doctor-panel landing snapshot. Earnings count
// appointments that are completed or already paid.
func (s *DefaultDoctorService) Dashboard(docID string) (*models.DoctorDashboard, error) {
	appts, err := s.ApptRepo.GetByDoctor(docID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	var earnings float64
	patients := map[string]struct{}{}
	for _, a := range appts {
		if a.IsCompleted || a.Payment {
			earnings += a.Amount
		}
		patients[a.UserID] = struct{}{}
	}

	latest := appts
	if len(latest) > 10 {
		latest = latest[:10]
	}

	return &models.DoctorDashboard{
		Earnings:           earnings,
		Appointments:       len(appts),
		Patients:           len(patients),
		LatestAppointments: latest,
	}, nil
}
