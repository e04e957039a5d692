package user

import (
	"errors"
	"fmt"
	"time"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// reminderLead is how long before the slot the reminder fires.
const reminderLead = time.Hour

// ErrSlotUnavailable is returned when the requested slot is already booked
// or the doctor is not taking appointments.
var ErrSlotUnavailable = errors.New("slot not available")

// AvailableSlots runs the availability engine for one doctor: the doctor's
// typed weekly shifts (or the clinic default schedule) minus already booked
// slots, over the rolling booking window starting at now.
func (s *DefaultUserService) AvailableSlots(docID string, now time.Time) ([][]availability.Slot, error) {
	doc, err := s.DoctorRepo.GetByIDWithProjection(docID, bson.M{
		"available": 1, "availability": 1, "usesDefaultSchedule": 1, "slotsBooked": 1,
	})
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}

	if !doc.Available {
		empty := make([][]availability.Slot, availability.WindowDays)
		for i := range empty {
			empty[i] = []availability.Slot{}
		}
		return empty, nil
	}

	sched := availability.RulesToSchedule(doc.Availability)
	if doc.UsesDefaultSchedule {
		sched = availability.DaySchedule{}
	}
	return availability.Generate(sched, doc.SlotsBooked, now), nil
}

// Book reserves the requested slot and creates the appointment. The slot
// reservation is a guarded write: when another booking claimed the slot
// first, ErrSlotUnavailable is returned and nothing is persisted.
func (s *DefaultUserService) Book(userID string, req models.BookingRequest) (*models.Appointment, error) {
	slotAt, err := availability.SlotInstant(req.SlotDate, req.SlotTime, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid slot: %w", err)
	}

	doc, err := s.DoctorRepo.GetByID(req.DocID)
	if err != nil {
		return nil, fmt.Errorf("doctor not found: %w", err)
	}
	if !doc.Available {
		return nil, ErrSlotUnavailable
	}

	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"passwordHash": 0})
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if err := s.DoctorRepo.ReserveSlot(req.DocID, req.SlotDate, req.SlotTime); err != nil {
		if errors.Is(err, doctorRepo.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	appt := &models.Appointment{
		ID:       uuid.New().String(),
		UserID:   userID,
		DocID:    req.DocID,
		SlotDate: req.SlotDate,
		SlotTime: req.SlotTime,
		UserData: models.AppointmentUserSnapshot{
			Name:  usr.Name,
			Email: usr.Email,
			Phone: usr.Phone,
			Image: usr.Image,
			DOB:   usr.DOB,
		},
		DocData: models.AppointmentDoctorSnapshot{
			Name:       doc.Name,
			Image:      doc.Image,
			Speciality: doc.Speciality,
			Degree:     doc.Degree,
			Fees:       doc.Fees,
			Address:    doc.Address,
		},
		Amount:    doc.Fees,
		CreatedAt: time.Now(),
	}

	if err := s.ApptRepo.Create(appt); err != nil {
		// Roll the reservation back so the slot is not stranded.
		if relErr := s.DoctorRepo.ReleaseSlot(req.DocID, req.SlotDate, req.SlotTime); relErr != nil {
			utils.GetLogger().Error("Book: failed to roll back reservation",
				zap.String("docId", req.DocID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if s.Reminders != nil {
		payload := models.ReminderPayload{
			AppointmentID: appt.ID,
			UserID:        userID,
			DoctorName:    doc.Name,
			SlotDate:      appt.SlotDate,
			SlotTime:      appt.SlotTime,
		}
		if err := s.Reminders.Schedule(payload, slotAt.Add(-reminderLead)); err != nil {
			utils.GetLogger().Warn("Book: failed to schedule reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// Appointments lists the patient's appointments, newest first.
func (s *DefaultUserService) Appointments(userID string) ([]models.Appointment, error) {
	appts, err := s.ApptRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appts, nil
}

// Cancel cancels the patient's own appointment and frees the slot.
func (s *DefaultUserService) Cancel(userID, appointmentID string) error {
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("appointment not found: %w", err)
	}
	if appt.UserID != userID {
		return fmt.Errorf("appointment does not belong to this user")
	}
	if appt.Cancelled {
		return nil
	}

	if err := s.ApptRepo.UpdateFields(appointmentID, bson.M{"cancelled": true}); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	if err := s.DoctorRepo.ReleaseSlot(appt.DocID, appt.SlotDate, appt.SlotTime); err != nil {
		return fmt.Errorf("appointment cancelled but slot release failed: %w", err)
	}
	return nil
}
