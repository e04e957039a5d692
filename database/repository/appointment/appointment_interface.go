package appointmentRepo

import (
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// Create inserts a new appointment record.
	Create(appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetAll retrieves all appointments, newest first.
	GetAll() ([]models.Appointment, error)
	// GetByUser retrieves a patient's appointments, newest first.
	GetByUser(userID string) ([]models.Appointment, error)
	// GetByDoctor retrieves a doctor's appointments, newest first.
	GetByDoctor(docID string) ([]models.Appointment, error)
	// UpdateFields applies a partial $set update to an appointment record.
	UpdateFields(id string, fields bson.M) error
	// DeleteByDoctor removes all appointments of a doctor.
	DeleteByDoctor(docID string) (int64, error)
	// DeleteByUsers removes all appointments of the given patients.
	DeleteByUsers(userIDs []string) (int64, error)
}
