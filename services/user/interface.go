package user

import (
	"context"
	"time"

	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	userRepo "clinicbook/database/repository/user"
	"clinicbook/models"
	"clinicbook/services/availability"
	"clinicbook/services/identity"
	"clinicbook/services/storage"
	"clinicbook/services/tasks"
)

// UserService covers the patient-facing operations.
type UserService interface {
	// Register creates a patient account and returns a sign-in token.
	Register(ctx context.Context, data models.UserRegistrationData) (string, error)
	// Authenticate verifies patient credentials and returns a sign-in token.
	Authenticate(ctx context.Context, email, password string) (string, error)
	// GoogleAuth links or creates a patient account after a federated
	// sign-in and returns the patient record.
	GoogleAuth(ctx context.Context, email, name, firebaseUID string) (*models.User, error)

	// Profile returns the patient's profile.
	Profile(userID string) (*models.User, error)
	// UpdateProfile applies a profile save, uploading a new photo when given.
	UpdateProfile(ctx context.Context, userID string, update models.UserProfileUpdate) error

	// AvailableSlots runs the availability engine for one doctor at now.
	AvailableSlots(docID string, now time.Time) ([][]availability.Slot, error)
	// Book reserves a slot and creates the appointment.
	Book(userID string, req models.BookingRequest) (*models.Appointment, error)
	// Appointments lists the patient's appointments, newest first.
	Appointments(userID string) ([]models.Appointment, error)
	// Cancel cancels the patient's own appointment and frees its slot.
	Cancel(userID, appointmentID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo       userRepo.UserRepository
	DoctorRepo doctorRepo.DoctorRepository
	ApptRepo   appointmentRepo.AppointmentRepository
	Identity   identity.IdentityService
	Storage    storage.StorageService
	Reminders  tasks.ReminderScheduler
}
