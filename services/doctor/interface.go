package doctor

import (
	"context"

	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/services/identity"
)

// DoctorService covers the doctor-panel operations plus the public
// doctor directory consumed by the patient app.
type DoctorService interface {
	// Authenticate verifies doctor credentials and returns a sign-in token
	// from the identity provider.
	Authenticate(ctx context.Context, email, password string) (string, error)
	// LinkGoogleAccount attaches an identity-provider UID to an existing
	// doctor account after a federated sign-in.
	LinkGoogleAccount(ctx context.Context, email, firebaseUID string) error

	// ListPublic returns the doctor directory with credentials stripped.
	ListPublic() ([]models.Doctor, error)
	// Profile returns a doctor's own profile without credentials.
	Profile(docID string) (*models.Doctor, error)
	// UpdateProfile applies a doctor-panel profile save. The availability
	// list, when present, replaces the stored shifts wholesale.
	UpdateProfile(docID string, update models.DoctorProfileUpdate) error
	// ToggleAvailable flips the doctor's bookable flag.
	ToggleAvailable(docID string) error

	// Appointments lists the doctor's appointments, newest first.
	Appointments(docID string) ([]models.Appointment, error)
	// CancelAppointment cancels one of the doctor's own appointments and
	// releases its slot.
	CancelAppointment(docID, appointmentID string) error
	// CompleteAppointment marks one of the doctor's own appointments done.
	CompleteAppointment(docID, appointmentID string) error
	// Dashboard aggregates earnings, appointment and patient counts.
	Dashboard(docID string) (*models.DoctorDashboard, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo     doctorRepo.DoctorRepository
	ApptRepo appointmentRepo.AppointmentRepository
	Identity identity.IdentityService
}
