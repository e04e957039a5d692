package admin

import (
	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	userRepo "clinicbook/database/repository/user"
	"clinicbook/models"
	"clinicbook/services/identity"
	"clinicbook/services/storage"
)

// AdminService covers the operations behind the admin panel: doctor
// onboarding, appointment oversight, patient records and the dashboard.
type AdminService interface {
	Authenticate(email, password string) (string, error)

	AddDoctor(data models.DoctorRegistrationData) (*models.Doctor, error)
	AllDoctors() ([]models.Doctor, error)
	ChangeAvailability(docID string) (bool, error)
	DeleteDoctor(docID string) error

	AllAppointments() ([]models.Appointment, error)
	CancelAppointment(appointmentID string) error
	CompleteAppointment(appointmentID string) error

	Dashboard() (*models.AdminDashboard, error)
	Patients() ([]models.PatientSummary, error)
	UploadPrescription(appointmentID, followUpDate, localFilePath string) (string, error)
	PurgePatients() (int64, error)
}

type DefaultAdminService struct {
	UserRepo   userRepo.UserRepository
	DoctorRepo doctorRepo.DoctorRepository
	ApptRepo   appointmentRepo.AppointmentRepository
	Identity   identity.IdentityService
	Storage    storage.StorageService
}
