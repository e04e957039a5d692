package doctorRepo

import (
	"errors"

	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrSlotTaken is returned by ReserveSlot when the requested slot was booked
// by a concurrent request between the caller's read and its write.
var ErrSlotTaken = errors.New("slot already booked")

// DoctorRepository defines methods for doctor data access.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID.
	GetByID(id string) (*models.Doctor, error)
	// GetByIDWithProjection retrieves a doctor by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Doctor, error)
	// GetByEmail retrieves a doctor by email, nil when absent.
	GetByEmail(email string) (*models.Doctor, error)
	// GetByFirebaseUID retrieves a doctor by its linked identity-provider UID, nil when absent.
	GetByFirebaseUID(uid string) (*models.Doctor, error)
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// GetAllWithProjection retrieves all doctors with an optional projection.
	GetAllWithProjection(projection bson.M) ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// UpdateFields applies a partial $set update to a doctor record.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error

	// ReserveSlot atomically appends slotTime to the doctor's booked index
	// under dateKey, failing with ErrSlotTaken when the slot is already
	// present. The doctor must currently accept bookings.
	ReserveSlot(id, dateKey, slotTime string) error
	// ReleaseSlot removes slotTime from the doctor's booked index under dateKey.
	ReleaseSlot(id, dateKey, slotTime string) error
	// PruneBookedSlots drops booked-index entries whose date keys are in keys.
	PruneBookedSlots(id string, keys []string) error
}
