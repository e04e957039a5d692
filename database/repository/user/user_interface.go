package userRepo

import (
	"clinicbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for patient data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetByEmail retrieves a user by email, nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetByFirebaseUID retrieves a user by its linked identity-provider UID, nil when absent.
	GetByFirebaseUID(uid string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a partial $set update to a user record.
	UpdateFields(id string, fields bson.M) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// DeleteAll removes every user record and reports how many were removed.
	DeleteAll() (int64, error)
}
