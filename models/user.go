package models

import (
	"time"
)

// User represents a patient account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Image        string    `bson:"image" json:"image"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      Address   `bson:"address" json:"address"`
	DOB          string    `bson:"dob" json:"dob"`
	Gender       string    `bson:"gender" json:"gender"`
	FirebaseUID  string    `bson:"firebaseUid,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// UserRegistrationData is the patient sign-up payload.
type UserRegistrationData struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserProfileUpdate is a patient profile save. Nil pointers mean "leave
// unchanged"; ImagePath is the temp path of a newly uploaded photo.
type UserProfileUpdate struct {
	Name      *string  `json:"name"`
	Phone     *string  `json:"phone"`
	Address   *Address `json:"address"`
	DOB       *string  `json:"dob"`
	Gender    *string  `json:"gender"`
	ImagePath string   `json:"-"`
}
