package models

import (
	"time"
)

// Address is the two-line postal address shown on doctor and patient profiles.
type Address struct {
	Line1 string `bson:"line1" json:"line1"`
	Line2 string `bson:"line2" json:"line2"`
}

// AvailabilityRule is one declared weekly shift for a doctor.
// Start and End are zero-padded 24-hour "HH:MM" strings with Start < End.
type AvailabilityRule struct {
	Day   time.Weekday `bson:"day" json:"day"`
	Start string       `bson:"start" json:"start"`
	End   string       `bson:"end" json:"end"`
}

// Doctor represents a clinic doctor profile.
//
// Availability holds the typed weekly shifts; LegacyAvailability carries the
// historical "Day: HH:MM - HH:MM" strings accepted on input and normalized
// once at the persistence boundary. UsesDefaultSchedule marks doctors that
// never configured working hours and fall back to the clinic default shift.
type Doctor struct {
	ID                  string              `bson:"id" json:"id"`
	Name                string              `bson:"name" json:"name"`
	Email               string              `bson:"email" json:"email,omitempty"`
	PasswordHash        string              `bson:"passwordHash" json:"-"`
	Image               string              `bson:"image" json:"image"`
	Speciality          []string            `bson:"speciality" json:"speciality"`
	Degree              string              `bson:"degree" json:"degree"`
	Experience          string              `bson:"experience" json:"experience"`
	About               string              `bson:"about" json:"about"`
	Available           bool                `bson:"available" json:"available"`
	Fees                float64             `bson:"fees" json:"fees"`
	Availability        []AvailabilityRule  `bson:"availability" json:"availability"`
	UsesDefaultSchedule bool                `bson:"usesDefaultSchedule" json:"usesDefaultSchedule"`
	SlotsBooked         map[string][]string `bson:"slotsBooked" json:"slots_booked"`
	Address             Address             `bson:"address" json:"address"`
	FirebaseUID         string              `bson:"firebaseUid,omitempty" json:"-"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt           time.Time           `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// DoctorRegistrationData is the admin "add doctor" payload after multipart
// decoding. Speciality and availability arrive JSON-encoded from the form.
type DoctorRegistrationData struct {
	Name         string
	Email        string
	Password     string
	Speciality   []string
	Degree       string
	Experience   string
	About        string
	Fees         float64
	Address      Address
	Availability []string // legacy "Day: HH:MM - HH:MM" entries
	ImagePath    string   // local temp path of the uploaded portrait, empty if none
}

// DoctorProfileUpdate is the doctor-panel profile save. Nil pointers mean
// "leave unchanged"; Availability replaces the stored shift list wholesale.
type DoctorProfileUpdate struct {
	Fees         *float64           `json:"fees"`
	Address      *Address           `json:"address"`
	Available    *bool              `json:"available"`
	About        *string            `json:"about"`
	Availability []string           `json:"availability"`
	Rules        []AvailabilityRule `json:"rules"`
}
