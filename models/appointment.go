package models

import (
	"time"
)

// AppointmentUserSnapshot is the patient data frozen onto an appointment at
// booking time, so past appointments render correctly after profile edits.
type AppointmentUserSnapshot struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
	Image string `bson:"image" json:"image"`
	DOB   string `bson:"dob" json:"dob"`
}

// AppointmentDoctorSnapshot is the doctor data frozen onto an appointment.
type AppointmentDoctorSnapshot struct {
	Name       string   `bson:"name" json:"name"`
	Image      string   `bson:"image" json:"image"`
	Speciality []string `bson:"speciality" json:"speciality"`
	Degree     string   `bson:"degree" json:"degree"`
	Fees       float64  `bson:"fees" json:"fees"`
	Address    Address  `bson:"address" json:"address"`
}

// Appointment is one reserved doctor slot.
// SlotDate is the "D_M_YYYY" date key and SlotTime the 24-hour "HH:MM"
// display time, matching the keys kept in Doctor.SlotsBooked.
type Appointment struct {
	ID           string                    `bson:"id" json:"id"`
	UserID       string                    `bson:"userId" json:"userId"`
	DocID        string                    `bson:"docId" json:"docId"`
	SlotDate     string                    `bson:"slotDate" json:"slotDate"`
	SlotTime     string                    `bson:"slotTime" json:"slotTime"`
	UserData     AppointmentUserSnapshot   `bson:"userData" json:"userData"`
	DocData      AppointmentDoctorSnapshot `bson:"docData" json:"docData"`
	Amount       float64                   `bson:"amount" json:"amount"`
	Cancelled    bool                      `bson:"cancelled" json:"cancelled"`
	Payment      bool                      `bson:"payment" json:"payment"`
	IsCompleted  bool                      `bson:"isCompleted" json:"isCompleted"`
	Prescription string                    `bson:"prescription" json:"prescription"`
	FollowUpDate string                    `bson:"followUpDate" json:"followUpDate"`
	CreatedAt    time.Time                 `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the patient booking payload.
type BookingRequest struct {
	DocID    string `json:"docId" binding:"required"`
	SlotDate string `json:"slotDate" binding:"required"`
	SlotTime string `json:"slotTime" binding:"required"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	DoctorName    string `json:"doctorName"`
	SlotDate      string `json:"slotDate"`
	SlotTime      string `json:"slotTime"`
}
