package models

// AdminDashboard is the back-office landing snapshot.
type AdminDashboard struct {
	Doctors            int           `json:"doctors"`
	Appointments       int           `json:"appointments"`
	Patients           int           `json:"patients"`
	TotalIncome        float64       `json:"totalIncome"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}

// DoctorDashboard is the doctor-panel landing snapshot.
type DoctorDashboard struct {
	Earnings           float64       `json:"earnings"`
	Appointments       int           `json:"appointments"`
	Patients           int           `json:"patients"`
	LatestAppointments []Appointment `json:"latestAppointments"`
}

// PrescriptionRecord is one issued prescription in a patient's history.
type PrescriptionRecord struct {
	DocName         string   `json:"docName"`
	DocImage        string   `json:"docImage"`
	Speciality      []string `json:"speciality"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Amount          float64  `json:"amount"`
	PrescriptionURL string   `json:"prescriptionUrl"`
	FollowUpDate    string   `json:"followUpDate"`
}

// PatientSummary is the admin patients view: profile data plus recent
// prescription history, sorted by booking activity.
type PatientSummary struct {
	ID                string               `json:"id"`
	Name              string               `json:"name"`
	Email             string               `json:"email"`
	Phone             string               `json:"phone"`
	Image             string               `json:"image"`
	DOB               string               `json:"dob"`
	Gender            string               `json:"gender"`
	Address           Address              `json:"address"`
	TotalAppointments int                  `json:"totalAppointments"`
	Prescriptions     []PrescriptionRecord `json:"prescriptions"`
}
