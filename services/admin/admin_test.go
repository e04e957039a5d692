package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"clinicbook/config"
	"clinicbook/models"
	"clinicbook/utils"
)

type fakeDoctorRepo struct {
	doctors  []models.Doctor
	updated  map[string]bson.M
	released [][3]string
	deleted  []string
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].ID == id {
			return &f.doctors[i], nil
		}
	}
	return nil, assert.AnError
}
func (f *fakeDoctorRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Doctor, error) {
	return f.GetByID(id)
}
func (f *fakeDoctorRepo) GetByEmail(email string) (*models.Doctor, error) {
	for i := range f.doctors {
		if f.doctors[i].Email == email {
			return &f.doctors[i], nil
		}
	}
	return nil, nil
}
func (f *fakeDoctorRepo) GetByFirebaseUID(string) (*models.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) { return f.doctors, nil }
func (f *fakeDoctorRepo) GetAllWithProjection(bson.M) ([]models.Doctor, error) {
	return f.doctors, nil
}
func (f *fakeDoctorRepo) Create(doc *models.Doctor) error {
	f.doctors = append(f.doctors, *doc)
	return nil
}
func (f *fakeDoctorRepo) UpdateFields(id string, fields bson.M) error {
	if f.updated == nil {
		f.updated = map[string]bson.M{}
	}
	f.updated[id] = fields
	return nil
}
func (f *fakeDoctorRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}
func (f *fakeDoctorRepo) ReserveSlot(id, dateKey, slotTime string) error { return nil }
func (f *fakeDoctorRepo) ReleaseSlot(id, dateKey, slotTime string) error {
	f.released = append(f.released, [3]string{id, dateKey, slotTime})
	return nil
}
func (f *fakeDoctorRepo) PruneBookedSlots(string, []string) error { return nil }

type fakeUserRepo struct {
	users      []models.User
	deletedAll bool
}

func (f *fakeUserRepo) GetByID(string) (*models.User, error) { return nil, assert.AnError }
func (f *fakeUserRepo) GetByIDWithProjection(string, bson.M) (*models.User, error) {
	return nil, assert.AnError
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByFirebaseUID(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error) { return f.users, nil }
func (f *fakeUserRepo) Create(*models.User) error                     { return nil }
func (f *fakeUserRepo) UpdateFields(string, bson.M) error             { return nil }
func (f *fakeUserRepo) Delete(string) error                           { return nil }
func (f *fakeUserRepo) DeleteAll() (int64, error) {
	f.deletedAll = true
	return int64(len(f.users)), nil
}

type fakeApptRepo struct {
	appts          []models.Appointment
	updated        map[string]bson.M
	deletedByUsers []string
}

func (f *fakeApptRepo) Create(*models.Appointment) error { return nil }
func (f *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, assert.AnError
}
func (f *fakeApptRepo) GetAll() ([]models.Appointment, error) { return f.appts, nil }
func (f *fakeApptRepo) GetByUser(string) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) GetByDoctor(string) ([]models.Appointment, error) { return nil, nil }
func (f *fakeApptRepo) UpdateFields(id string, fields bson.M) error {
	if f.updated == nil {
		f.updated = map[string]bson.M{}
	}
	f.updated[id] = fields
	return nil
}
func (f *fakeApptRepo) DeleteByDoctor(string) (int64, error) { return 0, nil }
func (f *fakeApptRepo) DeleteByUsers(ids []string) (int64, error) {
	f.deletedByUsers = ids
	return int64(len(ids)), nil
}

func TestAuthenticate(t *testing.T) {
	config.AppConfig.AdminEmail = "admin@clinic.test"
	config.AppConfig.AdminPassword = "s3cret-pass"
	config.AppConfig.JWTSecret = "test-signing-key"
	svc := &DefaultAdminService{}

	token, err := svc.Authenticate("admin@clinic.test", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, role, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
	assert.Equal(t, "admin", role)

	_, err = svc.Authenticate("admin@clinic.test", "wrong")
	assert.ErrorIs(t, err, ErrInvalidAdminCredentials)
	_, err = svc.Authenticate("other@clinic.test", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidAdminCredentials)
}

func TestDashboardIncome(t *testing.T) {
	svc := &DefaultAdminService{
		DoctorRepo: &fakeDoctorRepo{doctors: []models.Doctor{{ID: "d1"}, {ID: "d2"}}},
		UserRepo:   &fakeUserRepo{users: []models.User{{ID: "u1"}}},
		ApptRepo: &fakeApptRepo{appts: []models.Appointment{
			{ID: "a1", Amount: 50, IsCompleted: true},
			{ID: "a2", Amount: 70, Payment: true},
			{ID: "a3", Amount: 90, IsCompleted: true, Cancelled: true},
			{ID: "a4", Amount: 30},
		}},
	}

	dash, err := svc.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 2, dash.Doctors)
	assert.Equal(t, 1, dash.Patients)
	assert.Equal(t, 4, dash.Appointments)
	assert.Equal(t, 120.0, dash.TotalIncome)
	assert.Len(t, dash.LatestAppointments, 4)
}

func TestPatientsSortedByActivity(t *testing.T) {
	svc := &DefaultAdminService{
		UserRepo: &fakeUserRepo{users: []models.User{
			{ID: "u1", Name: "Once"},
			{ID: "u2", Name: "Often"},
		}},
		ApptRepo: &fakeApptRepo{appts: []models.Appointment{
			{ID: "a1", UserID: "u2", Prescription: "https://cdn/rx1.pdf", FollowUpDate: "2025-07-01"},
			{ID: "a2", UserID: "u2"},
			{ID: "a3", UserID: "u1"},
		}},
	}

	patients, err := svc.Patients()
	require.NoError(t, err)
	require.Len(t, patients, 2)

	assert.Equal(t, "Often", patients[0].Name)
	assert.Equal(t, 2, patients[0].TotalAppointments)
	require.Len(t, patients[0].Prescriptions, 1)
	assert.Equal(t, "https://cdn/rx1.pdf", patients[0].Prescriptions[0].PrescriptionURL)
	assert.Equal(t, "2025-07-01", patients[0].Prescriptions[0].FollowUpDate)
	assert.Empty(t, patients[1].Prescriptions)
}

func TestCancelAppointmentReleasesSlot(t *testing.T) {
	docs := &fakeDoctorRepo{}
	appts := &fakeApptRepo{appts: []models.Appointment{
		{ID: "a1", DocID: "d1", SlotDate: "4_6_2025", SlotTime: "11:30"},
	}}
	svc := &DefaultAdminService{DoctorRepo: docs, ApptRepo: appts}

	require.NoError(t, svc.CancelAppointment("a1"))

	assert.Equal(t, true, appts.updated["a1"]["cancelled"])
	require.Len(t, docs.released, 1)
	assert.Equal(t, [3]string{"d1", "4_6_2025", "11:30"}, docs.released[0])
}

func TestCancelCompletedAppointmentRejected(t *testing.T) {
	appts := &fakeApptRepo{appts: []models.Appointment{{ID: "a1", IsCompleted: true}}}
	svc := &DefaultAdminService{DoctorRepo: &fakeDoctorRepo{}, ApptRepo: appts}

	assert.Error(t, svc.CancelAppointment("a1"))
}

func TestChangeAvailability(t *testing.T) {
	docs := &fakeDoctorRepo{doctors: []models.Doctor{{ID: "d1", Available: true}}}
	svc := &DefaultAdminService{DoctorRepo: docs}

	next, err := svc.ChangeAvailability("d1")
	require.NoError(t, err)
	assert.False(t, next)
	assert.Equal(t, false, docs.updated["d1"]["available"])
}

func TestPurgePatients(t *testing.T) {
	users := &fakeUserRepo{users: []models.User{{ID: "u1"}, {ID: "u2"}}}
	appts := &fakeApptRepo{}
	svc := &DefaultAdminService{UserRepo: users, ApptRepo: appts}

	removed, err := svc.PurgePatients()
	require.NoError(t, err)

	assert.Equal(t, int64(2), removed)
	assert.Equal(t, []string{"u1", "u2"}, appts.deletedByUsers)
	assert.True(t, users.deletedAll)
}

func TestAddDoctorNormalizesAvailability(t *testing.T) {
	docs := &fakeDoctorRepo{}
	svc := &DefaultAdminService{DoctorRepo: docs, ApptRepo: &fakeApptRepo{}}

	doc, err := svc.AddDoctor(models.DoctorRegistrationData{
		Name:         "Dr. Vega",
		Email:        "vega@clinic.test",
		Password:     "long-enough-pass",
		Fees:         60,
		Availability: []string{"Monday: 09:00 - 12:00", "nonsense", "Friday: 14:00 - 18:00"},
	})
	require.NoError(t, err)

	require.Len(t, doc.Availability, 2)
	assert.Equal(t, time.Monday, doc.Availability[0].Day)
	assert.Equal(t, "09:00", doc.Availability[0].Start)
	assert.False(t, doc.UsesDefaultSchedule)
	assert.True(t, doc.Available)
	require.Len(t, docs.doctors, 1)
}

func TestAddDoctorDefaultSchedule(t *testing.T) {
	svc := &DefaultAdminService{DoctorRepo: &fakeDoctorRepo{}, ApptRepo: &fakeApptRepo{}}

	doc, err := svc.AddDoctor(models.DoctorRegistrationData{
		Name:     "Dr. Vega",
		Email:    "vega@clinic.test",
		Password: "long-enough-pass",
	})
	require.NoError(t, err)

	assert.Empty(t, doc.Availability)
	assert.True(t, doc.UsesDefaultSchedule)
}
