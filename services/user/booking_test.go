package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
)

type fakeDoctorRepo struct {
	doctor   *models.Doctor
	reserved [][3]string
	released [][3]string
	taken    bool
}

func (f *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) { return f.doctor, nil }
func (f *fakeDoctorRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Doctor, error) {
	return f.doctor, nil
}
func (f *fakeDoctorRepo) GetByEmail(email string) (*models.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) GetByFirebaseUID(uid string) (*models.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) GetAll() ([]models.Doctor, error) { return nil, nil }
func (f *fakeDoctorRepo) GetAllWithProjection(bson.M) ([]models.Doctor, error) {
	return nil, nil
}
func (f *fakeDoctorRepo) Create(*models.Doctor) error                 { return nil }
func (f *fakeDoctorRepo) UpdateFields(string, bson.M) error           { return nil }
func (f *fakeDoctorRepo) Delete(string) error                         { return nil }
func (f *fakeDoctorRepo) PruneBookedSlots(string, []string) error     { return nil }
func (f *fakeDoctorRepo) ReserveSlot(id, dateKey, slotTime string) error {
	if f.taken {
		return doctorRepo.ErrSlotTaken
	}
	f.reserved = append(f.reserved, [3]string{id, dateKey, slotTime})
	return nil
}
func (f *fakeDoctorRepo) ReleaseSlot(id, dateKey, slotTime string) error {
	f.released = append(f.released, [3]string{id, dateKey, slotTime})
	return nil
}

type fakeUserRepo struct {
	user *models.User
}

func (f *fakeUserRepo) GetByID(string) (*models.User, error) { return f.user, nil }
func (f *fakeUserRepo) GetByIDWithProjection(string, bson.M) (*models.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByFirebaseUID(string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(*models.User) error                     { return nil }
func (f *fakeUserRepo) UpdateFields(string, bson.M) error             { return nil }
func (f *fakeUserRepo) Delete(string) error                           { return nil }
func (f *fakeUserRepo) DeleteAll() (int64, error) { return 0, nil }

type fakeApptRepo struct {
	created []*models.Appointment
	byID    map[string]*models.Appointment
	updated map[string]bson.M
}

func (f *fakeApptRepo) Create(a *models.Appointment) error {
	f.created = append(f.created, a)
	return nil
}
func (f *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, assert.AnError
}
func (f *fakeApptRepo) GetAll() ([]models.Appointment, error) { return nil, nil }
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
func (f *fakeApptRepo) DeleteByUsers([]string) (int64, error) { return 0, nil }

func bookingFixture(taken bool) (*DefaultUserService, *fakeDoctorRepo, *fakeApptRepo) {
	docs := &fakeDoctorRepo{
		taken: taken,
		doctor: &models.Doctor{
			ID:        "doc-1",
			Name:      "Dr. Rao",
			Available: true,
			Fees:      50,
			Availability: []models.AvailabilityRule{
				{Day: time.Tuesday, Start: "09:00", End: "10:00"},
			},
		},
	}
	appts := &fakeApptRepo{}
	svc := &DefaultUserService{
		Repo:       &fakeUserRepo{user: &models.User{ID: "user-1", Name: "Pat", Email: "pat@x.test"}},
		DoctorRepo: docs,
		ApptRepo:   appts,
	}
	return svc, docs, appts
}

func TestBookReservesSlotAndCreatesAppointment(t *testing.T) {
	svc, docs, appts := bookingFixture(false)

	appt, err := svc.Book("user-1", models.BookingRequest{
		DocID: "doc-1", SlotDate: "3_6_2025", SlotTime: "09:30",
	})
	require.NoError(t, err)

	require.Len(t, docs.reserved, 1)
	assert.Equal(t, [3]string{"doc-1", "3_6_2025", "09:30"}, docs.reserved[0])
	require.Len(t, appts.created, 1)
	assert.Equal(t, 50.0, appt.Amount)
	assert.Equal(t, "Dr. Rao", appt.DocData.Name)
	assert.Equal(t, "Pat", appt.UserData.Name)
	assert.False(t, appt.Cancelled)
}

func TestBookSlotConflict(t *testing.T) {
	svc, docs, appts := bookingFixture(true)

	_, err := svc.Book("user-1", models.BookingRequest{
		DocID: "doc-1", SlotDate: "3_6_2025", SlotTime: "09:30",
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, docs.reserved)
	assert.Empty(t, appts.created)
}

func TestBookRejectsMalformedSlot(t *testing.T) {
	svc, _, _ := bookingFixture(false)

	_, err := svc.Book("user-1", models.BookingRequest{
		DocID: "doc-1", SlotDate: "2025-06-03", SlotTime: "09:30",
	})
	assert.Error(t, err)
}

func TestCancelReleasesSlot(t *testing.T) {
	svc, docs, appts := bookingFixture(false)
	appts.byID = map[string]*models.Appointment{
		"appt-1": {ID: "appt-1", UserID: "user-1", DocID: "doc-1", SlotDate: "3_6_2025", SlotTime: "09:30"},
	}

	require.NoError(t, svc.Cancel("user-1", "appt-1"))

	require.Len(t, docs.released, 1)
	assert.Equal(t, [3]string{"doc-1", "3_6_2025", "09:30"}, docs.released[0])
	assert.Equal(t, true, appts.updated["appt-1"]["cancelled"])
}

func TestCancelRejectsForeignAppointment(t *testing.T) {
	svc, docs, appts := bookingFixture(false)
	appts.byID = map[string]*models.Appointment{
		"appt-1": {ID: "appt-1", UserID: "someone-else", DocID: "doc-1"},
	}

	assert.Error(t, svc.Cancel("user-1", "appt-1"))
	assert.Empty(t, docs.released)
}

func TestAvailableSlotsDefaultSchedule(t *testing.T) {
	svc, docs, _ := bookingFixture(false)
	docs.doctor.Availability = nil
	docs.doctor.UsesDefaultSchedule = true

	days, err := svc.AvailableSlots("doc-1", time.Date(2025, time.June, 2, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, days, 7)
	for _, day := range days {
		require.NotEmpty(t, day)
		assert.Equal(t, "10:00", day[0].DisplayTime)
	}
}

func TestAvailableSlotsUnavailableDoctor(t *testing.T) {
	svc, docs, _ := bookingFixture(false)
	docs.doctor.Available = false

	days, err := svc.AvailableSlots("doc-1", time.Now())
	require.NoError(t, err)

	require.Len(t, days, 7)
	for _, day := range days {
		assert.Empty(t, day)
	}
}
