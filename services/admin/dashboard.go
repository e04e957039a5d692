package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"clinicbook/models"
	"clinicbook/services/storage"
	"clinicbook/utils"
)

const (
	dashboardCacheKey = utils.DashCachePrefix + "admin"
	dashboardCacheTTL = 60 * time.Second

	latestAppointmentsLimit  = 5
	prescriptionHistoryLimit = 5
)

// Dashboard builds the admin landing snapshot: entity counts, income from
// settled appointments and the latest bookings. Snapshots are cached briefly
// since the panel polls this endpoint.
func (s *DefaultAdminService) Dashboard() (*models.AdminDashboard, error) {
	if cached := s.cachedDashboard(); cached != nil {
		return cached, nil
	}

	doctors, err := s.DoctorRepo.GetAllWithProjection(bson.M{"id": 1})
	if err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}
	users, err := s.UserRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to count patients: %w", err)
	}
	appts, err := s.ApptRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	var income float64
	for _, a := range appts {
		if a.Cancelled {
			continue
		}
		if a.IsCompleted || a.Payment {
			income += a.Amount
		}
	}

	latest := appts
	if len(latest) > latestAppointmentsLimit {
		latest = latest[:latestAppointmentsLimit]
	}

	dash := &models.AdminDashboard{
		Doctors:            len(doctors),
		Appointments:       len(appts),
		Patients:           len(users),
		TotalIncome:        income,
		LatestAppointments: latest,
	}
	s.cacheDashboard(dash)
	return dash, nil
}

func (s *DefaultAdminService) cachedDashboard() *models.AdminDashboard {
	client := utils.GetCacheClient()
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := client.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var dash models.AdminDashboard
	if err := json.Unmarshal(raw, &dash); err != nil {
		return nil
	}
	return &dash
}

func (s *DefaultAdminService) cacheDashboard(dash *models.AdminDashboard) {
	client := utils.GetCacheClient()
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := json.Marshal(dash)
	if err != nil {
		return
	}
	if err := client.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("dashboard cache write failed", zap.Error(err))
	}
}

// Patients returns every patient with their recent prescription history,
// most actively booking patients first.
func (s *DefaultAdminService) Patients() ([]models.PatientSummary, error) {
	users, err := s.UserRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	appts, err := s.ApptRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	byUser := make(map[string][]models.Appointment, len(users))
	for _, a := range appts {
		byUser[a.UserID] = append(byUser[a.UserID], a)
	}

	summaries := make([]models.PatientSummary, 0, len(users))
	for _, u := range users {
		owned := byUser[u.ID]
		prescriptions := make([]models.PrescriptionRecord, 0, prescriptionHistoryLimit)
		for _, a := range owned {
			if a.Prescription == "" {
				continue
			}
			prescriptions = append(prescriptions, models.PrescriptionRecord{
				DocName:         a.DocData.Name,
				DocImage:        a.DocData.Image,
				Speciality:      a.DocData.Speciality,
				Date:            a.SlotDate,
				Time:            a.SlotTime,
				Amount:          a.Amount,
				PrescriptionURL: a.Prescription,
				FollowUpDate:    a.FollowUpDate,
			})
			if len(prescriptions) == prescriptionHistoryLimit {
				break
			}
		}
		summaries = append(summaries, models.PatientSummary{
			ID:                u.ID,
			Name:              u.Name,
			Email:             u.Email,
			Phone:             u.Phone,
			Image:             u.Image,
			DOB:               u.DOB,
			Gender:            u.Gender,
			Address:           u.Address,
			TotalAppointments: len(owned),
			Prescriptions:     prescriptions,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalAppointments > summaries[j].TotalAppointments
	})
	return summaries, nil
}

// UploadPrescription attaches a prescription document to a completed visit and
// records the follow-up date. Returns the stored document URL.
func (s *DefaultAdminService) UploadPrescription(appointmentID, followUpDate, localFilePath string) (string, error) {
	if localFilePath == "" {
		return "", errors.New("prescription file is required")
	}
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return "", fmt.Errorf("appointment not found: %w", err)
	}
	if appt.Cancelled {
		return "", errors.New("cannot attach a prescription to a cancelled appointment")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	url, err := s.Storage.UploadImage(ctx, localFilePath, storage.FolderPrescriptions)
	if err != nil {
		return "", fmt.Errorf("failed to upload prescription: %w", err)
	}

	fields := bson.M{"prescription": url}
	if followUpDate != "" {
		fields["followUpDate"] = followUpDate
	}
	if err := s.ApptRepo.UpdateFields(appointmentID, fields); err != nil {
		return "", fmt.Errorf("failed to save prescription: %w", err)
	}

	utils.GetLogger().Info("prescription uploaded",
		zap.String("appointmentId", appointmentID), zap.String("followUpDate", followUpDate))
	return url, nil
}

// PurgePatients removes every patient account and their appointments.
// Returns the number of deleted patient records.
func (s *DefaultAdminService) PurgePatients() (int64, error) {
	users, err := s.UserRepo.GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to load patients: %w", err)
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	if len(ids) > 0 {
		if _, err := s.ApptRepo.DeleteByUsers(ids); err != nil {
			return 0, fmt.Errorf("failed to delete patient appointments: %w", err)
		}
	}
	removed, err := s.UserRepo.DeleteAll()
	if err != nil {
		return 0, fmt.Errorf("failed to delete patients: %w", err)
	}

	utils.GetLogger().Warn("patient records purged", zap.Int64("removed", removed))
	return removed, nil
}
