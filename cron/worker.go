package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"clinicbook/config"
	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/models"
	"clinicbook/services/tasks"
	"clinicbook/utils"
)

// InitReminderWorker runs the reminder delivery worker in the background.
func InitReminderWorker(appts appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAppointmentReminder, handleReminderTask(appts))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers one due reminder. Appointments cancelled after
// the reminder was enqueued are skipped silently.
func handleReminderTask(appts appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder: invalid payload", zap.Error(err))
			return err
		}

		appt, err := appts.GetByID(p.AppointmentID)
		if err != nil {
			logger.Warn("reminder: appointment lookup failed",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}
		if appt.Cancelled {
			logger.Debug("reminder: appointment cancelled, skipping",
				zap.String("appointmentId", p.AppointmentID))
			return nil
		}

		logger.Info("appointment reminder due",
			zap.String("appointmentId", p.AppointmentID),
			zap.String("userId", p.UserID),
			zap.String("doctor", p.DoctorName),
			zap.String("slotDate", p.SlotDate),
			zap.String("slotTime", p.SlotTime))
		return nil
	}
}
