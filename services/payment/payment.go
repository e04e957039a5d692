package payment

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"clinicbook/config"
	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/utils"
)

var (
	ErrAppointmentCancelled = errors.New("appointment is cancelled")
	ErrAlreadyPaid          = errors.New("appointment is already paid")
	ErrPaymentIncomplete    = errors.New("payment has not succeeded")
)

// PaymentService handles consultation fee payments via Stripe.
type PaymentService interface {
	// CreateIntent opens a payment intent for the appointment fee and returns
	// the client secret the frontend confirms with.
	CreateIntent(userID, appointmentID string) (clientSecret string, err error)
	// Verify checks the intent outcome with Stripe and marks the appointment
	// paid when it succeeded.
	Verify(userID, appointmentID, paymentIntentID string) error
}

type StripePaymentService struct {
	ApptRepo appointmentRepo.AppointmentRepository
}

func (s *StripePaymentService) CreateIntent(userID, appointmentID string) (string, error) {
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return "", fmt.Errorf("appointment not found: %w", err)
	}
	if appt.UserID != userID {
		return "", errors.New("appointment does not belong to this user")
	}
	if appt.Cancelled {
		return "", ErrAppointmentCancelled
	}
	if appt.Payment {
		return "", ErrAlreadyPaid
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(appt.Amount * 100)),
		Currency: stripe.String(config.AppConfig.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("appointmentId", appt.ID)
	params.AddMetadata("userId", appt.UserID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("appointmentId", appt.ID), zap.String("intentId", intent.ID))
	return intent.ClientSecret, nil
}

func (s *StripePaymentService) Verify(userID, appointmentID, paymentIntentID string) error {
	appt, err := s.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return fmt.Errorf("appointment not found: %w", err)
	}
	if appt.UserID != userID {
		return errors.New("appointment does not belong to this user")
	}
	if appt.Payment {
		return nil
	}

	intent, err := paymentintent.Get(paymentIntentID, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	if intent.Metadata["appointmentId"] != appt.ID {
		return errors.New("payment intent does not match this appointment")
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return ErrPaymentIncomplete
	}

	if err := s.ApptRepo.UpdateFields(appointmentID, bson.M{"payment": true}); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}
	utils.GetLogger().Info("payment recorded",
		zap.String("appointmentId", appt.ID), zap.String("intentId", intent.ID))
	return nil
}
