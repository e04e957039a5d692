package doctor

import (
	"context"
	"fmt"

	"clinicbook/services/identity"
	"clinicbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies doctor credentials against the stored hash, links
// the identity-provider account on first login and returns a sign-in token
// carrying the doctor role claim.
func (s *DefaultDoctorService) Authenticate(ctx context.Context, email, password string) (string, error) {
	doc, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch doctor", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}
	if doc == nil {
		return "", fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid email or password")
	}

	uid, err := s.Identity.EnsureUser(ctx, doc.Email, password, doc.Name)
	if err != nil {
		utils.GetLogger().Error("Authenticate: identity provisioning failed", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}

	if doc.FirebaseUID != uid {
		if err := s.Repo.UpdateFields(doc.ID, bson.M{"firebaseUid": uid}); err != nil {
			return "", fmt.Errorf("failed to link identity account: %w", err)
		}
	}
	if err := s.Identity.SetRole(ctx, uid, identity.RoleDoctor); err != nil {
		return "", fmt.Errorf("failed to grant doctor role: %w", err)
	}

	token, err := s.Identity.CustomToken(ctx, uid, identity.RoleDoctor)
	if err != nil {
		return "", fmt.Errorf("failed to issue sign-in token: %w", err)
	}
	return token, nil
}

// LinkGoogleAccount attaches a federated identity UID to an existing doctor
// account. Doctors cannot self-register; the account must already exist.
func (s *DefaultDoctorService) LinkGoogleAccount(ctx context.Context, email, firebaseUID string) error {
	doc, err := s.Repo.GetByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to fetch doctor: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("doctor account not found, contact the clinic admin")
	}

	if doc.FirebaseUID == "" {
		if err := s.Repo.UpdateFields(doc.ID, bson.M{"firebaseUid": firebaseUID}); err != nil {
			return fmt.Errorf("failed to link identity account: %w", err)
		}
	}
	if err := s.Identity.SetRole(ctx, firebaseUID, identity.RoleDoctor); err != nil {
		return fmt.Errorf("failed to grant doctor role: %w", err)
	}
	return nil
}
