package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"clinicbook/models"
	"clinicbook/services/identity"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// Register creates a patient account, provisions the identity-provider
// account and returns a sign-in token.
func (s *DefaultUserService) Register(ctx context.Context, data models.UserRegistrationData) (string, error) {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return "", fmt.Errorf("missing details")
	}
	if _, err := mail.ParseAddress(data.Email); err != nil {
		return "", fmt.Errorf("please enter a valid email")
	}
	if len(data.Password) < minPasswordLength {
		return "", fmt.Errorf("please enter a stronger password (at least %d characters)", minPasswordLength)
	}

	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		return "", fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return "", fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("registration failed, please try again")
	}

	uid, err := s.Identity.EnsureUser(ctx, data.Email, data.Password, data.Name)
	if err != nil {
		utils.GetLogger().Error("Register: identity provisioning failed", zap.Error(err))
		return "", fmt.Errorf("registration failed, please try again")
	}
	if err := s.Identity.SetRole(ctx, uid, identity.RolePatient); err != nil {
		return "", fmt.Errorf("registration failed, please try again")
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Phone:        "000000000",
		Gender:       "Not Selected",
		FirebaseUID:  uid,
	}
	if err := s.Repo.Create(usr); err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	token, err := s.Identity.CustomToken(ctx, uid, identity.RolePatient)
	if err != nil {
		return "", fmt.Errorf("failed to issue sign-in token: %w", err)
	}
	return token, nil
}

// Authenticate verifies patient credentials and returns a sign-in token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return "", fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid email or password")
	}

	uid := usr.FirebaseUID
	if uid == "" {
		uid, err = s.Identity.EnsureUser(ctx, usr.Email, password, usr.Name)
		if err != nil {
			return "", fmt.Errorf("authentication failed, please try again")
		}
		if err := s.Repo.UpdateFields(usr.ID, bson.M{"firebaseUid": uid}); err != nil {
			return "", fmt.Errorf("failed to link identity account: %w", err)
		}
	}
	if err := s.Identity.SetRole(ctx, uid, identity.RolePatient); err != nil {
		return "", fmt.Errorf("authentication failed, please try again")
	}

	token, err := s.Identity.CustomToken(ctx, uid, identity.RolePatient)
	if err != nil {
		return "", fmt.Errorf("failed to issue sign-in token: %w", err)
	}
	return token, nil
}

// GoogleAuth links a federated sign-in to a patient account, creating the
// account on first sign-in.
func (s *DefaultUserService) GoogleAuth(ctx context.Context, email, name, firebaseUID string) (*models.User, error) {
	if email == "" || firebaseUID == "" {
		return nil, fmt.Errorf("missing details")
	}

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if usr == nil {
		usr = &models.User{
			ID:          uuid.New().String(),
			Name:        name,
			Email:       email,
			Phone:       "000000000",
			Gender:      "Not Selected",
			FirebaseUID: firebaseUID,
		}
		if err := s.Repo.Create(usr); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	} else if usr.FirebaseUID == "" {
		if err := s.Repo.UpdateFields(usr.ID, bson.M{"firebaseUid": firebaseUID}); err != nil {
			return nil, fmt.Errorf("failed to link identity account: %w", err)
		}
		usr.FirebaseUID = firebaseUID
	}

	if err := s.Identity.SetRole(ctx, firebaseUID, identity.RolePatient); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	usr.UpdatedAt = time.Now()
	return usr, nil
}
