// Package identity wraps the Firebase Auth collaborator: account
// provisioning, role claims, custom-token minting and ID-token verification.
package identity

import (
	"context"
	"fmt"

	"clinicbook/config"

	"firebase.google.com/go/v4/auth"
)

// Roles carried as custom claims on identity-provider accounts.
const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// IdentityService is the boundary to the identity provider.
type IdentityService interface {
	// EnsureUser returns the UID for the account with the given email,
	// creating the account when it does not exist yet.
	EnsureUser(ctx context.Context, email, password, displayName string) (string, error)
	// SetRole attaches a role custom claim to the account.
	SetRole(ctx context.Context, uid, role string) error
	// CustomToken mints a sign-in token carrying the role claim.
	CustomToken(ctx context.Context, uid, role string) (string, error)
	// VerifyIDToken validates a bearer ID token and returns its UID and role claim.
	VerifyIDToken(ctx context.Context, idToken string) (uid, role string, err error)
}

// FirebaseIdentityService implements IdentityService on the global Firebase
// Auth client initialized in config.
type FirebaseIdentityService struct{}

// NewFirebaseIdentityService returns the production identity service.
func NewFirebaseIdentityService() IdentityService {
	return &FirebaseIdentityService{}
}

func (s *FirebaseIdentityService) client() (*auth.Client, error) {
	if config.AuthClient == nil {
		return nil, fmt.Errorf("identity: firebase auth client not initialized")
	}
	return config.AuthClient, nil
}

// EnsureUser looks up the account by email and creates it when missing.
func (s *FirebaseIdentityService) EnsureUser(ctx context.Context, email, password, displayName string) (string, error) {
	client, err := s.client()
	if err != nil {
		return "", err
	}

	if rec, err := client.GetUserByEmail(ctx, email); err == nil {
		return rec.UID, nil
	} else if !auth.IsUserNotFound(err) {
		return "", fmt.Errorf("identity: lookup failed for %s: %w", email, err)
	}

	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(true)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	rec, err := client.CreateUser(ctx, params)
	if err != nil {
		return "", fmt.Errorf("identity: failed to create account for %s: %w", email, err)
	}
	return rec.UID, nil
}

// SetRole attaches a role custom claim to the account.
func (s *FirebaseIdentityService) SetRole(ctx context.Context, uid, role string) error {
	client, err := s.client()
	if err != nil {
		return err
	}
	if err := client.SetCustomUserClaims(ctx, uid, map[string]interface{}{"role": role}); err != nil {
		return fmt.Errorf("identity: failed to set role claim: %w", err)
	}
	return nil
}

// CustomToken mints a sign-in token carrying the role claim.
func (s *FirebaseIdentityService) CustomToken(ctx context.Context, uid, role string) (string, error) {
	client, err := s.client()
	if err != nil {
		return "", err
	}
	token, err := client.CustomTokenWithClaims(ctx, uid, map[string]interface{}{"role": role})
	if err != nil {
		return "", fmt.Errorf("identity: failed to mint custom token: %w", err)
	}
	return token, nil
}

// VerifyIDToken validates a bearer ID token and extracts the role claim.
func (s *FirebaseIdentityService) VerifyIDToken(ctx context.Context, idToken string) (string, string, error) {
	client, err := s.client()
	if err != nil {
		return "", "", err
	}
	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", fmt.Errorf("identity: invalid token: %w", err)
	}
	role, _ := token.Claims["role"].(string)
	return token.UID, role, nil
}
