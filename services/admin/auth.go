package admin

import (
	"crypto/subtle"
	"errors"
	"time"

	"go.uber.org/zap"

	"clinicbook/config"
	"clinicbook/utils"
)

var ErrInvalidAdminCredentials = errors.New("invalid admin credentials")

const adminSessionTTL = 24 * time.Hour

// Authenticate checks the configured admin credentials and mints a
// short-lived session token carrying the admin role.
func (s *DefaultAdminService) Authenticate(email, password string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(config.AppConfig.AdminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(config.AppConfig.AdminPassword)) == 1
	if !emailOK || !passOK {
		return "", ErrInvalidAdminCredentials
	}

	token, err := utils.GenerateToken("admin", email, "admin", adminSessionTTL)
	if err != nil {
		utils.GetLogger().Error("admin authenticate: token generation failed", zap.Error(err))
		return "", err
	}
	return token, nil
}
