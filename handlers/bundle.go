package handlers

import (
	doctorRepoPkg "clinicbook/database/repository/doctor"
	userRepoPkg "clinicbook/database/repository/user"
	"clinicbook/services/identity"
)

// HandlerBundle groups all endpoint handlers plus the dependencies the auth
// middleware needs for token resolution.
type HandlerBundle struct {
	UserRepo   userRepoPkg.UserRepository
	DoctorRepo doctorRepoPkg.DoctorRepository
	Identity   identity.IdentityService

	User    *UserHandler
	Doctor  *DoctorHandler
	Admin   *AdminHandler
	Gallery *GalleryHandler
}
