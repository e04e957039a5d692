package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/services/identity"
	"clinicbook/utils"
)

// AuthDoctor guards the doctor panel routes, mirroring AuthUser but resolving
// the caller against the doctor collection and the doctor role claim.
func AuthDoctor(identitySvc identity.IdentityService, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		cacheKey := utils.AuthCachePrefix + identity.RoleDoctor + ":" + utils.HashToken(tokenString)

		if id, ok := cachedSubject(ctx, cacheKey); ok {
			c.Set("doctorID", id)
			c.Next()
			return
		}

		uid, role, err := identitySvc.VerifyIDToken(ctx, tokenString)
		if err != nil || role != identity.RoleDoctor {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		doc, err := doctors.GetByFirebaseUID(uid)
		if err != nil || doc == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		cacheSubject(ctx, cacheKey, doc.ID)
		c.Set("doctorID", doc.ID)
		c.Next()
	}
}
