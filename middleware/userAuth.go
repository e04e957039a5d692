package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	userRepo "clinicbook/database/repository/user"
	"clinicbook/services/identity"
	"clinicbook/utils"
)

const authCacheTTL = time.Hour

// AuthUser guards the patient routes. The bearer ID token is verified once
// and its hash cached, so repeated requests skip the verification round trip.
func AuthUser(identitySvc identity.IdentityService, users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		cacheKey := utils.AuthCachePrefix + identity.RolePatient + ":" + utils.HashToken(tokenString)

		if id, ok := cachedSubject(ctx, cacheKey); ok {
			c.Set("userID", id)
			c.Next()
			return
		}

		uid, role, err := identitySvc.VerifyIDToken(ctx, tokenString)
		if err != nil || role != identity.RolePatient {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		usr, err := users.GetByFirebaseUID(uid)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		cacheSubject(ctx, cacheKey, usr.ID)
		c.Set("userID", usr.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// cachedSubject looks up the entity ID stored for a verified token hash.
func cachedSubject(ctx context.Context, cacheKey string) (string, bool) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return "", false
	}
	id, err := authCache.Get(ctx, cacheKey).Result()
	if err == nil && id != "" {
		_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
		return id, true
	}
	if err != nil && err != redis.Nil {
		log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to token verification.", err)
	}
	return "", false
}

func cacheSubject(ctx context.Context, cacheKey, id string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	_ = authCache.Set(ctx, cacheKey, id, authCacheTTL).Err()
}
