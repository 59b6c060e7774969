package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	staffRepo "eccos/database/repository/staff"
	"eccos/models"
	"eccos/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const actorContextKey = "actor"

// AuthMiddleware verifies the identity provider's ID token from the
// Authorization header and attaches the resulting Actor to the gin context.
// Verified tokens are cached in Redis under their SHA-256 hash so repeated
// calls within the TTL skip the provider round trip.
func AuthMiddleware(staff staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		// The bootstrap admin token is not an ID token; match it here,
		// before provider verification would reject it.
		if actor, ok := bootstrapAdmin(token); ok {
			c.Set(actorContextKey, actor)
			c.Next()
			return
		}

		actor, cached, err := authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}

		// Keep the staff profile current on fresh verifications so push
		// targeting and the admin listing have a row per active user.
		if !cached && staff != nil {
			profile := &models.StaffProfile{
				UID:   actor.UID,
				Name:  actor.Name,
				Email: actor.Email,
				Admin: actor.Admin,
			}
			if err := staff.Upsert(profile); err != nil {
				utils.GetLogger().Warn("failed to upsert staff profile",
					zap.String("uid", actor.UID), zap.Error(err))
			}
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// GetActor returns the authenticated Actor set by AuthMiddleware.
func GetActor(c *gin.Context) (models.Actor, bool) {
	val, ok := c.Get(actorContextKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := val.(models.Actor)
	return actor, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// authenticate resolves a raw ID token to an Actor, consulting the auth
// cache first. The second return reports whether the cache served the hit.
func authenticate(ctx context.Context, token string) (models.Actor, bool, error) {
	cacheKey := utils.AuthCachePrefix + utils.HashToken(token)
	authCache := utils.GetAuthCacheClient()

	if authCache != nil {
		cached, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			var actor models.Actor
			if jsonErr := json.Unmarshal([]byte(cached), &actor); jsonErr == nil {
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return actor, true, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("auth cache read failed, verifying with provider", zap.Error(err))
		}
	}

	verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	decoded, err := utils.AuthClient.VerifyIDToken(verifyCtx, token)
	if err != nil {
		return models.Actor{}, false, err
	}

	actor := models.Actor{UID: decoded.UID}
	if name, ok := decoded.Claims["name"].(string); ok {
		actor.Name = name
	}
	if email, ok := decoded.Claims["email"].(string); ok {
		actor.Email = email
	}
	if isAdmin, ok := decoded.Claims["admin"].(bool); ok {
		actor.Admin = isAdmin
	}

	if authCache != nil {
		if data, err := json.Marshal(actor); err == nil {
			_ = authCache.Set(ctx, cacheKey, data, utils.AuthCacheTTL).Err()
		}
	}
	return actor, false, nil
}
