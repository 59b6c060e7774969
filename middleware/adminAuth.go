package middleware

import (
	"net/http"

	"eccos/config"
	"eccos/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthMiddleware gates admin endpoints on the actor's admin flag. The
// flag comes either from the identity provider's admin claim or from the
// bootstrap-token short circuit in AuthMiddleware.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, ok := GetActor(c); ok && actor.Admin {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
	}
}

// bootstrapAdmin matches a bearer token against the configured bcrypt hash
// of the bootstrap admin token. The bootstrap path exists so the first admin
// can be provisioned before any provider claims are set; an empty hash
// disables it. It must run before provider verification, since the bootstrap
// token is not an ID token and would never survive VerifyIDToken.
func bootstrapAdmin(token string) (models.Actor, bool) {
	hash := config.AppConfig.AdminBootstrapTokenHash
	if hash == "" {
		return models.Actor{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
		return models.Actor{}, false
	}
	return models.Actor{UID: "bootstrap-admin", Name: "Bootstrap admin", Admin: true}, true
}
