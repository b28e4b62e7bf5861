package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	professionalRepo "carelink/database/repository/professional"
	userRepo "carelink/database/repository/user"
	"carelink/utils"
)

// AnyAuthMiddleware accepts a token from either account type. Used on the
// shared surfaces, the feed and appointment cancellation.
func AnyAuthMiddleware(users userRepo.UserRepository, profs professionalRepo.ProfessionalRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		hash := utils.HashToken(tokenString)
		if usr, err := users.GetByTokenHash(c.Request.Context(), hash); err == nil && usr != nil {
			c.Set("userID", usr.ID)
			c.Next()
			return
		}
		if prof, err := profs.GetByTokenHash(c.Request.Context(), hash); err == nil && prof != nil {
			c.Set("professionalID", prof.ID)
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
	}
}
