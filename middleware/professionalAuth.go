package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	professionalRepo "carelink/database/repository/professional"
	"carelink/utils"
)

// ProfessionalAuthMiddleware authenticates professional accounts by token
// hash lookup, mirroring the patient-side middleware.
func ProfessionalAuthMiddleware(repo professionalRepo.ProfessionalRepository) gin.HandlerFunc {
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

		prof, err := repo.GetByTokenHash(c.Request.Context(), utils.HashToken(tokenString))
		if err != nil || prof == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or professional not found"})
			return
		}

		c.Set("professionalID", prof.ID)
		c.Next()
	}
}
