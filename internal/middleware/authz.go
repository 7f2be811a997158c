package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nanofrontier/internal/authz"
)

// RequireOperator пускает только операторов с одной из перечисленных ролей.
// Токен посетителя сюда не проходит: у него нет operator_id.
func RequireOperator(roles ...int) gin.HandlerFunc {
	allowed := make(map[int]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		opID, okID := c.Get("operator_id")
		roleV, okRole := c.Get("role_id")
		if !okID || !okRole || opID == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "operator access required"})
			return
		}
		roleID, _ := roleV.(int)
		if !authz.IsPrivileged(roleID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		if len(allowed) > 0 && !allowed[roleID] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
