package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"nanofrontier/internal/services"
)

type IdentityHandler struct {
	Service *services.IdentityService
}

func NewIdentityHandler(service *services.IdentityService) *IdentityHandler {
	return &IdentityHandler{Service: service}
}

// @Summary      Анонимная сессия
// @Description  Выдаёт (или подтверждает) анонимную идентичность посетителя. Идемпотентно: действующий токен возвращается без изменений.
// @Tags         Session
// @Produce      json
// @Param        Authorization  header    string  false  "Bearer <существующий токен>"
// @Success      200  {object}  models.VisitorSession
// @Failure      502  {object}  map[string]string
// @Router       /session/anonymous [post]
func (h *IdentityHandler) EnsureAnonymous(c *gin.Context) {
	presented := ""
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		presented = strings.TrimSpace(parts[1])
	}

	session, err := h.Service.EnsureIdentity(presented, c.Request.UserAgent())
	if err != nil {
		log.Printf("[session][anonymous] provision failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "identity provider unavailable"})
		return
	}
	c.JSON(http.StatusOK, session)
}
