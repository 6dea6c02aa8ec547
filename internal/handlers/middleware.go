package handlers

import (
	"net/http"
	"strings"

	"pixel_bistro/internal/service"

	"github.com/gin-gonic/gin"
)

const chefIDKey = "chefId"

func (h *Handler) chefIDMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	who, err := h.services.Identify(parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(chefIDKey, who.ID)
	c.Request = c.Request.WithContext(service.WithChef(c.Request.Context(), who.Chef))
	c.Next()
}

// wsTokenFromQuery lets browsers, which cannot set headers on a websocket
// handshake, authenticate with ?token=. A header always wins.
func wsTokenFromQuery(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		if token := c.Query("token"); token != "" {
			c.Request.Header.Set("Authorization", "Bearer "+token)
		}
	}
	c.Next()
}
