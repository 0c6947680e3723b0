package handlers

import (
	"errors"
	"net/http"

	"charity_farm/internal/http/middleware"
	"charity_farm/internal/service"

	"github.com/gin-gonic/gin"
)

// Tap handles POST /tap. Cooldown violations are not errors at the HTTP
// level: they answer 200 with success=false, как и остальные действия.
func (h *Handler) Tap(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.TapService.Tap(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCooldownActive) {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "wait 1 second between taps",
			})
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "tap failed"})
		return
	}

	middleware.TapsTotal.Inc()

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"reward":     res.Reward,
		"balance":    res.Balance,
		"experience": res.Experience,
		"level":      res.Level,
		"next_level": res.NextLevel,
	})
}
