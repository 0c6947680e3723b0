package handlers

import (
	"errors"
	"net/http"

	"charity_farm/internal/service"

	"github.com/gin-gonic/gin"
)

// AFKEarnings handles GET /afk_earnings
func (h *Handler) AFKEarnings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	res, err := h.AFKService.Claim(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "afk claim failed"})
		return
	}

	if !res.HasUpgrade {
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"earnings":    0,
			"new_balance": res.NewBalance,
			"message":     "buy the AFK upgrade to start earning passive income",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"earnings":           res.Earnings,
		"total_afk_earnings": res.TotalAFKEarnings,
		"new_balance":        res.NewBalance,
	})
}
