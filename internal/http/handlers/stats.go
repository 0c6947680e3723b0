package handlers

import (
	"net/http"

	"charity_farm/internal/economy"

	"github.com/gin-gonic/gin"
)

// UserStats handles GET /user_stats
func (h *Handler) UserStats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.UserRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"balance":            user.Balance,
		"level":              user.Level,
		"experience":         user.Experience,
		"next_level":         economy.NextLevelExp(user.Level),
		"total_help":         user.TotalHelp,
		"completed_projects": user.CompletedProjects,
	})
}

// Me handles GET /me: identity plus economy stats in one payload
func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.UserRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 user.ID,
		"username":           user.Username,
		"created_at":         user.CreatedAt,
		"balance":            user.Balance,
		"experience":         user.Experience,
		"level":              user.Level,
		"next_level":         economy.NextLevelExp(user.Level),
		"total_help":         user.TotalHelp,
		"completed_projects": user.CompletedProjects,
	})
}

// History handles GET /history: recent balance movements
func (h *Handler) History(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	items, err := h.TransactionRepo.GetByUserID(c.Request.Context(), userID, 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": items})
}

// TopHelpers handles GET /top
func (h *Handler) TopHelpers(c *gin.Context) {
	top, err := h.UserRepo.GetTopByHelp(c.Request.Context(), 100)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"top": top})
}
