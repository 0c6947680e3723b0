package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"charity_farm/internal/domain"
	"charity_farm/internal/http/middleware"
	"charity_farm/internal/service"
	"charity_farm/internal/ws"

	"github.com/gin-gonic/gin"
)

// HelpProject handles POST /help_project/:project_id with form field amount.
func (h *Handler) HelpProject(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil || amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "amount must be a positive number"})
		return
	}

	res, err := h.DonationService.Donate(c.Request.Context(), userID, projectID, amount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "project not found"})
		case errors.Is(err, service.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "amount must be a positive number"})
		case errors.Is(err, service.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "insufficient funds"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "donation failed"})
		}
		return
	}

	middleware.DonationsTotal.Inc()

	h.Feed.Broadcast(ws.DonationEvent{
		Type:      "donation",
		ProjectID: res.ProjectID,
		Project:   res.ProjectTitle,
		Amount:    res.Amount,
		Progress:  res.Progress,
	})
	if res.ProjectCompleted {
		middleware.ProjectsCompleted.Inc()
		h.Feed.Broadcast(ws.ProjectCompletedEvent{
			Type:      "project_completed",
			ProjectID: res.ProjectID,
			Project:   res.ProjectTitle,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          "thank you for your help!",
		"project_progress": res.Progress,
		"user_balance":     res.Balance,
		"total_help":       res.TotalHelp,
	})
}

// ListProjects handles GET /projects
func (h *Handler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()

	active, err := h.ProjectRepo.ListByStatus(ctx, domain.ProjectStatusActive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	completed, err := h.ProjectRepo.ListByStatus(ctx, domain.ProjectStatusCompleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}

	type projectView struct {
		*domain.Project
		Progress float64 `json:"progress"`
	}
	view := func(ps []*domain.Project) []projectView {
		res := make([]projectView, 0, len(ps))
		for _, p := range ps {
			res = append(res, projectView{Project: p, Progress: p.Progress()})
		}
		return res
	}

	c.JSON(http.StatusOK, gin.H{
		"active":    view(active),
		"completed": view(completed),
	})
}
