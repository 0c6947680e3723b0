package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"charity_farm/internal/economy"
	"charity_farm/internal/http/middleware"
	"charity_farm/internal/service"

	"github.com/gin-gonic/gin"
)

// PurchaseUpgrade handles POST /purchase_upgrade/:upgrade_id. Max-level and
// insufficient-funds answers are 200 with success=false; unknown id is 404.
func (h *Handler) PurchaseUpgrade(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	upgradeID, err := strconv.ParseInt(c.Param("upgrade_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "upgrade not found"})
		return
	}

	res, err := h.UpgradeService.Purchase(c.Request.Context(), userID, upgradeID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUpgradeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "upgrade not found"})
		case errors.Is(err, service.ErrMaxLevelReached):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "upgrade is at max level"})
		case errors.Is(err, service.ErrInsufficientFunds):
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "insufficient funds"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "purchase failed"})
		}
		return
	}

	middleware.UpgradePurchases.Inc()

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "upgrade purchased",
		"new_balance":   res.NewBalance,
		"upgrade_level": res.UpgradeLevel,
		"next_cost":     res.NextCost,
	})
}

// ListUpgrades handles GET /upgrades
func (h *Handler) ListUpgrades(c *gin.Context) {
	upgrades, err := h.UpgradeRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list upgrades"})
		return
	}

	type upgradeView struct {
		ID          int64   `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		EffectType  string  `json:"effect_type"`
		EffectValue float64 `json:"effect_value"`
		Level       int     `json:"level"`
		MaxLevel    int     `json:"max_level"`
		NextCost    float64 `json:"next_cost"`
	}

	res := make([]upgradeView, 0, len(upgrades))
	for _, u := range upgrades {
		res = append(res, upgradeView{
			ID:          u.ID,
			Name:        u.Name,
			Description: u.Description,
			EffectType:  string(u.EffectType),
			EffectValue: u.EffectValue,
			Level:       u.Level,
			MaxLevel:    u.MaxLevel,
			NextCost:    economy.UpgradeCost(u.BaseCost, u.Level),
		})
	}

	c.JSON(http.StatusOK, gin.H{"upgrades": res})
}
