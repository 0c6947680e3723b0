package handlers

import (
	"charity_farm/internal/economy"
	"charity_farm/internal/repository"
	"charity_farm/internal/service"
	"charity_farm/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB    *pgxpool.Pool
	Rates *economy.Rates
	Feed  *ws.Hub

	UserRepo        *repository.UserRepository
	ProjectRepo     *repository.ProjectRepository
	UpgradeRepo     *repository.UpgradeRepository
	TransactionRepo *repository.TransactionRepository

	TapService      *service.TapService
	AFKService      *service.AFKService
	DonationService *service.DonationService
	UpgradeService  *service.UpgradeService
}

func NewHandler(db *pgxpool.Pool, rates *economy.Rates, feed *ws.Hub) *Handler {
	return &Handler{
		DB:              db,
		Rates:           rates,
		Feed:            feed,
		UserRepo:        repository.NewUserRepository(db),
		ProjectRepo:     repository.NewProjectRepository(db),
		UpgradeRepo:     repository.NewUpgradeRepository(db),
		TransactionRepo: repository.NewTransactionRepository(db),
		TapService:      service.NewTapService(db, rates),
		AFKService:      service.NewAFKService(db),
		DonationService: service.NewDonationService(db),
		UpgradeService:  service.NewUpgradeService(db, rates),
	}
}

// getUserID извлекает user_id из контекста Gin
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
