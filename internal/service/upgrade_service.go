package service

import (
	"context"
	"errors"

	"charity_farm/internal/domain"
	"charity_farm/internal/economy"
	"charity_farm/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UpgradeService purchases catalog upgrades and applies their side effects.
type UpgradeService struct {
	db              *pgxpool.Pool
	rates           *economy.Rates
	transactionRepo *repository.TransactionRepository
}

func NewUpgradeService(db *pgxpool.Pool, rates *economy.Rates) *UpgradeService {
	return &UpgradeService{
		db:              db,
		rates:           rates,
		transactionRepo: repository.NewTransactionRepository(db),
	}
}

type PurchaseResult struct {
	NewBalance   float64
	UpgradeLevel int
	NextCost     float64
}

// Purchase buys one level of the upgrade. Lock order: upgrades, then users,
// then afk_stats. The tap_reward side effect scales the process-wide tap
// baseline and is applied only after a successful commit; the afk_reward
// side effect is per-user and committed with the purchase.
func (s *UpgradeService) Purchase(ctx context.Context, userID, upgradeID int64) (*PurchaseResult, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		name        string
		effectType  domain.EffectType
		effectValue float64
		baseCost    float64
		level       int
		maxLevel    int
	)
	err = tx.QueryRow(ctx,
		`SELECT name, effect_type, effect_value, base_cost, level, max_level
		 FROM upgrades WHERE id = $1 FOR UPDATE`,
		upgradeID,
	).Scan(&name, &effectType, &effectValue, &baseCost, &level, &maxLevel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUpgradeNotFound
		}
		return nil, err
	}

	if level >= maxLevel {
		return nil, ErrMaxLevelReached
	}

	cost := economy.UpgradeCost(baseCost, level)

	var balance float64
	err = tx.QueryRow(ctx,
		`SELECT balance FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if balance < cost {
		return nil, ErrInsufficientFunds
	}

	var newBalance float64
	err = tx.QueryRow(ctx,
		`UPDATE users SET balance = balance - $1 WHERE id = $2 RETURNING balance`,
		cost, userID,
	).Scan(&newBalance)
	if err != nil {
		return nil, err
	}

	newLevel := level + 1
	// cost column keeps the price just paid, for display only
	if _, err := tx.Exec(ctx,
		`UPDATE upgrades SET level = $1, cost = $2 WHERE id = $3`,
		newLevel, cost, upgradeID,
	); err != nil {
		return nil, err
	}

	switch effectType {
	case domain.EffectAFKReward:
		if _, err := getOrCreateAFKStats(ctx, tx, userID); err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE afk_stats SET afk_multiplier = afk_multiplier * $1 WHERE user_id = $2`,
			economy.EffectFactor(effectValue), userID,
		); err != nil {
			return nil, err
		}
	case domain.EffectExperience:
		// declared in the catalog but has no applied effect
	}

	record := &domain.Transaction{
		UserID: userID,
		Type:   "upgrade",
		Amount: -cost,
		Meta:   map[string]interface{}{"upgrade_id": upgradeID, "name": name, "level": newLevel},
	}
	if err := s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if effectType == domain.EffectTapReward {
		s.rates.ScaleTapReward(economy.EffectFactor(effectValue))
	}

	return &PurchaseResult{
		NewBalance:   newBalance,
		UpgradeLevel: newLevel,
		NextCost:     economy.UpgradeCost(baseCost, newLevel),
	}, nil
}
