package service

import (
	"context"
	"errors"
	"time"

	"charity_farm/internal/domain"
	"charity_farm/internal/economy"
	"charity_farm/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TapService applies the tap action: cooldown check, reward, experience and
// level-up, all inside one transaction holding the user row lock.
type TapService struct {
	db              *pgxpool.Pool
	rates           *economy.Rates
	transactionRepo *repository.TransactionRepository
}

func NewTapService(db *pgxpool.Pool, rates *economy.Rates) *TapService {
	return &TapService{
		db:              db,
		rates:           rates,
		transactionRepo: repository.NewTransactionRepository(db),
	}
}

type TapResult struct {
	Reward     float64 `json:"reward"`
	Balance    float64 `json:"balance"`
	Experience int     `json:"experience"`
	Level      int     `json:"level"`
	NextLevel  int     `json:"next_level"`
	LeveledUp  bool    `json:"-"`
}

func (s *TapService) Tap(ctx context.Context, userID int64) (*TapResult, error) {
	now := time.Now()

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var (
		balance    float64
		experience int
		level      int
		lastTap    *time.Time
	)
	err = tx.QueryRow(ctx,
		`SELECT balance, experience, level, last_tap FROM users WHERE id = $1 FOR UPDATE`,
		userID,
	).Scan(&balance, &experience, &level, &lastTap)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if lastTap != nil && now.Sub(*lastTap) < economy.TapCooldown {
		return nil, ErrCooldownActive
	}

	// Глобальное улучшение тапа (общее для всех пользователей)
	multiplier := 1.0
	var upgradeLevel int
	var effectValue float64
	err = tx.QueryRow(ctx,
		`SELECT level, effect_value FROM upgrades WHERE effect_type = $1 ORDER BY id LIMIT 1`,
		domain.EffectTapReward,
	).Scan(&upgradeLevel, &effectValue)
	switch {
	case err == nil:
		multiplier = economy.TapMultiplier(upgradeLevel, effectValue)
	case errors.Is(err, pgx.ErrNoRows):
		// no tap upgrade seeded, multiplier stays 1.0
	default:
		return nil, err
	}

	reward := economy.TapReward(s.rates.TapReward(), multiplier, level)
	newLevel, newExperience, leveledUp := economy.ApplyExperience(level, experience, 1)

	var newBalance float64
	err = tx.QueryRow(ctx,
		`UPDATE users
		 SET balance = balance + $1, experience = $2, level = $3, last_tap = $4
		 WHERE id = $5
		 RETURNING balance`,
		reward, newExperience, newLevel, now, userID,
	).Scan(&newBalance)
	if err != nil {
		return nil, err
	}

	record := &domain.Transaction{
		UserID: userID,
		Type:   "tap",
		Amount: reward,
		Meta:   map[string]interface{}{"level": newLevel},
	}
	if err := s.transactionRepo.CreateWithTx(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &TapResult{
		Reward:     reward,
		Balance:    newBalance,
		Experience: newExperience,
		Level:      newLevel,
		NextLevel:  economy.NextLevelExp(newLevel),
		LeveledUp:  leveledUp,
	}, nil
}
