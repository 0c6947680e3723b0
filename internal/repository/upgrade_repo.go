package repository

import (
	"context"

	"charity_farm/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UpgradeRepository struct {
	db *pgxpool.Pool
}

func NewUpgradeRepository(db *pgxpool.Pool) *UpgradeRepository {
	return &UpgradeRepository{db: db}
}

const upgradeColumns = `id, name, description, effect_type, effect_value, level, max_level, base_cost, cost`

// List returns the whole upgrade catalog
func (r *UpgradeRepository) List(ctx context.Context) ([]*domain.Upgrade, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+upgradeColumns+` FROM upgrades ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Upgrade
	for rows.Next() {
		var u domain.Upgrade
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Description, &u.EffectType, &u.EffectValue,
			&u.Level, &u.MaxLevel, &u.BaseCost, &u.Cost,
		); err != nil {
			return nil, err
		}
		res = append(res, &u)
	}
	return res, rows.Err()
}
