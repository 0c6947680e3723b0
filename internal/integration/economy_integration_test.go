package integration

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"charity_farm/internal/domain"
	"charity_farm/internal/economy"
	"charity_farm/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func testDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	applyMigrations(t, db)
	return db
}

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

// clearUpgrades removes catalog rows so per-test upgrades are the only ones
// visible to the effect_type lookups.
func clearUpgrades(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	if _, err := db.Exec(context.Background(), `DELETE FROM upgrades`); err != nil {
		t.Fatalf("clear upgrades: %v", err)
	}
}

func createTestUser(t *testing.T, db *pgxpool.Pool, balance float64) int64 {
	t.Helper()
	username := fmt.Sprintf("it_user_%d", time.Now().UnixNano())
	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO users (username, password_hash, balance) VALUES ($1, 'x', $2) RETURNING id`,
		username, balance,
	).Scan(&id)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func createTestProject(t *testing.T, db *pgxpool.Pool, target, current float64) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO projects (title, description, target_amount, current_amount, country, category)
		 VALUES ($1, 'integration test project', $2, $3, 'Кения', 'Образование')
		 RETURNING id`,
		fmt.Sprintf("it_project_%d", time.Now().UnixNano()), target, current,
	).Scan(&id)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return id
}

func createTestUpgrade(t *testing.T, db *pgxpool.Pool, effectType domain.EffectType, effectValue, baseCost float64, level, maxLevel int) int64 {
	t.Helper()
	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO upgrades (name, description, effect_type, effect_value, level, max_level, base_cost, cost)
		 VALUES ($1, 'integration test upgrade', $2, $3, $4, $5, $6, $6)
		 RETURNING id`,
		fmt.Sprintf("it_upgrade_%d", time.Now().UnixNano()), effectType, effectValue, level, maxLevel, baseCost,
	).Scan(&id)
	if err != nil {
		t.Fatalf("create upgrade: %v", err)
	}
	return id
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTapService_FirstTap(t *testing.T) {
	db := testDB(t)
	clearUpgrades(t, db)
	userID := createTestUser(t, db, 0)

	svc := service.NewTapService(db, economy.NewRates())

	res, err := svc.Tap(context.Background(), userID)
	if err != nil {
		t.Fatalf("tap: %v", err)
	}
	if !almostEqual(res.Reward, 0.01) {
		t.Fatalf("reward = %v; want 0.01", res.Reward)
	}
	if !almostEqual(res.Balance, 0.01) {
		t.Fatalf("balance = %v; want 0.01", res.Balance)
	}
	if res.Experience != 1 || res.Level != 1 || res.NextLevel != 100 {
		t.Fatalf("progression = (%d, %d, %d); want (1, 1, 100)", res.Experience, res.Level, res.NextLevel)
	}

	// immediate second tap hits the cooldown and changes nothing
	if _, err := svc.Tap(context.Background(), userID); err != service.ErrCooldownActive {
		t.Fatalf("second tap err = %v; want ErrCooldownActive", err)
	}

	var balance float64
	var experience int
	if err := db.QueryRow(context.Background(),
		`SELECT balance, experience FROM users WHERE id = $1`, userID,
	).Scan(&balance, &experience); err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !almostEqual(balance, 0.01) || experience != 1 {
		t.Fatalf("after cooldown: balance = %v, experience = %d; want 0.01, 1", balance, experience)
	}
}

func TestTapService_UpgradeMultiplier(t *testing.T) {
	db := testDB(t)
	clearUpgrades(t, db)
	createTestUpgrade(t, db, domain.EffectTapReward, 0.1, 100, 3, 10)
	userID := createTestUser(t, db, 0)

	svc := service.NewTapService(db, economy.NewRates())

	res, err := svc.Tap(context.Background(), userID)
	if err != nil {
		t.Fatalf("tap: %v", err)
	}
	// 0.01 * (1 + 3*0.1) = 0.013
	if !almostEqual(res.Reward, 0.013) {
		t.Fatalf("reward = %v; want 0.013", res.Reward)
	}
}

func TestDonationService_CompletesProject(t *testing.T) {
	db := testDB(t)
	userID := createTestUser(t, db, 100)
	projectID := createTestProject(t, db, 200, 190)

	svc := service.NewDonationService(db)

	res, err := svc.Donate(context.Background(), userID, projectID, 20)
	if err != nil {
		t.Fatalf("donate: %v", err)
	}
	if !almostEqual(res.Progress, 105.0) {
		t.Fatalf("progress = %v; want 105", res.Progress)
	}
	if !res.ProjectCompleted {
		t.Fatalf("expected project to be completed")
	}
	if !almostEqual(res.Balance, 80) {
		t.Fatalf("balance = %v; want 80", res.Balance)
	}
	if !almostEqual(res.TotalHelp, 20) {
		t.Fatalf("total_help = %v; want 20", res.TotalHelp)
	}

	var status string
	var completedProjects int
	if err := db.QueryRow(context.Background(),
		`SELECT p.status, u.completed_projects FROM projects p, users u WHERE p.id = $1 AND u.id = $2`,
		projectID, userID,
	).Scan(&status, &completedProjects); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if status != "completed" || completedProjects != 1 {
		t.Fatalf("status = %s, completed_projects = %d; want completed, 1", status, completedProjects)
	}

	// a later donation must not re-complete or re-credit
	res, err = svc.Donate(context.Background(), userID, projectID, 10)
	if err != nil {
		t.Fatalf("second donate: %v", err)
	}
	if res.ProjectCompleted {
		t.Fatalf("project completed twice")
	}
	if err := db.QueryRow(context.Background(),
		`SELECT completed_projects FROM users WHERE id = $1`, userID,
	).Scan(&completedProjects); err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if completedProjects != 1 {
		t.Fatalf("completed_projects = %d; want 1", completedProjects)
	}
}

func TestDonationService_InsufficientFunds(t *testing.T) {
	db := testDB(t)
	userID := createTestUser(t, db, 5)
	projectID := createTestProject(t, db, 200, 0)

	svc := service.NewDonationService(db)

	if _, err := svc.Donate(context.Background(), userID, projectID, 10); err != service.ErrInsufficientFunds {
		t.Fatalf("err = %v; want ErrInsufficientFunds", err)
	}

	var balance, current float64
	if err := db.QueryRow(context.Background(),
		`SELECT u.balance, p.current_amount FROM users u, projects p WHERE u.id = $1 AND p.id = $2`,
		userID, projectID,
	).Scan(&balance, &current); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !almostEqual(balance, 5) || !almostEqual(current, 0) {
		t.Fatalf("mutation on rejected donation: balance = %v, current = %v", balance, current)
	}
}

func TestDonationService_UnknownProject(t *testing.T) {
	db := testDB(t)
	userID := createTestUser(t, db, 5)

	svc := service.NewDonationService(db)
	if _, err := svc.Donate(context.Background(), userID, 99999999, 1); err != service.ErrProjectNotFound {
		t.Fatalf("err = %v; want ErrProjectNotFound", err)
	}
}

func TestUpgradeService_Purchase(t *testing.T) {
	db := testDB(t)
	clearUpgrades(t, db)
	// level 2, base 100: next purchase costs 100*1.5^2 = 225
	upgradeID := createTestUpgrade(t, db, domain.EffectTapReward, 0.1, 100, 2, 10)

	rates := economy.NewRates()
	svc := service.NewUpgradeService(db, rates)

	poorID := createTestUser(t, db, 200)
	if _, err := svc.Purchase(context.Background(), poorID, upgradeID); err != service.ErrInsufficientFunds {
		t.Fatalf("err = %v; want ErrInsufficientFunds", err)
	}

	richID := createTestUser(t, db, 300)
	res, err := svc.Purchase(context.Background(), richID, upgradeID)
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if !almostEqual(res.NewBalance, 75) {
		t.Fatalf("balance = %v; want 75", res.NewBalance)
	}
	if res.UpgradeLevel != 3 {
		t.Fatalf("level = %d; want 3", res.UpgradeLevel)
	}
	if !almostEqual(res.NextCost, 337.5) {
		t.Fatalf("next cost = %v; want 337.5", res.NextCost)
	}
	// tap baseline scaled by 1.1 after the purchase
	if !almostEqual(rates.TapReward(), 0.011) {
		t.Fatalf("tap baseline = %v; want 0.011", rates.TapReward())
	}
}

func TestUpgradeService_MaxLevel(t *testing.T) {
	db := testDB(t)
	clearUpgrades(t, db)
	upgradeID := createTestUpgrade(t, db, domain.EffectExperience, 0.2, 200, 10, 10)
	userID := createTestUser(t, db, 1e9)

	svc := service.NewUpgradeService(db, economy.NewRates())
	if _, err := svc.Purchase(context.Background(), userID, upgradeID); err != service.ErrMaxLevelReached {
		t.Fatalf("err = %v; want ErrMaxLevelReached", err)
	}
}

func TestUpgradeService_AFKEffect(t *testing.T) {
	db := testDB(t)
	clearUpgrades(t, db)
	upgradeID := createTestUpgrade(t, db, domain.EffectAFKReward, 0.15, 500, 0, 10)
	userID := createTestUser(t, db, 1000)

	svc := service.NewUpgradeService(db, economy.NewRates())
	if _, err := svc.Purchase(context.Background(), userID, upgradeID); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	var multiplier float64
	if err := db.QueryRow(context.Background(),
		`SELECT afk_multiplier FROM afk_stats WHERE user_id = $1`, userID,
	).Scan(&multiplier); err != nil {
		t.Fatalf("afk_stats not created: %v", err)
	}
	if !almostEqual(multiplier, 1.15) {
		t.Fatalf("afk_multiplier = %v; want 1.15", multiplier)
	}
}

func TestAFKService_NoUpgradeIsNoOp(t *testing.T) {
	db := testDB(t)
	clearUpgrades(t, db)
	userID := createTestUser(t, db, 50)

	svc := service.NewAFKService(db)

	res, err := svc.Claim(context.Background(), userID)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.HasUpgrade || res.Earnings != 0 {
		t.Fatalf("expected zero earnings without upgrade, got %+v", res)
	}
	if !almostEqual(res.NewBalance, 50) {
		t.Fatalf("balance = %v; want 50", res.NewBalance)
	}

	// no AFKStats row may appear: idle time before the first upgrade
	// purchase is never creditable
	var count int
	if err := db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM afk_stats WHERE user_id = $1`, userID,
	).Scan(&count); err != nil {
		t.Fatalf("count afk_stats: %v", err)
	}
	if count != 0 {
		t.Fatalf("afk_stats created on no-op claim")
	}
}

func TestAFKService_Claim(t *testing.T) {
	db := testDB(t)
	clearUpgrades(t, db)
	createTestUpgrade(t, db, domain.EffectAFKReward, 0.15, 500, 1, 10)
	userID := createTestUser(t, db, 0)

	// one hour idle at multiplier 1.0 yields 10.0
	if _, err := db.Exec(context.Background(),
		`INSERT INTO afk_stats (user_id, last_afk_check) VALUES ($1, now() - interval '1 hour')`,
		userID,
	); err != nil {
		t.Fatalf("seed afk_stats: %v", err)
	}

	svc := service.NewAFKService(db)
	res, err := svc.Claim(context.Background(), userID)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.Earnings < 9.99 || res.Earnings > 10.1 {
		t.Fatalf("earnings = %v; want ~10.0", res.Earnings)
	}
	if res.NewBalance < 9.99 || res.NewBalance > 10.1 {
		t.Fatalf("balance = %v; want ~10.0", res.NewBalance)
	}

	// a second claim right away credits only the seconds since the first
	res2, err := svc.Claim(context.Background(), userID)
	if err != nil {
		t.Fatalf("second claim: %v", err)
	}
	if res2.Earnings > 0.1 {
		t.Fatalf("second claim earnings = %v; want ~0", res2.Earnings)
	}
}
