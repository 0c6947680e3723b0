package main

import (
	"context"
	"log"
	"os"

	"charity_farm/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type seedProject struct {
	title       string
	description string
	target      float64
	country     string
	category    string
	image       string
}

type seedUpgrade struct {
	name        string
	description string
	baseCost    float64
	effectType  domain.EffectType
	effectValue float64
}

var projects = []seedProject{
	{"Школа в Кении", "Строительство школы для детей в сельской местности Кении", 50000, "Кения", "Образование", "kenya_school.jpg"},
	{"Магазин продуктов", "Открытие продуктового магазина для местных жителей", 10000, "Гана", "Питание", "food_store.jpg"},
	{"Дом человеку на Гаити", "Построить дом для нуждающейся семьи на Гаити", 30000, "Гаити", "Жильё", "haiti_house.jpg"},
	{"Велик ребенку", "Подарить велосипед ребенку из малообеспеченной семьи", 2000, "Индия", "Досуг", "child_bike.jpg"},
	{"Шоколадка рандомному ребенку", "Подарить шоколадку случайному ребенку", 200, "Россия", "Подарки", "random_chocolate.jpg"},
	{"Книга Python для детей", "Подарить книгу \"Python для детей\" талантливому школьнику", 1000, "Россия", "Образование", "python_book.jpg"},
	{"Детский дом", "Помочь детскому дому с ремонтом и оборудованием", 100000, "Украина", "Социальная поддержка", "orphanage.jpg"},
}

var upgrades = []seedUpgrade{
	{"Улучшенный тап", "Увеличивает награду за тап на 10%", 100, domain.EffectTapReward, 0.1},
	{"AFK заработок", "Увеличивает AFK заработок на 15%", 500, domain.EffectAFKReward, 0.15},
	{"Опыт", "Увеличивает получаемый опыт на 20%", 200, domain.EffectExperience, 0.2},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()

	for _, p := range projects {
		tag, err := db.Exec(ctx,
			`INSERT INTO projects (title, description, target_amount, country, category, image)
			 SELECT $1, $2, $3, $4, $5, $6
			 WHERE NOT EXISTS (SELECT 1 FROM projects WHERE title = $1)`,
			p.title, p.description, p.target, p.country, p.category, p.image,
		)
		if err != nil {
			log.Fatalf("seed project %q: %v", p.title, err)
		}
		if tag.RowsAffected() > 0 {
			log.Printf("seeded project %q", p.title)
		}
	}

	for _, u := range upgrades {
		tag, err := db.Exec(ctx,
			`INSERT INTO upgrades (name, description, effect_type, effect_value, base_cost, cost)
			 SELECT $1, $2, $3, $4, $5, $5
			 WHERE NOT EXISTS (SELECT 1 FROM upgrades WHERE name = $1)`,
			u.name, u.description, u.effectType, u.effectValue, u.baseCost,
		)
		if err != nil {
			log.Fatalf("seed upgrade %q: %v", u.name, err)
		}
		if tag.RowsAffected() > 0 {
			log.Printf("seeded upgrade %q", u.name)
		}
	}

	log.Println("seed complete")
}
