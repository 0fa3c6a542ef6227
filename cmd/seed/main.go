package main

import (
	"database/sql"
	"fmt"
	"log"

	"cantina-be/internal/config"
	"cantina-be/internal/db"
	"cantina-be/internal/user"

	_ "github.com/lib/pq"
)

type seedProduct struct {
	name        string
	description string
	price       string
	imageURL    string
}

var starterProducts = []seedProduct{
	{"Café", "Café coado quentinho", "2.50", "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=400"},
	{"Coxinha", "Coxinha de frango crocante", "6.50", "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=400"},
	{"Sanduíche Natural", "Sanduíche de frango com salada", "7.00", "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?w=400"},
	{"Suco de Laranja", "Suco natural 300ml", "4.00", "https://images.unsplash.com/photo-1613478223719-2ab802602423?w=400"},
}

func main() {
	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	if err := seedAdmin(database); err != nil {
		log.Fatal(err)
	}
	if err := seedProducts(database); err != nil {
		log.Fatal(err)
	}
	fmt.Println("seed complete")
}

func seedAdmin(database *sql.DB) error {
	hash, err := user.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	res, err := database.Exec(`
		INSERT INTO users (name, email, password, role, balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, "Admin", "admin@cantina.com", hash, user.RoleAdmin, "20.00")
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if n, _ := res.RowsAffected(); n > 0 {
		fmt.Println("created admin user: admin@cantina.com")
	} else {
		fmt.Println("admin user already exists, skipping")
	}
	return nil
}

func seedProducts(database *sql.DB) error {
	var count int
	if err := database.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		fmt.Println("products already seeded, skipping")
		return nil
	}

	for _, p := range starterProducts {
		_, err := database.Exec(`
			INSERT INTO products (name, description, price, image_url)
			VALUES ($1, $2, $3, $4)
		`, p.name, p.description, p.price, p.imageURL)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.name, err)
		}
	}
	fmt.Printf("created %d starter products\n", len(starterProducts))
	return nil
}
