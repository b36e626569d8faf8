// Command seed bootstraps a fresh database: it upserts the admin
// account and replaces the catalog with the sample products. One-time
// setup utility, not runtime behavior.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"

	"stylehub-be/internal/auth"
	"stylehub-be/internal/config"
	"stylehub-be/internal/db"
	"stylehub-be/internal/product"
	"stylehub-be/internal/user"
)

var sampleProducts = []product.NewProduct{
	{
		Name:        "Classic Denim Jacket",
		Description: "A timeless denim jacket perfect for layering. Made from premium cotton denim with a vintage wash finish.",
		Price:       89.99,
		Category:    "men",
		Images:      []string{"https://images.unsplash.com/photo-1551537482-f2075a1d41f2?w=500"},
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Blue", "Black"},
		Stock:       25,
		Featured:    true,
	},
	{
		Name:        "Floral Summer Dress",
		Description: "Elegant floral print dress perfect for summer occasions. Lightweight and comfortable fabric.",
		Price:       75.50,
		Category:    "women",
		Images:      []string{"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=500"},
		Sizes:       []string{"XS", "S", "M", "L"},
		Colors:      []string{"Pink", "White", "Blue"},
		Stock:       18,
		Featured:    true,
	},
	{
		Name:        "Kids Colorful T-Shirt",
		Description: "Fun and colorful t-shirt for kids. Soft cotton material that's comfortable for active play.",
		Price:       24.99,
		Category:    "kids",
		Images:      []string{"https://images.unsplash.com/photo-1503919545889-aef636e10ad4?w=500"},
		Sizes:       []string{"XS", "S", "M"},
		Colors:      []string{"Red", "Blue", "Green", "Yellow"},
		Stock:       30,
	},
	{
		Name:        "Leather Crossbody Bag",
		Description: "Stylish leather crossbody bag perfect for everyday use. Genuine leather with adjustable strap.",
		Price:       125.00,
		Category:    "accessories",
		Images:      []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=500"},
		Colors:      []string{"Brown", "Black", "Tan"},
		Stock:       15,
		Featured:    true,
	},
	{
		Name:        "Casual Cotton Shirt",
		Description: "Comfortable cotton shirt for everyday wear. Breathable fabric with a modern fit.",
		Price:       45.00,
		Category:    "men",
		Images:      []string{"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=500"},
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"White", "Blue", "Gray"},
		Stock:       22,
	},
	{
		Name:        "Elegant Evening Gown",
		Description: "Sophisticated evening gown perfect for special occasions. Premium fabric with elegant design.",
		Price:       199.99,
		Category:    "women",
		Images:      []string{"https://images.unsplash.com/photo-1566479179817-c0efefd95e1a?w=500"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Black", "Navy", "Burgundy"},
		Stock:       8,
		Featured:    true,
	},
}

func main() {
	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	ctx := context.Background()

	if err := seedAdmin(ctx, database); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	if err := seedProducts(ctx, database); err != nil {
		log.Fatalf("failed to seed products: %v", err)
	}

	log.Println("✅ Seed completed.")
}

func seedAdmin(ctx context.Context, database *sql.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	repo := user.NewRepository(database)

	if _, err := repo.FindByEmail(ctx, adminEmail); err == nil {
		log.Printf("Admin %s already exists, skipping", adminEmail)
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	u, err := repo.Create(ctx, "Store Admin", adminEmail, hashed)
	if err != nil {
		return err
	}

	_, err = database.ExecContext(ctx, "UPDATE users SET role = 'admin' WHERE id = $1", u.ID)
	if err != nil {
		return err
	}

	log.Printf("Admin account created: %s", adminEmail)
	return nil
}

func seedProducts(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return err
	}

	repo := product.NewRepository(database)
	for _, p := range sampleProducts {
		if _, err := repo.Create(ctx, p); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d products", len(sampleProducts))
	return nil
}
