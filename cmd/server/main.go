package main

import (
	"log"

	"stylehub-be/internal/config"
	"stylehub-be/internal/db"
	"stylehub-be/internal/httpapi"
	"stylehub-be/internal/logger"
	"stylehub-be/internal/order"
	"stylehub-be/internal/product"
	"stylehub-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	router := httpapi.NewRouter(httpapi.Services{
		User:    userSvc,
		Product: productSvc,
		Order:   orderSvc,
	})

	log.Printf("🚀 StyleHub API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(router.Run(":" + cfg.AppPort))
}
