// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"grocery-api/controllers"
	"grocery-api/routes"
	"grocery-api/services"
	"grocery-api/store"
	"grocery-api/utils"
	"grocery-api/ws"
)

func envFloat(name string, fallback float64) float64 {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("Invalid %s=%q, using %v", name, v, fallback)
	}
	return fallback
}

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Redis-backed login attempt limiter
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	loginAttempts := utils.NewLoginAttemptStore(redisAddr)

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Stores
	orderStore := store.NewOrderStore(client)
	productStore := store.NewProductStore(client)
	customerStore := store.NewCustomerStore(client)
	driverStore := store.NewDriverStore(client)
	promoStore := store.NewPromoStore(client)

	// Pricing config: regional tax rate and flat delivery fee
	pricing := services.NewPricingCalculator(
		envFloat("TAX_RATE", 0.084),
		envFloat("DELIVERY_FEE", 6.99),
	)

	// Notification sink: websocket push + email
	hub := ws.NewHub()
	notifier := ws.NewOrderNotifier(hub, emailService)

	orderService := services.NewOrderService(orderStore, productStore, customerStore, driverStore, promoStore, pricing, notifier)

	// Initialize controllers
	userController := controllers.NewUserController(client, loginAttempts)
	productController := controllers.NewProductController(client)
	cartController := controllers.NewCartController(client)
	orderController := controllers.NewOrderController(orderService, customerStore)
	promoController := controllers.NewPromoController(promoStore, customerStore)
	driverController := controllers.NewDriverController(driverStore)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, userController, productController, cartController, orderController, promoController, driverController, hub)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
