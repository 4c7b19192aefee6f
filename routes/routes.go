// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"grocery-api/controllers"
	"grocery-api/middleware"
	"grocery-api/ws"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	orderController *controllers.OrderController,
	promoController *controllers.PromoController,
	driverController *controllers.DriverController,
	hub *ws.Hub,
) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")
	router.HandleFunc("/order", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/track/{phone}", orderController.TrackOrder).Methods("GET")
	router.HandleFunc("/promo/validate", promoController.ValidatePromo).Methods("POST")

	// Authenticated routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/orders", orderController.GetMyOrders).Methods("GET")
	protected.HandleFunc("/order/{id}", orderController.GetOrderByID).Methods("GET")

	// Cart routes
	cart := router.PathPrefix("/cart").Subrouter()
	cart.Use(middleware.AuthMiddleware)
	cart.HandleFunc("", cartController.AddToCart).Methods("POST")
	cart.HandleFunc("", cartController.GetCart).Methods("GET")
	cart.HandleFunc("", cartController.ClearCart).Methods("DELETE")
	cart.HandleFunc("/{product_id}", cartController.RemoveFromCart).Methods("DELETE")

	// Driver routes (status transitions issued from the driver app)
	driver := router.PathPrefix("/driver").Subrouter()
	driver.Use(middleware.AuthMiddleware)
	driver.Use(middleware.DriverMiddleware)
	driver.HandleFunc("/order/{id}/status", orderController.UpdateOrderStatus).Methods("PUT")
	driver.HandleFunc("/{id}/status", driverController.SetDriverStatus).Methods("PUT")

	// Admin routes
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/products", productController.CreateProduct).Methods("POST")
	admin.HandleFunc("/products/{id}", productController.UpdateProduct).Methods("PUT")
	admin.HandleFunc("/products/{id}", productController.DeleteProduct).Methods("DELETE")
	admin.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	admin.HandleFunc("/order/{id}/status", orderController.UpdateOrderStatus).Methods("PUT")
	admin.HandleFunc("/order/{id}/assign", orderController.AssignDriver).Methods("PUT")
	admin.HandleFunc("/order/{id}/cancel", orderController.CancelOrder).Methods("PUT")
	admin.HandleFunc("/promos", promoController.CreatePromo).Methods("POST")
	admin.HandleFunc("/promos", promoController.GetPromos).Methods("GET")
	admin.HandleFunc("/promos/{id}", promoController.UpdatePromo).Methods("PUT")
	admin.HandleFunc("/drivers", driverController.CreateDriver).Methods("POST")
	admin.HandleFunc("/drivers", driverController.GetDrivers).Methods("GET")
	admin.HandleFunc("/drivers/{id}", driverController.GetDriverByID).Methods("GET")
	admin.HandleFunc("/ws/orders", hub.Handler).Methods("GET")
}
