package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"grocery-api/models"
	"grocery-api/services"
	"grocery-api/store"
)

// DriverController handles driver management requests
type DriverController struct {
	Drivers *store.DriverStore
}

// NewDriverController creates a new DriverController
func NewDriverController(drivers *store.DriverStore) *DriverController {
	return &DriverController{Drivers: drivers}
}

// CreateDriver registers a new driver (Admin only)
func (c *DriverController) CreateDriver(w http.ResponseWriter, r *http.Request) {
	var driver models.Driver
	if err := json.NewDecoder(r.Body).Decode(&driver); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if driver.Name == "" || driver.Phone == "" {
		http.Error(w, "Name and phone are required", http.StatusBadRequest)
		return
	}
	if driver.PayRate < 0 {
		http.Error(w, "Pay rate cannot be negative", http.StatusBadRequest)
		return
	}
	driver.Status = models.DriverOffline
	driver.Earnings = 0
	driver.TotalDeliveries = 0
	driver.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := c.Drivers.Create(ctx, &driver); err != nil {
		http.Error(w, "Error creating driver", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(driver)
}

// GetDrivers lists drivers, optionally filtered by status (Admin only)
func (c *DriverController) GetDrivers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var status *models.DriverStatus
	if s := r.URL.Query().Get("status"); s != "" {
		st := models.DriverStatus(s)
		status = &st
	}

	drivers, err := c.Drivers.List(ctx, status)
	if err != nil {
		http.Error(w, "Error fetching drivers", http.StatusInternalServerError)
		return
	}
	if drivers == nil {
		drivers = []models.Driver{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(drivers)
}

// GetDriverByID retrieves one driver (Admin or the driver)
func (c *DriverController) GetDriverByID(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid driver ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	driver, err := c.Drivers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Driver not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error fetching driver", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(driver)
}

// SetDriverStatus updates a driver's availability. Drivers toggle
// themselves online/offline; busy is only ever set by assignment.
func (c *DriverController) SetDriverStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid driver ID", http.StatusBadRequest)
		return
	}

	var body struct {
		Status models.DriverStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	switch body.Status {
	case models.DriverOnline, models.DriverOffline, models.DriverInactive:
	default:
		http.Error(w, "Invalid driver status", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := c.Drivers.SetStatus(ctx, id, body.Status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, "Driver not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error updating driver status", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"message": "Driver status updated"})
}
