package vehicle

import "fieldcrm/internal/domain"

type CreateVehicleRequest struct {
	Name  string `json:"name" binding:"required"`
	Plate string `json:"plate"`
}

type UpdateVehicleRequest struct {
	Name  *string `json:"name"`
	Plate *string `json:"plate"`
}

type AddFuelRequest struct {
	Date       string  `json:"date" binding:"required"`
	Liters     float64 `json:"liters" binding:"required"`
	TotalCost  float64 `json:"total_cost" binding:"required"`
	DistanceKM float64 `json:"distance_km"`
}

type VehicleWithFuel struct {
	domain.Vehicle
	FuelEntries []domain.FuelEntry `json:"fuel_entries"`
}
