package vehicletypes

import "time"

type VehicleType struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	SeatCapacity int        `json:"seatCapacity,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type Input struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	SeatCapacity int    `json:"seatCapacity,omitempty"`
}

type Update struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	SeatCapacity *int    `json:"seatCapacity,omitempty"`
}
