package cli

import (
	"fmt"
	"strings"
)

// UserResult mirrors the API's user representation.
type UserResult struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	LoyaltyPoints    int    `json:"loyalty_points"`
	CompletedRentals int    `json:"completed_rentals"`
	VIP              bool   `json:"vip"`
}

func (u UserResult) String() string {
	return fmt.Sprintf("%s  %-12s %-20s points=%d completed=%d vip=%t",
		u.ID, u.Username, u.Name, u.LoyaltyPoints, u.CompletedRentals, u.VIP)
}

// VehicleResult mirrors the API's vehicle representation.
type VehicleResult struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	AssetCode string `json:"asset_code,omitempty"`
	Available bool   `json:"available"`
}

func (v VehicleResult) String() string {
	status := "available"
	if !v.Available {
		status = "booked"
	}
	return fmt.Sprintf("%s  %-12s %s %s [%s]", v.ID, v.Type, v.Make, v.Model, status)
}

// RentalResult mirrors the API's rental representation.
type RentalResult struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	VehicleID    string `json:"vehicle_id"`
	VehicleType  string `json:"vehicle_type"`
	VehicleModel string `json:"vehicle_model"`
	Status       string `json:"status"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time,omitempty"`
}

func (r RentalResult) String() string {
	return fmt.Sprintf("%s  %-9s %s: %s by %s", r.ID, r.Status, r.VehicleType, r.VehicleModel, r.UserName)
}

func lines[T fmt.Stringer](items []T) string {
	if len(items) == 0 {
		return "(none)\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString(item.String())
		b.WriteByte('\n')
	}
	return b.String()
}
