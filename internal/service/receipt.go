package service

import (
	"fmt"
	"strings"
	"time"

	"zipabout/internal/domain"
)

// FormatRental formats a rental as a printable detail block.
func FormatRental(rental domain.Rental) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rental ID: %s\n", rental.ID)
	fmt.Fprintf(&b, "User: %s\n", rental.UserName)
	fmt.Fprintf(&b, "Vehicle: %s - %s\n", rental.VehicleType(), rental.Vehicle.Model)
	fmt.Fprintf(&b, "Status: %s\n", rental.Status)
	fmt.Fprintf(&b, "Start: %s\n", formatTime(rental.StartTime))
	fmt.Fprintf(&b, "End: %s\n", formatTime(rental.EndTime))
	if mins := rental.DurationMinutes(); mins >= 0 {
		fmt.Fprintf(&b, "Duration: %d min\n", mins)
	}
	b.WriteString("----------------------------------------\n")
	return b.String()
}

// FormatUser formats a user's loyalty standing.
func FormatUser(user domain.User, activeRentals int) string {
	vip := "No"
	if user.IsVIP() {
		vip = "Yes"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User ID: %s\n", user.ID)
	fmt.Fprintf(&b, "Username: %s\n", user.Username)
	fmt.Fprintf(&b, "Name: %s\n", user.Name)
	fmt.Fprintf(&b, "Total completed rentals: %d\n", user.CompletedRentals())
	fmt.Fprintf(&b, "Loyalty Points: %d\n", user.LoyaltyPoints())
	fmt.Fprintf(&b, "VIP: %s\n", vip)
	fmt.Fprintf(&b, "Current active rentals: %d\n", activeRentals)
	b.WriteString("----------------------------------------\n")
	return b.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.Format(rentalTimeLayout)
}
