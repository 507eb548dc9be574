package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"zipabout/internal/clock"
	"zipabout/internal/domain"
	"zipabout/internal/service"
)

// rideLength is how far the demo clock moves for every ride.
const rideLength = 25 * time.Minute

func newDemoCmd(st *state) *cobra.Command {
	var rides int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a rental scenario in-process and print the results",
		Long: `demo registers two customers, seeds the starter fleet and plays out a
series of bookings against an in-memory registry. It shows the booking
conflicts, loyalty points, the VIP latch and a free-ride redemption.`,
		// No server needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			if verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			return RunDemo(cmd.Context(), cmd.OutOrStdout(), rides, logger)
		},
	}

	cmd.Flags().IntVar(&rides, "rides", 6, "Completed rides for the first customer")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log registry activity to stderr")

	return cmd
}

// RunDemo plays the demo scenario against a fresh registry and writes the
// rental and user summaries to w.
func RunDemo(ctx context.Context, w io.Writer, rides int, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	clk := clock.NewMock(time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC))
	registry := service.NewRentalRegistry(clk, logger)

	var completions []string
	registry.AddObserver(service.ObserverFunc(func(_ context.Context, rental domain.Rental) error {
		completions = append(completions, service.CompletionMessage(rental))
		return nil
	}))
	maintenance := service.NewMaintenanceObserver(service.NewMemoryUsageCounter(), nil, service.DefaultMaintenanceThreshold, logger)
	registry.AddObserver(maintenance)

	alice, err := domain.NewUser("u-alice", "alice", "Alice", "", domain.RoleCustomer)
	if err != nil {
		return err
	}
	bob, err := domain.NewUser("u-bob", "bob", "Bob", "", domain.RoleCustomer)
	if err != nil {
		return err
	}
	for _, u := range []*domain.User{alice, bob} {
		if err := registry.RegisterUser(ctx, u); err != nil {
			return err
		}
	}
	if _, err := registry.SeedVehiclesIfEmpty(ctx); err != nil {
		return err
	}

	fleet := registry.Vehicles()
	eBike := fleet[0]

	fmt.Fprintf(w, "== Fleet ==\n")
	for _, v := range fleet {
		fmt.Fprintf(w, "%s (%s)\n", v.Describe(), v.Details.AssetCode)
	}

	fmt.Fprintf(w, "\n== Conflicts ==\n")
	if _, err := registry.BookVehicle(ctx, alice.ID, eBike.ID); err != nil {
		return err
	}
	_, err = registry.BookVehicle(ctx, bob.ID, eBike.ID)
	fmt.Fprintf(w, "Bob books Alice's %s: %v\n", eBike.Type(), demoOutcome(err, service.ErrVehicleUnavailable))
	_, err = registry.BookVehicle(ctx, alice.ID, fleet[1].ID)
	fmt.Fprintf(w, "Alice books a second vehicle: %v\n", demoOutcome(err, service.ErrUserAlreadyRenting))
	_, err = registry.ReleaseVehicle(ctx, bob.ID, eBike.ID)
	fmt.Fprintf(w, "Bob returns Alice's %s: %v\n", eBike.Type(), demoOutcome(err, service.ErrNotRentalOwner))
	clk.Advance(rideLength)
	if _, err := registry.ReleaseVehicle(ctx, alice.ID, eBike.ID); err != nil {
		return err
	}

	for i := 1; i < rides; i++ {
		vehicle := fleet[i%len(fleet)]
		if _, err := registry.BookVehicle(ctx, alice.ID, vehicle.ID); err != nil {
			return err
		}
		clk.Advance(rideLength)
		if _, err := registry.ReleaseVehicle(ctx, alice.ID, vehicle.ID); err != nil {
			return err
		}
	}

	if _, err := registry.BookVehicle(ctx, bob.ID, fleet[len(fleet)-1].ID); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n== Notifications ==\n")
	for _, msg := range completions {
		fmt.Fprintln(w, msg)
	}

	fmt.Fprintf(w, "\n== Rentals ==\n")
	for _, r := range registry.AllRentals() {
		fmt.Fprint(w, service.FormatRental(r))
	}

	if rides >= domain.FreeRideCost+3 {
		if _, err := registry.RedeemFreeRide(ctx, alice.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nAlice redeemed a free ride.\n")
	}

	fmt.Fprintf(w, "\n== Users ==\n")
	for _, u := range registry.Users() {
		fmt.Fprint(w, service.FormatUser(u, len(registry.ActiveRentalsForUser(u.ID))))
	}

	usage, err := maintenance.UsageSummary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n== Usage ==\n")
	for _, u := range usage {
		v, err := registry.Vehicle(u.VehicleID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %d completed, %d until maintenance\n",
			v.Describe(), u.CompletedRentals, maintenance.RemainingBeforeMaintenance(u.CompletedRentals))
	}

	return nil
}

func demoOutcome(err, want error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, want):
		return "rejected (" + want.Error() + ")"
	default:
		return "failed: " + err.Error()
	}
}
