package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newRentalCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Booking commands",
	}

	cmd.AddCommand(newRentalActionCmd(st, "book", "Book a vehicle", ""))
	cmd.AddCommand(newRentalActionCmd(st, "release", "Return a booked vehicle", "/release"))
	cmd.AddCommand(newRentalActionCmd(st, "cancel", "Cancel a booking without completing it", "/cancel"))
	cmd.AddCommand(newRentalListCmd(st))
	cmd.AddCommand(newRentalReceiptCmd(st))

	return cmd
}

func newRentalActionCmd(st *state, use, short, suffix string) *cobra.Command {
	var userID, vehicleID string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"user_id": userID, "vehicle_id": vehicleID}
			var result RentalResult
			if err := st.client.Post(cmd.Context(), "/v1/rentals"+suffix, req, &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id (required)")
	cmd.Flags().StringVar(&vehicleID, "vehicle", "", "Vehicle id (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("vehicle")

	return cmd
}

func newRentalListCmd(st *state) *cobra.Command {
	var active bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rentals",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/rentals"
			if active {
				path += "?status=active"
			}
			var result []RentalResult
			if err := st.client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, lines(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&active, "active", false, "Only active rentals")

	return cmd
}

func newRentalReceiptCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt RENTAL_ID",
		Short: "Print a rental's detail block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var receipt string
			if err := st.client.Get(cmd.Context(), "/v1/rentals/"+url.PathEscape(args[0])+"/receipt", &receipt); err != nil {
				return err
			}
			st.output(cmd).Print(map[string]string{"receipt": receipt}, receipt)
			return nil
		},
	}
}
