package cli

import (
	"github.com/spf13/cobra"
)

func newVehicleCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Fleet commands",
	}

	cmd.AddCommand(newVehicleAddCmd(st))
	cmd.AddCommand(newVehicleListCmd(st))

	return cmd
}

func newVehicleAddCmd(st *state) *cobra.Command {
	var kind, manufacturer, model, assetCode string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a vehicle to the fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"kind":       kind,
				"make":       manufacturer,
				"model":      model,
				"asset_code": assetCode,
			}
			var result VehicleResult
			if err := st.client.Post(cmd.Context(), "/v1/vehicles", req, &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "E_BIKE, E_SCOOTER, E_SKATEBOARD, SEGWAY, BIKE, KICK_SCOOTER or SKATEBOARD (required)")
	cmd.Flags().StringVar(&manufacturer, "make", "", "Manufacturer")
	cmd.Flags().StringVar(&model, "model", "", "Model name (required)")
	cmd.Flags().StringVar(&assetCode, "asset-code", "", "Fleet asset code")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func newVehicleListCmd(st *state) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/vehicles"
			if available {
				path += "?available=true"
			}
			var result []VehicleResult
			if err := st.client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, lines(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "Only vehicles free to book")

	return cmd
}
