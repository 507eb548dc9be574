package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newUserCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands",
	}

	cmd.AddCommand(newUserRegisterCmd(st))
	cmd.AddCommand(newUserListCmd(st))
	cmd.AddCommand(newUserGetCmd(st))
	cmd.AddCommand(newUserRemoveCmd(st))
	cmd.AddCommand(newUserRedeemCmd(st))
	cmd.AddCommand(newUserRentalsCmd(st))

	return cmd
}

func newUserRegisterCmd(st *state) *cobra.Command {
	var name, username, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"name":     name,
				"username": username,
				"password": password,
				"role":     role,
			}
			var result UserResult
			if err := st.client.Post(cmd.Context(), "/v1/users", req, &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, result.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	cmd.Flags().StringVar(&username, "user", "", "Username (required)")
	cmd.Flags().StringVar(&password, "pass", "", "Password")
	cmd.Flags().StringVar(&role, "role", "CUSTOMER", "Role: CUSTOMER or ADMIN")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newUserListCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []UserResult
			if err := st.client.Get(cmd.Context(), "/v1/users", &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, lines(result))
			return nil
		},
	}
}

func newUserGetCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a user's loyalty standing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserResult
			if err := st.client.Get(cmd.Context(), "/v1/users/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, result.String())
			return nil
		},
	}
}

func newUserRemoveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "remove USER_ID",
		Short: "Remove a user without an active rental",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.client.Delete(cmd.Context(), "/v1/users/"+url.PathEscape(args[0])); err != nil {
				return err
			}
			st.output(cmd).Print(map[string]string{"removed": args[0]}, fmt.Sprintf("removed %s", args[0]))
			return nil
		},
	}
}

func newUserRedeemCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "redeem USER_ID",
		Short: "Spend loyalty points on a free ride",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserResult
			if err := st.client.Post(cmd.Context(), "/v1/users/"+url.PathEscape(args[0])+"/redeem", nil, &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, result.String())
			return nil
		},
	}
}

func newUserRentalsCmd(st *state) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "rentals USER_ID",
		Short: "List a user's rentals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/users/" + url.PathEscape(args[0]) + "/rentals?scope=" + url.QueryEscape(scope)
			var result []RentalResult
			if err := st.client.Get(cmd.Context(), path, &result); err != nil {
				return err
			}
			st.output(cmd).Print(result, lines(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "all", "Which rentals: active, past, all")

	return cmd
}
