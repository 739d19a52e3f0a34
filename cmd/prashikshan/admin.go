package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/render"
	"github.com/prashikshan/prashikshan-cli/status"
)

func adminCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Platform administration (admin accounts only)",
	}

	users := &cobra.Command{
		Use:   "users",
		Short: "Manage platform accounts",
	}
	users.AddCommand(
		adminUsersListCmd(opts),
		adminUsersGetCmd(opts),
		adminUsersActivateCmd(opts, true),
		adminUsersActivateCmd(opts, false),
		adminUsersDeleteCmd(opts),
	)

	cmd.AddCommand(users)
	return cmd
}

func adminUsersListCmd(opts *globalOptions) *cobra.Command {
	var (
		role        string
		active      bool
		skip, limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List platform accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			params := &api.ListUsersParams{
				Role:  status.Role(role),
				Skip:  skip,
				Limit: limit,
			}
			if cmd.Flags().Changed("active") {
				params.IsActive = &active
			}

			users, err := a.client.ListUsers(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Print(render.UserTable(users))
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Filter by role (STUDENT, FACULTY, INDUSTRY, ADMIN)")
	cmd.Flags().BoolVar(&active, "active", true, "Filter by active state")
	cmd.Flags().IntVar(&skip, "skip", 0, "Offset into the listing")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum accounts to return")
	return cmd
}

func adminUsersGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			user, err := a.client.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.UserTable([]api.User{*user}))
			return nil
		},
	}
}

func adminUsersActivateCmd(opts *globalOptions, activate bool) *cobra.Command {
	use, short := "activate <id>", "Reactivate a deactivated account"
	if !activate {
		use, short = "deactivate <id>", "Deactivate an account"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			var user *api.User
			if activate {
				user, err = a.client.ActivateUser(cmd.Context(), args[0])
			} else {
				user, err = a.client.DeactivateUser(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			state := "deactivated"
			if user.IsActive {
				state = "active"
			}
			fmt.Printf("Account %s (%s) is now %s\n", user.ID, user.Email, state)
			return nil
		},
	}
}

func adminUsersDeleteCmd(opts *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("deleting an account is permanent; re-run with --yes to confirm")
			}

			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			if err := a.client.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted account %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the deletion")
	return cmd
}
