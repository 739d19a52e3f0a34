package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/render"
	"github.com/prashikshan/prashikshan-cli/status"
)

func loginCmd(opts *globalOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			if email == "" {
				if email, err = promptSecret("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = promptSecret("Password"); err != nil {
					return err
				}
			}

			user, err := a.client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	return cmd
}

func logoutCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.client.Logout(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func registerCmd(opts *globalOptions) *cobra.Command {
	var (
		name, email, password, role string
		collegeID, phone, univ      string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new platform account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			if password == "" {
				if password, err = promptSecret("Password"); err != nil {
					return err
				}
			}

			req := api.RegisterRequest{
				Name:       name,
				Email:      email,
				Password:   password,
				Role:       status.Role(role),
				CollegeID:  strFlag(collegeID),
				Phone:      phone,
				University: univ,
			}

			user, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Account created for %s <%s>. Run `%s login` to sign in.\n", user.Name, user.Email, appName)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&role, "role", string(status.RoleStudent), "Account role (STUDENT, FACULTY, INDUSTRY)")
	cmd.Flags().StringVar(&collegeID, "college-id", "", "College ID for student/faculty accounts")
	cmd.Flags().StringVar(&phone, "phone", "", "Contact number")
	cmd.Flags().StringVar(&univ, "university", "", "University name")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func whoamiCmd(opts *globalOptions) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			if remote {
				fetched, err := a.client.CurrentUser(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Print(render.Whoami(fetched, expiryOf(a)))
				return nil
			}

			user := a.sess.User()
			fmt.Print(render.Whoami(&api.User{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  status.Role(user.Role),
			}, expiryOf(a)))

			if info, err := a.sess.TokenInfo(); err == nil && info.Expired() {
				fmt.Println("\nAccess token has expired; it will refresh on the next request.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Fetch the profile from the server instead of the local session")
	return cmd
}
