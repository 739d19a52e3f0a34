package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/render"
	"github.com/prashikshan/prashikshan-cli/status"
)

func notificationsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "inbox"},
		Short:   "Read and send platform notifications",
	}

	cmd.AddCommand(
		notificationsListCmd(opts),
		notificationsReadCmd(opts),
		notificationsSendCmd(opts),
	)
	return cmd
}

func notificationsListCmd(opts *globalOptions) *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notifications, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			notifications, err := a.client.ListNotifications(cmd.Context())
			if err != nil {
				return err
			}

			if unreadOnly {
				filtered := notifications[:0]
				for _, n := range notifications {
					if !n.Read {
						filtered = append(filtered, n)
					}
				}
				notifications = filtered
			}

			fmt.Print(render.NotificationList(notifications, a.conv))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only unread notifications")
	return cmd
}

func notificationsReadCmd(opts *globalOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [id]",
		Short: "Mark a notification, or all of them, as read",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			if all {
				notifications, err := a.client.ListNotifications(cmd.Context())
				if err != nil {
					return err
				}
				marked := 0
				for _, n := range notifications {
					if n.Read {
						continue
					}
					if err := a.client.MarkNotificationRead(cmd.Context(), n.ID); err != nil {
						return err
					}
					marked++
				}
				fmt.Printf("Marked %d notification(s) read\n", marked)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("a notification ID or --all is required")
			}
			if err := a.client.MarkNotificationRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Marked %s read\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Mark every unread notification")
	return cmd
}

func notificationsSendCmd(opts *globalOptions) *cobra.Command {
	var (
		userID, role, title, body string
		userIDs                   []string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a notification to a user, a list of users, or a role (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			ctx := cmd.Context()
			switch {
			case userID != "":
				n, err := a.client.CreateNotification(ctx, api.NotificationCreate{
					UserID: userID,
					Title:  title,
					Body:   body,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Sent notification %s\n", n.ID)

			case role != "" || len(userIDs) > 0:
				bulk := api.NotificationBulkCreate{
					Title:   title,
					Body:    body,
					UserIDs: userIDs,
				}
				if role != "" {
					r := status.Role(role)
					bulk.TargetRole = &r
				}
				sent, err := a.client.CreateBulkNotification(ctx, bulk)
				if err != nil {
					return err
				}
				fmt.Printf("Sent %d notification(s)\n", len(sent))

			default:
				return fmt.Errorf("one of --user, --users, or --role is required")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "Target user ID")
	cmd.Flags().StringSliceVar(&userIDs, "users", nil, "Target user IDs")
	cmd.Flags().StringVar(&role, "role", "", "Target role (STUDENT, FACULTY, INDUSTRY, ADMIN)")
	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
