package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/render"
	"github.com/prashikshan/prashikshan-cli/status"
)

func applicationsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"application", "apps"},
		Short:   "Track and review internship applications",
	}

	cmd.AddCommand(
		applicationsListCmd(opts),
		applicationsGetCmd(opts),
		applicationsApplyCmd(opts),
		applicationsReviewCmd(opts),
	)
	return cmd
}

func applicationsListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List applications visible to your role",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			apps, err := a.client.ListApplications(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(render.ApplicationTable(apps, a.viewerRole()))
			return nil
		},
	}
}

func applicationsGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			app, err := a.client.GetApplication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.ApplicationDetail(app, a.viewerRole()))
			return nil
		},
	}
}

func applicationsApplyCmd(opts *globalOptions) *cobra.Command {
	var internshipID, resumeURL string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply to an internship (student)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			app, err := a.client.Apply(cmd.Context(), api.ApplicationCreate{
				InternshipID:      internshipID,
				ResumeSnapshotURL: strFlag(resumeURL),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Applied. Application %s is %s\n",
				app.ID, render.FormatStatus(app.CombinedStatus(status.RoleStudent)))
			return nil
		},
	}

	cmd.Flags().StringVar(&internshipID, "internship", "", "Internship ID to apply to")
	cmd.Flags().StringVar(&resumeURL, "resume", "", "Resume snapshot URL")
	_ = cmd.MarkFlagRequired("internship")
	return cmd
}

func applicationsReviewCmd(opts *globalOptions) *cobra.Command {
	var decision string

	cmd := &cobra.Command{
		Use:   "review <id>",
		Short: "Record your review decision (faculty or industry)",
		Long: `Record an approval or rejection on an application. The decision
lands on your side of the review: faculty reviewers set the faculty
decision, industry reviewers the industry decision. The applicant sees the
combination of both.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			var d status.Decision
			switch strings.ToLower(decision) {
			case "approve", "approved":
				d = status.DecisionApproved
			case "reject", "rejected":
				d = status.DecisionRejected
			case "pending":
				d = status.DecisionPending
			default:
				return fmt.Errorf("invalid decision %q (approve, reject, pending)", decision)
			}

			update := api.ApplicationUpdate{}
			switch a.viewerRole() {
			case status.RoleFaculty:
				update.FacultyStatus = &d
			case status.RoleIndustry:
				update.IndustryStatus = &d
			default:
				return fmt.Errorf("only faculty and industry accounts review applications")
			}

			app, err := a.client.UpdateApplication(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			fmt.Printf("Application %s is now %s for you\n",
				app.ID, render.FormatStatus(app.CombinedStatus(a.viewerRole())))
			return nil
		},
	}

	cmd.Flags().StringVar(&decision, "decision", "", "Review decision: approve, reject, or pending")
	_ = cmd.MarkFlagRequired("decision")
	return cmd
}
