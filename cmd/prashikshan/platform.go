package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/render"
)

func dashboardCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the analytics summary for your role",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			summary, err := a.client.Metrics(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(render.Dashboard(summary))
			return nil
		},
	}
}

func collegesCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colleges",
		Short: "Browse and register colleges",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List registered colleges",
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := newApp(opts)
				if err != nil {
					return err
				}
				if err := a.requireAuth(); err != nil {
					return err
				}

				colleges, err := a.client.ListColleges(cmd.Context())
				if err != nil {
					return err
				}
				if len(colleges) == 0 {
					fmt.Println("No colleges registered.")
					return nil
				}
				for _, c := range colleges {
					line := fmt.Sprintf("%s  %s", c.ID, c.Name)
					if c.Address != nil && *c.Address != "" {
						line += " (" + *c.Address + ")"
					}
					fmt.Println(line)
				}
				return nil
			},
		},
		collegesCreateCmd(opts),
	)
	return cmd
}

func collegesCreateCmd(opts *globalOptions) *cobra.Command {
	var name, address, coordinator string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a college (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			college, err := a.client.CreateCollege(cmd.Context(), api.CollegeCreate{
				Name:              name,
				Address:           strFlag(address),
				CoordinatorUserID: strFlag(coordinator),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Registered college %s: %s\n", college.ID, college.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "College name")
	cmd.Flags().StringVar(&address, "address", "", "College address")
	cmd.Flags().StringVar(&coordinator, "coordinator", "", "Coordinator user ID")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func creditsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "Track academic credit awards",
	}

	cmd.AddCommand(
		creditsListCmd(opts),
		creditsAwardCmd(opts),
	)
	return cmd
}

func creditsListCmd(opts *globalOptions) *cobra.Command {
	var studentID, internshipID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List awarded credits",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			credits, err := a.client.ListCredits(cmd.Context(), &api.CreditFilters{
				StudentID:    studentID,
				InternshipID: internshipID,
			})
			if err != nil {
				return err
			}
			if len(credits) == 0 {
				fmt.Println("No credits awarded.")
				return nil
			}
			for _, c := range credits {
				signed := "unsigned"
				if c.FacultySignedAt != nil {
					signed = "signed " + c.FacultySignedAt.Format("2006-01-02")
				}
				fmt.Printf("%s  student=%s internship=%s credits=%d (%s)\n",
					c.ID, c.StudentID, c.InternshipID, c.CreditsAwarded, signed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Filter by student ID")
	cmd.Flags().StringVar(&internshipID, "internship", "", "Filter by internship ID")
	return cmd
}

func creditsAwardCmd(opts *globalOptions) *cobra.Command {
	var (
		studentID, internshipID string
		amount                  int
	)

	cmd := &cobra.Command{
		Use:   "award",
		Short: "Award credits for a completed internship (faculty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			credit, err := a.client.AwardCredit(cmd.Context(), api.CreditCreate{
				StudentID:      studentID,
				InternshipID:   internshipID,
				CreditsAwarded: amount,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Awarded %d credit(s) to %s (record %s)\n",
				credit.CreditsAwarded, credit.StudentID, credit.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&studentID, "student", "", "Student ID")
	cmd.Flags().StringVar(&internshipID, "internship", "", "Internship ID")
	cmd.Flags().IntVar(&amount, "credits", 0, "Credits to award")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("internship")
	_ = cmd.MarkFlagRequired("credits")
	return cmd
}

func reportsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Completion reports and QR verification",
	}

	cmd.AddCommand(
		reportsListCmd(opts),
		reportsVerifyCmd(opts),
	)
	return cmd
}

func reportsListCmd(opts *globalOptions) *cobra.Command {
	var applicationID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated completion reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			reports, err := a.client.ListReports(cmd.Context(), &api.ReportFilters{
				ApplicationID: applicationID,
			})
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Println("No reports generated.")
				return nil
			}
			for _, r := range reports {
				fmt.Printf("%s  application=%s generated=%s\n  %s\n",
					r.ID, r.ApplicationID, r.GeneratedAt.Format("2006-01-02 15:04"), r.PDFURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&applicationID, "application", "", "Filter by application ID")
	return cmd
}

func reportsVerifyCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <qr-token>",
		Short: "Resolve a printed report's QR token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			report, err := a.client.GetReportByQRToken(cmd.Context(), args[0])
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("no report matches that token")
				}
				return err
			}
			fmt.Printf("Report %s verified.\n  Application: %s\n  Generated:   %s\n  PDF:         %s\n",
				report.ID, report.ApplicationID, report.GeneratedAt.Format("2006-01-02 15:04"), report.PDFURL)
			return nil
		},
	}
}
