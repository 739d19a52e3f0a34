package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/render"
)

func internshipsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "internships",
		Aliases: []string{"internship"},
		Short:   "Browse and manage internship postings",
	}

	cmd.AddCommand(
		internshipsListCmd(opts),
		internshipsGetCmd(opts),
		internshipsPostCmd(opts),
		internshipsUpdateCmd(opts),
		internshipsDeleteCmd(opts),
	)
	return cmd
}

func internshipsListCmd(opts *globalOptions) *cobra.Command {
	var (
		remote, onsite bool
		minCredits     int
		location       string
		skills         []string
		state          string
		search         string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List internships matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			filters := &api.InternshipFilters{
				Location: location,
				Skills:   skills,
				Status:   state,
				Search:   search,
			}
			if cmd.Flags().Changed("remote") {
				filters.Remote = &remote
			}
			if onsite {
				f := false
				filters.Remote = &f
			}
			if cmd.Flags().Changed("min-credits") {
				filters.MinCredits = &minCredits
			}

			internships, err := a.client.ListInternships(cmd.Context(), filters)
			if err != nil {
				return err
			}
			fmt.Print(render.InternshipTable(internships))
			return nil
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Only remote internships")
	cmd.Flags().BoolVar(&onsite, "onsite", false, "Only on-site internships")
	cmd.Flags().IntVar(&minCredits, "min-credits", 0, "Minimum academic credits")
	cmd.Flags().StringVar(&location, "location", "", "Location filter")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "Required skill (repeatable)")
	cmd.Flags().StringVar(&state, "status", "", "Posting status (OPEN, CLOSED)")
	cmd.Flags().StringVar(&search, "search", "", "Free-text search over title, description, and skills")
	cmd.MarkFlagsMutuallyExclusive("remote", "onsite")
	return cmd
}

func internshipsGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one internship in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			in, err := a.client.GetInternship(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(render.InternshipDetail(in, a.conv))
			return nil
		},
	}
}

func internshipsPostCmd(opts *globalOptions) *cobra.Command {
	var (
		title, description, location, startDate string
		skills                                  []string
		stipend                                 float64
		duration, credits                       int
		remote                                  bool
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Post a new internship (industry)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			create := api.InternshipCreate{
				Title:       title,
				Description: strFlag(description),
				Skills:      skills,
				Location:    strFlag(location),
				Remote:      remote,
				StartDate:   strFlag(startDate),
			}
			if cmd.Flags().Changed("stipend") {
				create.Stipend = &stipend
			}
			if cmd.Flags().Changed("duration-weeks") {
				create.DurationWeeks = &duration
			}
			if cmd.Flags().Changed("credits") {
				create.Credits = &credits
			}

			in, err := a.client.CreateInternship(cmd.Context(), create)
			if err != nil {
				return err
			}
			fmt.Printf("Posted internship %s: %s\n", in.ID, in.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Internship title")
	cmd.Flags().StringVar(&description, "description", "", "Description (plain text or HTML)")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "Required skill (repeatable)")
	cmd.Flags().Float64Var(&stipend, "stipend", 0, "Monthly stipend")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().BoolVar(&remote, "remote", false, "Remote position")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&duration, "duration-weeks", 0, "Duration in weeks")
	cmd.Flags().IntVar(&credits, "credits", 0, "Academic credits on completion")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func internshipsUpdateCmd(opts *globalOptions) *cobra.Command {
	var (
		title, description, state string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an internship posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			update := api.InternshipUpdate{
				Title:       strFlag(title),
				Description: strFlag(description),
				Status:      strFlag(state),
			}

			in, err := a.client.UpdateInternship(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			fmt.Printf("Updated internship %s (%s)\n", in.ID, in.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&state, "status", "", "New posting status (OPEN, CLOSED)")
	return cmd
}

func internshipsDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an internship posting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			if err := a.client.DeleteInternship(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted internship %s\n", args[0])
			return nil
		},
	}
}
