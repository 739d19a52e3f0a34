package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/prashikshan/prashikshan-cli/api"
	"github.com/prashikshan/prashikshan-cli/outbox"
	"github.com/prashikshan/prashikshan-cli/render"
)

func logbookCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logbook",
		Short: "Record and review internship logbook entries",
	}

	cmd.AddCommand(
		logbookListCmd(opts),
		logbookNewCmd(opts),
		logbookDraftsCmd(opts),
		logbookSyncCmd(opts),
		logbookRemoveDraftCmd(opts),
		logbookReviewCmd(opts),
	)
	return cmd
}

func logbookListCmd(opts *globalOptions) *cobra.Command {
	var applicationID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List logbook entries for an application",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			entries, err := a.client.ListLogbookEntries(cmd.Context(), applicationID)
			if err != nil {
				return err
			}
			fmt.Print(render.LogbookTable(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&applicationID, "application", "", "Application ID")
	_ = cmd.MarkFlagRequired("application")
	return cmd
}

func logbookNewCmd(opts *globalOptions) *cobra.Command {
	var (
		applicationID, entryDate, description string
		hours                                 float64
		attach                                []string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Record a logbook entry, queuing it locally when offline",
		Long: `Record a logbook entry. When the server cannot be reached the
entry is queued as a local draft and synced later; validation failures are
reported immediately and never queued.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			attachments, err := outbox.ExpandAttachments(attach)
			if err != nil {
				return err
			}

			if entryDate == "" {
				entryDate = time.Now().Format("2006-01-02")
			}

			result, err := a.outbox.Submit(cmd.Context(), api.LogbookEntryCreate{
				ApplicationID: applicationID,
				EntryDate:     entryDate,
				Hours:         hours,
				Description:   description,
				Attachments:   attachments,
			})
			if err != nil {
				return err
			}

			switch result.Status {
			case outbox.SubmitSynced:
				fmt.Printf("Logbook entry %s recorded for %s\n", result.Entry.ID, result.Entry.EntryDate)
			case outbox.SubmitQueued:
				fmt.Printf("Server unreachable; entry queued as draft %s\n", result.Draft.ID)
				fmt.Printf("Run `%s logbook sync` when back online.\n", appName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&applicationID, "application", "", "Application ID")
	cmd.Flags().StringVar(&entryDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours worked")
	cmd.Flags().StringVar(&description, "description", "", "What was done")
	cmd.Flags().StringSliceVar(&attach, "attach", nil, "Attachment path or glob, e.g. reports/**/*.pdf (repeatable)")
	_ = cmd.MarkFlagRequired("application")
	_ = cmd.MarkFlagRequired("hours")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func logbookDraftsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drafts",
		Short: "List logbook drafts waiting to sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			drafts, err := a.outbox.List()
			if err != nil {
				return err
			}
			fmt.Print(render.DraftTable(drafts))
			return nil
		},
	}
}

func logbookSyncCmd(opts *globalOptions) *cobra.Command {
	var (
		draftID string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync queued logbook drafts to the server",
		Long: `Sync queued logbook drafts. By default this is a one-shot pass
over every queued draft, including previously failed ones. With --watch the
command keeps running and syncs pending drafts as they appear.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			if draftID != "" {
				entry, err := a.outbox.SyncDraft(cmd.Context(), draftID)
				if err != nil {
					return err
				}
				fmt.Printf("Draft synced as logbook entry %s\n", entry.ID)
				return nil
			}

			if watch {
				return runWatch(cmd.Context(), a)
			}

			synced, err := a.outbox.SyncAll(cmd.Context())
			if err != nil {
				return err
			}
			if synced > 0 {
				fmt.Printf("Synced %d draft(s)\n", synced)
			}

			remaining, err := a.outbox.List()
			if err != nil {
				return err
			}
			if len(remaining) > 0 {
				return fmt.Errorf("%d draft(s) failed to sync; run `%s logbook drafts` for details", len(remaining), appName)
			}
			if synced == 0 {
				fmt.Println("Nothing to sync.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&draftID, "draft", "", "Sync a single draft by ID")
	cmd.Flags().BoolVar(&watch, "watch", false, "Keep running and sync drafts as they appear")
	cmd.MarkFlagsMutuallyExclusive("draft", "watch")
	return cmd
}

// runWatch runs the draft watcher until interrupted, optionally serving
// metrics while it runs.
func runWatch(ctx context.Context, a *app) error {
	signalCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if a.cfg.Metrics.Listen != "" {
		server := &http.Server{
			Addr:    a.cfg.Metrics.Listen,
			Handler: promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
		}
		go func() {
			slog.Info("Serving metrics", "addr", a.cfg.Metrics.Listen)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Warn("Metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	fmt.Fprintln(os.Stderr, "Watching for drafts; press Ctrl-C to stop.")
	watcher := outbox.NewWatcher(a.outbox, outbox.WithDebounce(a.cfg.Sync.Debounce))
	if err := watcher.Run(signalCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func logbookRemoveDraftCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-draft <id>",
		Short: "Discard a queued draft without syncing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}

			if err := a.outbox.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed draft %s\n", args[0])
			return nil
		},
	}
}

func logbookReviewCmd(opts *globalOptions) *cobra.Command {
	var (
		approve  bool
		comments string
	)

	cmd := &cobra.Command{
		Use:   "review <entry-id>",
		Short: "Approve or comment on a logbook entry (faculty)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			if err := a.requireAuth(); err != nil {
				return err
			}

			update := api.LogbookEntryUpdate{
				FacultyComments: strFlag(comments),
			}
			if cmd.Flags().Changed("approve") {
				update.Approved = &approve
			}

			entry, err := a.client.UpdateLogbookEntry(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			state := "pending review"
			if entry.Approved {
				state = "approved"
			}
			fmt.Printf("Entry %s is %s\n", entry.ID, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Approve the entry (--approve=false revokes)")
	cmd.Flags().StringVar(&comments, "comments", "", "Faculty comments")
	return cmd
}
