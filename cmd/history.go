package cmd

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/brainbytes/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear stored conversations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored messages, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		limit, _ := cmd.Flags().GetInt("limit")
		user, _ := cmd.Flags().GetString("user")

		return withStore(cmd, func(st *store.Store) error {
			msgs, err := st.MessageRepo().List(cmd.Context(), store.MessageFilter{
				Subject: subject,
				Limit:   limit,
				UserID:  user,
			})
			if err != nil {
				return fmt.Errorf("list messages: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(msgs) == 0 {
				fmt.Fprintln(out, "No messages found.")
				return nil
			}

			t := newTable(out, "Seq", "Time", "User", "From", "Subject", "Text")
			for _, m := range msgs {
				from := "tutor"
				if m.IsUser {
					from = "you"
				}
				t.Append([]string{
					strconv.FormatInt(m.Sequence, 10),
					m.CreatedAt.Local().Format(timeLayout),
					m.UserID,
					from,
					m.Category,
					truncate(strings.ReplaceAll(m.Text, "\n", " "), 60),
				})
			}
			t.Render()
			return nil
		})
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answered questions per subject and recent topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			stats, err := st.MessageRepo().Stats(cmd.Context(), 5)
			if err != nil {
				return fmt.Errorf("learning stats: %w", err)
			}
			out := cmd.OutOrStdout()
			if stats.TotalMessages == 0 {
				fmt.Fprintln(out, "No questions answered yet.")
				return nil
			}

			t := newTable(out, "Subject", "Answers")
			for _, subject := range slices.Sorted(maps.Keys(stats.SubjectBreakdown)) {
				t.Append([]string{subject, strconv.Itoa(stats.SubjectBreakdown[subject])})
			}
			t.SetFooter([]string{"Total", strconv.Itoa(stats.TotalMessages)})
			t.Render()

			if len(stats.RecentTopics) > 0 {
				fmt.Fprintln(out)
				heading(out, "Recent topics")
				for _, topic := range stats.RecentTopics {
					fmt.Fprintf(out, "  - %s\n", topic)
				}
			}
			return nil
		})
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every stored message",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete history without --yes")
		}

		return withStore(cmd, func(st *store.Store) error {
			n, err := st.MessageRepo().Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear messages: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d messages.\n", n)
			return nil
		})
	},
}

func init() {
	historyListCmd.Flags().StringP("subject", "s", "", "Only exchanges about this subject (math, science, history, general)")
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of most recent messages to show (0 for all)")
	historyListCmd.Flags().StringP("user", "u", "", "Only messages from this user")

	historyClearCmd.Flags().Bool("yes", false, "Confirm deletion")

	historyCmd.AddCommand(historyListCmd, historyStatsCmd, historyClearCmd)
}
