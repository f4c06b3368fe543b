package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/brainbytes/internal/llm"
	"github.com/abhisek/brainbytes/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded text generator calls",
	Long:  "Every call to the configured text generator is recorded with its prompt, response, token counts and latency.",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent generator calls, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := store.QueryOpts{}
		opts.Limit, _ = cmd.Flags().GetInt("limit")
		opts.Purpose, _ = cmd.Flags().GetString("purpose")

		return withStore(cmd, func(st *store.Store) error {
			events, err := st.EventRepo().QueryLLMEvents(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No generator calls recorded.")
				return nil
			}

			t := newTable(out, "ID", "Time", "Provider", "Purpose", "Model", "In", "Out", "Ms", "OK")
			for _, e := range events {
				t.Append([]string{
					strconv.Itoa(e.ID),
					e.Timestamp.Local().Format(timeLayout),
					e.Provider,
					e.Purpose,
					truncate(e.Model, 28),
					strconv.Itoa(e.InputTokens),
					strconv.Itoa(e.OutputTokens),
					strconv.FormatInt(e.LatencyMs, 10),
					okMark(e.Success),
				})
			}
			t.Render()
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and response of one generator call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withStore(cmd, func(st *store.Store) error {
			e, err := st.EventRepo().GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			out := cmd.OutOrStdout()
			fields := [][2]string{
				{"ID", fmt.Sprintf("%d (seq %d)", e.ID, e.Sequence)},
				{"Time", e.Timestamp.Local().Format(timeLayout)},
				{"Provider", e.Provider},
				{"Model", e.Model},
				{"Purpose", e.Purpose},
				{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
				{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
				{"Success", okMark(e.Success)},
			}
			if e.ErrorMessage != "" {
				fields = append(fields, [2]string{"Error", e.ErrorMessage})
			}
			for _, f := range fields {
				fmt.Fprintf(out, "%-10s %s\n", f[0]+":", f[1])
			}

			rule := strings.Repeat("─", 60)
			for _, section := range [][2]string{{"PROMPT", e.RequestBody}, {"RESPONSE", e.ResponseBody}} {
				body := section[1]
				if body == "" {
					body = "(not captured)"
				}
				fmt.Fprintf(out, "\n%s\n", rule)
				heading(out, section[0])
				fmt.Fprintf(out, "%s\n%s\n", rule, strings.TrimRight(body, "\n"))
			}
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and estimated cost per model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(st *store.Store) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			byPurpose, err := st.EventRepo().LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(byPurpose) == 0 {
				fmt.Fprintln(out, "No generator usage recorded yet.")
				return nil
			}

			heading(out, "Usage by purpose")
			t := newTable(out, "Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
			var sum store.LLMUsageStat
			for _, u := range byPurpose {
				t.Append([]string{
					u.Purpose,
					strconv.Itoa(u.Calls),
					strconv.Itoa(u.InputTokens),
					strconv.Itoa(u.OutputTokens),
					strconv.Itoa(u.InputTokens + u.OutputTokens),
					strconv.FormatInt(u.AvgLatencyMs, 10),
				})
				sum.Calls += u.Calls
				sum.InputTokens += u.InputTokens
				sum.OutputTokens += u.OutputTokens
			}
			t.SetFooter([]string{"Total", strconv.Itoa(sum.Calls), strconv.Itoa(sum.InputTokens),
				strconv.Itoa(sum.OutputTokens), strconv.Itoa(sum.InputTokens + sum.OutputTokens), ""})
			t.Render()

			byModel, err := st.EventRepo().LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(byModel) > 0 {
				fmt.Fprintln(out)
				renderCosts(cmd, byModel)
			}
			return nil
		})
	},
}

// renderCosts prices successful calls per model. Models without known
// pricing are listed underneath and left out of the total.
func renderCosts(cmd *cobra.Command, usage []store.LLMModelUsage) {
	out := cmd.OutOrStdout()
	heading(out, "Estimated cost (USD)")
	t := newTable(out, "Model", "Calls", "Input", "Output", "Cost")

	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := "?"
		if p := llm.LookupCost(u.Model); p != nil {
			c := p.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		t.Append([]string{truncate(u.Model, 32), strconv.Itoa(u.Calls),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), cost})
	}

	label := "Total"
	if len(unpriced) > 0 {
		label = "Total (partial)"
	}
	t.SetFooter([]string{label, "", "", "", formatCost(total)})
	t.Render()

	if len(unpriced) > 0 {
		fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only calls with this purpose (e.g. answer)")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
