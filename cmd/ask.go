package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/brainbytes/internal/tutor"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		asJSON, _ := cmd.Flags().GetBool("json")
		question := strings.Join(args, " ")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		t, err := newTutor(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		result := t.Handle(ctx, question, userID)

		if userID == "" {
			userID = tutor.AnonymousUser
		}
		pairID := uuid.NewString()
		err = st.MessageRepo().Append(ctx,
			tutor.QuestionMessage(pairID, userID, question),
			tutor.AnswerMessage(pairID, userID, result),
		)
		if err != nil {
			return fmt.Errorf("save exchange: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("%s %s %s\n",
			color.CyanString("[%s]", result.Subject),
			color.MagentaString("[%s]", result.QuestionType),
			color.New(color.Faint).Sprintf("via %s", result.Source))
		fmt.Println()
		fmt.Println(result.Response)

		if len(result.FollowUpQuestions) > 0 {
			fmt.Println()
			fmt.Println(color.YellowString("You might also ask:"))
			for i, q := range result.FollowUpQuestions {
				fmt.Printf("  %d. %s\n", i+1, q)
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("user", "u", "", "User id for conversation context (default: anonymous)")
	askCmd.Flags().Bool("json", false, "Print the full result as JSON")
}
