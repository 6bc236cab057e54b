package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCmd(root *rootOptions) *cobra.Command {
	var input, conversationID string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the corpus summary or one conversation's summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := root.runner(cmd)
			if err != nil {
				return err
			}
			snapshot, err := runner.Run(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("pipeline failed: %w", err)
			}

			if conversationID == "" {
				fmt.Fprintln(cmd.OutOrStdout(), renderCorpus(snapshot.Analyzer.CorpusSummary()))
				return nil
			}
			summary, err := snapshot.Analyzer.ConversationSummary(conversationID)
			if err != nil {
				return fmt.Errorf("%s: %w", conversationID, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderConversation(conversationID, summary))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", defaultInput, "Input JSON corpus")
	cmd.Flags().StringVarP(&conversationID, "conversation", "c", "", "Conversation id to summarize")
	return cmd
}
