package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jan-server/services/chat-insights/internal/domain/conversation"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the input corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := json.MarshalIndent(conversation.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}
