package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jan-server/services/chat-insights/internal/infrastructure/csvexport"
)

const defaultOutput = "processed_chat_data.csv"

func newRunCmd(root *rootOptions) *cobra.Command {
	var input, output string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run load, clean and transform and write the processed CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := root.runner(cmd)
			if err != nil {
				return err
			}
			snapshot, err := runner.Run(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("pipeline failed: %w", err)
			}
			if err := csvexport.WriteFile(output, snapshot.Table); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRun(snapshot, output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", defaultInput, "Input JSON corpus")
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "Output CSV path")
	return cmd
}
