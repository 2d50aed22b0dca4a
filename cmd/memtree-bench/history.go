package main

import (
	"github.com/aretw0/memtree-bench/internal/cli"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded runs of the experiment (requires --redis-url)",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		streams := cli.DefaultStreams()
		streams.Out = cmd.OutOrStdout()
		return cli.History(cmd.Context(), runOptions(cmd), limit, streams)
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Maximum number of runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
