package main

import (
	"github.com/aretw0/memtree-bench/internal/cli"
	"github.com/spf13/cobra"
)

var argsCmd = &cobra.Command{
	Use:   "args",
	Short: "Print the train and evaluate command lines without running them",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return cli.PrintPlan(runOptions(cmd), asJSON, cmd.OutOrStdout())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective experiment configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.PrintConfig(runOptions(cmd), cmd.OutOrStdout())
	},
}

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Print the memory tree size derived from the assumed example count",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.PrintSize(runOptions(cmd), cmd.OutOrStdout())
	},
}

func init() {
	argsCmd.Flags().Bool("json", false, "Print the plan as JSON")
	rootCmd.AddCommand(argsCmd, configCmd, sizeCmd)
}
