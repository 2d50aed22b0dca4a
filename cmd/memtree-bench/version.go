package main

import (
	"fmt"
	"strings"

	memtreebench "github.com/aretw0/memtree-bench"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of memtree-bench",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "memtree-bench version %s\n", strings.TrimSpace(memtreebench.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
