package main

import (
	"context"
	"fmt"

	"github.com/aretw0/memtree-bench/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Provision, train, evaluate and report durations",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := runOptions(cmd)
		opts.Format, _ = cmd.Flags().GetString("format")
		opts.MetricsAddr, _ = cmd.Flags().GetString("metrics-addr")
		opts.HTTPTimeout, _ = cmd.Flags().GetDuration("http-timeout")
		opts.Quiet, _ = cmd.Flags().GetBool("quiet")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		err := cli.Execute(ctx, opts, cli.DefaultStreams())
		if sig := ctx.Signal(); sig != nil && err != nil {
			return fmt.Errorf("interrupted by %s: %w", sig, err)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("format", "", "Report format: text, markdown or json (default: markdown on a terminal, text otherwise)")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")
	runCmd.Flags().Duration("http-timeout", 0, "Timeout for each dataset download (0 means none)")
	runCmd.Flags().BoolP("quiet", "q", false, "Do not print stage banners")

	// 'run' is the default when no command is provided
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
