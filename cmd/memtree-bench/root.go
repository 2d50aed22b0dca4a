package main

import (
	"fmt"
	"os"

	"github.com/aretw0/memtree-bench/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "memtree-bench",
	Short: "Benchmark the memory-tree learner on an extreme multilabel dataset",
	Long: `memtree-bench downloads the train and test corpora when missing, trains the
memory-tree learner with a fixed configuration, evaluates the model on the test set and
reports how long each step took.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Experiment file (YAML or JSON) overlaid on the built-in defaults")
	pf.StringArray("set", nil, "Override an experiment key, e.g. --set passes=1 (repeatable)")
	pf.String("executable", "", "Path to the learner executable")
	pf.String("work-dir", "", "Directory holding the corpora and the model artifact")
	pf.String("base-url", "", "Base URL the corpora are downloaded from")
	pf.Bool("strict", false, "Fail when the learner exits with a non-zero status")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("redis-url", "", "Record runs in Redis (redis://host:port/db)")
}

// runOptions collects the persistent flags shared by every command.
func runOptions(cmd *cobra.Command) cli.RunOptions {
	flags := cmd.Flags()
	opts := cli.RunOptions{}
	opts.ConfigPath, _ = flags.GetString("config")
	opts.Sets, _ = flags.GetStringArray("set")
	opts.Executable, _ = flags.GetString("executable")
	opts.WorkDir, _ = flags.GetString("work-dir")
	opts.BaseURL, _ = flags.GetString("base-url")
	opts.Strict, _ = flags.GetBool("strict")
	opts.StrictSet = flags.Changed("strict")
	opts.LogLevel, _ = flags.GetString("log-level")
	opts.RedisURL, _ = flags.GetString("redis-url")
	return opts
}
