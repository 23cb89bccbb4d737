package main

import (
	"github.com/gfatag/maria/mlog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "maria",
	Short: "Pangenome tag-array index builder and query driver",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		mlog.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(alignCmd)
}

// exitCodeFor maps any fatal error to exit code 1, as spec'd for
// missing required files; the core never attempts recovery, so every
// other error kind exits the same way.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
