package cmd

import (
	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

const flagVerbose = "verbose"

// NewRootCmd creates the issuance-sim root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "issuance-sim",
		Short:         "Project the peaq inflation schedule year by year",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().Bool(flagVerbose, false, "log the resolved inputs to stderr")

	rootCmd.AddCommand(
		NewProjectCmd(),
		NewDefaultsCmd(),
	)
	return rootCmd
}

// loggerFromCmd logs to stderr so the projection on stdout stays parseable.
func loggerFromCmd(cmd *cobra.Command) log.Logger {
	if verbose, _ := cmd.Flags().GetBool(flagVerbose); verbose {
		return log.NewLogger(cmd.ErrOrStderr())
	}
	return log.NewNopLogger()
}
