// Package cmd provides the root command and command structure for the gcenv CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brentdalling/gcenv/cmd/generate"
	"github.com/brentdalling/gcenv/cmd/regions"
	"github.com/brentdalling/gcenv/cmd/show"
	"github.com/brentdalling/gcenv/cmd/verify"
	"github.com/brentdalling/gcenv/internal/log"
)

var (
	// version is the version string, set at build time via ldflags
	version = "dev"
	// commit is the git commit hash, set at build time via ldflags
	commit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gcenv",
	Short: "Genesys Cloud environment script generator",
	Long: `Prompt for Genesys Cloud OAuth client credentials and a region, and write
them to a shell script that exports GENESYSCLOUD_OAUTHCLIENT_ID,
GENESYSCLOUD_OAUTHCLIENT_SECRET and GENESYSCLOUD_REGION.

Running gcenv without a subcommand is the same as gcenv generate.`,
	Version:       fmt.Sprintf("%s (%s)", version, commit),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(log.Options{Verbose: verbose})
	},
	RunE: generate.Run,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.Flags().AddFlagSet(generate.GenerateCmd.Flags())

	rootCmd.AddCommand(generate.GenerateCmd)
	rootCmd.AddCommand(show.ShowCmd)
	rootCmd.AddCommand(regions.RegionsCmd)
	rootCmd.AddCommand(verify.VerifyCmd)
}

// Execute runs the root command and handles errors.
// This is the main entry point called from main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
