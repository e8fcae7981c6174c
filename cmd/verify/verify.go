// Package verify provides the command that checks a generated script's
// credentials against the Genesys Cloud login service.
package verify

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/brentdalling/gcenv/internal/api"
	"github.com/brentdalling/gcenv/internal/config"
	"github.com/brentdalling/gcenv/internal/regions"
	"github.com/brentdalling/gcenv/internal/script"
)

var loginURL string

// VerifyCmd is the cobra command for verifying credentials.
var VerifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Request an OAuth token with the credentials in a generated script",
	Long: `Read the client ID, secret and region from a generated script and request a
client-credentials token from the region's login service. The token is discarded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	VerifyCmd.Flags().StringVar(&loginURL, "login-url", "", "Override the login service URL")
}

func runVerify(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		path = cfg.OutputPath
	}

	set, err := script.ReadCredentials(path)
	if err != nil {
		return err
	}

	url := loginURL
	if url == "" {
		region, err := regions.Lookup(set.Region)
		if err != nil {
			return fmt.Errorf("resolve login host: %w", err)
		}
		url = region.LoginURL()
	}
	slog.Debug("verifying credentials", "path", path, "login_url", url)

	info, err := api.NewClient(url).VerifyCredentials(cmd.Context(), set.ClientID, set.ClientSecret)
	if err != nil {
		return fmt.Errorf("verify credentials: %w", err)
	}

	outputResult(cmd.OutOrStdout(), url, info)
	return nil
}

func outputResult(out io.Writer, url string, info *api.TokenInfo) {
	fmt.Fprintf(out, "✓ Credentials accepted by %s\n", url)
	if !info.Expiry.IsZero() {
		fmt.Fprintf(out, "Token type: %s, expires in %s\n", info.TokenType, time.Until(info.Expiry).Round(time.Minute))
	}
}
