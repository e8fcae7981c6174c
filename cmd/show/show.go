// Package show provides the command for inspecting a generated script.
package show

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brentdalling/gcenv/internal/config"
	"github.com/brentdalling/gcenv/internal/credentials"
	"github.com/brentdalling/gcenv/internal/redact"
	"github.com/brentdalling/gcenv/internal/script"
)

var reveal bool

// ShowCmd is the cobra command for showing a generated script's variables.
var ShowCmd = &cobra.Command{
	Use:   "show [path]",
	Short: "Show the variables exported by a generated script",
	Long:  "Parse a generated environment script and list its exported variables with secrets masked",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	ShowCmd.Flags().BoolVar(&reveal, "reveal", false, "Print secret values in clear text")
}

func runShow(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args)
	if err != nil {
		return err
	}

	vars, err := script.ReadFile(path)
	if err != nil {
		return err
	}

	return printVars(cmd.OutOrStdout(), path, vars, reveal)
}

// resolvePath returns the path argument or the configured output path.
func resolvePath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.OutputPath, nil
}

func printVars(out io.Writer, path string, vars []credentials.Var, reveal bool) error {
	fmt.Fprintf(out, "Script: %s\n\n", path)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, v := range vars {
		value := v.Value
		if !reveal && isSecret(v.Name) {
			value = fmt.Sprintf("%s (%s)", redact.Mask(v.Value), redact.Fingerprint(v.Value))
		}
		fmt.Fprintf(w, "%s\t%s\n", v.Name, value)
	}
	return w.Flush()
}

func isSecret(name string) bool {
	return name == credentials.ClientSecretVar || strings.Contains(strings.ToUpper(name), "SECRET")
}
