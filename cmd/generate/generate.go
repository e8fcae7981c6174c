// Package generate provides the command that writes the environment script.
package generate

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/brentdalling/gcenv/internal/config"
	"github.com/brentdalling/gcenv/internal/prompt"
	"github.com/brentdalling/gcenv/internal/regions"
	"github.com/brentdalling/gcenv/internal/script"
)

var (
	outputPath  string
	interpreter string
	noClipboard bool
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// GenerateCmd is the cobra command for generating the environment script.
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Prompt for credentials and write the environment script",
	Long: `Prompt for a Genesys Cloud OAuth client ID, client secret and region, then
write them as export statements to a shell script you can source.

Values are written exactly as typed inside double quotes. A value containing
a double quote or other shell metacharacters will produce a broken script.`,
	Args: cobra.NoArgs,
	RunE: Run,
}

func init() {
	addFlags(GenerateCmd)
}

func addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", script.DefaultPath, "Path of the generated script")
	cmd.Flags().StringVar(&interpreter, "interpreter", script.DefaultInterpreter, "Interpreter for the #! line")
	cmd.Flags().BoolVarP(&noClipboard, "no-clipboard", "n", false, "Don't copy the source command to clipboard")
}

// Run collects the credential set, renders the script and writes it.
func Run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	out := cmd.OutOrStdout()
	set, err := newCollector(cmd.InOrStdin(), out).Collect()
	if err != nil {
		return fmt.Errorf("collect credentials: %w", err)
	}

	content := script.Render(set, script.Options{Interpreter: cfg.Interpreter})
	if err := script.Check(content); err != nil {
		slog.Warn("generated script is not valid shell; values are written unescaped", "error", err)
	}

	if err := script.Emit(cfg.OutputPath, content); err != nil {
		return err
	}

	outputResult(out, cfg.OutputPath, set.Region, cfg.NoClipboard)
	return nil
}

// applyFlags overlays flags the user set explicitly on top of cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.OutputPath = outputPath
	}
	if cmd.Flags().Changed("interpreter") {
		cfg.Interpreter = interpreter
	}
	if noClipboard {
		cfg.NoClipboard = true
	}
}

func newCollector(in io.Reader, out io.Writer) *prompt.Collector {
	if f, ok := in.(*os.File); ok {
		return prompt.New(f, out)
	}
	return &prompt.Collector{In: in, Out: out}
}

// outputResult prints where the script went and how to load it.
func outputResult(out io.Writer, path, region string, noClipboard bool) {
	hint := "source " + path

	fmt.Fprintf(out, "Environment script written to %s\n", path)
	fmt.Fprintf(out, "Run: %s\n", hint)

	if r, err := regions.Lookup(region); err == nil {
		fmt.Fprintf(out, "API endpoint: %s\n", r.BasePath())
	} else {
		slog.Debug("region not in region table", "region", region)
	}

	if !noClipboard {
		if err := copyToClipboard(hint); err == nil {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "✓ Command copied to clipboard")
		}
	}
}
