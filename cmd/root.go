package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/readmanual/internal/config"
)

// ErrUnknownFlag is returned when the command line carries a flag that
// readmanual does not recognise.
var ErrUnknownFlag = errors.New("unknown flag")

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "readmanual [patterns...]",
	Short: "Build a single-page HTML manual from Markdown files",
	Long: `readmanual renders Markdown documents into one self-contained HTML manual
with a section switcher, a per-section table of contents and embedded
styles and scripts.

Positional arguments are glob patterns (** is supported). Without patterns
every *.md, *.css and *.js file in the working directory is used.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute runs the root command and prints a single diagnostic on failure.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUnknownFlag):
		return ExitUsage
	default:
		return ExitError
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringP("language", "l", "en", "document language code")
	rootCmd.Flags().StringP("output", "o", "manual.html", "output file")
	rootCmd.Flags().StringP("name", "n", "Manual", "manual name")

	rootCmd.SetFlagErrorFunc(flagError)
}

// flagError tags pflag's unknown-flag failures with ErrUnknownFlag; other
// flag errors (a missing value, say) pass through unchanged.
func flagError(cmd *cobra.Command, err error) error {
	msg := err.Error()
	for _, prefix := range []string{"unknown flag: ", "unknown shorthand flag: "} {
		if rest, ok := strings.CutPrefix(msg, prefix); ok {
			return fmt.Errorf("%w: %s", ErrUnknownFlag, rest)
		}
	}
	return err
}
