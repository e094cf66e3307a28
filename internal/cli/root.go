package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhartmer/certforge/pkg/buildinfo"
)

// Execute runs the certforge CLI and returns an error if any command fails.
//
// The root command wires the generate, verify and inspect subcommands,
// configures logging based on the --verbose flag, and attaches the logger to
// the command context for the pipeline to use.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "certforge",
		Short:        "certforge renders tamper-evident certificate images",
		Long:         `certforge turns an award record (recipient plus course or achievement) into a rasterized certificate image with a verifiable receipt: checksum, metadata and a unique certificate identifier.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newInspectCmd())

	return root.ExecuteContext(context.Background())
}
