package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhartmer/certforge/pkg/verify"
)

// newVerifyCmd creates the verify command. Verification answers a yes/no
// question, so a mismatch is reported through the exit code rather than as
// an error message.
func newVerifyCmd() *cobra.Command {
	var checksum string

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Verify a certificate file against its checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if checksum == "" {
				return fmt.Errorf("--checksum is required")
			}
			ok := verify.Verify(args[0], checksum)
			printVerdict(ok)
			if !ok {
				return fmt.Errorf("verification failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&checksum, "checksum", "c", "", "expected hex digest from the generation receipt")

	return cmd
}

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print raster facts of a certificate file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := verify.Inspect(args[0])
			if !ok {
				return fmt.Errorf("cannot decode %s as a certificate image", args[0])
			}
			printInfo(info)
			return nil
		},
	}
}
