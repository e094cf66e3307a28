package cli

import (
	"context"
	"fmt"
	"image"
	"maps"
	"os"
	"slices"
	"strings"

	// logo decoders
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"

	"github.com/mhartmer/certforge/pkg/errors"
	cfio "github.com/mhartmer/certforge/pkg/io"
	"github.com/mhartmer/certforge/pkg/pipeline"
	"github.com/mhartmer/certforge/pkg/profile"
	"github.com/mhartmer/certforge/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	profilePath   string // TOML profile file (template, style, output, security)
	outputDir     string // overrides the profile's output directory
	format        string // overrides the profile's output format
	dpi           int    // overrides the profile's DPI
	quality       int    // overrides the profile's quality
	certificateID string // caller-supplied certificate ID (minted if empty)
	filename      string // caller-supplied artifact filename
	logoPath      string // optional logo image
	receiptPath   string // write the result receipt as JSON to this path
}

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [records.json]",
		Short: "Generate a certificate image from a JSON record file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profilePath, "profile", "p", "", "TOML profile file")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default: app data dir)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: png (default), jpg, jpeg")
	cmd.Flags().IntVar(&opts.dpi, "dpi", 0, "target resolution, 72-600 (default 300)")
	cmd.Flags().IntVar(&opts.quality, "quality", 0, "jpeg quality, 1-100 (default 90)")
	cmd.Flags().StringVar(&opts.certificateID, "id", "", "certificate ID (minted when omitted)")
	cmd.Flags().StringVar(&opts.filename, "filename", "", "artifact filename (derived when omitted)")
	cmd.Flags().StringVar(&opts.logoPath, "logo", "", "logo image file drawn above the institution line")
	cmd.Flags().StringVar(&opts.receiptPath, "receipt", "", "also write the result receipt as JSON to this path")

	return cmd
}

// runGenerate loads the records and profile, builds the generator, runs the
// pipeline and prints the result summary.
func runGenerate(ctx context.Context, recordPath string, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	person, achievement, err := cfio.ImportRecords(recordPath)
	if err != nil {
		return err
	}
	logger.Debugf("loaded records for %s / %s", person.Name, achievement.Name)

	prof, err := loadProfile(opts.profilePath)
	if err != nil {
		return err
	}
	applyOverrides(&prof, opts)

	styleCfg, err := prof.StyleConfig()
	if err != nil {
		return err
	}
	layoutCfg, err := prof.LayoutConfig()
	if err != nil {
		return err
	}

	logo, err := loadLogo(opts.logoPath)
	if err != nil {
		return err
	}

	gen, err := pipeline.NewGenerator(
		render.New(prof.Template, styleCfg, layoutCfg),
		pipeline.WithOutput(prof.Output),
		pipeline.WithSecurity(prof.Security),
		pipeline.WithLogger(logger),
	)
	if err != nil {
		return describeFailure(err)
	}

	result, err := gen.Generate(ctx, pipeline.Request{
		Person:        person,
		Achievement:   achievement,
		CertificateID: opts.certificateID,
		Filename:      opts.filename,
		Logo:          logo,
	})
	if err != nil {
		return describeFailure(err)
	}
	prog.done(fmt.Sprintf("Generated certificate %s", result.CertificateID))

	if opts.receiptPath != "" {
		if err := cfio.ExportResult(result, opts.receiptPath); err != nil {
			return err
		}
		logger.Infof("wrote receipt %s", opts.receiptPath)
	}

	printResult(result)
	return nil
}

func loadProfile(path string) (profile.Profile, error) {
	if path == "" {
		return profile.Default(), nil
	}
	return profile.Load(path)
}

// applyOverrides lets flags win over profile values.
func applyOverrides(prof *profile.Profile, opts *generateOpts) {
	if opts.outputDir != "" {
		prof.Output.OutputDir = opts.outputDir
	}
	if opts.format != "" {
		prof.Output.Format = opts.format
	}
	if opts.dpi != 0 {
		prof.Output.DPI = opts.dpi
	}
	if opts.quality != 0 {
		prof.Output.Quality = opts.quality
	}
}

// loadLogo decodes an optional logo image. An empty path returns nil.
func loadLogo(path string) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open logo %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}
	return img, nil
}

// describeFailure turns the pipeline's structured errors into terse CLI
// errors, listing field violations one per line for validation failures.
func describeFailure(err error) error {
	if fields := errors.FieldErrors(err); len(fields) > 0 {
		var b strings.Builder
		b.WriteString("invalid input:")
		for _, field := range slices.Sorted(maps.Keys(fields)) {
			fmt.Fprintf(&b, "\n  %s: %s", field, fields[field])
		}
		return fmt.Errorf("%s", b.String())
	}
	return err
}
