package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mhartmer/certforge/pkg/pipeline"
	"github.com/mhartmer/certforge/pkg/verify"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - failure
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - labels
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim).Width(14)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleID      = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleFailure = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// printResult writes the generation receipt summary to stdout.
func printResult(res *pipeline.Result) {
	row := func(label, value string) {
		fmt.Println(styleLabel.Render(label) + styleValue.Render(value))
	}
	fmt.Println(styleLabel.Render("Certificate") + styleID.Render(res.CertificateID))
	row("File", res.FilePath)
	row("Size", fmt.Sprintf("%d bytes", res.FileSize))
	row("Checksum", res.Checksum)
	row("Generated", res.GeneratedAt.Format("2006-01-02 15:04:05"))
}

// printVerdict writes a verification verdict to stdout.
func printVerdict(ok bool) {
	if ok {
		fmt.Println(styleSuccess.Render("✓ checksum matches"))
		return
	}
	fmt.Println(styleFailure.Render("✗ checksum mismatch or unreadable file"))
}

// printInfo writes raster facts to stdout.
func printInfo(info verify.Info) {
	row := func(label, value string) {
		fmt.Println(styleLabel.Render(label) + styleValue.Render(value))
	}
	row("Dimensions", fmt.Sprintf("%d × %d px", info.Width, info.Height))
	row("Size", fmt.Sprintf("%d bytes", info.FileSize))
	row("Format", info.Format)
	row("Checksum", info.Checksum)
}
