// Package profile loads generation profiles from TOML files.
//
// A profile bundles the template, style, layout, output and security
// selections for the CLI host, so a team can keep one checked-in file per
// certificate program:
//
//	template = "elegant"
//	style    = "elegant"
//	layout   = "a4"
//
//	[output]
//	dpi     = 300
//	quality = 90
//	format  = "png"
//
//	[security]
//	enable_watermark         = true
//	enable_digital_signature = true
//	secret_key               = "..."
package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/mhartmer/certforge/pkg/pipeline"
	"github.com/mhartmer/certforge/pkg/style"
)

// Profile is the decoded form of a profile file.
type Profile struct {
	Template string `toml:"template"`
	Style    string `toml:"style"`
	Layout   string `toml:"layout"`

	Output   pipeline.OutputConfig   `toml:"output"`
	Security pipeline.SecurityConfig `toml:"security"`
}

// Default returns the profile used when no file is given: the standard
// template with the classic style on A4.
func Default() Profile {
	return Profile{
		Template: "standard",
		Style:    "classic",
		Layout:   "a4",
	}
}

// Load reads and decodes a profile file, with absent fields falling back to
// the defaults.
func Load(path string) (Profile, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// StyleConfig resolves the profile's style preset name.
func (p Profile) StyleConfig() (style.StyleConfig, error) {
	switch strings.ToLower(p.Style) {
	case "", "classic":
		return style.Classic(), nil
	case "modern":
		return style.Modern(), nil
	case "elegant":
		return style.Elegant(), nil
	default:
		return style.StyleConfig{}, fmt.Errorf("unknown style: %q (must be 'classic', 'modern', or 'elegant')", p.Style)
	}
}

// LayoutConfig resolves the profile's layout preset name.
func (p Profile) LayoutConfig() (style.LayoutConfig, error) {
	switch strings.ToLower(p.Layout) {
	case "", "a4":
		return style.A4(), nil
	case "letter":
		return style.Letter(), nil
	default:
		return style.LayoutConfig{}, fmt.Errorf("unknown layout: %q (must be 'a4' or 'letter')", p.Layout)
	}
}
