// Package fonts provides font faces for certificate rendering.
//
// Style configurations name font families ("Georgia", "Helvetica"); this
// package resolves those names against the system font directories using
// go-findfont and falls back to the Go fonts embedded in golang.org/x/image
// when no matching TTF is installed. Rendering therefore never fails for
// lack of a font, it just degrades to the embedded family.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight selects a fallback variant when a named family cannot be resolved.
type Weight int

const (
	Regular Weight = iota
	Bold
	Italic
)

var (
	embeddedOnce sync.Once
	embedded     map[Weight]*truetype.Font
)

// loadEmbedded parses the embedded Go fonts once. The font data is a
// compile-time constant, so a parse failure here is a build defect; the
// variant is simply left out of the map and Resolve falls back to Regular.
func loadEmbedded() {
	embedded = make(map[Weight]*truetype.Font, 3)
	for w, data := range map[Weight][]byte{
		Regular: goregular.TTF,
		Bold:    gobold.TTF,
		Italic:  goitalic.TTF,
	} {
		if f, err := truetype.Parse(data); err == nil {
			embedded[w] = f
		}
	}
}

// Resolve returns a parsed font for the given family name, falling back to
// the embedded Go font of the given weight when the family is not installed.
// The empty family name skips the system lookup entirely.
func Resolve(family string, weight Weight) *truetype.Font {
	embeddedOnce.Do(loadEmbedded)

	if family != "" {
		if path, err := findfont.Find(family + ".ttf"); err == nil {
			if data, err := os.ReadFile(path); err == nil {
				if f, err := truetype.Parse(data); err == nil {
					return f
				}
			}
		}
	}

	if f, ok := embedded[weight]; ok {
		return f
	}
	return embedded[Regular]
}

// NewFace builds a face at the given pixel size. Sizes are treated as pixels
// by fixing the face DPI at 72, so layout math stays in canvas pixels.
func NewFace(f *truetype.Font, pixels float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    pixels,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Face resolves family and builds a face in one step.
func Face(family string, weight Weight, pixels float64) font.Face {
	return NewFace(Resolve(family, weight), pixels)
}
