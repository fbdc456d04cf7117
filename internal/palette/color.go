// Package palette implements the color core of hexpair: random color
// generation, complement derivation, and the bounded list of
// background/foreground pairs.
//
// The package has no knowledge of storage, rendering, or the clipboard.
// Hosts drive it through Manager.Dispatch and react to Observer callbacks.
package palette

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// ColorLen is the number of hex digits in a Color.
const ColorLen = 6

// DefaultInput is the value of an empty manual input field.
const DefaultInput Color = "000000"

// ErrInvalidColorFormat indicates a value that is not exactly six hex digits.
//
//	return fmt.Errorf("restore entry %d: %w", i, palette.ErrInvalidColorFormat)
var ErrInvalidColorFormat = errors.New("invalid color format")

// Color is a 24-bit RGB value written as six hex digits with no '#' prefix.
type Color string

// Valid reports whether c is exactly six hex digits.
func (c Color) Valid() bool {
	if len(c) != ColorLen {
		return false
	}
	for i := 0; i < len(c); i++ {
		if !isHexDigit(rune(c[i])) {
			return false
		}
	}
	return true
}

// Validate returns ErrInvalidColorFormat, wrapped with the value, when c is
// not a valid Color.
func (c Color) Validate() error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColorFormat, string(c))
	}
	return nil
}

// RGB decodes c into its three byte components.
func (c Color) RGB() (r, g, b uint8, err error) {
	if err := c.Validate(); err != nil {
		return 0, 0, 0, err
	}
	raw, err := hex.DecodeString(string(c))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, string(c))
	}
	return raw[0], raw[1], raw[2], nil
}

// Hash returns the CSS form "#RRGGBB" with the digits as stored.
func (c Color) Hash() string {
	return "#" + string(c)
}

// Upper returns c with uppercase hex digits.
func (c Color) Upper() Color {
	return Color(strings.ToUpper(string(c)))
}

func (c Color) String() string { return string(c) }

// Complement returns the per-channel inverse (255 - v) of c, encoded as six
// uppercase hex digits. Complement(Complement(c)) equals c.Upper().
func Complement(c Color) (Color, error) {
	r, g, b, err := c.RGB()
	if err != nil {
		return "", err
	}
	return encode(255-r, 255-g, 255-b, "%02X%02X%02X"), nil
}

// Generator produces uniformly random colors.
// The zero value is not usable; use NewGenerator or Random.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src.
// Tests pass a seeded source such as rand.NewPCG(1, 2).
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Random returns a Generator backed by the runtime-seeded global source.
func Random() *Generator {
	return &Generator{}
}

// Color draws R, G and B independently from [0,255] and encodes them as
// lowercase, zero-padded hex digits.
func (g *Generator) Color() Color {
	return encode(g.byte(), g.byte(), g.byte(), "%02x%02x%02x")
}

func (g *Generator) byte() uint8 {
	if g.rng == nil {
		return uint8(rand.IntN(256))
	}
	return uint8(g.rng.IntN(256))
}

// NormalizeHexInput turns arbitrary user text into a valid Color. Empty input
// yields DefaultInput. Otherwise every non-hex rune is dropped, the first six
// remaining digits are kept, and shorter results are left-padded with '0'.
// It never fails.
func NormalizeHexInput(raw string) Color {
	if raw == "" {
		return DefaultInput
	}

	var b strings.Builder
	b.Grow(ColorLen)
	for _, r := range raw {
		if !isHexDigit(r) {
			continue
		}
		b.WriteRune(r)
		if b.Len() == ColorLen {
			break
		}
	}

	digits := b.String()
	return Color(strings.Repeat("0", ColorLen-len(digits)) + digits)
}

func encode(r, g, b uint8, format string) Color {
	return Color(fmt.Sprintf(format, r, g, b))
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
