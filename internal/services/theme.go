package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"agencybackend/internal/domain"
	"agencybackend/internal/domain/models"
)

// DefaultBrandColor is substituted whenever an agency has no usable colour.
const DefaultBrandColor = "#2563EB"

// DerivePalette expands one brand colour into the shades shared by every
// renderer. Deterministic: same input, byte-identical output.
func DerivePalette(hex string) (models.Palette, error) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return models.Palette{}, err
	}

	base := formatHexColor(r, g, b)
	return models.Palette{
		Base:         base,
		GradientTo:   Darken(base, 0.8),
		BorderAccent: Lighten(base, 0.6),
		RouteLine:    Lighten(base, 0.3),
		BadgeBg:      Lighten(base, 0.85),
	}, nil
}

// DerivePaletteOrDefault recovers from a malformed colour by falling back to
// DefaultBrandColor. The invalid value is never surfaced to the caller.
func DerivePaletteOrDefault(hex string) models.Palette {
	p, err := DerivePalette(hex)
	if err == nil {
		return p
	}
	p, _ = DerivePalette(DefaultBrandColor)
	return p
}

// Darken scales each channel toward black: round(c * factor).
// Invalid input is returned unchanged so chained shade math never panics.
func Darken(hex string, factor float64) string {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return hex
	}
	return formatHexColor(
		clampChannel(math.Round(float64(r)*factor)),
		clampChannel(math.Round(float64(g)*factor)),
		clampChannel(math.Round(float64(b)*factor)),
	)
}

// Lighten moves each channel toward white: round(c + (255-c) * factor).
func Lighten(hex string, factor float64) string {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return hex
	}
	return formatHexColor(
		clampChannel(math.Round(float64(r)+float64(255-r)*factor)),
		clampChannel(math.Round(float64(g)+float64(255-g)*factor)),
		clampChannel(math.Round(float64(b)+float64(255-b)*factor)),
	)
}

func clampChannel(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return int(v)
}

func parseHexColor(hex string) (r, g, b int, err error) {
	s := strings.TrimSpace(hex)
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, domain.InvalidColorError{Value: hex}
	}
	rv, err1 := strconv.ParseUint(s[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(s[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, domain.InvalidColorError{Value: hex}
	}
	return int(rv), int(gv), int(bv), nil
}

func formatHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}
