package services

import (
	"testing"

	"agencybackend/internal/domain"
)

func TestDerivePaletteDeterministic(t *testing.T) {
	first, err := DerivePalette("#2563EB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := DerivePalette("#2563EB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("palette not deterministic: %+v vs %+v", first, second)
	}
}

func TestDerivePaletteNamedShades(t *testing.T) {
	p, err := DerivePalette("2563EB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Base != "#2563EB" {
		t.Fatalf("base normalized wrong: %s", p.Base)
	}
	if p.GradientTo != "#1E4FBC" {
		t.Fatalf("gradientTo wrong: %s", p.GradientTo)
	}
	if p.BorderAccent != "#A8C1F7" {
		t.Fatalf("borderAccent wrong: %s", p.BorderAccent)
	}
}

func TestDerivePaletteInvalidColor(t *testing.T) {
	for _, bad := range []string{"", "fff", "#12345", "#GGGGGG", "not-a-color"} {
		if _, err := DerivePalette(bad); !domain.IsInvalidColor(err) {
			t.Fatalf("expected InvalidColorError for %q, got %v", bad, err)
		}
	}
}

func TestDerivePaletteOrDefaultFallsBack(t *testing.T) {
	p := DerivePaletteOrDefault("corrupted")
	if p.Base != DefaultBrandColor {
		t.Fatalf("expected default base, got %s", p.Base)
	}
}

func TestShadeMathStaysInBounds(t *testing.T) {
	factors := []float64{0, 0.1, 0.3, 0.5, 0.8, 1}
	colors := []string{"#000000", "#FFFFFF", "#2563EB", "#7F7F7F", "#FF0001"}

	for _, c := range colors {
		for _, f := range factors {
			for _, f2 := range factors {
				out := Lighten(Darken(c, f), f2)
				if r, g, b, err := parseHexColor(out); err != nil || r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
					t.Fatalf("out of bounds for %s f=%v f2=%v: %s (%v)", c, f, f2, out, err)
				}
			}
		}
	}
}

func TestDarkenLightenChannelMath(t *testing.T) {
	// round(channel * factor) per channel
	if got := Darken("#2563EB", 0.8); got != "#1E4FBC" {
		t.Fatalf("darken wrong: %s", got)
	}
	// round(channel + (255-channel) * factor)
	if got := Lighten("#2563EB", 0.6); got != "#A8C1F7" {
		t.Fatalf("lighten wrong: %s", got)
	}
	if got := Darken("#2563EB", 0); got != "#000000" {
		t.Fatalf("darken to black wrong: %s", got)
	}
	if got := Lighten("#2563EB", 1); got != "#FFFFFF" {
		t.Fatalf("lighten to white wrong: %s", got)
	}
}
