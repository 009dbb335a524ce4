// Package palette derives the fixed set of UI-state shades used by a theme variant.
package palette

import (
	"github.com/alexisbeaulieu97/accentgen/internal/color"
)

// Brightness factors applied to the base color, and the overlay opacity.
const (
	HoverFactor    = 1.1
	ActiveFactor   = 0.9
	LightFactor    = 1.3
	DarkFactor     = 0.7
	OverlayOpacity = 0.2
)

// Palette is the set of shades derived from one base color. Values are
// lower-case #rrggbb strings except Overlay, which is a CSS rgb() string.
type Palette struct {
	Base    string
	Hover   string
	Active  string
	Light   string
	Dark    string
	Overlay string
}

// Shade is one named entry of a Palette.
type Shade struct {
	Name  string
	Value string
}

// Build derives a Palette from base. It has no side effects and returns
// identical output for identical input.
func Build(base string) (Palette, error) {
	normalized, err := color.Normalize(base)
	if err != nil {
		return Palette{}, err
	}

	p := Palette{Base: normalized}
	scaled := []struct {
		dst    *string
		factor float64
	}{
		{&p.Hover, HoverFactor},
		{&p.Active, ActiveFactor},
		{&p.Light, LightFactor},
		{&p.Dark, DarkFactor},
	}
	for _, s := range scaled {
		shade, err := color.ScaleBrightness(normalized, s.factor)
		if err != nil {
			return Palette{}, err
		}
		*s.dst = shade
	}

	p.Overlay, err = color.Translucent(normalized, OverlayOpacity)
	if err != nil {
		return Palette{}, err
	}
	return p, nil
}

// Shades lists the five hex shades in base, hover, active, light, dark order.
func (p Palette) Shades() []Shade {
	return []Shade{
		{Name: "base", Value: p.Base},
		{Name: "hover", Value: p.Hover},
		{Name: "active", Value: p.Active},
		{Name: "light", Value: p.Light},
		{Name: "dark", Value: p.Dark},
	}
}
