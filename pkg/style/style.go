// Package style maps a card's semantic attributes (element type, holo
// pattern, trainer type) to visual parameters. Every function is a pure
// total lookup: inputs outside the enum domain resolve to a neutral
// default instead of failing, so a malformed or future-versioned card
// still renders deterministically.
package style

import (
	"fmt"

	"card-service/pkg/card"
)

// Theme styles a creature card's attack box and footer.
type Theme struct {
	BoxGradient    string
	FooterGradient string
	TextColor      string
	SubTextColor   string
}

// ColorFor returns the accent color used for glyphs, ripples and other
// effect chrome.
func ColorFor(t card.ElementType) string {
	switch t {
	case card.Fire:
		return "#ef4444"
	case card.Grass:
		return "#22c55e"
	case card.Water:
		return "#3b82f6"
	case card.Lightning:
		return "#eab308"
	case card.Psychic:
		return "#a855f7"
	case card.Fighting:
		return "#c2410c"
	case card.Darkness:
		return "#1f2937"
	case card.Metal:
		return "#9ca3af"
	case card.Fairy:
		return "#f472b6"
	case card.Dragon:
		return "#ca8a04"
	case card.Ice:
		return "#22d3ee"
	case card.Poison:
		return "#d946ef"
	case card.Ground:
		return "#a16207"
	case card.Flying:
		return "#60a5fa"
	case card.Bug:
		return "#84cc16"
	case card.Rock:
		return "#78716c"
	case card.Ghost:
		return "#4f46e5"
	default:
		return "#d1d5db"
	}
}

// EnergyColorFor returns the vibrant flat color used as the energy
// layout's background.
func EnergyColorFor(t card.ElementType) string {
	switch t {
	case card.Grass:
		return "#5FBD58"
	case card.Fire:
		return "#F08030"
	case card.Water:
		return "#539DDF"
	case card.Lightning:
		return "#F8D030"
	case card.Psychic:
		return "#FA92B2"
	case card.Fighting:
		return "#D04164"
	case card.Darkness:
		return "#5A5366"
	case card.Metal:
		return "#B7B7CE"
	case card.Fairy:
		return "#EE99AC"
	case card.Dragon:
		return "#C2A84F"
	case card.Ice:
		return "#78DEE0"
	case card.Poison:
		return "#A040A0"
	case card.Ground:
		return "#E0C068"
	case card.Flying:
		return "#A890F0"
	case card.Bug:
		return "#A8B820"
	case card.Rock:
		return "#B8A038"
	case card.Ghost:
		return "#705898"
	default:
		return "#E0E0E0"
	}
}

// TrainerColorFor colors the trainer subtype badge.
func TrainerColorFor(t card.TrainerType) string {
	switch t {
	case card.TrainerSupporter:
		return "#ef4444"
	case card.TrainerStadium:
		return "#22c55e"
	case card.TrainerTool:
		return "#a855f7"
	default:
		return "#3b82f6"
	}
}

func vbox(top, bottom string) string {
	return fmt.Sprintf("linear-gradient(to bottom, %se6, %se6)", top, bottom)
}

func vfooter(c string) string {
	return fmt.Sprintf("linear-gradient(to top, %s, transparent)", c)
}

// ThemeFor returns the per-type theme for the creature layout's attack
// box and footer. Unknown types get the colorless theme.
func ThemeFor(t card.ElementType) Theme {
	switch t {
	case card.Grass:
		return Theme{vbox("#16a34a", "#15803d"), vfooter("#16a34a"), "#ffffff", "#dcfce7"}
	case card.Fire:
		return Theme{vbox("#ea580c", "#dc2626"), vfooter("#dc2626"), "#ffffff", "#ffedd5"}
	case card.Water:
		return Theme{vbox("#2563eb", "#1e40af"), vfooter("#1d4ed8"), "#ffffff", "#dbeafe"}
	case card.Lightning:
		return Theme{vbox("#facc15", "#eab308"), vfooter("#eab308"), "#000000", "#713f12"}
	case card.Psychic:
		return Theme{vbox("#9333ea", "#6b21a8"), vfooter("#7e22ce"), "#ffffff", "#f3e8ff"}
	case card.Fighting:
		return Theme{vbox("#c2410c", "#92400e"), vfooter("#9a3412"), "#ffffff", "#ffedd5"}
	case card.Darkness:
		return Theme{vbox("#1f2937", "#000000"), vfooter("#111827"), "#ffffff", "#d1d5db"}
	case card.Metal:
		return Theme{vbox("#9ca3af", "#6b7280"), vfooter("#6b7280"), "#000000", "#1f2937"}
	case card.Fairy:
		return Theme{vbox("#f472b6", "#db2777"), vfooter("#ec4899"), "#ffffff", "#fce7f3"}
	case card.Dragon:
		return Theme{vbox("#C4A484", "#8B7355"), vfooter("#8B7355"), "#ffffff", "#fef9c3"}
	case card.Ice:
		return Theme{vbox("#22d3ee", "#0891b2"), vfooter("#06b6d4"), "#000000", "#164e63"}
	case card.Poison:
		return Theme{vbox("#c026d3", "#86198f"), vfooter("#a21caf"), "#ffffff", "#fae8ff"}
	case card.Ground:
		return Theme{vbox("#a16207", "#854d0e"), vfooter("#854d0e"), "#ffffff", "#fef9c3"}
	case card.Flying:
		return Theme{vbox("#93c5fd", "#60a5fa"), vfooter("#60a5fa"), "#000000", "#1e3a8a"}
	case card.Bug:
		return Theme{vbox("#84cc16", "#65a30d"), vfooter("#65a30d"), "#000000", "#365314"}
	case card.Rock:
		return Theme{vbox("#78716c", "#57534e"), vfooter("#57534e"), "#ffffff", "#f5f5f4"}
	case card.Ghost:
		return Theme{vbox("#4f46e5", "#3730a3"), vfooter("#4338ca"), "#ffffff", "#e0e7ff"}
	default:
		return Theme{vbox("#e5e7eb", "#d1d5db"), vfooter("#d1d5db"), "#000000", "#374151"}
	}
}

// BackgroundFor returns the creature layout's full-card background
// gradient.
func BackgroundFor(t card.ElementType) string {
	diag := func(stops string) string {
		return fmt.Sprintf("linear-gradient(to bottom right, %s)", stops)
	}
	switch t {
	case card.Fire:
		return diag("#ea580c, #c2410c, #7c2d12")
	case card.Grass:
		return diag("#16a34a, #166534")
	case card.Water:
		return diag("#3b82f6, #1e40af")
	case card.Lightning:
		return diag("#facc15, #ca8a04")
	case card.Psychic:
		return diag("#a855f7, #6b21a8")
	case card.Fighting:
		return diag("#ea580c, #9a3412")
	case card.Darkness:
		return diag("#1f2937, #000000")
	case card.Metal:
		return diag("#9ca3af, #4b5563")
	case card.Fairy:
		return diag("#f472b6, #be185d")
	case card.Dragon:
		return diag("#ca8a04, #166534")
	case card.Ice:
		return diag("#22d3ee, #0e7490")
	case card.Poison:
		return diag("#d946ef, #86198f")
	case card.Ground:
		return diag("#a16207, #713f12")
	case card.Flying:
		return diag("#93c5fd, #3b82f6")
	case card.Bug:
		return diag("#84cc16, #4d7c0f")
	case card.Rock:
		return diag("#78716c, #44403c")
	case card.Ghost:
		return diag("#6366f1, #3730a3")
	default:
		return diag("#d1d5db, #9ca3af")
	}
}
