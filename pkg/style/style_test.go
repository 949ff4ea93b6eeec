package style

import (
	"strings"
	"testing"

	"card-service/pkg/card"
)

func TestColorForIsTotal(t *testing.T) {
	seen := map[string]bool{}
	for _, el := range card.ElementTypes {
		c := ColorFor(el)
		if !strings.HasPrefix(c, "#") || len(c) != 7 {
			t.Errorf("ColorFor(%s) = %q, not a hex color", el, c)
		}
		seen[c] = true
	}
	if len(seen) < len(card.ElementTypes)-1 {
		t.Errorf("element colors collapse: %d distinct for %d types", len(seen), len(card.ElementTypes))
	}
	if got := ColorFor(card.ElementType("unknown")); got != "#d1d5db" {
		t.Errorf("unknown element color = %q", got)
	}
}

func TestThemeForIsTotal(t *testing.T) {
	for _, el := range append(card.ElementTypes, card.ElementType("junk"), card.ElementType("")) {
		th := ThemeFor(el)
		if th.BoxGradient == "" || th.FooterGradient == "" || th.TextColor == "" || th.SubTextColor == "" {
			t.Errorf("ThemeFor(%q) has empty fields: %+v", el, th)
		}
	}
}

func TestBackgroundForIsTotal(t *testing.T) {
	for _, el := range card.ElementTypes {
		bg := BackgroundFor(el)
		if !strings.Contains(bg, "gradient") {
			t.Errorf("BackgroundFor(%s) = %q", el, bg)
		}
	}
	if BackgroundFor(card.ElementType("junk")) == "" {
		t.Error("unknown element has no background")
	}
}

func TestTrainerColorFor(t *testing.T) {
	for _, tt := range card.TrainerTypes {
		if TrainerColorFor(tt) == "" {
			t.Errorf("TrainerColorFor(%s) empty", tt)
		}
	}
	if got := TrainerColorFor(card.TrainerType("junk")); got != "#3b82f6" {
		t.Errorf("unknown trainer color = %q", got)
	}
}

func TestEnergyColorFor(t *testing.T) {
	if got := EnergyColorFor(card.ElementType("junk")); got != "#E0E0E0" {
		t.Errorf("unknown energy color = %q", got)
	}
	if EnergyColorFor(card.Fire) == EnergyColorFor(card.Water) {
		t.Error("fire and water energy frames should differ")
	}
}

func TestGlyphPathForIsTotal(t *testing.T) {
	for _, el := range card.ElementTypes {
		if GlyphPathFor(el) == "" {
			t.Errorf("GlyphPathFor(%s) empty", el)
		}
	}
	if GlyphPathFor(card.ElementType("junk")) != GlyphPathFor(card.Colorless) {
		t.Error("unknown element should use the colorless glyph")
	}
}

func TestGlyphSVG(t *testing.T) {
	svg := GlyphSVG(card.Fire, 28)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, `width="28"`) {
		t.Errorf("GlyphSVG = %q", svg)
	}
	if !strings.Contains(svg, ColorFor(card.Fire)) {
		t.Error("glyph orb is not tinted with the element color")
	}
}

func TestPatternFor(t *testing.T) {
	if !PatternFor(card.HoloNone).Empty() {
		t.Error("None should produce an empty overlay spec")
	}
	if !PatternFor(card.HoloPattern("wat")).Empty() {
		t.Error("unknown pattern should fail closed to empty")
	}
	for _, p := range card.HoloPatterns {
		if p == card.HoloNone {
			continue
		}
		spec := PatternFor(p)
		if spec.Empty() {
			t.Errorf("PatternFor(%s) empty", p)
		}
		if spec.Form == FormMasked && spec.Mask == "" {
			t.Errorf("masked pattern %s has no mask", p)
		}
	}
}
