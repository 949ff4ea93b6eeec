package style

import "card-service/pkg/card"

// OverlaySpec describes how to draw one holo pattern: a mask or tiled
// texture confining the effect, its tile size, and which compositing
// form the overlay uses. An empty spec means "draw nothing".
type OverlaySpec struct {
	Pattern  card.HoloPattern
	Form     OverlayForm
	Mask     string // CSS image value: inline SVG data URI or gradient
	TileSize string
}

// OverlayForm selects the compositing recipe for a holo pattern.
type OverlayForm int

const (
	FormNone OverlayForm = iota
	// FormMasked is the common case: a brightness-lifted texture layer
	// plus a rainbow gradient color-dodged through the same mask.
	FormMasked
	// FormSheen is a soft diagonal white sweep plus an unmasked rainbow.
	FormSheen
	// FormBorderGlow is a glowing double border, no texture mask.
	FormBorderGlow
)

// Empty reports whether the spec renders nothing.
func (s OverlaySpec) Empty() bool { return s.Form == FormNone }

// RainbowGradient is the pointer-driven spectrum shared by every holo
// form.
const RainbowGradient = "linear-gradient(115deg, transparent 10%, rgba(255,0,0,0.6) 25%, rgba(255,255,0,0.6) 35%, rgba(0,255,255,0.6) 50%, rgba(255,0,255,0.6) 65%, rgba(255,0,0,0.6) 75%, transparent 90%)"

const (
	starlightMask  = `url("data:image/svg+xml,%3Csvg width='100' height='100' viewBox='0 0 100 100' xmlns='http://www.w3.org/2000/svg'%3E%3Cg fill='%23ffffff' fill-opacity='0.6'%3E%3Cpath d='M50 0L52 15L67 17L52 19L50 34L48 19L33 17L48 15Z'/%3E%3Cpath d='M20 50L21 55L26 56L21 57L20 62L19 57L14 56L19 55Z'/%3E%3Cpath d='M80 80L81 85L86 86L81 87L80 92L79 87L74 86L79 85Z'/%3E%3Ccircle cx='10' cy='10' r='1'/%3E%3Ccircle cx='90' cy='20' r='1.5'/%3E%3Ccircle cx='30' cy='80' r='1'/%3E%3C/g%3E%3C/svg%3E")`
	cosmosMask     = `url("data:image/svg+xml,%3Csvg width='120' height='120' viewBox='0 0 120 120' xmlns='http://www.w3.org/2000/svg'%3E%3Cg fill='%23ffffff' fill-opacity='0.5'%3E%3Ccircle cx='10' cy='10' r='3'/%3E%3Ccircle cx='40' cy='30' r='1.5'/%3E%3Ccircle cx='80' cy='20' r='2'/%3E%3Ccircle cx='20' cy='80' r='1'/%3E%3Ccircle cx='90' cy='90' r='3.5'/%3E%3Ccircle cx='50' cy='60' r='1'/%3E%3Cpath d='M60 20C70 20 70 30 60 30C50 30 50 40 60 40' stroke='white' stroke-width='1.5' fill='none'/%3E%3Cpath d='M20 90C30 90 30 100 20 100' stroke='white' stroke-width='1.5' fill='none'/%3E%3Cpath d='M50 50L53 58L61 61L53 64L50 72L47 64L39 61L47 58Z'/%3E%3C/g%3E%3C/svg%3E")`
	crackedIceMask = `url("data:image/svg+xml,%3Csvg width='150' height='150' viewBox='0 0 150 150' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M0 0L30 20L60 0L80 30L120 10L150 0L140 40L150 80L120 100L150 150L100 130L80 150L50 120L0 150L20 100L0 70L40 50Z M40 50L80 30L120 100L50 120Z' fill='none' stroke='white' stroke-width='1' stroke-opacity='0.6'/%3E%3C/svg%3E")`
	waterWebMask   = `url("data:image/svg+xml,%3Csvg width='40' height='40' viewBox='0 0 40 40' xmlns='http://www.w3.org/2000/svg'%3E%3Cpath d='M0 20 Q10 0 20 20 T40 20' stroke='white' stroke-width='1.5' fill='none' stroke-opacity='0.4'/%3E%3C/svg%3E")`
	pixelMask      = `url("data:image/svg+xml,%3Csvg width='8' height='8' viewBox='0 0 8 8' xmlns='http://www.w3.org/2000/svg'%3E%3Crect x='0' y='0' width='3' height='3' fill='white' fill-opacity='0.4'/%3E%3Crect x='4' y='4' width='3' height='3' fill='white' fill-opacity='0.4'/%3E%3C/svg%3E")`

	verticalBarsMask = "linear-gradient(90deg, transparent 50%, rgba(255,255,255,0.4) 50%, rgba(255,255,255,0.4) 55%, transparent 55%)"
	crosshatchMask   = "repeating-linear-gradient(45deg, rgba(255,255,255,0.2) 0px, rgba(255,255,255,0.2) 2px, transparent 2px, transparent 8px), repeating-linear-gradient(-45deg, rgba(255,255,255,0.2) 0px, rgba(255,255,255,0.2) 2px, transparent 2px, transparent 8px)"
	tinselMask       = "repeating-linear-gradient(15deg, transparent 0px, transparent 4px, rgba(255,255,255,0.5) 4px, rgba(255,255,255,0.5) 6px)"
	sequinMask       = "radial-gradient(circle, rgba(255,255,255,0.6) 2px, transparent 2.5px)"
)

// PatternFor resolves a holo pattern to its overlay spec. Unknown
// patterns resolve to the empty spec, same as None.
func PatternFor(p card.HoloPattern) OverlaySpec {
	tile := "150px 150px"
	switch p {
	case card.HoloSheen:
		return OverlaySpec{Pattern: p, Form: FormSheen}
	case card.HoloBorderGlow:
		return OverlaySpec{Pattern: p, Form: FormBorderGlow}
	case card.HoloStarlight:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: starlightMask, TileSize: tile}
	case card.HoloCosmos:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: cosmosMask, TileSize: tile}
	case card.HoloCrackedIce:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: crackedIceMask, TileSize: tile}
	case card.HoloWaterWeb:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: waterWebMask, TileSize: tile}
	case card.HoloPixel:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: pixelMask, TileSize: tile}
	case card.HoloSequin:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: sequinMask, TileSize: tile}
	case card.HoloCrosshatch:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: crosshatchMask, TileSize: tile}
	case card.HoloTinsel:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: tinselMask, TileSize: "200% 100%"}
	case card.HoloVerticalBars:
		return OverlaySpec{Pattern: p, Form: FormMasked, Mask: verticalBarsMask, TileSize: "200% 100%"}
	default:
		return OverlaySpec{Pattern: card.HoloNone, Form: FormNone}
	}
}
