package layout

import (
	"card-service/pkg/card"
	"card-service/pkg/style"
)

// Pointer-driven positions read the normalized coordinate published by
// the tilt controller through CSS variables, so the overlay updates at
// pointer-move frequency with zero re-render cost.
const (
	pointerShift   = "background-position: calc(var(--mouse-x, 0.5) * 60px) calc(var(--mouse-y, 0.5) * 60px)"
	pointerSweep   = "background-position: calc(var(--mouse-x, 0.5) * 200%) calc(var(--mouse-y, 0.5) * 200%)"
	pointerRainbow = "background-position: calc(var(--mouse-x, 0.5) * 130%) calc(var(--mouse-y, 0.5) * 130%)"
)

// HoloOverlay composes the iridescent layer for a holo pattern. For
// None (or anything unknown) it returns nil: no node, no visual cost.
// Every produced node carries HoloClass so the export pipeline can
// strip the layer from snapshots.
func HoloOverlay(p card.HoloPattern) *Node {
	spec := style.PatternFor(p)
	switch spec.Form {
	case style.FormSheen:
		return sheenOverlay()
	case style.FormBorderGlow:
		return borderGlowOverlay()
	case style.FormMasked:
		return maskedOverlay(spec)
	default:
		return nil
	}
}

func overlayBase() *Node {
	return Div().Cls(HoloClass).
		CSS("position: absolute", "inset: 0", "pointer-events: none", "z-index: 5")
}

// maskedOverlay is the common recipe: the pattern texture lifted with
// an overlay blend, plus the rainbow gradient color-dodged through the
// same mask so the spectrum stays confined to the pattern's shape.
func maskedOverlay(spec style.OverlaySpec) *Node {
	texture := layer(
		"pointer-events: none",
		"z-index: 5",
		"background-image: "+spec.Mask,
		"background-size: "+spec.TileSize,
		pointerShift,
		"mix-blend-mode: overlay",
		"opacity: 0.3",
		"filter: brightness(1.5)")

	rainbow := layer(
		"pointer-events: none",
		"z-index: 5",
		"background: "+style.RainbowGradient,
		"background-size: 200% 200%",
		pointerRainbow,
		"mix-blend-mode: color-dodge",
		"opacity: 0.35",
		"mask-image: "+spec.Mask,
		"-webkit-mask-image: "+spec.Mask,
		"mask-size: "+spec.TileSize,
		"-webkit-mask-size: "+spec.TileSize)

	return overlayBase().Kids(texture, rainbow)
}

func sheenOverlay() *Node {
	sweep := layer(
		"background: linear-gradient(135deg, rgba(255,255,255,0) 30%, rgba(255,255,255,0.7) 50%, rgba(255,255,255,0) 70%)",
		"background-size: 200% 200%",
		pointerSweep,
		"filter: blur(8px)")

	rainbow := layer(
		"background: "+style.RainbowGradient,
		"background-size: 150% 150%",
		pointerSweep)

	return overlayBase().
		CSS("mix-blend-mode: overlay", "opacity: 0.5").
		Kids(sweep, rainbow)
}

func borderGlowOverlay() *Node {
	soft := layer(
		"border: 10px solid rgba(255,255,255,0.6)",
		"filter: blur(6px)",
		"border-radius: inherit")
	hard := layer(
		"border: 3px solid rgba(255,255,255,0.9)",
		"border-radius: inherit")
	wash := layer(
		"background: linear-gradient(to top, rgba(255,255,255,0.1), transparent)")

	return overlayBase().
		CSS("mix-blend-mode: screen", "opacity: 0.6").
		Kids(soft, hard, wash)
}
