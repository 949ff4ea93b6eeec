package layout

import (
	"fmt"
	"strings"

	"card-service/pkg/card"
	"card-service/pkg/tilt"
)

const baseCSS = `html, body { margin: 0; padding: 0; background: transparent; }
* { box-sizing: border-box; }`

// Document wraps pre-rendered card markup in a standalone HTML page.
// Everything the page needs ships inline; the rasterizer never fetches
// a stylesheet.
func Document(body, extraCSS string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><style>")
	b.WriteString(baseCSS)
	if extraCSS != "" {
		b.WriteString("\n")
		b.WriteString(extraCSS)
	}
	b.WriteString("</style></head><body>")
	b.WriteString(body)
	b.WriteString("</body></html>")
	return b.String()
}

// PreviewOptions carry the interactive state a preview is rendered
// with.
type PreviewOptions struct {
	Tilt tilt.State
	// Transitioning includes the type-change overlay for the card's
	// current element type.
	Transitioning bool
	// Hovering lifts the card toward the viewer.
	Hovering bool
}

// Preview renders the full interactive presentation of a card: the
// layered layout inside a perspective wrapper, rotated by the tilt
// state, with the glare layer and (optionally) the type-transition
// overlay on top. The normalized pointer position is published to the
// holo overlay through CSS variables on the wrapper.
func Preview(c card.Card, opts PreviewOptions) string {
	c.Sanitize()
	tree := Render(c)
	ts := opts.Tilt

	translateZ := "0px"
	if opts.Hovering {
		translateZ = "25px"
	}
	extraCSS := ""
	tree.Walk(func(n *Node) {
		if n.HasClass(Holo3DClass) {
			n.CSS(
				fmt.Sprintf("transform: %s translateZ(%s)", ts.Transform(), translateZ),
				"transition: transform 0.3s ease-out",
				"will-change: transform",
				"border-radius: inherit",
				"overflow: hidden",
				fmt.Sprintf("box-shadow: %.1fpx %.1fpx 12px rgba(0,0,0,0.4), 0 10px 15px -3px rgba(0,0,0,0.3)",
					-ts.RotateY*1.5, ts.RotateX*1.5))
			n.Kids(glareLayer(ts))
			if opts.Transitioning && c.IsTypeSensitive() {
				n.Kids(TransitionOverlay(c.Type))
				extraCSS = TransitionKeyframes
			}
		}
	})

	wrapper := Div().CSS(
		"position: relative",
		"perspective: 1200px",
		fmt.Sprintf("--mouse-x: %.4f", ts.PointerX),
		fmt.Sprintf("--mouse-y: %.4f", ts.PointerY)).
		Kids(tree)

	return Document(wrapper.HTML(), extraCSS)
}

func glareLayer(ts tilt.State) *Node {
	return layer(
		"pointer-events: none",
		"z-index: 10",
		"mix-blend-mode: overlay",
		"border-radius: inherit",
		"transition: opacity 0.3s",
		"backface-visibility: hidden",
		fmt.Sprintf("background: radial-gradient(circle at %.1f%% %.1f%%, rgba(255,255,255,0.7) 0%%, rgba(255,255,255,0) 60%%)",
			ts.GlareX, ts.GlareY),
		fmt.Sprintf("opacity: %.2f", ts.GlareOpacity))
}
