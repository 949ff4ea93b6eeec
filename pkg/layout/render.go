package layout

import (
	"fmt"

	"card-service/pkg/card"
)

// Class names the export pipeline keys on when neutralizing a snapshot.
const (
	Holo3DClass   = "card-3d"
	HoloClass     = "card-holo-overlay"
	ArtImageClass = "card-art-image"
	RootID        = "capture-card-node"
)

// PlaceholderImage is a self-contained SVG shown when a card has no
// artwork or its artwork failed to load. Inline so it can never 404.
const PlaceholderImage = "data:image/svg+xml,%3Csvg xmlns='http://www.w3.org/2000/svg' width='100' height='100' viewBox='0 0 100 100'%3E%3Crect width='100' height='100' fill='%232d3748'/%3E%3Ctext x='50' y='55' font-family='Arial' font-size='12' fill='white' text-anchor='middle'%3ENo Art%3C/text%3E%3C/svg%3E"

// Render composes the full card subtree for one card. Dispatch is a
// single switch on supertype; each layout is a pure function of the
// card and its resolved style.
func Render(c card.Card) *Node {
	c.Sanitize()

	var face *Node
	switch c.Supertype {
	case card.SupertypeEnergy:
		face = energyLayout(c)
	case card.SupertypeTrainer:
		face = trainerLayout(c)
	default:
		face = creatureLayout(c)
	}

	front := Div().
		CSS("position: absolute", "inset: 0", "border-radius: 24px",
			"overflow: hidden", "background: #1a1a1a",
			"backface-visibility: hidden").
		Kids(face)

	inner := Div().Cls(Holo3DClass).
		CSS("position: relative", "width: 100%", "height: 100%",
			"transform-style: preserve-3d").
		Kids(front)

	return Div().Attr("id", RootID).
		CSS(fmt.Sprintf("width: %dpx", card.Width),
			fmt.Sprintf("height: %dpx", card.Height),
			"position: relative", "border-radius: 24px",
			"font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif",
			"line-height: 1", "color: #111827",
			"-webkit-font-smoothing: antialiased",
			"user-select: none").
		Kids(inner)
}

// artwork builds the full-bleed image layer positioned by the card's
// zoom and pixel offsets. A missing reference degrades to the inline
// placeholder, never a broken image.
func artwork(c card.Card, alt string) *Node {
	src := c.Image
	if src == "" {
		src = PlaceholderImage
	}
	return El("img").Cls(ArtImageClass).
		CSS("width: 100%", "height: 100%", "object-fit: cover",
			fmt.Sprintf("transform: scale(%.3f) translate(%dpx, %dpx)", c.Zoom, c.XOffset, c.YOffset),
			"transform-origin: center center").
		Attr("src", src).
		Attr("crossorigin", "anonymous").
		Attr("alt", alt)
}

func layer(decls ...string) *Node {
	return Div().CSS(append([]string{"position: absolute", "inset: 0"}, decls...)...)
}
