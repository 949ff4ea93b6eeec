package layout

import (
	"card-service/pkg/card"
	"card-service/pkg/style"
)

func energyLayout(c card.Card) *Node {
	metalBar := func(direction string) string {
		return "background: linear-gradient(to " + direction + ", #d1d5db, #f3f4f6, #9ca3af)"
	}

	top := Div().CSS("position: relative", "z-index: 20", "height: 13%",
		metalBar("bottom"),
		"display: flex", "align-items: center", "justify-content: space-between",
		"padding: 0 20px",
		"border-bottom: 2px solid rgba(255,255,255,0.5)",
		"box-shadow: 0 2px 4px rgba(0,0,0,0.2)").
		Kids(
			El("span").CSS("font-weight: 700", "color: #000", "font-size: 20px",
				"letter-spacing: -0.02em", "padding-top: 4px").
				Txt(c.Name),
			El("span").CSS("font-weight: 700", "color: #4b5563", "font-size: 14px",
				"text-transform: uppercase", "letter-spacing: 0.05em",
				"padding-top: 4px").
				Txt("Energy"),
		)

	swoosh := func(size, extra string) *Node {
		return Div().CSS("position: absolute",
			"width: "+size, "height: "+size,
			"border-radius: 50%", extra)
	}

	body := Div().CSS("position: relative", "flex-grow: 1",
		"display: flex", "align-items: center", "justify-content: center",
		"overflow: hidden").
		Kids(
			swoosh("180%", "border: 25px solid rgba(255,255,255,0.1); transform: rotate(-45deg) scaleY(0.5); filter: blur(1px)"),
			swoosh("140%", "border: 15px solid rgba(255,255,255,0.15); transform: rotate(12deg) scaleX(0.75); filter: blur(2px)"),
			Div().CSS("position: relative", "z-index: 10",
				"transform: scale(1.1)",
				"filter: drop-shadow(0 15px 30px rgba(0,0,0,0.4))").
				Kids(glyph(c.Type, 220)),
		)

	bottom := Div().CSS("position: relative", "z-index: 20", "height: 8%",
		metalBar("top"),
		"display: flex", "align-items: center", "justify-content: space-between",
		"padding: 0 16px",
		"border-top: 2px solid rgba(255,255,255,0.5)").
		Kids(
			El("span").CSS("font-size: 9px", "font-weight: 700", "color: #6b7280").
				Txt("Illus. "+c.Illustrator),
			Div().CSS("opacity: 0.9", "filter: drop-shadow(0 1px 1px rgba(0,0,0,0.3))").
				Kids(glyph(c.Type, 22)),
		)

	return layer("display: flex", "flex-direction: column",
		"background-color: "+style.EnergyColorFor(c.Type)).
		Kids(
			layer("background: radial-gradient(circle at center, transparent 0%, rgba(0,0,0,0.15) 100%)"),
			top,
			body,
			HoloOverlay(c.HoloPattern),
			bottom,
		)
}
