package layout

import (
	"card-service/pkg/card"
	"card-service/pkg/style"
)

func trainerLayout(c card.Card) *Node {
	effectText := "Select an effect in the editor."
	if len(c.Rules) > 0 && c.Rules[0] != "" {
		effectText = c.Rules[0]
	}

	header := Div().CSS("position: relative", "z-index: 20", "height: 10%",
		"background: linear-gradient(to bottom, rgba(229,231,235,0.5), rgba(243,244,246,0.5), rgba(209,213,219,0.5))",
		"backdrop-filter: blur(12px)",
		"display: flex", "align-items: center", "justify-content: space-between",
		"padding: 0 16px",
		"border-bottom: 1px solid rgba(156,163,175,0.3)",
		"box-shadow: 0 1px 2px rgba(0,0,0,0.1)").
		Kids(
			El("span").CSS("font-weight: 900", "font-style: italic",
				"font-size: 24px", "letter-spacing: -0.05em", "color: #374151",
				"text-shadow: 1px 1px 0 rgba(255,255,255,0.8)").
				Txt("TRAINER"),
			Div().CSS("background: rgba(255,255,255,0.8)",
				"padding: 2px 12px", "border-radius: 2px",
				"border: 1px solid rgba(255,255,255,0.5)",
				"box-shadow: 0 1px 2px rgba(0,0,0,0.1)").
				Kids(El("span").CSS("font-weight: 700",
					"text-transform: uppercase", "font-size: 12px",
					"letter-spacing: 0.05em",
					"color: "+style.TrainerColorFor(c.TrainerType)).
					Txt(string(c.TrainerType))),
		)

	name := Div().CSS("position: relative", "z-index: 10", "padding: 4px 20px 0").
		Kids(El("h1").CSS("font-size: 30px", "font-weight: 700", "color: #000",
			"margin: 0", "letter-spacing: -0.02em",
			"text-shadow: 0 2px 0 rgba(255,255,255,0.8)").
			Txt(c.Name))

	effectPanel := Div().CSS("position: relative", "z-index: 10",
		"margin: 0 16px 12px", "padding: 16px",
		"background: rgba(255,255,255,0.3)",
		"backdrop-filter: blur(12px)",
		"border-radius: 12px",
		"border: 1px solid rgba(255,255,255,0.3)",
		"box-shadow: 0 4px 8px rgba(0,0,0,0.2)",
		"min-height: 100px",
		"display: flex", "align-items: center", "justify-content: center",
		"text-align: center").
		Kids(El("p").CSS("font-size: 13px", "font-weight: 500", "color: #111827",
			"line-height: 1.6", "margin: 0", "font-family: Georgia, serif").
			Txt(effectText))

	var supporterStrip *Node
	if c.TrainerType == card.TrainerSupporter {
		supporterStrip = Div().CSS("position: relative", "z-index: 10",
			"margin: 0 24px 12px", "padding: 4px 16px",
			"background: #fde047", "border: 1px solid #eab308",
			"border-radius: 9999px",
			"transform: rotate(-1deg)",
			"box-shadow: 0 1px 2px rgba(0,0,0,0.1)").
			Kids(El("p").CSS("font-size: 9px", "color: #713f12",
				"font-weight: 700", "text-align: center",
				"text-transform: uppercase", "margin: 0", "line-height: 1.2").
				Txt("You can play only 1 Supporter card during your turn."))
	}

	footer := Div().CSS("position: relative", "z-index: 20", "height: 8%",
		"background: linear-gradient(to top, rgba(209,213,219,0.9), transparent)",
		"display: flex", "align-items: flex-end", "justify-content: space-between",
		"padding: 0 16px 8px").
		Kids(
			Div().CSS("display: flex", "align-items: center", "gap: 8px").
				Kids(Div().CSS("background: rgba(255,255,255,0.8)",
					"padding: 2px 6px", "font-size: 8px", "font-weight: 700",
					"border-radius: 2px", "color: #4b5563",
					"box-shadow: 0 1px 2px rgba(0,0,0,0.1)").
					Txt("Illus. "+c.Illustrator)),
			Div().CSS("display: flex", "align-items: center", "gap: 4px").
				Kids(
					Div().CSS("background: #fff", "color: #000", "font-size: 9px",
						"font-weight: 700", "padding: 0 4px",
						"border-radius: 2px", "border: 1px solid #9ca3af").
						Txt(regulationOrDefault(c)),
					El("span").CSS("font-size: 10px", "font-weight: 700",
						"font-family: ui-monospace, monospace", "color: #000").
						Txt(c.SetNumber),
					El("span").CSS("color: #fff", "font-size: 14px",
						"text-shadow: 0 1px 2px rgba(0,0,0,0.5)").Txt("★"),
				),
		)

	return layer("display: flex", "flex-direction: column", "background: #e5e7eb").
		Kids(
			layer("z-index: 0").Kids(artwork(c, "Trainer artwork")),
			header,
			name,
			HoloOverlay(c.HoloPattern),
			Div().CSS("flex-grow: 1"),
			effectPanel,
			supporterStrip,
			footer,
		)
}

func regulationOrDefault(c card.Card) string {
	if c.RegulationMark != "" {
		return c.RegulationMark
	}
	return "G"
}
