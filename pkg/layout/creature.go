package layout

import (
	"card-service/pkg/card"
	"card-service/pkg/style"
)

// noiseTexture roughens the outer frame so it doesn't read as flat
// plastic.
const noiseTexture = `url("data:image/svg+xml,%3Csvg viewBox='0 0 200 200' xmlns='http://www.w3.org/2000/svg'%3E%3Cfilter id='noiseFilter'%3E%3CfeTurbulence type='fractalNoise' baseFrequency='0.65' numOctaves='3' stitchTiles='stitch'/%3E%3C/filter%3E%3Crect width='100%25' height='100%25' filter='url(%23noiseFilter)'/%3E%3C/svg%3E")`

// flavorSuppressed is the policy table for which stages hide the
// flavor-text strip in favor of a rules box. Kept as data rather than
// logic: the mapping is product policy, not derivable.
var flavorSuppressed = map[card.Stage]bool{
	card.StageVMAX: true,
}

func glyph(t card.ElementType, size int) *Node {
	return RawSVG(style.GlyphSVG(t, size))
}

func creatureLayout(c card.Card) *Node {
	theme := style.ThemeFor(c.Type)

	frame := layer("padding: 12px", "z-index: 0",
		"background: linear-gradient(to bottom right, #f3f4f6, #d1d5db, #9ca3af)").
		Kids(layer("opacity: 0.2",
			"filter: contrast(120%) brightness(100%)",
			"background-image: "+noiseTexture))

	content := Div().CSS(
		"position: absolute", "inset: 12px",
		"background: "+style.BackgroundFor(c.Type),
		"border-radius: 14px", "overflow: hidden",
		"display: flex", "flex-direction: column").
		Kids(
			layer("z-index: 0", "background: rgba(0,0,0,0.1)").
				Kids(artwork(c, "Card artwork")),
			HoloOverlay(c.HoloPattern),
			stageBadge(c.Stage),
			creatureHeader(c),
			Div().CSS("flex-grow: 1"),
			dexStrip(c),
			attackBox(c, theme),
			creatureFooter(c, theme),
		)

	return Div().CSS("position: relative", "width: 100%", "height: 100%").
		Kids(frame, content)
}

func stageBadge(s card.Stage) *Node {
	switch s {
	case card.Stage1, card.Stage2:
		label := "STAGE 1"
		if s == card.Stage2 {
			label = "STAGE 2"
		}
		return Div().CSS("position: absolute", "top: 14%", "left: 16px", "z-index: 20").
			Kids(Div().CSS(
				"background: linear-gradient(to bottom, #fde047, #eab308)",
				"color: #000", "font-weight: 900", "text-transform: uppercase",
				"font-size: 10px", "padding: 4px 12px", "border-radius: 2px",
				"letter-spacing: 0.1em",
				"box-shadow: 0 2px 4px rgba(0,0,0,0.3)").
				Txt(label))
	case card.StageVMAX:
		return Div().CSS("position: absolute", "top: 12%", "left: 8px", "z-index: 20").
			Kids(Div().CSS(
				"background: linear-gradient(to right, #dc2626, #db2777, #9333ea)",
				"color: #fff", "font-weight: 900", "font-style: italic",
				"font-size: 14px", "padding: 4px 8px", "border-radius: 4px",
				"border: 1px solid rgba(255,255,255,0.5)",
				"box-shadow: 0 4px 8px rgba(0,0,0,0.4)").
				Txt("VMAX"))
	case card.StageRadiant:
		return Div().CSS("position: absolute", "top: 14%", "left: 16px", "z-index: 20").
			Kids(Div().CSS(
				"background: linear-gradient(to right, #fef08a, #fbcfe8, #a5f3fc)",
				"color: #000", "font-weight: 700", "text-transform: uppercase",
				"font-size: 9px", "padding: 2px 12px", "border-radius: 4px",
				"border: 1px solid #fff", "letter-spacing: 0.15em").
				Txt("Radiant"))
	default:
		return nil
	}
}

func creatureHeader(c card.Card) *Node {
	var evolves *Node
	if c.EvolvesFrom != "" && c.Stage != card.StageBasic {
		evolves = Div().CSS("font-size: 10px", "font-weight: 700",
			"color: #f3f4f6", "text-transform: uppercase",
			"letter-spacing: 0.05em", "opacity: 0.9",
			"text-shadow: 0 1px 2px rgba(0,0,0,0.5)").
			Txt("Evolves from " + c.EvolvesFrom)
	}

	name := El("h1").CSS("font-size: 30px", "font-weight: 700",
		"color: #fff", "margin: 2px 0 0",
		"letter-spacing: -0.02em",
		"text-shadow: 0 2px 4px rgba(0,0,0,0.5)").
		Txt(c.Name)

	hp := Div().CSS("display: flex", "align-items: center", "gap: 6px", "margin-top: 8px").
		Kids(
			El("span").CSS("font-size: 11px", "font-weight: 700", "color: #e5e7eb",
				"padding-top: 4px", "text-shadow: 0 1px 2px rgba(0,0,0,0.5)").
				Txt("HP"),
			El("span").CSS("font-size: 28px", "font-weight: 700", "color: #fff",
				"margin-right: 2px",
				"text-shadow: 0 2px 4px rgba(0,0,0,0.5)").
				Txt(c.HP),
			Div().CSS("position: relative", "z-index: 20").Kids(glyph(c.Type, 28)),
		)

	return Div().CSS("position: relative", "z-index: 10",
		"padding: 12px 20px 32px",
		"display: flex", "justify-content: space-between",
		"align-items: flex-start").
		Kids(
			Div().CSS("display: flex", "flex-direction: column").Kids(evolves, name),
			hp,
		)
}

func dexStrip(c card.Card) *Node {
	if c.Species == "" && c.Height == "" && c.Weight == "" {
		return nil
	}
	cell := func(text string) *Node {
		return El("span").CSS("transform: skewX(12deg)", "font-size: 9px",
			"font-weight: 700", "color: #374151").Txt(text)
	}
	return Div().CSS("position: relative", "z-index: 10", "margin: 0 24px 4px").
		Kids(Div().CSS(
			"background: linear-gradient(to right, #fef08a, #fef9c3, #fef08a)",
			"padding: 4px 16px", "border-radius: 2px",
			"transform: skewX(-12deg)",
			"border-top: 2px solid rgba(250,204,21,0.5)",
			"border-bottom: 2px solid rgba(250,204,21,0.5)",
			"display: flex", "justify-content: space-between",
			"align-items: center",
			"box-shadow: 0 2px 4px rgba(0,0,0,0.2)").
			Kids(cell(c.Species), cell("HT: "+c.Height), cell("WT: "+c.Weight)))
}

func attackBox(c card.Card, theme style.Theme) *Node {
	padBottom := "20px"
	if c.Stage == card.StageVMAX {
		padBottom = "48px"
	}

	rows := Div().CSS("display: flex", "flex-direction: column", "gap: 16px")
	for _, a := range card.SortedAttacks(c.Attacks) {
		rows.Kids(attackRow(a, theme))
	}

	box := Div().CSS("position: relative", "z-index: 10",
		"margin: 0 12px 12px",
		"padding: 12px 12px "+padBottom,
		"border-radius: 8px",
		"border: 1px solid rgba(255,255,255,0.2)",
		"backdrop-filter: blur(4px)",
		"box-shadow: 0 4px 8px rgba(0,0,0,0.3)",
		"background: "+theme.BoxGradient).
		Kids(rows)

	if c.Stage == card.StageVMAX {
		box.Kids(Div().CSS("position: absolute", "bottom: 4px", "left: 4px", "right: 4px",
			"background: #000", "border: 1px solid #4b5563",
			"border-radius: 2px", "padding: 4px", "z-index: 20",
			"display: flex", "gap: 8px", "align-items: center",
			"opacity: 0.95").
			Kids(
				Div().CSS("color: #fff", "font-size: 9px", "font-weight: 900",
					"text-transform: uppercase", "font-style: italic",
					"padding: 0 4px").Txt("VMAX RULE"),
				El("p").CSS("font-size: 8px", "font-weight: 500", "color: #fff",
					"margin: 0", "line-height: 1.2").
					Txt("When your VMAX is Knocked Out, your opponent takes 3 Prize cards."),
			))
	}
	return box
}

func attackRow(a card.Attack, theme style.Theme) *Node {
	costs := Div().CSS("display: flex", "align-items: center", "gap: 2px",
		"width: 74px", "flex-shrink: 0")
	for _, t := range a.Cost {
		costs.Kids(glyph(t, 21))
	}

	head := Div().CSS("display: flex", "align-items: center",
		"justify-content: space-between", "min-height: 26px").
		Kids(
			costs,
			El("span").CSS("font-size: 19px", "font-weight: 700", "flex-grow: 1",
				"padding-top: 2px", "color: "+theme.TextColor).Txt(a.Name),
			El("span").CSS("font-size: 19px", "font-weight: 700", "flex-shrink: 0",
				"padding: 2px 0 0 8px", "color: "+theme.TextColor).Txt(a.Damage),
		)

	row := Div().CSS("position: relative").Kids(head)
	if a.Description != "" {
		row.Kids(El("p").CSS("font-size: 11px", "font-weight: 500",
			"line-height: 1.25", "margin: 2px 0 0", "padding-left: 74px",
			"opacity: 0.95", "color: "+theme.SubTextColor).
			Txt(a.Description))
	}
	return row
}

func creatureFooter(c card.Card, theme style.Theme) *Node {
	label := func(text string) *Node {
		return El("span").CSS("font-size: 10px", "color: "+theme.SubTextColor).Txt(text)
	}

	weakness := Div().CSS("display: flex", "align-items: center", "gap: 8px", "min-width: 60px").
		Kids(label("Weakness"))
	if c.Weakness != "" {
		weakness.Kids(glyph(c.Weakness, 14),
			El("span").CSS("font-size: 10px", "font-weight: 700",
				"color: "+theme.TextColor).Txt("x2"))
	}

	resistance := Div().CSS("display: flex", "align-items: center", "gap: 8px").
		Kids(label("Resistance"))
	if c.Resistance != "" {
		resistance.Kids(glyph(c.Resistance, 14),
			El("span").CSS("font-size: 10px", "font-weight: 700",
				"color: "+theme.TextColor).Txt("-30"))
	}

	retreat := Div().CSS("display: flex", "align-items: center", "gap: 8px",
		"min-width: 60px", "justify-content: flex-end").
		Kids(label("Retreat"))
	costs := Div().CSS("display: flex", "gap: 2px")
	for i := 0; i < c.RetreatCost; i++ {
		costs.Kids(glyph(card.Colorless, 14))
	}
	retreat.Kids(costs)

	stats := Div().CSS("display: flex", "align-items: center",
		"justify-content: space-between", "margin-bottom: 12px", "padding: 0 4px").
		Kids(weakness, resistance, retreat)

	footer := Div().CSS("position: relative", "z-index: 10",
		"padding: 16px 24px 12px", "margin-top: -24px",
		"font-size: 12px", "font-weight: 700",
		"background: "+theme.FooterGradient).
		Kids(stats)

	if c.FlavorText != "" && !flavorSuppressed[c.Stage] {
		footer.Kids(Div().CSS("margin-bottom: 8px", "padding: 4px 8px",
			"background: rgba(255,255,255,0.2)",
			"border: 1px solid rgba(0,0,0,0.05)",
			"border-radius: 2px", "font-style: italic",
			"font-size: 9px", "line-height: 1.25",
			"color: "+theme.TextColor).
			Txt(c.FlavorText))
	}

	footer.Kids(metaLine(c, theme.TextColor))
	return footer
}

func metaLine(c card.Card, textColor string) *Node {
	var symbol *Node
	if c.SetSymbolImage != "" {
		symbol = El("img").Cls(ArtImageClass).
			CSS("width: 16px", "height: 16px", "object-fit: contain").
			Attr("src", c.SetSymbolImage).
			Attr("crossorigin", "anonymous").
			Attr("alt", "Set symbol")
	} else if c.RegulationMark != "" {
		symbol = Div().CSS("width: 16px", "height: 16px", "background: #fff",
			"display: flex", "align-items: center", "justify-content: center",
			"font-size: 9px", "font-weight: 700", "color: #000",
			"border: 1px solid rgba(0,0,0,0.3)", "border-radius: 2px").
			Txt(c.RegulationMark)
	}

	return Div().CSS("display: flex", "justify-content: space-between",
		"align-items: flex-end", "padding: 0 4px", "opacity: 0.9", "margin-top: 8px").
		Kids(
			Div().CSS("display: flex", "align-items: center", "gap: 8px").
				Kids(Div().CSS(
					"background: linear-gradient(to right, #eab308, #fde047)",
					"color: #000", "padding: 2px 6px", "font-size: 8px",
					"font-weight: 700", "border: 1px solid rgba(0,0,0,0.2)",
					"border-radius: 2px").
					Txt("Illus. "+c.Illustrator)),
			Div().CSS("display: flex", "align-items: center", "gap: 4px").
				Kids(
					symbol,
					El("span").CSS("font-weight: 700",
						"font-family: ui-monospace, monospace",
						"color: "+textColor).Txt(c.SetNumber),
					El("span").CSS("color: #fff", "font-size: 14px",
						"text-shadow: 0 1px 2px rgba(0,0,0,0.5)").Txt("★"),
				),
		)
}
