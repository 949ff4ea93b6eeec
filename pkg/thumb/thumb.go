// Package thumb rasterizes a simplified card thumbnail natively, with
// no browser involved. Thumbnails trade the layered holo presentation
// for speed: flat type-colored frame, artwork, name and HP, done. The
// full-fidelity path lives in pkg/export.
package thumb

import (
	"context"
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"card-service/pkg/card"
	"card-service/pkg/style"
	"card-service/pkg/utils"
)

const cornerRadius = 24

// Renderer draws card thumbnails at a fraction of the export cost.
type Renderer struct {
	// FontPath optionally points at a TTF used for the name line.
	// Empty falls back to gg's built-in face.
	FontPath string
}

// Render draws the thumbnail at the card's base dimensions. Artwork is
// fetched best-effort; a failed fetch leaves the frame color showing,
// it never fails the render.
func (r *Renderer) Render(ctx context.Context, c card.Card) image.Image {
	c.Sanitize()

	dc := gg.NewContext(card.Width, card.Height)
	dc.DrawRoundedRectangle(0, 0, card.Width, card.Height, cornerRadius)
	dc.Clip()

	frame := utils.ParseHexColor(frameColor(c))
	grad := gg.NewLinearGradient(0, 0, 0, card.Height)
	grad.AddColorStop(0, frame)
	grad.AddColorStop(1, darken(frame, 0.45))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, card.Width, card.Height)
	dc.Fill()

	r.drawArtwork(ctx, dc, c)
	r.drawHeader(dc, c)
	if c.Supertype == card.SupertypeCreature {
		r.drawAttacks(dc, c)
	}
	r.drawFooter(dc, c)

	return dc.Image()
}

func frameColor(c card.Card) string {
	switch c.Supertype {
	case card.SupertypeEnergy:
		return style.EnergyColorFor(c.Type)
	case card.SupertypeTrainer:
		return style.TrainerColorFor(c.TrainerType)
	default:
		return style.ColorFor(c.Type)
	}
}

// drawArtwork fills the art band, honoring the card's zoom and offsets
// the same way the layout's transform does, then cropping to the band.
func (r *Renderer) drawArtwork(ctx context.Context, dc *gg.Context, c card.Card) {
	if c.Image == "" {
		return
	}
	img, err := loadArtwork(ctx, c.Image)
	if err != nil {
		log.Printf("thumb: artwork %s: %v", c.Image, err)
		return
	}

	bandY, bandH := artBand(c.Supertype)
	fitted := imaging.Fill(img, card.Width, bandH, imaging.Center, imaging.Lanczos)
	if c.Zoom > 1 {
		zw := int(math.Round(float64(card.Width) * c.Zoom))
		zh := int(math.Round(float64(bandH) * c.Zoom))
		fitted = imaging.Resize(fitted, zw, zh, imaging.Lanczos)
	}

	dc.Push()
	dc.DrawRectangle(0, float64(bandY), card.Width, float64(bandH))
	dc.Clip()
	x := (card.Width-fitted.Bounds().Dx())/2 + c.XOffset
	y := bandY + (bandH-fitted.Bounds().Dy())/2 + c.YOffset
	dc.DrawImage(fitted, x, y)
	dc.Pop()

	// Soft vignette at the band's bottom edge so the footer text reads.
	shade := gg.NewLinearGradient(0, float64(bandY+bandH-60), 0, float64(bandY+bandH))
	shade.AddColorStop(0, color.RGBA{0, 0, 0, 0})
	shade.AddColorStop(1, color.RGBA{0, 0, 0, 110})
	dc.SetFillStyle(shade)
	dc.DrawRectangle(0, float64(bandY+bandH-60), card.Width, 60)
	dc.Fill()
}

// loadArtwork resolves artwork from the network or, for non-URL
// sources, from a local asset path through the shared image cache.
func loadArtwork(ctx context.Context, src string) (image.Image, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return utils.DownloadImage(ctx, src)
	}
	return utils.LoadImage(src)
}

func artBand(st card.Supertype) (y, h int) {
	switch st {
	case card.SupertypeEnergy:
		return 76, 436
	case card.SupertypeTrainer:
		return 60, 440
	default:
		return 56, 300
	}
}

func (r *Renderer) drawHeader(dc *gg.Context, c card.Card) {
	dc.SetColor(color.RGBA{0, 0, 0, 150})
	dc.DrawRectangle(0, 0, card.Width, 52)
	dc.Fill()

	r.setFace(dc, 26)
	dc.SetColor(color.White)
	dc.DrawStringAnchored(c.Name, 16, 26, 0, 0.5)

	switch c.Supertype {
	case card.SupertypeCreature:
		glyphDisc(dc, card.Width-28, 26, 11, c.Type)
		dc.SetColor(color.White)
		if c.HP != "" {
			dc.DrawStringAnchored("HP "+c.HP, card.Width-46, 26, 1, 0.5)
		}
	case card.SupertypeTrainer:
		r.setFace(dc, 16)
		dc.DrawStringAnchored(string(c.TrainerType), card.Width-16, 26, 1, 0.5)
	case card.SupertypeEnergy:
		glyphDisc(dc, card.Width-28, 26, 11, c.Type)
		dc.SetColor(color.White)
		r.setFace(dc, 16)
		dc.DrawStringAnchored("Energy", card.Width-46, 26, 1, 0.5)
	}
}

// drawAttacks lists attack names in the strip between the art band and
// the footer. Two rows fit; anything past that is dropped.
func (r *Renderer) drawAttacks(dc *gg.Context, c card.Card) {
	attacks := card.SortedAttacks(c.Attacks)
	if len(attacks) > 2 {
		attacks = attacks[:2]
	}
	const top, rowH = 366.0, 42.0
	for i, a := range attacks {
		y := top + float64(i)*(rowH+8)
		dc.SetColor(color.RGBA{0, 0, 0, 120})
		dc.DrawRoundedRectangle(16, y, card.Width-32, rowH, 8)
		dc.Fill()

		cost := c.Type
		if len(a.Cost) > 0 {
			cost = a.Cost[0]
		}
		glyphDisc(dc, 36, y+rowH/2, 9, cost)

		r.setFace(dc, 17)
		dc.SetColor(color.White)
		dc.DrawStringAnchored(a.Name, 54, y+rowH/2, 0, 0.5)
		if a.Damage != "" {
			dc.DrawStringAnchored(a.Damage, card.Width-28, y+rowH/2, 1, 0.5)
		}
	}
}

// glyphDisc stands in for the SVG type glyph the HTML layouts use: a
// flat accent-colored disc with a thin dark rim.
func glyphDisc(dc *gg.Context, x, y, radius float64, t card.ElementType) {
	dc.SetColor(utils.ParseHexColor(style.ColorFor(t)))
	dc.DrawCircle(x, y, radius)
	dc.Fill()
	dc.SetColor(color.RGBA{0, 0, 0, 90})
	dc.SetLineWidth(1.5)
	dc.DrawCircle(x, y, radius)
	dc.Stroke()
}

func (r *Renderer) drawFooter(dc *gg.Context, c card.Card) {
	dc.SetColor(color.RGBA{0, 0, 0, 170})
	dc.DrawRectangle(0, card.Height-40, card.Width, 40)
	dc.Fill()

	r.setFace(dc, 14)
	dc.SetColor(color.RGBA{229, 231, 235, 255})
	if c.Illustrator != "" {
		dc.DrawStringAnchored("Illus. "+c.Illustrator, 16, card.Height-20, 0, 0.5)
	}
	if c.SetNumber != "" {
		dc.DrawStringAnchored(c.SetNumber, card.Width-16, card.Height-20, 1, 0.5)
	}
}

func (r *Renderer) setFace(dc *gg.Context, size float64) {
	if r.FontPath == "" {
		return
	}
	face, err := utils.LoadFont(r.FontPath, size)
	if err != nil {
		return
	}
	dc.SetFontFace(face)
}

func darken(c color.RGBA, factor float64) color.RGBA {
	f := 1 - factor
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
