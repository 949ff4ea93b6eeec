package thumb

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"card-service/pkg/card"
	"card-service/pkg/style"
	"card-service/pkg/utils"
)

func TestRenderDimensions(t *testing.T) {
	r := &Renderer{}
	c := card.Starter()
	c.Image = ""
	img := r.Render(context.Background(), c)
	b := img.Bounds()
	if b.Dx() != card.Width || b.Dy() != card.Height {
		t.Errorf("thumbnail size = %dx%d, want %dx%d", b.Dx(), b.Dy(), card.Width, card.Height)
	}
}

func TestRenderFrameColorMatchesType(t *testing.T) {
	r := &Renderer{}
	c := card.Card{Supertype: card.SupertypeCreature, Name: "X", Type: card.Fire}
	img := r.Render(context.Background(), c)

	// Sample mid-card, outside header and footer bars.
	got := color.RGBAModel.Convert(img.At(card.Width/2, card.Height/2)).(color.RGBA)
	want := utils.ParseHexColor(style.ColorFor(card.Fire))

	// The vertical gradient darkens toward the bottom, so only require
	// the red channel to dominate the way the fire accent does.
	if got.R <= got.G || got.R <= got.B {
		t.Errorf("fire frame sample = %+v, expected red-dominant (accent %+v)", got, want)
	}
}

func TestRenderSupertypeFrames(t *testing.T) {
	r := &Renderer{}
	for _, st := range []card.Supertype{card.SupertypeCreature, card.SupertypeTrainer, card.SupertypeEnergy} {
		c := card.Card{Supertype: st, Name: "X", Type: card.Water, TrainerType: card.TrainerItem}
		img := r.Render(context.Background(), c)
		if img.Bounds().Dx() != card.Width {
			t.Errorf("%s thumbnail has wrong width", st)
		}
	}
}

func TestRenderAttackRows(t *testing.T) {
	r := &Renderer{}
	plain := card.Card{Supertype: card.SupertypeCreature, Name: "X", Type: card.Water}
	withAttacks := plain
	withAttacks.Attacks = []card.Attack{
		{ID: "a", Name: "Second", Damage: "60", SortOrder: 1},
		{ID: "b", Name: "First", Damage: "30", SortOrder: 0},
	}

	base := r.Render(context.Background(), plain)
	got := r.Render(context.Background(), withAttacks)

	// The semi-opaque row backgrounds darken the strip below the art.
	x, y := card.Width/2, 387
	b := color.RGBAModel.Convert(base.At(x, y)).(color.RGBA)
	a := color.RGBAModel.Convert(got.At(x, y)).(color.RGBA)
	if a.R >= b.R && a.G >= b.G && a.B >= b.B {
		t.Errorf("attack rows not drawn: with = %+v, without = %+v", a, b)
	}
}

func TestRenderLocalArtwork(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	white := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range white.Pix {
		white.Pix[i] = 0xff
	}
	if err := png.Encode(f, white); err != nil {
		t.Fatal(err)
	}
	f.Close()

	r := &Renderer{}
	c := card.Card{Supertype: card.SupertypeCreature, Name: "X", Type: card.Grass, Image: path}
	out := r.Render(context.Background(), c)

	// White artwork fills the art band, well above the bottom vignette.
	got := color.RGBAModel.Convert(out.At(card.Width/2, 200)).(color.RGBA)
	if got.R < 200 || got.G < 200 || got.B < 200 {
		t.Errorf("art band sample = %+v, want near-white local artwork", got)
	}
}

func TestRenderSurvivesUnreachableArtwork(t *testing.T) {
	r := &Renderer{}
	c := card.Starter()
	c.Image = "http://127.0.0.1:1/nothing.png"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img := r.Render(ctx, c)
	if img == nil {
		t.Fatal("render failed on unreachable artwork")
	}
}
