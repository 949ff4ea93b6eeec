// Package export turns a card into a downloadable PNG. The pipeline
// renders the card's layout tree, neutralizes all interactive
// presentation on a clone, inlines remote artwork so the offscreen page
// never waits on the network, and hands the resulting self-contained
// document to a rasterizer.
package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"card-service/pkg/card"
	"card-service/pkg/layout"
)

const (
	// PerImageTimeout bounds a single artwork fetch during inlining.
	PerImageTimeout = 3 * time.Second
	// ImageWaitTimeout bounds the whole inlining phase.
	ImageWaitTimeout = 8 * time.Second
	// SafetyTimeout bounds the full export, rasterization included.
	SafetyTimeout = 20 * time.Second

	// ScaleDesktop and ScaleMobile are the device-pixel multipliers
	// applied to the 420x588 card box.
	ScaleDesktop = 4
	ScaleMobile  = 2
)

// ErrBusy is returned when an export is requested while another is
// still running.
var ErrBusy = errors.New("export already in progress")

// Rasterizer captures a self-contained HTML document as a PNG.
type Rasterizer interface {
	Capture(ctx context.Context, html string, width, height, scale int) ([]byte, error)
}

// Result is a finished export.
type Result struct {
	PNG      []byte
	Filename string
}

// Exporter runs the export pipeline. At most one export runs at a time;
// concurrent requests fail fast with ErrBusy rather than queue.
type Exporter struct {
	ras    Rasterizer
	client *http.Client
	busy   atomic.Bool

	// Timeout bounds the full export. A hung rasterizer fails the
	// export at this deadline and releases the in-progress flag.
	Timeout time.Duration
}

// New returns an Exporter backed by the given rasterizer.
func New(ras Rasterizer) *Exporter {
	return &Exporter{
		ras:     ras,
		client:  &http.Client{Timeout: PerImageTimeout},
		Timeout: SafetyTimeout,
	}
}

// Export renders the card and captures it as a PNG. The mobile flag
// selects the lower capture scale.
func (e *Exporter) Export(ctx context.Context, c card.Card, mobile bool) (Result, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return Result{}, ErrBusy
	}
	defer e.busy.Store(false)

	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	c.Sanitize()
	snap := Snapshot(layout.Render(c))
	e.inlineImages(ctx, snap)

	doc := layout.Document(snap.HTML(), "")

	scale := ScaleDesktop
	if mobile {
		scale = ScaleMobile
	}
	png, err := e.ras.Capture(ctx, doc, card.Width, card.Height, scale)
	if err != nil {
		return Result{}, fmt.Errorf("capture card: %w", err)
	}
	return Result{PNG: png, Filename: Filename(c.Name)}, nil
}

// Snapshot deep-copies the rendered tree and strips everything that
// only makes sense on screen: 3D flattening is undone, holo overlays
// are removed, and the root is pinned to the card's base dimensions so
// the capture is identical regardless of the preview's state.
func Snapshot(tree *layout.Node) *layout.Node {
	snap := tree.Clone()
	snap.Walk(func(n *layout.Node) {
		kept := n.Children[:0]
		for _, c := range n.Children {
			if !c.HasClass(layout.HoloClass) {
				kept = append(kept, c)
			}
		}
		n.Children = kept

		n.Styles = dropPerspective(n.Styles)
		if n.HasClass(layout.Holo3DClass) {
			n.CSS("transform: none", "transform-style: flat", "transition: none")
		}
	})
	// Later declarations win within an inline style attribute.
	snap.CSS(
		fmt.Sprintf("width: %dpx", card.Width),
		fmt.Sprintf("height: %dpx", card.Height))
	return snap
}

func dropPerspective(styles []string) []string {
	kept := styles[:0]
	for _, s := range styles {
		if strings.HasPrefix(strings.TrimSpace(s), "perspective") {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// Filename derives the download name from the card's name, with
// whitespace runs collapsed to underscores.
func Filename(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		parts = []string{"Custom"}
	}
	return strings.Join(parts, "_") + "_Card.png"
}
