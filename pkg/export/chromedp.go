package export

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"card-service/pkg/layout"
)

// ChromeRasterizer captures documents in headless Chrome. A fresh
// browser is allocated per capture; the single-flight guard upstream
// keeps that from fanning out.
type ChromeRasterizer struct {
	opts []chromedp.ExecAllocatorOption
}

// NewChromeRasterizer builds a rasterizer with headless defaults.
func NewChromeRasterizer() *ChromeRasterizer {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("force-color-profile", "srgb"),
	)
	return &ChromeRasterizer{opts: opts}
}

// Capture loads the document into a fresh tab and screenshots the card
// root element at the requested device scale.
func (r *ChromeRasterizer) Capture(ctx context.Context, html string, width, height, scale int) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.opts...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var png []byte
	err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(int64(width), int64(height),
			chromedp.EmulateScale(float64(scale))),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitVisible("#"+layout.RootID, chromedp.ByID),
		chromedp.Screenshot("#"+layout.RootID, &png, chromedp.NodeVisible, chromedp.ByID),
	)
	if err != nil {
		return nil, fmt.Errorf("headless capture: %w", err)
	}
	return png, nil
}
