package export

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"card-service/pkg/layout"
)

// maxImageBytes caps a single inlined artwork fetch.
const maxImageBytes = 20 << 20

// inlineImages rewrites every remote <img> source in the tree as a data
// URI. Fetches run concurrently, each bounded by PerImageTimeout inside
// an overall ImageWaitTimeout window. Failure keeps the original URL
// and lets the rasterizer take its chances; it never blocks the export.
func (e *Exporter) inlineImages(ctx context.Context, tree *layout.Node) {
	ctx, cancel := context.WithTimeout(ctx, ImageWaitTimeout)
	defer cancel()

	var remote []*layout.Node
	tree.Walk(func(n *layout.Node) {
		if n.Tag != "img" {
			return
		}
		if src := getAttr(n, "src"); strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
			remote = append(remote, n)
		}
	})

	var wg sync.WaitGroup
	for _, n := range remote {
		wg.Add(1)
		go func(n *layout.Node) {
			defer wg.Done()
			src := getAttr(n, "src")
			fetchCtx, cancel := context.WithTimeout(ctx, PerImageTimeout)
			defer cancel()
			uri, err := e.fetchDataURI(fetchCtx, src)
			if err != nil {
				log.Printf("export: could not inline %s: %v", src, err)
				return
			}
			setAttr(n, "src", uri)
		}(n)
	}
	wg.Wait()
}

func (e *Exporter) fetchDataURI(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return "", err
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "image/") {
		ct = http.DetectContentType(body)
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}

func getAttr(n *layout.Node, key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func setAttr(n *layout.Node, key, value string) {
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, layout.Attr{Key: key, Value: value})
}
