// Package artwork finds candidate card artwork on the web and fetches
// images into inline form for the AI redraw path.
package artwork

import (
	"context"
	"fmt"
	"math/rand"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"card-service/pkg/utils"
)

const searchEndpoint = "https://html.duckduckgo.com/html/"

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
}

// Searcher scrapes DuckDuckGo's HTML endpoint for direct image links.
type Searcher struct {
	rnd *rand.Rand
}

// NewSearcher builds a Searcher.
func NewSearcher() *Searcher {
	return &Searcher{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Search returns up to limit direct image URLs for the query.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if query == "" {
		return nil, fmt.Errorf("query required")
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var urls []string
	seen := make(map[string]bool)

	col := colly.NewCollector(colly.UserAgent(s.randomUA()))
	col.SetRequestTimeout(15 * time.Second)

	col.OnHTML("a[href]", func(e *colly.HTMLElement) {
		if len(urls) >= limit {
			return
		}
		actual := resolveRedirect(e.Attr("href"))
		if actual == "" || seen[actual] || !isImageURL(actual) || strings.Contains(actual, "duckduckgo.com") {
			return
		}
		seen[actual] = true
		urls = append(urls, actual)
	})

	// colly's request timeout bounds the fetch; the caller's context is
	// only consulted up front since the collector runs synchronously.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	err := col.Post(searchEndpoint, map[string]string{"q": query + " hd wallpaper"})
	if err != nil {
		return nil, fmt.Errorf("image search: %w", err)
	}
	return urls, nil
}

// FetchDataURI downloads a remote image and returns it as a data URI,
// ready for the image-to-image redraw call.
func (s *Searcher) FetchDataURI(ctx context.Context, imageURL string) (string, error) {
	data, mediaType, err := utils.DownloadBytes(ctx, imageURL)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", fmt.Errorf("not an image: %s", mediaType)
	}
	return utils.ToDataURI(data, mediaType), nil
}

// resolveRedirect unwraps DuckDuckGo's uddg= redirect links to the
// real destination.
func resolveRedirect(link string) string {
	if strings.Contains(link, "uddg=") {
		parts := strings.SplitN(link, "uddg=", 2)
		decoded, err := url.QueryUnescape(parts[1])
		if err != nil {
			return ""
		}
		return strings.SplitN(decoded, "&", 2)[0]
	}
	if strings.HasPrefix(link, "http") {
		return link
	}
	return ""
}

func isImageURL(u string) bool {
	l := strings.ToLower(u)
	return strings.HasSuffix(l, ".jpg") || strings.HasSuffix(l, ".jpeg") ||
		strings.HasSuffix(l, ".png") || strings.HasSuffix(l, ".gif") ||
		strings.HasSuffix(l, ".webp")
}

func (s *Searcher) randomUA() string {
	return userAgents[s.rnd.Intn(len(userAgents))]
}
