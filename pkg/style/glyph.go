package style

import (
	"fmt"
	"net/url"
	"strings"

	"card-service/pkg/card"
)

// GlyphPathFor returns the 24x24 SVG path outlining the element's
// symbol. Unknown types get the colorless star.
func GlyphPathFor(t card.ElementType) string {
	switch t {
	case card.Grass:
		return "M12 21c-4.97 0-9-4.03-9-9 0-4.97 4.03-9 9-9 2.2 0 4.2.8 5.8 2.1l-1.5 1.5C14.8 5.4 13.5 5 12 5c-3.87 0-7 3.13-7 7s3.13 7 7 7c1.5 0 2.8-.4 4.3-1.6l1.5 1.5C16.2 20.2 14.2 21 12 21zm1-10c0 .55-.45 1-1 1s-1-.45-1-1 .45-1 1-1 1 .45 1 1z"
	case card.Fire:
		return "M12.5 2C12.5 2 12.5 2.5 12.5 3C12.5 4.5 11 6 11 6C11 6 8.5 7.5 8.5 10C8.5 12 10 13 11 13.5C11 13.5 10 16 7.5 16.5C8.5 19 12 21 14 21C17 21 19 18 19 15.5C19 12.5 15.5 11 15.5 8C15.5 6 16.5 4.5 16.5 4.5C16.5 4.5 14.5 4 14.5 2C14.5 2 13.5 1 12.5 2Z"
	case card.Water:
		return "M12 2C12 2 6 9 6 14C6 17.31 8.69 20 12 20C15.31 20 18 17.31 18 14C18 9 12 2 12 2ZM12 18C10.5 18 9 16.5 9 15C9 14.5 9.5 14 9.5 14C9.5 14 10.5 14 10.5 15C10.5 15.8 11.2 16.5 12 16.5C12.5 16.5 13 17 13 17.5C13 18 12.5 18 12 18Z"
	case card.Lightning:
		return "M11 21l1-6H7l6-13-1 6h5l-6 13z"
	case card.Psychic:
		return "M12 4C7.58 4 4 7.58 4 12C4 16.42 7.58 20 12 20C16.42 20 20 16.42 20 12C20 7.58 16.42 4 12 4ZM12 18C8.69 18 6 15.31 6 12C6 8.69 8.69 6 12 6C15.31 6 18 8.69 18 12C18 15.31 15.31 18 12 18ZM12 8C10 8 8 10 8 12C8 14 10 16 12 16C14 16 16 14 16 12C16 10 14 8 12 8ZM12 10C13.1 10 14 10.9 14 12C14 13.1 13.1 14 12 14C10.9 14 10 13.1 10 12C10 10.9 10.9 10 12 10Z"
	case card.Fighting:
		return "M16.5 8C16.5 8 14.5 10 12 10C9.5 10 7.5 8 7.5 8C6 9 5 11 5 13C5 16.5 8 19 12 19C16 19 19 16.5 19 13C19 11 18 9 16.5 8Z M10 14.5C9.2 14.5 8.5 13.8 8.5 13C8.5 12.2 9.2 11.5 10 11.5C10.8 11.5 11.5 12.2 11.5 13C11.5 13.8 10.8 14.5 10 14.5Z M14 14.5C13.2 14.5 12.5 13.8 12.5 13C12.5 12.2 13.2 11.5 14 11.5C14.8 11.5 15.5 12.2 15.5 13C15.5 13.8 14.8 14.5 14 14.5Z"
	case card.Darkness:
		return "M12 2C9 2 6.5 3.5 5 5.5C8 5.5 10.5 8 10.5 11C10.5 14 8 16.5 5 16.5C6.5 18.5 9 20 12 20C16.5 20 20 16.5 20 12C20 7.5 16.5 2 12 2ZM14.5 13C13.7 13 13 12.3 13 11.5C13 10.7 13.7 10 14.5 10C15.3 10 16 10.7 16 11.5C16 12.3 15.3 13 14.5 13Z"
	case card.Metal:
		return "M12 4L4 8L6 18H18L20 8L12 4ZM12 16L8 9H16L12 16Z"
	case card.Fairy:
		return "M12 2C12 2 14 6 18 6C18 6 15 9 15 12C15 15 18 18 18 18C14 18 12 22 12 22C12 22 10 18 6 18C6 18 9 15 9 12C9 9 6 6 6 6C10 6 12 2 12 2Z"
	case card.Dragon:
		return "M5 4V8H9V12H13V8H17V4H13V8H9V4H5Z"
	case card.Ice:
		return "M12 2L10 6H14L12 2ZM18 7L15 8L18 9V7ZM6 7L9 8L6 9V7ZM12 22L10 18H14L12 22ZM20 12L16 10V14L20 12ZM4 12L8 10V14L4 12Z M12 8.5L8.5 12L12 15.5L15.5 12L12 8.5Z"
	case card.Poison:
		return "M12,2A10,10 0 0,0 2,12A10,10 0 0,0 12,22A10,10 0 0,0 22,12A10,10 0 0,0 12,2M12,4A8,8 0 0,1 20,12A8,8 0 0,1 12,20A8,8 0 0,1 4,12A8,8 0 0,1 12,4M9,9A1,1 0 0,0 8,10A1,1 0 0,0 9,11A1,1 0 0,0 10,10A1,1 0 0,0 9,9M15,9A1,1 0 0,0 14,10A1,1 0 0,0 15,11A1,1 0 0,0 16,10A1,1 0 0,0 15,9M9,14V16H15V14H9Z"
	case card.Ground:
		return "M3 10L6 10L12 4L18 10L21 10L12 1L3 10ZM3 12L3 21L21 21L21 12L12 21L3 12Z"
	case card.Flying:
		return "M20 12c0 4.42-3.58 8-8 8s-8-3.58-8-8c0-4.42 3.58-8 8-8 .09 0 .18 0 .27.01C9.68 6.64 12 10.69 12 12s-2.32 5.36-4.73 7.99c.92.01 1.83 0 2.73 0 4.42 0 8-3.58 8-8z"
	case card.Bug:
		return "M12 2a10 10 0 00-7.5 16.06l-1.5 1.5 1.42 1.42 1.5-1.5A10 10 0 1012 2zm0 18a8 8 0 110-16 8 8 0 010 16zM8 10h8v2H8zm0 4h8v2H8z"
	case card.Rock:
		return "M16.42 3.12l-5.65 5.66-2.83-2.83-7.07 7.07L1 13.01l4.24-4.24 2.83 2.83 7.07-7.07L22.21 7.4l-4.24 4.24-1.55-1.55z"
	case card.Ghost:
		return "M12 2C8.69 2 6 4.69 6 8v8c0 2.21 1.79 4 4 4h4c2.21 0 4-1.79 4-4V8c0-3.31-2.69-6-6-6zm0 18c-1.1 0-2-.9-2-2v-4h4v4c0 1.1-.9 2-2 2zm4-6H8V8c0-2.21 1.79-4 4-4s4 1.79 4 4v6zM10 10h4v2h-4v-2z"
	default:
		return "M12 2l2.5 7.5L22 12l-7.5 2.5L12 22l-2.5-7.5L2 12l7.5-2.5z"
	}
}

// GlyphSVG builds the shaded orb rendering of an element glyph: radial
// highlight over the type color with the white symbol on top.
func GlyphSVG(t card.ElementType, size int) string {
	c := ColorFor(t)
	id := "g" + strings.ReplaceAll(string(t), " ", "")
	return fmt.Sprintf(
		`<svg viewBox="0 0 24 24" width="%d" height="%d"><defs><radialGradient id=%q cx="30%%" cy="30%%" r="100%%"><stop offset="0%%" stop-color=%q/><stop offset="100%%" stop-color="#000"/></radialGradient></defs><circle cx="12" cy="12" r="12" fill="url(#%s)"/><path d=%q fill="white"/></svg>`,
		size, size, id, c, id, GlyphPathFor(t))
}

// GlyphDataURI returns the orb glyph as an inline image source, usable
// in both the HTML layouts and export snapshots without a fetch.
func GlyphDataURI(t card.ElementType, size int) string {
	return "data:image/svg+xml," + url.PathEscape(GlyphSVG(t, size))
}
