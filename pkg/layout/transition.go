package layout

import (
	"sync"
	"time"

	"card-service/pkg/card"
	"card-service/pkg/style"
)

// TransitionState is the phase of the type-change effect.
type TransitionState int

const (
	TransitionIdle TransitionState = iota
	TransitionPlaying
)

// DefaultTransitionDuration matches the effect's animation length.
const DefaultTransitionDuration = time.Second

// TypeTransition tracks element-type changes and times the transient
// overlay. It fires only when the observed type differs from the
// previous observation (never on the first one) and only for
// type-sensitive layouts. Re-triggering while playing restarts the
// effect: the epoch advances and the deadline is replaced, so there is
// always at most one overlay.
type TypeTransition struct {
	mu       sync.Mutex
	duration time.Duration
	now      func() time.Time

	seen    bool
	last    card.ElementType
	until   time.Time
	epoch   int
	playing card.ElementType
}

// NewTypeTransition uses the wall clock and the default duration.
func NewTypeTransition() *TypeTransition {
	return &TypeTransition{duration: DefaultTransitionDuration, now: time.Now}
}

// newTypeTransitionAt injects a clock, for tests.
func newTypeTransitionAt(d time.Duration, now func() time.Time) *TypeTransition {
	return &TypeTransition{duration: d, now: now}
}

// Observe feeds the current element type. typeSensitive is false for
// trainer layouts, which never animate. Returns true when this
// observation started (or restarted) a Playing phase.
func (t *TypeTransition) Observe(el card.ElementType, typeSensitive bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.seen {
		t.seen = true
		t.last = el
		return false
	}
	if el == t.last {
		return false
	}
	t.last = el
	if !typeSensitive {
		return false
	}
	t.until = t.now().Add(t.duration)
	t.epoch++
	t.playing = el
	return true
}

// State reports Idle or Playing. The effect self-expires; there is no
// external cancellation.
func (t *TypeTransition) State() TransitionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.now().Before(t.until) {
		return TransitionPlaying
	}
	return TransitionIdle
}

// Epoch increments on every (re)trigger; the preview keys the overlay
// node on it so a restart replaces the animation instead of stacking.
func (t *TypeTransition) Epoch() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.epoch
}

// TransitionKeyframes must be present in any document that renders the
// overlay.
const TransitionKeyframes = `@keyframes type-flash { 0% { opacity: 0.5; background: white; } 100% { opacity: 0; } }
@keyframes type-ripple { 0% { transform: scale(0.2); opacity: 0.9; border-width: 30px; } 100% { transform: scale(2.5); opacity: 0; border-width: 0px; } }
@keyframes type-icon-zoom { 0% { transform: scale(0.4) rotate(-20deg); opacity: 0; } 40% { opacity: 1; transform: scale(1.1) rotate(5deg); } 100% { transform: scale(1.4) rotate(0deg); opacity: 0; } }`

// TransitionOverlay builds the Playing-phase markup: a white flash, an
// expanding ring in the new type's color, and the type glyph popping
// and fading out.
func TransitionOverlay(el card.ElementType) *Node {
	flash := layer(
		"animation: type-flash 0.6s ease-out forwards",
		"mix-blend-mode: overlay")

	ripple := Div().CSS(
		"position: absolute",
		"width: 128px", "height: 128px",
		"border-radius: 50%",
		"border-style: solid",
		"border-color: "+style.ColorFor(el),
		"animation: type-ripple 0.8s ease-out forwards")

	pop := Div().CSS(
		"position: relative",
		"animation: type-icon-zoom 0.8s ease-out forwards",
		"filter: brightness(1.1) drop-shadow(0 0 20px rgba(255,255,255,0.8))").
		Kids(RawSVG(style.GlyphSVG(el, 180)))

	return layer(
		"z-index: 50",
		"pointer-events: none",
		"border-radius: 24px",
		"overflow: hidden",
		"display: flex",
		"align-items: center",
		"justify-content: center").
		Kids(flash, ripple, pop)
}
