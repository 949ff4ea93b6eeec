package layout

import (
	"strings"
	"testing"

	"card-service/pkg/card"
	"card-service/pkg/tilt"
)

func TestPreviewNeutralState(t *testing.T) {
	html := Preview(card.Starter(), PreviewOptions{Tilt: tilt.Neutral()})

	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("preview is not a full document")
	}
	if !strings.Contains(html, "perspective: 1200px") {
		t.Error("missing perspective wrapper")
	}
	if !strings.Contains(html, "--mouse-x: 0.5") || !strings.Contains(html, "--mouse-y: 0.5") {
		t.Error("neutral pointer variables not published")
	}
	if !strings.Contains(html, "rotateX(0.00deg) rotateY(0.00deg)") {
		t.Error("neutral state is rotated")
	}
	if !strings.Contains(html, "opacity: 0.00") {
		t.Error("neutral glare is visible")
	}
	if strings.Contains(html, "@keyframes type-flash") {
		t.Error("transition keyframes embedded while idle")
	}
}

func TestPreviewTiltedState(t *testing.T) {
	ctrl := tilt.New(0)
	ctrl.PointerMove(1, 0, tilt.Bounds{Width: 1, Height: 1})
	html := Preview(card.Starter(), PreviewOptions{Tilt: ctrl.State(), Hovering: true})

	if !strings.Contains(html, "rotateX(20.00deg) rotateY(20.00deg)") {
		t.Errorf("top-right corner rotation missing")
	}
	if !strings.Contains(html, "translateZ(25px)") {
		t.Error("hover lift missing")
	}
	if !strings.Contains(html, "circle at 100.0% 0.0%") {
		t.Error("glare did not follow the pointer")
	}
	if !strings.Contains(html, "--mouse-x: 1.0000") {
		t.Error("pointer variable not forwarded")
	}
}

func TestPreviewTransitionOverlay(t *testing.T) {
	c := card.Starter()
	html := Preview(c, PreviewOptions{Tilt: tilt.Neutral(), Transitioning: true})
	if !strings.Contains(html, "type-icon-zoom") {
		t.Error("transition overlay missing while transitioning")
	}
	if !strings.Contains(html, "@keyframes type-flash") {
		t.Error("transition keyframes not embedded with the overlay")
	}

	html = Preview(c, PreviewOptions{Tilt: tilt.Neutral()})
	if strings.Contains(html, "type-icon-zoom") {
		t.Error("transition overlay present while idle")
	}
}

func TestPreviewTrainerNeverTransitions(t *testing.T) {
	c := card.Card{Supertype: card.SupertypeTrainer, Name: "Switch"}
	html := Preview(c, PreviewOptions{Tilt: tilt.Neutral(), Transitioning: true})
	if strings.Contains(html, "type-icon-zoom") {
		t.Error("trainer layout rendered a type transition")
	}
}
