package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"card-service/pkg/card"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c
}

func textResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{"parts": []map[string]any{{"text": text}}},
		}},
	}
	raw, _ := json.Marshal(resp)
	return string(raw)
}

func TestGenerateCardParsesAndNormalizes(t *testing.T) {
	draft := `{"name":"Inferno Drake","hp":"180","type":"fire","subtype":"stage 2",
		"attacks":[{"name":"Flame Burst","cost":["fire","bogus"],"damage":"120","description":"Discard a card."}],
		"weakness":"water","resistance":"","retreatCost":2,"rarity":"double rare"}`
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, TextModel) {
			t.Errorf("unexpected model path %q", r.URL.Path)
		}
		w.Write([]byte(textResponse(draft)))
	})

	got, err := c.GenerateCard(context.Background(), "fire dragon")
	if err != nil {
		t.Fatal(err)
	}

	base := card.Card{Supertype: card.SupertypeCreature}
	got.ApplyTo(&base)

	if base.Name != "Inferno Drake" || base.HP != "180" {
		t.Errorf("merged card = %+v", base)
	}
	if base.Type != card.Fire {
		t.Errorf("type = %q", base.Type)
	}
	if base.Stage != card.Stage2 {
		t.Errorf("stage = %q", base.Stage)
	}
	if base.Rarity != card.RarityDoubleRare {
		t.Errorf("rarity = %q", base.Rarity)
	}
	if len(base.Attacks) != 1 {
		t.Fatalf("attacks = %d", len(base.Attacks))
	}
	atk := base.Attacks[0]
	if atk.ID == "" {
		t.Error("generated attack has no ID")
	}
	if atk.SortOrder != 0 {
		t.Errorf("sortOrder = %d", atk.SortOrder)
	}
	if atk.Cost[0] != card.Fire || atk.Cost[1] != card.Colorless {
		t.Errorf("costs = %v, want unknown cost failing closed to Colorless", atk.Cost)
	}
}

func TestApplyToKeepsExistingOnAbsentFields(t *testing.T) {
	base := card.Card{Name: "Keep Me", HP: "60", Illustrator: "Original"}
	draft := CardDraft{HP: "90"}
	draft.ApplyTo(&base)
	if base.Name != "Keep Me" || base.Illustrator != "Original" {
		t.Errorf("absent fields overwrote card: %+v", base)
	}
	if base.HP != "90" {
		t.Errorf("hp = %q", base.HP)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrPermission},
		{http.StatusForbidden, ErrPermission},
		{http.StatusTooManyRequests, ErrQuota},
		{http.StatusInternalServerError, ErrOverloaded},
		{http.StatusServiceUnavailable, ErrOverloaded},
	}
	for _, tt := range tests {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
		})
		_, err := c.GenerateDexEntry(context.Background(), "X", "Y")
		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %v", tt.status, err, tt.want)
		}
	}
}

func TestSafetyBlockIsClassified(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"finishReason":"SAFETY","content":{"parts":[]}}]}`))
	})
	_, err := c.GenerateDexEntry(context.Background(), "X", "Y")
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("err = %v, want ErrBlocked", err)
	}

	c = testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	})
	_, err = c.GenerateDexEntry(context.Background(), "X", "Y")
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("err = %v, want ErrBlocked", err)
	}
}

func TestMissingKeyFailsWithoutNetwork(t *testing.T) {
	c := NewClient("")
	_, err := c.GenerateDexEntry(context.Background(), "X", "Y")
	if !errors.Is(err, ErrMissingKey) {
		t.Errorf("err = %v, want ErrMissingKey", err)
	}
}

func TestEmptyCandidatesIsEmptyError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})
	_, err := c.GenerateDexEntry(context.Background(), "X", "Y")
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestSalvagePrice(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"$9,000", "$9,000"},
		{"Priceless", "Priceless"},
		{"$1,234,567.89", "$1,234,567.89"},
		{"$0.051337133713371337", "$0.05"},
		{"$12,000,000,000,000.00 but honestly", "$12,000,000,000,000.00"},
		{"worthless garbage beyond belief", "worthless ga..."},
	}
	for _, tt := range tests {
		if got := SalvagePrice(tt.in); got != tt.want {
			t.Errorf("SalvagePrice(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAppraiseSalvagesRunawayPrice(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{"price":"$0.051337133713371337","comment":"Banned in 3 galaxies."}`)))
	})
	got, err := c.Appraise(context.Background(), card.Starter())
	if err != nil {
		t.Fatal(err)
	}
	if got.Price != "$0.05" {
		t.Errorf("price = %q", got.Price)
	}
	if got.Comment == "" {
		t.Error("comment lost")
	}
}

func TestGenerateImageReturnsDataURI(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ImageModel) {
			t.Errorf("image call used model path %q", r.URL.Path)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"QUJD"}}]}}]}`))
	})
	uri, err := c.GenerateImage(context.Background(), "a dragon")
	if err != nil {
		t.Fatal(err)
	}
	if uri != "data:image/png;base64,QUJD" {
		t.Errorf("uri = %q", uri)
	}
}

func TestRedrawRejectsRemoteURL(t *testing.T) {
	c := NewClient("test-key")
	if _, err := c.RedrawImage(context.Background(), "https://example.com/a.png", "p"); err == nil {
		t.Error("remote URL accepted for redraw")
	}
}

func TestParseJSONStripsFences(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	fenced := "```json\n{\"name\":\"ok\"}\n```"
	if err := parseJSON(fenced, &out); err != nil {
		t.Fatal(err)
	}
	if out.Name != "ok" {
		t.Errorf("name = %q", out.Name)
	}
	if err := parseJSON("not json at all", &out); err == nil {
		t.Error("garbage parsed without error")
	}
}
