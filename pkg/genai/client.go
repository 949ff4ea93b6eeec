// Package genai talks to the Gemini REST API for card text, artwork,
// and appraisal generation. Responses are treated as hostile input:
// enums are normalized fail-closed and free-text fields are length
// capped before anything reaches the card model.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// TextModel handles card concepts, attacks, dex entries and
	// appraisals; ImageModel handles illustration and redraw.
	TextModel  = "gemini-2.5-flash"
	ImageModel = "gemini-2.5-flash-image"
)

// Sentinel errors for the failure classes callers present to users.
var (
	ErrMissingKey = errors.New("API key is missing")
	ErrPermission = errors.New("permission denied, check your API key")
	ErrQuota      = errors.New("API quota exceeded, try again later")
	ErrOverloaded = errors.New("AI service is currently overloaded, try again")
	ErrBlocked    = errors.New("generation blocked by safety filters, try a different prompt")
	ErrEmpty      = errors.New("empty response from AI")
)

// Client is a thin Gemini REST client.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Wire types for generateContent. Only the fields this service uses.

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	ResponseMimeType string   `json:"responseMimeType,omitempty"`
}

type generateRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type generateResponse struct {
	Candidates     []candidate `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// generate posts one generateContent call and returns the parsed
// response with API-level failures already classified.
func (c *Client) generate(ctx context.Context, model string, req generateRequest) (*generateResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingKey
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 32<<20))
	if err != nil {
		return nil, err
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil && resp.StatusCode == http.StatusOK {
		return nil, fmt.Errorf("malformed gemini response: %w", err)
	}

	if err := classify(resp.StatusCode, out); err != nil {
		return nil, err
	}
	return &out, nil
}

// classify maps HTTP status and response metadata onto the sentinel
// errors users see.
func classify(status int, resp generateResponse) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrPermission
	case status == http.StatusTooManyRequests:
		return ErrQuota
	case status == http.StatusInternalServerError || status == http.StatusServiceUnavailable:
		return ErrOverloaded
	case status != http.StatusOK:
		if resp.Error.Message != "" {
			return fmt.Errorf("gemini: %s", resp.Error.Message)
		}
		return fmt.Errorf("gemini: unexpected status %d", status)
	}
	if resp.PromptFeedback.BlockReason != "" {
		return ErrBlocked
	}
	for _, cand := range resp.Candidates {
		if strings.EqualFold(cand.FinishReason, "SAFETY") {
			return ErrBlocked
		}
	}
	return nil
}

// text returns the first text part of the first candidate.
func (r *generateResponse) text() (string, error) {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", ErrEmpty
}

// image returns the first inline image of the first candidate as a
// data URI.
func (r *generateResponse) image() (string, error) {
	for _, cand := range r.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return "data:" + p.InlineData.MimeType + ";base64," + p.InlineData.Data, nil
			}
		}
	}
	return "", errors.New("no image data received from API")
}

func floatPtr(v float64) *float64 { return &v }
