// Package api wires the card service's HTTP surface.
package api

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"card-service/pkg/artwork"
	"card-service/pkg/card"
	"card-service/pkg/export"
	"card-service/pkg/genai"
	"card-service/pkg/layout"
	"card-service/pkg/session"
	"card-service/pkg/thumb"
	"card-service/pkg/tilt"
	"card-service/pkg/utils"
)

// Server holds every collaborator the handlers need.
type Server struct {
	Exporter    *export.Exporter
	Thumbs      *thumb.Renderer
	AI          *genai.Client
	Artwork     *artwork.Searcher
	Sessions    session.Store
	Transitions *layout.TypeTransition
	// MobileScale selects the lower capture scale by default; render
	// requests can override it per call with the mobile query param.
	MobileScale bool
}

// Register mounts all API routes on the group.
func (s *Server) Register(api *gin.RouterGroup) {
	cardGroup := api.Group("/card")
	{
		cardGroup.POST("/render", s.RenderCard)
		cardGroup.POST("/preview", s.PreviewCard)
		cardGroup.POST("/thumbnail", s.ThumbnailCard)
	}

	ai := api.Group("/ai")
	{
		ai.POST("/generate-text", s.GenerateText)
		ai.POST("/generate-attack", s.GenerateAttack)
		ai.POST("/generate-dex", s.GenerateDex)
		ai.POST("/appraise", s.Appraise)
		ai.POST("/generate-image", s.GenerateImage)
		ai.POST("/redraw-image", s.RedrawImage)
	}

	sess := api.Group("/session")
	{
		sess.POST("/signin", s.SignIn)
		sess.POST("/signout", s.SignOut)
	}

	api.GET("/artwork/search", s.SearchArtwork)
}

// RenderCard runs the full export pipeline and streams the PNG back as
// an attachment.
func (s *Server) RenderCard(c *gin.Context) {
	var req card.Card
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	mobile := s.MobileScale
	if raw := c.Query("mobile"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			mobile = v
		}
	}

	res, err := s.Exporter.Export(c.Request.Context(), req, mobile)
	if err != nil {
		if errors.Is(err, export.ErrBusy) {
			c.JSON(429, gin.H{"error": "an export is already running, try again shortly"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(200, "image/png", res.PNG)
}

type previewRequest struct {
	Card     card.Card `json:"card"`
	PointerX *float64  `json:"pointerX"` // normalized 0..1, absent means resting
	PointerY *float64  `json:"pointerY"`
	Hovering bool      `json:"hovering"`
}

// PreviewCard returns the interactive HTML snapshot for the supplied
// pointer state. Type changes observed across calls arm the transition
// overlay.
func (s *Server) PreviewCard(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	req.Card.Sanitize()

	ctrl := tilt.New(0)
	if req.PointerX != nil && req.PointerY != nil {
		ctrl.PointerMove(*req.PointerX, *req.PointerY, tilt.Bounds{Width: 1, Height: 1})
	}

	s.Transitions.Observe(req.Card.Type, req.Card.IsTypeSensitive())
	html := layout.Preview(req.Card, layout.PreviewOptions{
		Tilt:          ctrl.State(),
		Transitioning: s.Transitions.State() == layout.TransitionPlaying,
		Hovering:      req.Hovering,
	})
	c.Data(200, "text/html; charset=utf-8", []byte(html))
}

// ThumbnailCard renders the native raster thumbnail.
func (s *Server) ThumbnailCard(c *gin.Context) {
	var req card.Card
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	img := s.Thumbs.Render(c.Request.Context(), req)
	buf, err := utils.EncodeImageToBuffer(img)
	if err != nil {
		c.JSON(500, gin.H{"error": "failed to encode image"})
		return
	}
	c.Data(200, "image/png", buf)
}

type signInRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

func (s *Server) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	s.Sessions.SignIn(req.ID, req.Name)
	c.JSON(200, gin.H{"user": req.ID})
}

func (s *Server) SignOut(c *gin.Context) {
	s.Sessions.SignOut()
	c.JSON(200, gin.H{"status": "signed out"})
}

// gateAI enforces identity and the per-operation cooldown before any
// model call. Returns false after writing the refusal.
func (s *Server) gateAI(c *gin.Context, op string) bool {
	if !s.Sessions.User().Authenticated {
		c.JSON(401, gin.H{"error": "sign in to use AI generation"})
		return false
	}
	if wait, ok := s.Sessions.TryAcquire(op); !ok {
		c.JSON(429, gin.H{"error": "cooldown active", "retryInSeconds": int(wait.Seconds()) + 1})
		return false
	}
	return true
}

// aiError maps the client's failure classes onto HTTP statuses.
func aiError(c *gin.Context, err error) {
	status := 500
	switch {
	case errors.Is(err, genai.ErrMissingKey), errors.Is(err, genai.ErrOverloaded):
		status = 503
	case errors.Is(err, genai.ErrPermission):
		status = 403
	case errors.Is(err, genai.ErrQuota):
		status = 429
	case errors.Is(err, genai.ErrBlocked):
		status = 400
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

type generateTextRequest struct {
	Prompt string     `json:"prompt"`
	Card   *card.Card `json:"card"`
}

// GenerateText asks the model for a card concept and merges it over
// the supplied card (or a blank one).
func (s *Server) GenerateText(c *gin.Context) {
	var req generateTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !s.gateAI(c, "generate-text") {
		return
	}

	draft, err := s.AI.GenerateCard(c.Request.Context(), req.Prompt)
	if err != nil {
		aiError(c, err)
		return
	}

	base := card.Card{Supertype: card.SupertypeCreature}
	if req.Card != nil {
		base = *req.Card
	}
	draft.ApplyTo(&base)
	base.Sanitize()
	c.JSON(200, gin.H{"success": true, "data": base})
}

type generateAttackRequest struct {
	Name    string        `json:"name" binding:"required"`
	Type    string        `json:"type"`
	Attacks []card.Attack `json:"attacks"`
}

func (s *Server) GenerateAttack(c *gin.Context) {
	var req generateAttackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !s.gateAI(c, "generate-attack") {
		return
	}

	atk, err := s.AI.GenerateAttack(c.Request.Context(), req.Name, card.NormalizeElement(req.Type), req.Attacks)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "data": atk})
}

type generateDexRequest struct {
	Name    string `json:"name" binding:"required"`
	Species string `json:"species"`
}

func (s *Server) GenerateDex(c *gin.Context) {
	var req generateDexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !s.gateAI(c, "generate-dex") {
		return
	}

	entry, err := s.AI.GenerateDexEntry(c.Request.Context(), req.Name, req.Species)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "entry": entry})
}

func (s *Server) Appraise(c *gin.Context) {
	var req card.Card
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !s.gateAI(c, "appraise") {
		return
	}

	verdict, err := s.AI.Appraise(c.Request.Context(), req)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "data": verdict})
}

type imagePromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (s *Server) GenerateImage(c *gin.Context) {
	var req imagePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !s.gateAI(c, "generate-image") {
		return
	}

	uri, err := s.AI.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "imageUrl": uri})
}

type redrawRequest struct {
	Image  string `json:"image" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

// RedrawImage reinterprets existing artwork under a new prompt. Remote
// URLs are inlined first; the model only ever sees image bytes.
func (s *Server) RedrawImage(c *gin.Context) {
	var req redrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if !s.gateAI(c, "redraw-image") {
		return
	}

	image := req.Image
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		inlined, err := s.Artwork.FetchDataURI(c.Request.Context(), image)
		if err != nil {
			c.JSON(400, gin.H{"error": "could not fetch source image: " + err.Error()})
			return
		}
		image = inlined
	}

	uri, err := s.AI.RedrawImage(c.Request.Context(), image, req.Prompt)
	if err != nil {
		aiError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "imageUrl": uri})
}

func (s *Server) SearchArtwork(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(400, gin.H{"error": "query required"})
		return
	}
	maxResults := 10
	if raw := c.Query("maxResults"); raw != "" {
		fmt.Sscanf(raw, "%d", &maxResults)
	}

	urls, err := s.Artwork.Search(c.Request.Context(), query, maxResults)
	if err != nil {
		c.JSON(500, gin.H{"error": "search failed"})
		return
	}
	c.JSON(200, gin.H{"images": urls, "count": len(urls)})
}
