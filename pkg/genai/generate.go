package genai

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"card-service/pkg/card"
)

// CardDraft is the model's card concept before normalization. Field
// names mirror the JSON schema the prompt pins the model to.
type CardDraft struct {
	Name        string        `json:"name"`
	HP          string        `json:"hp"`
	Type        string        `json:"type"`
	Subtype     string        `json:"subtype"`
	EvolvesFrom string        `json:"evolvesFrom"`
	Attacks     []AttackDraft `json:"attacks"`
	Weakness    string        `json:"weakness"`
	Resistance  string        `json:"resistance"`
	RetreatCost int           `json:"retreatCost"`
	Illustrator string        `json:"illustrator"`
	SetNumber   string        `json:"setNumber"`
	Rarity      string        `json:"rarity"`
	FlavorText  string        `json:"flavorText"`
	Species     string        `json:"species"`
	Height      string        `json:"height"`
	Weight      string        `json:"weight"`
}

// AttackDraft is one generated attack before normalization.
type AttackDraft struct {
	Name        string   `json:"name"`
	Cost        []string `json:"cost"`
	Damage      string   `json:"damage"`
	Description string   `json:"description"`
}

var elementList = func() string {
	names := make([]string, len(card.ElementTypes))
	for i, t := range card.ElementTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}()

const cardSystemInstruction = `You are a creative assistant that generates creature trading card data.
Based on the user's prompt, create a balanced and thematic card.
If the prompt is vague, empty, or asks for 'random', be highly creative with the species, name, and attacks to create a unique card concept.

MANDATORY REQUIREMENTS:
1. 'attacks': You MUST generate 1 or 2 attacks. Each attack MUST have:
   - 'name': Creative attack name.
   - 'cost': Array of element types (e.g. ["Fire", "Colorless"]).
   - 'damage': String (e.g. "30", "120", "10+").
   - 'description': Effect text (e.g. "Flip a coin...").
2. 'weakness': Must be a valid element type.
3. 'resistance': A valid element type or empty.
4. 'retreatCost': Integer between 0 and 4.

Return ONLY JSON matching this exact schema:
{
  "name": "string",
  "hp": "string (number)",
  "type": "string (One of: %s)",
  "subtype": "string (e.g. Basic, Stage 1, VMAX)",
  "evolvesFrom": "string (optional)",
  "attacks": [{"name": "string", "cost": ["string"], "damage": "string", "description": "string"}],
  "weakness": "string",
  "resistance": "string",
  "retreatCost": number,
  "illustrator": "string",
  "setNumber": "string",
  "rarity": "string",
  "flavorText": "string",
  "species": "string",
  "height": "string",
  "weight": "string"
}`

// GenerateCard asks the model for a full card concept. The result is
// normalized and ready to merge into a card.
func (c *Client) GenerateCard(ctx context.Context, prompt string) (*CardDraft, error) {
	resp, err := c.generate(ctx, TextModel, generateRequest{
		Contents: []content{{Parts: []part{{
			Text: "Create a creature card concept based on: " + prompt,
		}}}},
		SystemInstruction: &content{Parts: []part{{
			Text: fmt.Sprintf(cardSystemInstruction, elementList),
		}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}
	text, err := resp.text()
	if err != nil {
		return nil, err
	}
	var draft CardDraft
	if err := parseJSON(text, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

// GenerateAttack asks for a single balanced attack for the named
// creature, returned fully normalized with a fresh ID.
func (c *Client) GenerateAttack(ctx context.Context, name string, el card.ElementType, existing []card.Attack) (card.Attack, error) {
	resp, err := c.generate(ctx, TextModel, generateRequest{
		Contents: []content{{Parts: []part{{
			Text: fmt.Sprintf("Generate one balanced creature card attack for %s (%s type). "+
				"Include name, cost (array of element types), damage, and effect description. Return JSON only.", name, el),
		}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return card.Attack{}, err
	}
	text, err := resp.text()
	if err != nil {
		return card.Attack{}, err
	}
	var draft AttackDraft
	if err := parseJSON(text, &draft); err != nil {
		return card.Attack{}, err
	}

	atk := card.NewAttack(existing)
	atk.Name = draft.Name
	atk.Damage = draft.Damage
	atk.Description = draft.Description
	atk.Cost = normalizeCost(draft.Cost)
	return atk, nil
}

// GenerateDexEntry writes a short flavor entry for the creature.
func (c *Client) GenerateDexEntry(ctx context.Context, name, species string) (string, error) {
	resp, err := c.generate(ctx, TextModel, generateRequest{
		Contents: []content{{Parts: []part{{
			Text: fmt.Sprintf("Write a short, interesting encyclopedia entry for %s (The %s). Max 3 sentences.", name, species),
		}}}},
	})
	if err != nil {
		return "", err
	}
	return resp.text()
}

// Appraisal is the appraiser's verdict.
type Appraisal struct {
	Price   string `json:"price"`
	Comment string `json:"comment"`
}

// priceSalvage pulls a leading currency amount out of a runaway price
// string.
var priceSalvage = regexp.MustCompile(`^(\$?\d+(?:,\d{3})*(?:\.\d{2})?)`)

// maxPriceLen is the point past which a price is considered a
// hallucination loop and gets salvaged.
const maxPriceLen = 15

// Appraise has the model value the card in character as a snarky
// appraiser. Runaway prices are clipped to a plausible currency string.
func (c *Client) Appraise(ctx context.Context, cd card.Card) (*Appraisal, error) {
	summaryType := string(cd.Type)
	if cd.Supertype != card.SupertypeCreature {
		summaryType = string(cd.Supertype)
	}
	attacks := make([]string, 0, len(cd.Attacks))
	for _, a := range card.SortedAttacks(cd.Attacks) {
		attacks = append(attacks, fmt.Sprintf("%s (%s)", a.Name, a.Damage))
	}

	prompt := fmt.Sprintf(`Act as a snarky, ruthless, and funny trading card appraiser (like a mean version of Pawn Stars or Antiques Roadshow).
Analyze this card data: {"name": %q, "hp": %q, "type": %q, "attacks": %q, "rarity": %q, "illustrator": %q}.

Strictly follow these rules for the JSON output:
1. 'price': A VERY SHORT string (max 12 characters). Examples: "$0.05", "$10.50", "$9,000", "Priceless".
   - Do NOT generate long sequences of numbers or repeated text.
   - Keep it to standard currency format.
2. 'comment': A short, sarcastic roast (max 2 sentences).
3. If the card stats are impossible (e.g. HP > 340), call it a fake and value it low.`,
		cd.Name, cd.HP, summaryType, strings.Join(attacks, ", "), cd.Rarity, cd.Illustrator)

	resp, err := c.generate(ctx, TextModel, generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{Temperature: floatPtr(0.7), ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, err
	}
	text, err := resp.text()
	if err != nil {
		return nil, err
	}
	var app Appraisal
	if err := parseJSON(text, &app); err != nil {
		return nil, err
	}
	app.Price = SalvagePrice(app.Price)
	return &app, nil
}

// SalvagePrice leaves sane prices alone; past maxPriceLen it keeps the
// leading currency amount if one exists, otherwise truncates hard.
func SalvagePrice(price string) string {
	if len(price) <= maxPriceLen {
		return price
	}
	if m := priceSalvage.FindString(price); m != "" {
		return m
	}
	return price[:12] + "..."
}

// GenerateImage produces card artwork for the prompt as a data URI.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := c.generate(ctx, ImageModel, generateRequest{
		Contents: []content{{Parts: []part{{
			Text: "A high quality, digital art style illustration of a fantasy creature: " + prompt +
				". Anime style, vibrant colors, dynamic pose, white background, no text.",
		}}}},
	})
	if err != nil {
		return "", err
	}
	return resp.image()
}

var dataURIPattern = regexp.MustCompile(`^data:([^;]+);base64,`)

// RedrawImage reinterprets existing artwork (a data URI) under a new
// prompt. Remote URLs must be inlined by the caller first.
func (c *Client) RedrawImage(ctx context.Context, imageDataURI, prompt string) (string, error) {
	m := dataURIPattern.FindStringSubmatch(imageDataURI)
	if m == nil {
		return "", fmt.Errorf("redraw requires inline image data, not a URL")
	}
	mimeType := m[1]
	data := imageDataURI[len(m[0]):]

	resp, err := c.generate(ctx, ImageModel, generateRequest{
		Contents: []content{{Parts: []part{
			{InlineData: &inlineData{MimeType: mimeType, Data: data}},
			{Text: "Redraw this concept: " + prompt + ". A high quality creature card art, anime style, vibrant."},
		}}},
	})
	if err != nil {
		return "", err
	}
	return resp.image()
}

// ApplyTo merges the draft into the card. Enums are normalized
// fail-closed before assignment and generated attacks get fresh IDs and
// contiguous sort orders; absent fields leave the card untouched.
func (d *CardDraft) ApplyTo(c *card.Card) {
	setIf(&c.Name, d.Name)
	setIf(&c.HP, d.HP)
	setIf(&c.EvolvesFrom, d.EvolvesFrom)
	setIf(&c.Illustrator, d.Illustrator)
	setIf(&c.SetNumber, d.SetNumber)
	setIf(&c.FlavorText, d.FlavorText)
	setIf(&c.Species, d.Species)
	setIf(&c.Height, d.Height)
	setIf(&c.Weight, d.Weight)

	if d.Type != "" {
		c.Type = card.NormalizeElement(d.Type)
	}
	if d.Subtype != "" {
		c.Stage = card.NormalizeStage(d.Subtype)
	}
	if d.Rarity != "" {
		c.Rarity = card.NormalizeRarity(d.Rarity)
	}
	c.Weakness = card.NormalizeOptionalElement(d.Weakness)
	c.Resistance = card.NormalizeOptionalElement(d.Resistance)
	if d.RetreatCost >= 0 && d.RetreatCost <= 4 {
		c.RetreatCost = d.RetreatCost
	}

	if len(d.Attacks) > 0 {
		c.Attacks = c.Attacks[:0]
		for i, a := range d.Attacks {
			c.Attacks = append(c.Attacks, card.Attack{
				ID:          uuid.NewString(),
				Name:        a.Name,
				Cost:        normalizeCost(a.Cost),
				Damage:      a.Damage,
				Description: a.Description,
				SortOrder:   i,
			})
		}
	}
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func normalizeCost(raw []string) []card.ElementType {
	out := make([]card.ElementType, 0, len(raw))
	for _, r := range raw {
		out = append(out, card.NormalizeElement(r))
	}
	return out
}
