package card

// Canonical render size of a card in CSS pixels.
const (
	Width  = 420
	Height = 588
)

// Offsets are bounded so the artwork can never fully leave the frame.
const (
	MaxOffset   = 50
	DefaultZoom = 1.2
)

// Attack is one attack row on a creature card. SortOrder is the
// authoritative ordering key; array position is presentation only.
type Attack struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Cost        []ElementType `json:"cost"`
	Damage      string        `json:"damage"`
	Description string        `json:"description"`
	SortOrder   int           `json:"sortOrder"`
}

// Card is the full editable card state. The struct is flat: every
// supertype's fields are retained so switching supertype and back loses
// nothing, but renderers only ever read the fields of the active
// supertype.
type Card struct {
	ID        string    `json:"id,omitempty"`
	Supertype Supertype `json:"supertype"`
	Name      string    `json:"name"`

	Image          string      `json:"image,omitempty"`
	HoloPattern    HoloPattern `json:"holoPattern"`
	Illustrator    string      `json:"illustrator"`
	SetNumber      string      `json:"setNumber"`
	Rarity         Rarity      `json:"rarity"`
	RegulationMark string      `json:"regulationMark,omitempty"`
	SetSymbolImage string      `json:"setSymbolImage,omitempty"`

	Zoom    float64 `json:"zoom"`
	XOffset int     `json:"xOffset"`
	YOffset int     `json:"yOffset"`

	// Creature fields.
	HP          string      `json:"hp,omitempty"`
	Type        ElementType `json:"type,omitempty"`
	Stage       Stage       `json:"subtype,omitempty"`
	EvolvesFrom string      `json:"evolvesFrom,omitempty"`
	Weakness    ElementType `json:"weakness,omitempty"`
	Resistance  ElementType `json:"resistance,omitempty"`
	RetreatCost int         `json:"retreatCost"`
	Attacks     []Attack    `json:"attacks,omitempty"`
	FlavorText  string      `json:"flavorText,omitempty"`
	Species     string      `json:"species,omitempty"`
	Height      string      `json:"height,omitempty"`
	Weight      string      `json:"weight,omitempty"`

	// Trainer fields.
	TrainerType TrainerType `json:"trainerType,omitempty"`
	Rules       []string    `json:"rules,omitempty"`
}

// Sanitize normalizes every enum-like field and clamps the numeric
// visual parameters into their legal ranges. It never fails: bad input
// degrades to the documented defaults.
func (c *Card) Sanitize() {
	c.Supertype = NormalizeSupertype(string(c.Supertype))
	c.HoloPattern = NormalizeHoloPattern(string(c.HoloPattern))
	c.Rarity = NormalizeRarity(string(c.Rarity))

	switch c.Supertype {
	case SupertypeTrainer:
		c.TrainerType = NormalizeTrainerType(string(c.TrainerType))
	default:
		c.Type = NormalizeElement(string(c.Type))
	}
	if c.Supertype == SupertypeCreature {
		c.Stage = NormalizeStage(string(c.Stage))
		c.Weakness = NormalizeOptionalElement(string(c.Weakness))
		c.Resistance = NormalizeOptionalElement(string(c.Resistance))
		if c.RetreatCost < 0 {
			c.RetreatCost = 0
		}
		for i := range c.Attacks {
			for j, cost := range c.Attacks[i].Cost {
				c.Attacks[i].Cost[j] = NormalizeElement(string(cost))
			}
		}
		RenumberAttacks(c.Attacks)
	}

	if c.Zoom <= 0 {
		c.Zoom = DefaultZoom
	}
	c.XOffset = clampOffset(c.XOffset)
	c.YOffset = clampOffset(c.YOffset)
}

func clampOffset(v int) int {
	if v > MaxOffset {
		return MaxOffset
	}
	if v < -MaxOffset {
		return -MaxOffset
	}
	return v
}

// IsTypeSensitive reports whether the layout reacts to the element
// type (creature and energy layouts do, trainer does not).
func (c *Card) IsTypeSensitive() bool {
	return c.Supertype != SupertypeTrainer
}
