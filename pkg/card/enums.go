package card

import "strings"

// Supertype selects which layout a card uses.
type Supertype string

const (
	SupertypeCreature Supertype = "Creature"
	SupertypeTrainer  Supertype = "Trainer"
	SupertypeEnergy   Supertype = "Energy"
)

// ElementType is the card's element. The zero value means "not set"
// (e.g. no weakness).
type ElementType string

const (
	Grass     ElementType = "Grass"
	Fire      ElementType = "Fire"
	Water     ElementType = "Water"
	Lightning ElementType = "Lightning"
	Psychic   ElementType = "Psychic"
	Fighting  ElementType = "Fighting"
	Darkness  ElementType = "Darkness"
	Metal     ElementType = "Metal"
	Dragon    ElementType = "Dragon"
	Fairy     ElementType = "Fairy"
	Colorless ElementType = "Colorless"
	Ice       ElementType = "Ice"
	Poison    ElementType = "Poison"
	Ground    ElementType = "Ground"
	Flying    ElementType = "Flying"
	Bug       ElementType = "Bug"
	Rock      ElementType = "Rock"
	Ghost     ElementType = "Ghost"
)

// ElementTypes lists every supported element in display order.
var ElementTypes = []ElementType{
	Grass, Fire, Water, Lightning, Psychic, Fighting,
	Darkness, Metal, Dragon, Fairy, Colorless, Ice,
	Poison, Ground, Flying, Bug, Rock, Ghost,
}

// Stage is the evolution stage of a creature card.
type Stage string

const (
	StageBasic   Stage = "Basic"
	Stage1       Stage = "Stage 1"
	Stage2       Stage = "Stage 2"
	StageVMAX    Stage = "VMAX"
	StageRadiant Stage = "Radiant"
)

var Stages = []Stage{StageBasic, Stage1, Stage2, StageVMAX, StageRadiant}

// TrainerType is the subtype of a trainer card.
type TrainerType string

const (
	TrainerItem      TrainerType = "Item"
	TrainerSupporter TrainerType = "Supporter"
	TrainerStadium   TrainerType = "Stadium"
	TrainerTool      TrainerType = "Tool"
)

var TrainerTypes = []TrainerType{TrainerItem, TrainerSupporter, TrainerStadium, TrainerTool}

// Rarity is cosmetic only; it never changes layout selection.
type Rarity string

const (
	RarityCommon           Rarity = "Common"
	RarityUncommon         Rarity = "Uncommon"
	RarityRare             Rarity = "Rare"
	RarityDoubleRare       Rarity = "Double Rare"
	RarityUltraRare        Rarity = "Ultra Rare"
	RaritySecretRare       Rarity = "Secret Rare"
	RarityIllustrationRare Rarity = "Illustration Rare"
)

var Rarities = []Rarity{
	RarityCommon, RarityUncommon, RarityRare, RarityDoubleRare,
	RarityUltraRare, RaritySecretRare, RarityIllustrationRare,
}

// HoloPattern selects the iridescent overlay, None disables it.
type HoloPattern string

const (
	HoloNone         HoloPattern = "None"
	HoloStarlight    HoloPattern = "Starlight"
	HoloCosmos       HoloPattern = "Cosmos"
	HoloTinsel       HoloPattern = "Tinsel"
	HoloSheen        HoloPattern = "Sheen"
	HoloCrackedIce   HoloPattern = "Cracked Ice"
	HoloCrosshatch   HoloPattern = "Crosshatch"
	HoloWaterWeb     HoloPattern = "Water Web"
	HoloSequin       HoloPattern = "Sequin"
	HoloPixel        HoloPattern = "Pixel"
	HoloVerticalBars HoloPattern = "Vertical Bars"
	HoloBorderGlow   HoloPattern = "Border Glow"
)

var HoloPatterns = []HoloPattern{
	HoloNone, HoloStarlight, HoloCosmos, HoloTinsel, HoloSheen,
	HoloCrackedIce, HoloCrosshatch, HoloWaterWeb, HoloSequin,
	HoloPixel, HoloVerticalBars, HoloBorderGlow,
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeElement maps a free-form string to a canonical element type.
// Unknown or empty values fail closed to Colorless so a malformed card
// still renders.
func NormalizeElement(s string) ElementType {
	key := foldKey(s)
	for _, t := range ElementTypes {
		if foldKey(string(t)) == key {
			return t
		}
	}
	return Colorless
}

// NormalizeOptionalElement is like NormalizeElement but keeps "absent"
// (used for weakness/resistance, which may legitimately be unset).
func NormalizeOptionalElement(s string) ElementType {
	if foldKey(s) == "" || foldKey(s) == "none" {
		return ""
	}
	return NormalizeElement(s)
}

// NormalizeSupertype accepts the legacy client spelling for creature
// cards alongside the canonical one.
func NormalizeSupertype(s string) Supertype {
	switch foldKey(s) {
	case "trainer":
		return SupertypeTrainer
	case "energy":
		return SupertypeEnergy
	case "creature", "pokémon", "pokemon":
		return SupertypeCreature
	}
	return SupertypeCreature
}

// NormalizeStage matches loosely: generated data often says "stage 2"
// or "basic" in arbitrary casing.
func NormalizeStage(s string) Stage {
	key := foldKey(s)
	for _, st := range Stages {
		if foldKey(string(st)) == key {
			return st
		}
	}
	// Embedded stage names ("My Stage 1 form") still count.
	switch {
	case strings.Contains(key, "stage 2"):
		return Stage2
	case strings.Contains(key, "stage 1"):
		return Stage1
	}
	return StageBasic
}

// NormalizeTrainerType accepts the long-form tool spelling used by the
// web client.
func NormalizeTrainerType(s string) TrainerType {
	key := foldKey(s)
	for _, t := range TrainerTypes {
		if foldKey(string(t)) == key {
			return t
		}
	}
	if strings.Contains(key, "tool") {
		return TrainerTool
	}
	return TrainerItem
}

// NormalizeRarity falls back to Common.
func NormalizeRarity(s string) Rarity {
	key := foldKey(s)
	for _, r := range Rarities {
		if foldKey(string(r)) == key {
			return r
		}
	}
	return RarityCommon
}

// NormalizeHoloPattern falls back to None: a bad pattern just means no
// overlay.
func NormalizeHoloPattern(s string) HoloPattern {
	key := foldKey(s)
	for _, p := range HoloPatterns {
		if foldKey(string(p)) == key {
			return p
		}
	}
	return HoloNone
}
