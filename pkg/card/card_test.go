package card

import (
	"encoding/json"
	"testing"
)

func TestNormalizeElement(t *testing.T) {
	tests := []struct {
		in   string
		want ElementType
	}{
		{"Fire", Fire},
		{"fire", Fire},
		{"  LIGHTNING ", Lightning},
		{"water", Water},
		{"", Colorless},
		{"banana", Colorless},
		{"ghost", Ghost},
	}
	for _, tt := range tests {
		if got := NormalizeElement(tt.in); got != tt.want {
			t.Errorf("NormalizeElement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeOptionalElement(t *testing.T) {
	tests := []struct {
		in   string
		want ElementType
	}{
		{"", ""},
		{"none", ""},
		{" None ", ""},
		{"psychic", Psychic},
		{"garbage", Colorless},
	}
	for _, tt := range tests {
		if got := NormalizeOptionalElement(tt.in); got != tt.want {
			t.Errorf("NormalizeOptionalElement(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSupertype(t *testing.T) {
	tests := []struct {
		in   string
		want Supertype
	}{
		{"Creature", SupertypeCreature},
		{"pokémon", SupertypeCreature},
		{"Pokemon", SupertypeCreature},
		{"TRAINER", SupertypeTrainer},
		{"energy", SupertypeEnergy},
		{"", SupertypeCreature},
		{"mystery", SupertypeCreature},
	}
	for _, tt := range tests {
		if got := NormalizeSupertype(tt.in); got != tt.want {
			t.Errorf("NormalizeSupertype(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeStage(t *testing.T) {
	tests := []struct {
		in   string
		want Stage
	}{
		{"Basic", StageBasic},
		{"stage 1", Stage1},
		{"STAGE 2", Stage2},
		{"vmax", StageVMAX},
		{"Radiant", StageRadiant},
		{"My Stage 2 form", Stage2},
		{"ex", StageBasic},
		{"", StageBasic},
	}
	for _, tt := range tests {
		if got := NormalizeStage(tt.in); got != tt.want {
			t.Errorf("NormalizeStage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeHoloPattern(t *testing.T) {
	if got := NormalizeHoloPattern("cracked ice"); got != HoloCrackedIce {
		t.Errorf("got %q, want %q", got, HoloCrackedIce)
	}
	if got := NormalizeHoloPattern("sparkle-o-matic"); got != HoloNone {
		t.Errorf("unknown pattern should fail closed to None, got %q", got)
	}
}

func TestSanitizeClampsVisualParams(t *testing.T) {
	c := Card{Supertype: SupertypeCreature, Zoom: 0, XOffset: 9000, YOffset: -9000}
	c.Sanitize()
	if c.Zoom != DefaultZoom {
		t.Errorf("zoom = %v, want default %v", c.Zoom, DefaultZoom)
	}
	if c.XOffset != MaxOffset {
		t.Errorf("xOffset = %d, want %d", c.XOffset, MaxOffset)
	}
	if c.YOffset != -MaxOffset {
		t.Errorf("yOffset = %d, want %d", c.YOffset, -MaxOffset)
	}
}

func TestSanitizeNormalizesActiveSupertypeOnly(t *testing.T) {
	c := Card{
		Supertype:   Supertype("trainer"),
		TrainerType: TrainerType("supporter"),
		Type:        ElementType("definitely-not-a-type"),
	}
	c.Sanitize()
	if c.Supertype != SupertypeTrainer {
		t.Fatalf("supertype = %q", c.Supertype)
	}
	if c.TrainerType != TrainerSupporter {
		t.Errorf("trainerType = %q, want %q", c.TrainerType, TrainerSupporter)
	}
	// Inactive creature fields are retained verbatim.
	if c.Type != ElementType("definitely-not-a-type") {
		t.Errorf("inactive type was touched: %q", c.Type)
	}
}

func TestSanitizeNormalizesAttackCosts(t *testing.T) {
	c := Card{
		Supertype: SupertypeCreature,
		Attacks: []Attack{
			{Name: "Ember", Cost: []ElementType{"fire", "nonsense"}, SortOrder: 3},
		},
		RetreatCost: -2,
	}
	c.Sanitize()
	if c.Attacks[0].Cost[0] != Fire || c.Attacks[0].Cost[1] != Colorless {
		t.Errorf("costs = %v", c.Attacks[0].Cost)
	}
	if c.Attacks[0].SortOrder != 0 {
		t.Errorf("sortOrder = %d, want renumbered 0", c.Attacks[0].SortOrder)
	}
	if c.RetreatCost != 0 {
		t.Errorf("retreatCost = %d, want clamped 0", c.RetreatCost)
	}
}

func TestSupertypeRoundTripKeepsFields(t *testing.T) {
	c := Starter()
	name, hp, attacks := c.Name, c.HP, len(c.Attacks)

	c.Supertype = SupertypeTrainer
	c.Sanitize()
	c.Supertype = SupertypeCreature
	c.Sanitize()

	if c.Name != name || c.HP != hp || len(c.Attacks) != attacks {
		t.Errorf("creature fields lost across supertype switch: %q %q %d", c.Name, c.HP, len(c.Attacks))
	}
}

func TestCardJSONFieldNames(t *testing.T) {
	c := Starter()
	raw, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"supertype", "name", "hp", "type", "subtype", "holoPattern", "attacks", "retreatCost"} {
		if _, ok := m[key]; !ok {
			t.Errorf("marshaled card missing %q", key)
		}
	}
}

func TestNewAttackAppendsAfterExisting(t *testing.T) {
	existing := []Attack{{ID: "a", SortOrder: 0}, {ID: "b", SortOrder: 4}}
	atk := NewAttack(existing)
	if atk.ID == "" {
		t.Error("new attack has no ID")
	}
	if atk.SortOrder != 5 {
		t.Errorf("sortOrder = %d, want 5", atk.SortOrder)
	}
}

func TestSortedAttacksDoesNotMutate(t *testing.T) {
	attacks := []Attack{{ID: "b", SortOrder: 1}, {ID: "a", SortOrder: 0}}
	sorted := SortedAttacks(attacks)
	if sorted[0].ID != "a" || sorted[1].ID != "b" {
		t.Errorf("sorted order = %v", sorted)
	}
	if attacks[0].ID != "b" {
		t.Error("input slice was reordered")
	}
}

func TestMoveAttackSwapsPositionAndOrder(t *testing.T) {
	attacks := []Attack{{ID: "a", SortOrder: 0}, {ID: "b", SortOrder: 1}}
	MoveAttack(attacks, 1, -1)
	if attacks[0].ID != "b" || attacks[0].SortOrder != 0 {
		t.Errorf("after move: %v", attacks)
	}
	if attacks[1].ID != "a" || attacks[1].SortOrder != 1 {
		t.Errorf("after move: %v", attacks)
	}
}

func TestMoveAttackOutOfBoundsIsNoop(t *testing.T) {
	attacks := []Attack{{ID: "a", SortOrder: 0}, {ID: "b", SortOrder: 1}}
	MoveAttack(attacks, 0, -1)
	MoveAttack(attacks, 1, 1)
	MoveAttack(attacks, 5, 1)
	if attacks[0].ID != "a" || attacks[1].ID != "b" {
		t.Errorf("boundary move mutated slice: %v", attacks)
	}
}

func TestRemoveAttackRenumbers(t *testing.T) {
	attacks := []Attack{
		{ID: "a", SortOrder: 0},
		{ID: "b", SortOrder: 1},
		{ID: "c", SortOrder: 2},
	}
	out := RemoveAttack(attacks, "b")
	if len(out) != 2 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0].ID != "a" || out[0].SortOrder != 0 {
		t.Errorf("out[0] = %v", out[0])
	}
	if out[1].ID != "c" || out[1].SortOrder != 1 {
		t.Errorf("out[1] = %v", out[1])
	}
}

func TestRenumberAttacksContiguousAndUnique(t *testing.T) {
	attacks := []Attack{
		{ID: "x", SortOrder: 7},
		{ID: "y", SortOrder: 7},
		{ID: "z", SortOrder: 2},
	}
	RenumberAttacks(attacks)
	seen := map[int]bool{}
	for _, a := range attacks {
		if seen[a.SortOrder] {
			t.Fatalf("duplicate sortOrder %d", a.SortOrder)
		}
		seen[a.SortOrder] = true
	}
	for i := 0; i < len(attacks); i++ {
		if !seen[i] {
			t.Errorf("missing sortOrder %d", i)
		}
	}
	// z had the lowest order and must stay first.
	for _, a := range attacks {
		if a.ID == "z" && a.SortOrder != 0 {
			t.Errorf("z sortOrder = %d, want 0", a.SortOrder)
		}
	}
}

func TestStarterIsSane(t *testing.T) {
	c := Starter()
	c.Sanitize()
	if c.Supertype != SupertypeCreature {
		t.Errorf("supertype = %q", c.Supertype)
	}
	if c.Name == "" || c.HP == "" || len(c.Attacks) == 0 {
		t.Error("starter card is missing core fields")
	}
	if c.Stage != Stage2 {
		t.Errorf("stage = %q", c.Stage)
	}
}
