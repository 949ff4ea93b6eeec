package layout

import (
	"strings"
	"testing"

	"card-service/pkg/card"
)

func countClass(n *Node, class string) int {
	count := 0
	n.Walk(func(n *Node) {
		if n.HasClass(class) {
			count++
		}
	})
	return count
}

func TestRenderCreature(t *testing.T) {
	c := card.Card{
		Supertype:   card.SupertypeCreature,
		Name:        "Emberling",
		HP:          "120",
		Type:        card.Fire,
		Stage:       card.Stage1,
		EvolvesFrom: "Sparkit",
		Weakness:    card.Water,
		RetreatCost: 2,
		Attacks: []card.Attack{
			{ID: "1", Name: "Ember", Cost: []card.ElementType{card.Fire}, Damage: "30",
				Description: "Flip a coin. If heads, the Defending creature is now Burned.", SortOrder: 0},
		},
		Illustrator: "Test Artist",
		SetNumber:   "001/100",
	}
	html := Render(c).HTML()

	for _, want := range []string{
		"Emberling", "120", "STAGE 1", "Evolves from Sparkit",
		"Ember", "30", "Flip a coin",
		"Illus. Test Artist", "001/100",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("creature layout missing %q", want)
		}
	}
	if strings.Contains(html, "TRAINER") {
		t.Error("creature layout contains trainer chrome")
	}
	if !strings.Contains(html, `id="`+RootID+`"`) {
		t.Error("missing capture root id")
	}
}

func TestRenderTrainerSupporter(t *testing.T) {
	c := card.Card{
		Supertype:   card.SupertypeTrainer,
		Name:        "Professor's Research",
		TrainerType: card.TrainerSupporter,
		Rules:       []string{"Discard your hand and draw 7 cards."},
	}
	html := Render(c).HTML()

	for _, want := range []string{
		"TRAINER", "Professor", "Supporter",
		"Discard your hand and draw 7 cards.",
		"You can play only 1 Supporter card during your turn.",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("trainer layout missing %q", want)
		}
	}
	if strings.Contains(html, "Evolves from") || strings.Contains(html, "Weakness") {
		t.Error("trainer layout contains creature chrome")
	}
}

func TestRenderTrainerItemHasNoSupporterStrip(t *testing.T) {
	c := card.Card{
		Supertype:   card.SupertypeTrainer,
		Name:        "Potion",
		TrainerType: card.TrainerItem,
		Rules:       []string{"Heal 30 damage from 1 of your creatures."},
	}
	html := Render(c).HTML()
	if strings.Contains(html, "only 1 Supporter") {
		t.Error("item card shows the supporter strip")
	}
}

func TestRenderTrainerDefaultEffectText(t *testing.T) {
	c := card.Card{Supertype: card.SupertypeTrainer, Name: "Blank"}
	html := Render(c).HTML()
	if !strings.Contains(html, "Select an effect in the editor.") {
		t.Error("empty rules should fall back to the editor hint")
	}
}

func TestRenderEnergy(t *testing.T) {
	c := card.Card{
		Supertype:   card.SupertypeEnergy,
		Name:        "Blaze",
		Type:        card.Fire,
		Illustrator: "Someone",
	}
	html := Render(c).HTML()
	if !strings.Contains(html, "Energy") || !strings.Contains(html, "Blaze") {
		t.Error("energy layout missing header text")
	}
	if strings.Contains(html, "HP") && strings.Contains(html, "Retreat") {
		t.Error("energy layout contains creature chrome")
	}
}

func TestRenderDispatchIsExclusive(t *testing.T) {
	// A card with every supertype's fields set renders exactly one layout.
	c := card.Starter()
	c.TrainerType = card.TrainerSupporter
	c.Rules = []string{"Draw 3 cards."}

	html := Render(c).HTML()
	if strings.Contains(html, "Draw 3 cards.") {
		t.Error("creature render leaked trainer rules text")
	}

	c.Supertype = card.SupertypeTrainer
	html = Render(c).HTML()
	if !strings.Contains(html, "Draw 3 cards.") {
		t.Error("trainer render missing rules text")
	}
	if strings.Contains(html, "Flare Blitz") {
		t.Error("trainer render leaked creature attacks")
	}
}

func TestRenderVMAX(t *testing.T) {
	c := card.Starter()
	c.Stage = card.StageVMAX
	c.FlavorText = "A very large creature."
	html := Render(c).HTML()

	if !strings.Contains(html, "VMAX RULE") {
		t.Error("VMAX card missing rule box")
	}
	if strings.Contains(html, "A very large creature.") {
		t.Error("VMAX card should suppress flavor text")
	}

	c.Stage = card.StageBasic
	html = Render(c).HTML()
	if !strings.Contains(html, "A very large creature.") {
		t.Error("basic card should show flavor text")
	}
	if strings.Contains(html, "VMAX RULE") {
		t.Error("basic card shows the VMAX rule box")
	}
}

func TestRenderAttackOrderFollowsSortOrder(t *testing.T) {
	c := card.Card{
		Supertype: card.SupertypeCreature,
		Name:      "Ordered",
		Attacks: []card.Attack{
			{ID: "2", Name: "SecondAttack", SortOrder: 1},
			{ID: "1", Name: "FirstAttack", SortOrder: 0},
		},
	}
	html := Render(c).HTML()
	if strings.Index(html, "FirstAttack") > strings.Index(html, "SecondAttack") {
		t.Error("attacks rendered in array order, not sort order")
	}
}

func TestRenderDexStripOmittedWhenEmpty(t *testing.T) {
	c := card.Card{Supertype: card.SupertypeCreature, Name: "NoDex"}
	if strings.Contains(Render(c).HTML(), "HT:") {
		t.Error("dex strip rendered with no dex data")
	}
	c.Height = `1'04"`
	if !strings.Contains(Render(c).HTML(), "HT:") {
		t.Error("dex strip missing despite height being set")
	}
}

func TestRenderMissingArtworkUsesPlaceholder(t *testing.T) {
	c := card.Card{Supertype: card.SupertypeCreature, Name: "Artless"}
	tree := Render(c)
	found := false
	tree.Walk(func(n *Node) {
		if n.Tag == "img" && n.HasClass(ArtImageClass) {
			for _, a := range n.Attrs {
				if a.Key == "src" && a.Value == PlaceholderImage {
					found = true
				}
			}
		}
	})
	if !found {
		t.Error("missing artwork did not degrade to the placeholder")
	}
}

func TestRenderEscapesUserText(t *testing.T) {
	c := card.Card{
		Supertype: card.SupertypeCreature,
		Name:      `<script>alert("x")</script>`,
	}
	html := Render(c).HTML()
	if strings.Contains(html, "<script>") {
		t.Error("user text reached the document unescaped")
	}
}

func TestRenderHoloOverlayPresence(t *testing.T) {
	c := card.Starter()
	c.HoloPattern = card.HoloNone
	if countClass(Render(c), HoloClass) != 0 {
		t.Error("None pattern rendered an overlay")
	}

	for _, p := range []card.HoloPattern{card.HoloCosmos, card.HoloSheen, card.HoloBorderGlow} {
		c.HoloPattern = p
		if countClass(Render(c), HoloClass) == 0 {
			t.Errorf("pattern %s rendered no overlay", p)
		}
	}
}

func TestHoloOverlayUsesPointerVariables(t *testing.T) {
	n := HoloOverlay(card.HoloCosmos)
	if n == nil {
		t.Fatal("nil overlay for Cosmos")
	}
	html := n.HTML()
	if !strings.Contains(html, "--mouse-x") || !strings.Contains(html, "--mouse-y") {
		t.Error("masked overlay does not follow the pointer variables")
	}
	if !strings.Contains(html, "mask-image") {
		t.Error("masked overlay has no mask")
	}
}

func TestNodeCloneIsDeep(t *testing.T) {
	orig := Div().Cls("a").CSS("color: red").Kids(Div().Cls("b"))
	clone := orig.Clone()
	clone.Children[0].Classes[0] = "changed"
	clone.Styles[0] = "color: blue"
	if orig.Children[0].Classes[0] != "b" || orig.Styles[0] != "color: red" {
		t.Error("clone shares state with the original")
	}
}
