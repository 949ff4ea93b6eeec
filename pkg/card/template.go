package card

// Starter returns the editor's default card, matching the web client's
// initial state.
func Starter() Card {
	return Card{
		Supertype:   SupertypeCreature,
		Name:        "Charizard",
		HP:          "330",
		Type:        Fire,
		Stage:       Stage2,
		EvolvesFrom: "Charmeleon",
		Image:       "https://images.unsplash.com/photo-1633469924738-52101af51d87?q=80&w=1000&auto=format&fit=crop",
		HoloPattern: HoloSheen,
		Attacks: []Attack{
			{
				ID:        "1",
				Name:      "Flare Blitz",
				Cost:      []ElementType{Fire, Colorless},
				Damage:    "50",
				SortOrder: 0,
			},
			{
				ID:          "2",
				Name:        "Explosive Vortex",
				Cost:        []ElementType{Fire, Fire, Colorless, Colorless},
				Damage:      "330",
				Description: "Discard 3 Energy from this card.",
				SortOrder:   1,
			},
		},
		RetreatCost:    2,
		Illustrator:    "5ban Graphics",
		SetNumber:      "006/165",
		Rarity:         RarityDoubleRare,
		Weakness:       Water,
		RegulationMark: "G",
		FlavorText:     "Spits fire that is hot enough to melt boulders. Known to cause forest fires unintentionally.",
		Species:        "Flame Creature",
		Height:         "5'07\"",
		Weight:         "199.5 lbs.",
		Zoom:           DefaultZoom,
	}
}
