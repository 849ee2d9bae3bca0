package dnd5e

// Ability is one of the six ability keys
type Ability string

// AbilityScores holds the six ability scores of a character
type AbilityScores struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

// Get returns the score for an ability, 0 for an unknown key
func (a *AbilityScores) Get(ability Ability) int32 {
	if a == nil {
		return 0
	}
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set assigns the score for an ability; unknown keys are ignored
func (a *AbilityScores) Set(ability Ability, value int32) {
	switch ability {
	case AbilityStrength:
		a.Strength = value
	case AbilityDexterity:
		a.Dexterity = value
	case AbilityConstitution:
		a.Constitution = value
	case AbilityIntelligence:
		a.Intelligence = value
	case AbilityWisdom:
		a.Wisdom = value
	case AbilityCharisma:
		a.Charisma = value
	}
}

// WithBonuses returns a copy of the scores with every bonus map applied
func (a *AbilityScores) WithBonuses(bonuses ...AbilityBonuses) AbilityScores {
	var out AbilityScores
	if a != nil {
		out = *a
	}
	for _, b := range bonuses {
		for ability, bonus := range b {
			out.Set(ability, out.Get(ability)+bonus)
		}
	}
	return out
}

// AbilityModifier returns the modifier for a score: floor((score-10)/2)
func AbilityModifier(score int32) int32 {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// AbilityBonuses is a partial map of ability bonuses; absent keys mean 0
type AbilityBonuses map[Ability]int32

// Add accumulates other into b
func (b AbilityBonuses) Add(other AbilityBonuses) {
	for ability, bonus := range other {
		b[ability] += bonus
	}
}

// Clone returns an independent copy
func (b AbilityBonuses) Clone() AbilityBonuses {
	out := make(AbilityBonuses, len(b))
	for ability, bonus := range b {
		out[ability] = bonus
	}
	return out
}
