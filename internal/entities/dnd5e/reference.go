package dnd5e

// Race is a playable race from the reference tables
type Race struct {
	ID          string
	Name        string
	Description string
	Size        string
	Languages   []string
	Spells      []string
	Traits      []Trait
	Subraces    []Subrace
}

// Subrace returns the subrace with the given ID belonging to this race
func (r *Race) Subrace(id string) (*Subrace, bool) {
	if r == nil || id == "" {
		return nil, false
	}
	for i := range r.Subraces {
		if r.Subraces[i].ID == id {
			return &r.Subraces[i], true
		}
	}
	return nil, false
}

// Subrace refines a race with additional traits
type Subrace struct {
	ID          string
	Name        string
	Description string
	Traits      []Trait
}

// Class is a playable class. A nil Proficiencies slice means the class
// defines no proficiency block at all.
type Class struct {
	ID                  string
	Name                string
	Description         string
	HitDie              int32
	PrimaryAbility      Ability
	SkillChoiceCount    int32
	SkillOptions        []string
	Proficiencies       []ProficiencyGrant
	SpellcastingAbility Ability
}

// Background is a character background
type Background struct {
	ID             string
	Name           string
	Description    string
	Proficiencies  []ProficiencyGrant
	AbilityBonuses AbilityBonuses
	Languages      []string
	Feature        string
}

// Language is a spoken language
type Language struct {
	ID     string
	Name   string
	Exotic bool
	Script string
}

// Feat is an optional character feat
type Feat struct {
	ID           string
	Name         string
	Description  string
	Prerequisite string
}

// FightingStyle is a martial fighting style
type FightingStyle struct {
	ID          string
	Name        string
	Description string
}
