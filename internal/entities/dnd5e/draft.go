package dnd5e

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeCharacterDraft is the toolkit entity type of a draft
const EntityTypeCharacterDraft = "character_draft"

// CharacterDraft is the character being assembled by the creation wizard.
// The Fixed* fields are derived data; they are replaced wholesale whenever
// the matching selection changes.
type CharacterDraft struct {
	ID           string `json:"id"`
	PlayerID     string `json:"player_id"`
	Name         string `json:"name"`
	Level        int32  `json:"level"`
	RaceID       string `json:"race_id,omitempty"`
	SubraceID    string `json:"subrace_id,omitempty"`
	ClassID      string `json:"class_id,omitempty"`
	BackgroundID string `json:"background_id,omitempty"`

	AbilityScores   *AbilityScores `json:"ability_scores,omitempty"`
	ChosenSkills    []string       `json:"chosen_skills,omitempty"`
	ChosenLanguages []string       `json:"chosen_languages,omitempty"`
	FeatIDs         []string       `json:"feat_ids,omitempty"`
	FightingStyleID string         `json:"fighting_style_id,omitempty"`
	KnownSpellIDs   []string       `json:"known_spell_ids,omitempty"`
	Equipment       []string       `json:"equipment,omitempty"`

	FixedRace       *FixedData `json:"fixed_race,omitempty"`
	FixedClass      *ClassData `json:"fixed_class,omitempty"`
	FixedBackground *FixedData `json:"fixed_background,omitempty"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// GetID returns the draft ID
func (d *CharacterDraft) GetID() string {
	return d.ID
}

// GetType returns the toolkit entity type
func (d *CharacterDraft) GetType() string {
	return EntityTypeCharacterDraft
}

var _ core.Entity = (*CharacterDraft)(nil)
