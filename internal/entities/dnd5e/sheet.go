package dnd5e

// Sheet is the assembled, display-ready view of a draft
type Sheet struct {
	DraftID          string            `json:"draft_id"`
	Name             string            `json:"name"`
	Level            int32             `json:"level"`
	RaceName         string            `json:"race_name"`
	ClassName        string            `json:"class_name"`
	BackgroundName   string            `json:"background_name"`
	AbilityScores    AbilityScores     `json:"ability_scores"`
	AbilityModifiers map[Ability]int32 `json:"ability_modifiers"`
	ProficiencyBonus int32             `json:"proficiency_bonus"`
	Speed            int32             `json:"speed"`
	MaxHitPoints     int32             `json:"max_hit_points"`
	Proficiencies    ProficiencyBundle `json:"proficiencies"`
	SkillBonuses     map[string]int32  `json:"skill_bonuses"`
	SavingThrows     map[Ability]int32 `json:"saving_throws"`
	Languages        []string          `json:"languages"`
	Spells           []string          `json:"spells"`
	Feats            []string          `json:"feats"`
	FightingStyle    string            `json:"fighting_style,omitempty"`
	Vision           VisionMap         `json:"vision"`
}
