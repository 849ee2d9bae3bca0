package dnd5e

// FixedData is everything a single selection (race+subrace, class or
// background) grants without player choice. It is always recomputed from the
// selection key and the reference tables, never updated incrementally.
type FixedData struct {
	// Found reports whether the selection key resolved. The payload is the
	// documented default when it is false.
	Found          bool              `json:"found"`
	Proficiencies  ProficiencyBundle `json:"proficiencies"`
	AbilityBonuses AbilityBonuses    `json:"ability_bonuses"`
	Languages      []string          `json:"languages"`
	Spells         []string          `json:"spells"`
	Speed          int32             `json:"speed"`
	HPPerLevel     int32             `json:"hp_per_level"`
}

// NewFixedData returns the all-empty default payload
func NewFixedData() FixedData {
	return FixedData{
		Proficiencies:  NewProficiencyBundle(),
		AbilityBonuses: AbilityBonuses{},
		Languages:      []string{},
		Spells:         []string{},
		Speed:          DefaultSpeed,
	}
}

// ClassData is the fixed data a class grants
type ClassData struct {
	Found          bool              `json:"found"`
	Proficiencies  ProficiencyBundle `json:"proficiencies"`
	AbilityBonuses AbilityBonuses    `json:"ability_bonuses"`
	HitDie         int32             `json:"hit_die"`
}

// NewClassData returns the all-empty default class payload
func NewClassData() ClassData {
	return ClassData{
		Proficiencies:  NewProficiencyBundle(),
		AbilityBonuses: AbilityBonuses{},
	}
}

// VisionType is a sense category
type VisionType string

// VisionRecord is the best grant of one vision category and where it came from
type VisionRecord struct {
	Distance int32  `json:"distance"`
	Source   string `json:"source"`
}

// VisionMap always carries every category in AllVisionTypes
type VisionMap map[VisionType]VisionRecord

// NewVisionMap returns a map with every category at distance 0 and no source
func NewVisionMap() VisionMap {
	m := make(VisionMap, len(AllVisionTypes))
	for _, t := range AllVisionTypes {
		m[t] = VisionRecord{}
	}
	return m
}
