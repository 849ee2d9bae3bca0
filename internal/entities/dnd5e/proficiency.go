package dnd5e

// ProficiencyKind tags a proficiency grant
type ProficiencyKind string

// ProficiencyGrant declares competence in a skill, tool, weapon, armor or saving throw.
// Either Key or Category identifies what is granted; a grant with neither is a no-op.
type ProficiencyGrant struct {
	Kind     ProficiencyKind `json:"type" yaml:"type"`
	Category string          `json:"category,omitempty" yaml:"category,omitempty"`
	Key      string          `json:"key,omitempty" yaml:"key,omitempty"`
}

// EffectiveKey returns the key the grant contributes, or "" when it contributes nothing
func (g ProficiencyGrant) EffectiveKey() string {
	if g.Key != "" {
		return g.Key
	}
	if g.Category != "" {
		return CategoryPlaceholderPrefix + g.Category
	}
	return ""
}

// ProficiencyBundle is the classified, de-duplicated result of merging grants
type ProficiencyBundle struct {
	Skills       []string `json:"skills"`
	Tools        []string `json:"tools"`
	Weapons      []string `json:"weapons"`
	Armors       []string `json:"armors"`
	SavingThrows []string `json:"saving_throws"`
}

// NewProficiencyBundle returns a bundle with every category present and empty
func NewProficiencyBundle() ProficiencyBundle {
	return ProficiencyBundle{
		Skills:       []string{},
		Tools:        []string{},
		Weapons:      []string{},
		Armors:       []string{},
		SavingThrows: []string{},
	}
}
