package dnd5e

// Grant is one contribution of a trait. The set of grants is closed: every
// implementation lives in this package and is dispatched through GrantVisitor.
type Grant interface {
	Accept(v GrantVisitor)
	isGrant()
}

// GrantVisitor receives each grant kind. Adding a grant kind adds a method
// here, which every visitor must then implement.
type GrantVisitor interface {
	VisitAbilityBonus(g AbilityBonusGrant)
	VisitProficiency(g ProficiencyTraitGrant)
	VisitSpell(g SpellGrant)
	VisitLanguage(g LanguageGrant)
	VisitVision(g VisionGrant)
	VisitSpeed(g SpeedGrant)
	VisitHPBonus(g HPBonusGrant)
}

// AbilityBonusGrant adds to one or more ability scores
type AbilityBonusGrant struct {
	Bonuses AbilityBonuses
}

// ProficiencyTraitGrant grants proficiencies
type ProficiencyTraitGrant struct {
	Proficiencies []ProficiencyGrant
}

// SpellGrant grants innate spells
type SpellGrant struct {
	SpellIDs []string
}

// LanguageGrant grants languages
type LanguageGrant struct {
	LanguageIDs []string
}

// VisionGrant grants a sense up to a range in feet
type VisionGrant struct {
	Type     VisionType
	Distance int32
}

// SpeedGrant sets walking speed in feet
type SpeedGrant struct {
	Speed int32
}

// HPBonusGrant adds hit points per character level
type HPBonusGrant struct {
	PerLevel int32
}

func (g AbilityBonusGrant) Accept(v GrantVisitor)     { v.VisitAbilityBonus(g) }
func (g ProficiencyTraitGrant) Accept(v GrantVisitor) { v.VisitProficiency(g) }
func (g SpellGrant) Accept(v GrantVisitor)            { v.VisitSpell(g) }
func (g LanguageGrant) Accept(v GrantVisitor)         { v.VisitLanguage(g) }
func (g VisionGrant) Accept(v GrantVisitor)           { v.VisitVision(g) }
func (g SpeedGrant) Accept(v GrantVisitor)            { v.VisitSpeed(g) }
func (g HPBonusGrant) Accept(v GrantVisitor)          { v.VisitHPBonus(g) }

func (AbilityBonusGrant) isGrant()     {}
func (ProficiencyTraitGrant) isGrant() {}
func (SpellGrant) isGrant()            {}
func (LanguageGrant) isGrant()         {}
func (VisionGrant) isGrant()           {}
func (SpeedGrant) isGrant()            {}
func (HPBonusGrant) isGrant()          {}

// Trait is a named bundle of grants
type Trait struct {
	Name        string
	Description string
	Grants      []Grant
}

// Apply dispatches every grant of the trait to v in declaration order
func (t Trait) Apply(v GrantVisitor) {
	for _, g := range t.Grants {
		g.Accept(v)
	}
}
