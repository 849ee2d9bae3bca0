package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config holds the dependencies for the engine
type Config struct {
	Tables Tables
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}

	return vb.Build()
}

// Resolver implements Engine over a fixed set of tables
type Resolver struct {
	tables Tables
}

// New creates a resolver bound to the given tables
func New(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Resolver{tables: cfg.Tables}, nil
}

var _ Engine = (*Resolver)(nil)

// ResolveRace folds the race traits, then the subrace traits, into fixed
// data. An unknown race yields the default payload with Found false; an
// unknown subrace is skipped.
func (r *Resolver) ResolveRace(raceID, subraceID string) dnd5e.FixedData {
	race, ok := r.tables.Race(raceID)
	if !ok {
		return dnd5e.NewFixedData()
	}

	f := newTraitFolder()
	f.languages = append(f.languages, race.Languages...)
	f.spells = append(f.spells, race.Spells...)

	for _, t := range race.Traits {
		t.Apply(f)
	}
	if subrace, ok := r.tables.Subrace(raceID, subraceID); ok {
		for _, t := range subrace.Traits {
			t.Apply(f)
		}
	}

	return f.result()
}

// ResolveClass merges the class proficiency block. Classes grant no ability
// bonuses; the field is present and empty.
func (r *Resolver) ResolveClass(classID string) dnd5e.ClassData {
	class, ok := r.tables.Class(classID)
	if !ok {
		return dnd5e.NewClassData()
	}

	out := dnd5e.NewClassData()
	out.Found = true
	out.HitDie = class.HitDie
	if class.Proficiencies == nil {
		return out
	}

	out.Proficiencies = MergeProficiencies(class.Proficiencies)
	return out
}

// ResolveBackground merges the background proficiencies, adds its ability
// bonuses and appends its listed languages.
func (r *Resolver) ResolveBackground(backgroundID string) dnd5e.FixedData {
	bg, ok := r.tables.Background(backgroundID)
	if !ok {
		return dnd5e.NewFixedData()
	}

	out := dnd5e.NewFixedData()
	out.Found = true
	out.Proficiencies = MergeProficiencies(bg.Proficiencies)
	out.AbilityBonuses.Add(bg.AbilityBonuses)
	out.Languages = appendUnique(out.Languages, bg.Languages...)
	return out
}

// traitFolder accumulates grants across traits. Bonuses and hit points add
// up, collections append, speed is last writer wins. Vision is resolved
// separately and ignored here.
type traitFolder struct {
	bonuses    dnd5e.AbilityBonuses
	grants     []dnd5e.ProficiencyGrant
	spells     []string
	languages  []string
	speed      int32
	hpPerLevel int32
}

func newTraitFolder() *traitFolder {
	return &traitFolder{
		bonuses: dnd5e.AbilityBonuses{},
		speed:   dnd5e.DefaultSpeed,
	}
}

func (f *traitFolder) VisitAbilityBonus(g dnd5e.AbilityBonusGrant) {
	f.bonuses.Add(g.Bonuses)
}

func (f *traitFolder) VisitProficiency(g dnd5e.ProficiencyTraitGrant) {
	f.grants = append(f.grants, g.Proficiencies...)
}

func (f *traitFolder) VisitSpell(g dnd5e.SpellGrant) {
	f.spells = append(f.spells, g.SpellIDs...)
}

func (f *traitFolder) VisitLanguage(g dnd5e.LanguageGrant) {
	f.languages = append(f.languages, g.LanguageIDs...)
}

func (f *traitFolder) VisitVision(dnd5e.VisionGrant) {}

func (f *traitFolder) VisitSpeed(g dnd5e.SpeedGrant) {
	f.speed = g.Speed
}

func (f *traitFolder) VisitHPBonus(g dnd5e.HPBonusGrant) {
	f.hpPerLevel += g.PerLevel
}

func (f *traitFolder) result() dnd5e.FixedData {
	return dnd5e.FixedData{
		Found:          true,
		Proficiencies:  MergeProficiencies(f.grants),
		AbilityBonuses: f.bonuses.Clone(),
		Languages:      appendUnique([]string{}, f.languages...),
		Spells:         appendUnique([]string{}, f.spells...),
		Speed:          f.speed,
		HPPerLevel:     f.hpPerLevel,
	}
}
