package reference

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type racesFile struct {
	Races []raceRecord `yaml:"races"`
}

type classesFile struct {
	Classes []classRecord `yaml:"classes"`
}

type backgroundsFile struct {
	Backgrounds []backgroundRecord `yaml:"backgrounds"`
}

type languagesFile struct {
	Languages []languageRecord `yaml:"languages"`
}

type featsFile struct {
	Feats []featRecord `yaml:"feats"`
}

type fightingStylesFile struct {
	FightingStyles []fightingStyleRecord `yaml:"fighting_styles"`
}

type raceRecord struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Size        string          `yaml:"size"`
	Languages   []string        `yaml:"languages"`
	Spells      []string        `yaml:"spells"`
	Traits      []traitRecord   `yaml:"traits"`
	Subraces    []subraceRecord `yaml:"subraces"`
}

type subraceRecord struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Traits      []traitRecord `yaml:"traits"`
}

// traitRecord is the loose on-disk shape of a trait. Every optional field
// becomes one typed grant.
type traitRecord struct {
	Name           string                   `yaml:"name"`
	Description    string                   `yaml:"description"`
	AbilityBonuses map[string]int32         `yaml:"ability_bonuses"`
	Proficiencies  []dnd5e.ProficiencyGrant `yaml:"proficiencies"`
	Spells         []string                 `yaml:"spells"`
	Languages      []string                 `yaml:"languages"`
	Vision         []visionRecord           `yaml:"vision"`
	Speed          *int32                   `yaml:"speed"`
	HPPerLevel     *int32                   `yaml:"hp_per_level"`
}

type visionRecord struct {
	Type     string `yaml:"type"`
	Distance int32  `yaml:"distance"`
}

type classRecord struct {
	ID                  string                   `yaml:"id"`
	Name                string                   `yaml:"name"`
	Description         string                   `yaml:"description"`
	HitDie              int32                    `yaml:"hit_die"`
	PrimaryAbility      string                   `yaml:"primary_ability"`
	SpellcastingAbility string                   `yaml:"spellcasting_ability"`
	SkillChoiceCount    int32                    `yaml:"skill_choice_count"`
	SkillOptions        []string                 `yaml:"skill_options"`
	Proficiencies       []dnd5e.ProficiencyGrant `yaml:"proficiencies"`
}

type backgroundRecord struct {
	ID             string                   `yaml:"id"`
	Name           string                   `yaml:"name"`
	Description    string                   `yaml:"description"`
	Feature        string                   `yaml:"feature"`
	AbilityBonuses map[string]int32         `yaml:"ability_bonuses"`
	Proficiencies  []dnd5e.ProficiencyGrant `yaml:"proficiencies"`
	Languages      []string                 `yaml:"languages"`
}

type languageRecord struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Exotic bool   `yaml:"exotic"`
	Script string `yaml:"script"`
}

type featRecord struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Prerequisite string `yaml:"prerequisite"`
}

type fightingStyleRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

func (r raceRecord) toRace() (*dnd5e.Race, error) {
	traits, err := toTraits(r.Traits)
	if err != nil {
		return nil, err
	}
	race := &dnd5e.Race{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Size:        r.Size,
		Languages:   r.Languages,
		Spells:      r.Spells,
		Traits:      traits,
	}
	for _, sr := range r.Subraces {
		traits, err := toTraits(sr.Traits)
		if err != nil {
			return nil, errors.Wrapf(err, "subrace %s", sr.ID)
		}
		race.Subraces = append(race.Subraces, dnd5e.Subrace{
			ID:          sr.ID,
			Name:        sr.Name,
			Description: sr.Description,
			Traits:      traits,
		})
	}
	return race, nil
}

func (r classRecord) toClass() (*dnd5e.Class, error) {
	if err := validateGrants(r.Proficiencies); err != nil {
		return nil, err
	}
	primary, err := optionalAbility(r.PrimaryAbility)
	if err != nil {
		return nil, err
	}
	casting, err := optionalAbility(r.SpellcastingAbility)
	if err != nil {
		return nil, err
	}
	return &dnd5e.Class{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		HitDie:              r.HitDie,
		PrimaryAbility:      primary,
		SpellcastingAbility: casting,
		SkillChoiceCount:    r.SkillChoiceCount,
		SkillOptions:        r.SkillOptions,
		Proficiencies:       r.Proficiencies,
	}, nil
}

func (r backgroundRecord) toBackground() (*dnd5e.Background, error) {
	if err := validateGrants(r.Proficiencies); err != nil {
		return nil, err
	}
	bonuses, err := toBonuses(r.AbilityBonuses)
	if err != nil {
		return nil, err
	}
	return &dnd5e.Background{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Feature:        r.Feature,
		AbilityBonuses: bonuses,
		Proficiencies:  r.Proficiencies,
		Languages:      r.Languages,
	}, nil
}

func toTraits(records []traitRecord) ([]dnd5e.Trait, error) {
	traits := make([]dnd5e.Trait, 0, len(records))
	for _, rec := range records {
		t, err := rec.toTrait()
		if err != nil {
			return nil, errors.Wrapf(err, "trait %q", rec.Name)
		}
		traits = append(traits, t)
	}
	return traits, nil
}

// toTrait emits grants in a fixed order: bonuses, proficiencies, spells,
// languages, vision, speed, hit points.
func (r traitRecord) toTrait() (dnd5e.Trait, error) {
	t := dnd5e.Trait{Name: r.Name, Description: r.Description}

	if len(r.AbilityBonuses) > 0 {
		bonuses, err := toBonuses(r.AbilityBonuses)
		if err != nil {
			return t, err
		}
		t.Grants = append(t.Grants, dnd5e.AbilityBonusGrant{Bonuses: bonuses})
	}
	if len(r.Proficiencies) > 0 {
		if err := validateGrants(r.Proficiencies); err != nil {
			return t, err
		}
		t.Grants = append(t.Grants, dnd5e.ProficiencyTraitGrant{Proficiencies: r.Proficiencies})
	}
	if len(r.Spells) > 0 {
		t.Grants = append(t.Grants, dnd5e.SpellGrant{SpellIDs: r.Spells})
	}
	if len(r.Languages) > 0 {
		t.Grants = append(t.Grants, dnd5e.LanguageGrant{LanguageIDs: r.Languages})
	}
	for _, v := range r.Vision {
		if !isVisionType(dnd5e.VisionType(v.Type)) {
			return t, errors.InvalidArgumentf("unknown vision type %q", v.Type)
		}
		if v.Distance < 0 {
			return t, errors.InvalidArgumentf("negative vision distance %d", v.Distance)
		}
		t.Grants = append(t.Grants, dnd5e.VisionGrant{Type: dnd5e.VisionType(v.Type), Distance: v.Distance})
	}
	if r.Speed != nil {
		if *r.Speed <= 0 {
			return t, errors.InvalidArgumentf("speed must be positive, got %d", *r.Speed)
		}
		t.Grants = append(t.Grants, dnd5e.SpeedGrant{Speed: *r.Speed})
	}
	if r.HPPerLevel != nil {
		t.Grants = append(t.Grants, dnd5e.HPBonusGrant{PerLevel: *r.HPPerLevel})
	}
	return t, nil
}

func toBonuses(raw map[string]int32) (dnd5e.AbilityBonuses, error) {
	out := make(dnd5e.AbilityBonuses, len(raw))
	for key, bonus := range raw {
		ability := dnd5e.Ability(key)
		if !isAbility(ability) {
			return nil, errors.InvalidArgumentf("unknown ability %q", key)
		}
		out[ability] = bonus
	}
	return out, nil
}

func optionalAbility(raw string) (dnd5e.Ability, error) {
	if raw == "" {
		return "", nil
	}
	if !isAbility(dnd5e.Ability(raw)) {
		return "", errors.InvalidArgumentf("unknown ability %q", raw)
	}
	return dnd5e.Ability(raw), nil
}

func validateGrants(grants []dnd5e.ProficiencyGrant) error {
	for _, g := range grants {
		switch g.Kind {
		case dnd5e.ProficiencyArmor, dnd5e.ProficiencyWeapon, dnd5e.ProficiencyTool,
			dnd5e.ProficiencySkill, dnd5e.ProficiencySavingThrow:
		default:
			return errors.InvalidArgumentf("unknown proficiency type %q", g.Kind)
		}
	}
	return nil
}

func isAbility(a dnd5e.Ability) bool {
	for _, known := range dnd5e.AllAbilities {
		if a == known {
			return true
		}
	}
	return false
}

func isVisionType(v dnd5e.VisionType) bool {
	for _, known := range dnd5e.AllVisionTypes {
		if v == known {
			return true
		}
	}
	return false
}
