package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// BuildSheet assembles the display view of a draft. Fixed data is recomputed
// from the selection keys rather than read from the draft.
func (r *Resolver) BuildSheet(draft *dnd5e.CharacterDraft) *dnd5e.Sheet {
	if draft == nil {
		return nil
	}

	race := r.ResolveRace(draft.RaceID, draft.SubraceID)
	class := r.ResolveClass(draft.ClassID)
	bg := r.ResolveBackground(draft.BackgroundID)

	level := clampLevel(draft.Level)
	scores := draft.AbilityScores.WithBonuses(race.AbilityBonuses, bg.AbilityBonuses)
	profBonus := ProficiencyBonus(level)

	chosen := make([]dnd5e.ProficiencyGrant, 0, len(draft.ChosenSkills))
	for _, skill := range draft.ChosenSkills {
		chosen = append(chosen, dnd5e.ProficiencyGrant{Kind: dnd5e.ProficiencySkill, Key: skill})
	}
	languages := appendUnique([]string{}, race.Languages...)
	languages = appendUnique(languages, bg.Languages...)
	languages = appendUnique(languages, draft.ChosenLanguages...)

	profs := UnionBundles(race.Proficiencies, class.Proficiencies, bg.Proficiencies, MergeProficiencies(chosen))

	sheet := &dnd5e.Sheet{
		DraftID:          draft.ID,
		Name:             draft.Name,
		Level:            level,
		RaceName:         r.raceName(draft.RaceID, draft.SubraceID),
		AbilityScores:    scores,
		AbilityModifiers: make(map[dnd5e.Ability]int32, len(dnd5e.AllAbilities)),
		ProficiencyBonus: profBonus,
		Speed:            race.Speed,
		Proficiencies:    profs,
		SkillBonuses:     make(map[string]int32, len(dnd5e.AllSkills)),
		SavingThrows:     make(map[dnd5e.Ability]int32, len(dnd5e.AllAbilities)),
		Languages:        languages,
		Spells:           appendUnique(appendUnique([]string{}, race.Spells...), draft.KnownSpellIDs...),
		Feats:            []string{},
		Vision:           r.ResolveVision(draft),
	}

	if c, ok := r.tables.Class(draft.ClassID); ok {
		sheet.ClassName = c.Name
	}
	if b, ok := r.tables.Background(draft.BackgroundID); ok {
		sheet.BackgroundName = b.Name
	}

	for _, ability := range dnd5e.AllAbilities {
		sheet.AbilityModifiers[ability] = dnd5e.AbilityModifier(scores.Get(ability))
	}

	savingThrows := toSet(profs.SavingThrows)
	for _, ability := range dnd5e.AllAbilities {
		bonus := sheet.AbilityModifiers[ability]
		if _, ok := savingThrows[string(ability)]; ok {
			bonus += profBonus
		}
		sheet.SavingThrows[ability] = bonus
	}

	skills := toSet(profs.Skills)
	for skill, ability := range dnd5e.AllSkills {
		bonus := sheet.AbilityModifiers[ability]
		if _, ok := skills[skill]; ok {
			bonus += profBonus
		}
		sheet.SkillBonuses[skill] = bonus
	}

	sheet.MaxHitPoints = MaxHitPoints(class.HitDie, sheet.AbilityModifiers[dnd5e.AbilityConstitution], race.HPPerLevel, level)

	for _, id := range draft.FeatIDs {
		if f, ok := r.tables.Feat(id); ok {
			sheet.Feats = append(sheet.Feats, f.Name)
		}
	}
	if fs, ok := r.tables.FightingStyle(draft.FightingStyleID); ok {
		sheet.FightingStyle = fs.Name
	}

	return sheet
}

func (r *Resolver) raceName(raceID, subraceID string) string {
	race, ok := r.tables.Race(raceID)
	if !ok {
		return ""
	}
	if sub, ok := r.tables.Subrace(raceID, subraceID); ok {
		return fmt.Sprintf("%s (%s)", race.Name, sub.Name)
	}
	return race.Name
}

func toSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}
