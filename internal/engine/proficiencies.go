package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// MergeProficiencies classifies grants into the five proficiency categories.
// Order of first appearance is kept, a key appears at most once per category,
// grants with neither key nor category and grants of unknown kind are dropped.
// Every category of the result is non-nil.
func MergeProficiencies(grants []dnd5e.ProficiencyGrant) dnd5e.ProficiencyBundle {
	out := dnd5e.NewProficiencyBundle()
	seen := make(map[dnd5e.ProficiencyKind]map[string]struct{})

	for _, g := range grants {
		key := g.EffectiveKey()
		if key == "" {
			continue
		}

		var target *[]string
		switch g.Kind {
		case dnd5e.ProficiencySkill:
			target = &out.Skills
		case dnd5e.ProficiencyTool:
			target = &out.Tools
		case dnd5e.ProficiencyWeapon:
			target = &out.Weapons
		case dnd5e.ProficiencyArmor:
			target = &out.Armors
		case dnd5e.ProficiencySavingThrow:
			target = &out.SavingThrows
		default:
			continue
		}

		if seen[g.Kind] == nil {
			seen[g.Kind] = make(map[string]struct{})
		}
		if _, dup := seen[g.Kind][key]; dup {
			continue
		}
		seen[g.Kind][key] = struct{}{}
		*target = append(*target, key)
	}

	return out
}

// UnionBundles concatenates bundles category by category, dropping repeats
func UnionBundles(bundles ...dnd5e.ProficiencyBundle) dnd5e.ProficiencyBundle {
	out := dnd5e.NewProficiencyBundle()
	out.Skills = appendUnique(out.Skills, collect(bundles, func(b dnd5e.ProficiencyBundle) []string { return b.Skills })...)
	out.Tools = appendUnique(out.Tools, collect(bundles, func(b dnd5e.ProficiencyBundle) []string { return b.Tools })...)
	out.Weapons = appendUnique(out.Weapons, collect(bundles, func(b dnd5e.ProficiencyBundle) []string { return b.Weapons })...)
	out.Armors = appendUnique(out.Armors, collect(bundles, func(b dnd5e.ProficiencyBundle) []string { return b.Armors })...)
	out.SavingThrows = appendUnique(out.SavingThrows, collect(bundles, func(b dnd5e.ProficiencyBundle) []string { return b.SavingThrows })...)
	return out
}

func collect(bundles []dnd5e.ProficiencyBundle, field func(dnd5e.ProficiencyBundle) []string) []string {
	var out []string
	for _, b := range bundles {
		out = append(out, field(b)...)
	}
	return out
}

// appendUnique appends values not already present in dst, keeping order
func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]struct{}, len(dst)+len(values))
	for _, v := range dst {
		seen[v] = struct{}{}
	}
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}
