package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// ResolveVision returns the longest grant per sense from the draft's race and
// subrace. Race traits are walked before subrace traits and a grant only
// replaces the current one when strictly longer, so ties keep the earlier
// trait. The source is always the race display name, with the subrace in
// parentheses when one is selected.
func (r *Resolver) ResolveVision(draft *dnd5e.CharacterDraft) dnd5e.VisionMap {
	out := dnd5e.NewVisionMap()
	if draft == nil {
		return out
	}

	race, ok := r.tables.Race(draft.RaceID)
	if !ok {
		return out
	}

	subrace, hasSubrace := r.tables.Subrace(draft.RaceID, draft.SubraceID)
	source := race.Name
	if hasSubrace {
		source = fmt.Sprintf("%s (%s)", race.Name, subrace.Name)
	}

	c := &visionCollector{best: out, source: source}
	for _, t := range race.Traits {
		t.Apply(c)
	}
	if hasSubrace {
		for _, t := range subrace.Traits {
			t.Apply(c)
		}
	}

	return out
}

type visionCollector struct {
	best   dnd5e.VisionMap
	source string
}

func (c *visionCollector) VisitVision(g dnd5e.VisionGrant) {
	current, tracked := c.best[g.Type]
	if !tracked {
		return
	}
	if g.Distance > current.Distance {
		c.best[g.Type] = dnd5e.VisionRecord{Distance: g.Distance, Source: c.source}
	}
}

func (c *visionCollector) VisitAbilityBonus(dnd5e.AbilityBonusGrant)    {}
func (c *visionCollector) VisitProficiency(dnd5e.ProficiencyTraitGrant) {}
func (c *visionCollector) VisitSpell(dnd5e.SpellGrant)                  {}
func (c *visionCollector) VisitLanguage(dnd5e.LanguageGrant)            {}
func (c *visionCollector) VisitSpeed(dnd5e.SpeedGrant)                  {}
func (c *visionCollector) VisitHPBonus(dnd5e.HPBonusGrant)              {}
