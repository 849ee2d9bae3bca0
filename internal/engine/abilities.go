package engine

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Ability score rolling methods
const (
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"
)

// AbilityRoll is one rolled ability score
type AbilityRoll struct {
	Dice    []int32 `json:"dice"`
	Dropped []int32 `json:"dropped,omitempty"`
	Total   int32   `json:"total"`
}

// RollAbilityScores rolls six ability scores with the given method. An empty
// method means MethodStandard.
func RollAbilityScores(roller dice.Roller, method string) ([]AbilityRoll, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	count, drop := 4, 1
	switch method {
	case "", MethodStandard:
	case MethodClassic:
		count, drop = 3, 0
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}

	rolls := make([]AbilityRoll, 0, len(dnd5e.AllAbilities))
	for range dnd5e.AllAbilities {
		values, err := roller.RollN(count, 6)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll ability score")
		}
		rolls = append(rolls, keepHighest(values, drop))
	}
	return rolls, nil
}

// keepHighest drops the lowest n dice; kept dice stay in roll order
func keepHighest(values []int, n int) AbilityRoll {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	dropped := make(map[int]bool, n)
	for i := 0; i < n && i < len(order); i++ {
		dropped[order[i]] = true
	}

	var out AbilityRoll
	for i, v := range values {
		if dropped[i] {
			out.Dropped = append(out.Dropped, int32(v))
			continue
		}
		out.Dice = append(out.Dice, int32(v))
		out.Total += int32(v)
	}
	return out
}

// ProficiencyBonus returns the proficiency bonus for a level, clamped to 1..20
func ProficiencyBonus(level int32) int32 {
	level = clampLevel(level)
	return 2 + (level-1)/4
}

// MaxHitPoints uses the fixed-average rule: full hit die at level 1, then
// half the die plus one per level. Each level grants at least one point.
func MaxHitPoints(hitDie, conMod, hpPerLevel, level int32) int32 {
	if hitDie <= 0 {
		return 0
	}
	level = clampLevel(level)

	total := max(hitDie+conMod, 1)
	perLevel := max(hitDie/2+1+conMod, 1)
	total += perLevel * (level - 1)
	total += hpPerLevel * level
	return total
}

func clampLevel(level int32) int32 {
	if level < 1 {
		return 1
	}
	if level > dnd5e.MaxLevel {
		return dnd5e.MaxLevel
	}
	return level
}
