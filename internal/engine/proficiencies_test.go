package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

func TestMergeProficiencies(t *testing.T) {
	testCases := []struct {
		name     string
		grants   []dnd5e.ProficiencyGrant
		expected dnd5e.ProficiencyBundle
	}{
		{
			name:     "no grants yields every category empty",
			grants:   nil,
			expected: dnd5e.NewProficiencyBundle(),
		},
		{
			name: "duplicate skill collapses to one entry",
			grants: []dnd5e.ProficiencyGrant{
				{Kind: dnd5e.ProficiencySkill, Key: dnd5e.SkillStealth},
				{Kind: dnd5e.ProficiencySkill, Key: dnd5e.SkillStealth},
			},
			expected: dnd5e.ProficiencyBundle{
				Skills:       []string{dnd5e.SkillStealth},
				Tools:        []string{},
				Weapons:      []string{},
				Armors:       []string{},
				SavingThrows: []string{},
			},
		},
		{
			name: "category only grant uses placeholder",
			grants: []dnd5e.ProficiencyGrant{
				{Kind: dnd5e.ProficiencyArmor, Category: "light"},
				{Kind: dnd5e.ProficiencyArmor, Key: "shield", Category: "shields"},
			},
			expected: dnd5e.ProficiencyBundle{
				Skills:       []string{},
				Tools:        []string{},
				Weapons:      []string{},
				Armors:       []string{"category:light", "shield"},
				SavingThrows: []string{},
			},
		},
		{
			name: "grant without key or category is dropped",
			grants: []dnd5e.ProficiencyGrant{
				{Kind: dnd5e.ProficiencyTool},
				{Kind: dnd5e.ProficiencyTool, Key: "thieves-tools"},
			},
			expected: dnd5e.ProficiencyBundle{
				Skills:       []string{},
				Tools:        []string{"thieves-tools"},
				Weapons:      []string{},
				Armors:       []string{},
				SavingThrows: []string{},
			},
		},
		{
			name: "unknown kind is ignored",
			grants: []dnd5e.ProficiencyGrant{
				{Kind: "language", Key: "elvish"},
				{Kind: dnd5e.ProficiencySavingThrow, Key: "dex"},
			},
			expected: dnd5e.ProficiencyBundle{
				Skills:       []string{},
				Tools:        []string{},
				Weapons:      []string{},
				Armors:       []string{},
				SavingThrows: []string{"dex"},
			},
		},
		{
			name: "same key in different categories is kept in both",
			grants: []dnd5e.ProficiencyGrant{
				{Kind: dnd5e.ProficiencyWeapon, Key: "net"},
				{Kind: dnd5e.ProficiencyTool, Key: "net"},
				{Kind: dnd5e.ProficiencyWeapon, Key: "dagger"},
				{Kind: dnd5e.ProficiencyWeapon, Key: "net"},
			},
			expected: dnd5e.ProficiencyBundle{
				Skills:       []string{},
				Tools:        []string{"net"},
				Weapons:      []string{"net", "dagger"},
				Armors:       []string{},
				SavingThrows: []string{},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, engine.MergeProficiencies(tc.grants))
		})
	}
}

func TestUnionBundles(t *testing.T) {
	a := dnd5e.NewProficiencyBundle()
	a.Skills = []string{dnd5e.SkillPerception}
	a.Weapons = []string{"longsword"}

	b := dnd5e.NewProficiencyBundle()
	b.Skills = []string{dnd5e.SkillStealth, dnd5e.SkillPerception}
	b.SavingThrows = []string{"dex"}

	out := engine.UnionBundles(a, b)

	assert.Equal(t, []string{dnd5e.SkillPerception, dnd5e.SkillStealth}, out.Skills)
	assert.Equal(t, []string{"longsword"}, out.Weapons)
	assert.Equal(t, []string{"dex"}, out.SavingThrows)
	assert.NotNil(t, out.Tools)
	assert.Empty(t, out.Tools)
}
