package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func testSheet() *dnd5e.Sheet {
	vision := dnd5e.NewVisionMap()
	vision[dnd5e.VisionDarkvision] = dnd5e.VisionRecord{Distance: 60, Source: "Dwarf (Mountain Dwarf)"}

	return &dnd5e.Sheet{
		DraftID:        "draft_1",
		Name:           "Bruenor Battlehammer",
		Level:          3,
		RaceName:       "Dwarf (Mountain Dwarf)",
		ClassName:      "Fighter",
		BackgroundName: "Soldier",
		AbilityScores:  dnd5e.AbilityScores{Strength: 17, Dexterity: 12, Constitution: 16, Intelligence: 8, Wisdom: 13, Charisma: 10},
		AbilityModifiers: map[dnd5e.Ability]int32{
			dnd5e.AbilityStrength:     3,
			dnd5e.AbilityDexterity:    1,
			dnd5e.AbilityConstitution: 3,
			dnd5e.AbilityIntelligence: -1,
			dnd5e.AbilityWisdom:       1,
			dnd5e.AbilityCharisma:     0,
		},
		ProficiencyBonus: 2,
		Speed:            25,
		MaxHitPoints:     31,
		Proficiencies: dnd5e.ProficiencyBundle{
			Skills:       []string{"athletics", "intimidation"},
			Tools:        []string{"category:gaming-set"},
			Weapons:      []string{"category:martial", "battleaxe"},
			Armors:       []string{"category:heavy", "shield"},
			SavingThrows: []string{"str", "con"},
		},
		SkillBonuses: map[string]int32{"athletics": 5, "intimidation": 2, "stealth": 1},
		Languages:    []string{"common", "dwarvish"},
		Spells:       []string{},
		Feats:        []string{},
		Vision:       vision,
	}
}

func TestRender(t *testing.T) {
	out, err := Render(testSheet())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderNonLatinName(t *testing.T) {
	s := testSheet()
	s.Name = "Ærin Þorsdóttir"

	out, err := Render(s)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderEmptySheet(t *testing.T) {
	out, err := Render(&dnd5e.Sheet{Vision: dnd5e.NewVisionMap()})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRenderNil(t *testing.T) {
	_, err := Render(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDisplayKey(t *testing.T) {
	assert.Equal(t, "Sleight Of Hand", displayKey("sleight-of-hand"))
	assert.Equal(t, "All Martial", displayKey("category:martial"))
	assert.Equal(t, "Darkvision", displayKey("darkvision"))
	assert.Equal(t, "", displayKey(""))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+0", signed(0))
	assert.Equal(t, "+3", signed(3))
	assert.Equal(t, "-1", signed(-1))
}
