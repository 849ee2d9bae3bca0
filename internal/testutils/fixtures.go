package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// TestCharacterName is the default character name for test fixtures
const TestCharacterName = "Thorin Oakenshield"

// FixedNow is the instant fixture drafts are created at
var FixedNow = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

// CreateTestCharacterDraft creates a draft with no selections yet
func CreateTestCharacterDraft(id, playerID string) *dnd5e.CharacterDraft {
	return &dnd5e.CharacterDraft{
		ID:        id,
		PlayerID:  playerID,
		Name:      TestCharacterName,
		Level:     1,
		CreatedAt: FixedNow.Unix(),
		UpdatedAt: FixedNow.Unix(),
	}
}

// CreateTestMountainDwarfFighter creates a fully selected draft against the
// embedded reference data.
func CreateTestMountainDwarfFighter(id, playerID string) *dnd5e.CharacterDraft {
	draft := CreateTestCharacterDraft(id, playerID)
	draft.RaceID = "dwarf"
	draft.SubraceID = "mountain-dwarf"
	draft.ClassID = "fighter"
	draft.BackgroundID = "soldier"
	draft.AbilityScores = &dnd5e.AbilityScores{
		Strength:     15,
		Dexterity:    12,
		Constitution: 14,
		Intelligence: 8,
		Wisdom:       13,
		Charisma:     10,
	}
	draft.ChosenSkills = []string{"athletics", "perception"}
	return draft
}
