// Package engine resolves what a character's selections grant: it folds the
// traits of a race, class or background into flat fixed data, tracks the best
// vision per sense and assembles the final sheet. Every function here is pure
// and reads only the tables it is given.
package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Engine resolves selections against the reference tables
type Engine interface {
	ResolveRace(raceID, subraceID string) dnd5e.FixedData
	ResolveClass(classID string) dnd5e.ClassData
	ResolveBackground(backgroundID string) dnd5e.FixedData
	ResolveVision(draft *dnd5e.CharacterDraft) dnd5e.VisionMap
	BuildSheet(draft *dnd5e.CharacterDraft) *dnd5e.Sheet
}

// Tables is the read side of the reference registry the engine depends on
type Tables interface {
	Race(id string) (*dnd5e.Race, bool)
	Subrace(raceID, subraceID string) (*dnd5e.Subrace, bool)
	Class(id string) (*dnd5e.Class, bool)
	Background(id string) (*dnd5e.Background, bool)
	Feat(id string) (*dnd5e.Feat, bool)
	FightingStyle(id string) (*dnd5e.FightingStyle, bool)
}
