package character

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// ListRaces returns every race in display order
func (o *Orchestrator) ListRaces(_ context.Context, _ *character.ListRacesInput) (*character.ListRacesOutput, error) {
	return &character.ListRacesOutput{Races: o.catalog.Races()}, nil
}

// ListClasses returns every class in display order
func (o *Orchestrator) ListClasses(_ context.Context, _ *character.ListClassesInput) (*character.ListClassesOutput, error) {
	return &character.ListClassesOutput{Classes: o.catalog.Classes()}, nil
}

// ListBackgrounds returns every background in display order
func (o *Orchestrator) ListBackgrounds(_ context.Context, _ *character.ListBackgroundsInput) (*character.ListBackgroundsOutput, error) {
	return &character.ListBackgroundsOutput{Backgrounds: o.catalog.Backgrounds()}, nil
}

// ListLanguages returns every language in display order
func (o *Orchestrator) ListLanguages(_ context.Context, _ *character.ListLanguagesInput) (*character.ListLanguagesOutput, error) {
	return &character.ListLanguagesOutput{Languages: o.catalog.Languages()}, nil
}

// ListFeats returns every feat in display order
func (o *Orchestrator) ListFeats(_ context.Context, _ *character.ListFeatsInput) (*character.ListFeatsOutput, error) {
	return &character.ListFeatsOutput{Feats: o.catalog.Feats()}, nil
}

// ListFightingStyles returns every fighting style in display order
func (o *Orchestrator) ListFightingStyles(_ context.Context, _ *character.ListFightingStylesInput) (*character.ListFightingStylesOutput, error) {
	return &character.ListFightingStylesOutput{FightingStyles: o.catalog.FightingStyles()}, nil
}
