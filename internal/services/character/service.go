// Package character defines the interface for character sheet operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Service defines the interface for character sheet operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	GetPlayerDraft(ctx context.Context, input *GetPlayerDraftInput) (*GetPlayerDraftOutput, error)
	SaveDraft(ctx context.Context, input *SaveDraftInput) (*SaveDraftOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Section-based updates
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)
	UpdateLevel(ctx context.Context, input *UpdateLevelInput) (*UpdateLevelOutput, error)
	UpdateRace(ctx context.Context, input *UpdateRaceInput) (*UpdateRaceOutput, error)
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error)
	UpdateBackground(ctx context.Context, input *UpdateBackgroundInput) (*UpdateBackgroundOutput, error)
	UpdateAbilityScores(ctx context.Context, input *UpdateAbilityScoresInput) (*UpdateAbilityScoresOutput, error)
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
	UpdateSkills(ctx context.Context, input *UpdateSkillsInput) (*UpdateSkillsOutput, error)

	// Sheet
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)

	// Reference catalog
	ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error)
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	ListBackgrounds(ctx context.Context, input *ListBackgroundsInput) (*ListBackgroundsOutput, error)
	ListLanguages(ctx context.Context, input *ListLanguagesInput) (*ListLanguagesOutput, error)
	ListFeats(ctx context.Context, input *ListFeatsInput) (*ListFeatsOutput, error)
	ListFightingStyles(ctx context.Context, input *ListFightingStylesInput) (*ListFightingStylesOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	PlayerID string
	Name     string // Optional
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *dnd5e.CharacterDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *dnd5e.CharacterDraft
}

// GetPlayerDraftInput defines the request for getting a player's active draft
type GetPlayerDraftInput struct {
	PlayerID string
}

// GetPlayerDraftOutput defines the response for getting a player's active draft
type GetPlayerDraftOutput struct {
	Draft *dnd5e.CharacterDraft
}

// SaveDraftInput defines the request for saving a whole draft
type SaveDraftInput struct {
	Draft *dnd5e.CharacterDraft
}

// SaveDraftOutput defines the response for saving a whole draft
type SaveDraftOutput struct {
	Draft   *dnd5e.CharacterDraft
	Created bool
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct {
	Message string
}

// Section update types

// UpdateNameInput defines the request for updating a draft's name
type UpdateNameInput struct {
	DraftID string
	Name    string
}

// UpdateNameOutput defines the response for updating a draft's name
type UpdateNameOutput struct {
	Draft *dnd5e.CharacterDraft
}

// UpdateLevelInput defines the request for updating a draft's level
type UpdateLevelInput struct {
	DraftID string
	Level   int32
}

// UpdateLevelOutput defines the response for updating a draft's level
type UpdateLevelOutput struct {
	Draft *dnd5e.CharacterDraft
}

// UpdateRaceInput defines the request for updating a draft's race
type UpdateRaceInput struct {
	DraftID   string
	RaceID    string
	SubraceID string // Optional
}

// UpdateRaceOutput defines the response for updating a draft's race
type UpdateRaceOutput struct {
	Draft    *dnd5e.CharacterDraft
	Warnings []ValidationWarning
}

// UpdateClassInput defines the request for updating a draft's class
type UpdateClassInput struct {
	DraftID string
	ClassID string
}

// UpdateClassOutput defines the response for updating a draft's class
type UpdateClassOutput struct {
	Draft    *dnd5e.CharacterDraft
	Warnings []ValidationWarning
}

// UpdateBackgroundInput defines the request for updating a draft's background
type UpdateBackgroundInput struct {
	DraftID      string
	BackgroundID string
}

// UpdateBackgroundOutput defines the response for updating a draft's background
type UpdateBackgroundOutput struct {
	Draft *dnd5e.CharacterDraft
}

// UpdateAbilityScoresInput defines the request for setting base ability scores
type UpdateAbilityScoresInput struct {
	DraftID       string
	AbilityScores dnd5e.AbilityScores
}

// UpdateAbilityScoresOutput defines the response for setting base ability scores
type UpdateAbilityScoresOutput struct {
	Draft *dnd5e.CharacterDraft
}

// RollAbilityScoresInput defines the request for rolling ability scores
type RollAbilityScoresInput struct {
	Method string // Optional, defaults to engine.MethodStandard
}

// RollAbilityScoresOutput defines the response for rolling ability scores
type RollAbilityScoresOutput struct {
	Method string
	Rolls  []engine.AbilityRoll
}

// UpdateSkillsInput defines the request for choosing skills
type UpdateSkillsInput struct {
	DraftID  string
	SkillIDs []string
}

// UpdateSkillsOutput defines the response for choosing skills
type UpdateSkillsOutput struct {
	Draft    *dnd5e.CharacterDraft
	Warnings []ValidationWarning
}

// ValidationWarning is a non-blocking problem with a selection
type ValidationWarning struct {
	Field   string
	Message string
	Type    string
}

// Warning types
const (
	WarningSubraceCleared   = "subrace_cleared"
	WarningSkillsReset      = "skills_reset"
	WarningSkillNotOffered  = "skill_not_offered"
	WarningTooManySkills    = "too_many_skills"
	WarningNoClassSelected  = "no_class_selected"
	WarningSubraceAvailable = "subrace_available"
)

// Sheet types

// GetSheetInput defines the request for assembling a sheet
type GetSheetInput struct {
	DraftID string
}

// GetSheetOutput defines the response for assembling a sheet
type GetSheetOutput struct {
	Sheet *dnd5e.Sheet
}

// Catalog types

// ListRacesInput defines the request for listing races
type ListRacesInput struct{}

// ListRacesOutput defines the response for listing races
type ListRacesOutput struct {
	Races []*dnd5e.Race
}

// ListClassesInput defines the request for listing classes
type ListClassesInput struct{}

// ListClassesOutput defines the response for listing classes
type ListClassesOutput struct {
	Classes []*dnd5e.Class
}

// ListBackgroundsInput defines the request for listing backgrounds
type ListBackgroundsInput struct{}

// ListBackgroundsOutput defines the response for listing backgrounds
type ListBackgroundsOutput struct {
	Backgrounds []*dnd5e.Background
}

// ListLanguagesInput defines the request for listing languages
type ListLanguagesInput struct{}

// ListLanguagesOutput defines the response for listing languages
type ListLanguagesOutput struct {
	Languages []*dnd5e.Language
}

// ListFeatsInput defines the request for listing feats
type ListFeatsInput struct{}

// ListFeatsOutput defines the response for listing feats
type ListFeatsOutput struct {
	Feats []*dnd5e.Feat
}

// ListFightingStylesInput defines the request for listing fighting styles
type ListFightingStylesInput struct{}

// ListFightingStylesOutput defines the response for listing fighting styles
type ListFightingStylesOutput struct {
	FightingStyles []*dnd5e.FightingStyle
}
