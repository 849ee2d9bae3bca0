// Package characterdraft persists in-progress character drafts
package characterdraft

//go:generate mockgen -destination=mock/mock_repository.go -package=characterdraftmock github.com/KirkDiggler/rpg-sheet/internal/repositories/character_draft Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// Repository stores drafts with one active draft per player
type Repository interface {
	// Create stores a new draft and makes it the player's active draft,
	// replacing any previous one.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a draft with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID
	// Returns errors.NotFound if the draft doesn't exist or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByPlayerID retrieves the player's active draft
	// Returns errors.NotFound if the player has no draft
	GetByPlayerID(ctx context.Context, input GetByPlayerIDInput) (*GetByPlayerIDOutput, error)

	// Update overwrites an existing draft
	// Returns errors.NotFound if the draft doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Upsert writes the draft whether or not it exists yet. Used when a
	// session ends with unsaved changes.
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// Delete removes a draft and its player mapping
	// Returns errors.NotFound if the draft doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a character draft
type CreateInput struct {
	Draft *dnd5e.CharacterDraft
}

// CreateOutput defines the output for creating a character draft
type CreateOutput struct {
	Draft *dnd5e.CharacterDraft
}

// GetInput defines the input for getting a character draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character draft
type GetOutput struct {
	Draft *dnd5e.CharacterDraft
}

// GetByPlayerIDInput defines the input for getting a player's draft
type GetByPlayerIDInput struct {
	PlayerID string
}

// GetByPlayerIDOutput defines the output for getting a player's draft
type GetByPlayerIDOutput struct {
	Draft *dnd5e.CharacterDraft
}

// UpdateInput defines the input for updating a character draft
type UpdateInput struct {
	Draft *dnd5e.CharacterDraft
}

// UpdateOutput defines the output for updating a character draft
type UpdateOutput struct {
	Draft *dnd5e.CharacterDraft
}

// UpsertInput defines the input for saving a character draft
type UpsertInput struct {
	Draft *dnd5e.CharacterDraft
}

// UpsertOutput defines the output for saving a character draft
type UpsertOutput struct {
	Draft   *dnd5e.CharacterDraft
	Created bool
}

// DeleteInput defines the input for deleting a character draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character draft
type DeleteOutput struct{}
