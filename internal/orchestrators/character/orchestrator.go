// Package character implements the character sheet orchestrator
package character

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	draftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character_draft"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// MaxNameLength bounds a character name
const MaxNameLength = 64

// Catalog is the reference data selections are validated against
type Catalog interface {
	engine.Tables
	Races() []*dnd5e.Race
	Classes() []*dnd5e.Class
	Backgrounds() []*dnd5e.Background
	Languages() []*dnd5e.Language
	Feats() []*dnd5e.Feat
	FightingStyles() []*dnd5e.FightingStyle
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterDraftRepo draftrepo.Repository
	Engine             engine.Engine
	Catalog            Catalog
	DiceRoller         dice.Roller
	Clock              clock.Clock
	IDGenerator        idgen.Generator

	// DraftTTL extends a draft's expiry on every write; zero leaves expiry
	// to the repository default.
	DraftTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterDraftRepo == nil {
		vb.RequiredField("CharacterDraftRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.DraftTTL < 0 {
		vb.Field("DraftTTL", "cannot be negative")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterDraftRepo draftrepo.Repository
	engine             engine.Engine
	catalog            Catalog
	diceRoller         dice.Roller
	clock              clock.Clock
	idGenerator        idgen.Generator
	draftTTL           time.Duration
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterDraftRepo: cfg.CharacterDraftRepo,
		engine:             cfg.Engine,
		catalog:            cfg.Catalog,
		diceRoller:         cfg.DiceRoller,
		clock:              c,
		idGenerator:        cfg.IDGenerator,
		draftTTL:           cfg.DraftTTL,
	}, nil
}

var _ character.Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft starts a new draft and makes it the player's active one
func (o *Orchestrator) CreateDraft(ctx context.Context, input *character.CreateDraftInput) (*character.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateMaxLength("name", input.Name, MaxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	draft := &dnd5e.CharacterDraft{
		ID:        o.idGenerator.Generate(),
		PlayerID:  input.PlayerID,
		Name:      input.Name,
		Level:     1,
		CreatedAt: now.Unix(),
	}
	o.touch(draft)

	if _, err := o.characterDraftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft}); err != nil {
		return nil, errors.Wrap(err, "failed to create draft").WithMeta("player_id", input.PlayerID)
	}

	slog.InfoContext(ctx, "created character draft",
		"draft_id", draft.ID,
		"player_id", draft.PlayerID)

	return &character.CreateDraftOutput{Draft: draft}, nil
}

// GetDraft retrieves a draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *character.GetDraftInput) (*character.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &character.GetDraftOutput{Draft: draft}, nil
}

// GetPlayerDraft retrieves the player's active draft
func (o *Orchestrator) GetPlayerDraft(ctx context.Context, input *character.GetPlayerDraftInput) (*character.GetPlayerDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterDraftRepo.GetByPlayerID(ctx, draftrepo.GetByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get player draft").WithMeta("player_id", input.PlayerID)
	}

	return &character.GetPlayerDraftOutput{Draft: out.Draft}, nil
}

// SaveDraft writes a whole draft, creating it if needed. Fixed data is
// recomputed from the selection keys; whatever the caller sent is ignored.
func (o *Orchestrator) SaveDraft(ctx context.Context, input *character.SaveDraftInput) (*character.SaveDraftOutput, error) {
	if input == nil || input.Draft == nil {
		return nil, errors.InvalidArgument("draft is required")
	}

	draft := input.Draft
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", draft.ID, vb)
	errors.ValidateRequired("playerID", draft.PlayerID, vb)
	errors.ValidateMaxLength("name", draft.Name, MaxNameLength, vb)
	if draft.Level != 0 {
		errors.ValidateRange("level", int(draft.Level), 1, dnd5e.MaxLevel, vb)
	}
	if draft.AbilityScores != nil {
		validateScores(*draft.AbilityScores, vb)
	}
	for _, skill := range draft.ChosenSkills {
		if _, ok := dnd5e.AllSkills[skill]; !ok {
			vb.InvalidField("skillIDs", "unknown skill "+skill)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := o.checkSelections(draft); err != nil {
		return nil, err
	}

	if draft.Level == 0 {
		draft.Level = 1
	}
	if draft.CreatedAt == 0 {
		draft.CreatedAt = o.clock.Now().Unix()
	}
	o.refreshFixedData(draft)
	o.touch(draft)

	out, err := o.characterDraftRepo.Upsert(ctx, draftrepo.UpsertInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save draft").WithMeta("draft_id", draft.ID)
	}

	slog.InfoContext(ctx, "saved character draft",
		"draft_id", draft.ID,
		"player_id", draft.PlayerID,
		"created", out.Created)

	return &character.SaveDraftOutput{Draft: out.Draft, Created: out.Created}, nil
}

// checkSelections rejects selection keys missing from the reference tables
func (o *Orchestrator) checkSelections(draft *dnd5e.CharacterDraft) error {
	if draft.RaceID != "" {
		if _, ok := o.catalog.Race(draft.RaceID); !ok {
			return errors.NotFoundf("race %s not found", draft.RaceID).WithMeta("race_id", draft.RaceID)
		}
	}
	if draft.SubraceID != "" {
		if _, ok := o.catalog.Subrace(draft.RaceID, draft.SubraceID); !ok {
			return errors.NotFoundf("subrace %s not found for race %s", draft.SubraceID, draft.RaceID).
				WithMeta("race_id", draft.RaceID).
				WithMeta("subrace_id", draft.SubraceID)
		}
	}
	if draft.ClassID != "" {
		if _, ok := o.catalog.Class(draft.ClassID); !ok {
			return errors.NotFoundf("class %s not found", draft.ClassID).WithMeta("class_id", draft.ClassID)
		}
	}
	if draft.BackgroundID != "" {
		if _, ok := o.catalog.Background(draft.BackgroundID); !ok {
			return errors.NotFoundf("background %s not found", draft.BackgroundID).
				WithMeta("background_id", draft.BackgroundID)
		}
	}
	return nil
}

// DeleteDraft removes a draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *character.DeleteDraftInput) (*character.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.characterDraftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft").WithMeta("draft_id", input.DraftID)
	}

	slog.InfoContext(ctx, "deleted character draft", "draft_id", input.DraftID)

	return &character.DeleteDraftOutput{Message: "draft deleted"}, nil
}

// Section-based update methods

// UpdateName sets the character name
func (o *Orchestrator) UpdateName(ctx context.Context, input *character.UpdateNameInput) (*character.UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, MaxNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Name = input.Name
	if err := o.updateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &character.UpdateNameOutput{Draft: draft}, nil
}

// UpdateLevel sets the character level
func (o *Orchestrator) UpdateLevel(ctx context.Context, input *character.UpdateLevelInput) (*character.UpdateLevelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	errors.ValidateRange("level", int(input.Level), 1, dnd5e.MaxLevel, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Level = input.Level
	if err := o.updateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &character.UpdateLevelOutput{Draft: draft}, nil
}

// UpdateRace selects a race and optional subrace and recomputes the race's
// fixed data. A previous subrace that does not belong to the new race is
// dropped with a warning.
func (o *Orchestrator) UpdateRace(ctx context.Context, input *character.UpdateRaceInput) (*character.UpdateRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	errors.ValidateRequired("raceID", input.RaceID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	race, ok := o.catalog.Race(input.RaceID)
	if !ok {
		return nil, errors.NotFoundf("race %s not found", input.RaceID).WithMeta("race_id", input.RaceID)
	}
	if input.SubraceID != "" {
		if _, ok := o.catalog.Subrace(input.RaceID, input.SubraceID); !ok {
			return nil, errors.NotFoundf("subrace %s not found for race %s", input.SubraceID, input.RaceID).
				WithMeta("race_id", input.RaceID).
				WithMeta("subrace_id", input.SubraceID)
		}
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	warnings := []character.ValidationWarning{}

	subraceID := input.SubraceID
	if subraceID == "" && draft.SubraceID != "" {
		if _, ok := o.catalog.Subrace(input.RaceID, draft.SubraceID); ok {
			subraceID = draft.SubraceID
		} else {
			warnings = append(warnings, character.ValidationWarning{
				Field:   "subraceID",
				Message: "previous subrace " + draft.SubraceID + " does not belong to " + race.Name,
				Type:    character.WarningSubraceCleared,
			})
		}
	}
	if subraceID == "" && len(race.Subraces) > 0 {
		warnings = append(warnings, character.ValidationWarning{
			Field:   "subraceID",
			Message: race.Name + " has subraces to choose from",
			Type:    character.WarningSubraceAvailable,
		})
	}

	draft.RaceID = input.RaceID
	draft.SubraceID = subraceID
	fixed := o.engine.ResolveRace(draft.RaceID, draft.SubraceID)
	draft.FixedRace = &fixed

	if err := o.updateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &character.UpdateRaceOutput{Draft: draft, Warnings: warnings}, nil
}

// UpdateClass selects a class and recomputes its fixed data. Switching to a
// different class clears the chosen skills.
func (o *Orchestrator) UpdateClass(ctx context.Context, input *character.UpdateClassInput) (*character.UpdateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	errors.ValidateRequired("classID", input.ClassID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, ok := o.catalog.Class(input.ClassID); !ok {
		return nil, errors.NotFoundf("class %s not found", input.ClassID).WithMeta("class_id", input.ClassID)
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	warnings := []character.ValidationWarning{}
	if draft.ClassID != input.ClassID && len(draft.ChosenSkills) > 0 {
		draft.ChosenSkills = nil
		warnings = append(warnings, character.ValidationWarning{
			Field:   "skillIDs",
			Message: "skill choices were cleared for the new class",
			Type:    character.WarningSkillsReset,
		})
	}

	draft.ClassID = input.ClassID
	fixed := o.engine.ResolveClass(draft.ClassID)
	draft.FixedClass = &fixed

	if err := o.updateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &character.UpdateClassOutput{Draft: draft, Warnings: warnings}, nil
}

// UpdateBackground selects a background and recomputes its fixed data
func (o *Orchestrator) UpdateBackground(ctx context.Context, input *character.UpdateBackgroundInput) (*character.UpdateBackgroundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	errors.ValidateRequired("backgroundID", input.BackgroundID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, ok := o.catalog.Background(input.BackgroundID); !ok {
		return nil, errors.NotFoundf("background %s not found", input.BackgroundID).
			WithMeta("background_id", input.BackgroundID)
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.BackgroundID = input.BackgroundID
	fixed := o.engine.ResolveBackground(draft.BackgroundID)
	draft.FixedBackground = &fixed

	if err := o.updateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &character.UpdateBackgroundOutput{Draft: draft}, nil
}

// UpdateAbilityScores sets the base scores before racial and background bonuses
func (o *Orchestrator) UpdateAbilityScores(ctx context.Context, input *character.UpdateAbilityScoresInput) (*character.UpdateAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	validateScores(input.AbilityScores, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	scores := input.AbilityScores
	draft.AbilityScores = &scores

	if err := o.updateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &character.UpdateAbilityScoresOutput{Draft: draft}, nil
}

// RollAbilityScores rolls a set of six scores for the player to assign
func (o *Orchestrator) RollAbilityScores(ctx context.Context, input *character.RollAbilityScoresInput) (*character.RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	method := input.Method
	if method == "" {
		method = engine.MethodStandard
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("method", method, []string{engine.MethodStandard, engine.MethodClassic}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	rolls, err := engine.RollAbilityScores(o.diceRoller, method)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores").WithMeta("method", method)
	}

	slog.DebugContext(ctx, "rolled ability scores", "method", method, "count", len(rolls))

	return &character.RollAbilityScoresOutput{Method: method, Rolls: rolls}, nil
}

// UpdateSkills records the player's skill choices. Unknown skills are
// rejected; choices the class does not offer only produce warnings.
func (o *Orchestrator) UpdateSkills(ctx context.Context, input *character.UpdateSkillsInput) (*character.UpdateSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", input.DraftID, vb)
	for _, skill := range input.SkillIDs {
		if _, ok := dnd5e.AllSkills[skill]; !ok {
			vb.InvalidField("skillIDs", "unknown skill "+skill)
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	skills := make([]string, 0, len(input.SkillIDs))
	for _, skill := range input.SkillIDs {
		if !slices.Contains(skills, skill) {
			skills = append(skills, skill)
		}
	}

	draft.ChosenSkills = skills
	warnings := o.skillWarnings(draft)

	if err := o.updateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return &character.UpdateSkillsOutput{Draft: draft, Warnings: warnings}, nil
}

func (o *Orchestrator) skillWarnings(draft *dnd5e.CharacterDraft) []character.ValidationWarning {
	warnings := []character.ValidationWarning{}

	class, ok := o.catalog.Class(draft.ClassID)
	if !ok {
		if len(draft.ChosenSkills) > 0 {
			warnings = append(warnings, character.ValidationWarning{
				Field:   "skillIDs",
				Message: "choose a class to validate skill choices",
				Type:    character.WarningNoClassSelected,
			})
		}
		return warnings
	}

	if len(class.SkillOptions) > 0 {
		for _, skill := range draft.ChosenSkills {
			if !slices.Contains(class.SkillOptions, skill) {
				warnings = append(warnings, character.ValidationWarning{
					Field:   "skillIDs",
					Message: class.Name + " does not offer " + skill,
					Type:    character.WarningSkillNotOffered,
				})
			}
		}
	}

	if int32(len(draft.ChosenSkills)) > class.SkillChoiceCount {
		warnings = append(warnings, character.ValidationWarning{
			Field:   "skillIDs",
			Message: class.Name + " allows fewer skill choices",
			Type:    character.WarningTooManySkills,
		})
	}

	return warnings
}

// Sheet methods

// GetSheet assembles the sheet view of a draft
func (o *Orchestrator) GetSheet(ctx context.Context, input *character.GetSheetInput) (*character.GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraft(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	return &character.GetSheetOutput{Sheet: o.engine.BuildSheet(draft)}, nil
}

// Helpers

func (o *Orchestrator) getDraft(ctx context.Context, draftID string) (*dnd5e.CharacterDraft, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("draftID", draftID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterDraftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get draft").WithMeta("draft_id", draftID)
	}

	return out.Draft, nil
}

func (o *Orchestrator) updateDraft(ctx context.Context, draft *dnd5e.CharacterDraft) error {
	o.touch(draft)

	if _, err := o.characterDraftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft}); err != nil {
		return errors.Wrap(err, "failed to update draft").WithMeta("draft_id", draft.ID)
	}

	slog.DebugContext(ctx, "updated character draft", "draft_id", draft.ID)
	return nil
}

// touch stamps the update time and pushes the expiry out
func (o *Orchestrator) touch(draft *dnd5e.CharacterDraft) {
	now := o.clock.Now()
	draft.UpdatedAt = now.Unix()
	if o.draftTTL > 0 {
		draft.ExpiresAt = now.Add(o.draftTTL).Unix()
	}
}

func (o *Orchestrator) refreshFixedData(draft *dnd5e.CharacterDraft) {
	draft.FixedRace, draft.FixedClass, draft.FixedBackground = nil, nil, nil

	if draft.RaceID != "" {
		fixed := o.engine.ResolveRace(draft.RaceID, draft.SubraceID)
		draft.FixedRace = &fixed
	}
	if draft.ClassID != "" {
		fixed := o.engine.ResolveClass(draft.ClassID)
		draft.FixedClass = &fixed
	}
	if draft.BackgroundID != "" {
		fixed := o.engine.ResolveBackground(draft.BackgroundID)
		draft.FixedBackground = &fixed
	}
}

func validateScores(scores dnd5e.AbilityScores, vb *errors.ValidationBuilder) {
	for _, ability := range dnd5e.AllAbilities {
		errors.ValidateRange(string(ability), int(scores.Get(ability)), dnd5e.MinAbilityScore, dnd5e.MaxAbilityScore, vb)
	}
}
