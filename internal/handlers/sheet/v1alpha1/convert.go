package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// decode reads a request struct into target. Unknown fields are rejected.
func decode(req *structpb.Struct, target any) error {
	raw, err := json.Marshal(req.AsMap())
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
	}
	return nil
}

// encode turns a response value into a Struct through its JSON shape
func encode(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// Requests

type emptyRequest struct{}

type draftIDRequest struct {
	DraftID string `json:"draft_id"`
}

type playerIDRequest struct {
	PlayerID string `json:"player_id"`
}

type createDraftRequest struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type saveDraftRequest struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

type updateNameRequest struct {
	DraftID string `json:"draft_id"`
	Name    string `json:"name"`
}

type updateLevelRequest struct {
	DraftID string `json:"draft_id"`
	Level   int32  `json:"level"`
}

type updateRaceRequest struct {
	DraftID   string `json:"draft_id"`
	RaceID    string `json:"race_id"`
	SubraceID string `json:"subrace_id"`
}

type updateClassRequest struct {
	DraftID string `json:"draft_id"`
	ClassID string `json:"class_id"`
}

type updateBackgroundRequest struct {
	DraftID      string `json:"draft_id"`
	BackgroundID string `json:"background_id"`
}

type updateAbilityScoresRequest struct {
	DraftID       string              `json:"draft_id"`
	AbilityScores dnd5e.AbilityScores `json:"ability_scores"`
}

type rollAbilityScoresRequest struct {
	Method string `json:"method"`
}

type updateSkillsRequest struct {
	DraftID  string   `json:"draft_id"`
	SkillIDs []string `json:"skill_ids"`
}

// Responses

type draftResponse struct {
	Draft *dnd5e.CharacterDraft `json:"draft"`
}

type draftWarningsResponse struct {
	Draft    *dnd5e.CharacterDraft `json:"draft"`
	Warnings []warning             `json:"warnings"`
}

type saveDraftResponse struct {
	Draft   *dnd5e.CharacterDraft `json:"draft"`
	Created bool                  `json:"created"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type rollAbilityScoresResponse struct {
	Method string               `json:"method"`
	Rolls  []engine.AbilityRoll `json:"rolls"`
}

type sheetResponse struct {
	Sheet *dnd5e.Sheet `json:"sheet"`
}

type renderSheetResponse struct {
	DraftID     string `json:"draft_id"`
	ContentType string `json:"content_type"`
	PDF         string `json:"pdf"`
}

type warning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func convertWarnings(in []character.ValidationWarning) []warning {
	out := make([]warning, 0, len(in))
	for _, w := range in {
		out = append(out, warning{Field: w.Field, Message: w.Message, Type: w.Type})
	}
	return out
}

// Catalog entries

type traitInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type subraceInfo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Traits      []traitInfo `json:"traits"`
}

type raceInfo struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Size        string        `json:"size,omitempty"`
	Languages   []string      `json:"languages"`
	Spells      []string      `json:"spells"`
	Traits      []traitInfo   `json:"traits"`
	Subraces    []subraceInfo `json:"subraces"`
}

type classInfo struct {
	ID                  string                   `json:"id"`
	Name                string                   `json:"name"`
	Description         string                   `json:"description,omitempty"`
	HitDie              int32                    `json:"hit_die"`
	PrimaryAbility      dnd5e.Ability            `json:"primary_ability,omitempty"`
	SkillChoiceCount    int32                    `json:"skill_choice_count"`
	SkillOptions        []string                 `json:"skill_options"`
	Proficiencies       []dnd5e.ProficiencyGrant `json:"proficiencies"`
	SpellcastingAbility dnd5e.Ability            `json:"spellcasting_ability,omitempty"`
}

type backgroundInfo struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description,omitempty"`
	Proficiencies  []dnd5e.ProficiencyGrant `json:"proficiencies"`
	AbilityBonuses dnd5e.AbilityBonuses     `json:"ability_bonuses"`
	Languages      []string                 `json:"languages"`
	Feature        string                   `json:"feature,omitempty"`
}

type languageInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Exotic bool   `json:"exotic"`
	Script string `json:"script,omitempty"`
}

type featInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Prerequisite string `json:"prerequisite,omitempty"`
}

type fightingStyleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func convertTraits(traits []dnd5e.Trait) []traitInfo {
	out := make([]traitInfo, 0, len(traits))
	for _, t := range traits {
		out = append(out, traitInfo{Name: t.Name, Description: t.Description})
	}
	return out
}

func convertRace(r *dnd5e.Race) raceInfo {
	subraces := make([]subraceInfo, 0, len(r.Subraces))
	for _, sr := range r.Subraces {
		subraces = append(subraces, subraceInfo{
			ID:          sr.ID,
			Name:        sr.Name,
			Description: sr.Description,
			Traits:      convertTraits(sr.Traits),
		})
	}

	return raceInfo{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Size:        r.Size,
		Languages:   nonNil(r.Languages),
		Spells:      nonNil(r.Spells),
		Traits:      convertTraits(r.Traits),
		Subraces:    subraces,
	}
}

func convertClass(c *dnd5e.Class) classInfo {
	profs := c.Proficiencies
	if profs == nil {
		profs = []dnd5e.ProficiencyGrant{}
	}

	return classInfo{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		HitDie:              c.HitDie,
		PrimaryAbility:      c.PrimaryAbility,
		SkillChoiceCount:    c.SkillChoiceCount,
		SkillOptions:        nonNil(c.SkillOptions),
		Proficiencies:       profs,
		SpellcastingAbility: c.SpellcastingAbility,
	}
}

func convertBackground(b *dnd5e.Background) backgroundInfo {
	profs := b.Proficiencies
	if profs == nil {
		profs = []dnd5e.ProficiencyGrant{}
	}
	bonuses := b.AbilityBonuses
	if bonuses == nil {
		bonuses = dnd5e.AbilityBonuses{}
	}

	return backgroundInfo{
		ID:             b.ID,
		Name:           b.Name,
		Description:    b.Description,
		Proficiencies:  profs,
		AbilityBonuses: bonuses,
		Languages:      nonNil(b.Languages),
		Feature:        b.Feature,
	}
}

func convertSlice[T, U any](in []*T, fn func(*T) U) []U {
	out := make([]U, 0, len(in))
	for _, item := range in {
		if item == nil {
			continue
		}
		out = append(out, fn(item))
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
