package v1alpha1

import (
	"context"
	"encoding/base64"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
	"github.com/KirkDiggler/rpg-sheet/internal/sheet"
)

// ContentTypePDF is the content type of a rendered sheet
const ContentTypePDF = "application/pdf"

const tracerName = "github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the sheet gRPC service
type Handler struct {
	characterService character.Service
}

var _ SheetServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

// CreateDraft creates a new character draft
func (h *Handler) CreateDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in createDraftRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.characterService.CreateDraft(ctx, &character.CreateDraftInput{
		PlayerID: in.PlayerID,
		Name:     in.Name,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodCreateDraft, err)
	}

	return h.respond(ctx, MethodCreateDraft, draftResponse{Draft: out.Draft})
}

// GetDraft returns a draft by ID
func (h *Handler) GetDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	draftID, err := decodeDraftID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.GetDraft(ctx, &character.GetDraftInput{DraftID: draftID})
	if err != nil {
		return nil, h.fail(ctx, MethodGetDraft, err)
	}

	return h.respond(ctx, MethodGetDraft, draftResponse{Draft: out.Draft})
}

// GetPlayerDraft returns the active draft of a player
func (h *Handler) GetPlayerDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in playerIDRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.PlayerID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.characterService.GetPlayerDraft(ctx, &character.GetPlayerDraftInput{PlayerID: in.PlayerID})
	if err != nil {
		return nil, h.fail(ctx, MethodGetPlayerDraft, err)
	}

	return h.respond(ctx, MethodGetPlayerDraft, draftResponse{Draft: out.Draft})
}

// SaveDraft stores a whole draft, creating it when it does not exist yet
func (h *Handler) SaveDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in saveDraftRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Draft == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("draft is required"))
	}

	out, err := h.characterService.SaveDraft(ctx, &character.SaveDraftInput{Draft: in.Draft})
	if err != nil {
		return nil, h.fail(ctx, MethodSaveDraft, err)
	}

	return h.respond(ctx, MethodSaveDraft, saveDraftResponse{Draft: out.Draft, Created: out.Created})
}

// DeleteDraft removes a draft
func (h *Handler) DeleteDraft(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	draftID, err := decodeDraftID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.DeleteDraft(ctx, &character.DeleteDraftInput{DraftID: draftID})
	if err != nil {
		return nil, h.fail(ctx, MethodDeleteDraft, err)
	}

	return h.respond(ctx, MethodDeleteDraft, messageResponse{Message: out.Message})
}

// UpdateName sets the character name
func (h *Handler) UpdateName(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateNameRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateName(ctx, &character.UpdateNameInput{
		DraftID: in.DraftID,
		Name:    in.Name,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUpdateName, err)
	}

	return h.respond(ctx, MethodUpdateName, draftResponse{Draft: out.Draft})
}

// UpdateLevel sets the character level
func (h *Handler) UpdateLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateLevelRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateLevel(ctx, &character.UpdateLevelInput{
		DraftID: in.DraftID,
		Level:   in.Level,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUpdateLevel, err)
	}

	return h.respond(ctx, MethodUpdateLevel, draftResponse{Draft: out.Draft})
}

// UpdateRace selects a race and optional subrace
func (h *Handler) UpdateRace(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateRaceRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateRace(ctx, &character.UpdateRaceInput{
		DraftID:   in.DraftID,
		RaceID:    in.RaceID,
		SubraceID: in.SubraceID,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUpdateRace, err)
	}

	return h.respond(ctx, MethodUpdateRace, draftWarningsResponse{
		Draft:    out.Draft,
		Warnings: convertWarnings(out.Warnings),
	})
}

// UpdateClass selects a class
func (h *Handler) UpdateClass(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateClassRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateClass(ctx, &character.UpdateClassInput{
		DraftID: in.DraftID,
		ClassID: in.ClassID,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUpdateClass, err)
	}

	return h.respond(ctx, MethodUpdateClass, draftWarningsResponse{
		Draft:    out.Draft,
		Warnings: convertWarnings(out.Warnings),
	})
}

// UpdateBackground selects a background
func (h *Handler) UpdateBackground(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateBackgroundRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateBackground(ctx, &character.UpdateBackgroundInput{
		DraftID:      in.DraftID,
		BackgroundID: in.BackgroundID,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUpdateBackground, err)
	}

	return h.respond(ctx, MethodUpdateBackground, draftResponse{Draft: out.Draft})
}

// UpdateAbilityScores sets the base ability scores
func (h *Handler) UpdateAbilityScores(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateAbilityScoresRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateAbilityScores(ctx, &character.UpdateAbilityScoresInput{
		DraftID:       in.DraftID,
		AbilityScores: in.AbilityScores,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUpdateAbilityScores, err)
	}

	return h.respond(ctx, MethodUpdateAbilityScores, draftResponse{Draft: out.Draft})
}

// RollAbilityScores rolls a set of six ability scores
func (h *Handler) RollAbilityScores(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in rollAbilityScoresRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.RollAbilityScores(ctx, &character.RollAbilityScoresInput{Method: in.Method})
	if err != nil {
		return nil, h.fail(ctx, MethodRollAbilityScores, err)
	}

	return h.respond(ctx, MethodRollAbilityScores, rollAbilityScoresResponse{
		Method: out.Method,
		Rolls:  out.Rolls,
	})
}

// UpdateSkills sets the chosen skills
func (h *Handler) UpdateSkills(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in updateSkillsRequest
	if err := decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateSkills(ctx, &character.UpdateSkillsInput{
		DraftID:  in.DraftID,
		SkillIDs: in.SkillIDs,
	})
	if err != nil {
		return nil, h.fail(ctx, MethodUpdateSkills, err)
	}

	return h.respond(ctx, MethodUpdateSkills, draftWarningsResponse{
		Draft:    out.Draft,
		Warnings: convertWarnings(out.Warnings),
	})
}

// GetSheet assembles the sheet of a draft
func (h *Handler) GetSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	draftID, err := decodeDraftID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.GetSheet(ctx, &character.GetSheetInput{DraftID: draftID})
	if err != nil {
		return nil, h.fail(ctx, MethodGetSheet, err)
	}

	return h.respond(ctx, MethodGetSheet, sheetResponse{Sheet: out.Sheet})
}

// RenderSheet assembles the sheet of a draft and returns it as a base64 PDF
func (h *Handler) RenderSheet(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	draftID, err := decodeDraftID(req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.GetSheet(ctx, &character.GetSheetInput{DraftID: draftID})
	if err != nil {
		return nil, h.fail(ctx, MethodRenderSheet, err)
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "sheet.Render")
	span.SetAttributes(attribute.String("draft_id", draftID))
	pdf, err := sheet.Render(out.Sheet)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int("pdf_bytes", len(pdf)))
	span.End()
	if err != nil {
		return nil, h.fail(ctx, MethodRenderSheet, errors.Wrap(err, "failed to render sheet").WithMeta("draft_id", draftID))
	}

	return h.respond(ctx, MethodRenderSheet, renderSheetResponse{
		DraftID:     draftID,
		ContentType: ContentTypePDF,
		PDF:         base64.StdEncoding.EncodeToString(pdf),
	})
}

// ListRaces lists the playable races
func (h *Handler) ListRaces(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := decode(req, &emptyRequest{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListRaces(ctx, &character.ListRacesInput{})
	if err != nil {
		return nil, h.fail(ctx, MethodListRaces, err)
	}

	return h.respond(ctx, MethodListRaces, map[string]any{
		"races": convertSlice(out.Races, convertRace),
	})
}

// ListClasses lists the playable classes
func (h *Handler) ListClasses(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := decode(req, &emptyRequest{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListClasses(ctx, &character.ListClassesInput{})
	if err != nil {
		return nil, h.fail(ctx, MethodListClasses, err)
	}

	return h.respond(ctx, MethodListClasses, map[string]any{
		"classes": convertSlice(out.Classes, convertClass),
	})
}

// ListBackgrounds lists the backgrounds
func (h *Handler) ListBackgrounds(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := decode(req, &emptyRequest{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListBackgrounds(ctx, &character.ListBackgroundsInput{})
	if err != nil {
		return nil, h.fail(ctx, MethodListBackgrounds, err)
	}

	return h.respond(ctx, MethodListBackgrounds, map[string]any{
		"backgrounds": convertSlice(out.Backgrounds, convertBackground),
	})
}

// ListLanguages lists the languages
func (h *Handler) ListLanguages(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := decode(req, &emptyRequest{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListLanguages(ctx, &character.ListLanguagesInput{})
	if err != nil {
		return nil, h.fail(ctx, MethodListLanguages, err)
	}

	return h.respond(ctx, MethodListLanguages, map[string]any{
		"languages": convertSlice(out.Languages, func(l *dnd5e.Language) languageInfo {
			return languageInfo{ID: l.ID, Name: l.Name, Exotic: l.Exotic, Script: l.Script}
		}),
	})
}

// ListFeats lists the feats
func (h *Handler) ListFeats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := decode(req, &emptyRequest{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListFeats(ctx, &character.ListFeatsInput{})
	if err != nil {
		return nil, h.fail(ctx, MethodListFeats, err)
	}

	return h.respond(ctx, MethodListFeats, map[string]any{
		"feats": convertSlice(out.Feats, func(f *dnd5e.Feat) featInfo {
			return featInfo{ID: f.ID, Name: f.Name, Description: f.Description, Prerequisite: f.Prerequisite}
		}),
	})
}

// ListFightingStyles lists the fighting styles
func (h *Handler) ListFightingStyles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if err := decode(req, &emptyRequest{}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListFightingStyles(ctx, &character.ListFightingStylesInput{})
	if err != nil {
		return nil, h.fail(ctx, MethodListFightingStyles, err)
	}

	return h.respond(ctx, MethodListFightingStyles, map[string]any{
		"fighting_styles": convertSlice(out.FightingStyles, func(f *dnd5e.FightingStyle) fightingStyleInfo {
			return fightingStyleInfo{ID: f.ID, Name: f.Name, Description: f.Description}
		}),
	})
}

func decodeDraftID(req *structpb.Struct) (string, error) {
	var in draftIDRequest
	if err := decode(req, &in); err != nil {
		return "", err
	}
	if err := requireDraftID(in.DraftID); err != nil {
		return "", err
	}
	return in.DraftID, nil
}

func requireDraftID(draftID string) error {
	if draftID == "" {
		return errors.InvalidArgument("draft_id is required")
	}
	return nil
}

// fail maps a service error to a status, logging internal failures
func (h *Handler) fail(ctx context.Context, method string, err error) error {
	if errors.IsInternal(err) {
		slog.ErrorContext(ctx, "sheet service call failed",
			"method", method,
			"error", err,
		)
	}
	return errors.ToGRPCError(err)
}

func (h *Handler) respond(ctx context.Context, method string, v any) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		return nil, h.fail(ctx, method, err)
	}
	return out, nil
}
