package character_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	idgenmock "github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
	draftrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character_draft"
	draftrepomock "github.com/KirkDiggler/rpg-sheet/internal/repositories/character_draft/mock"
	charactersvc "github.com/KirkDiggler/rpg-sheet/internal/services/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const (
	testDraftID  = "draft_1"
	testPlayerID = "player_1"
	testTTL      = time.Hour
)

// stubDiceRoller rolls the same face for every die
type stubDiceRoller struct{ face int }

func (s *stubDiceRoller) Roll(_ int) (int, error) { return s.face, nil }
func (s *stubDiceRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.face
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockDraftRepo   *draftrepomock.MockRepository
	mockIDGenerator *idgenmock.MockGenerator
	tables          *reference.Tables
	orchestrator    *character.Orchestrator
	ctx             context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupSuite() {
	tables, err := reference.LoadDefault(language.English)
	s.Require().NoError(err)
	s.tables = tables
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDraftRepo = draftrepomock.NewMockRepository(s.ctrl)
	s.mockIDGenerator = idgenmock.NewMockGenerator(s.ctrl)
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{Tables: s.tables})
	s.Require().NoError(err)

	orchestrator, err := character.New(&character.Config{
		CharacterDraftRepo: s.mockDraftRepo,
		Engine:             eng,
		Catalog:            s.tables,
		DiceRoller:         &stubDiceRoller{face: 4},
		Clock:              clock.Fixed{At: testutils.FixedNow},
		IDGenerator:        s.mockIDGenerator,
		DraftTTL:           testTTL,
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectGet returns a stored copy of the draft
func (s *OrchestratorTestSuite) expectGet(draft *dnd5e.CharacterDraft) {
	s.mockDraftRepo.EXPECT().
		Get(s.ctx, draftrepo.GetInput{ID: draft.ID}).
		Return(&draftrepo.GetOutput{Draft: draft}, nil)
}

func (s *OrchestratorTestSuite) expectUpdate() {
	s.mockDraftRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.UpdateInput) (*draftrepo.UpdateOutput, error) {
			return &draftrepo.UpdateOutput{Draft: input.Draft}, nil
		})
}

func (s *OrchestratorTestSuite) TestNewRequiresDependencies() {
	_, err := character.New(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = character.New(&character.Config{})
	s.Require().Error(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(fields, "CharacterDraftRepo")
	s.Assert().Contains(fields, "Engine")
	s.Assert().Contains(fields, "Catalog")
	s.Assert().Contains(fields, "DiceRoller")
	s.Assert().Contains(fields, "IDGenerator")
}

func (s *OrchestratorTestSuite) TestCreateDraft() {
	s.Run("creates a level 1 draft", func() {
		s.mockIDGenerator.EXPECT().Generate().Return(testDraftID)
		s.mockDraftRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input draftrepo.CreateInput) (*draftrepo.CreateOutput, error) {
				s.Assert().Equal(testDraftID, input.Draft.ID)
				s.Assert().Equal(testPlayerID, input.Draft.PlayerID)
				return &draftrepo.CreateOutput{Draft: input.Draft}, nil
			})

		out, err := s.orchestrator.CreateDraft(s.ctx, &charactersvc.CreateDraftInput{
			PlayerID: testPlayerID,
			Name:     "Bruenor",
		})
		s.Require().NoError(err)
		s.Assert().Equal("Bruenor", out.Draft.Name)
		s.Assert().Equal(int32(1), out.Draft.Level)
		s.Assert().Equal(testutils.FixedNow.Unix(), out.Draft.CreatedAt)
		s.Assert().Equal(testutils.FixedNow.Add(testTTL).Unix(), out.Draft.ExpiresAt)
	})

	s.Run("requires player", func() {
		_, err := s.orchestrator.CreateDraft(s.ctx, &charactersvc.CreateDraftInput{})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.CreateDraft(s.ctx, nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("repository failure keeps code", func() {
		s.mockIDGenerator.EXPECT().Generate().Return(testDraftID)
		s.mockDraftRepo.EXPECT().
			Create(s.ctx, gomock.Any()).
			Return(nil, errors.AlreadyExists("draft exists"))

		_, err := s.orchestrator.CreateDraft(s.ctx, &charactersvc.CreateDraftInput{PlayerID: testPlayerID})
		s.Assert().True(errors.IsAlreadyExists(err))
		s.Assert().Equal(testPlayerID, errors.GetMeta(err)["player_id"])
	})
}

func (s *OrchestratorTestSuite) TestGetDraft() {
	s.Run("success", func() {
		draft := testutils.CreateTestCharacterDraft(testDraftID, testPlayerID)
		s.expectGet(draft)

		out, err := s.orchestrator.GetDraft(s.ctx, &charactersvc.GetDraftInput{DraftID: testDraftID})
		s.Require().NoError(err)
		s.Assert().Equal(draft, out.Draft)
	})

	s.Run("not found carries draft id", func() {
		s.mockDraftRepo.EXPECT().
			Get(s.ctx, draftrepo.GetInput{ID: "missing"}).
			Return(nil, errors.NotFound("draft not found"))

		_, err := s.orchestrator.GetDraft(s.ctx, &charactersvc.GetDraftInput{DraftID: "missing"})
		s.Assert().True(errors.IsNotFound(err))
		s.Assert().Equal("missing", errors.GetMeta(err)["draft_id"])
	})

	s.Run("empty id", func() {
		_, err := s.orchestrator.GetDraft(s.ctx, &charactersvc.GetDraftInput{})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetPlayerDraft() {
	draft := testutils.CreateTestCharacterDraft(testDraftID, testPlayerID)
	s.mockDraftRepo.EXPECT().
		GetByPlayerID(s.ctx, draftrepo.GetByPlayerIDInput{PlayerID: testPlayerID}).
		Return(&draftrepo.GetByPlayerIDOutput{Draft: draft}, nil)

	out, err := s.orchestrator.GetPlayerDraft(s.ctx, &charactersvc.GetPlayerDraftInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Assert().Equal(testDraftID, out.Draft.ID)
}

func (s *OrchestratorTestSuite) TestUpdateRace() {
	s.Run("stores recomputed race data", func() {
		s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
		s.expectUpdate()

		out, err := s.orchestrator.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{
			DraftID:   testDraftID,
			RaceID:    "dwarf",
			SubraceID: "mountain-dwarf",
		})
		s.Require().NoError(err)
		s.Assert().Empty(out.Warnings)

		fixed := out.Draft.FixedRace
		s.Require().NotNil(fixed)
		s.Assert().True(fixed.Found)
		s.Assert().Equal(int32(25), fixed.Speed)
		s.Assert().Equal(int32(2), fixed.AbilityBonuses[dnd5e.AbilityConstitution])
		s.Assert().Equal(int32(2), fixed.AbilityBonuses[dnd5e.AbilityStrength])
		s.Assert().Equal([]string{"common", "dwarvish"}, fixed.Languages)
		s.Assert().Contains(fixed.Proficiencies.Armors, "category:light")
		s.Assert().Equal(testutils.FixedNow.Unix(), out.Draft.UpdatedAt)
	})

	s.Run("clears a subrace from another race", func() {
		draft := testutils.CreateTestCharacterDraft(testDraftID, testPlayerID)
		draft.RaceID = "dwarf"
		draft.SubraceID = "hill-dwarf"
		s.expectGet(draft)
		s.expectUpdate()

		out, err := s.orchestrator.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{
			DraftID: testDraftID,
			RaceID:  "human",
		})
		s.Require().NoError(err)
		s.Assert().Empty(out.Draft.SubraceID)
		s.Require().Len(out.Warnings, 1)
		s.Assert().Equal(charactersvc.WarningSubraceCleared, out.Warnings[0].Type)
	})

	s.Run("keeps a subrace that still belongs", func() {
		draft := testutils.CreateTestCharacterDraft(testDraftID, testPlayerID)
		draft.RaceID = "dwarf"
		draft.SubraceID = "hill-dwarf"
		s.expectGet(draft)
		s.expectUpdate()

		out, err := s.orchestrator.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{
			DraftID: testDraftID,
			RaceID:  "dwarf",
		})
		s.Require().NoError(err)
		s.Assert().Equal("hill-dwarf", out.Draft.SubraceID)
		s.Assert().Equal(int32(1), out.Draft.FixedRace.HPPerLevel)
	})

	s.Run("warns when a subrace is still to be chosen", func() {
		s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
		s.expectUpdate()

		out, err := s.orchestrator.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{
			DraftID: testDraftID,
			RaceID:  "elf",
		})
		s.Require().NoError(err)
		s.Require().Len(out.Warnings, 1)
		s.Assert().Equal(charactersvc.WarningSubraceAvailable, out.Warnings[0].Type)
	})

	s.Run("unknown race", func() {
		_, err := s.orchestrator.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{
			DraftID: testDraftID,
			RaceID:  "tortle",
		})
		s.Assert().True(errors.IsNotFound(err))
		s.Assert().Equal("tortle", errors.GetMeta(err)["race_id"])
	})

	s.Run("subrace of another race", func() {
		_, err := s.orchestrator.UpdateRace(s.ctx, &charactersvc.UpdateRaceInput{
			DraftID:   testDraftID,
			RaceID:    "elf",
			SubraceID: "hill-dwarf",
		})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateClass() {
	s.Run("stores class data", func() {
		s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
		s.expectUpdate()

		out, err := s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
			DraftID: testDraftID,
			ClassID: "fighter",
		})
		s.Require().NoError(err)
		s.Require().NotNil(out.Draft.FixedClass)
		s.Assert().True(out.Draft.FixedClass.Found)
		s.Assert().Equal(int32(10), out.Draft.FixedClass.HitDie)
		s.Assert().Equal([]string{"str", "con"}, out.Draft.FixedClass.Proficiencies.SavingThrows)
		s.Assert().Empty(out.Draft.FixedClass.AbilityBonuses)
	})

	s.Run("switching class resets skills", func() {
		draft := testutils.CreateTestMountainDwarfFighter(testDraftID, testPlayerID)
		s.expectGet(draft)
		s.expectUpdate()

		out, err := s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
			DraftID: testDraftID,
			ClassID: "wizard",
		})
		s.Require().NoError(err)
		s.Assert().Empty(out.Draft.ChosenSkills)
		s.Require().Len(out.Warnings, 1)
		s.Assert().Equal(charactersvc.WarningSkillsReset, out.Warnings[0].Type)
	})

	s.Run("unknown class", func() {
		_, err := s.orchestrator.UpdateClass(s.ctx, &charactersvc.UpdateClassInput{
			DraftID: testDraftID,
			ClassID: "artificer-plus",
		})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateBackground() {
	s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
	s.expectUpdate()

	out, err := s.orchestrator.UpdateBackground(s.ctx, &charactersvc.UpdateBackgroundInput{
		DraftID:      testDraftID,
		BackgroundID: "soldier",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Draft.FixedBackground)
	s.Assert().Equal([]string{"athletics", "intimidation"}, out.Draft.FixedBackground.Proficiencies.Skills)
	s.Assert().Equal([]string{"category:gaming-set", "land-vehicles"}, out.Draft.FixedBackground.Proficiencies.Tools)

	_, err = s.orchestrator.UpdateBackground(s.ctx, &charactersvc.UpdateBackgroundInput{
		DraftID:      testDraftID,
		BackgroundID: "pirate-king",
	})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpdateAbilityScores() {
	s.Run("stores base scores", func() {
		s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
		s.expectUpdate()

		scores := dnd5e.AbilityScores{Strength: 15, Dexterity: 14, Constitution: 13, Intelligence: 12, Wisdom: 10, Charisma: 8}
		out, err := s.orchestrator.UpdateAbilityScores(s.ctx, &charactersvc.UpdateAbilityScoresInput{
			DraftID:       testDraftID,
			AbilityScores: scores,
		})
		s.Require().NoError(err)
		s.Assert().Equal(&scores, out.Draft.AbilityScores)
	})

	s.Run("rejects scores out of range", func() {
		_, err := s.orchestrator.UpdateAbilityScores(s.ctx, &charactersvc.UpdateAbilityScoresInput{
			DraftID:       testDraftID,
			AbilityScores: dnd5e.AbilityScores{Strength: 31, Dexterity: 10, Constitution: 10, Intelligence: 10, Wisdom: 10},
		})
		s.Require().True(errors.IsInvalidArgument(err))
		fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Assert().Contains(fields, "str")
		s.Assert().Contains(fields, "cha")
		s.Assert().NotContains(fields, "dex")
	})
}

func (s *OrchestratorTestSuite) TestRollAbilityScores() {
	s.Run("defaults to 4d6 drop lowest", func() {
		out, err := s.orchestrator.RollAbilityScores(s.ctx, &charactersvc.RollAbilityScoresInput{})
		s.Require().NoError(err)
		s.Assert().Equal(engine.MethodStandard, out.Method)
		s.Require().Len(out.Rolls, 6)
		for _, roll := range out.Rolls {
			s.Assert().Equal(int32(12), roll.Total)
			s.Assert().Len(roll.Dropped, 1)
		}
	})

	s.Run("3d6 keeps every die", func() {
		out, err := s.orchestrator.RollAbilityScores(s.ctx, &charactersvc.RollAbilityScoresInput{Method: engine.MethodClassic})
		s.Require().NoError(err)
		s.Assert().Empty(out.Rolls[0].Dropped)
		s.Assert().Equal(int32(12), out.Rolls[0].Total)
	})

	s.Run("unknown method", func() {
		_, err := s.orchestrator.RollAbilityScores(s.ctx, &charactersvc.RollAbilityScoresInput{Method: "point_buy"})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateSkills() {
	s.Run("dedupes and warns about skills the class does not offer", func() {
		draft := testutils.CreateTestCharacterDraft(testDraftID, testPlayerID)
		draft.ClassID = "fighter"
		s.expectGet(draft)
		s.expectUpdate()

		out, err := s.orchestrator.UpdateSkills(s.ctx, &charactersvc.UpdateSkillsInput{
			DraftID:  testDraftID,
			SkillIDs: []string{"athletics", "arcana", "athletics"},
		})
		s.Require().NoError(err)
		s.Assert().Equal([]string{"athletics", "arcana"}, out.Draft.ChosenSkills)
		s.Require().Len(out.Warnings, 1)
		s.Assert().Equal(charactersvc.WarningSkillNotOffered, out.Warnings[0].Type)
	})

	s.Run("warns about too many skills", func() {
		draft := testutils.CreateTestCharacterDraft(testDraftID, testPlayerID)
		draft.ClassID = "fighter"
		s.expectGet(draft)
		s.expectUpdate()

		out, err := s.orchestrator.UpdateSkills(s.ctx, &charactersvc.UpdateSkillsInput{
			DraftID:  testDraftID,
			SkillIDs: []string{"athletics", "history", "insight"},
		})
		s.Require().NoError(err)
		s.Require().Len(out.Warnings, 1)
		s.Assert().Equal(charactersvc.WarningTooManySkills, out.Warnings[0].Type)
	})

	s.Run("warns without a class", func() {
		s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
		s.expectUpdate()

		out, err := s.orchestrator.UpdateSkills(s.ctx, &charactersvc.UpdateSkillsInput{
			DraftID:  testDraftID,
			SkillIDs: []string{"stealth"},
		})
		s.Require().NoError(err)
		s.Require().Len(out.Warnings, 1)
		s.Assert().Equal(charactersvc.WarningNoClassSelected, out.Warnings[0].Type)
	})

	s.Run("rejects unknown skills", func() {
		_, err := s.orchestrator.UpdateSkills(s.ctx, &charactersvc.UpdateSkillsInput{
			DraftID:  testDraftID,
			SkillIDs: []string{"basket-weaving"},
		})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUpdateNameAndLevel() {
	s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
	s.expectUpdate()

	out, err := s.orchestrator.UpdateName(s.ctx, &charactersvc.UpdateNameInput{DraftID: testDraftID, Name: "Dain"})
	s.Require().NoError(err)
	s.Assert().Equal("Dain", out.Draft.Name)

	s.expectGet(testutils.CreateTestCharacterDraft(testDraftID, testPlayerID))
	s.expectUpdate()

	levelOut, err := s.orchestrator.UpdateLevel(s.ctx, &charactersvc.UpdateLevelInput{DraftID: testDraftID, Level: 5})
	s.Require().NoError(err)
	s.Assert().Equal(int32(5), levelOut.Draft.Level)

	_, err = s.orchestrator.UpdateLevel(s.ctx, &charactersvc.UpdateLevelInput{DraftID: testDraftID, Level: 21})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.UpdateName(s.ctx, &charactersvc.UpdateNameInput{DraftID: testDraftID, Name: " "})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveDraftRecomputesFixedData() {
	draft := testutils.CreateTestMountainDwarfFighter(testDraftID, testPlayerID)
	draft.Level = 0
	draft.FixedRace = &dnd5e.FixedData{Speed: 99}

	s.mockDraftRepo.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input draftrepo.UpsertInput) (*draftrepo.UpsertOutput, error) {
			return &draftrepo.UpsertOutput{Draft: input.Draft, Created: true}, nil
		})

	out, err := s.orchestrator.SaveDraft(s.ctx, &charactersvc.SaveDraftInput{Draft: draft})
	s.Require().NoError(err)
	s.Assert().True(out.Created)
	s.Assert().Equal(int32(1), out.Draft.Level)
	s.Assert().Equal(int32(25), out.Draft.FixedRace.Speed)
	s.Require().NotNil(out.Draft.FixedClass)
	s.Require().NotNil(out.Draft.FixedBackground)
	s.Assert().True(out.Draft.FixedBackground.Found)
}

func (s *OrchestratorTestSuite) TestSaveDraftValidation() {
	_, err := s.orchestrator.SaveDraft(s.ctx, &charactersvc.SaveDraftInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SaveDraft(s.ctx, &charactersvc.SaveDraftInput{
		Draft: &dnd5e.CharacterDraft{ID: testDraftID},
	})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveDraftRejectsUnknownSelections() {
	testCases := []struct {
		name   string
		modify func(*dnd5e.CharacterDraft)
		check  func(error) bool
		meta   string
	}{
		{
			name:   "unknown race",
			modify: func(d *dnd5e.CharacterDraft) { d.RaceID = "no-such-race"; d.SubraceID = "" },
			check:  errors.IsNotFound,
			meta:   "race_id",
		},
		{
			name:   "subrace of another race",
			modify: func(d *dnd5e.CharacterDraft) { d.SubraceID = "high-elf" },
			check:  errors.IsNotFound,
			meta:   "subrace_id",
		},
		{
			name:   "subrace without race",
			modify: func(d *dnd5e.CharacterDraft) { d.RaceID = "" },
			check:  errors.IsNotFound,
			meta:   "subrace_id",
		},
		{
			name:   "unknown class",
			modify: func(d *dnd5e.CharacterDraft) { d.ClassID = "no-such-class" },
			check:  errors.IsNotFound,
			meta:   "class_id",
		},
		{
			name:   "unknown background",
			modify: func(d *dnd5e.CharacterDraft) { d.BackgroundID = "no-such-background" },
			check:  errors.IsNotFound,
			meta:   "background_id",
		},
		{
			name:   "unknown skill",
			modify: func(d *dnd5e.CharacterDraft) { d.ChosenSkills = []string{"not-a-skill"} },
			check:  errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			draft := testutils.CreateTestMountainDwarfFighter(testDraftID, testPlayerID)
			tc.modify(draft)

			// no Upsert expectation: nothing may be stored
			_, err := s.orchestrator.SaveDraft(s.ctx, &charactersvc.SaveDraftInput{Draft: draft})
			s.Require().Error(err)
			s.Assert().True(tc.check(err), "unexpected code %s", errors.GetCode(err))
			if tc.meta != "" {
				s.Assert().Contains(errors.GetMeta(err), tc.meta)
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestSaveDraftPassesOwnershipErrorThrough() {
	draft := testutils.CreateTestMountainDwarfFighter(testDraftID, "player_other")

	s.mockDraftRepo.EXPECT().
		Upsert(s.ctx, gomock.Any()).
		Return(nil, errors.PermissionDeniedf("draft %s belongs to another player", testDraftID))

	_, err := s.orchestrator.SaveDraft(s.ctx, &charactersvc.SaveDraftInput{Draft: draft})
	s.Assert().True(errors.IsPermissionDenied(err))
}

func (s *OrchestratorTestSuite) TestDeleteDraft() {
	s.mockDraftRepo.EXPECT().
		Delete(s.ctx, draftrepo.DeleteInput{ID: testDraftID}).
		Return(&draftrepo.DeleteOutput{}, nil)

	out, err := s.orchestrator.DeleteDraft(s.ctx, &charactersvc.DeleteDraftInput{DraftID: testDraftID})
	s.Require().NoError(err)
	s.Assert().Equal("draft deleted", out.Message)
}

func (s *OrchestratorTestSuite) TestGetSheet() {
	s.expectGet(testutils.CreateTestMountainDwarfFighter(testDraftID, testPlayerID))

	out, err := s.orchestrator.GetSheet(s.ctx, &charactersvc.GetSheetInput{DraftID: testDraftID})
	s.Require().NoError(err)

	sheet := out.Sheet
	s.Assert().Equal("Dwarf (Mountain Dwarf)", sheet.RaceName)
	s.Assert().Equal("Fighter", sheet.ClassName)
	s.Assert().Equal("Soldier", sheet.BackgroundName)
	s.Assert().Equal(int32(17), sheet.AbilityScores.Strength)
	s.Assert().Equal(int32(16), sheet.AbilityScores.Constitution)
	// d10 + con 3 at level 1
	s.Assert().Equal(int32(13), sheet.MaxHitPoints)
	s.Assert().Equal(int32(25), sheet.Speed)
	s.Assert().Equal(int32(60), sheet.Vision[dnd5e.VisionDarkvision].Distance)
	s.Assert().Equal("Dwarf (Mountain Dwarf)", sheet.Vision[dnd5e.VisionDarkvision].Source)
	s.Assert().Equal(int32(5), sheet.SkillBonuses["athletics"])
}

func (s *OrchestratorTestSuite) TestListCatalog() {
	races, err := s.orchestrator.ListRaces(s.ctx, &charactersvc.ListRacesInput{})
	s.Require().NoError(err)
	s.Assert().Equal(len(s.tables.Races()), len(races.Races))

	classes, err := s.orchestrator.ListClasses(s.ctx, &charactersvc.ListClassesInput{})
	s.Require().NoError(err)
	s.Assert().Len(classes.Classes, 12)

	backgrounds, err := s.orchestrator.ListBackgrounds(s.ctx, &charactersvc.ListBackgroundsInput{})
	s.Require().NoError(err)
	s.Assert().NotEmpty(backgrounds.Backgrounds)

	languages, err := s.orchestrator.ListLanguages(s.ctx, &charactersvc.ListLanguagesInput{})
	s.Require().NoError(err)
	s.Assert().NotEmpty(languages.Languages)

	feats, err := s.orchestrator.ListFeats(s.ctx, &charactersvc.ListFeatsInput{})
	s.Require().NoError(err)
	s.Assert().NotEmpty(feats.Feats)

	styles, err := s.orchestrator.ListFightingStyles(s.ctx, &charactersvc.ListFightingStylesInput{})
	s.Require().NoError(err)
	s.Assert().NotEmpty(styles.FightingStyles)
}
