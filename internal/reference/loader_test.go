package reference_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/reference"
)

type LoaderTestSuite struct {
	suite.Suite
}

func TestLoaderSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		reference.FileRaces: {Data: []byte(`
races:
  - id: dwarf
    name: Dwarf
    languages: [common, dwarvish]
    traits:
      - name: Sturdy
        ability_bonuses: {con: 2}
        speed: 25
        vision:
          - {type: darkvision, distance: 60}
    subraces:
      - id: hill-dwarf
        name: Hill Dwarf
        traits:
          - name: Toughness
            hp_per_level: 1
`)},
		reference.FileClasses: {Data: []byte(`
classes:
  - id: fighter
    name: Fighter
    hit_die: 10
    proficiencies:
      - {type: savingThrow, key: str}
  - id: commoner
    name: Commoner
    hit_die: 4
`)},
		reference.FileBackgrounds: {Data: []byte(`
backgrounds:
  - id: sage
    name: Sage
    languages: [draconic]
    proficiencies:
      - {type: skill, key: arcana}
`)},
		reference.FileLanguages:      {Data: []byte("languages:\n  - {id: common, name: Common}\n")},
		reference.FileFeats:          {Data: []byte("feats: []\n")},
		reference.FileFightingStyles: {Data: []byte("")},
	}
}

func (s *LoaderTestSuite) TestLoad() {
	tables, err := reference.Load(minimalFS(), language.English)
	s.Require().NoError(err)

	race, ok := tables.Race("dwarf")
	s.Require().True(ok)
	s.Equal([]string{"common", "dwarvish"}, race.Languages)
	s.Require().Len(race.Traits, 1)
	s.Equal([]dnd5e.Grant{
		dnd5e.AbilityBonusGrant{Bonuses: dnd5e.AbilityBonuses{dnd5e.AbilityConstitution: 2}},
		dnd5e.VisionGrant{Type: dnd5e.VisionDarkvision, Distance: 60},
		dnd5e.SpeedGrant{Speed: 25},
	}, race.Traits[0].Grants)

	sub, ok := tables.Subrace("dwarf", "hill-dwarf")
	s.Require().True(ok)
	s.Equal([]dnd5e.Grant{dnd5e.HPBonusGrant{PerLevel: 1}}, sub.Traits[0].Grants)

	fighter, ok := tables.Class("fighter")
	s.Require().True(ok)
	s.Equal(int32(10), fighter.HitDie)
	s.Len(fighter.Proficiencies, 1)

	commoner, ok := tables.Class("commoner")
	s.Require().True(ok)
	s.Nil(commoner.Proficiencies)

	sage, ok := tables.Background("sage")
	s.Require().True(ok)
	s.Equal([]string{"draconic"}, sage.Languages)

	s.Empty(tables.FightingStyles())
	s.Empty(tables.Feats())
}

func (s *LoaderTestSuite) TestLoadRejectsUnknownTraitField() {
	fsys := minimalFS()
	fsys[reference.FileRaces] = &fstest.MapFile{Data: []byte(`
races:
  - id: elf
    name: Elf
    traits:
      - name: Trance
        sleep_hours: 4
`)}

	_, err := reference.Load(fsys, language.English)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderTestSuite) TestLoadRejectsBadValues() {
	testCases := []struct {
		name  string
		races string
	}{
		{
			name:  "unknown ability",
			races: "races:\n  - id: x\n    name: X\n    traits:\n      - {name: t, ability_bonuses: {luck: 1}}\n",
		},
		{
			name:  "unknown vision type",
			races: "races:\n  - id: x\n    name: X\n    traits:\n      - {name: t, vision: [{type: xray, distance: 5}]}\n",
		},
		{
			name:  "unknown proficiency type",
			races: "races:\n  - id: x\n    name: X\n    traits:\n      - {name: t, proficiencies: [{type: cooking, key: pie}]}\n",
		},
		{
			name:  "non positive speed",
			races: "races:\n  - id: x\n    name: X\n    traits:\n      - {name: t, speed: 0}\n",
		},
		{
			name:  "duplicate race",
			races: "races:\n  - {id: x, name: X}\n  - {id: x, name: Y}\n",
		},
		{
			name:  "duplicate subrace",
			races: "races:\n  - id: x\n    name: X\n    subraces:\n      - {id: s, name: S}\n      - {id: s, name: T}\n",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			fsys := minimalFS()
			fsys[reference.FileRaces] = &fstest.MapFile{Data: []byte(tc.races)}

			_, err := reference.Load(fsys, language.English)
			s.Error(err)
		})
	}
}

func (s *LoaderTestSuite) TestLoadMissingFile() {
	fsys := minimalFS()
	delete(fsys, reference.FileFeats)

	_, err := reference.Load(fsys, language.English)
	s.Error(err)
}

func (s *LoaderTestSuite) TestLoadDefault() {
	tables, err := reference.LoadDefault(language.English)
	s.Require().NoError(err)

	s.NotEmpty(tables.Races())
	s.NotEmpty(tables.Classes())
	s.NotEmpty(tables.Backgrounds())
	s.NotEmpty(tables.Languages())
	s.NotEmpty(tables.Feats())
	s.NotEmpty(tables.FightingStyles())

	_, ok := tables.Subrace("elf", "drow")
	s.True(ok)
	_, ok = tables.Subrace("dwarf", "drow")
	s.False(ok)

	for _, race := range tables.Races() {
		for _, lang := range race.Languages {
			_, ok := tables.Language(lang)
			s.Truef(ok, "race %s references unknown language %s", race.ID, lang)
		}
	}
	for _, class := range tables.Classes() {
		s.Positivef(class.HitDie, "class %s has no hit die", class.ID)
		for _, skill := range class.SkillOptions {
			_, ok := dnd5e.AllSkills[skill]
			s.Truef(ok, "class %s offers unknown skill %s", class.ID, skill)
		}
	}
}
