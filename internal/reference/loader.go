package reference

import (
	"embed"
	"io"
	"io/fs"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed data/*.yaml
var embedded embed.FS

// Table file names inside a data directory
const (
	FileRaces          = "races.yaml"
	FileClasses        = "classes.yaml"
	FileBackgrounds    = "backgrounds.yaml"
	FileLanguages      = "languages.yaml"
	FileFeats          = "feats.yaml"
	FileFightingStyles = "fighting_styles.yaml"
)

// LoadDefault builds tables from the data bundled with the binary
func LoadDefault(locale language.Tag) (*Tables, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded data")
	}
	return Load(sub, locale)
}

// LoadDir builds tables from the YAML files in dir
func LoadDir(dir string, locale language.Tag) (*Tables, error) {
	return Load(os.DirFS(dir), locale)
}

// Load builds tables from the YAML files at the root of fsys. Decoding is
// strict: a field the schema does not know is an error.
func Load(fsys fs.FS, locale language.Tag) (*Tables, error) {
	var (
		races          racesFile
		classes        classesFile
		backgrounds    backgroundsFile
		languages      languagesFile
		feats          featsFile
		fightingStyles fightingStylesFile
	)

	files := []struct {
		name   string
		target any
	}{
		{FileRaces, &races},
		{FileClasses, &classes},
		{FileBackgrounds, &backgrounds},
		{FileLanguages, &languages},
		{FileFeats, &feats},
		{FileFightingStyles, &fightingStyles},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.target); err != nil {
			return nil, err
		}
	}

	cfg := &Config{Locale: locale}

	for _, rec := range races.Races {
		race, err := rec.toRace()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid race %s", rec.ID).WithMeta("file", FileRaces)
		}
		cfg.Races = append(cfg.Races, race)
	}
	for _, rec := range classes.Classes {
		class, err := rec.toClass()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid class %s", rec.ID).WithMeta("file", FileClasses)
		}
		cfg.Classes = append(cfg.Classes, class)
	}
	for _, rec := range backgrounds.Backgrounds {
		bg, err := rec.toBackground()
		if err != nil {
			return nil, errors.Wrapf(err, "invalid background %s", rec.ID).WithMeta("file", FileBackgrounds)
		}
		cfg.Backgrounds = append(cfg.Backgrounds, bg)
	}
	for _, rec := range languages.Languages {
		cfg.Languages = append(cfg.Languages, &dnd5e.Language{
			ID:     rec.ID,
			Name:   rec.Name,
			Exotic: rec.Exotic,
			Script: rec.Script,
		})
	}
	for _, rec := range feats.Feats {
		cfg.Feats = append(cfg.Feats, &dnd5e.Feat{
			ID:           rec.ID,
			Name:         rec.Name,
			Description:  rec.Description,
			Prerequisite: rec.Prerequisite,
		})
	}
	for _, rec := range fightingStyles.FightingStyles {
		cfg.FightingStyles = append(cfg.FightingStyles, &dnd5e.FightingStyle{
			ID:          rec.ID,
			Name:        rec.Name,
			Description: rec.Description,
		})
	}

	return New(cfg)
}

func decodeFile(fsys fs.FS, name string, target any) error {
	f, err := fsys.Open(name)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", name)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && err != io.EOF {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", name)
	}
	return nil
}
