// Package reference holds the static rules tables: races, classes,
// backgrounds, languages, feats and fighting styles. Tables are built once and
// never mutated afterwards, so a single *Tables is safe to share.
package reference

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config is the raw content of a set of tables
type Config struct {
	Races          []*dnd5e.Race
	Classes        []*dnd5e.Class
	Backgrounds    []*dnd5e.Background
	Languages      []*dnd5e.Language
	Feats          []*dnd5e.Feat
	FightingStyles []*dnd5e.FightingStyle

	// Locale controls the display order of list results. Defaults to English.
	Locale language.Tag
}

// Tables is an immutable registry of reference data.
// Returned pointers are shared; callers must treat them as read-only.
type Tables struct {
	races          []*dnd5e.Race
	classes        []*dnd5e.Class
	backgrounds    []*dnd5e.Background
	languages      []*dnd5e.Language
	feats          []*dnd5e.Feat
	fightingStyles []*dnd5e.FightingStyle

	raceByID          map[string]*dnd5e.Race
	classByID         map[string]*dnd5e.Class
	backgroundByID    map[string]*dnd5e.Background
	languageByID      map[string]*dnd5e.Language
	featByID          map[string]*dnd5e.Feat
	fightingStyleByID map[string]*dnd5e.FightingStyle
}

// New indexes the given data. IDs must be non-empty and unique per table.
func New(cfg *Config) (*Tables, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	locale := cfg.Locale
	if locale == language.Und {
		locale = language.English
	}
	c := collate.New(locale)
	byName := func(a, b string) bool { return c.CompareString(a, b) < 0 }

	t := &Tables{}
	var err error

	if t.raceByID, err = index("race", cfg.Races, func(r *dnd5e.Race) string { return r.ID }); err != nil {
		return nil, err
	}
	for _, r := range cfg.Races {
		if _, err := index("subrace", subracePointers(r), func(s *dnd5e.Subrace) string { return s.ID }); err != nil {
			return nil, errors.Wrapf(err, "race %s", r.ID)
		}
	}
	if t.classByID, err = index("class", cfg.Classes, func(c *dnd5e.Class) string { return c.ID }); err != nil {
		return nil, err
	}
	if t.backgroundByID, err = index("background", cfg.Backgrounds, func(b *dnd5e.Background) string { return b.ID }); err != nil {
		return nil, err
	}
	if t.languageByID, err = index("language", cfg.Languages, func(l *dnd5e.Language) string { return l.ID }); err != nil {
		return nil, err
	}
	if t.featByID, err = index("feat", cfg.Feats, func(f *dnd5e.Feat) string { return f.ID }); err != nil {
		return nil, err
	}
	if t.fightingStyleByID, err = index("fighting style", cfg.FightingStyles, func(f *dnd5e.FightingStyle) string { return f.ID }); err != nil {
		return nil, err
	}

	t.races = sorted(cfg.Races, func(r *dnd5e.Race) string { return r.Name }, byName)
	t.classes = sorted(cfg.Classes, func(c *dnd5e.Class) string { return c.Name }, byName)
	t.backgrounds = sorted(cfg.Backgrounds, func(b *dnd5e.Background) string { return b.Name }, byName)
	t.languages = sorted(cfg.Languages, func(l *dnd5e.Language) string { return l.Name }, byName)
	t.feats = sorted(cfg.Feats, func(f *dnd5e.Feat) string { return f.Name }, byName)
	t.fightingStyles = sorted(cfg.FightingStyles, func(f *dnd5e.FightingStyle) string { return f.Name }, byName)

	return t, nil
}

// Race returns the race with the given ID
func (t *Tables) Race(id string) (*dnd5e.Race, bool) {
	r, ok := t.raceByID[id]
	return r, ok
}

// Subrace returns a subrace of the given race. The lookup only succeeds when
// the subrace belongs to that race.
func (t *Tables) Subrace(raceID, subraceID string) (*dnd5e.Subrace, bool) {
	r, ok := t.raceByID[raceID]
	if !ok {
		return nil, false
	}
	return r.Subrace(subraceID)
}

// Class returns the class with the given ID
func (t *Tables) Class(id string) (*dnd5e.Class, bool) {
	c, ok := t.classByID[id]
	return c, ok
}

// Background returns the background with the given ID
func (t *Tables) Background(id string) (*dnd5e.Background, bool) {
	b, ok := t.backgroundByID[id]
	return b, ok
}

// Language returns the language with the given ID
func (t *Tables) Language(id string) (*dnd5e.Language, bool) {
	l, ok := t.languageByID[id]
	return l, ok
}

// Feat returns the feat with the given ID
func (t *Tables) Feat(id string) (*dnd5e.Feat, bool) {
	f, ok := t.featByID[id]
	return f, ok
}

// FightingStyle returns the fighting style with the given ID
func (t *Tables) FightingStyle(id string) (*dnd5e.FightingStyle, bool) {
	f, ok := t.fightingStyleByID[id]
	return f, ok
}

// Races lists races ordered by display name
func (t *Tables) Races() []*dnd5e.Race { return clone(t.races) }

// Classes lists classes ordered by display name
func (t *Tables) Classes() []*dnd5e.Class { return clone(t.classes) }

// Backgrounds lists backgrounds ordered by display name
func (t *Tables) Backgrounds() []*dnd5e.Background { return clone(t.backgrounds) }

// Languages lists languages ordered by display name
func (t *Tables) Languages() []*dnd5e.Language { return clone(t.languages) }

// Feats lists feats ordered by display name
func (t *Tables) Feats() []*dnd5e.Feat { return clone(t.feats) }

// FightingStyles lists fighting styles ordered by display name
func (t *Tables) FightingStyles() []*dnd5e.FightingStyle { return clone(t.fightingStyles) }

func index[T any](kind string, items []*T, id func(*T) string) (map[string]*T, error) {
	out := make(map[string]*T, len(items))
	for _, item := range items {
		if item == nil {
			return nil, errors.InvalidArgumentf("nil %s entry", kind)
		}
		key := id(item)
		if key == "" {
			return nil, errors.InvalidArgumentf("%s with empty ID", kind)
		}
		if _, dup := out[key]; dup {
			return nil, errors.AlreadyExistsf("duplicate %s ID %q", kind, key).
				WithMeta("id", key)
		}
		out[key] = item
	}
	return out, nil
}

// sorted runs the collator once at build time; collate.Collator is not safe
// for concurrent use.
func sorted[T any](items []*T, name func(*T) string, less func(a, b string) bool) []*T {
	out := clone(items)
	sort.SliceStable(out, func(i, j int) bool {
		return less(name(out[i]), name(out[j]))
	})
	return out
}

func clone[T any](items []*T) []*T {
	out := make([]*T, len(items))
	copy(out, items)
	return out
}

func subracePointers(r *dnd5e.Race) []*dnd5e.Subrace {
	if r == nil {
		return nil
	}
	out := make([]*dnd5e.Subrace, len(r.Subraces))
	for i := range r.Subraces {
		out[i] = &r.Subraces[i]
	}
	return out
}
