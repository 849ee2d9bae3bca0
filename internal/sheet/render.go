// Package sheet renders an assembled character sheet as a one page PDF.
package sheet

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	pageW     = 595.0
	margin    = 36.0
	lineH     = 13.0
	boxW      = 82.0
	boxH      = 58.0
	fontSize  = 9
	titleSize = 18
	headSize  = 11
)

var abilityLabels = map[dnd5e.Ability]string{
	dnd5e.AbilityStrength:     "STR",
	dnd5e.AbilityDexterity:    "DEX",
	dnd5e.AbilityConstitution: "CON",
	dnd5e.AbilityIntelligence: "INT",
	dnd5e.AbilityWisdom:       "WIS",
	dnd5e.AbilityCharisma:     "CHA",
}

// Render returns the PDF bytes for a sheet
func Render(s *dnd5e.Sheet) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderTo(&buf, s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo writes the PDF for a sheet to w
func RenderTo(w io.Writer, s *dnd5e.Sheet) error {
	if s == nil {
		return errors.InvalidArgument("sheet is required")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(s.Name, true)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	drawHeader(pdf, tr, s)
	drawAbilities(pdf, s)
	drawCombat(pdf, s)
	drawSkills(pdf, s)
	drawList(pdf, tr, "Saving Throw Proficiencies", s.Proficiencies.SavingThrows)
	drawList(pdf, tr, "Armor", s.Proficiencies.Armors)
	drawList(pdf, tr, "Weapons", s.Proficiencies.Weapons)
	drawList(pdf, tr, "Tools", s.Proficiencies.Tools)
	drawList(pdf, tr, "Languages", s.Languages)
	drawList(pdf, tr, "Spells", s.Spells)
	drawList(pdf, tr, "Feats", s.Feats)
	if s.FightingStyle != "" {
		drawList(pdf, tr, "Fighting Style", []string{s.FightingStyle})
	}
	drawVision(pdf, tr, s)

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "failed to render sheet").WithMeta("draft_id", s.DraftID)
	}
	return nil
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, s *dnd5e.Sheet) {
	name := s.Name
	if name == "" {
		name = "Unnamed Adventurer"
	}

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 22, tr(name), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", headSize)
	parts := []string{fmt.Sprintf("Level %d", s.Level)}
	for _, p := range []string{s.RaceName, s.ClassName, s.BackgroundName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	pdf.CellFormat(0, 16, tr(strings.Join(parts, "  |  ")), "B", 1, "L", false, 0, "")
	pdf.Ln(8)
}

func drawAbilities(pdf *gofpdf.Fpdf, s *dnd5e.Sheet) {
	y := pdf.GetY()
	for i, ability := range dnd5e.AllAbilities {
		x := margin + float64(i)*(boxW+4)
		pdf.Rect(x, y, boxW, boxH, "D")

		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.SetXY(x, y+4)
		pdf.CellFormat(boxW, lineH, abilityLabels[ability], "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "B", titleSize)
		pdf.SetXY(x, y+18)
		pdf.CellFormat(boxW, 20, signed(s.AbilityModifiers[ability]), "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", fontSize)
		pdf.SetXY(x, y+40)
		pdf.CellFormat(boxW, lineH, fmt.Sprintf("%d", s.AbilityScores.Get(ability)), "", 0, "C", false, 0, "")
	}
	pdf.SetXY(margin, y+boxH+10)
}

func drawCombat(pdf *gofpdf.Fpdf, s *dnd5e.Sheet) {
	stats := []struct {
		label string
		value string
	}{
		{"Proficiency Bonus", signed(s.ProficiencyBonus)},
		{"Max Hit Points", fmt.Sprintf("%d", s.MaxHitPoints)},
		{"Speed", fmt.Sprintf("%d ft.", s.Speed)},
		{"Initiative", signed(s.AbilityModifiers[dnd5e.AbilityDexterity])},
	}

	w := (pageW - 2*margin) / float64(len(stats))
	pdf.SetFont("Helvetica", "B", fontSize)
	for _, st := range stats {
		pdf.CellFormat(w, lineH, st.label, "LTR", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", headSize)
	for _, st := range stats {
		pdf.CellFormat(w, 18, st.value, "LBR", 0, "C", false, 0, "")
	}
	pdf.Ln(26)
}

func drawSkills(pdf *gofpdf.Fpdf, s *dnd5e.Sheet) {
	section(pdf, "Skills")

	skills := make([]string, 0, len(s.SkillBonuses))
	for skill := range s.SkillBonuses {
		skills = append(skills, skill)
	}
	slices.Sort(skills)

	proficient := make(map[string]bool, len(s.Proficiencies.Skills))
	for _, skill := range s.Proficiencies.Skills {
		proficient[skill] = true
	}

	colW := (pageW - 2*margin) / 3
	pdf.SetFont("Helvetica", "", fontSize)
	for i, skill := range skills {
		mark := "o"
		if proficient[skill] {
			mark = "*"
		}
		label := fmt.Sprintf("%s %s %s (%s)", mark, signed(s.SkillBonuses[skill]), displayKey(skill),
			abilityLabels[dnd5e.AllSkills[skill]])
		ln := 0
		if i%3 == 2 {
			ln = 1
		}
		pdf.CellFormat(colW, lineH, label, "", ln, "L", false, 0, "")
	}
	if len(skills)%3 != 0 {
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

func drawList(pdf *gofpdf.Fpdf, tr func(string) string, title string, items []string) {
	if len(items) == 0 {
		return
	}

	section(pdf, title)
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = displayKey(item)
	}
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.MultiCell(0, lineH, tr(strings.Join(labels, ", ")), "", "L", false)
	pdf.Ln(4)
}

func drawVision(pdf *gofpdf.Fpdf, tr func(string) string, s *dnd5e.Sheet) {
	var lines []string
	for _, vt := range dnd5e.AllVisionTypes {
		rec := s.Vision[vt]
		if rec.Distance <= 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %d ft. (%s)", displayKey(string(vt)), rec.Distance, rec.Source))
	}
	if len(lines) == 0 {
		return
	}

	section(pdf, "Senses")
	pdf.SetFont("Helvetica", "", fontSize)
	for _, line := range lines {
		pdf.CellFormat(0, lineH, tr(line), "", 1, "L", false, 0, "")
	}
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", headSize)
	pdf.CellFormat(0, 16, title, "B", 1, "L", false, 0, "")
	pdf.Ln(2)
}

func signed(v int32) string {
	if v >= 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

// displayKey turns "sleight-of-hand" into "Sleight Of Hand" and
// "category:martial" into "All Martial".
func displayKey(key string) string {
	prefix := ""
	if rest, ok := strings.CutPrefix(key, dnd5e.CategoryPlaceholderPrefix); ok {
		prefix = "All "
		key = rest
	}

	words := strings.FieldsFunc(key, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return prefix + strings.Join(words, " ")
}
