package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

var (
	resolveRaceID       string
	resolveSubraceID    string
	resolveClassID      string
	resolveBackgroundID string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the fixed data a selection grants",
	Long: `Resolve a race, subrace, class and background against the reference data and
print the aggregated fixed data and vision as JSON. No server or redis is needed.`,
	Example: `  rpg-sheet resolve --race dwarf --subrace mountain-dwarf --class fighter --background soldier`,
	RunE:    runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveRaceID, "race", "", "Race ID")
	resolveCmd.Flags().StringVar(&resolveSubraceID, "subrace", "", "Subrace ID")
	resolveCmd.Flags().StringVar(&resolveClassID, "class", "", "Class ID")
	resolveCmd.Flags().StringVar(&resolveBackgroundID, "background", "", "Background ID")
	resolveCmd.Flags().StringVar(&dataDir, "data-dir", "", "Reference data directory (SHEET_DATA_DIR)")
}

type resolveOutput struct {
	Race       dnd5e.FixedData `json:"race"`
	Class      dnd5e.ClassData `json:"class"`
	Background dnd5e.FixedData `json:"background"`
	Vision     dnd5e.VisionMap `json:"vision"`
}

func runResolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	_, resolver, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	out := resolveOutput{
		Race:       resolver.ResolveRace(resolveRaceID, resolveSubraceID),
		Class:      resolver.ResolveClass(resolveClassID),
		Background: resolver.ResolveBackground(resolveBackgroundID),
		Vision: resolver.ResolveVision(&dnd5e.CharacterDraft{
			RaceID:    resolveRaceID,
			SubraceID: resolveSubraceID,
		}),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
