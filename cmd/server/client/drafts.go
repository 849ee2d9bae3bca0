package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	playerID     string
	draftID      string
	draftName    string
	raceID       string
	subraceID    string
	classID      string
	backgroundID string
	skillIDs     []string
	rollMethod   string
)

var createDraftCmd = &cobra.Command{
	Use:   "create-draft",
	Short: "Create a new character draft",
	Long:  `Create a new character draft, replacing the player's previous draft.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Printf("Creating character draft for player %s...", playerID)

		resp, err := call(v1alpha1.MethodCreateDraft, map[string]any{
			"player_id": playerID,
			"name":      draftName,
		})
		if err != nil {
			return err
		}

		draft := resp.GetFields()["draft"].GetStructValue().GetFields()
		id := draft["id"].GetStringValue()
		fmt.Printf("✅ Character draft created successfully!\n\n")
		fmt.Printf("Draft ID: %s\n", id)
		fmt.Printf("Player ID: %s\n", draft["player_id"].GetStringValue())
		fmt.Printf("Expires At: %d\n", int64(draft["expires_at"].GetNumberValue()))

		fmt.Printf("\n💡 Next steps:\n")
		fmt.Printf("1. Choose race: rpg-sheet client update-race --draft-id %s --race dwarf --subrace mountain-dwarf\n", id)
		fmt.Printf("2. Choose class: rpg-sheet client update-class --draft-id %s --class fighter\n", id)
		fmt.Printf("3. View the sheet: rpg-sheet client get-sheet --draft-id %s\n", id)
		return nil
	},
}

var getDraftCmd = &cobra.Command{
	Use:   "get-draft",
	Short: "Get a character draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodGetDraft, map[string]any{"draft_id": draftID})
		if err != nil {
			return err
		}
		return printStruct(resp)
	},
}

var updateNameCmd = &cobra.Command{
	Use:   "update-name",
	Short: "Update the character name in a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodUpdateName, map[string]any{
			"draft_id": draftID,
			"name":     draftName,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✅ Name updated to %q\n",
			resp.GetFields()["draft"].GetStructValue().GetFields()["name"].GetStringValue())
		return nil
	},
}

var updateRaceCmd = &cobra.Command{
	Use:   "update-race",
	Short: "Update character race in a draft",
	Long: `Update the character's race (and optionally subrace) in an existing draft.
Race and subrace are reference IDs as shown by list-races, e.g. dwarf and mountain-dwarf.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodUpdateRace, map[string]any{
			"draft_id":   draftID,
			"race_id":    raceID,
			"subrace_id": subraceID,
		})
		if err != nil {
			return err
		}

		draft := resp.GetFields()["draft"].GetStructValue().GetFields()
		fmt.Printf("✅ Character race updated successfully!\n\n")
		fmt.Printf("Race: %s\n", draft["race_id"].GetStringValue())
		if sub := draft["subrace_id"].GetStringValue(); sub != "" {
			fmt.Printf("Subrace: %s\n", sub)
		}
		printWarnings(resp)
		return nil
	},
}

var updateClassCmd = &cobra.Command{
	Use:   "update-class",
	Short: "Update character class in a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodUpdateClass, map[string]any{
			"draft_id": draftID,
			"class_id": classID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✅ Class set to %s\n",
			resp.GetFields()["draft"].GetStructValue().GetFields()["class_id"].GetStringValue())
		printWarnings(resp)
		return nil
	},
}

var updateBackgroundCmd = &cobra.Command{
	Use:   "update-background",
	Short: "Update character background in a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodUpdateBackground, map[string]any{
			"draft_id":      draftID,
			"background_id": backgroundID,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✅ Background set to %s\n",
			resp.GetFields()["draft"].GetStructValue().GetFields()["background_id"].GetStringValue())
		return nil
	},
}

var updateSkillsCmd = &cobra.Command{
	Use:   "update-skills",
	Short: "Choose class skills for a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		skills := make([]any, 0, len(skillIDs))
		for _, id := range skillIDs {
			skills = append(skills, id)
		}

		resp, err := call(v1alpha1.MethodUpdateSkills, map[string]any{
			"draft_id":  draftID,
			"skill_ids": skills,
		})
		if err != nil {
			return err
		}
		fmt.Printf("✅ Skills updated\n")
		printWarnings(resp)
		return nil
	},
}

var rollAbilityScoresCmd = &cobra.Command{
	Use:   "roll-ability-scores",
	Short: "Roll ability scores for character creation",
	Long:  `Roll 6 ability scores using 4d6 drop lowest (default) or 3d6.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodRollAbilityScores, map[string]any{"method": rollMethod})
		if err != nil {
			return err
		}

		fmt.Printf("🎲 Rolled with %s:\n", resp.GetFields()["method"].GetStringValue())
		for i, r := range resp.GetFields()["rolls"].GetListValue().GetValues() {
			roll := r.GetStructValue().GetFields()
			fmt.Printf("  %d. %2d  %v", i+1, int(roll["total"].GetNumberValue()), roll["dice"].GetListValue().AsSlice())
			if dropped := roll["dropped"].GetListValue().AsSlice(); len(dropped) > 0 {
				fmt.Printf(" dropped %v", dropped)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	createDraftCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	createDraftCmd.Flags().StringVar(&draftName, "name", "", "Character name (optional)")
	_ = createDraftCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{
		getDraftCmd, updateNameCmd, updateRaceCmd, updateClassCmd,
		updateBackgroundCmd, updateSkillsCmd, getSheetCmd, renderSheetCmd,
	} {
		cmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
		_ = cmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	}

	updateNameCmd.Flags().StringVar(&draftName, "name", "", "Character name (required)")
	_ = updateNameCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	updateRaceCmd.Flags().StringVar(&raceID, "race", "", "Race ID (required, e.g. dwarf)")
	updateRaceCmd.Flags().StringVar(&subraceID, "subrace", "", "Subrace ID (optional, e.g. mountain-dwarf)")
	_ = updateRaceCmd.MarkFlagRequired("race") // nolint:errcheck // safe to ignore in init

	updateClassCmd.Flags().StringVar(&classID, "class", "", "Class ID (required, e.g. fighter)")
	_ = updateClassCmd.MarkFlagRequired("class") // nolint:errcheck // safe to ignore in init

	updateBackgroundCmd.Flags().StringVar(&backgroundID, "background", "", "Background ID (required, e.g. soldier)")
	_ = updateBackgroundCmd.MarkFlagRequired("background") // nolint:errcheck // safe to ignore in init

	updateSkillsCmd.Flags().StringSliceVar(&skillIDs, "skill", nil, "Skill ID, repeatable")

	rollAbilityScoresCmd.Flags().StringVar(&rollMethod, "method", "", "4d6_drop_lowest (default) or 3d6")
}
