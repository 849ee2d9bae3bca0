package client

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var listRacesCmd = &cobra.Command{
	Use:   "list-races",
	Short: "List all available races",
	Long:  `List all available races with their subraces and traits.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Printf("Requesting races from %s...", serverAddr)

		resp, err := call(v1alpha1.MethodListRaces, map[string]any{})
		if err != nil {
			return err
		}

		races := resp.GetFields()["races"].GetListValue().GetValues()
		fmt.Printf("Found %d races:\n\n", len(races))
		for _, r := range races {
			race := r.GetStructValue().GetFields()
			fmt.Printf("🎭 %s (ID: %s)\n", race["name"].GetStringValue(), race["id"].GetStringValue())

			if traits := race["traits"].GetListValue().GetValues(); len(traits) > 0 {
				fmt.Printf("   Traits:\n")
				for _, t := range traits {
					fmt.Printf("     - %s\n", t.GetStructValue().GetFields()["name"].GetStringValue())
				}
			}

			if subraces := race["subraces"].GetListValue().GetValues(); len(subraces) > 0 {
				fmt.Printf("   Subraces:\n")
				for _, sr := range subraces {
					subrace := sr.GetStructValue().GetFields()
					fmt.Printf("     - %s (ID: %s)\n", subrace["name"].GetStringValue(), subrace["id"].GetStringValue())
				}
			}

			fmt.Println()
		}
		return nil
	},
}

var listClassesCmd = &cobra.Command{
	Use:   "list-classes",
	Short: "List all available classes",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodListClasses, map[string]any{})
		if err != nil {
			return err
		}

		classes := resp.GetFields()["classes"].GetListValue().GetValues()
		fmt.Printf("Found %d classes:\n\n", len(classes))
		for _, c := range classes {
			class := c.GetStructValue().GetFields()
			fmt.Printf("⚔️  %s (ID: %s) d%d, choose %d skills\n",
				class["name"].GetStringValue(),
				class["id"].GetStringValue(),
				int(class["hit_die"].GetNumberValue()),
				int(class["skill_choice_count"].GetNumberValue()),
			)
		}
		return nil
	},
}

var listBackgroundsCmd = &cobra.Command{
	Use:   "list-backgrounds",
	Short: "List all available backgrounds",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodListBackgrounds, map[string]any{})
		if err != nil {
			return err
		}
		return printStruct(resp)
	},
}
