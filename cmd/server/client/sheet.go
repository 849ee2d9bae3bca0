package client

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var outputPath string

var getSheetCmd = &cobra.Command{
	Use:   "get-sheet",
	Short: "Show the assembled character sheet of a draft",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodGetSheet, map[string]any{"draft_id": draftID})
		if err != nil {
			return err
		}
		return printStruct(resp)
	},
}

var renderSheetCmd = &cobra.Command{
	Use:   "render-sheet",
	Short: "Render the character sheet of a draft to a PDF file",
	RunE: func(_ *cobra.Command, _ []string) error {
		resp, err := call(v1alpha1.MethodRenderSheet, map[string]any{"draft_id": draftID})
		if err != nil {
			return err
		}

		pdf, err := base64.StdEncoding.DecodeString(resp.GetFields()["pdf"].GetStringValue())
		if err != nil {
			return fmt.Errorf("failed to decode pdf: %w", err)
		}

		path := outputPath
		if path == "" {
			path = draftID + ".pdf"
		}
		if err := os.WriteFile(path, pdf, 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		fmt.Printf("📄 Wrote %s (%d bytes)\n", path, len(pdf))
		return nil
	},
}

func init() {
	renderSheetCmd.Flags().StringVarP(&outputPath, "out", "o", "", "Output file (default <draft-id>.pdf)")
}
