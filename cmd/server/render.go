package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/sheet"
)

var (
	renderDraftPath string
	renderOutPath   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a draft file to a PDF character sheet",
	Long: `Read a character draft from a JSON or YAML file (snake_case fields, as returned
by GetDraft), assemble its sheet and write it as a PDF. No server or redis is needed.`,
	Example: `  rpg-sheet render --draft thorin.yaml --out thorin.pdf`,
	RunE:    runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderDraftPath, "draft", "", "Draft file, .json, .yaml or .yml (required)")
	renderCmd.Flags().StringVarP(&renderOutPath, "out", "o", "", "Output file (default: draft file name with .pdf)")
	renderCmd.Flags().StringVar(&dataDir, "data-dir", "", "Reference data directory (SHEET_DATA_DIR)")
	_ = renderCmd.MarkFlagRequired("draft") // nolint:errcheck // safe to ignore in init
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	draft, err := readDraft(renderDraftPath)
	if err != nil {
		return err
	}

	_, resolver, err := loadEngine(cfg)
	if err != nil {
		return err
	}

	out := renderOutPath
	if out == "" {
		out = strings.TrimSuffix(renderDraftPath, filepath.Ext(renderDraftPath)) + ".pdf"
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer func() {
		_ = f.Close() // nolint:errcheck // write errors are reported by RenderTo
	}()

	if err := sheet.RenderTo(f, resolver.BuildSheet(draft)); err != nil {
		return fmt.Errorf("failed to render sheet: %w", err)
	}

	fmt.Printf("📄 Wrote %s\n", out)
	return nil
}

// readDraft decodes a draft file. YAML is converted to JSON first so both
// formats share the draft's json field names.
func readDraft(path string) (*dnd5e.CharacterDraft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse draft yaml: %w", err)
		}
		if raw, err = json.Marshal(doc); err != nil {
			return nil, fmt.Errorf("failed to convert draft yaml: %w", err)
		}
	case ".json":
	default:
		return nil, fmt.Errorf("unsupported draft file type %q", filepath.Ext(path))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	draft := &dnd5e.CharacterDraft{}
	if err := dec.Decode(draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	if draft.Level == 0 {
		draft.Level = 1
	}
	return draft, nil
}
