// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "RPG character sheet gRPC server",
	Long: `rpg-sheet resolves what a D&D 5e character's race, class and background grant,
stores character drafts and assembles printable character sheets.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
