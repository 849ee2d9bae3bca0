// Package client provides test commands for the rpg-sheet gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the sheet service",
	Long:  `Client commands allow you to test the sheet service by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Catalog commands
	ClientCmd.AddCommand(listRacesCmd)
	ClientCmd.AddCommand(listClassesCmd)
	ClientCmd.AddCommand(listBackgroundsCmd)

	// Draft commands
	ClientCmd.AddCommand(createDraftCmd)
	ClientCmd.AddCommand(getDraftCmd)
	ClientCmd.AddCommand(updateNameCmd)
	ClientCmd.AddCommand(updateRaceCmd)
	ClientCmd.AddCommand(updateClassCmd)
	ClientCmd.AddCommand(updateBackgroundCmd)
	ClientCmd.AddCommand(updateSkillsCmd)
	ClientCmd.AddCommand(rollAbilityScoresCmd)

	// Sheet commands
	ClientCmd.AddCommand(getSheetCmd)
	ClientCmd.AddCommand(renderSheetCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// call invokes one sheet service method with the given request fields
func call(method string, fields map[string]any) (*structpb.Struct, error) {
	conn, err := createConnection()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	req, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := v1alpha1.NewSheetServiceClient(conn).Call(ctx, method, req)
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", method, err)
	}
	return resp, nil
}

// printStruct writes a response as indented JSON
func printStruct(s *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printWarnings(resp *structpb.Struct) {
	warnings := resp.GetFields()["warnings"].GetListValue().GetValues()
	if len(warnings) == 0 {
		return
	}
	fmt.Printf("\n⚠️  Warnings:\n")
	for _, w := range warnings {
		fields := w.GetStructValue().GetFields()
		fmt.Printf("  - %s: %s\n", fields["field"].GetStringValue(), fields["message"].GetStringValue())
	}
}
