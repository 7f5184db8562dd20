// Package client provides commands that call a running stats server
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Saichiiro/astoria-sub001/internal/catalog"
	"github.com/Saichiiro/astoria-sub001/internal/entities/inventory"
	"github.com/Saichiiro/astoria-sub001/internal/errors"
	statsv1 "github.com/Saichiiro/astoria-sub001/internal/handlers/stats/v1"
)

var (
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running stats server",
	Long:  `Client commands send real gRPC requests to the stats service and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(resolveCmd)
	ClientCmd.AddCommand(totalsCmd)
	ClientCmd.AddCommand(characterCmd)
	ClientCmd.AddCommand(inventoryCmd)
	ClientCmd.AddCommand(saveCmd)
}

func createStatsClient() (statsv1.StatsServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return statsv1.NewStatsServiceClient(conn), cleanup, nil
}

// itemsValue loads a catalog and turns its items into a structpb-ready list.
func itemsValue(path string) ([]any, error) {
	items, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	list := make([]any, 0, len(items))
	for _, item := range items {
		v, err := itemValue(item)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func itemValue(item inventory.Item) (map[string]any, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode item")
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "failed to encode item")
	}
	return out, nil
}

func printResponse(w io.Writer, resp *structpb.Struct) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// callError unwraps a gRPC status into the service error so the message and
// metadata are printed instead of the raw status.
func callError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	var e *errors.Error
	if errors.As(converted, &e) && len(e.Meta) > 0 {
		return fmt.Errorf("failed to %s: %s %v", action, e.Message, e.Meta)
	}
	return fmt.Errorf("failed to %s: %w", action, converted)
}
