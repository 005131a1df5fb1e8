package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wirecall/wirecall/cmd/util"
	"github.com/wirecall/wirecall/rpc/batch"
	"github.com/wirecall/wirecall/rpc/transport"
)

// batchFileItem is one sub-call as specified in the input file
type batchFileItem struct {
	Verb string          `json:"verb"`
	URL  string          `json:"url"`
	Body json.RawMessage `json:"body,omitempty"`
}

var (
	rpcTransport transport.ITransport

	// BatchCmd sends several calls as one physical round trip
	BatchCmd = &cobra.Command{
		Use:   "batch [file]",
		Short: "Sends a batch of calls from a JSON file (use - for stdin)",
		Long: util.WrapString("Reads a JSON array of sub-calls ({verb, url, body}), packs them into one batch round trip and prints the per-call results. " +
			"Sub-calls the server did not answer are reported with status 0."),
		Args:               cobra.ExactArgs(1),
		PersistentPreRunE:  setupTransport,
		PersistentPostRunE: teardownTransport,
		RunE:               run,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the batch command
	util.SetupRPCClientFlags(BatchCmd)

	// Batch-specific flags
	BatchCmd.Flags().String("target", batch.DefaultTarget, util.WrapString("Server-side path the combined round trip is addressed to"))
}

func run(cmd *cobra.Command, args []string) error {
	items, err := readItems(args[0])
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no sub-calls in input")
	}

	target, _ := cmd.Flags().GetString("target")
	b := batch.NewWithTarget(rpcTransport, target)
	for _, item := range items {
		b.Add(item.Verb, item.URL, item.Body)
	}

	results, err := b.Execute(cmd.Context())
	if err != nil {
		return err
	}

	for _, result := range results {
		if result.StatusCode == 0 {
			fmt.Printf("#%d: no response\n", result.SeqID)
			continue
		}
		fmt.Printf("#%d: status %d %s\n", result.SeqID, result.StatusCode, result.Body)
	}
	return nil
}

// readItems loads the sub-call list from a file or stdin
func readItems(name string) ([]batchFileItem, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}

	var items []batchFileItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("invalid batch input: %w", err)
	}
	return items, nil
}

// setupTransport initializes the transport
func setupTransport(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}
	if pt, ok := t.(transport.IPersistentTransport); ok {
		if err := pt.Connect(context.Background()); err != nil {
			return err
		}
	}

	rpcTransport = t
	return nil
}

// teardownTransport releases the transport
func teardownTransport(_ *cobra.Command, _ []string) error {
	if rpcTransport != nil {
		return rpcTransport.Close()
	}
	return nil
}
