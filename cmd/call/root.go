package call

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wirecall/wirecall/cmd/util"
	"github.com/wirecall/wirecall/rpc/client"
	"github.com/wirecall/wirecall/rpc/transport"
)

var (
	rpcTransport transport.ITransport
	rpcClient    *client.Client

	// CallCommands represents the call command group
	CallCommands = &cobra.Command{
		Use:                "call",
		Short:              "Invoke remote procedures and access remote properties",
		PersistentPreRunE:  setupClient,
		PersistentPostRunE: teardownClient,
	}

	invokeCmd = &cobra.Command{
		Use:   "invoke [method] [args-json]",
		Short: "Invokes a remote procedure",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload json.RawMessage
			if len(args) == 2 {
				payload = json.RawMessage(args[1])
			}
			result, err := rpcClient.Call(cmd.Context(), args[0], payload)
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}

	getCmd = &cobra.Command{
		Use:   "get [path]",
		Short: "Reads a remote property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := rpcClient.GetProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printResult(result)
			return nil
		},
	}

	setCmd = &cobra.Command{
		Use:   "set [path] [value-json]",
		Short: "Writes a remote property",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rpcClient.SetProperty(cmd.Context(), args[0], json.RawMessage(args[1])); err != nil {
				return err
			}
			fmt.Println("set successfully")
			return nil
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the call command
	util.SetupRPCClientFlags(CallCommands)

	// Add subcommands
	CallCommands.AddCommand(invokeCmd)
	CallCommands.AddCommand(getCmd)
	CallCommands.AddCommand(setCmd)
}

// setupClient initializes the transport and the RPC client
func setupClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}

	// The persistent channel is connected eagerly so connection errors
	// surface before the first call
	if pt, ok := t.(transport.IPersistentTransport); ok {
		if err := pt.Connect(context.Background()); err != nil {
			return err
		}
	}

	rpcTransport = t
	rpcClient = client.New(t)
	return nil
}

// teardownClient releases the transport
func teardownClient(_ *cobra.Command, _ []string) error {
	if rpcTransport != nil {
		return rpcTransport.Close()
	}
	return nil
}

// printResult prints a call result, empty bodies included
func printResult(result json.RawMessage) {
	if len(result) == 0 {
		fmt.Println("ok (no body)")
		return
	}
	fmt.Println(string(result))
}
