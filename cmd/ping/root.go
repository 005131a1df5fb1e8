package ping

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wirecall/wirecall/cmd/util"
	"github.com/wirecall/wirecall/rpc/transport"
)

var (
	// PingCmd checks reachability of the configured endpoint
	PingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Checks that the configured endpoint is reachable",
		Args:  cobra.NoArgs,
		RunE:  run,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the ping command
	util.SetupRPCClientFlags(PingCmd)
}

func run(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}
	defer func() {
		_ = t.Close()
	}()

	// The persistent channel proves liveness by connecting, the
	// stateless channel by a GET against the ping path
	if pt, ok := t.(transport.IPersistentTransport); ok {
		if err := pt.Connect(context.Background()); err != nil {
			return err
		}
		fmt.Println("connected")
		return nil
	}

	resp, err := t.Send(cmd.Context(), transport.Request{Verb: "GET", Target: "/ping"})
	if err != nil {
		return err
	}
	fmt.Printf("reachable (status %d)\n", resp.StatusCode)
	return nil
}
