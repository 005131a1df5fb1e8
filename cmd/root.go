package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wirecall/wirecall/cmd/batch"
	"github.com/wirecall/wirecall/cmd/call"
	"github.com/wirecall/wirecall/cmd/ping"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "wirecall",
		Short: "client for remote calls over socket or http",
		Long: fmt.Sprintf(`wirecall (v%s)

A client-side transport for remote procedure calls and property access
over a persistent WebSocket channel or a stateless HTTP channel.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of wirecall",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wirecall v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(call.CallCommands)
	RootCmd.AddCommand(batch.BatchCmd)
	RootCmd.AddCommand(ping.PingCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
