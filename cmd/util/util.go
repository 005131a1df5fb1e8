package util

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
	"github.com/wirecall/wirecall/rpc/transport/http"
	"github.com/wirecall/wirecall/rpc/transport/ws"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupRPCClientFlags adds common RPC connection flags to a command
func SetupRPCClientFlags(cmd *cobra.Command) {
	key := "endpoint"
	cmd.PersistentFlags().String(key, "ws://localhost:8080/rpc", WrapString("The address of the server (ws:// or wss:// for the socket transport, http:// or https:// for the http transport)"))

	key = "connect-timeout"
	cmd.PersistentFlags().Duration(key, common.DefaultConnectTimeout, WrapString("Bound on a single connection attempt"))

	key = "call-timeout"
	cmd.PersistentFlags().Duration(key, common.DefaultCallTimeout, WrapString("Default per-call timeout"))

	key = "heartbeat-interval"
	cmd.PersistentFlags().Duration(key, common.DefaultHeartbeatInterval, WrapString("Liveness ping interval while connected (socket transport only)"))

	key = "auto-reconnect"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to reconnect automatically after connection loss"))

	key = "reconnect-initial-delay"
	cmd.PersistentFlags().Duration(key, common.DefaultReconnectInitialDelay, WrapString("Initial reconnect backoff delay"))

	key = "reconnect-max-delay"
	cmd.PersistentFlags().Duration(key, common.DefaultReconnectMaxDelay, WrapString("Reconnect backoff delay ceiling"))

	key = "reconnect-factor"
	cmd.PersistentFlags().Float64(key, common.DefaultReconnectFactor, WrapString("Reconnect backoff multiplier"))

	key = "disposition"
	cmd.PersistentFlags().String(key, string(common.DispositionQueue), WrapString("What happens to calls submitted while disconnected: queue or reject"))

	key = "buffer-capacity"
	cmd.PersistentFlags().Int(key, common.DefaultBufferCapacity, WrapString("Maximum number of buffered calls under the queue disposition"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "info", WrapString("Log level (debug, info, warn, error)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("wirecall")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() common.ClientConfig {
	return common.ClientConfig{
		Endpoint:              viper.GetString("endpoint"),
		ConnectTimeout:        viper.GetDuration("connect-timeout"),
		CallTimeout:           viper.GetDuration("call-timeout"),
		HeartbeatInterval:     viper.GetDuration("heartbeat-interval"),
		AutoReconnect:         viper.GetBool("auto-reconnect"),
		ReconnectInitialDelay: viper.GetDuration("reconnect-initial-delay"),
		ReconnectMaxDelay:     viper.GetDuration("reconnect-max-delay"),
		ReconnectFactor:       viper.GetFloat64("reconnect-factor"),
		Disposition:           common.Disposition(viper.GetString("disposition")),
		BufferCapacity:        viper.GetInt("buffer-capacity"),
		LogLevel:              viper.GetString("log-level"),
	}
}

// GetTransport creates a transport based on configuration
func GetTransport() (transport.ITransport, error) {
	config := GetClientConfig()
	switch {
	case strings.HasPrefix(config.Endpoint, "ws://"), strings.HasPrefix(config.Endpoint, "wss://"):
		return ws.NewWSClientTransport(config)
	case strings.HasPrefix(config.Endpoint, "http://"), strings.HasPrefix(config.Endpoint, "https://"):
		return http.NewHTTPClientTransport(config)
	default:
		return nil, fmt.Errorf("invalid endpoint scheme in %q: must be ws, wss, http or https", config.Endpoint)
	}
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
