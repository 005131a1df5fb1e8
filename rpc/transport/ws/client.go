package ws

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wirecall/wirecall/rpc/codec"
	"github.com/wirecall/wirecall/rpc/common"
	"github.com/wirecall/wirecall/rpc/transport"
	"github.com/wirecall/wirecall/rpc/transport/socket"
)

// Deadline applied to ping control frames so a stalled peer cannot block
// the writer forever
const pingWriteWait = 10 * time.Second

// clientConnector implements the socket.IConnector interface for
// WebSocket connections
type clientConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see socket.IConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "ws"
}

func (c *clientConnector) Connect(ctx context.Context, endpoint string) (socket.IFramedConn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return &wsConn{conn: conn}, nil
}

// --------------------------------------------------------------------------
// Framed connection
// --------------------------------------------------------------------------

// wsConn adapts a gorilla WebSocket connection to the IFramedConn
// interface. WebSocket messages map one-to-one onto frames
type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) WriteFrame(data []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) ReadFrame() ([]byte, error) {
	for {
		msgType, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		// Control frames are handled by gorilla internally; anything
		// else but data frames is skipped
		if msgType == websocket.TextMessage || msgType == websocket.BinaryMessage {
			return data, nil
		}
	}
}

func (c *wsConn) Ping() error {
	return c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingWriteWait))
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// --------------------------------------------------------------------------
// Client Transport Factory Method
// --------------------------------------------------------------------------

// NewWSClientTransport creates a persistent client transport over
// WebSocket with JSON envelopes
func NewWSClientTransport(config common.ClientConfig) (transport.IPersistentTransport, error) {
	return socket.NewClientTransport(config, &clientConnector{}, codec.NewJSONCodec())
}
