package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"showdown-teambuilder/logger"
)

const (
	DefaultServerURL = "wss://sim.psim.us/showdown/websocket"
	battlePrefix     = "battle-"
)

type ShowdownClient struct {
	Conn *websocket.Conn

	writeMu sync.Mutex
}

func NewShowdownClient(ctx context.Context, serverURL string) (*ShowdownClient, error) {
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("parsing server url: %w", err)
	}

	logger.Info("connecting to showdown", "url", u.String())
	c, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dialing websocket: %w", err)
	}

	logger.Debug("connected to showdown", "url", u.String())
	return &ShowdownClient{Conn: c}, nil
}

// RoomID adds the battle- prefix Showdown expects on battle rooms.
func RoomID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || strings.HasPrefix(id, battlePrefix) {
		return id
	}
	return battlePrefix + id
}

// Messages streams raw frames until ctx is cancelled or the read fails. The read error, if
// any, is delivered on the error channel; both channels are closed when streaming stops.
func (sc *ShowdownClient) Messages(ctx context.Context) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)

	stop := context.AfterFunc(ctx, func() { sc.Conn.Close() })
	go func() {
		defer close(out)
		defer close(errc)
		defer stop()
		for {
			_, message, err := sc.Conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					errc <- fmt.Errorf("reading message: %w", err)
				}
				return
			}
			logger.Debug("received", "bytes", len(message))
			select {
			case out <- string(message):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, errc
}

func (sc *ShowdownClient) Send(message string) error {
	sc.writeMu.Lock()
	defer sc.writeMu.Unlock()

	logger.Debug("sending", "message", message)
	return sc.Conn.WriteMessage(websocket.TextMessage, []byte(message))
}

func (sc *ShowdownClient) JoinRoom(roomID string) error {
	roomID = RoomID(roomID)
	if roomID == "" {
		return fmt.Errorf("room id is empty")
	}
	return sc.Send(fmt.Sprintf("|/join %s", roomID))
}

func (sc *ShowdownClient) Close() error {
	return sc.Conn.Close()
}
