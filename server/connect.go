package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"showdown-teambuilder/client"
	"showdown-teambuilder/game"
	"showdown-teambuilder/logger"
	"showdown-teambuilder/parser"
)

const maxReconnects = 3

func sendEvent(w http.ResponseWriter, flusher http.Flusher, format string, args ...any) {
	fmt.Fprintf(w, "data: "+format+"\n\n", args...)
	flusher.Flush()
}

// handleConnect follows a Showdown battle room and streams the log plus the scouting panel
// as server-sent events until the battle ends, the browser leaves or reconnects run out.
func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	roomID := client.RoomID(r.URL.Query().Get("roomid"))
	if roomID == "" {
		http.Error(w, "room id cannot be empty", http.StatusBadRequest)
		return
	}
	logger.Info("connect requested", "remote", r.RemoteAddr, "room", roomID)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

	ctx := r.Context()
	state := game.NewBattleState()
	ping := time.NewTicker(s.pingInterval)
	defer ping.Stop()

	var lastErr error
	for attempt := 0; attempt < maxReconnects; attempt++ {
		if attempt > 0 {
			sendEvent(w, flusher, "<p>Reconnecting to Showdown... (attempt %d/%d)</p>", attempt+1, maxReconnects)
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.retryDelay):
			}
		}

		sc, err := client.NewShowdownClient(ctx, s.cfg.ShowdownURL)
		if err != nil {
			logger.Warn("showdown connect failed", "room", roomID, "attempt", attempt+1, "error", err)
			sendEvent(w, flusher, "<p>Error connecting to Showdown: %s</p>", template.HTMLEscapeString(err.Error()))
			lastErr = err
			continue
		}
		if err := sc.JoinRoom(roomID); err != nil {
			sc.Close()
			logger.Warn("join failed", "room", roomID, "error", err)
			lastErr = err
			continue
		}
		sendEvent(w, flusher, "<p>Connected to room <strong>%s</strong>. Waiting for events...</p>", template.HTMLEscapeString(roomID))

		done, err := s.stream(w, flusher, sc, state, ping.C, r)
		sc.Close()
		if done {
			return
		}
		lastErr = err
	}

	if lastErr != nil {
		sendEvent(w, flusher, "<p class='error'>Persistent error talking to Showdown: %s</p>", template.HTMLEscapeString(lastErr.Error()))
	}
}

// stream relays one connection. done reports that the handler should stop for good (the
// battle ended or the browser went away); otherwise err says why the connection dropped.
func (s *Server) stream(w http.ResponseWriter, flusher http.Flusher, sc *client.ShowdownClient, state *game.BattleState, ping <-chan time.Time, r *http.Request) (bool, error) {
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	msgs, errc := sc.Messages(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("client disconnected", "remote", r.RemoteAddr)
			return true, nil
		case <-ping:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		case msg, ok := <-msgs:
			if !ok {
				err := <-errc
				if err == nil {
					return true, nil
				}
				logger.Warn("showdown stream dropped", "error", err)
				return false, err
			}
			if s.relay(w, flusher, state, msg) {
				logger.Info("battle ended, closing stream", "winner", state.Winner)
				return true, nil
			}
		}
	}
}

// relay applies a frame to state, forwards the lines the panel cares about and re-renders
// the panel. It reports whether the battle is over.
func (s *Server) relay(w http.ResponseWriter, flusher http.Flusher, state *game.BattleState, msg string) bool {
	var anyLogSent bool
	for _, line := range strings.Split(msg, "\n") {
		if parser.ProcessLine(state, s.svc.Dex, line) {
			sendEvent(w, flusher, "<p class='logline'>%s</p>", template.HTMLEscapeString(line))
			anyLogSent = true
		}
	}
	if anyLogSent {
		sendEvent(w, flusher, "%s", parser.RenderScouting(state, s.svc.Calc))
	}
	return state.Ended
}
