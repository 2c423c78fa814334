package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Debug("\tws origin: ", r.Host)
		return true
	},
}

// handleConnectWs streams one snapshot per tick to the connected
// renderer until the run finishes. The client may send "pause",
// "resume" or "step" as text messages.
func handleConnectWs(w http.ResponseWriter, r *http.Request) {
	s, ok := sessions.get(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	c, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer c.Close()

	commands := make(chan string)
	go func() {
		defer close(commands)
		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Warn("read: ", err)
				}
				return
			}
			if mt != websocket.TextMessage {
				continue
			}
			commands <- strings.TrimSpace(string(message))
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(s.ups))
	defer ticker.Stop()

	paused := false
	for {
		select {
		case command, ok := <-commands:
			if !ok {
				return
			}
			switch command {
			case "pause":
				paused = true
			case "resume":
				paused = false
			case "step":
				if !step(c, s) {
					return
				}
			default:
				log.Warnf("unknown command %q", command)
			}
		case <-ticker.C:
			if paused {
				continue
			}
			if !step(c, s) {
				return
			}
		}
		if s.done() {
			message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = c.WriteControl(websocket.CloseMessage, message, time.Now().Add(cfg.WriteWait.Duration))
			return
		}
	}
}

// step advances the run once and writes the frame; it reports whether
// the stream should continue.
func step(c *websocket.Conn, s *session) bool {
	snapshot, err := s.tick()
	if err != nil {
		// Tick errors are non-transient; report and drop the stream.
		log.Error("tick: ", err)
		message := websocket.FormatCloseMessage(websocket.CloseInternalServerErr, err.Error())
		_ = c.WriteControl(websocket.CloseMessage, message, time.Now().Add(cfg.WriteWait.Duration))
		return false
	}
	_ = c.SetWriteDeadline(time.Now().Add(cfg.WriteWait.Duration))
	if err := c.WriteJSON(snapshot); err != nil {
		log.Error("write: ", err)
		return false
	}
	return true
}
