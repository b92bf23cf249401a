package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
	"github.com/sellonet/sellonet-web/internal/views"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// socketRequest is the incoming WebSocket message format.
type socketRequest struct {
	Command string `json:"command"`
	Arg     string `json:"arg"`
}

// socketEvent is the outgoing WebSocket message format.
type socketEvent struct {
	Type    string            `json:"type"` // "state", "scroll" or "error"
	State   *navigation.State `json:"state,omitempty"`
	Header  string            `json:"header,omitempty"`
	Pane    string            `json:"pane,omitempty"`
	Section content.Section   `json:"section,omitempty"`
	Content string            `json:"content,omitempty"`
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	v, err := s.views.Get(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "view not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req socketRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "invalid message format")
			continue
		}

		cmd, err := navigation.ParseCommand(req.Command, req.Arg)
		if err != nil {
			s.sendError(conn, err.Error())
			continue
		}

		s.applyCommand(conn, v, cmd)
	}
}

// applyCommand runs one command and sends the new state followed by one
// scroll event per scroll request.
func (s *Server) applyCommand(conn *websocket.Conn, v *views.View, cmd navigation.Command) {
	res, err := v.Apply(cmd)
	if err != nil {
		s.sendError(conn, err.Error())
		return
	}

	opts := s.pageOptions(v.ID)
	var header, pane bytes.Buffer
	if err := s.renderer.Header(&header, res.State, opts); err != nil {
		log.Printf("server: rendering header for %s: %v", v.ID, err)
		s.sendError(conn, "render failed")
		return
	}
	if err := s.renderer.Panel(&pane, res.State, opts); err != nil {
		log.Printf("server: rendering pane for %s: %v", v.ID, err)
		s.sendError(conn, "render failed")
		return
	}

	state := res.State
	s.send(conn, socketEvent{
		Type:   "state",
		State:  &state,
		Header: header.String(),
		Pane:   pane.String(),
	})
	for _, section := range res.Scrolls {
		s.send(conn, socketEvent{Type: "scroll", Section: section})
	}
}

func (s *Server) send(conn *websocket.Conn, ev socketEvent) {
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

func (s *Server) sendError(conn *websocket.Conn, message string) {
	s.send(conn, socketEvent{Type: "error", Content: message})
}
