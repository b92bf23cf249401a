package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sellonet/sellonet-web/internal/content"
	"github.com/sellonet/sellonet-web/internal/navigation"
	"github.com/sellonet/sellonet-web/internal/views"
)

// contentResponse is the JSON response for /api/content.
type contentResponse struct {
	Industries   []content.Industry   `json:"industries"`
	Technologies []content.Technology `json:"technologies"`
	Sections     []content.Section    `json:"sections"`
}

// stateResponse is the JSON response for /api/views/{id}/state.
type stateResponse struct {
	ViewID string           `json:"view_id"`
	State  navigation.State `json:"state"`
}

func (s *Server) handleNewView(w http.ResponseWriter, r *http.Request) {
	v := s.views.Create()
	http.Redirect(w, r, "/views/"+v.ID, http.StatusSeeOther)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	v, err := s.views.Get(chi.URLParam(r, "id"))
	if err != nil {
		// Stale bookmarks start a fresh view.
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, v.State(), s.pageOptions(v.ID)); err != nil {
		log.Printf("server: rendering view %s: %v", v.ID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	v, err := s.views.Get(chi.URLParam(r, "id"))
	if err != nil {
		// Forms posted from a stale tab land on a fresh view.
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	cmd, err := navigation.ParseCommand(r.PostForm.Get("command"), r.PostForm.Get("arg"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := v.Apply(cmd)
	if errors.Is(err, views.ErrViewNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), commandStatus(err))
		return
	}

	target := "/views/" + v.ID
	if n := len(res.Scrolls); n > 0 {
		target += "#" + string(res.Scrolls[n-1])
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, contentResponse{
		Industries:   s.content.Industries(),
		Technologies: s.content.Technologies(),
		Sections:     s.content.Sections(),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v, err := s.views.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stateResponse{ViewID: v.ID, State: v.State()})
}

// commandStatus maps a command error to an HTTP status.
func commandStatus(err error) int {
	switch {
	case errors.Is(err, navigation.ErrUnknownTechnology), errors.Is(err, navigation.ErrUnknownCommand):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
