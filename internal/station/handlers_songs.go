package station

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"station-service/internal/httpx"
	"station-service/internal/token"
)

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationId")

	var song Song
	if err := json.NewDecoder(r.Body).Decode(&song); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	song.YtID = strings.TrimSpace(song.YtID)
	if song.YtID == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing song id")
		return
	}

	added, err := s.store.AddSong(r.Context(), stationID, &song)
	if err != nil {
		log.Printf("station: add song to station %s: %v", stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to update station")
		return
	}

	s.events.Publish(r.Context(), "station.song.added", map[string]any{
		"stationId": stationID,
		"song":      added,
	})
	httpx.WriteJSON(w, http.StatusOK, added)
}

func (s *Server) handleRemoveSong(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationId")
	songID := chi.URLParam(r, "songId")

	if err := s.store.RemoveSong(r.Context(), stationID, songID); err != nil {
		log.Printf("station: remove song %s from station %s: %v", songID, stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to remove station")
		return
	}

	s.events.Publish(r.Context(), "station.song.removed", map[string]any{
		"stationId": stationID,
		"songId":    songID,
	})
	httpx.WriteJSON(w, http.StatusOK, songID)
}

func (s *Server) handleLikeSong(w http.ResponseWriter, r *http.Request) {
	claims := token.FromContext(r.Context())
	if claims == nil {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	stationID := chi.URLParam(r, "stationId")
	songID := chi.URLParam(r, "songId")

	song, err := s.likes.LikeSong(r.Context(), stationID, songID, claims.UserID)
	if err != nil {
		log.Printf("station: like song %s in station %s: %v", songID, stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to update station")
		return
	}

	s.events.Publish(r.Context(), "station.song.liked", map[string]any{
		"stationId": stationID,
		"songId":    songID,
		"userId":    claims.UserID,
	})
	httpx.WriteJSON(w, http.StatusOK, song)
}

func (s *Server) handleUnlikeSong(w http.ResponseWriter, r *http.Request) {
	claims := token.FromContext(r.Context())
	if claims == nil {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	stationID := chi.URLParam(r, "stationId")
	songID := chi.URLParam(r, "songId")

	result, err := s.likes.UnlikeSong(r.Context(), stationID, songID, claims.UserID)
	if err != nil {
		log.Printf("station: unlike song %s in station %s: %v", songID, stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to update station")
		return
	}

	s.events.Publish(r.Context(), "station.song.unliked", map[string]any{
		"stationId": stationID,
		"songId":    songID,
		"userId":    claims.UserID,
	})
	httpx.WriteJSON(w, http.StatusOK, result)
}
