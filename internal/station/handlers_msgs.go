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

func (s *Server) handleAddMsg(w http.ResponseWriter, r *http.Request) {
	claims := token.FromContext(r.Context())
	if claims == nil {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	stationID := chi.URLParam(r, "stationId")

	var body struct {
		Txt string `json:"txt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Txt = strings.TrimSpace(body.Txt)
	if body.Txt == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing msg txt")
		return
	}

	msg := &Message{
		Txt: body.Txt,
		By: Creator{
			ID:       claims.UserID,
			Fullname: claims.Fullname,
			IsAdmin:  claims.IsAdmin,
		},
	}

	saved, err := s.store.AddMessage(r.Context(), stationID, msg)
	if err != nil {
		log.Printf("station: add msg to station %s: %v", stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to update station")
		return
	}

	s.events.Publish(r.Context(), "station.msg.added", map[string]any{
		"stationId": stationID,
		"msg":       saved,
	})
	httpx.WriteJSON(w, http.StatusOK, saved)
}

func (s *Server) handleRemoveMsg(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationId")
	msgID := chi.URLParam(r, "msgId")

	removedID, err := s.store.RemoveMessage(r.Context(), stationID, msgID)
	if err != nil {
		log.Printf("station: remove msg %s from station %s: %v", msgID, stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to remove station msg")
		return
	}

	s.events.Publish(r.Context(), "station.msg.removed", map[string]any{
		"stationId": stationID,
		"msgId":     msgID,
	})
	httpx.WriteJSON(w, http.StatusOK, removedID)
}
