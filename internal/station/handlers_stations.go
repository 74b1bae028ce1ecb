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

func (s *Server) handleQueryStations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := Filter{
		Name:      q.Get("txt"),
		Tags:      parseTags(q["tags"]),
		SortField: q.Get("sortField"),
	}
	if q.Get("sortDir") == "-1" {
		filter.SortDir = -1
	}

	stations, err := s.store.Query(r.Context(), filter)
	if err != nil {
		log.Printf("station: query stations: %v", err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to get stations")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, stations)
}

func (s *Server) handleGetStation(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationId")

	st, err := s.store.GetByID(r.Context(), stationID)
	if err != nil {
		log.Printf("station: get station %s: %v", stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to get station")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, st)
}

func (s *Server) handleAddStation(w http.ResponseWriter, r *http.Request) {
	claims := token.FromContext(r.Context())
	if claims == nil {
		httpx.WriteError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var st Station
	if err := json.NewDecoder(r.Body).Decode(&st); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	st.CreatedBy = Creator{
		ID:       claims.UserID,
		Fullname: claims.Fullname,
		IsAdmin:  claims.IsAdmin,
	}

	added, err := s.store.Add(r.Context(), &st)
	if err != nil {
		log.Printf("station: add station: %v", err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to add station")
		return
	}

	s.events.Publish(r.Context(), "station.created", map[string]any{"station": added})
	httpx.WriteJSON(w, http.StatusOK, added)
}

func (s *Server) handleUpdateStation(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationId")

	var patch Station
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := s.store.Update(r.Context(), stationID, &patch)
	if err != nil {
		log.Printf("station: update station %s: %v", stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to update station")
		return
	}

	s.events.Publish(r.Context(), "station.updated", map[string]any{"station": updated})
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) handleRemoveStation(w http.ResponseWriter, r *http.Request) {
	stationID := chi.URLParam(r, "stationId")

	if err := s.store.Remove(r.Context(), stationID); err != nil {
		log.Printf("station: remove station %s: %v", stationID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to remove station")
		return
	}

	s.events.Publish(r.Context(), "station.removed", map[string]any{"stationId": stationID})
	httpx.WriteJSON(w, http.StatusOK, stationID)
}

// parseTags accepts both repeated tags params and comma-separated lists.
func parseTags(raw []string) []string {
	var tags []string
	for _, entry := range raw {
		for _, tag := range strings.Split(entry, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
