package station

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"station-service/internal/httpx"
)

// LikeService is the two-collection like/unlike orchestration consumed by
// the HTTP handlers. *Likes is the production implementation.
type LikeService interface {
	LikeSong(ctx context.Context, stationID, songID, userID string) (*Song, error)
	UnlikeSong(ctx context.Context, stationID, songID, userID string) (*UpdateSummary, error)
}

type Server struct {
	store     Store
	likes     LikeService
	events    *Events
	generator *Generator
}

func NewServer(store Store, likes LikeService, events *Events, generator *Generator) *Server {
	return &Server{
		store:     store,
		likes:     likes,
		events:    events,
		generator: generator,
	}
}

// Router wires the station routes. Reads are public; every mutation sits
// behind requireAuth.
func (s *Server) Router(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.handleQueryStations)
	r.Get("/generate/{prompt}", s.handleGenerateStation)
	r.Get("/{stationId}", s.handleGetStation)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/", s.handleAddStation)
		r.Put("/{stationId}", s.handleUpdateStation)
		r.Delete("/{stationId}", s.handleRemoveStation)

		r.Post("/{stationId}/song", s.handleAddSong)
		r.Delete("/{stationId}/{songId}", s.handleRemoveSong)

		r.Post("/{stationId}/{songId}/like", s.handleLikeSong)
		r.Post("/{stationId}/{songId}/unlike", s.handleUnlikeSong)

		r.Post("/{stationId}/msg", s.handleAddMsg)
		r.Delete("/{stationId}/msg/{msgId}", s.handleRemoveMsg)
	})

	return r
}

func (s *Server) handleGenerateStation(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		httpx.WriteError(w, http.StatusBadRequest, "station generation is not configured")
		return
	}

	songs, err := s.generator.GenerateStation(r.Context(), chi.URLParam(r, "prompt"))
	if err != nil {
		log.Printf("station: generate station: %v", err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to generate station")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, songs)
}
