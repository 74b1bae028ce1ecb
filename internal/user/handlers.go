package user

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"station-service/internal/httpx"
)

type Server struct {
	store Store
}

func NewServer(store Store) *Server {
	return &Server{store: store}
}

// Router wires the user routes. Listing and profile reads are public,
// mutations require a login token.
func (s *Server) Router(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.handleQueryUsers)
	r.Get("/{userId}", s.handleGetUser)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Put("/{userId}", s.handleUpdateUser)
		r.Delete("/{userId}", s.handleRemoveUser)
	})

	return r
}

func (s *Server) handleQueryUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.Query(r.Context(), r.URL.Query().Get("txt"))
	if err != nil {
		log.Printf("user: query users: %v", err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to get users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	u, err := s.store.GetByID(r.Context(), userID)
	if err != nil {
		log.Printf("user: get user %s: %v", userID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to get user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, u)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var body struct {
		Fullname string `json:"fullname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	body.Fullname = strings.TrimSpace(body.Fullname)
	if body.Fullname == "" {
		httpx.WriteError(w, http.StatusBadRequest, "missing fullname")
		return
	}

	updated, err := s.store.Update(r.Context(), userID, body.Fullname)
	if err != nil {
		log.Printf("user: update user %s: %v", userID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to update user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, updated)
}

func (s *Server) handleRemoveUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	if err := s.store.Remove(r.Context(), userID); err != nil {
		log.Printf("user: remove user %s: %v", userID, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to remove user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, userID)
}
