package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"station-service/internal/httpx"
	"station-service/internal/token"
	"station-service/internal/user"
)

// UserStore is the slice of the identity store that signup and login need.
type UserStore interface {
	Add(ctx context.Context, u *user.User) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}

type Server struct {
	users  UserStore
	tokens *token.Manager
}

func NewServer(users UserStore, tokens *token.Manager) *Server {
	return &Server{users: users, tokens: tokens}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Post("/signup", s.handleSignup)
	r.Post("/login", s.handleLogin)
	r.Post("/logout", s.handleLogout)

	return r
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	ImgURL   string `json:"imgUrl"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginResponse pairs the account record with a fresh bearer token.
type LoginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	// The email is required at signup but is not part of the stored record.
	if req.Username == "" || req.Password == "" || req.Email == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Missing required signup information")
		return
	}

	existing, err := s.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		log.Printf("auth: signup lookup %s: %v", req.Username, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to signup")
		return
	}
	if existing != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("auth: signup hash: %v", err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to signup")
		return
	}

	added, err := s.users.Add(r.Context(), &user.User{
		Username:          req.Username,
		Password:          string(hash),
		ImgURL:            req.ImgURL,
		IsAdmin:           req.IsAdmin,
		LikedSongsStation: user.NewLikedSongsStation(),
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			httpx.WriteError(w, http.StatusBadRequest, "Username already taken")
			return
		}
		log.Printf("auth: signup add %s: %v", req.Username, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to signup")
		return
	}
	added.Password = ""

	s.respondLoggedIn(w, added)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	u, err := s.users.GetByUsername(r.Context(), creds.Username)
	if err != nil {
		log.Printf("auth: login lookup %s: %v", creds.Username, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to login")
		return
	}
	// Unknown user and wrong password fail identically.
	if u == nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(creds.Password)); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid username or password")
		return
	}
	u.Password = ""

	s.respondLoggedIn(w, u)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless, discarding the client copy is the whole logout.
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"msg": "Logged out"})
}

func (s *Server) respondLoggedIn(w http.ResponseWriter, u *user.User) {
	tok, err := s.tokens.GetLoginToken(u.ID.Hex(), u.Fullname, u.IsAdmin)
	if err != nil {
		log.Printf("auth: issue token for %s: %v", u.Username, err)
		httpx.WriteError(w, http.StatusBadRequest, "Failed to login")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, LoginResponse{
		Token: tok,
		User:  *u,
	})
}
