// Package fakeapi is an in-process stand-in for the story API, used by tests
// of the HTTP client and of the controller. It speaks the same JSON shapes and
// status codes as the real service and signs its tokens like the real
// service does (HS256 with a username claim).
package fakeapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
	"github.com/dmitrijs2005/snoozer/internal/common"
	"github.com/dmitrijs2005/snoozer/internal/tokenx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

type account struct {
	password string
	user     models.User
}

// Server is a fake story API backed by memory.
type Server struct {
	*httptest.Server

	secret []byte

	mu         sync.Mutex
	accounts   map[string]*account
	stories    []models.Story
	calls      map[string]int
	failures   map[string]int
	requestIDs []string
}

// New starts a fake API. Close it with Server.Close.
func New() *Server {
	secret, err := common.RandomHex(32)
	if err != nil {
		panic(err)
	}
	s := &Server{
		secret:   []byte(secret),
		accounts: make(map[string]*account),
		calls:    make(map[string]int),
		failures: make(map[string]int),
	}

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/login", s.login).Methods(http.MethodPost).Name("login")
	r.HandleFunc("/signup", s.signup).Methods(http.MethodPost).Name("signup")
	r.HandleFunc("/users/{username}", s.getUser).Methods(http.MethodGet).Name("users")
	r.HandleFunc("/stories", s.getStories).Methods(http.MethodGet).Name("stories")

	s.Server = httptest.NewServer(r)
	return s
}

// AddUser registers an account directly, bypassing /signup.
func (s *Server) AddUser(username, password, name string, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[username] = &account{
		password: password,
		user:     models.User{Username: username, Name: name, CreatedAt: createdAt.Format(time.RFC3339Nano), Favorites: []models.Story{}, OwnStories: []models.Story{}},
	}
}

// AddFavorite marks story as a favorite of username.
func (s *Server) AddFavorite(username string, story models.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[username]; ok {
		a.user.Favorites = append(a.user.Favorites, story)
	}
}

// SetStories replaces the story list served by GET /stories.
func (s *Server) SetStories(stories []models.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stories = append([]models.Story(nil), stories...)
}

// FailWith makes every request to the named route ("login", "signup",
// "users", "stories") answer with status until status is 0.
func (s *Server) FailWith(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = status
}

// Calls returns how many requests the named route has received.
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// RequestIDs returns the X-Request-ID headers seen so far, in order.
func (s *Server) RequestIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requestIDs...)
}

// IssueToken signs a token for username the way the API does.
func (s *Server) IssueToken(username string) string {
	claims := tokenx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(time.Now())},
		Username:         username,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		panic(err)
	}
	return token
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := ""
		if route := mux.CurrentRoute(r); route != nil {
			name = route.GetName()
		}

		s.mu.Lock()
		s.calls[name]++
		s.requestIDs = append(s.requestIDs, r.Header.Get("X-Request-ID"))
		status := s.failures[name]
		s.mu.Unlock()

		if status != 0 {
			writeError(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type credentials struct {
	User struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
	} `json:"user"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	s.mu.Lock()
	a, ok := s.accounts[in.User.Username]
	var u models.User
	if ok {
		u = a.user
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Could not find user with username '"+in.User.Username+"'")
		return
	}
	if a.password != in.User.Password {
		writeError(w, http.StatusUnauthorized, "Invalid password.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": s.IssueToken(u.Username), "user": u})
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[in.User.Username]; exists {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "There already exists a user with username '"+in.User.Username+"'")
		return
	}
	a := &account{
		password: in.User.Password,
		user: models.User{
			Username:   in.User.Username,
			Name:       in.User.Name,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
			Favorites:  []models.Story{},
			OwnStories: []models.Story{},
		},
	}
	s.accounts[in.User.Username] = a
	u := a.user
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{"token": s.IssueToken(u.Username), "user": u})
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	claims := &tokenx.Claims{}
	_, err := jwt.ParseWithClaims(r.URL.Query().Get("token"), claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || claims.Username != username {
		writeError(w, http.StatusUnauthorized, "A valid token is required.")
		return
	}

	s.mu.Lock()
	a, ok := s.accounts[username]
	var u models.User
	if ok {
		u = a.user
	}
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "No such user: "+username)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (s *Server) getStories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	stories := append([]models.Story{}, s.stories...)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"stories": stories})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{"status": status, "title": http.StatusText(status), "message": msg},
	})
}
