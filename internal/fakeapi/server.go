package fakeapi

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/ytget/recipebook/internal/model"
)

// Route prefix and listing defaults, matching the public DummyJSON service
const (
	PathPrefix   = "/recipes"
	DefaultLimit = 30
)

// Server is an in-memory recipe catalog served over HTTP. It records every
// request it sees and can be told to fail or slow down, which makes it
// suitable both for tests and for offline demos.
type Server struct {
	mu       sync.Mutex
	recipes  model.RecipeList
	nextID   int
	requests []string

	failStatus int
	latency    func(r *http.Request) time.Duration

	router *mux.Router
}

// New creates a server seeded with recipes
func New(recipes ...model.Recipe) *Server {
	s := &Server{
		recipes: model.RecipeList(recipes).Clone(),
	}
	for _, r := range recipes {
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler serving the catalog under PathPrefix
func (s *Server) Handler() http.Handler {
	return s.router
}

// CORSHandler wraps Handler so browser clients from origins may call it
func (s *Server) CORSHandler(origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})
	return c.Handler(s.router)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.record)

	api := r.PathPrefix(PathPrefix).Subrouter()
	api.HandleFunc("", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/search", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/tags", s.handleTags).Methods(http.MethodGet)
	api.HandleFunc("/tag/{tag}", s.handleTag).Methods(http.MethodGet)
	api.HandleFunc("/meal-type/{meal}", s.handleMealType).Methods(http.MethodGet)
	api.HandleFunc("/add", s.handleAdd).Methods(http.MethodPost)
	api.HandleFunc("/{id:[0-9]+}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/{id:[0-9]+}", s.handleUpdate).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/{id:[0-9]+}", s.handleDelete).Methods(http.MethodDelete)
	return r
}

// record logs the request, applies configured latency and failure
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		line := r.Method + " " + r.URL.Path
		if r.URL.RawQuery != "" {
			line += "?" + r.URL.RawQuery
		}

		s.mu.Lock()
		s.requests = append(s.requests, line)
		status := s.failStatus
		latency := s.latency
		s.mu.Unlock()

		if latency != nil {
			if d := latency(r); d > 0 {
				select {
				case <-time.After(d):
				case <-r.Context().Done():
					return
				}
			}
		}
		if status != 0 {
			writeError(w, status, http.StatusText(status))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Requests returns every request line seen so far, e.g. "GET /recipes?limit=12&skip=0"
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns how many requests have been served
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// ResetRequests forgets recorded requests
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// FailWith makes every following request answer with status. Zero clears it.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// SetLatency installs a per-request delay function. Nil clears it.
func (s *Server) SetLatency(fn func(r *http.Request) time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latency = fn
}

// Recipes returns a copy of the stored catalog
func (s *Server) Recipes() model.RecipeList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipes.Clone()
}

type listResponse struct {
	Recipes model.RecipeList `json:"recipes"`
	Total   int              `json:"total"`
	Skip    int              `json:"skip"`
	Limit   int              `json:"limit"`
}

type deletedRecipe struct {
	model.Recipe
	IsDeleted bool      `json:"isDeleted"`
	DeletedOn time.Time `json:"deletedOn"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.writeFiltered(w, r, func(model.Recipe) bool { return true })
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	s.writeFiltered(w, r, func(rec model.Recipe) bool {
		return strings.Contains(strings.ToLower(rec.Name), q)
	})
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]
	s.writeFiltered(w, r, func(rec model.Recipe) bool {
		return containsFold(rec.Tags, tag)
	})
}

func (s *Server) handleMealType(w http.ResponseWriter, r *http.Request) {
	meal := mux.Vars(r)["meal"]
	s.writeFiltered(w, r, func(rec model.Recipe) bool {
		return containsFold(rec.MealType, meal)
	})
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	seen := make(map[string]bool)
	tags := []string{}
	for _, rec := range s.recipes {
		for _, t := range rec.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	s.mu.Unlock()

	sort.Strings(tags)
	writeJSON(w, http.StatusOK, tags)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	s.mu.Lock()
	idx := s.recipes.IndexOf(id)
	var rec model.Recipe
	if idx >= 0 {
		rec = s.recipes[idx]
	}
	s.mu.Unlock()

	if idx < 0 {
		writeError(w, http.StatusNotFound, "Recipe with id '"+strconv.Itoa(id)+"' not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var payload model.RecipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	s.mu.Lock()
	rec := applyPayload(model.Recipe{ID: s.nextID}, payload)
	s.nextID++
	s.recipes = s.recipes.Prepend(rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload model.RecipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	s.mu.Lock()
	idx := s.recipes.IndexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "Recipe with id '"+strconv.Itoa(id)+"' not found")
		return
	}
	rec := applyPayload(s.recipes[idx], payload)
	s.recipes, _ = s.recipes.ReplaceByIDAs(id, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	s.mu.Lock()
	idx := s.recipes.IndexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		writeError(w, http.StatusNotFound, "Recipe with id '"+strconv.Itoa(id)+"' not found")
		return
	}
	rec := s.recipes[idx]
	s.recipes, _ = s.recipes.RemoveByID(id)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, deletedRecipe{Recipe: rec, IsDeleted: true, DeletedOn: time.Now().UTC()})
}

// writeFiltered applies match, sortBy/order and limit/skip, then writes the
// list envelope with the pre-pagination total
func (s *Server) writeFiltered(w http.ResponseWriter, r *http.Request, match func(model.Recipe) bool) {
	query := r.URL.Query()

	s.mu.Lock()
	matched := make(model.RecipeList, 0, len(s.recipes))
	for _, rec := range s.recipes {
		if match(rec) {
			matched = append(matched, rec)
		}
	}
	s.mu.Unlock()

	sortRecipes(matched, query.Get("sortBy"), query.Get("order"))

	total := len(matched)
	limit := DefaultLimit
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v >= 0 {
		limit = v
	}
	skip := 0
	if v, err := strconv.Atoi(query.Get("skip")); err == nil && v > 0 {
		skip = v
	}

	page := matched
	if skip >= len(page) {
		page = model.RecipeList{}
	} else {
		page = page[skip:]
	}
	if limit > 0 && limit < len(page) {
		page = page[:limit]
	}

	writeJSON(w, http.StatusOK, listResponse{Recipes: page, Total: total, Skip: skip, Limit: len(page)})
}

func sortRecipes(list model.RecipeList, sortBy, order string) {
	var less func(a, b model.Recipe) bool
	switch sortBy {
	case "name":
		less = func(a, b model.Recipe) bool { return a.Name < b.Name }
	case "caloriesPerServing":
		less = func(a, b model.Recipe) bool { return a.CaloriesPerServing < b.CaloriesPerServing }
	case "prepTimeMinutes":
		less = func(a, b model.Recipe) bool { return a.PrepTimeMinutes < b.PrepTimeMinutes }
	case "cookTimeMinutes":
		less = func(a, b model.Recipe) bool { return a.CookTimeMinutes < b.CookTimeMinutes }
	case "rating":
		less = func(a, b model.Recipe) bool { return a.Rating < b.Rating }
	case "id":
		less = func(a, b model.Recipe) bool { return a.ID < b.ID }
	default:
		return
	}
	desc := strings.EqualFold(order, "desc")
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

func applyPayload(rec model.Recipe, p model.RecipePayload) model.Recipe {
	rec.Name = p.Name
	rec.Ingredients = p.Ingredients
	rec.Instructions = p.Instructions
	rec.PrepTimeMinutes = p.PrepTimeMinutes
	rec.CookTimeMinutes = p.CookTimeMinutes
	rec.Servings = p.Servings
	rec.Difficulty = p.Difficulty
	rec.Cuisine = p.Cuisine
	rec.CaloriesPerServing = p.CaloriesPerServing
	rec.Tags = p.Tags
	rec.MealType = p.MealType
	rec.Image = p.Image
	return rec
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("fakeapi: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
