package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/logger"
	"github.com/cinemahub/cinemahub-api/internal/models"
)

const traktBaseURL = "https://api.trakt.tv"

// TraktFacade proxies the Trakt API. Without a client id, or when the
// upstream call fails, it serves a built-in mock catalog.
type TraktFacade struct {
	clientID   string
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

// NewTraktFacade creates a facade. An empty clientID enables mock mode.
func NewTraktFacade(clientID string, cache *Cache) *TraktFacade {
	return &TraktFacade{
		clientID:   clientID,
		baseURL:    traktBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
	}
}

type traktMovie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   struct {
		Trakt int    `json:"trakt"`
		Slug  string `json:"slug"`
		IMDB  string `json:"imdb"`
	} `json:"ids"`
	Overview string   `json:"overview"`
	Tagline  string   `json:"tagline"`
	Runtime  int      `json:"runtime"`
	Rating   float64  `json:"rating"`
	Votes    int      `json:"votes"`
	Genres   []string `json:"genres"`
	Language string   `json:"language"`
	Country  string   `json:"country"`
	Released string   `json:"released"`
}

type traktTrendingEntry struct {
	Watchers int        `json:"watchers"`
	Movie    traktMovie `json:"movie"`
}

type traktSearchEntry struct {
	Type  string     `json:"type"`
	Movie traktMovie `json:"movie"`
}

// Trending returns the currently trending movies.
func (f *TraktFacade) Trending(ctx context.Context, limit int) ([]models.Movie, error) {
	if limit <= 0 {
		limit = 10
	}

	cacheKey := fmt.Sprintf("trakt:trending:%d", limit)
	var cached []models.Movie
	if f.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	if f.clientID == "" {
		return mockMovies(limit), nil
	}

	var entries []traktTrendingEntry
	path := "/movies/trending?extended=full&limit=" + strconv.Itoa(limit)
	if err := f.getJSON(ctx, path, &entries); err != nil {
		logger.Log.Warnw("Trakt trending failed, serving mock catalog", "err", err)
		return mockMovies(limit), nil
	}

	movies := make([]models.Movie, 0, len(entries))
	for _, e := range entries {
		movies = append(movies, normalizeTrakt(e.Movie))
	}

	f.cache.Set(ctx, cacheKey, movies)
	return movies, nil
}

// Search returns movies matching the query.
func (f *TraktFacade) Search(ctx context.Context, query string) ([]models.Movie, error) {
	cacheKey := "trakt:search:" + query
	var cached []models.Movie
	if f.cache.Get(ctx, cacheKey, &cached) {
		return cached, nil
	}

	if f.clientID == "" {
		return mockSearchMovies(query), nil
	}

	var entries []traktSearchEntry
	path := "/search/movie?extended=full&query=" + url.QueryEscape(query)
	if err := f.getJSON(ctx, path, &entries); err != nil {
		logger.Log.Warnw("Trakt search failed, serving mock catalog", "query", query, "err", err)
		return mockSearchMovies(query), nil
	}

	movies := make([]models.Movie, 0, len(entries))
	for _, e := range entries {
		if e.Type == "movie" {
			movies = append(movies, normalizeTrakt(e.Movie))
		}
	}

	f.cache.Set(ctx, cacheKey, movies)
	return movies, nil
}

func (f *TraktFacade) getJSON(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", "2")
	req.Header.Set("trakt-api-key", f.clientID)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("trakt api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func normalizeTrakt(m traktMovie) models.Movie {
	return models.Movie{
		ID:       m.IDs.Trakt,
		Title:    m.Title,
		Year:     m.Year,
		Slug:     m.IDs.Slug,
		IMDB:     m.IDs.IMDB,
		Rating:   m.Rating,
		Votes:    m.Votes,
		Overview: m.Overview,
		Tagline:  m.Tagline,
		Runtime:  m.Runtime,
		Genres:   m.Genres,
		Language: m.Language,
		Country:  m.Country,
		Released: m.Released,
		Source:   "trakt",
	}
}

// mockCatalog is served in development when Trakt is not configured.
var mockCatalog = []models.Movie{
	{
		ID: 1, Title: "The Avengers", Year: 2012, Slug: "the-avengers-2012", IMDB: "tt0848228",
		Rating: 8.0, Votes: 1234567, Runtime: 143,
		Overview: "When an unexpected enemy emerges and threatens global safety and security, Nick Fury finds himself in need of a team to pull the world back from the brink of disaster.",
		Tagline:  "Some assembly required.",
		Genres:   []string{"Action", "Adventure", "Sci-Fi"},
		Language: "en", Country: "US", Released: "2012-04-27", Source: "trakt",
	},
	{
		ID: 2, Title: "The Dark Knight", Year: 2008, Slug: "the-dark-knight-2008", IMDB: "tt0468569",
		Rating: 9.0, Votes: 2345678, Runtime: 152,
		Overview: "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		Tagline:  "Why So Serious?",
		Genres:   []string{"Action", "Crime", "Drama"},
		Language: "en", Country: "US", Released: "2008-07-18", Source: "trakt",
	},
	{
		ID: 3, Title: "Inception", Year: 2010, Slug: "inception-2010", IMDB: "tt1375666",
		Rating: 8.8, Votes: 2109876, Runtime: 148,
		Overview: "Cobb, a skilled thief who commits corporate espionage by infiltrating the subconscious of his targets, is offered a chance to regain his old life as payment for a task considered to be impossible: inception.",
		Tagline:  "Your mind is the scene of the crime.",
		Genres:   []string{"Action", "Adventure", "Sci-Fi"},
		Language: "en", Country: "US", Released: "2010-07-16", Source: "trakt",
	},
	{
		ID: 4, Title: "Interstellar", Year: 2014, Slug: "interstellar-2014", IMDB: "tt0816692",
		Rating: 8.6, Votes: 1654321, Runtime: 169,
		Overview: "The adventures of a group of explorers who make use of a newly discovered wormhole to surpass the limitations on human space travel and conquer the vast distances involved in an interstellar voyage.",
		Tagline:  "Mankind was born on Earth. It was never meant to die here.",
		Genres:   []string{"Adventure", "Drama", "Sci-Fi"},
		Language: "en", Country: "US", Released: "2014-11-07", Source: "trakt",
	},
	{
		ID: 5, Title: "The Matrix", Year: 1999, Slug: "the-matrix-1999", IMDB: "tt0133093",
		Rating: 8.7, Votes: 1876543, Runtime: 136,
		Overview: "A computer programmer discovers that reality as he knows it is a simulation created by machines, and joins a rebellion to break free.",
		Tagline:  "Welcome to the Real World.",
		Genres:   []string{"Action", "Sci-Fi"},
		Language: "en", Country: "US", Released: "1999-03-31", Source: "trakt",
	},
}

func mockMovies(limit int) []models.Movie {
	out := make([]models.Movie, len(mockCatalog))
	copy(out, mockCatalog)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func mockSearchMovies(query string) []models.Movie {
	term := strings.ToLower(query)
	var out []models.Movie
	for _, m := range mockCatalog {
		if strings.Contains(strings.ToLower(m.Title), term) ||
			strings.Contains(strings.ToLower(m.Overview), term) ||
			genreMatches(m.Genres, term) {
			out = append(out, m)
		}
	}
	return out
}

func genreMatches(genres []string, term string) bool {
	for _, g := range genres {
		if strings.Contains(strings.ToLower(g), term) {
			return true
		}
	}
	return false
}
