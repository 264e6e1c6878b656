package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/logger"
	"github.com/cinemahub/cinemahub-api/internal/models"
)

const youtubeBaseURL = "https://www.googleapis.com/youtube/v3"

// ErrNoTrailer is returned when no video matches a trailer search.
var ErrNoTrailer = errors.New("no trailer found for this movie")

// YouTubeFacade proxies YouTube Data API v3 searches. Without an API
// key, or when the upstream call fails, it serves deterministic mock
// results so the frontend keeps working in development.
type YouTubeFacade struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

// NewYouTubeFacade creates a facade. An empty apiKey enables mock mode.
func NewYouTubeFacade(apiKey string, cache *Cache) *YouTubeFacade {
	return &YouTubeFacade{
		apiKey:     apiKey,
		baseURL:    youtubeBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
	}
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
	PageInfo      struct {
		TotalResults int `json:"totalResults"`
	} `json:"pageInfo"`
}

// Search returns embeddable videos matching the query.
func (f *YouTubeFacade) Search(ctx context.Context, query string, maxResults int) (*models.VideoList, error) {
	if maxResults <= 0 {
		maxResults = 12
	}

	cacheKey := fmt.Sprintf("youtube:search:%s:%d", query, maxResults)
	var cached models.VideoList
	if f.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	if f.apiKey == "" {
		return f.mockSearch(query, maxResults), nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("videoEmbeddable", "true")
	params.Set("relevanceLanguage", "en")
	params.Set("key", f.apiKey)

	var resp youtubeSearchResponse
	if err := f.getJSON(ctx, "/search", params, &resp); err != nil {
		logger.Log.Warnw("YouTube search failed, serving mock results", "query", query, "err", err)
		return f.mockSearch(query, maxResults), nil
	}

	list := &models.VideoList{
		NextPageToken: resp.NextPageToken,
		TotalResults:  resp.PageInfo.TotalResults,
		Items:         make([]models.Video, 0, len(resp.Items)),
	}
	for _, item := range resp.Items {
		list.Items = append(list.Items, models.Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			Thumbnail:    item.Snippet.Thumbnails.High.URL,
		})
	}

	f.cache.Set(ctx, cacheKey, list)
	return list, nil
}

// Trailer finds the official trailer for a movie title. Year narrows
// the search when known.
func (f *YouTubeFacade) Trailer(ctx context.Context, movieTitle string, year int) (*models.Video, error) {
	query := movieTitle + " official trailer"
	if year != 0 {
		query = fmt.Sprintf("%s %d", query, year)
	}

	cacheKey := "youtube:trailer:" + query
	var cached models.Video
	if f.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	list, err := f.Search(ctx, query, 5)
	if err != nil {
		return nil, err
	}
	if len(list.Items) == 0 {
		return nil, ErrNoTrailer
	}

	trailer := list.Items[0]
	f.cache.Set(ctx, cacheKey, &trailer)
	return &trailer, nil
}

func (f *YouTubeFacade) getJSON(ctx context.Context, path string, params url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube api returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func (f *YouTubeFacade) mockSearch(query string, maxResults int) *models.VideoList {
	videoTypes := []string{"Official Trailer", "Movie Review", "Behind the Scenes", "Cast Interview", "Movie Analysis", "Teaser Trailer"}
	channels := []string{"Movie Trailers", "Cinema Reviews", "Movie Making", "Movie Interviews", "Film Analysis", "Hollywood News"}

	n := maxResults
	if n > 8 {
		n = 8
	}
	list := &models.VideoList{Items: make([]models.Video, 0, n), TotalResults: n}
	for i := 0; i < n; i++ {
		vt := videoTypes[i%len(videoTypes)]
		list.Items = append(list.Items, models.Video{
			VideoID:      fmt.Sprintf("mock_%s_%d", url.QueryEscape(query), i),
			Title:        fmt.Sprintf("%s - %s", query, vt),
			Description:  fmt.Sprintf("Watch the latest %s for %s.", vt, query),
			ChannelTitle: channels[i%len(channels)],
			PublishedAt:  time.Now().Add(-time.Duration(i*24) * time.Hour).Format(time.RFC3339),
			Duration:     "PT2M30S",
		})
	}
	return list
}
