package models

// Movie is the normalized movie metadata served by the Trakt proxy.
type Movie struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Slug     string   `json:"slug"`
	IMDB     string   `json:"imdb"`
	Poster   string   `json:"poster,omitempty"`
	Backdrop string   `json:"backdrop,omitempty"`
	Rating   float64  `json:"rating"`
	Votes    int      `json:"votes"`
	Overview string   `json:"overview"`
	Tagline  string   `json:"tagline,omitempty"`
	Runtime  int      `json:"runtime"`
	Genres   []string `json:"genres"`
	Language string   `json:"language,omitempty"`
	Country  string   `json:"country,omitempty"`
	Released string   `json:"released,omitempty"`
	Source   string   `json:"source"`
}

// Video is a single YouTube search result.
type Video struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnail    string `json:"thumbnail"`
	Duration     string `json:"duration,omitempty"`
}

// VideoList is a page of YouTube results.
type VideoList struct {
	Items         []Video `json:"items"`
	NextPageToken string  `json:"nextPageToken,omitempty"`
	TotalResults  int     `json:"totalResults"`
}
