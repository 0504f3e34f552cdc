// Package tmdb is a best-effort client for the TMDB metadata API. Every
// lookup degrades to an empty result on failure: movie metadata only
// enriches screenings and must never block or fail a request.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.themoviedb.org/3"

	ImageBaseW92  = "https://image.tmdb.org/t/p/w92"
	ImageBaseW185 = "https://image.tmdb.org/t/p/w185"
	ImageBaseW500 = "https://image.tmdb.org/t/p/w500"
)

// maxSearchResults caps the ranked list returned by SearchMovies.
const maxSearchResults = 12

type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`
}

type MovieDetails struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Overview     string `json:"overview,omitempty"`
	PosterPath   string `json:"poster_path,omitempty"`
	BackdropPath string `json:"backdrop_path,omitempty"`
	ReleaseDate  string `json:"release_date,omitempty"`
	Runtime      int    `json:"runtime,omitempty"`
}

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type searchResponse struct {
	Results []Movie `json:"results"`
}

// SearchMovies returns the top-ranked matches for a title query, capped at
// 12. A blank query, a missing API key, or any transport, status or decode
// failure yields an empty list and no error.
func (c *Client) SearchMovies(ctx context.Context, query string) []Movie {
	query = strings.TrimSpace(query)
	if c.apiKey == "" || query == "" {
		return nil
	}

	u := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(query))

	var out searchResponse
	if !c.getJSON(ctx, u, &out) {
		return nil
	}

	results := out.Results
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}

	return results
}

// MovieDetails fetches the detail record for a movie id. ok is false when
// the lookup failed for any reason.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, bool) {
	if c.apiKey == "" || movieID == 0 {
		return nil, false
	}

	u := fmt.Sprintf("%s/movie/%d?api_key=%s",
		c.baseURL, movieID, url.QueryEscape(c.apiKey))

	var out MovieDetails
	if !c.getJSON(ctx, u, &out) {
		return nil, false
	}

	return &out, true
}

func (c *Client) getJSON(ctx context.Context, u string, out any) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false
	}

	return json.NewDecoder(resp.Body).Decode(out) == nil
}
