package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{APIKey: "k", BaseURL: srv.URL})
}

func TestSearchMovies(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("api_key"))
		assert.Equal(t, "alien", r.URL.Query().Get("query"))
		fmt.Fprint(w, `{"results":[{"id":1,"title":"Alien","poster_path":"/p.jpg"},{"id":2,"title":"Aliens"}]}`)
	})

	movies := c.SearchMovies(context.Background(), "  alien  ")
	require.Len(t, movies, 2)
	assert.Equal(t, int64(1), movies[0].ID)
	assert.Equal(t, "Alien", movies[0].Title)
	assert.Equal(t, "/p.jpg", movies[0].PosterPath)
}

func TestSearchMoviesCapsResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[`)
		for i := 0; i < 20; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"id":%d,"title":"m%d"}`, i+1, i+1)
		}
		fmt.Fprint(w, `]}`)
	})

	movies := c.SearchMovies(context.Background(), "m")
	assert.Len(t, movies, 12)
}

func TestSearchMoviesBestEffort(t *testing.T) {
	t.Run("blank query", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		})
		assert.Empty(t, c.SearchMovies(context.Background(), "   "))
	})

	t.Run("missing api key", func(t *testing.T) {
		c := New(Config{})
		assert.Empty(t, c.SearchMovies(context.Background(), "alien"))
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})
		assert.Empty(t, c.SearchMovies(context.Background(), "alien"))
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"results": not json`)
		})
		assert.Empty(t, c.SearchMovies(context.Background(), "alien"))
	})

	t.Run("unreachable server", func(t *testing.T) {
		c := New(Config{APIKey: "k", BaseURL: "http://127.0.0.1:1"})
		assert.Empty(t, c.SearchMovies(context.Background(), "alien"))
	})
}

func TestMovieDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/42", r.URL.Path)
		fmt.Fprint(w, `{"id":42,"title":"Alien","overview":"In space...","runtime":117}`)
	})

	d, ok := c.MovieDetails(context.Background(), 42)
	require.True(t, ok)
	assert.Equal(t, "Alien", d.Title)
	assert.Equal(t, "In space...", d.Overview)
	assert.Equal(t, 117, d.Runtime)
}

func TestMovieDetailsBestEffort(t *testing.T) {
	t.Run("zero id", func(t *testing.T) {
		c := New(Config{APIKey: "k"})
		_, ok := c.MovieDetails(context.Background(), 0)
		assert.False(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		_, ok := c.MovieDetails(context.Background(), 42)
		assert.False(t, ok)
	})
}
