package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasforesti/pilotoapi/models"
)

func TestQueryBindsParamsByName(t *testing.T) {
	var gotQuery, gotSlug, gotLimit, gotPerspective string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotSlug = r.URL.Query().Get("$slug")
		gotLimit = r.URL.Query().Get("$limit")
		gotPerspective = r.URL.Query().Get("perspective")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": []}`))
	}))
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, srv.Client())

	var out []models.Article
	err := c.Query(context.Background(), `*[_type == "noticia" && slug.current == $slug][0...$limit]`,
		map[string]any{"slug": "gp-interlagos", "limit": 5}, &out)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, `slug.current == $slug`)
	// Values are JSON-encoded and bound by name, never spliced into the query.
	assert.Equal(t, `"gp-interlagos"`, gotSlug)
	assert.Equal(t, `5`, gotLimit)
	assert.NotContains(t, gotQuery, "gp-interlagos")
	assert.Equal(t, "published", gotPerspective)
}

func TestQueryDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result": [
			{"_id": "n1", "titulo": "Pole em Interlagos", "slug": {"current": "pole-interlagos"},
			 "dataDePublicacao": "2025-06-15T10:00:00Z"}
		], "ms": 3}`))
	}))
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, srv.Client())

	var out []models.Article
	require.NoError(t, c.Query(context.Background(), `*[_type == "noticia"]`, nil, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "n1", out[0].ID)
	assert.Equal(t, "Pole em Interlagos", out[0].Title)
	assert.Equal(t, "pole-interlagos", out[0].Slug.Current)
	assert.Equal(t, 2025, out[0].PublishedAt.Year())
}

func TestQueryNullResultLeavesZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": null}`))
	}))
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, srv.Client())

	var out models.Article
	require.NoError(t, c.Query(context.Background(), `*[slug.current == $slug][0]`,
		map[string]any{"slug": "missing"}, &out))
	// Not-found is not an error; the caller sees the zero value.
	assert.Empty(t, out.ID)
}

func TestQueryErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "bad query"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, srv.Client())

	var out []models.Article
	err := c.Query(context.Background(), `broken[`, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestQueryTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"result": []}`))
	}))
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, &http.Client{Timeout: 20 * time.Millisecond})

	var out []models.Article
	err := c.Query(context.Background(), `*[_type == "noticia"]`, nil, &out)
	require.Error(t, err)
}

func TestArticlesPageQueries(t *testing.T) {
	list, count := ArticlesPage(false)
	assert.Contains(t, list, `_type == "noticia"`)
	assert.NotContains(t, list, "categoriaSlug")
	assert.Contains(t, count, `count(`)

	list, count = ArticlesPage(true)
	assert.Contains(t, list, `$categoriaSlug in categorias[]->slug.current`)
	assert.Contains(t, count, `$categoriaSlug`)
}

func TestCMSTimeDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": [
			{"_id": "a1", "titulo": "Álbum", "dataDoAlbum": "2025-03-09"},
			{"_id": "a2", "titulo": "Outro", "dataDoAlbum": "not-a-date"}
		]}`))
	}))
	defer srv.Close()

	c := NewWithEndpoint(srv.URL, srv.Client())

	var out []models.Album
	require.NoError(t, c.Query(context.Background(), `*[_type == "albumDeFotos"]`, nil, &out))
	require.Len(t, out, 2)

	assert.True(t, out[0].Date.DateOnly)
	assert.Equal(t, 2025, out[0].Date.Year())
	// Unparsable dates default to zero instead of failing the document.
	assert.True(t, out[1].Date.IsZero())
}
