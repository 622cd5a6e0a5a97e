package recipeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipebook/internal/fakeapi"
	"github.com/ytget/recipebook/internal/model"
)

func newFakeClient(t *testing.T, recipes model.RecipeList) (*Client, *fakeapi.Server) {
	t.Helper()
	srv := fakeapi.New(recipes...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL+fakeapi.PathPrefix, time.Second)
	c.HTTPClient = ts.Client()
	return c, srv
}

func TestListURL(t *testing.T) {
	c := &Client{BaseURL: "https://dummyjson.com/recipes/"}

	tests := []struct {
		name     string
		req      model.ListRequest
		expected string
	}{
		{
			name:     "paged list",
			req:      model.ListRequest{Endpoint: model.EndpointList, Limit: 12, Skip: 24},
			expected: "https://dummyjson.com/recipes?limit=12&skip=24",
		},
		{
			name:     "paged list sorted",
			req:      model.ListRequest{Endpoint: model.EndpointList, Limit: 12, Skip: 0, SortBy: "name", Order: "asc"},
			expected: "https://dummyjson.com/recipes?limit=12&order=asc&skip=0&sortBy=name",
		},
		{
			name:     "search",
			req:      model.ListRequest{Endpoint: model.EndpointSearch, Term: "pad thai"},
			expected: "https://dummyjson.com/recipes/search?q=pad+thai",
		},
		{
			name:     "tag escaped",
			req:      model.ListRequest{Endpoint: model.EndpointTag, Term: "Stir fry"},
			expected: "https://dummyjson.com/recipes/tag/Stir%20fry",
		},
		{
			name:     "meal type sorted",
			req:      model.ListRequest{Endpoint: model.EndpointMealType, Term: "dinner", SortBy: "rating"},
			expected: "https://dummyjson.com/recipes/meal-type/dinner?order=asc&sortBy=rating",
		},
		{
			name:     "search ignores limit",
			req:      model.ListRequest{Endpoint: model.EndpointSearch, Term: "soup", Limit: 12, Skip: 12},
			expected: "https://dummyjson.com/recipes/search?q=soup",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, c.ListURL(test.req))
		})
	}
}

func TestList_Envelope(t *testing.T) {
	c, srv := newFakeClient(t, fakeapi.Sample(25))

	result, err := c.List(context.Background(), model.ListRequest{Endpoint: model.EndpointList, Limit: 12, Skip: 12})
	require.NoError(t, err)
	assert.Equal(t, 25, result.Total)
	require.Len(t, result.Recipes, 12)
	assert.Equal(t, 13, result.Recipes[0].ID)
	assert.Equal(t, []string{"GET /recipes?limit=12&skip=12"}, srv.Requests())
}

func TestList_BareArray(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"A"},{"id":2,"name":"B"},{"id":3,"name":"C"}]`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	result, err := c.List(context.Background(), model.ListRequest{Endpoint: model.EndpointTag, Term: "x"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Recipes, 3)
}

func TestList_MissingTotalFallsBackToLength(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recipes":[{"id":7,"name":"Soup"},{"id":8,"name":"Stew"}]}`))
	}))
	defer ts.Close()

	c := &Client{BaseURL: ts.URL, HTTPClient: ts.Client()}
	result, err := c.List(context.Background(), model.ListRequest{Endpoint: model.EndpointSearch, Term: "s"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestList_StatusError(t *testing.T) {
	c, srv := newFakeClient(t, fakeapi.Sample(3))
	srv.FailWith(http.StatusInternalServerError)

	_, err := c.List(context.Background(), model.ListRequest{Endpoint: model.EndpointList, Limit: 12})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, http.MethodGet, se.Method)
}

func TestList_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewClient(url, 200*time.Millisecond)
	_, err := c.List(context.Background(), model.ListRequest{Endpoint: model.EndpointList, Limit: 12})
	require.Error(t, err)

	var se *StatusError
	assert.False(t, errors.As(err, &se))
}

func TestTags(t *testing.T) {
	c, _ := newFakeClient(t, fakeapi.Sample(3))

	tags, err := c.Tags(context.Background())
	require.NoError(t, err)
	assert.Contains(t, tags, "Pizza")
	assert.Contains(t, tags, "Cookies")
}

func TestGet(t *testing.T) {
	c, _ := newFakeClient(t, fakeapi.Sample(5))

	recipe, err := c.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, recipe.ID)
	assert.Equal(t, "Chocolate Chip Cookies", recipe.Name)

	_, err = c.Get(context.Background(), 99)
	assert.True(t, IsNotFound(err))
}

func TestCreateUpdateDelete(t *testing.T) {
	c, srv := newFakeClient(t, fakeapi.Sample(2))
	ctx := context.Background()

	draft := model.NewDraft()
	draft.Name = "Pasta"
	draft.Ingredients = "Salt, Pepper"
	draft.Instructions = "Step 1\nStep 2"

	created, err := c.Create(ctx, draft.Normalize())
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	assert.Equal(t, []string{"Salt", "Pepper"}, created.Ingredients)
	assert.Equal(t, []string{"Step 1", "Step 2"}, created.Instructions)

	draft.Name = "Pasta al limone"
	updated, err := c.Update(ctx, created.ID, draft.Normalize())
	require.NoError(t, err)
	assert.Equal(t, "Pasta al limone", updated.Name)

	deleted, err := c.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.False(t, srv.Recipes().Contains(created.ID))

	_, err = c.Delete(ctx, created.ID)
	assert.True(t, IsNotFound(err))
}
