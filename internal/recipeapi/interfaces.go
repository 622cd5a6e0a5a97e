package recipeapi

import (
	"context"

	"github.com/ytget/recipebook/internal/model"
)

// API defines the remote operations the catalog controller depends on.
type API interface {
	// List fetches one page or filtered set of recipes
	List(ctx context.Context, req model.ListRequest) (ListResult, error)

	// Tags fetches every tag known to the catalog
	Tags(ctx context.Context) ([]string, error)

	// Get fetches a single recipe by ID
	Get(ctx context.Context, id int) (model.Recipe, error)

	Create(ctx context.Context, payload model.RecipePayload) (model.Recipe, error)
	Update(ctx context.Context, id int, payload model.RecipePayload) (model.Recipe, error)
	Delete(ctx context.Context, id int) (model.Recipe, error)
}

// ListResult is a normalized list response
type ListResult struct {
	Recipes model.RecipeList
	Total   int
}

var _ API = (*Client)(nil)
