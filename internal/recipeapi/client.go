package recipeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/recipebook/internal/model"
)

// Defaults for the remote catalog
const (
	DefaultBaseURL = "https://dummyjson.com/recipes"
	DefaultTimeout = 12 * time.Second
)

// Endpoint path segments below the base URL
const (
	pathSearch   = "search"
	pathTag      = "tag"
	pathMealType = "meal-type"
	pathTags     = "tags"
	pathAdd      = "add"
)

// Client talks to a DummyJSON-compatible recipes endpoint
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a client for baseURL with the given request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// List fetches the recipes selected by req
func (c *Client) List(ctx context.Context, req model.ListRequest) (ListResult, error) {
	endpoint := c.ListURL(req)

	body, err := c.do(ctx, "list recipes", http.MethodGet, endpoint, nil)
	if err != nil {
		return ListResult{}, err
	}
	result, err := decodeList(body)
	if err != nil {
		return ListResult{}, fmt.Errorf("decode recipe list: %w", err)
	}
	return result, nil
}

// ListURL returns the URL List would request for req
func (c *Client) ListURL(req model.ListRequest) string {
	base := c.baseURL()
	query := url.Values{}

	var endpoint string
	switch req.Endpoint {
	case model.EndpointSearch:
		endpoint = base + "/" + pathSearch
		query.Set("q", req.Term)
	case model.EndpointTag:
		endpoint = base + "/" + pathTag + "/" + url.PathEscape(req.Term)
	case model.EndpointMealType:
		endpoint = base + "/" + pathMealType + "/" + url.PathEscape(req.Term)
	default:
		endpoint = base
	}

	if req.Paginated() {
		query.Set("limit", strconv.Itoa(req.Limit))
		query.Set("skip", strconv.Itoa(req.Skip))
	}
	if req.SortBy != "" {
		query.Set("sortBy", req.SortBy)
		order := req.Order
		if order == "" {
			order = model.SortOrder
		}
		query.Set("order", order)
	}

	if len(query) == 0 {
		return endpoint
	}
	return endpoint + "?" + query.Encode()
}

// Tags fetches the tag list used by the tag picker
func (c *Client) Tags(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, "list tags", http.MethodGet, c.baseURL()+"/"+pathTags, nil)
	if err != nil {
		return nil, err
	}
	var tags []string
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

// Get fetches the full recipe with the given ID
func (c *Client) Get(ctx context.Context, id int) (model.Recipe, error) {
	return c.recipeCall(ctx, "get recipe", http.MethodGet, c.recipeURL(id), nil)
}

// Create posts a new recipe and returns the record echoed by the remote
func (c *Client) Create(ctx context.Context, payload model.RecipePayload) (model.Recipe, error) {
	return c.recipeCall(ctx, "create recipe", http.MethodPost, c.baseURL()+"/"+pathAdd, payload)
}

// Update replaces the recipe with the given ID
func (c *Client) Update(ctx context.Context, id int, payload model.RecipePayload) (model.Recipe, error) {
	return c.recipeCall(ctx, "update recipe", http.MethodPut, c.recipeURL(id), payload)
}

// Delete removes the recipe with the given ID and returns the deleted record
func (c *Client) Delete(ctx context.Context, id int) (model.Recipe, error) {
	return c.recipeCall(ctx, "delete recipe", http.MethodDelete, c.recipeURL(id), nil)
}

func (c *Client) recipeCall(ctx context.Context, op, method, endpoint string, payload any) (model.Recipe, error) {
	body, err := c.do(ctx, op, method, endpoint, payload)
	if err != nil {
		return model.Recipe{}, err
	}
	var recipe model.Recipe
	if err := json.Unmarshal(body, &recipe); err != nil {
		return model.Recipe{}, fmt.Errorf("decode %s response: %w", op, err)
	}
	return recipe, nil
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s payload: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.logger().Debug("request failed", "op", op, "method", method, "url", endpoint, "error", err)
		return nil, fmt.Errorf("execute %s request: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}
	c.logger().Debug("request done", "op", op, "method", method, "url", endpoint,
		"status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: op, Method: method, URL: endpoint, Code: resp.StatusCode}
	}
	return body, nil
}

func (c *Client) recipeURL(id int) string {
	return c.baseURL() + "/" + strconv.Itoa(id)
}

func (c *Client) baseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return DefaultBaseURL
	}
	return base
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return &http.Client{Timeout: DefaultTimeout}
	}
	return c.HTTPClient
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// listEnvelope is the object form of a list response
type listEnvelope struct {
	Recipes model.RecipeList `json:"recipes"`
	Total   int              `json:"total"`
}

// decodeList accepts either a bare array of recipes or an envelope with
// recipes and total. A missing or zero total falls back to the list length.
func decodeList(body []byte) (ListResult, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var recipes model.RecipeList
		if err := json.Unmarshal(trimmed, &recipes); err != nil {
			return ListResult{}, err
		}
		return ListResult{Recipes: recipes, Total: len(recipes)}, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return ListResult{}, err
	}
	total := env.Total
	if total == 0 {
		total = len(env.Recipes)
	}
	return ListResult{Recipes: env.Recipes, Total: total}, nil
}
