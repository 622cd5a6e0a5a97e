package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/recipebook/internal/model"
	"github.com/ytget/recipebook/internal/notify"
	"github.com/ytget/recipebook/internal/recipeapi"
)

// ErrNoSelection is returned by operations that need a selected recipe
var ErrNoSelection = errors.New("no recipe selected")

// Store persists bookmarks and the theme flag. *config.Settings satisfies it.
type Store interface {
	Bookmarks() []int
	ToggleBookmark(id int) (wasBookmarked bool, err error)
	IsDarkMode() bool
	ToggleDarkMode() (bool, error)
}

// Notifier shows transient notifications. *notify.Notifier satisfies it.
type Notifier interface {
	Notify(note notify.Notification) string
}

// Options tune a Controller
type Options struct {
	Debounce time.Duration // zero uses DefaultDebounce
	Logger   *slog.Logger
}

// Controller owns the recipe screen state: the list query, the fetched page,
// the selected recipe and which dialog is open. List fetches carry a
// generation number and only the latest issued fetch may write the list.
type Controller struct {
	api      recipeapi.API
	store    Store
	notifier Notifier
	logger   *slog.Logger
	debounce *Debouncer

	mu         sync.Mutex
	state      State
	baseCtx    context.Context
	generation uint64
	detailGen  uint64
	onUpdate   func(State)
}

// NewController creates a controller. Call Start to load the first page.
func NewController(api recipeapi.API, store Store, notifier Notifier, opts Options) *Controller {
	if opts.Debounce == 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Controller{
		api:      api,
		store:    store,
		notifier: notifier,
		logger:   opts.Logger,
		debounce: NewDebouncer(opts.Debounce),
		baseCtx:  context.Background(),
		state: State{
			Recipes: model.RecipeList{},
			Mode:    model.ModeClosed,
			Draft:   model.NewDraft(),
		},
	}
	if store != nil {
		c.state.Bookmarks = store.Bookmarks()
		c.state.DarkMode = store.IsDarkMode()
	}
	return c
}

// SetUpdateCallback sets the function called with a fresh snapshot after
// every state change. It runs outside the controller lock, on whichever
// goroutine made the change.
func (c *Controller) SetUpdateCallback(callback func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = callback
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Start loads the tag list and the first page concurrently. ctx also bounds
// later debounced fetches.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	c.baseCtx = ctx
	c.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error { return c.LoadTags(ctx) })
	g.Go(func() error { return c.Refresh(ctx) })
	return g.Wait()
}

// Stop cancels a pending debounced fetch
func (c *Controller) Stop() {
	c.debounce.Stop()
}

// LoadTags fetches the tag picker options. Failures are logged only.
func (c *Controller) LoadTags(ctx context.Context) error {
	tags, err := c.api.Tags(ctx)
	if err != nil {
		c.logger.Warn("failed to load tags", "error", err)
		return nil
	}

	c.mu.Lock()
	c.state.Tags = tags
	c.mu.Unlock()
	c.notifyUpdate()
	return nil
}

// SetSearch updates the search text
func (c *Controller) SetSearch(text string) {
	c.updateQuery(func(q *model.QueryState) { q.Search = text })
}

// SetTag updates the tag filter ("all" or "" for none)
func (c *Controller) SetTag(tag string) {
	c.updateQuery(func(q *model.QueryState) { q.Tag = tag })
}

// SetMeal updates the meal-type filter ("all" or "" for none)
func (c *Controller) SetMeal(meal string) {
	c.updateQuery(func(q *model.QueryState) { q.Meal = meal })
}

// SetSort updates the sort key ("default" or "" for none)
func (c *Controller) SetSort(sortBy string) {
	c.updateQuery(func(q *model.QueryState) { q.SortBy = sortBy })
}

// ClearFilters resets search, tag, meal and sort to their empty values
func (c *Controller) ClearFilters() {
	c.updateQuery(func(q *model.QueryState) {
		q.Search, q.Tag, q.Meal, q.SortBy = "", "", "", ""
	})
}

// updateQuery applies change, resets the page and re-arms the debounced
// fetch. Changes that leave the filters untouched do nothing.
func (c *Controller) updateQuery(change func(q *model.QueryState)) {
	c.mu.Lock()
	before := c.state.Query
	next := before
	change(&next)
	next.Page = before.Page
	if next == before {
		c.mu.Unlock()
		return
	}
	next.Page = 0
	c.state.Query = next
	ctx := c.baseCtx
	c.mu.Unlock()

	c.notifyUpdate()
	c.debounce.Trigger(func() {
		_ = c.fetch(ctx)
	})
}

// SetPage moves to page and fetches it immediately. Other filters are kept.
// Once a total is known the page is clamped to the last one.
func (c *Controller) SetPage(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}
	c.mu.Lock()
	if c.state.Total > 0 {
		page = model.ClampPage(page, c.state.Total)
	}
	if page == c.state.Query.Page {
		c.mu.Unlock()
		return nil
	}
	c.state.Query.Page = page
	c.mu.Unlock()

	return c.fetch(ctx)
}

// NextPage moves one page forward if possible
func (c *Controller) NextPage(ctx context.Context) error {
	s := c.Snapshot()
	if !s.HasNext() {
		return nil
	}
	return c.SetPage(ctx, s.Query.Page+1)
}

// PrevPage moves one page back if possible
func (c *Controller) PrevPage(ctx context.Context) error {
	s := c.Snapshot()
	if !s.HasPrev() {
		return nil
	}
	return c.SetPage(ctx, s.Query.Page-1)
}

// Refresh fetches the current query immediately
func (c *Controller) Refresh(ctx context.Context) error {
	return c.fetch(ctx)
}

func (c *Controller) fetch(ctx context.Context) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	req := BuildRequest(c.state.Query)
	c.state.Loading = true
	c.mu.Unlock()
	c.notifyUpdate()

	c.logger.Debug("fetching recipes", "generation", gen, "endpoint", req.Endpoint, "term", req.Term,
		"limit", req.Limit, "skip", req.Skip, "sortBy", req.SortBy)
	result, err := c.api.List(ctx, req)

	c.mu.Lock()
	if gen != c.generation {
		latest := c.generation
		c.mu.Unlock()
		c.logger.Debug("dropping stale recipe list", "generation", gen, "latest", latest)
		return nil
	}
	c.state.Loading = false
	if err != nil {
		c.state.Recipes = model.RecipeList{}
		c.state.Total = 0
		c.mu.Unlock()

		c.logger.Error("failed to fetch recipes", "endpoint", req.Endpoint, "error", err)
		c.notify(notify.Notification{Title: MsgFetchError, Description: MsgTryAgainLater, Variant: notify.VariantDestructive})
		c.notifyUpdate()
		return fmt.Errorf("fetch recipes: %w", err)
	}
	if result.Recipes == nil {
		result.Recipes = model.RecipeList{}
	}
	c.state.Recipes = result.Recipes
	c.state.Total = result.Total
	c.mu.Unlock()

	c.notifyUpdate()
	return nil
}

// OpenDetail fetches the full recipe and shows the detail view. On failure
// the previous selection and mode are kept.
func (c *Controller) OpenDetail(ctx context.Context, id int) error {
	c.mu.Lock()
	c.detailGen++
	gen := c.detailGen
	c.state.DetailLoading = true
	c.mu.Unlock()
	c.notifyUpdate()

	recipe, err := c.api.Get(ctx, id)

	c.mu.Lock()
	if gen != c.detailGen {
		c.mu.Unlock()
		return nil
	}
	c.state.DetailLoading = false
	if err != nil {
		c.mu.Unlock()
		c.logger.Error("failed to fetch recipe", "id", id, "error", err)
		c.notify(notify.Notification{Title: MsgDetailError, Description: MsgDetailErrorDesc, Variant: notify.VariantDestructive})
		c.notifyUpdate()
		return fmt.Errorf("fetch recipe %d: %w", id, err)
	}
	c.state.Selected = &recipe
	c.state.Mode = model.ModeViewing
	c.mu.Unlock()

	c.notifyUpdate()
	return nil
}

// OpenAdd shows the add dialog with an empty draft
func (c *Controller) OpenAdd() {
	c.mu.Lock()
	c.state.Draft = model.NewDraft()
	c.state.Mode = model.ModeAdding
	c.mu.Unlock()
	c.notifyUpdate()
}

// OpenEdit shows the edit dialog pre-filled from the selected recipe
func (c *Controller) OpenEdit() error {
	c.mu.Lock()
	if c.state.Selected == nil {
		c.mu.Unlock()
		return ErrNoSelection
	}
	c.state.Draft = model.DraftFromRecipe(*c.state.Selected)
	c.state.Mode = model.ModeEditing
	c.mu.Unlock()
	c.notifyUpdate()
	return nil
}

// Close dismisses whichever dialog is open and discards the draft
func (c *Controller) Close() {
	c.mu.Lock()
	if c.state.Mode == model.ModeClosed {
		c.mu.Unlock()
		return
	}
	c.state.Mode = model.ModeClosed
	c.state.Draft = model.NewDraft()
	c.mu.Unlock()
	c.notifyUpdate()
}

// SubmitAdd validates and creates a recipe from draft. The new recipe is
// put at the front of the list; the total is left as reported by the remote.
func (c *Controller) SubmitAdd(ctx context.Context, draft model.RecipeDraft) error {
	if err := c.validate(draft); err != nil {
		return err
	}

	created, err := c.api.Create(ctx, draft.Normalize())
	if err != nil {
		c.logger.Error("failed to create recipe", "error", err)
		c.notify(notify.Notification{Title: MsgAddError, Description: MsgTryAgainLater, Variant: notify.VariantDestructive})
		return fmt.Errorf("create recipe: %w", err)
	}

	c.mu.Lock()
	c.state.Recipes = c.state.Recipes.Prepend(created)
	if c.state.Mode == model.ModeAdding {
		c.state.Mode = model.ModeClosed
	}
	c.state.Draft = model.NewDraft()
	c.mu.Unlock()

	c.logger.Info("recipe created", "id", created.ID, "name", created.Name)
	c.notify(notify.Notification{Title: MsgRecipeAdded, Description: MsgRecipeAddedDesc, Args: []any{created.Name}})
	c.notifyUpdate()
	return nil
}

// SubmitEdit validates draft and updates the selected recipe. The matching
// list entry is replaced in place and every dialog closes.
func (c *Controller) SubmitEdit(ctx context.Context, draft model.RecipeDraft) error {
	c.mu.Lock()
	selected := c.state.Selected
	c.mu.Unlock()
	if selected == nil {
		return ErrNoSelection
	}
	if err := c.validate(draft); err != nil {
		return err
	}

	id := selected.ID
	updated, err := c.api.Update(ctx, id, draft.Normalize())
	if err != nil {
		c.logger.Error("failed to update recipe", "id", id, "error", err)
		c.notify(notify.Notification{Title: MsgUpdateError, Description: MsgTryAgainLater, Variant: notify.VariantDestructive})
		return fmt.Errorf("update recipe %d: %w", id, err)
	}

	c.mu.Lock()
	c.state.Recipes, _ = c.state.Recipes.ReplaceByIDAs(id, updated)
	c.state.Selected = &updated
	c.state.Mode = model.ModeClosed
	c.state.Draft = model.NewDraft()
	c.mu.Unlock()

	c.logger.Info("recipe updated", "id", id)
	c.notify(notify.Notification{Title: MsgRecipeUpdated, Description: MsgRecipeUpdateDesc, Args: []any{updated.Name}})
	c.notifyUpdate()
	return nil
}

// Delete removes the recipe remotely, then drops it from the list and
// decrements the total. The detail view closes.
func (c *Controller) Delete(ctx context.Context, id int) error {
	if _, err := c.api.Delete(ctx, id); err != nil {
		c.logger.Error("failed to delete recipe", "id", id, "error", err)
		c.notify(notify.Notification{Title: MsgDeleteError, Description: MsgTryAgainLater, Variant: notify.VariantDestructive})
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}

	c.mu.Lock()
	c.state.Recipes, _ = c.state.Recipes.RemoveByID(id)
	if c.state.Total > 0 {
		c.state.Total--
	}
	if c.state.Selected != nil && c.state.Selected.ID == id {
		c.state.Selected = nil
	}
	c.state.Mode = model.ModeClosed
	c.mu.Unlock()

	c.logger.Info("recipe deleted", "id", id)
	c.notify(notify.Notification{Title: MsgRecipeDeleted, Description: MsgRecipeDeleteDesc})
	c.notifyUpdate()
	return nil
}

// ToggleBookmark flips the bookmark for id and reports whether it is now
// bookmarked. A persistence failure is logged; memory stays updated.
func (c *Controller) ToggleBookmark(id int) bool {
	was, err := c.store.ToggleBookmark(id)
	if err != nil {
		c.logger.Warn("failed to persist bookmarks", "error", err)
	}

	title := MsgBookmarkAdded
	if was {
		title = MsgBookmarkRemoved
	}

	c.mu.Lock()
	c.state.Bookmarks = c.store.Bookmarks()
	c.mu.Unlock()

	c.notify(notify.Notification{Title: title, Duration: notify.BookmarkDuration})
	c.notifyUpdate()
	return !was
}

// ToggleTheme flips and persists the dark mode flag, returning the new value
func (c *Controller) ToggleTheme() bool {
	dark, err := c.store.ToggleDarkMode()
	if err != nil {
		c.logger.Warn("failed to persist theme", "error", err)
	}

	c.mu.Lock()
	c.state.DarkMode = dark
	c.mu.Unlock()
	c.notifyUpdate()
	return dark
}

// validate re-checks the draft before any network call
func (c *Controller) validate(draft model.RecipeDraft) error {
	if err := draft.Validate(); err != nil {
		c.notify(notify.Notification{Title: MsgValidationError, Description: MsgNameRequired, Variant: notify.VariantDestructive})
		return err
	}
	return nil
}

func (c *Controller) notify(note notify.Notification) {
	if c.notifier != nil {
		c.notifier.Notify(note)
	}
}

func (c *Controller) notifyUpdate() {
	c.mu.Lock()
	callback := c.onUpdate
	snapshot := c.state.clone()
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
