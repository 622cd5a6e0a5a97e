package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/recipebook/internal/config"
	"github.com/ytget/recipebook/internal/fakeapi"
	"github.com/ytget/recipebook/internal/model"
	"github.com/ytget/recipebook/internal/notify"
	"github.com/ytget/recipebook/internal/recipeapi"
)

type memPrefs struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memPrefs) String(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

func (m *memPrefs) SetString(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

type harness struct {
	ctrl     *Controller
	srv      *fakeapi.Server
	notifier *notify.Notifier
	prefs    *memPrefs
}

func newHarness(t *testing.T, recipes model.RecipeList, debounce time.Duration) *harness {
	t.Helper()

	srv := fakeapi.New(recipes...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	client := recipeapi.NewClient(ts.URL+fakeapi.PathPrefix, 2*time.Second)
	client.HTTPClient = ts.Client()

	prefs := &memPrefs{values: map[string]string{}}
	settings := config.NewSettings(prefs)
	settings.Load()

	notifier := notify.New()
	t.Cleanup(notifier.Close)

	ctrl := NewController(client, settings, notifier, Options{Debounce: debounce})
	t.Cleanup(ctrl.Stop)

	return &harness{ctrl: ctrl, srv: srv, notifier: notifier, prefs: prefs}
}

func (h *harness) titles() []string {
	var out []string
	for _, n := range h.notifier.Active() {
		out = append(out, n.Title)
	}
	return out
}

func (h *harness) requestsWith(substr string) []string {
	var out []string
	for _, r := range h.srv.Requests() {
		if strings.Contains(r, substr) {
			out = append(out, r)
		}
	}
	return out
}

func TestStart_LoadsFirstPageAndTags(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(25), time.Hour)

	require.NoError(t, h.ctrl.Start(context.Background()))

	s := h.ctrl.Snapshot()
	assert.Equal(t, 25, s.Total)
	assert.Len(t, s.Recipes, model.PageSize)
	assert.NotEmpty(t, s.Tags)
	assert.False(t, s.Loading)
	assert.Equal(t, 3, s.PageCount())
	assert.Equal(t, []int{0, 1, 2}, s.VisiblePages())
	assert.ElementsMatch(t, []string{"GET /recipes?limit=12&skip=0", "GET /recipes/tags"}, h.srv.Requests())
}

func TestPagination_TwentyFiveRecipes(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(25), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))

	expected := []struct{ first, last, count int }{
		{1, 12, 12},
		{13, 24, 12},
		{25, 25, 1},
	}
	for page, want := range expected {
		require.NoError(t, h.ctrl.SetPage(ctx, page))
		s := h.ctrl.Snapshot()
		first, last := s.ShowingRange()
		assert.Equal(t, want.first, first, "page %d", page)
		assert.Equal(t, want.last, last, "page %d", page)
		assert.Len(t, s.Recipes, want.count, "page %d", page)
	}
	assert.False(t, h.ctrl.Snapshot().HasNext())
	assert.Len(t, h.requestsWith("skip=24"), 1)
}

func TestSetPage_ClampsToLastPage(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(25), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))

	require.NoError(t, h.ctrl.SetPage(ctx, 9))
	s := h.ctrl.Snapshot()
	assert.Equal(t, 2, s.Query.Page)
	assert.Len(t, s.Recipes, 1)
	assert.Len(t, h.requestsWith("skip=24"), 1)

	// Already on the last page, so nothing is fetched
	require.NoError(t, h.ctrl.SetPage(ctx, 40))
	assert.Len(t, h.requestsWith("skip=24"), 1)
	assert.Empty(t, h.requestsWith("skip=108"))
}

func TestSearch_DebounceCoalescesToOneRequest(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(16), 50*time.Millisecond)

	for _, text := range []string{"p", "pa", "pas", "past", "pasta"} {
		h.ctrl.SetSearch(text)
		time.Sleep(5 * time.Millisecond)
	}
	assert.Zero(t, h.srv.RequestCount(), "no request before the quiet period")

	assert.Eventually(t, func() bool {
		return h.srv.RequestCount() == 1 && !h.ctrl.Snapshot().Loading
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"GET /recipes/search?q=pasta"}, h.srv.Requests())
	assert.Equal(t, 2, h.ctrl.Snapshot().Total)
}

func TestFilterChangeResetsPage(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(40), time.Hour)
	ctx := context.Background()

	require.NoError(t, h.ctrl.SetPage(ctx, 2))
	assert.Equal(t, 2, h.ctrl.Snapshot().Query.Page)

	h.ctrl.SetTag("Pizza")
	s := h.ctrl.Snapshot()
	assert.Equal(t, 0, s.Query.Page)
	assert.Equal(t, "Pizza", s.Query.Tag)

	// Unchanged values neither reset nor re-arm
	require.NoError(t, h.ctrl.SetPage(ctx, 1))
	h.ctrl.SetTag("Pizza")
	assert.Equal(t, 1, h.ctrl.Snapshot().Query.Page)
}

func TestPageChangeKeepsFilters(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(40), time.Hour)
	ctx := context.Background()

	h.ctrl.SetSort("name")
	h.ctrl.SetMeal(model.FilterAll)
	require.NoError(t, h.ctrl.SetPage(ctx, 1))

	s := h.ctrl.Snapshot()
	assert.Equal(t, "name", s.Query.SortBy)
	assert.Equal(t, model.FilterAll, s.Query.Meal)
	assert.Equal(t, []string{"GET /recipes?limit=12&order=asc&skip=12&sortBy=name"}, h.srv.Requests())
}

func TestClearFilters(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(5), time.Hour)

	h.ctrl.SetSearch("soup")
	h.ctrl.SetMeal("dinner")
	assert.Equal(t, MsgAdjustFilters, h.ctrl.Snapshot().EmptyHint())

	h.ctrl.ClearFilters()
	s := h.ctrl.Snapshot()
	assert.Equal(t, model.QueryState{}, s.Query)
	assert.Equal(t, MsgNoRecipesAvailable, s.EmptyHint())
}

func TestFetchFailureClearsList(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(25), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))

	h.srv.FailWith(http.StatusInternalServerError)
	err := h.ctrl.NextPage(ctx)
	require.Error(t, err)

	var se *recipeapi.StatusError
	assert.True(t, errors.As(err, &se))

	s := h.ctrl.Snapshot()
	assert.Empty(t, s.Recipes)
	assert.Zero(t, s.Total)
	assert.False(t, s.Loading)
	assert.Equal(t, []string{MsgFetchError}, h.titles())
	assert.Equal(t, notify.VariantDestructive, h.notifier.Active()[0].Variant)
}

func TestStaleResponseIsDropped(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(16), time.Hour)
	ctx := context.Background()

	h.srv.SetLatency(func(r *http.Request) time.Duration {
		if r.URL.Query().Get("q") == "pizza" {
			return 300 * time.Millisecond
		}
		return 0
	})

	h.ctrl.SetSearch("pizza")
	done := make(chan error, 1)
	go func() { done <- h.ctrl.Refresh(ctx) }()

	require.Eventually(t, func() bool { return h.srv.RequestCount() == 1 }, time.Second, 5*time.Millisecond)

	h.ctrl.SetSearch("soup")
	require.NoError(t, h.ctrl.Refresh(ctx))
	require.NoError(t, <-done)

	s := h.ctrl.Snapshot()
	require.Len(t, s.Recipes, 1)
	assert.Equal(t, "Miso Soup", s.Recipes[0].Name)
	assert.False(t, s.Loading)
}

func TestOpenDetail(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(5), time.Hour)
	ctx := context.Background()

	require.NoError(t, h.ctrl.OpenDetail(ctx, 4))
	s := h.ctrl.Snapshot()
	require.NotNil(t, s.Selected)
	assert.Equal(t, 4, s.Selected.ID)
	assert.Equal(t, model.ModeViewing, s.Mode)

	h.ctrl.Close()
	require.Error(t, h.ctrl.OpenDetail(ctx, 999))
	s = h.ctrl.Snapshot()
	assert.Equal(t, model.ModeClosed, s.Mode)
	assert.Equal(t, 4, s.Selected.ID, "previous selection is kept")
	assert.False(t, s.DetailLoading)
	assert.Equal(t, []string{MsgDetailError}, h.titles())
}

func TestSubmitAdd_BlankNameMakesNoRequest(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(3), time.Hour)
	h.ctrl.OpenAdd()

	draft := model.NewDraft()
	draft.Name = "   "
	err := h.ctrl.SubmitAdd(context.Background(), draft)

	assert.True(t, errors.Is(err, model.ErrNameRequired))
	assert.Zero(t, h.srv.RequestCount())
	assert.Equal(t, []string{MsgValidationError}, h.titles())
	assert.Equal(t, model.ModeAdding, h.ctrl.Snapshot().Mode, "dialog stays open")
}

func TestSubmitAdd_PrependsRecipe(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(3), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))
	h.ctrl.OpenAdd()

	draft := model.NewDraft()
	draft.Name = "Pasta"
	draft.Ingredients = "Salt, Pepper"
	draft.Instructions = "Step 1\nStep 2"
	require.NoError(t, h.ctrl.SubmitAdd(ctx, draft))

	s := h.ctrl.Snapshot()
	require.Len(t, s.Recipes, 4)
	assert.Equal(t, "Pasta", s.Recipes[0].Name)
	assert.Equal(t, []string{"Salt", "Pepper"}, s.Recipes[0].Ingredients)
	assert.Equal(t, []string{"Step 1", "Step 2"}, s.Recipes[0].Instructions)
	assert.Equal(t, model.ModeClosed, s.Mode)

	active := h.notifier.Active()
	require.Len(t, active, 1)
	assert.Equal(t, MsgRecipeAdded, active[0].Title)
	assert.Equal(t, []any{"Pasta"}, active[0].Args)
}

func TestSubmitAdd_FailureLeavesList(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(3), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))
	before := h.ctrl.Snapshot().Recipes

	h.srv.FailWith(http.StatusBadGateway)
	draft := model.NewDraft()
	draft.Name = "Soup"
	require.Error(t, h.ctrl.SubmitAdd(ctx, draft))

	assert.Equal(t, before, h.ctrl.Snapshot().Recipes)
	assert.Equal(t, []string{MsgAddError}, h.titles())
}

func TestSubmitEdit_ReplacesInPlace(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(5), time.Hour)
	ctx := context.Background()

	assert.ErrorIs(t, h.ctrl.OpenEdit(), ErrNoSelection)
	assert.ErrorIs(t, h.ctrl.SubmitEdit(ctx, model.NewDraft()), ErrNoSelection)

	require.NoError(t, h.ctrl.Refresh(ctx))
	before := h.ctrl.Snapshot().Recipes
	require.NoError(t, h.ctrl.OpenDetail(ctx, 3))
	require.NoError(t, h.ctrl.OpenEdit())

	s := h.ctrl.Snapshot()
	assert.Equal(t, model.ModeEditing, s.Mode)
	assert.Equal(t, "Chocolate Chip Cookies", s.Draft.Name)

	draft := s.Draft
	draft.Name = "Oat Cookies"
	require.NoError(t, h.ctrl.SubmitEdit(ctx, draft))

	s = h.ctrl.Snapshot()
	require.Len(t, s.Recipes, len(before))
	for i := range before {
		if before[i].ID == 3 {
			assert.Equal(t, "Oat Cookies", s.Recipes[i].Name)
			continue
		}
		assert.Equal(t, before[i], s.Recipes[i])
	}
	assert.Equal(t, model.ModeClosed, s.Mode)
	assert.Equal(t, "Oat Cookies", s.Selected.Name)
}

func TestSubmitEdit_BlankNameMakesNoRequest(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(5), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))
	require.NoError(t, h.ctrl.OpenDetail(ctx, 2))
	require.NoError(t, h.ctrl.OpenEdit())
	before := h.ctrl.Snapshot()
	requests := h.srv.RequestCount()

	for _, name := range []string{"", "   ", "\t\n"} {
		draft := before.Draft
		draft.Name = name
		err := h.ctrl.SubmitEdit(ctx, draft)
		assert.ErrorIs(t, err, model.ErrNameRequired, "name %q", name)
	}

	after := h.ctrl.Snapshot()
	assert.Equal(t, requests, h.srv.RequestCount())
	assert.Empty(t, h.requestsWith("PUT"))
	assert.Equal(t, model.ModeEditing, after.Mode, "dialog stays open")
	assert.Equal(t, before.Recipes, after.Recipes)
	assert.Equal(t, before.Selected, after.Selected)
	for _, title := range h.titles() {
		assert.Equal(t, MsgValidationError, title)
	}
	assert.NotEmpty(t, h.titles())
}

func TestSubmitEdit_FailureKeepsState(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(5), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))
	require.NoError(t, h.ctrl.OpenDetail(ctx, 2))
	require.NoError(t, h.ctrl.OpenEdit())
	before := h.ctrl.Snapshot()

	h.srv.FailWith(http.StatusInternalServerError)
	draft := before.Draft
	draft.Name = "Changed"
	require.Error(t, h.ctrl.SubmitEdit(ctx, draft))

	after := h.ctrl.Snapshot()
	assert.Equal(t, before.Recipes, after.Recipes)
	assert.Equal(t, model.ModeEditing, after.Mode)
	assert.Equal(t, []string{MsgUpdateError}, h.titles())
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(25), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))
	require.NoError(t, h.ctrl.OpenDetail(ctx, 5))
	before := h.ctrl.Snapshot()

	require.NoError(t, h.ctrl.Delete(ctx, 5))

	after := h.ctrl.Snapshot()
	assert.Equal(t, before.Total-1, after.Total)
	expected, _ := before.Recipes.RemoveByID(5)
	assert.Equal(t, expected, after.Recipes)
	assert.Nil(t, after.Selected)
	assert.Equal(t, model.ModeClosed, after.Mode)
	assert.Equal(t, []string{MsgRecipeDeleted}, h.titles())
}

func TestDelete_FailureKeepsList(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(25), time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctrl.Refresh(ctx))
	before := h.ctrl.Snapshot()

	require.Error(t, h.ctrl.Delete(ctx, 999))

	after := h.ctrl.Snapshot()
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, before.Recipes, after.Recipes)
	assert.Equal(t, []string{MsgDeleteError}, h.titles())
}

func TestToggleBookmark_TwiceRestores(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(3), time.Hour)

	assert.True(t, h.ctrl.ToggleBookmark(1))
	assert.True(t, h.ctrl.Snapshot().IsBookmarked(1))
	assert.False(t, h.ctrl.ToggleBookmark(1))
	assert.False(t, h.ctrl.Snapshot().IsBookmarked(1))

	assert.Equal(t, "[]", h.prefs.String(config.KeyBookmarks))
	assert.Equal(t, []string{MsgBookmarkAdded, MsgBookmarkRemoved}, h.titles())
	for _, n := range h.notifier.Active() {
		assert.Equal(t, notify.BookmarkDuration, n.Duration)
	}
}

func TestToggleTheme(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(1), time.Hour)

	assert.True(t, h.ctrl.ToggleTheme())
	assert.True(t, h.ctrl.Snapshot().DarkMode)
	assert.Equal(t, "true", h.prefs.String(config.KeyDarkMode))
	assert.False(t, h.ctrl.ToggleTheme())
}

func TestUpdateCallbackReceivesSnapshots(t *testing.T) {
	h := newHarness(t, fakeapi.Sample(3), time.Hour)

	var mu sync.Mutex
	var modes []model.ViewMode
	h.ctrl.SetUpdateCallback(func(s State) {
		mu.Lock()
		modes = append(modes, s.Mode)
		mu.Unlock()
	})

	h.ctrl.OpenAdd()
	h.ctrl.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []model.ViewMode{model.ModeAdding, model.ModeClosed}, modes)
}
