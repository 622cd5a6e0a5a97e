package model

import "strings"

// Sentinel picker values meaning "no filter applied"
const (
	FilterAll   = "all"
	SortDefault = "default"
	SortOrder   = "asc"
)

// QueryState holds the user's current list query
type QueryState struct {
	Search string
	Tag    string
	Meal   string
	SortBy string
	Page   int // zero-based
}

// ActiveSearch returns the trimmed search text
func (q QueryState) ActiveSearch() string {
	return strings.TrimSpace(q.Search)
}

// ActiveTag returns the selected tag, or "" for none / "all"
func (q QueryState) ActiveTag() string {
	if q.Tag == FilterAll {
		return ""
	}
	return q.Tag
}

// ActiveMeal returns the selected meal type, or "" for none / "all"
func (q QueryState) ActiveMeal() string {
	if q.Meal == FilterAll {
		return ""
	}
	return q.Meal
}

// ActiveSort returns the sort key, or "" for none / "default"
func (q QueryState) ActiveSort() string {
	if q.SortBy == SortDefault {
		return ""
	}
	return q.SortBy
}

// IsFiltered reports whether search, tag or meal narrows the result set
func (q QueryState) IsFiltered() bool {
	return q.ActiveSearch() != "" || q.ActiveTag() != "" || q.ActiveMeal() != ""
}

// HasFilters reports whether any picker differs from its empty state.
// Drives the "Clear Filters" button and the empty-state message.
func (q QueryState) HasFilters() bool {
	return q.Search != "" || q.Tag != "" || q.Meal != "" || q.SortBy != ""
}

// FilterBadges returns the labels shown under the filter bar
func (q QueryState) FilterBadges() []string {
	var badges []string
	if q.Search != "" {
		badges = append(badges, "Search: "+q.Search)
	}
	if tag := q.ActiveTag(); tag != "" {
		badges = append(badges, "Tag: "+tag)
	}
	if meal := q.ActiveMeal(); meal != "" {
		badges = append(badges, "Meal: "+meal)
	}
	if sort := q.ActiveSort(); sort != "" {
		badges = append(badges, "Sort: "+sort)
	}
	return badges
}

// EndpointKind selects which remote list endpoint serves a query
type EndpointKind string

const (
	EndpointList     EndpointKind = "list"
	EndpointSearch   EndpointKind = "search"
	EndpointTag      EndpointKind = "tag"
	EndpointMealType EndpointKind = "meal-type"
)

// String returns the string representation of EndpointKind
func (k EndpointKind) String() string {
	return string(k)
}

// ListRequest is the single remote request derived from a QueryState.
// Limit and Skip are only meaningful for EndpointList; SortBy is empty when
// no sort is requested.
type ListRequest struct {
	Endpoint EndpointKind
	Term     string
	Limit    int
	Skip     int
	SortBy   string
	Order    string
}

// Paginated reports whether limit/skip parameters are sent
func (r ListRequest) Paginated() bool {
	return r.Endpoint == EndpointList && r.Limit > 0
}

// Option is a picker entry with a wire value and a display label
type Option struct {
	Value string
	Label string
}

// MealTypes are the meal filters offered by the meal picker
var MealTypes = []Option{
	{Value: FilterAll, Label: "All meals"},
	{Value: "breakfast", Label: "Breakfast"},
	{Value: "lunch", Label: "Lunch"},
	{Value: "dinner", Label: "Dinner"},
	{Value: "snack", Label: "Snack"},
	{Value: "dessert", Label: "Dessert"},
}

// SortOptions are the sort keys offered by the sort picker
var SortOptions = []Option{
	{Value: SortDefault, Label: "Default"},
	{Value: "name", Label: "Name"},
	{Value: "caloriesPerServing", Label: "Calories"},
	{Value: "prepTimeMinutes", Label: "Prep Time"},
	{Value: "rating", Label: "Rating"},
}

// OptionLabels returns the labels of opts in order
func OptionLabels(opts []Option) []string {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	return labels
}

// OptionValue maps a label back to its wire value ("" when unknown)
func OptionValue(opts []Option, label string) string {
	for _, o := range opts {
		if o.Label == label {
			return o.Value
		}
	}
	return ""
}

// OptionLabel maps a wire value to its label ("" when unknown)
func OptionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}
