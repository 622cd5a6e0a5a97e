package catalog

import "github.com/ytget/recipebook/internal/model"

// BuildRequest derives the single remote request for q. Search text wins over
// the tag filter, which wins over the meal filter; only the unfiltered list
// is paginated. Sorting applies to every endpoint.
func BuildRequest(q model.QueryState) model.ListRequest {
	var req model.ListRequest

	switch {
	case !q.IsFiltered():
		req.Endpoint = model.EndpointList
		req.Limit = model.PageSize
		req.Skip = model.PageOffset(q.Page)
	case q.ActiveSearch() != "":
		req.Endpoint = model.EndpointSearch
		req.Term = q.ActiveSearch()
	case q.ActiveTag() != "":
		req.Endpoint = model.EndpointTag
		req.Term = q.ActiveTag()
	default:
		req.Endpoint = model.EndpointMealType
		req.Term = q.ActiveMeal()
	}

	if sortBy := q.ActiveSort(); sortBy != "" {
		req.SortBy = sortBy
		req.Order = model.SortOrder
	}
	return req
}
