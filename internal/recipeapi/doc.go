package recipeapi

// Package recipeapi is the HTTP client for the remote recipe catalog
// (DummyJSON-compatible). It maps a model.ListRequest onto exactly one
// endpoint, normalizes list responses into recipes plus a total count, and
// performs detail lookups and create/update/delete calls. Non-2xx replies
// surface as *StatusError; nothing is retried.
