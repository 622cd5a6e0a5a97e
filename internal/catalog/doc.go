package catalog

// Package catalog holds the recipe screen controller. It turns filter and
// page changes into remote list requests (debounced for filters, immediate
// for paging), guards the list against stale responses, loads recipe
// details, runs create/update/delete and patches the cached list by ID
// afterwards, and relays bookmark and theme toggles to the preference store.
// UI code observes it through SetUpdateCallback and renders State snapshots.
