package fakeapi

// Package fakeapi serves an in-memory, DummyJSON-compatible recipe catalog
// with gorilla/mux. Tests point the recipe client at it through httptest;
// the mock-api command serves it on a local port for offline use.
