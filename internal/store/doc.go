// Package store holds the in-memory state of the site backend: active
// sessions, contact messages, and newsletter subscriptions.
//
// Stores are plain structs constructed in main and passed into the services
// that need them, so tests can build isolated instances per test case.
// Nothing here is persisted; a process restart discards all state.
//
// Each store guards its collection with a single RWMutex. No operation spans
// more than one store, so there is no cross-store locking to get wrong.
package store
