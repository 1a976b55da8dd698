// Package memstore provides in-memory implementations of the store
// interfaces, backed by mutex-guarded maps. All state lives for the
// duration of the process only; there is deliberately no persistence
// across restarts. Entities are copied on the way in and out so callers
// never share a mutable reference with the store.
package memstore
