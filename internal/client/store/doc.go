// Package store is the client's single application state container.
//
// # Overview
//
// One Store owns the whole State: the session, the ingredient catalog, the
// public order feed and the order builder with the user's order history.
// Nothing outside the package can assign to it. Local changes go through
// Dispatch with one of the exported actions; network operations (Login,
// FetchCatalog, SubmitOrder, ...) call the backend through client.Client and
// apply their outcome as unexported actions, so they cannot be forged.
//
// Every mutation runs through a pure reducer under the store mutex and
// listeners registered with Subscribe receive a copy of the new state.
//
// # Concurrency
//
// Operations may run from several goroutines. Each network operation takes a
// sequence number when it starts; a completion that is no longer the latest
// for its operation is dropped, so the most recently issued call wins.
//
// # Derived views
//
// BuilderContents, Price, OrderDetail and UsageCounters are pure functions
// over a State snapshot and are recomputed on every call.
package store
