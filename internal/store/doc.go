// Package store is the client-side state container for the insole
// collection.
//
// It owns the in-memory collection, the derived filtered/sorted view, the
// per-operation flags, and the notification queue. Mutations coordinate
// the remote endpoint (internal/api) and the on-device cache
// (internal/cache): synchronize replaces the collection wholesale, create
// is optimistic about the record id but gated on the remote write, update
// and delete mutate local state only after the remote call settles.
//
// Every remote failure is converted to a notification at this boundary;
// nothing propagates to the UI as an error. The filtered view is a pure
// function of (collection, filters, sort) and is recomputed explicitly
// after each mutation rather than through implicit reactivity.
//
// Store methods are called from Bubble Tea command goroutines, so all
// state is mutex-guarded. The loading/syncing/saving/deleting flags
// additionally enforce at most one logical operation per class: a second
// attempt while one is in flight is dropped.
package store
