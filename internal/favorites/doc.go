// Package favorites tracks which catalog movies the user has marked.
//
// # Overview
//
// Store is the only mutable state in reel. The Home and Favorites views both
// hold the same *Store, so a toggle made in one view is visible in the other
// on the very next read. There is no global instance: app.Run constructs the
// store and passes it to the UI.
//
// # Identity
//
// Membership is keyed by catalog.Movie.ID. A Movie value built separately but
// carrying the same ID is the same favorite. A movie that is not in the
// catalog is simply never a favorite until someone toggles it.
//
// # Ordering
//
// All returns favorites in insertion order, oldest first. Removing a movie and
// adding it again moves it to the end.
//
//	store.Toggle(inception) // [Inception]
//	store.Toggle(up)        // [Inception Up]
//	store.Toggle(inception) // [Up]
//	store.Toggle(inception) // [Up Inception]
//
// # Notification
//
// Views re-read the store on every render, and callers that need to react to
// a change register with Subscribe. Subscribers run synchronously inside
// Toggle, after the set has been updated, in registration order:
//
//	cancel := store.Subscribe(func(c favorites.Change) {
//		log.Printf("%s favorite=%v (rev %d)", c.Movie.Title, c.Favorite, c.Revision)
//	})
//	defer cancel()
//
// # Snapshots
//
// All copies both the slice and every Movie in it. A snapshot taken before a
// toggle keeps its contents afterwards.
//
// # Concurrency
//
// The store has no lock. All calls happen on the Bubble Tea update loop, which
// processes one message at a time.
package favorites
