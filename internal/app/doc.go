// Package app is the composition root for reel.
//
// Run loads the optional config file, opens the rotating log sink, reads
// display preferences, loads the embedded movie catalog and creates one
// favorites.Store. The store is handed to the UI, which shares it between the
// Home and Favorites views. Nothing is persisted across runs apart from the
// theme preference.
//
// Fatal errors (returned from Run):
//   - config file present but unreadable or invalid
//   - embedded catalog invalid
//   - Bubble Tea program failure
//
// A missing config or prefs file is not an error; defaults apply.
package app
