// Package ui implements the reel terminal interface with Bubble Tea.
//
// # Layout
//
// The screen has three parts:
//
//   - Header: logo, the Home / Favorites tab bar, the favorites count, the
//     most recent change and the active theme
//   - Content: the active list in a titled box, plus an optional detail pane
//   - Command bar: short key help rendered by bubbles/help
//
// The detail pane takes half of the width, or 60% from LayoutWideWidth
// columns. Rows drop their genre column on narrow panes.
//
// # Views
//
// Home lists the catalog in catalog order. Favorites lists the favorites
// store in insertion order. Each view keeps its own cursor and pulls its rows
// from its source on every render, so both always agree with the store.
//
// Both views share one *favorites.Store. The model subscribes to it in New:
// one subscriber keeps the Favorites cursor in range when rows disappear, the
// other records the change for the header and logs it. A toggle from either
// view, or from outside the UI, shows up everywhere on the next frame.
//
// # Keys
//
//	tab / shift+tab   switch tab
//	1 / 2             Home / Favorites
//	j k ↑ ↓           move
//	g G               top / bottom
//	space f           toggle favorite
//	enter d           toggle detail pane
//	ctrl+u ctrl+d     scroll detail
//	T                 cycle theme (saved to prefs)
//	h ?               help
//	e ctrl+c          quit
//
// # Themes
//
// Nightfox (default), Kanagawa and Slate. Colors are hex strings consumed by
// lipgloss. BgStyle keeps backgrounds continuous across styled segments.
package ui
