package ui

import (
	"fmt"
)

// renderHeader renders the logo, the tab bar and the favorites status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{
		bg.Render("reel", styles.Logo),
		m.renderTabs(styles, bg),
		bg.Render(heartFull, styles.HeartText) + bg.Spaces(1) +
			bg.Render(fmt.Sprintf("%s of %d", pluralize(m.favorites.Len(), "favorite", "favorites"), m.catalog.Len()), styles.Text),
	}

	if m.width >= LayoutCompactWidth*2 {
		if last := m.renderLastChange(styles, bg); last != "" {
			parts = append(parts, last)
		}
		parts = append(parts, bg.Render("Theme:", styles.FaintText)+bg.Spaces(1)+bg.Render(m.theme.Name, styles.MutedText))
	}

	return styles.Header.
		Width(m.width).
		MaxWidth(m.width).
		Render(bg.Join(parts, "  ") + sep)
}

// renderTabs renders "Home  Favorites (n)" with the active tab highlighted.
func (m Model) renderTabs(styles Styles, bg BgStyle) string {
	tabs := []Tab{TabHome, TabFavorites}
	out := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		label := tab.String()
		if tab == TabFavorites {
			label = fmt.Sprintf("%s (%d)", label, m.favorites.Len())
		}
		style := styles.TabIdle
		if tab == m.tab {
			style = styles.TabActive
		}
		out = append(out, style.Render(label))
	}
	return bg.Join(out, " ")
}

// renderLastChange describes the most recent toggle, or "" before any.
func (m Model) renderLastChange(styles Styles, bg BgStyle) string {
	if m.activity == nil || !m.activity.seen {
		return ""
	}
	c := m.activity.last
	title := truncate(c.Movie.Title, 30)
	if c.Favorite {
		return bg.Render("Added", styles.SuccessText) + bg.Spaces(1) + bg.Render(title, styles.Text)
	}
	return bg.Render("Removed", styles.DangerText) + bg.Spaces(1) + bg.Render(title, styles.Text)
}
