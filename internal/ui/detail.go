package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reel/internal/catalog"
)

// initDetailViewport creates the detail viewport sized for the current window.
func (m *Model) initDetailViewport() {
	w, h := m.detailSize()
	m.detailViewport = viewport.New(w, h)
}

// detailSize returns the inner size of the detail pane.
func (m *Model) detailSize() (width, height int) {
	_, detailWidth := m.paneWidths()
	return max(detailWidth-4, 0), max(m.height-chromeHeight-boxBorderRows, 0)
}

// paneWidths splits the window between list and detail panes. The detail pane
// is zero wide when collapsed.
func (m *Model) paneWidths() (list, detail int) {
	if !m.showDetail {
		return m.width, 0
	}
	if m.width >= LayoutWideWidth {
		list = m.width * 40 / 100
	} else {
		list = m.width * 50 / 100
	}
	return list, m.width - list
}

// updateDetailViewport refreshes detail content for the selected movie.
func (m *Model) updateDetailViewport() {
	if !m.ready || !m.showDetail {
		return
	}
	w, h := m.detailSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h

	movie, ok := m.activeView().selected()
	if !ok {
		m.detailViewport.SetContent(m.theme.Styles().MutedText.Render("Select a movie"))
		return
	}
	// Favorites hold the copy taken at toggle time; show the catalog record.
	if full, found := m.catalog.Lookup(movie.ID); found {
		movie = full
	}
	if movie.ID != m.detailMovieID {
		m.detailViewport.GotoTop()
		m.detailMovieID = movie.ID
	}
	m.detailViewport.SetContent(m.renderDetailContent(movie, w))
}

// renderDetailContent renders the detail lines for a movie.
func (m Model) renderDetailContent(movie catalog.Movie, width int) string {
	styles := m.theme.Styles()
	labelStyle := styles.MutedText.Width(10)
	wrap := lipgloss.NewStyle().Width(max(width, 10))

	var b strings.Builder
	title := styles.Text.Bold(true).Render(movie.Title)
	if m.favorites.IsFavorite(movie) {
		title = styles.HeartText.Render(heartFull) + " " + title
	}
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", min(max(width, 1), 40))))
	b.WriteString("\n")

	fields := []struct{ label, value string }{
		{"Year", movie.Year},
		{"Genres", movie.GenreLine()},
		{"Director", movie.Director},
		{"Actors", movie.Actors},
		{"Rating", movie.Rating},
		{"Poster", truncate(movie.Poster(), max(width-10, 10))},
		{"ID", movie.ID},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		valueWidth := max(width-10, 10)
		value := lipgloss.NewStyle().Width(valueWidth).Render(f.value)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(f.label), styles.Text.Render(value)))
		b.WriteString("\n")
	}

	if plot := strings.TrimSpace(movie.Plot); plot != "" {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Plot"))
		b.WriteString("\n")
		b.WriteString(styles.Text.Render(wrap.Render(plot)))
		b.WriteString("\n")
	}

	if len(movie.Images) > 1 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("More images"))
		b.WriteString("\n")
		for _, img := range movie.Images[1:] {
			b.WriteString(styles.FaintText.Render(truncate(img, max(width, 10))))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
