package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/reel/internal/catalog"
)

// listView is one rendering surface: a titled, scrollable list of movies with
// its own cursor. Rows come from source on every render, so the view never
// holds stale data.
type listView struct {
	title  string
	empty  string
	source func() []catalog.Movie

	cursor int
	offset int // first visible row
}

func newListView(title, empty string, source func() []catalog.Movie) *listView {
	return &listView{title: title, empty: empty, source: source}
}

func (v *listView) movies() []catalog.Movie {
	return v.source()
}

// selected returns the movie under the cursor.
func (v *listView) selected() (catalog.Movie, bool) {
	movies := v.movies()
	if len(movies) == 0 {
		return catalog.Movie{}, false
	}
	v.clamp(len(movies))
	return movies[v.cursor], true
}

func (v *listView) move(delta int) {
	v.cursor += delta
	v.clamp(len(v.movies()))
}

func (v *listView) top() {
	v.cursor = 0
	v.offset = 0
}

func (v *listView) bottom() {
	v.cursor = len(v.movies()) - 1
	v.clamp(len(v.movies()))
}

// clamp keeps the cursor inside [0, n).
func (v *listView) clamp(n int) {
	if n <= 0 {
		v.cursor = 0
		v.offset = 0
		return
	}
	if v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.offset > v.cursor {
		v.offset = v.cursor
	}
}

// window returns the visible row range for height rows, scrolling so the
// cursor stays on screen.
func (v *listView) window(n, height int) (start, end int) {
	if height <= 0 || n == 0 {
		return 0, 0
	}
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+height {
		v.offset = v.cursor - height + 1
	}
	if v.offset > n-height {
		v.offset = max(n-height, 0)
	}
	return v.offset, min(v.offset+height, n)
}

// heading returns the pane title with a row count.
func (v *listView) heading() string {
	return fmt.Sprintf("%s (%d)", v.title, len(v.movies()))
}

// render draws the rows that fit in width x height. isFavorite decides the
// marker for each row.
func (v *listView) render(theme Theme, width, height int, bgColor string, isFavorite func(catalog.Movie) bool) string {
	movies := v.movies()
	v.clamp(len(movies))
	if len(movies) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)).
			Background(lipgloss.Color(bgColor)).
			Width(width).
			Render(v.empty)
	}

	start, end := v.window(len(movies), height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selected := i == v.cursor
		rowBg := bgColor
		if selected {
			rowBg = theme.SelectionBg
		}
		content := formatRow(theme, movies[i], isFavorite(movies[i]), width, rowBg, selected)
		lines = append(lines, NewBgStyle(rowBg).FillLine(content, width))
	}
	return strings.Join(lines, "\n")
}

// formatRow formats a movie row: "♥ Title (Year) · Genres".
// Selected rows use SelectionText for everything except the heart.
func formatRow(theme Theme, m catalog.Movie, favorite bool, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := theme.Styles()

	marker := heartEmpty
	markerStyle := styles.FaintText
	if favorite {
		marker = heartFull
		markerStyle = styles.HeartText
	}

	titleStyle, yearStyle, genreStyle := styles.Text, styles.MutedText, styles.FaintText
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SelectionText))
		titleStyle, yearStyle, genreStyle = sel.Bold(true), sel, sel
	}

	year := ""
	if m.Year != "" {
		year = "(" + m.Year + ")"
	}
	genres := m.GenreLine()
	if width < LayoutCompactWidth {
		genres = ""
	}

	// marker + space + title + space + year [+ " · " + genres]
	fixed := 2 + len([]rune(year)) + 1
	if genres != "" && width-fixed-3-len([]rune(genres)) < 10 {
		genres = ""
	}
	if genres != "" {
		fixed += 3 + len([]rune(genres))
	}
	titleWidth := max(width-fixed, 4)

	parts := bg.Render(marker, markerStyle) + bg.Spaces(1) +
		bg.Render(truncate(m.Title, titleWidth), titleStyle)
	if year != "" {
		parts += bg.Spaces(1) + bg.Render(year, yearStyle)
	}
	if genres != "" {
		parts += bg.Render(" · ", genreStyle) + bg.Render(genres, genreStyle)
	}
	return parts
}
