package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed movies.yaml
var builtin []byte

// Movie is a single catalog entry. Values are never mutated once the catalog
// is built; ID alone identifies a movie.
type Movie struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Year     string   `yaml:"year"`
	Genres   []string `yaml:"genres"`
	Director string   `yaml:"director"`
	Actors   string   `yaml:"actors"`
	Plot     string   `yaml:"plot"`
	Images   []string `yaml:"images"`
	Rating   string   `yaml:"rating"`
}

// GenreLine joins the genres for display.
func (m Movie) GenreLine() string {
	return strings.Join(m.Genres, ", ")
}

// Poster returns the first image reference, or "" when the movie has none.
func (m Movie) Poster() string {
	if len(m.Images) == 0 {
		return ""
	}
	return m.Images[0]
}

// NormalizeID returns the canonical form of a movie ID. Everything that keys
// movies by ID goes through it.
func NormalizeID(id string) string {
	return strings.TrimSpace(id)
}

// Clone returns a deep copy so callers cannot reach the catalog's slices.
func (m Movie) Clone() Movie {
	m.Genres = slices.Clone(m.Genres)
	m.Images = slices.Clone(m.Images)
	return m
}

// Catalog is the fixed, ordered list of all movies known to the application.
type Catalog struct {
	movies []Movie
	byID   map[string]int
}

var (
	ErrEmptyID      = errors.New("movie id is empty")
	ErrEmptyTitle   = errors.New("movie title is empty")
	ErrDuplicateID  = errors.New("duplicate movie id")
	ErrEmptyCatalog = errors.New("catalog has no movies")
)

// Load decodes the catalog compiled into the binary.
func Load() (*Catalog, error) {
	var doc struct {
		Movies []Movie `yaml:"movies"`
	}
	if err := yaml.Unmarshal(builtin, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(doc.Movies)
}

// New builds a catalog from movies, keeping their order.
func New(movies []Movie) (*Catalog, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		movies: make([]Movie, 0, len(movies)),
		byID:   make(map[string]int, len(movies)),
	}
	for i, m := range movies {
		m.ID = NormalizeID(m.ID)
		if m.ID == "" {
			return nil, fmt.Errorf("movie %d: %w", i, ErrEmptyID)
		}
		if strings.TrimSpace(m.Title) == "" {
			return nil, fmt.Errorf("movie %q: %w", m.ID, ErrEmptyTitle)
		}
		if _, ok := c.byID[m.ID]; ok {
			return nil, fmt.Errorf("movie %q: %w", m.ID, ErrDuplicateID)
		}
		c.byID[m.ID] = len(c.movies)
		c.movies = append(c.movies, m.Clone())
	}
	return c, nil
}

// All returns every movie in catalog order. The result is a fresh copy on
// each call.
func (c *Catalog) All() []Movie {
	out := make([]Movie, len(c.movies))
	for i, m := range c.movies {
		out[i] = m.Clone()
	}
	return out
}

// Lookup finds a movie by ID.
func (c *Catalog) Lookup(id string) (Movie, bool) {
	idx, ok := c.byID[NormalizeID(id)]
	if !ok {
		return Movie{}, false
	}
	return c.movies[idx].Clone(), true
}

// Len reports the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}
