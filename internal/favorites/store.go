package favorites

import (
	"go.uber.org/zap"

	"github.com/five82/reel/internal/catalog"
)

// Change describes a single toggle. Revision increases by one per change.
type Change struct {
	Movie    catalog.Movie
	Favorite bool
	Revision uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger. Nil is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type subscriber struct {
	id int
	fn func(Change)
}

// Store holds the movies currently marked favorite, keyed by movie ID and
// kept in the order they were added.
//
// A Store is not safe for concurrent use. reel drives it from the Bubble Tea
// update loop only.
type Store struct {
	order    []string
	movies   map[string]catalog.Movie
	revision uint64

	subs   []subscriber
	nextID int

	logger *zap.Logger
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		movies: make(map[string]catalog.Movie),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsFavorite reports whether a movie with m.ID is in the set. IDs are compared
// after catalog.NormalizeID.
func (s *Store) IsFavorite(m catalog.Movie) bool {
	_, ok := s.movies[catalog.NormalizeID(m.ID)]
	return ok
}

// Toggle removes m when it is a favorite and adds it otherwise, then notifies
// subscribers. It returns the new membership.
func (s *Store) Toggle(m catalog.Movie) bool {
	m = m.Clone()
	m.ID = catalog.NormalizeID(m.ID)
	favorite := !s.IsFavorite(m)
	if favorite {
		s.movies[m.ID] = m
		s.order = append(s.order, m.ID)
	} else {
		delete(s.movies, m.ID)
		s.order = removeID(s.order, m.ID)
	}
	s.revision++

	s.logger.Debug("favorite toggled",
		zap.String("movie_id", m.ID),
		zap.String("title", m.Title),
		zap.Bool("favorite", favorite),
		zap.Uint64("revision", s.revision),
		zap.Int("count", len(s.order)),
	)

	change := Change{Movie: m.Clone(), Favorite: favorite, Revision: s.revision}
	// Iterate over a copy so a subscriber may cancel itself.
	for _, sub := range append([]subscriber(nil), s.subs...) {
		sub.fn(change)
	}
	return favorite
}

// All returns the favorites oldest first. The slice and its movies are copies.
func (s *Store) All() []catalog.Movie {
	out := make([]catalog.Movie, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.movies[id].Clone())
	}
	return out
}

// Len reports how many movies are favorites.
func (s *Store) Len() int {
	return len(s.order)
}

// Revision reports how many toggles the store has applied.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Subscribe registers fn to run after every toggle. Subscribers run in
// registration order. The returned cancel func may be called more than once.
func (s *Store) Subscribe(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
