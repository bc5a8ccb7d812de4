package catalog

import (
	"errors"
	"testing"
)

func TestLoad_BuiltinCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("Len() = 0, want built-in movies")
	}

	all := c.All()
	if len(all) != c.Len() {
		t.Fatalf("len(All()) = %d, want %d", len(all), c.Len())
	}
	if all[0].ID != "tt0499549" || all[0].Title != "Avatar" {
		t.Fatalf("first movie = %q %q, want tt0499549 Avatar", all[0].ID, all[0].Title)
	}
	// "300" must survive YAML decoding as a string title.
	if m, ok := c.Lookup("tt0416449"); !ok || m.Title != "300" {
		t.Fatalf("Lookup(tt0416449) = %q, %v; want 300, true", m.Title, ok)
	}
	for _, m := range all {
		if len(m.Genres) == 0 {
			t.Errorf("movie %s has no genres", m.ID)
		}
		if m.Poster() == "" {
			t.Errorf("movie %s has no poster", m.ID)
		}
	}
}

func TestAll_ReturnsSameOrderEveryCall(t *testing.T) {
	c := mustNew(t, sample())

	first := c.All()
	second := c.All()
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("All()[%d] = %s then %s, want stable order", i, first[i].ID, second[i].ID)
		}
	}
}

func TestAll_ReturnsIndependentCopies(t *testing.T) {
	c := mustNew(t, sample())

	got := c.All()
	got[0].Title = "changed"
	got[0].Genres[0] = "changed"
	got[1] = Movie{}

	again := c.All()
	if again[0].Title != "Inception" {
		t.Fatalf("Title = %q after caller mutation, want Inception", again[0].Title)
	}
	if again[0].Genres[0] != "Sci-Fi" {
		t.Fatalf("Genres[0] = %q after caller mutation, want Sci-Fi", again[0].Genres[0])
	}
	if again[1].ID != "m2" {
		t.Fatalf("All()[1].ID = %q after caller mutation, want m2", again[1].ID)
	}
}

func TestNew_CopiesInput(t *testing.T) {
	in := sample()
	c := mustNew(t, in)

	in[0].Title = "changed"
	in[0].Genres[0] = "changed"

	m, _ := c.Lookup("m1")
	if m.Title != "Inception" || m.Genres[0] != "Sci-Fi" {
		t.Fatalf("catalog changed with input slice: %#v", m)
	}
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		movies []Movie
		want   error
	}{
		{"empty", nil, ErrEmptyCatalog},
		{"blank id", []Movie{{ID: "  ", Title: "x"}}, ErrEmptyID},
		{"blank title", []Movie{{ID: "a", Title: " "}}, ErrEmptyTitle},
		{"duplicate id", []Movie{{ID: "a", Title: "x"}, {ID: " a ", Title: "y"}}, ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.movies)
			if !errors.Is(err, tc.want) {
				t.Fatalf("New error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c := mustNew(t, sample())

	if m, ok := c.Lookup(" m2 "); !ok || m.Title != "Up" {
		t.Fatalf("Lookup(m2) = %q, %v; want Up, true", m.Title, ok)
	}
	if _, ok := c.Lookup("missing"); ok {
		t.Fatal("Lookup(missing) ok = true, want false")
	}
}

func TestMovieHelpers(t *testing.T) {
	m := Movie{Genres: []string{"Action", "Drama"}}
	if got := m.GenreLine(); got != "Action, Drama" {
		t.Fatalf("GenreLine = %q, want %q", got, "Action, Drama")
	}
	if got := m.Poster(); got != "" {
		t.Fatalf("Poster = %q, want empty", got)
	}
	m.Images = []string{"a.jpg", "b.jpg"}
	if got := m.Poster(); got != "a.jpg" {
		t.Fatalf("Poster = %q, want a.jpg", got)
	}
}

func sample() []Movie {
	return []Movie{
		{ID: "m1", Title: "Inception", Year: "2010", Genres: []string{"Sci-Fi", "Thriller"}},
		{ID: "m2", Title: "Up", Year: "2009", Genres: []string{"Animation"}},
	}
}

func mustNew(t *testing.T, movies []Movie) *Catalog {
	t.Helper()
	c, err := New(movies)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestNormalizeID(t *testing.T) {
	for in, want := range map[string]string{"m1": "m1", " m1\t": "m1", "": ""} {
		if got := NormalizeID(in); got != want {
			t.Errorf("NormalizeID(%q) = %q, want %q", in, got, want)
		}
	}
}
