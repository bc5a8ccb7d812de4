// Package catalog holds the fixed list of movies reel can display.
//
// # Overview
//
// The catalog is decoded once at startup from movies.yaml, which is embedded
// in the binary. It never changes afterwards: there is no loading from disk or
// network, and no way to add or remove entries at runtime.
//
// # Identity
//
// Movie.ID is the only identity a movie has. Two Movie values with the same ID
// describe the same movie even if other fields differ. New rejects empty and
// repeated IDs, so this holds for every catalog the rest of the
// program sees.
//
// # Copies
//
// All and Lookup hand out deep copies (including the Genres and Images
// slices). Callers may mutate what they receive without affecting the
// catalog or other callers.
//
// # Usage Example
//
//	cat, err := catalog.Load()
//	if err != nil {
//		return fmt.Errorf("load catalog: %w", err)
//	}
//	for _, m := range cat.All() {
//		fmt.Println(m.Title, m.Year)
//	}
package catalog
